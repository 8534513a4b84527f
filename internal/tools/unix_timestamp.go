package tools

import (
	"context"
	"encoding/json"
	"time"

	"github.com/luo785859020/time-sync-mcp/internal/protocol"
)

// unixTimestampTool reports the current epoch time in seconds or
// milliseconds. Both units are whole integers.
type unixTimestampTool struct {
	now func() time.Time
}

// UnixTimestamp constructs the get_unix_timestamp tool.
func UnixTimestamp() *unixTimestampTool {
	return &unixTimestampTool{now: time.Now}
}

func (t *unixTimestampTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_unix_timestamp",
		Description: "获取 Unix 时间戳（秒或毫秒）",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"milliseconds": {Type: "boolean", Description: "是否返回毫秒级时间戳", Default: false},
			},
		},
	}
}

type unixTimestampArgs struct {
	Milliseconds bool `json:"milliseconds"`
}

type unixTimestampResult struct {
	Timestamp int64 `json:"timestamp"`
}

func (t *unixTimestampTool) Invoke(_ context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args unixTimestampArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, invalidArgs(err)
		}
	}

	now := t.now()
	ts := now.Unix()
	if args.Milliseconds {
		ts = now.UnixMilli()
	}
	return textResult(unixTimestampResult{Timestamp: ts})
}
