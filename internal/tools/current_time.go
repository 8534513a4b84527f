package tools

import (
	"context"
	"encoding/json"
	"time"

	"github.com/luo785859020/time-sync-mcp/internal/protocol"
)

// currentTimeTool reports the current time in a requested timezone.
type currentTimeTool struct {
	now func() time.Time
}

// CurrentTime constructs the get_current_time tool.
func CurrentTime() *currentTimeTool {
	return &currentTimeTool{now: time.Now}
}

func (t *currentTimeTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_current_time",
		Description: "获取当前时间",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"timezone": {Type: "string", Description: "时区 (例如: Asia/Shanghai, UTC)", Default: "UTC"},
			},
		},
	}
}

type currentTimeArgs struct {
	Timezone string `json:"timezone"`
}

type currentTimeResult struct {
	ISO       string `json:"iso"`
	Formatted string `json:"formatted"`
	Timezone  string `json:"timezone"`
	Timestamp int64  `json:"timestamp"`
}

func (t *currentTimeTool) Invoke(_ context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args currentTimeArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, invalidArgs(err)
		}
	}
	if args.Timezone == "" {
		args.Timezone = "UTC"
	}

	// One clock read per call keeps iso and timestamp on the same instant.
	now := t.now()
	return textResult(currentTimeResult{
		ISO:       isoUTC(now),
		Formatted: formatInZone(now, args.Timezone),
		Timezone:  args.Timezone,
		Timestamp: now.Unix(),
	})
}
