package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/luo785859020/time-sync-mcp/internal/protocol"
)

// formatTimestampTool renders an epoch timestamp as wall-clock time in a
// requested timezone. Inputs above the millisecond threshold are read as
// epoch milliseconds, everything else as epoch seconds.
type formatTimestampTool struct{}

// FormatTimestamp constructs the format_timestamp tool.
func FormatTimestamp() *formatTimestampTool {
	return &formatTimestampTool{}
}

func (t *formatTimestampTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "format_timestamp",
		Description: "格式化时间戳为可读时间",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"timestamp": {Type: "number", Description: "Unix 时间戳"},
				"timezone":  {Type: "string", Description: "时区", Default: "UTC"},
			},
			Required: []string{"timestamp"},
		},
	}
}

type formatTimestampArgs struct {
	// json.Number so the value is echoed back exactly as supplied.
	Timestamp json.Number `json:"timestamp"`
	Timezone  string      `json:"timezone"`
}

type formatTimestampResult struct {
	OriginalTimestamp json.Number `json:"original_timestamp"`
	Formatted         string      `json:"formatted"`
	Timezone          string      `json:"timezone"`
	ISO               string      `json:"iso"`
}

func (t *formatTimestampTool) Invoke(_ context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args formatTimestampArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, invalidArgs(err)
		}
	}
	if args.Timestamp == "" {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32603, Message: "timestamp is required"}
	}
	ts, err := args.Timestamp.Float64()
	if err != nil {
		return protocol.CallResult{}, invalidArgs(fmt.Errorf("timestamp: %w", err))
	}
	if args.Timezone == "" {
		args.Timezone = "UTC"
	}

	instant := instantFromTimestamp(ts)
	return textResult(formatTimestampResult{
		OriginalTimestamp: args.Timestamp,
		Formatted:         formatInZone(instant, args.Timezone),
		Timezone:          args.Timezone,
		ISO:               isoUTC(instant),
	})
}
