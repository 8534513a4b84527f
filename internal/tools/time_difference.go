package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/luo785859020/time-sync-mcp/internal/protocol"
)

// timeDifferenceTool computes the absolute distance between two instants.
type timeDifferenceTool struct{}

// TimeDifference constructs the get_time_difference tool.
func TimeDifference() *timeDifferenceTool {
	return &timeDifferenceTool{}
}

func (t *timeDifferenceTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_time_difference",
		Description: "计算两个时间的差值",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"from": {Type: "string", Description: "开始时间 (ISO 格式)"},
				"to":   {Type: "string", Description: "结束时间 (ISO 格式)"},
			},
			Required: []string{"from", "to"},
		},
	}
}

type timeDifferenceArgs struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type timeDifferenceResult struct {
	From              string `json:"from"`
	To                string `json:"to"`
	DifferenceSeconds int64  `json:"difference_seconds"`
	HumanReadable     string `json:"human_readable"`
}

func (t *timeDifferenceTool) Invoke(_ context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args timeDifferenceArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, invalidArgs(err)
		}
	}
	if args.From == "" || args.To == "" {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32603, Message: "from and to are required"}
	}

	from, err := parseInstant(args.From)
	if err != nil {
		return protocol.CallResult{}, invalidArgs(err)
	}
	to, err := parseInstant(args.To)
	if err != nil {
		return protocol.CallResult{}, invalidArgs(err)
	}

	diff := to.Sub(from)
	if diff < 0 {
		diff = -diff
	}
	diffSec := int64(diff / time.Second)

	days := diffSec / 86400
	hours := (diffSec % 86400) / 3600
	minutes := (diffSec % 3600) / 60
	seconds := diffSec % 60

	return textResult(timeDifferenceResult{
		From:              args.From,
		To:                args.To,
		DifferenceSeconds: diffSec,
		HumanReadable:     fmt.Sprintf("%d天 %d小时 %d分钟 %d秒", days, hours, minutes, seconds),
	})
}
