package tools

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/luo785859020/time-sync-mcp/internal/protocol"
)

// millisecondThreshold separates second- from millisecond-scale timestamps:
// anything above ten digits is read as milliseconds. Second-scale inputs
// stay below it until 2286-11-20, so the heuristic holds for any realistic
// input.
const millisecondThreshold = 9_999_999_999

const wallClockLayout = "2006-01-02 15:04:05"

// isoUTC renders an instant as ISO-8601 in UTC with millisecond precision.
func isoUTC(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// formatInZone renders the instant as "YYYY-MM-DD HH:MM:SS" wall-clock time
// in the named timezone. An unresolvable timezone is not fatal: the raw ISO
// form is returned instead and the call still succeeds.
func formatInZone(t time.Time, timezone string) string {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return isoUTC(t)
	}
	return t.In(loc).Format(wallClockLayout)
}

// instantFromTimestamp maps a numeric epoch timestamp to an instant,
// applying the millisecond threshold.
func instantFromTimestamp(ts float64) time.Time {
	if ts > millisecondThreshold {
		return time.UnixMilli(int64(ts)).UTC()
	}
	return time.UnixMilli(int64(ts * 1000)).UTC()
}

// parseInstant accepts ISO-8601 date-time strings with or without a zone
// designator; zoneless forms are read as UTC.
func parseInstant(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 date: %q", s)
}

// textResult marshals a tool payload into the single text content part the
// protocol expects.
func textResult(v any) (protocol.CallResult, *protocol.ResponseError) {
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32603, Message: fmt.Sprintf("encode result: %v", err)}
	}
	return protocol.CallResult{Content: []protocol.ContentPart{{Type: "text", Text: string(buf)}}}, nil
}

func invalidArgs(err error) *protocol.ResponseError {
	return &protocol.ResponseError{Code: -32603, Message: fmt.Sprintf("invalid arguments: %v", err)}
}
