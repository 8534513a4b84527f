package mcp

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/luo785859020/time-sync-mcp/internal/protocol"
	"github.com/luo785859020/time-sync-mcp/internal/tools"
)

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger.WithField("component", "test")
}

func TestRunStdioAnswersPerLine(t *testing.T) {
	server := NewServer(NewToolbox(tools.CurrentTime()))

	in := strings.NewReader(strings.Join([]string{
		`{"method":"initialize","id":1}`,
		``,
		`{"method":"tools/call","id":2,"params":{"name":"get_current_time"}}`,
	}, "\n") + "\n")
	var out bytes.Buffer

	if err := RunStdio(server, in, &out, testLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := nonEmptyLines(t, &out)
	if len(lines) != 2 {
		t.Fatalf("expected 2 responses, got %d: %v", len(lines), lines)
	}
	for _, line := range lines {
		var resp protocol.Response
		if err := json.Unmarshal([]byte(line), &resp); err != nil {
			t.Fatalf("response line is not JSON: %v", err)
		}
		if resp.Error != nil {
			t.Fatalf("unexpected error response: %+v", resp.Error)
		}
	}
}

func TestRunStdioDropsMalformedLines(t *testing.T) {
	server := NewServer(NewToolbox(tools.CurrentTime()))

	in := strings.NewReader(strings.Join([]string{
		`this is not json`,
		`{"method":"tools/list","id":5}`,
		`{"truncated":`,
	}, "\n") + "\n")
	var out bytes.Buffer

	if err := RunStdio(server, in, &out, testLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := nonEmptyLines(t, &out)
	if len(lines) != 1 {
		t.Fatalf("malformed lines must be dropped silently, got %d responses", len(lines))
	}

	var resp protocol.Response
	if err := json.Unmarshal([]byte(lines[0]), &resp); err != nil {
		t.Fatalf("response line is not JSON: %v", err)
	}
	if resp.ID != float64(5) {
		t.Fatalf("id not echoed: %v", resp.ID)
	}
}

func nonEmptyLines(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()

	var lines []string
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan output: %v", err)
	}
	return lines
}
