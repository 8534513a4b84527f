package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/luo785859020/time-sync-mcp/internal/protocol"
)

const maxLineBytes = 1 << 20

// RunStdio serves newline-delimited JSON-RPC: one request per input line,
// one response per output line. Lines that do not decode as JSON are
// dropped without a response, so a noisy host cannot wedge the stream.
func RunStdio(server *Server, in io.Reader, out io.Writer, logger *logrus.Entry) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var req protocol.Request
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			logger.WithError(err).Debug("dropping undecodable input line")
			continue
		}

		resp := server.Handle(context.Background(), req)
		if err := enc.Encode(resp); err != nil {
			return err
		}
	}
	return scanner.Err()
}
