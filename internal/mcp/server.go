package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/luo785859020/time-sync-mcp/internal/protocol"
	"github.com/luo785859020/time-sync-mcp/internal/version"
)

const (
	protocolVersion = "2024-11-05"
	serverName      = "time-sync-mcp"
)

// Server handles MCP JSON-RPC requests against a toolbox.
type Server struct {
	toolbox *Toolbox
}

// NewServer wires a toolbox into an MCP server.
func NewServer(tb *Toolbox) *Server {
	return &Server{toolbox: tb}
}

// Handle routes a single request. Methods are checked in a fixed order:
// initialize, tools/list, tools/call; anything else is an invalid request.
// All failures come back as a response error; Handle never panics for
// malformed input.
func (s *Server) Handle(ctx context.Context, req protocol.Request) protocol.Response {
	id := normalizeID(req.ID)

	switch req.Method {
	case "initialize":
		return protocol.Response{JSONRPC: "2.0", ID: id, Result: protocol.InitializeResult{
			ProtocolVersion: protocolVersion,
			ServerInfo: protocol.ServerInfo{
				Name:    serverName,
				Version: version.Get().Version,
			},
		}}
	case "tools/list":
		return protocol.Response{JSONRPC: "2.0", ID: id, Result: protocol.ListResult{Tools: s.toolbox.Describe()}}
	case "tools/call":
		var params protocol.CallParams
		if len(req.Params) > 0 {
			if err := json.Unmarshal(req.Params, &params); err != nil {
				return protocol.Response{JSONRPC: "2.0", ID: id, Error: &protocol.ResponseError{Code: -32603, Message: fmt.Sprintf("invalid params: %v", err)}}
			}
		}
		result, toolErr := s.toolbox.Call(ctx, params.Name, params.Args)
		if toolErr != nil {
			return protocol.Response{JSONRPC: "2.0", ID: id, Error: toolErr}
		}
		return protocol.Response{JSONRPC: "2.0", ID: id, Result: result}
	default:
		return protocol.Response{JSONRPC: "2.0", ID: id, Error: &protocol.ResponseError{Code: -32600, Message: "Invalid request"}}
	}
}

// normalizeID echoes the caller's id, defaulting to 1 when it was absent.
func normalizeID(id any) any {
	if id == nil {
		return 1
	}
	return id
}
