package app

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/luo785859020/time-sync-mcp/internal/mcp"
	"github.com/luo785859020/time-sync-mcp/internal/tools"
)

// NewToolbox builds the time toolbox. The order here is the order
// advertised by tools/list.
func NewToolbox() *mcp.Toolbox {
	return mcp.NewToolbox(
		tools.CurrentTime(),
		tools.UnixTimestamp(),
		tools.FormatTimestamp(),
		tools.TimeDifference(),
	)
}

// NewMCPServer constructs an MCP server with the shared toolbox.
func NewMCPServer() *mcp.Server {
	return mcp.NewServer(NewToolbox())
}

// RunMCPHTTP starts the MCP HTTP server on the provided address.
func RunMCPHTTP(addr string, logger *logrus.Entry) error {
	return mcp.RunHTTP(NewMCPServer(), addr, logger)
}

// RunMCPStdio serves MCP over the process stdin/stdout streams.
func RunMCPStdio(logger *logrus.Entry) error {
	return mcp.RunStdio(NewMCPServer(), os.Stdin, os.Stdout, logger)
}
