package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/luo785859020/time-sync-mcp/internal/app"
	"github.com/luo785859020/time-sync-mcp/internal/config"
	"github.com/luo785859020/time-sync-mcp/internal/logging"
)

// mcp-server speaks MCP over stdin/stdout, one JSON line per message.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, closeLog, err := logging.New(cfg.LogDir, "mcp-server", cfg.LogrusLevel())
	if err != nil {
		log.Fatalf("init logging: %v", err)
	}
	defer closeLog()

	if err := app.RunMCPStdio(logger); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
