package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/luo785859020/time-sync-mcp/internal/app"
	"github.com/luo785859020/time-sync-mcp/internal/config"
	"github.com/luo785859020/time-sync-mcp/internal/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	httpAddr := flag.String("http", cfg.HTTPAddr, "MCP HTTP listen address (e.g., :3333)")
	flag.Parse()

	logger, closeLog, err := logging.New(cfg.LogDir, "mcp-http", cfg.LogrusLevel())
	if err != nil {
		log.Fatalf("init logging: %v", err)
	}
	defer closeLog()

	log.Printf("mcp-http server listening on %s", *httpAddr)
	if err := app.RunMCPHTTP(*httpAddr, logger); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
