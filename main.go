package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/luo785859020/time-sync-mcp/internal/app"
	"github.com/luo785859020/time-sync-mcp/internal/config"
	"github.com/luo785859020/time-sync-mcp/internal/logging"
	"github.com/luo785859020/time-sync-mcp/internal/version"
)

func main() {
	_ = godotenv.Load()

	// Flags / env
	transport := flag.String("transport", envOr("MCP_TRANSPORT", "stdio"), "Transport: stdio or http")
	httpAddr := flag.String("http", "", "MCP HTTP listen address (overrides MCP_HTTP_ADDR)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		info := version.Get()
		fmt.Printf("time-sync-mcp %s (%s, %s)\n", info.Version, info.Commit, info.BuildDate)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if *httpAddr != "" {
		cfg.HTTPAddr = *httpAddr
	}

	logger, closeLog, err := logging.New(cfg.LogDir, "mcp-"+*transport, cfg.LogrusLevel())
	if err != nil {
		log.Fatalf("init logging: %v", err)
	}
	defer closeLog()

	switch *transport {
	case "stdio":
		if err := app.RunMCPStdio(logger); err != nil {
			log.Fatalf("stdio server error: %v", err)
		}
	case "http":
		if err := app.RunMCPHTTP(cfg.HTTPAddr, logger); err != nil {
			log.Fatalf("MCP server error: %v", err)
		}
	default:
		log.Fatalf("unknown transport %q (want stdio or http)", *transport)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
