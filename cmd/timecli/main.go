package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/luo785859020/time-sync-mcp/internal/client"
)

// timecli is a small smoke-test client for a running MCP HTTP server.
//
//	timecli list
//	timecli call get_current_time '{"timezone":"Asia/Shanghai"}'
func main() {
	_ = godotenv.Load()

	serverURL := flag.String("server", envOr("MCP_SERVER_URL", "http://localhost:3333/"), "MCP server base URL")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	c := client.New(*serverURL)
	ctx := context.Background()

	switch args[0] {
	case "list":
		tools, err := c.ListTools(ctx)
		if err != nil {
			log.Fatalf("list tools: %v", err)
		}
		for _, tool := range tools {
			fmt.Printf("%s\t%s\n", tool.Name, tool.Description)
		}
	case "call":
		if len(args) < 2 {
			usage()
			os.Exit(2)
		}
		var toolArgs map[string]any
		if len(args) >= 3 {
			if err := json.Unmarshal([]byte(args[2]), &toolArgs); err != nil {
				log.Fatalf("invalid arguments JSON: %v", err)
			}
		}
		result, err := c.CallTool(ctx, args[1], toolArgs)
		if err != nil {
			log.Fatalf("call %s: %v", args[1], err)
		}
		for _, part := range result.Content {
			fmt.Println(part.Text)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: timecli [-server URL] list | call <tool> [json-args]")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
