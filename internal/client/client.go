package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/luo785859020/time-sync-mcp/internal/protocol"
)

// Client issues JSON-RPC calls to a time-sync MCP server over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	counter    uint64
}

// New builds a client with a sane timeout.
func New(baseURL string) *Client {
	trimmed := baseURL
	if !strings.HasSuffix(trimmed, "/") {
		trimmed += "/"
	}
	return &Client{
		baseURL: trimmed,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) nextID() any {
	return atomic.AddUint64(&c.counter, 1)
}

func (c *Client) do(ctx context.Context, method string, params any) (protocol.Response, error) {
	var resp protocol.Response

	payload := protocol.Request{
		JSONRPC: "2.0",
		ID:      c.nextID(),
		Method:  method,
		Params:  mustRaw(params),
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return resp, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(buf))
	if err != nil {
		return resp, fmt.Errorf("build http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return resp, fmt.Errorf("call mcp server: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return resp, fmt.Errorf("mcp server returned status %d", httpResp.StatusCode)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return resp, fmt.Errorf("decode response: %w", err)
	}

	if resp.Error != nil {
		return resp, errors.New(resp.Error.Message)
	}

	return resp, nil
}

// Initialize performs the MCP handshake and returns server info.
func (c *Client) Initialize(ctx context.Context) (protocol.InitializeResult, error) {
	resp, err := c.do(ctx, "initialize", map[string]any{})
	if err != nil {
		return protocol.InitializeResult{}, err
	}
	var result protocol.InitializeResult
	if err := decodeResult(resp.Result, &result); err != nil {
		return protocol.InitializeResult{}, err
	}
	return result, nil
}

// ListTools fetches the advertised tools from the MCP server.
func (c *Client) ListTools(ctx context.Context) ([]protocol.ToolDescriptor, error) {
	resp, err := c.do(ctx, "tools/list", map[string]any{})
	if err != nil {
		return nil, err
	}
	var result protocol.ListResult
	if err := decodeResult(resp.Result, &result); err != nil {
		return nil, err
	}
	return result.Tools, nil
}

// CallTool invokes a tool and returns the structured result.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (protocol.CallResult, error) {
	resp, err := c.do(ctx, "tools/call", protocol.CallParams{Name: name, Args: mustRaw(args)})
	if err != nil {
		return protocol.CallResult{}, err
	}
	var result protocol.CallResult
	if err := decodeResult(resp.Result, &result); err != nil {
		return protocol.CallResult{}, err
	}
	return result, nil
}

func decodeResult(result any, out any) error {
	buf, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := json.Unmarshal(buf, out); err != nil {
		return fmt.Errorf("unmarshal result: %w", err)
	}
	return nil
}

func mustRaw(v any) json.RawMessage {
	if v == nil {
		return json.RawMessage(`null`)
	}
	b, _ := json.Marshal(v)
	return json.RawMessage(b)
}
