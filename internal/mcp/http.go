package mcp

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/luo785859020/time-sync-mcp/internal/protocol"
)

// NewHTTPHandler builds the HTTP binding of the MCP server: one JSON-RPC
// request per POST body on the root path, plus a health probe.
func NewHTTPHandler(server *Server) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/", func(w http.ResponseWriter, req *http.Request) {
		var rpcReq protocol.Request
		if err := json.NewDecoder(req.Body).Decode(&rpcReq); err != nil {
			writeJSON(w, protocol.Response{JSONRPC: "2.0", ID: 1, Error: &protocol.ResponseError{Code: -32700, Message: "invalid JSON"}}, http.StatusBadRequest)
			return
		}
		writeJSON(w, server.Handle(req.Context(), rpcReq), http.StatusOK)
	})

	return r
}

// RunHTTP starts an HTTP server that serves MCP JSON-RPC requests via POST.
func RunHTTP(server *Server, addr string, logger *logrus.Entry) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewHTTPHandler(server),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Infof("HTTP MCP server listening on %s", addr)
	return srv.ListenAndServe()
}

func writeJSON(w http.ResponseWriter, resp protocol.Response, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}
