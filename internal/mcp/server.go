// Package mcp exposes a catalog as Model Context Protocol tools over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/agentstation/appl/pkg/catalogs"
)

// ServerName is reported to MCP clients.
const ServerName = "appl"

// NewServer creates an MCP server with the read tools and, unless readOnly
// is set, the write tools registered. Writes are saved to path by the
// save tool.
func NewServer(store catalogs.Store, path, version string, readOnly bool) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(true),
	)
	RegisterReadTools(s, store)
	if !readOnly {
		RegisterWriteTools(s, store, path)
	}
	return s
}

// ServeStdio serves s on standard input and output until the client
// disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
