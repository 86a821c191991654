package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/agentstation/appl/internal/cmd/catalog"
	"github.com/agentstation/appl/pkg/catalogs"
)

// RegisterReadTools adds all read-only catalog tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store catalogs.Store) {
	s.AddTool(searchTool(), searchHandler(store))
	s.AddTool(listTool(), listHandler(store))
	s.AddTool(showTool(), showHandler(store))
	s.AddTool(keysTool(), keysHandler(store))
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search the catalog. Every combination of the query words is matched against tags, languages, authors, series, age ratings and file extensions, and as a substring of names and paths. Results are ranked by score."),
		mcp.WithString("query",
			mcp.Description("Free-text query, words separated by spaces"),
			mcp.Required(),
		),
	)
}

func searchHandler(store catalogs.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := strings.TrimSpace(req.GetString("query", ""))
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		matches, err := store.Search(ctx, query)
		if err != nil {
			return toolError(err)
		}
		if len(matches) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, m := range matches {
			fmt.Fprintf(&sb, "%d  %s\n", m.Score, formatEntry(m.Entry))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List catalog entries. With a prefix, lists the entries at or below that path."),
		mcp.WithString("prefix",
			mcp.Description("Path prefix such as /anime. Omit to list every entry."),
		),
	)
}

func listHandler(store catalogs.Store) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries, err := catalog.Under(store, req.GetString("prefix", ""))
		if err != nil {
			return toolError(err)
		}
		return formatEntries(entries)
	}
}

// --- show ---

func showTool() mcp.Tool {
	return mcp.NewTool("show",
		mcp.WithDescription("Show every field of one entry."),
		mcp.WithString("path",
			mcp.Description("Entry path exactly as stored in the catalog"),
			mcp.Required(),
		),
	)
}

func showHandler(store catalogs.Store) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		_, e, err := lookup(store, req.GetString("path", ""))
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Path: %s\n", e.Path)
		fmt.Fprintf(&sb, "Name: %s\n", e.Name)
		fmt.Fprintf(&sb, "Cover: %s\n", e.CoverPath)
		fmt.Fprintf(&sb, "Author: %s\n", e.Author)
		fmt.Fprintf(&sb, "Series: %s, vol %d\n", e.Series, e.Vol)
		fmt.Fprintf(&sb, "Language: %s\n", e.Language)
		fmt.Fprintf(&sb, "Age rating: %s\n", e.AgeRating)
		fmt.Fprintf(&sb, "Release: %d\n", e.Release)
		fmt.Fprintf(&sb, "Resolution: %s\n", e.Resolution)
		fmt.Fprintf(&sb, "Tags: %s\n", catalogs.JoinTags(e.Tags))
		if opener, ok := store.Opener(e.Path); ok {
			fmt.Fprintf(&sb, "Opener: %s\n", opener)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- keys ---

func keysTool() mcp.Tool {
	return mcp.NewTool("keys",
		mcp.WithDescription("List the distinct values of one indexed field with the number of entries for each."),
		mcp.WithString("field",
			mcp.Description("One of author, series, language, rating, tag, extension"),
			mcp.Required(),
		),
	)
}

func keysHandler(store catalogs.Store) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		field, err := catalogs.ParseField(req.GetString("field", ""))
		if err != nil {
			return toolError(err)
		}

		keys := store.Keys(field)
		if len(keys) == 0 {
			return mcp.NewToolResultText("No results."), nil
		}
		var sb strings.Builder
		for _, key := range keys {
			fmt.Fprintf(&sb, "%s  %d\n", key, len(store.Bucket(field, key)))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func lookup(store catalogs.Store, path string) (catalogs.EntryID, catalogs.Entry, error) {
	if path == "" {
		return 0, catalogs.Entry{}, fmt.Errorf("path is required")
	}
	return catalog.Resolve(store, path)
}

func formatEntries(entries []catalogs.Entry) (*mcp.CallToolResult, error) {
	if len(entries) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(formatEntry(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatEntry(e catalogs.Entry) string {
	return fmt.Sprintf("%s  %s  [%s]", e.Path, e.Name, catalogs.JoinTags(e.Tags))
}
