package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/agentstation/appl/internal/cmd/catalog"
	"github.com/agentstation/appl/pkg/catalogs"
	"github.com/agentstation/appl/pkg/logging"
)

// RegisterWriteTools adds all catalog mutation tools to the MCP server.
// Changes stay in memory until the save tool writes them to path.
func RegisterWriteTools(s *server.MCPServer, store catalogs.Store, path string) {
	s.AddTool(setFieldTool(), setFieldHandler(store))
	s.AddTool(setTagsTool(), setTagsHandler(store))
	s.AddTool(cleanTool(), cleanHandler(store))
	s.AddTool(discoverTool(), discoverHandler(store))
	s.AddTool(saveTool(), saveHandler(store, path))
}

// --- set_field ---

func setFieldTool() mcp.Tool {
	return mcp.NewTool("set_field",
		mcp.WithDescription("Set one field of an entry. Indexed fields are re-filed so search sees the new value."),
		mcp.WithString("path",
			mcp.Description("Entry path exactly as stored in the catalog"),
			mcp.Required(),
		),
		mcp.WithString("field",
			mcp.Description("One of "+strings.Join(catalogs.EditableFields, ", ")),
			mcp.Required(),
		),
		mcp.WithString("value",
			mcp.Description("New value. Numbers are base-10, resolution is WIDTHxHEIGHT, tags are comma-separated."),
			mcp.Required(),
		),
	)
}

func setFieldHandler(store catalogs.Store) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		field := req.GetString("field", "")
		value := req.GetString("value", "")

		id, _, err := lookup(store, path)
		if err != nil {
			return toolError(err)
		}
		if err := store.SetField(id, field, value); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Set %s of %s", field, path)), nil
	}
}

// --- set_tags ---

func setTagsTool() mcp.Tool {
	return mcp.NewTool("set_tags",
		mcp.WithDescription("Add, remove or replace the tags of an entry."),
		mcp.WithString("path",
			mcp.Description("Entry path exactly as stored in the catalog"),
			mcp.Required(),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tags"),
			mcp.Required(),
		),
		mcp.WithString("mode",
			mcp.Description("set (default), add or remove"),
		),
	)
}

func setTagsHandler(store catalogs.Store) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, _, err := lookup(store, req.GetString("path", ""))
		if err != nil {
			return toolError(err)
		}
		tags := req.GetString("tags", "")

		err = catalog.EditTags(store, id, req.GetString("mode", catalog.ModeSet), tags)
		if err != nil {
			return toolError(err)
		}

		e, _ := store.Get(id)
		return mcp.NewToolResultText("Tags: " + catalogs.JoinTags(e.Tags)), nil
	}
}

// --- clean ---

func cleanTool() mcp.Tool {
	return mcp.NewTool("clean",
		mcp.WithDescription("Remove entries whose files no longer exist under the catalog root."),
	)
}

func cleanHandler(store catalogs.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		removed, err := store.ReconcileMissing(ctx)
		if err != nil {
			return toolError(err)
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "Removed %d entries\n", len(removed))
		for _, e := range removed {
			fmt.Fprintf(&sb, "%s\n", e.Path)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- discover ---

func discoverTool() mcp.Tool {
	return mcp.NewTool("discover",
		mcp.WithDescription("Add placeholder entries for files under the catalog root that are not cataloged yet."),
	)
}

func discoverHandler(store catalogs.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		added, err := store.DiscoverNew(ctx)
		if err != nil {
			return toolError(err)
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "Added %d entries\n", len(added))
		for _, id := range added {
			if e, ok := store.Get(id); ok {
				fmt.Fprintf(&sb, "%s\n", e.Path)
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- save ---

func saveTool() mcp.Tool {
	return mcp.NewTool("save",
		mcp.WithDescription("Write the catalog back to its .appl file."),
	)
}

func saveHandler(store catalogs.Store, path string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := store.Save(path); err != nil {
			logging.Error().Err(err).Str("path", path).Msg("Saving catalog failed")
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Saved %d entries to %s", store.Len(), path)), nil
	}
}
