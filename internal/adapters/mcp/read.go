package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pagecraft/internal/application"
	"pagecraft/internal/application/session"
)

// RegisterReadTools adds the read-only page tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, ws *Workspace) {
	s.AddTool(treeTool(), treeHandler(ws))
	s.AddTool(showTool(), showHandler(ws))
	s.AddTool(historyTool(), historyHandler(ws))
}

func pageIDOption() mcp.ToolOption {
	return mcp.WithString("page_id",
		mcp.Description("Page to work on. Omit to use the page opened by the previous call."),
	)
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the element tree of a page. Each line shows the element ID, its pattern and its name."),
		pageIDOption(),
	)
}

func treeHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var sb strings.Builder
		err := ws.Do(req.GetString("page_id", ""), func(s *session.Session) error {
			page := s.Page()
			fmt.Fprintf(&sb, "%s  %s\n", page.ID, page.Name)
			return application.WriteTree(&sb, page)
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- show ---

func showTool() mcp.Tool {
	return mcp.NewTool("show",
		mcp.WithDescription("Show an element's location and its property values."),
		pageIDOption(),
		mcp.WithString("element_id",
			mcp.Description("Element ID"),
			mcp.Required(),
		),
	)
}

func showHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		elementID := req.GetString("element_id", "")
		if elementID == "" {
			return toolError(fmt.Errorf("element_id is required"))
		}

		var sb strings.Builder
		err := ws.Do(req.GetString("page_id", ""), func(s *session.Session) error {
			el, err := s.Element(elementID)
			if err != nil {
				return err
			}
			return application.WriteElement(&sb, el)
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("history",
		mcp.WithDescription("Report how many changes can be undone and redone, and whether the page has unsaved changes."),
		pageIDOption(),
	)
}

func historyHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var text string
		err := ws.Do(req.GetString("page_id", ""), func(s *session.Session) error {
			text = historyText(s)
			return nil
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(text), nil
	}
}

// --- helpers ---

func historyText(s *session.Session) string {
	undo, redo := s.History()
	return fmt.Sprintf("undo: %d  redo: %d  unsaved: %t", undo, redo, s.Dirty())
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
