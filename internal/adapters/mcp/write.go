package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pagecraft/internal/application"
	"pagecraft/internal/application/session"
)

// RegisterWriteTools adds the page editing tools to the MCP server. Every
// change is recorded in the session history and can be undone until the
// page is switched.
func RegisterWriteTools(s *server.MCPServer, ws *Workspace) {
	s.AddTool(addChildTool(), addChildHandler(ws))
	s.AddTool(addSiblingTool(), addSiblingHandler(ws))
	s.AddTool(moveTool(), moveHandler(ws))
	s.AddTool(removeTool(), removeHandler(ws))
	s.AddTool(setPropertyTool(), setPropertyHandler(ws))
	s.AddTool(undoTool(), undoHandler(ws))
	s.AddTool(redoTool(), redoHandler(ws))
	s.AddTool(saveTool(), saveHandler(ws))
}

// --- add_child ---

func addChildTool() mcp.Tool {
	return mcp.NewTool("add_child",
		mcp.WithDescription("Create a new element under a parent element. Returns the new element ID."),
		pageIDOption(),
		mcp.WithString("parent_id",
			mcp.Description("Element ID of the parent"),
			mcp.Required(),
		),
		mcp.WithString("pattern",
			mcp.Description("Pattern of the new element (e.g. text, button, section)"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("Display name. Defaults to the pattern."),
		),
		mcp.WithNumber("index",
			mcp.Description("Position among the parent's children. Omit to append."),
		),
	)
}

func addChildHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		parentID := req.GetString("parent_id", "")
		pattern := req.GetString("pattern", "")
		name := req.GetString("name", "")
		index := req.GetInt("index", application.AppendIndex)

		var text string
		err := ws.Do(req.GetString("page_id", ""), func(s *session.Session) error {
			el, err := s.AddChild(parentID, pattern, name, index)
			if err != nil {
				return err
			}
			text = fmt.Sprintf("Added %s [%s] under %s at index %d", el.ID(), el.Pattern(), parentID, el.Index())
			return nil
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(text), nil
	}
}

// --- add_sibling ---

func addSiblingTool() mcp.Tool {
	return mcp.NewTool("add_sibling",
		mcp.WithDescription("Create a new element directly after an existing element. Returns the new element ID."),
		pageIDOption(),
		mcp.WithString("location_id",
			mcp.Description("Element ID the new element is placed after"),
			mcp.Required(),
		),
		mcp.WithString("pattern",
			mcp.Description("Pattern of the new element"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("Display name. Defaults to the pattern."),
		),
	)
}

func addSiblingHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		locationID := req.GetString("location_id", "")
		pattern := req.GetString("pattern", "")
		name := req.GetString("name", "")

		var text string
		err := ws.Do(req.GetString("page_id", ""), func(s *session.Session) error {
			el, err := s.AddSibling(locationID, pattern, name)
			if err != nil {
				return err
			}
			text = fmt.Sprintf("Added %s [%s] after %s", el.ID(), el.Pattern(), locationID)
			return nil
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(text), nil
	}
}

// --- move ---

func moveTool() mcp.Tool {
	return mcp.NewTool("move",
		mcp.WithDescription("Move an element under a new parent. Moving an element into its own subtree is rejected."),
		pageIDOption(),
		mcp.WithString("element_id",
			mcp.Description("Element ID to move"),
			mcp.Required(),
		),
		mcp.WithString("parent_id",
			mcp.Description("Element ID of the new parent"),
			mcp.Required(),
		),
		mcp.WithNumber("index",
			mcp.Description("Position among the new parent's children. Omit to append."),
		),
	)
}

func moveHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		elementID := req.GetString("element_id", "")
		parentID := req.GetString("parent_id", "")
		index := req.GetInt("index", application.AppendIndex)

		err := ws.Do(req.GetString("page_id", ""), func(s *session.Session) error {
			return s.Move(elementID, parentID, index)
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Moved %s under %s", elementID, parentID)), nil
	}
}

// --- remove ---

func removeTool() mcp.Tool {
	return mcp.NewTool("remove",
		mcp.WithDescription("Remove an element and its subtree from the page. Can be undone."),
		pageIDOption(),
		mcp.WithString("element_id",
			mcp.Description("Element ID to remove"),
			mcp.Required(),
		),
	)
}

func removeHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		elementID := req.GetString("element_id", "")

		err := ws.Do(req.GetString("page_id", ""), func(s *session.Session) error {
			return s.Remove(elementID)
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Removed %s", elementID)), nil
	}
}

// --- set_property ---

func setPropertyTool() mcp.Tool {
	return mcp.NewTool("set_property",
		mcp.WithDescription("Set a property value on an element. Consecutive writes to the same property path merge into one undo step."),
		pageIDOption(),
		mcp.WithString("element_id",
			mcp.Description("Element ID"),
			mcp.Required(),
		),
		mcp.WithString("property",
			mcp.Description("Property path, nested maps separated by dots (e.g. label, style.color)"),
			mcp.Required(),
		),
		mcp.WithString("value",
			mcp.Description(`New value. true/false and numbers are typed, null removes the property, "quoted" forces a string.`),
			mcp.Required(),
		),
	)
}

func setPropertyHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		elementID := req.GetString("element_id", "")
		property := req.GetString("property", "")
		value := application.ParseValue(req.GetString("value", ""))

		err := ws.Do(req.GetString("page_id", ""), func(s *session.Session) error {
			return s.SetProperty(elementID, property, value)
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s.%s = %s", elementID, property, application.FormatValue(value))), nil
	}
}

// --- undo / redo ---

func undoTool() mcp.Tool {
	return mcp.NewTool("undo",
		mcp.WithDescription("Revert the most recent change to the open page."),
		pageIDOption(),
	)
}

func undoHandler(ws *Workspace) server.ToolHandlerFunc {
	return historyStep(ws, (*session.Session).Undo)
}

func redoTool() mcp.Tool {
	return mcp.NewTool("redo",
		mcp.WithDescription("Re-apply the most recently undone change."),
		pageIDOption(),
	)
}

func redoHandler(ws *Workspace) server.ToolHandlerFunc {
	return historyStep(ws, (*session.Session).Redo)
}

func historyStep(ws *Workspace, step func(*session.Session) error) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var text string
		err := ws.Do(req.GetString("page_id", ""), func(s *session.Session) error {
			if err := step(s); err != nil {
				return err
			}
			text = historyText(s)
			return nil
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(text), nil
	}
}

// --- save ---

func saveTool() mcp.Tool {
	return mcp.NewTool("save",
		mcp.WithDescription("Write the open page to storage. The undo history is kept."),
		pageIDOption(),
	)
}

func saveHandler(ws *Workspace) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var pageID string
		err := ws.Do(req.GetString("page_id", ""), func(s *session.Session) error {
			pageID = s.Page().ID
			return s.Save()
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Saved %s", pageID)), nil
	}
}
