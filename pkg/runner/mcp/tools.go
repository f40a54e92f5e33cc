package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerExecuteTool(srv, svc)
	registerListPersonsTool(srv, svc)
	registerListAssignmentsTool(srv, svc)
}

func registerExecuteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"execute",
		mcp.WithDescription("Run a roster command line such as `list`, `find alex` or `addassignment n/Lab 4 d/2026-11-02 i/1`. Send `help` for the command list."),
		mcp.WithString("command",
			mcp.Required(),
			mcp.Description("The command line to run."),
		),
		mcp.WithBoolean("confirm",
			mcp.Description("Answer yes when the command asks for confirmation. Destructive commands are cancelled without it."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("command")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		confirm := request.GetBool("confirm", false)

		res, err := svc.Execute(ctx, text, confirm)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerListPersonsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_persons",
		mcp.WithDescription("List every person in the address book."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		persons, err := svc.Persons(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"persons": persons,
			"count":   len(persons),
		})
	})
}

func registerListAssignmentsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_assignments",
		mcp.WithDescription("List every assignment and who it is assigned to."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		assignments, err := svc.Assignments(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"assignments": assignments,
			"count":       len(assignments),
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
