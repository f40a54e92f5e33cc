package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerPersonsResource(srv, svc)
	registerAssignmentsResource(srv, svc)
	registerPersonTemplate(srv, svc)
}

func registerPersonsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"roster://persons",
		"Persons",
		mcp.WithResourceDescription("All persons in the address book."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		persons, err := svc.Persons(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"persons": persons,
			"count":   len(persons),
		})
	})
}

func registerAssignmentsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"roster://assignments",
		"Assignments",
		mcp.WithResourceDescription("All assignments with due dates and assignees."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		assignments, err := svc.Assignments(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"assignments": assignments,
			"count":       len(assignments),
		})
	})
}

func registerPersonTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"roster://persons/{name}",
		"Person Details",
		mcp.WithTemplateDescription("A single person and the assignments given to them."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		name := argString(request.Params.Arguments["name"])
		if name == "" {
			return nil, fmt.Errorf("person name is required")
		}
		p, err := svc.Person(ctx, name)
		if err != nil {
			return nil, err
		}
		all, err := svc.Assignments(ctx)
		if err != nil {
			return nil, err
		}
		mine := all[:0]
		for _, a := range all {
			if a.Assignee == p.Name {
				mine = append(mine, a)
			}
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"person":      p,
			"assignments": mine,
		})
	})
}

// argString reads a template argument, which may arrive as a string or a
// single-element list.
func argString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
