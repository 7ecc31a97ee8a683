package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/docbrowser/internal/catalog"
	"github.com/ziadkadry99/docbrowser/internal/fetcher"
)

// handleListModules lists the catalog in display order.
func (s *Server) handleListModules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cats := s.svc.Catalog().Categories()
	if len(cats) == 0 {
		return mcp.NewToolResultText("No modules are configured."), nil
	}

	var sb strings.Builder
	for _, c := range cats {
		sb.WriteString(fmt.Sprintf("## %s\n", c.Name))
		for _, m := range c.Modules {
			sb.WriteString(fmt.Sprintf("- %s: %d. %s\n", m.ID, m.Order, m.Name))
			for i, f := range m.Files {
				sb.WriteString(fmt.Sprintf("  - file_index %d: %s\n", i, f.Name))
			}
		}
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleReadModule fetches a module page and returns it as markdown or HTML.
func (s *Server) handleReadModule(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("module_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: module_id"), nil
	}
	file := request.GetInt("file_index", 0)

	switch format := request.GetString("format", "markdown"); format {
	case "markdown":
		page, err := s.svc.Fetch(ctx, id, file)
		if err != nil {
			return loadError(id, err), nil
		}
		return mcp.NewToolResultText(string(page.Markdown)), nil
	case "html":
		page, err := s.svc.Load(ctx, id, file)
		if err != nil {
			return loadError(id, err), nil
		}
		return mcp.NewToolResultText(page.HTML), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q (want markdown or html)", format)), nil
	}
}

// handleResolveAnchor resolves a fragment against a module page's headings.
func (s *Server) handleResolveAnchor(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("module_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: module_id"), nil
	}
	hash, err := request.RequireString("hash")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: hash"), nil
	}
	if !strings.HasPrefix(hash, "#") {
		hash = "#" + hash
	}

	page, err := s.svc.Load(ctx, id, request.GetInt("file_index", 0))
	if err != nil {
		return loadError(id, err), nil
	}
	res, ok := s.svc.Resolve(page, hash)
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf("No heading matches %s in %s.", hash, id)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Heading: %s\n", res.Heading.Text))
	sb.WriteString(fmt.Sprintf("ID: %s\n", res.Heading.ID))
	sb.WriteString(fmt.Sprintf("Level: %d\n", res.Heading.Level))
	sb.WriteString(fmt.Sprintf("Rule: %s\n", res.Rule))
	if res.Changed {
		sb.WriteString(fmt.Sprintf("Canonical fragment: #%s\n", res.Heading.ID))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// loadError turns a page load failure into a tool error an agent can act on.
func loadError(id string, err error) *mcp.CallToolResult {
	var nf *fetcher.ContentNotFoundError
	switch {
	case errors.Is(err, catalog.ErrModuleNotRegistered):
		return mcp.NewToolResultError(fmt.Sprintf("Unknown module %q. Call list_modules for valid ids.", id))
	case errors.As(err, &nf):
		return mcp.NewToolResultError(fmt.Sprintf(
			"Content for %s could not be found after %d attempts (last status %d %s).",
			id, nf.Attempts, nf.LastStatus, nf.LastStatusText,
		))
	default:
		return mcp.NewToolResultError(fmt.Sprintf("failed to load %s: %v", id, err))
	}
}
