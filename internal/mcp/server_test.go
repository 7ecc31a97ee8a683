package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/docbrowser/internal/browser"
	"github.com/ziadkadry99/docbrowser/internal/catalog"
	"github.com/ziadkadry99/docbrowser/internal/config"
	"github.com/ziadkadry99/docbrowser/internal/fetcher"
	"github.com/ziadkadry99/docbrowser/internal/render"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "Module 11: IaC"), 0o755); err != nil {
		t.Fatal(err)
	}
	content := "# IaC\n\n## 3. AWS CloudFormation & CDK\n\nStacks.\n"
	if err := os.WriteFile(filepath.Join(dir, "Module 11: IaC", "README.md"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := catalog.New([]config.Module{
		{ID: "module-11", Name: "IaC", Category: "Advanced", Order: 11, Path: "./Module 11: IaC/README.md"},
		{
			ID: "module-05", Name: "Docker", Category: "Build", Order: 5, Path: "./Module 05/README.md",
			Files: []config.ModuleFile{
				{Name: "Docker Basics", Path: "./Module 05/README.md"},
				{Name: "Docker Compose", Path: "./Module 05/compose.md"},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return NewServer(browser.NewService(browser.Options{
		Catalog:  cat,
		Fetcher:  fetcher.New(&fetcher.FSTransport{Dir: dir}, nil),
		Renderer: render.New(render.Options{}),
	}))
}

// extractText gets the text content from a CallToolResult.
func extractText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"list_modules", listModulesTool, "list_modules"},
		{"read_module", readModuleTool, "read_module"},
		{"resolve_anchor", resolveAnchorTool, "resolve_anchor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := newTestServer(t)
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
}

func TestHandleListModules(t *testing.T) {
	srv := newTestServer(t)
	result, err := srv.handleListModules(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := extractText(result)
	if !strings.Contains(text, "## Advanced") || !strings.Contains(text, "module-11: 11. IaC") {
		t.Errorf("unexpected listing:\n%s", text)
	}
	if !strings.Contains(text, "file_index 1: Docker Compose") {
		t.Errorf("sub-files missing:\n%s", text)
	}
	if strings.Index(text, "Advanced") > strings.Index(text, "Build") {
		t.Error("categories should keep configuration order")
	}
}

func TestHandleReadModule(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		args      map[string]any
		wantError bool
		want      string
	}{
		{"markdown", map[string]any{"module_id": "module-11"}, false, "## 3. AWS CloudFormation & CDK"},
		{"html", map[string]any{"module_id": "module-11", "format": "html"}, false, `id="3-aws-cloudformation--cdk"`},
		{"missing id", map[string]any{}, true, "module_id"},
		{"unknown module", map[string]any{"module_id": "module-99"}, true, "list_modules"},
		{"content missing", map[string]any{"module_id": "module-05", "file_index": 1}, true, "could not be found"},
		{"bad format", map[string]any{"module_id": "module-11", "format": "pdf"}, true, "unknown format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mcp.CallToolRequest{}
			req.Params.Arguments = tt.args

			result, err := srv.handleReadModule(ctx, req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.IsError != tt.wantError {
				t.Fatalf("IsError = %v, content: %s", result.IsError, extractText(result))
			}
			if text := extractText(result); !strings.Contains(text, tt.want) {
				t.Errorf("result %q does not contain %q", text, tt.want)
			}
		})
	}
}

func TestHandleResolveAnchor(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	t.Run("fuzzy match", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"module_id": "module-11", "hash": "cloudformation"}

		result, err := srv.handleResolveAnchor(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := extractText(result)
		if !strings.Contains(text, "ID: 3-aws-cloudformation--cdk") || !strings.Contains(text, "Canonical fragment") {
			t.Errorf("unexpected result:\n%s", text)
		}
	})

	t.Run("no match", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"module_id": "module-11", "hash": "#kubernetes"}

		result, err := srv.handleResolveAnchor(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Error("an unmatched fragment is not an error")
		}
		if !strings.Contains(extractText(result), "No heading matches") {
			t.Errorf("unexpected result: %s", extractText(result))
		}
	})

	t.Run("missing hash", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"module_id": "module-11"}

		result, err := srv.handleResolveAnchor(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing hash")
		}
	})
}
