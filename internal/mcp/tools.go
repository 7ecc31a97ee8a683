package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listModulesTool defines the list_modules MCP tool.
var listModulesTool = mcp.NewTool("list_modules",
	mcp.WithDescription("List the course modules grouped by category, in reading order, with their sub-files."),
)

// readModuleTool defines the read_module MCP tool.
var readModuleTool = mcp.NewTool("read_module",
	mcp.WithDescription("Read the content of a course module page. Returns markdown by default, or the rendered HTML."),
	mcp.WithString("module_id",
		mcp.Required(),
		mcp.Description("Module id as returned by list_modules, e.g. module-05"),
	),
	mcp.WithNumber("file_index",
		mcp.Description("Sub-file to read for modules with several pages (default 0)"),
	),
	mcp.WithString("format",
		mcp.Description("Output format"),
		mcp.Enum("markdown", "html"),
	),
)

// resolveAnchorTool defines the resolve_anchor MCP tool.
var resolveAnchorTool = mcp.NewTool("resolve_anchor",
	mcp.WithDescription("Find the heading a #fragment link points at on a module page, using the same fuzzy matching as the browser."),
	mcp.WithString("module_id",
		mcp.Required(),
		mcp.Description("Module id as returned by list_modules"),
	),
	mcp.WithString("hash",
		mcp.Required(),
		mcp.Description("Fragment to resolve, with or without the leading #"),
	),
	mcp.WithNumber("file_index",
		mcp.Description("Sub-file the fragment belongs to (default 0)"),
	),
)
