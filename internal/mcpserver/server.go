// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes resolved Osirris content for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/osirris/internal/listing"
	"github.com/starford/osirris/internal/models"
)

// LayoutURI is the resource URI of the content layout document.
const LayoutURI = "osirris://content-layout"

// Resolver is the subset of the resolution pipeline the tools use.
type Resolver interface {
	Home(ctx context.Context) models.HomePage
	Global(ctx context.Context) models.GlobalSettings
	Blog(ctx context.Context, q listing.BlogQuery) models.BlogPage
	Post(ctx context.Context, slug string) models.PostPage
	Media(ctx context.Context, q listing.MediaQuery) models.MediaPage
	Publications(ctx context.Context) []models.Publication
}

// Server wraps the MCP server with Osirris tools.
type Server struct {
	mcp      *server.MCPServer
	resolver Resolver
}

// New creates a new MCP server with all content tools registered.
func New(resolver Resolver, version string) *Server {
	s := &Server{resolver: resolver}

	s.mcp = server.NewMCPServer(
		"Osirris",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("get_home_page",
		mcp.WithDescription("Resolved home page: title, hero, section blocks and body."),
	), s.getHomePage)

	s.mcp.AddTool(mcp.NewTool("get_global_settings",
		mcp.WithDescription("Resolved header navigation and footer settings."),
	), s.getGlobalSettings)

	s.mcp.AddTool(mcp.NewTool("list_posts",
		mcp.WithDescription("List blog posts newest first, optionally filtered."),
		mcp.WithString("category", mcp.Description("Exact category; empty or All for every category")),
		mcp.WithString("query", mcp.Description("Case-insensitive text to find in title or excerpt")),
	), s.listPosts)

	s.mcp.AddTool(mcp.NewTool("read_post",
		mcp.WithDescription("Read one blog post by slug (its file name without extension)."),
		mcp.WithString("slug", mcp.Required(), mcp.Description("Post slug, e.g. water-savings")),
	), s.readPost)

	s.mcp.AddTool(mcp.NewTool("list_media",
		mcp.WithDescription("List gallery items."),
		mcp.WithString("type", mcp.Description("all, photos or videos"), mcp.Enum("all", "photos", "videos")),
	), s.listMedia)

	s.mcp.AddTool(mcp.NewTool("list_publications",
		mcp.WithDescription("List downloadable publications."),
	), s.listPublications)

	s.mcp.AddTool(mcp.NewTool("get_content_layout",
		mcp.WithDescription("Returns the content directory layout and field reference. "+
			"Call this before authoring content files."),
	), s.getContentLayout)

	s.mcp.AddResource(
		mcp.NewResource(LayoutURI, "Content Layout",
			mcp.WithResourceDescription("Where content files live and which fields they carry."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readLayoutResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getHomePage(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.resolver.Home(ctx))
}

func (s *Server) getGlobalSettings(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.resolver.Global(ctx))
}

func (s *Server) listPosts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page := s.resolver.Blog(ctx, listing.BlogQuery{
		Category: req.GetString("category", ""),
		Query:    req.GetString("query", ""),
	})
	return jsonResult(map[string]any{
		"posts":      page.Posts,
		"featured":   page.Featured,
		"categories": page.Categories,
	})
}

func (s *Server) readPost(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := req.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	page := s.resolver.Post(ctx, slug)
	if !page.Found {
		return mcp.NewToolResultError(fmt.Sprintf("post not found: %s", slug)), nil
	}
	return jsonResult(page.Post)
}

func (s *Server) listMedia(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page := s.resolver.Media(ctx, listing.MediaQuery{Type: req.GetString("type", "")})
	return jsonResult(page.Media)
}

func (s *Server) listPublications(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.resolver.Publications(ctx))
}

func (s *Server) getContentLayout(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(ContentLayout), nil
}

func (s *Server) readLayoutResource(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      LayoutURI,
			MIMEType: "text/markdown",
			Text:     ContentLayout,
		},
	}, nil
}
