package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cyphera/cyphera-pitch/internal/chapters"
	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/cyphera/cyphera-pitch/internal/interfaces"
	"github.com/cyphera/cyphera-pitch/internal/logger"
	"github.com/cyphera/cyphera-pitch/internal/render"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

const (
	serverName = "Cyphera Pitch"

	formatMarkdown = "markdown"
	formatJSON     = "json"

	indexURIPrefix = "pitch://index/"
)

// Server exposes chapters, the deck and route params to MCP clients.
type Server struct {
	source interfaces.ContentSource
	mcp    *server.MCPServer
}

// New registers every tool, resource and prompt on a fresh MCP server.
func New(source interfaces.ContentSource, version string) *Server {
	s := &Server{
		source: source,
		mcp: server.NewMCPServer(
			serverName,
			version,
			server.WithToolCapabilities(true),
			server.WithResourceCapabilities(true, true),
			server.WithPromptCapabilities(true),
		),
	}

	localeOpt := mcp.WithString("locale",
		mcp.Description("Language locale: 'de' for German, 'en' for English"),
		mcp.DefaultString(string(source.DefaultLocale())),
	)
	formatOpt := mcp.WithString("format",
		mcp.Description("Output format: 'markdown' or 'json'"),
		mcp.DefaultString(formatMarkdown),
	)

	s.mcp.AddTool(
		mcp.NewTool("list_chapters",
			mcp.WithDescription("List all chapters of the business plan in order, with their numbered sections."),
			localeOpt,
		),
		s.handleListChapters,
	)
	s.mcp.AddTool(
		mcp.NewTool("read_chapter",
			mcp.WithDescription("Read one chapter of the business plan. Chapters are addressed by 1-based index or slug."),
			mcp.WithString("chapter",
				mcp.Required(),
				mcp.Description("Chapter index (e.g. '2') or slug (e.g. 'business-model')"),
			),
			localeOpt,
			formatOpt,
		),
		s.handleReadChapter,
	)
	s.mcp.AddTool(
		mcp.NewTool("get_pitch_deck",
			mcp.WithDescription("Get the condensed pitch deck: one slide per chapter with headline figures."),
			localeOpt,
			formatOpt,
		),
		s.handleGetPitchDeck,
	)
	s.mcp.AddTool(
		mcp.NewTool("get_route_params",
			mcp.WithDescription("List the static route parameters, one {chapterId} per chapter."),
		),
		s.handleGetRouteParams,
	)

	for _, l := range content.Supported {
		s.mcp.AddResource(
			mcp.NewResource(
				indexURIPrefix+string(l),
				fmt.Sprintf("Pitch Index (%s)", strings.ToUpper(string(l))),
				mcp.WithResourceDescription("Table of contents with section numbering"),
				mcp.WithMIMEType("application/json"),
			),
			s.handleIndexResource,
		)
	}

	s.mcp.AddPrompt(
		mcp.NewPrompt("summarize_chapter",
			mcp.WithPromptDescription("Summarize one chapter of the business plan for an investor"),
			mcp.WithArgument("chapter",
				mcp.ArgumentDescription("Chapter index or slug"),
			),
			mcp.WithArgument("locale",
				mcp.ArgumentDescription("Language: 'de' or 'en'"),
			),
		),
		s.handleSummarizeChapterPrompt,
	)

	return s
}

// MCPServer returns the underlying server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// ServeStdio serves on stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	logger.Info("Starting MCP server on stdio")
	return server.ServeStdio(s.mcp)
}

func (s *Server) bundle(locale string) *content.Bundle {
	l, ok := content.ParseLocale(locale)
	if !ok {
		l = s.source.DefaultLocale()
	}
	return s.source.Bundle(l)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) handleListChapters(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	b := s.bundle(req.GetString("locale", string(s.source.DefaultLocale())))
	return jsonResult(render.BuildTOC(b, s.source.Registry()))
}

func (s *Server) handleReadChapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref := strings.TrimSpace(req.GetString("chapter", ""))
	if ref == "" {
		return mcp.NewToolResultError("chapter is required"), nil
	}

	b := s.bundle(req.GetString("locale", string(s.source.DefaultLocale())))
	page, err := render.BuildPage(b, s.source.Registry(), ref)
	if err != nil {
		if chapters.IsNotFound(err) {
			return mcp.NewToolResultError(fmt.Sprintf("Chapter not found: %s", ref)), nil
		}
		logger.Error("Failed to render chapter", zap.String("chapter", ref), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("Error reading chapter: %v", err)), nil
	}

	if req.GetString("format", formatMarkdown) == formatJSON {
		return jsonResult(page)
	}
	return mcp.NewToolResultText(render.PageMarkdown(page)), nil
}

func (s *Server) handleGetPitchDeck(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	b := s.bundle(req.GetString("locale", string(s.source.DefaultLocale())))
	deck := render.BuildDeck(b, s.source.Registry())

	if req.GetString("format", formatMarkdown) == formatJSON {
		return jsonResult(deck)
	}
	return mcp.NewToolResultText(render.DeckMarkdown(deck)), nil
}

func (s *Server) handleGetRouteParams(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.source.Registry().StaticRouteParams())
}

func (s *Server) handleIndexResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	locale, ok := content.ParseLocale(strings.TrimPrefix(uri, indexURIPrefix))
	if !strings.HasPrefix(uri, indexURIPrefix) || !ok {
		return nil, fmt.Errorf("unknown resource: %s", uri)
	}

	b := s.source.Bundle(locale)
	index, err := json.MarshalIndent(render.BuildTOC(b, s.source.Registry()), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding index: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(index),
		},
	}, nil
}

func (s *Server) handleSummarizeChapterPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	ref := "1"
	locale := string(s.source.DefaultLocale())
	if args := req.Params.Arguments; args != nil {
		if c := strings.TrimSpace(args["chapter"]); c != "" {
			ref = c
		}
		if l := args["locale"]; l != "" {
			locale = l
		}
	}

	b := s.bundle(locale)
	page, err := render.BuildPage(b, s.source.Registry(), ref)
	if err != nil {
		return nil, fmt.Errorf("error reading chapter %s: %w", ref, err)
	}

	promptText := fmt.Sprintf(`Summarize the chapter "%s" of the %s business plan for an investor in three short paragraphs. Keep every figure exactly as written.

%s`, page.Title, b.T("site.title", serverName), render.PageMarkdown(page))

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Summary of chapter %d: %s", page.Index, page.Title),
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(promptText),
			},
		},
	}, nil
}
