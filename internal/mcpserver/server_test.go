package mcpserver

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/cyphera/cyphera-pitch/internal/chapters"
	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/cyphera/cyphera-pitch/internal/logger"
	"github.com/cyphera/cyphera-pitch/internal/mocks"
	"github.com/cyphera/cyphera-pitch/internal/render"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	bundles, err := content.NewLoader(content.EmbeddedFS()).LoadBundles(context.Background(), chapters.Default)
	require.NoError(t, err)

	source := mocks.NewMockContentSourceForTest(t)
	source.EXPECT().Registry().Return(chapters.Default).AnyTimes()
	source.EXPECT().DefaultLocale().Return(content.DE).AnyTimes()
	source.EXPECT().LoadedAt().Return(time.Now()).AnyTimes()
	source.EXPECT().Bundle(gomock.Any()).DoAndReturn(func(l content.Locale) *content.Bundle {
		if b, ok := bundles[l]; ok {
			return b
		}
		return bundles[content.DE]
	}).AnyTimes()

	return New(source, "test")
}

func callTool(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestNew_RegistersServer(t *testing.T) {
	s := newTestServer(t)
	assert.NotNil(t, s.MCPServer())
}

func TestHandleListChapters(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleListChapters(context.Background(), callTool("list_chapters", map[string]any{"locale": "en"}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var toc []render.TOCEntry
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &toc))
	require.Len(t, toc, chapters.Default.Len())
	assert.Equal(t, 2, toc[1].Index)
	assert.Equal(t, "business-model", toc[1].Slug)
	assert.Equal(t, "Business Model", toc[1].Title)
	require.NotEmpty(t, toc[1].Sections)
	assert.Equal(t, "2.1", toc[1].Sections[0].Number)
}

func TestHandleListChapters_DefaultsToGerman(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleListChapters(context.Background(), callTool("list_chapters", nil))
	require.NoError(t, err)

	var toc []render.TOCEntry
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &toc))
	assert.Equal(t, "Geschäftsmodell", toc[1].Title)
}

func TestHandleReadChapter(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name     string
		args     map[string]any
		isError  bool
		contains string
	}{
		{"by index", map[string]any{"chapter": "2", "locale": "en"}, false, "# 2. Business Model"},
		{"by slug", map[string]any{"chapter": "finance", "locale": "en"}, false, "# 6. Financial Plan"},
		{"index out of range", map[string]any{"chapter": "9"}, true, "Chapter not found: 9"},
		{"unknown slug", map[string]any{"chapter": "nope"}, true, "Chapter not found: nope"},
		{"missing chapter", map[string]any{}, true, "chapter is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.handleReadChapter(context.Background(), callTool("read_chapter", tt.args))
			require.NoError(t, err)
			assert.Equal(t, tt.isError, result.IsError)
			assert.Contains(t, resultText(t, result), tt.contains)
		})
	}
}

func TestHandleReadChapter_JSON(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleReadChapter(context.Background(),
		callTool("read_chapter", map[string]any{"chapter": "market", "locale": "en", "format": "json"}))
	require.NoError(t, err)

	var page render.Page
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &page))
	assert.Equal(t, 3, page.Index)
	assert.Equal(t, "market", page.Slug)
	require.NotEmpty(t, page.Sections)
	assert.Equal(t, "3.1", page.Sections[0].Number)
}

func TestHandleGetPitchDeck(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleGetPitchDeck(context.Background(), callTool("get_pitch_deck", map[string]any{"locale": "en"}))
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "# Cyphera Business Plan")
	assert.Contains(t, text, "## 8. Funding")

	result, err = s.handleGetPitchDeck(context.Background(), callTool("get_pitch_deck", map[string]any{"format": "json"}))
	require.NoError(t, err)
	var deck render.Deck
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &deck))
	assert.Len(t, deck.Slides, chapters.Default.Len())
}

func TestHandleGetRouteParams(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleGetRouteParams(context.Background(), callTool("get_route_params", nil))
	require.NoError(t, err)

	var params []chapters.RouteParams
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &params))
	require.Len(t, params, chapters.Default.Len())
	assert.Equal(t, "1", params[0].ChapterID)
}

func TestHandleIndexResource(t *testing.T) {
	s := newTestServer(t)

	var req mcp.ReadResourceRequest
	req.Params.URI = "pitch://index/en"
	contents, err := s.handleIndexResource(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "pitch://index/en", text.URI)
	assert.Equal(t, "application/json", text.MIMEType)
	assert.Contains(t, text.Text, "Financial Plan")

	req.Params.URI = "pitch://index/fr"
	_, err = s.handleIndexResource(context.Background(), req)
	assert.Error(t, err)
}

func TestHandleSummarizeChapterPrompt(t *testing.T) {
	s := newTestServer(t)

	var req mcp.GetPromptRequest
	req.Params.Arguments = map[string]string{"chapter": "team", "locale": "en"}
	result, err := s.handleSummarizeChapterPrompt(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Messages, 1)
	assert.Equal(t, mcp.RoleUser, result.Messages[0].Role)
	assert.Contains(t, result.Description, "Team & Organisation")

	req.Params.Arguments = map[string]string{"chapter": "42"}
	_, err = s.handleSummarizeChapterPrompt(context.Background(), req)
	assert.Error(t, err)
}
