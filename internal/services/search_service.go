package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"rumbo/pkg/logger"
)

const serperEndpoint = "https://google.serper.dev/search"

// Sentinel texts substituted when search degrades. Downstream prompt
// assembly consumes these as-is instead of branching on failure.
const (
	SearchUnavailableMessage = "Búsqueda web no disponible."
	SearchErrorMessage       = "Error al buscar en internet."
)

type SearchStatus string

const (
	SearchOK          SearchStatus = "ok"
	SearchUnavailable SearchStatus = "unavailable"
	SearchFailed      SearchStatus = "failed"
)

// SearchResult always carries usable text. Status lets callers tell
// "no credential" from "search failed" without an error path.
type SearchResult struct {
	Query  string
	Text   string
	Status SearchStatus
}

type SearchServiceInterface interface {
	Search(ctx context.Context, query string) SearchResult
}

type SerperSearchService struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func NewSerperSearchService(apiKey string, httpClient *http.Client) SearchServiceInterface {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &SerperSearchService{
		apiKey:     apiKey,
		endpoint:   serperEndpoint,
		httpClient: httpClient,
	}
}

type serperRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
	HL  string `json:"hl"`
}

type serperResponse struct {
	Organic []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
	} `json:"organic"`
}

// Search never returns an error: any failure degrades to a sentinel text.
func (s *SerperSearchService) Search(ctx context.Context, query string) SearchResult {
	if s.apiKey == "" {
		return SearchResult{Query: query, Text: SearchUnavailableMessage, Status: SearchUnavailable}
	}

	body, err := json.Marshal(serperRequest{Q: query, Num: 6, HL: "es"})
	if err != nil {
		return SearchResult{Query: query, Text: SearchErrorMessage, Status: SearchFailed}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return SearchResult{Query: query, Text: SearchErrorMessage, Status: SearchFailed}
	}
	req.Header.Set("X-API-KEY", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.Log.Warn("internet search failed", zap.String("query", query), zap.Error(err))
		return SearchResult{Query: query, Text: SearchErrorMessage, Status: SearchFailed}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Warn("internet search returned non-200", zap.String("query", query), zap.Int("status", resp.StatusCode))
		return SearchResult{Query: query, Text: SearchErrorMessage, Status: SearchFailed}
	}

	var parsed serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		logger.Log.Warn("internet search returned bad payload", zap.String("query", query), zap.Error(err))
		return SearchResult{Query: query, Text: SearchErrorMessage, Status: SearchFailed}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Resultados de búsqueda para %q:\n", query)
	for _, result := range parsed.Organic {
		fmt.Fprintf(&sb, "- %s: %s\n (Fuente: %s)\n", result.Title, result.Snippet, result.Link)
	}

	return SearchResult{Query: query, Text: sb.String(), Status: SearchOK}
}
