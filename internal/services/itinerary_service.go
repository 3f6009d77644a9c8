package services

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"rumbo/internal/knowledge"
	"rumbo/internal/models/request_models"
	"rumbo/pkg/logger"
	"rumbo/pkg/utils"
)

const (
	resultCacheTTL     = time.Hour
	resultCacheCleanup = 2 * time.Hour
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, preferences request_models.TravelPreferences, specificData map[string]string) (string, error)
}

type ItineraryService struct {
	orchestrator FallbackOrchestratorInterface
	search       SearchServiceInterface
	cache        *gocache.Cache
}

func NewItineraryService(orchestrator FallbackOrchestratorInterface, search SearchServiceInterface) ItineraryServiceInterface {
	return &ItineraryService{
		orchestrator: orchestrator,
		search:       search,
		cache:        gocache.New(resultCacheTTL, resultCacheCleanup),
	}
}

// GenerateItinerary runs the whole pipeline: credential check, knowledge
// lookup, concurrent web searches, prompt assembly and the provider
// fallback chain. Errors propagate untranslated; the controller is the
// only place that maps them to user-facing messages.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, preferences request_models.TravelPreferences, specificData map[string]string) (string, error) {
	if !s.orchestrator.HasUsableProvider() {
		return "", utils.ErrNoUsableKey
	}

	cacheKey := requestCacheKey(preferences, specificData)
	if cached, found := s.cache.Get(cacheKey); found {
		logger.Log.Info("itinerary served from cache", zap.String("destination", preferences.Destination))
		return cached.(string), nil
	}

	destinationInfo := knowledge.Find(preferences.Destination)

	interestQuery := fmt.Sprintf("turismo en %s", preferences.Destination)
	if len(preferences.Interests) > 0 {
		interestQuery = fmt.Sprintf("mejores sitios para %s en %s",
			strings.Join(preferences.Interests, ", "), preferences.Destination)
	}
	generalQuery := fmt.Sprintf("guía turística %s %d atracciones restaurantes",
		preferences.Destination, time.Now().Year())

	// Both searches run in parallel and both always produce text, degraded
	// or not, before prompt assembly continues.
	var interestResult, generalResult SearchResult
	g, searchCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		interestResult = s.search.Search(searchCtx, interestQuery)
		return nil
	})
	g.Go(func() error {
		generalResult = s.search.Search(searchCtx, generalQuery)
		return nil
	})
	_ = g.Wait()

	internetInfo := interestResult.Text + "\n\n" + generalResult.Text

	systemPrompt := BuildSystemPrompt(BuildContext(destinationInfo, internetInfo, specificData))
	userPrompt := BuildUserPrompt(preferences)

	result, err := s.orchestrator.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return "", err
	}

	s.cache.Set(cacheKey, result.Content, gocache.DefaultExpiration)
	return result.Content, nil
}

func requestCacheKey(preferences request_models.TravelPreferences, specificData map[string]string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%s|%s|%s",
		preferences.Destination,
		preferences.Duration,
		preferences.Budget,
		strings.Join(preferences.Interests, ","),
		preferences.Restrictions)

	keys := make([]string, 0, len(specificData))
	for key := range specificData {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(h, "|%s=%s", key, specificData[key])
	}

	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}
