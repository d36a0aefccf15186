package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/muratoffalex/inferhub/internal/cache"
	"github.com/muratoffalex/inferhub/internal/logger"
)

// ModelCard is the public hub metadata for one model. Informational only:
// selectability always comes from the registry catalog.
type ModelCard struct {
	ID          string `json:"id"`
	PipelineTag string `json:"pipeline_tag"`
	Downloads   int64  `json:"downloads"`
	Likes       int64  `json:"likes"`
	LibraryName string `json:"library_name"`
}

// HubClient fetches model cards from the hub with TTL caching, so the
// verbose models listing does not hammer the hub on every call.
type HubClient struct {
	hubURL string
	client *http.Client
	cache  cache.Cache
	ttl    time.Duration
	logger logger.Logger
}

func NewHubClient(hubURL string, client *http.Client, c cache.Cache, ttl time.Duration, log logger.Logger) *HubClient {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &HubClient{
		hubURL: strings.TrimSuffix(hubURL, "/"),
		client: client,
		cache:  c,
		ttl:    ttl,
		logger: log,
	}
}

func (h *HubClient) ModelCard(ctx context.Context, modelID string) (*ModelCard, error) {
	cacheKey := "hub:model:" + modelID
	if data, ok := h.cache.Get(cacheKey); ok {
		var card ModelCard
		if err := json.Unmarshal(data, &card); err == nil {
			return &card, nil
		}
	}

	endpoint, err := url.JoinPath(h.hubURL, "api", "models", modelID)
	if err != nil {
		return nil, fmt.Errorf("failed to build hub URL: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hub request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hub returned %d for %s", resp.StatusCode, modelID)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading hub response failed: %w", err)
	}

	var card ModelCard
	if err := json.Unmarshal(body, &card); err != nil {
		return nil, fmt.Errorf("unexpected hub response: %w", err)
	}

	if err := h.cache.Set(cacheKey, body, h.ttl); err != nil {
		h.logger.WithError(err).Warn("Failed to cache model card")
	}
	return &card, nil
}
