package runtime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muratoffalex/inferhub/internal/cache"
	"github.com/muratoffalex/inferhub/internal/logger"
)

func TestHubClient_ModelCard(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/api/models/google/vit-base-patch16-224", r.URL.Path)
		w.Write([]byte(`{"id":"google/vit-base-patch16-224","pipeline_tag":"image-classification","downloads":1000,"likes":42}`))
	}))
	defer server.Close()

	h := NewHubClient(server.URL, http.DefaultClient, cache.NewMemoryCache(), time.Minute, logger.NewTestLogger())

	card, err := h.ModelCard(context.Background(), "google/vit-base-patch16-224")
	require.NoError(t, err)
	assert.Equal(t, "image-classification", card.PipelineTag)
	assert.EqualValues(t, 1000, card.Downloads)

	// second lookup is served from cache
	_, err = h.ModelCard(context.Background(), "google/vit-base-patch16-224")
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
}

func TestHubClient_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	h := NewHubClient(server.URL, http.DefaultClient, cache.NewMemoryCache(), time.Minute, logger.NewTestLogger())

	_, err := h.ModelCard(context.Background(), "no/such-model")
	assert.Error(t, err)
}
