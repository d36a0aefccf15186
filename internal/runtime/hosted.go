// Package runtime talks to the hosted pretrained-model endpoint. The
// endpoint is treated as a black box: raw input goes in, task-shaped JSON
// comes out. Weights, acceleration and download policy live on the other
// side of this boundary.
package runtime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/muratoffalex/inferhub/internal/config"
	"github.com/muratoffalex/inferhub/internal/logger"
	"github.com/muratoffalex/inferhub/internal/model"
)

// Hosted dispenses pipelines bound to single models on one inference
// endpoint. A shared limiter keeps the whole process inside the
// endpoint's request budget.
type Hosted struct {
	baseURL string
	token   string
	client  *http.Client
	limiter *rate.Limiter
	logger  logger.Logger
}

func NewHosted(cfg config.RuntimeConfig, client *http.Client, log logger.Logger) *Hosted {
	rps := cfg.RateLimit
	if rps <= 0 {
		rps = 2
	}
	return &Hosted{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		token:   cfg.Token,
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		logger:  log,
	}
}

// Pipeline satisfies model.PipelineFactory.
func (h *Hosted) Pipeline(d model.ModelDescriptor) (model.Pipeline, error) {
	if d.Zero() {
		return nil, fmt.Errorf("descriptor has no model id")
	}
	endpoint, err := url.JoinPath(h.baseURL, "models", d.ModelID)
	if err != nil {
		return nil, fmt.Errorf("failed to build endpoint URL: %w", err)
	}
	return &hostedPipeline{
		hosted:   h,
		endpoint: endpoint,
		logger:   h.logger.WithField("model", d.ModelID),
	}, nil
}

type hostedPipeline struct {
	hosted   *Hosted
	endpoint string
	logger   logger.Logger
}

type runtimeError struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}

func (p *hostedPipeline) Invoke(ctx context.Context, req model.PipelineRequest) (json.RawMessage, error) {
	if err := p.hosted.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var body []byte
	contentType := req.ContentType
	if req.JSON != nil {
		var err error
		body, err = json.Marshal(req.JSON)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		contentType = "application/json"
	} else {
		body = req.Raw
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	if p.hosted.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.hosted.token)
	}

	p.logger.WithFields(logger.Fields{
		"url":          p.endpoint,
		"content_type": contentType,
		"body_size":    len(body),
	}).Debug("Runtime request")

	resp, err := p.hosted.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("runtime request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading runtime response failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var rtErr runtimeError
		if json.Unmarshal(respBody, &rtErr) == nil && rtErr.Error != "" {
			if resp.StatusCode == http.StatusServiceUnavailable && rtErr.EstimatedTime > 0 {
				return nil, fmt.Errorf("model is loading on the runtime (estimated %.0fs): %s", rtErr.EstimatedTime, rtErr.Error)
			}
			return nil, fmt.Errorf("runtime error (%d): %s", resp.StatusCode, rtErr.Error)
		}
		return nil, fmt.Errorf("runtime error (%d): %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	return json.RawMessage(respBody), nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "...[truncated]"
}
