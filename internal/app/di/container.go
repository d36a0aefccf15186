// Package di wires the application graph: config feeds the logger and
// the HTTP client, the hosted runtime feeds the manager, and everything
// is shared by reference from one container.
package di

import (
	"net/http"

	"github.com/muratoffalex/inferhub/internal/cache"
	"github.com/muratoffalex/inferhub/internal/config"
	"github.com/muratoffalex/inferhub/internal/display"
	"github.com/muratoffalex/inferhub/internal/logger"
	"github.com/muratoffalex/inferhub/internal/model"
	"github.com/muratoffalex/inferhub/internal/network"
	"github.com/muratoffalex/inferhub/internal/runtime"
)

type Container struct {
	Cfg        *config.Config
	Logger     logger.Logger
	Cache      cache.Cache
	HTTPClient *http.Client
	Runtime    *runtime.Hosted
	Hub        *runtime.HubClient
	Registry   *model.Registry
	Manager    *model.Manager
	Localizer  *display.Localizer
	Renderer   *display.Renderer
}

func NewContainer(cfg *config.Config) (*Container, error) {
	logCfg := cfg.Log()
	l := logger.NewLogrusLogger(logger.Options{
		Level:       logCfg.Level(),
		WriteInFile: logCfg.WriteInFile,
		FilePath:    logCfg.FilePath,
	})

	httpClient := network.SetupHTTPClient(network.NewDefaultHTTPClientConfig(cfg.HTTP()), l)
	memoryCache := cache.NewMemoryCache()

	runtimeCfg := cfg.Runtime()
	hosted := runtime.NewHosted(runtimeCfg, httpClient, l)
	hub := runtime.NewHubClient(runtimeCfg.HubURL, httpClient, memoryCache, runtimeCfg.ModelInfoTTL, l)

	registry := model.DefaultRegistry()
	manager := model.NewManager(registry, hosted.Pipeline, l)

	localizer, err := display.NewLocalizer(cfg.Console().Language)
	if err != nil {
		return nil, err
	}

	return &Container{
		Cfg:        cfg,
		Logger:     l,
		Cache:      memoryCache,
		HTTPClient: httpClient,
		Runtime:    hosted,
		Hub:        hub,
		Registry:   registry,
		Manager:    manager,
		Localizer:  localizer,
		Renderer:   display.NewRenderer(localizer),
	}, nil
}
