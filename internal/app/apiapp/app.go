package apiapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/AbhigyaKrishna/margdarshak-backend/internal/config"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/astrologyapi"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/gemini"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/horoscopeapi"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/httpclient"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/langflow"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/metrics"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/mongodb"
	mongorepo "github.com/AbhigyaKrishna/margdarshak-backend/internal/repo/mongodb"
	aiflowsvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/aiflow"
	analysissvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/analysis"
	chartssvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/charts"
	gemssvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/gems"
	geosvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/geo"
	horoscopesvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/horoscope"
	userssvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/users"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	mongo      *mongo.Client
	httpRouter http.Handler
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	r := chi.NewRouter()
	ApplyMiddlewares(r, log, collector)

	var mongoClient *mongo.Client
	if c, err := mongodb.Connect(ctx, cfg.Mongo); err != nil {
		log.Warn("mongodb init failed, continuing in degraded mode", zap.Error(err))
	} else {
		mongoClient = c
	}

	userRepo := mongorepo.NewUserRepo(mongoClient, cfg.Mongo.Database, cfg.Mongo.UserCollection)
	userService := userssvc.NewService(userRepo)
	geoService := geosvc.NewService(cfg.Astro.Cities)

	horoscopeClient := horoscopeapi.New(cfg.Horoscope, log)
	astrologyClient := astrologyapi.New(cfg.Astrology, log)
	geminiClient := gemini.New(cfg.Gemini, log)
	langflowClient := langflow.New(cfg.Langflow, log)

	horoscopeService := horoscopesvc.NewService(horoscopeClient, userService)
	chartService := chartssvc.NewService(userService, geoService, astrologyClient, cfg.Astro.TimezoneOffset)
	gemService := gemssvc.NewService(userService, geoService, astrologyClient, geminiClient, gemssvc.Config{
		TimezoneOffset: cfg.Astro.TimezoneOffset,
		Country:        cfg.Astro.Country,
	})
	analysisService := analysissvc.NewService(geminiClient, httpclient.New(cfg.Gemini.Timeout))

	var flowEndpoints map[string]string
	if endpoints, err := aiflowsvc.LoadEndpoints(cfg.Langflow.EndpointsFile); err != nil {
		log.Warn("flow endpoints load failed, only raw component ids will resolve", zap.Error(err))
	} else {
		flowEndpoints = endpoints
	}
	aiflowService := aiflowsvc.NewService(langflowClient, flowEndpoints)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	RegisterRoutes(r, Dependencies{
		UserService:      userService,
		HoroscopeService: horoscopeService,
		ChartService:     chartService,
		GemService:       gemService,
		AnalysisService:  analysisService,
		AIFlowService:    aiflowService,
		Metrics:          registry,
		Logger:           log,
		Config:           cfg,
	})

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		mongo:      mongoClient,
		httpRouter: r,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("api server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if err := a.server.Shutdown(ctx); err != nil {
		shutdownErr = err
	}
	if a.mongo != nil {
		if err := a.mongo.Disconnect(ctx); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}

	return shutdownErr
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}
