package apiapp

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/AbhigyaKrishna/margdarshak-backend/internal/config"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/metrics"
	aiflowsvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/aiflow"
	analysissvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/analysis"
	chartssvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/charts"
	gemssvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/gems"
	horoscopesvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/horoscope"
	userssvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/users"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/transport/http/handlers"
)

type Dependencies struct {
	UserService      *userssvc.Service
	HoroscopeService *horoscopesvc.Service
	ChartService     *chartssvc.Service
	GemService       *gemssvc.Service
	AnalysisService  *analysissvc.Service
	AIFlowService    *aiflowsvc.Service
	Metrics          prometheus.Gatherer
	Logger           *zap.Logger
	Config           config.Config
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	systemHandler := handlers.NewSystemHandler(deps.Config.App.Name)
	userHandler := handlers.NewUserHandler(deps.UserService)
	horoscopeHandler := handlers.NewHoroscopeHandler(deps.HoroscopeService)
	chartHandler := handlers.NewChartHandler(deps.ChartService)
	gemHandler := handlers.NewGemHandler(deps.GemService)
	analysisHandler := handlers.NewAnalysisHandler(deps.AnalysisService)
	aiflowHandler := handlers.NewAIFlowHandler(deps.AIFlowService)

	r.Route(deps.Config.App.APIPrefix, func(api chi.Router) {
		api.Get("/", systemHandler.Root)
		api.Get("/health", systemHandler.Health)

		api.Post("/user", userHandler.Create)
		api.Get("/user/{id}", userHandler.Get)

		api.Get("/horoscope/daily", horoscopeHandler.Daily)
		api.Get("/horoscope/monthly", horoscopeHandler.Monthly)
		api.Get("/horoscope/daily-by-user", horoscopeHandler.DailyByUser)
		api.Post("/horoscope/{variant}-chart", chartHandler.Generate)
		api.Post("/horoscope/analyze-chart", analysisHandler.Analyze)
		api.Post("/horoscope/gem-suggestion", gemHandler.Suggest)

		api.Post("/langflow/execute_ai", aiflowHandler.Execute)
	})

	if deps.Metrics != nil {
		r.Method("GET", "/metrics", metrics.Handler(deps.Metrics))
	}
}
