package wire

import (
	"net/http"

	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/adaptor"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/repository"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/usecase"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/cache"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/metrics"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/middleware"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring composes repositories, services, handlers and routes.
func Wiring(repo *repository.Repository, config *utils.Config, reportCache *cache.Cache, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, reportCache, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	metrics.Register()

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(config.Workflow.RateLimitRPS, config.Workflow.RateLimitBurst))

	wireAuth(r, handler.Auth, repo, logger)
	wireUser(r, handler.User, repo, logger)
	wireEquipment(r, handler.Equipment, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)
	wireWorkflow(r, handler.Workflow, repo, logger)
	wireReport(r, handler.Report, repo, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
