package wire

import (
	"net/http"
	"time"

	"resort-booking/internal/adaptor"
	"resort-booking/internal/data/repository"
	"resort-booking/internal/usecase"
	"resort-booking/pkg/middleware"
	"resort-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Recover sits innermost so its deferred recover runs inside the
	// goroutine Timeout spawns per request.
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Timeout(time.Duration(config.App.RequestTimeout)*time.Second, logger))
	r.Use(middleware.Recover(logger))

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, config, logger)
	wireResort(r, handler.Resort, config, logger)
	wireDashboard(r, handler.Dashboard, config, logger)

	// Uploaded resort images are served straight from disk
	r.Handle("/uploads/*", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(config.App.UploadPath))))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
