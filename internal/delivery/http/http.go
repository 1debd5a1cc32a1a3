package http

import (
	"github.com/arnav-sinha2713/trading-journal/config"
	"github.com/arnav-sinha2713/trading-journal/internal/repository"
	"github.com/arnav-sinha2713/trading-journal/internal/service"
	"github.com/arnav-sinha2713/trading-journal/pkg/logger"
	"github.com/arnav-sinha2713/trading-journal/pkg/middleware"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type HttpAPIHandler struct {
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
	authRepo  repository.AuthRepository
	cfg       *config.Config
	log       *logger.Logger
}

func NewHttpAPIHandler(echo *echo.Echo, validator *goValidator.Validate, service *service.Service, authRepo repository.AuthRepository, cfg *config.Config, log *logger.Logger) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:      echo,
		validator: validator,
		service:   service,
		authRepo:  authRepo,
		cfg:       cfg,
		log:       log,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.Use(middleware.NewRateLimiterMiddleware(h.cfg.API.MaxRequestPerSecond, h.cfg.API.BurstRequest))

	base := h.echo.Group("/api")
	h.SetupJournal(base)
}
