package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"coffeeshop/config"
	"coffeeshop/internal/delivery"
	apimiddleware "coffeeshop/internal/delivery/api/middleware"
	"coffeeshop/internal/delivery/api/router"
	"coffeeshop/internal/delivery/api/validator"
	"coffeeshop/internal/delivery/middleware"
	"coffeeshop/internal/domain/lifecycle"
	"coffeeshop/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	ErrorHandler *apimiddleware.ErrorMiddleware
	RouterParams router.RouterParams
}

// NewServer builds the coffee API server. Serving starts when the caller
// invokes Serve; shutdown is tied to the Fx lifecycle.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: newEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := params.Cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	// "/api/v1/coffees/" and "/api/v1/coffees" resolve to the same route
	e.Pre(echomiddleware.RemoveTrailingSlash())

	// Order matters: recover first, request ID before the access log
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))
	if timeouts.HandlerTimeout > 0 {
		e.Use(echomiddleware.ContextTimeout(timeouts.HandlerTimeout))
	}

	e.HTTPErrorHandler = params.ErrorHandler.HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting coffee API server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down coffee API server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
