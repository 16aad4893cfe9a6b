package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/nuts-foundation/doc-signer/logging"
	"github.com/nuts-foundation/doc-signer/pkg"
)

// MaxUploadSize caps document uploads
const MaxUploadSize = "10M"

// Config holds the server configuration. When Logger is set, the request log is
// written to its output.
type Config struct {
	Address   string
	PublicURL string
	Logger    *logrus.Logger
}

// Server serves the doc-signer api over http
type Server struct {
	config *Config
	echo   *echo.Echo
}

// New builds an http server for the doc-signer api. The server is CORS enabled since the
// signing frontend is served from a different origin.
func New(config *Config, client pkg.DocSignerClient) *Server {
	e := echo.New()
	e.HideBanner = true
	loggerConfig := middleware.DefaultLoggerConfig
	if config.Logger != nil {
		loggerConfig.Output = config.Logger.Out
	}
	e.Use(middleware.LoggerWithConfig(loggerConfig))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(MaxUploadSize))

	RegisterHandlers(e, &Wrapper{DocSigner: client, PublicURL: config.PublicURL})

	return &Server{config: config, echo: e}
}

// Start binds the server to the configured address and blocks until Shutdown is called
func (s *Server) Start() {
	if err := s.echo.Start(s.config.Address); err != nil && err != http.ErrServerClosed {
		logging.Log().WithError(err).Fatal("could not start http server")
	}
}

// Shutdown stops the server, waiting at most 5 seconds for running requests
func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.echo.Shutdown(ctx); err != nil {
		logging.Log().WithError(err).Error("error during http server shutdown")
	}
}
