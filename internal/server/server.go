// Package server exposes the directory over HTTP: a plain-text dump of the
// table on GET / and the voice platform webhook on POST /.
package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"wfmu-archive/internal/directory"
	"wfmu-archive/models"
)

type Server struct {
	config *models.Config
	store  *directory.Store
	logger *slog.Logger
	app    *fiber.App
}

func New(config *models.Config, store *directory.Store, logger *slog.Logger) *Server {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(fiberlogger.New())

	s := &Server{
		config: config,
		store:  store,
		logger: logger,
		app:    app,
	}

	app.Get("/", s.handleDirectoryDump)
	app.Post("/", s.handleWebhook)
	return s
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP on the configured address.
func (s *Server) Listen() error {
	addr := s.config.ListenAddr()
	s.logger.Info("listening", "addr", addr)
	return s.app.Listen(addr)
}
