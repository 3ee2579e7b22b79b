// Package webhook serves the HTTP endpoint Telegram delivers updates to when
// the bot runs in webhook mode.
package webhook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/edgard/forwardinfo/internal/config"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	bodyLimit    = 1 << 20
)

// Server exposes the update route and a health check.
type Server struct {
	app    *fiber.App
	listen string
	logger *slog.Logger
}

// NewServer builds a server that passes POSTs on cfg.Path to updates.
// updates is usually (*bot.Bot).WebhookHandler(), which also checks the
// secret token header.
func NewServer(cfg config.WebhookConfig, updates http.HandlerFunc, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "webhook_server")

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           readTimeout,
		WriteTimeout:          writeTimeout,
		BodyLimit:             bodyLimit,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			log.Warn("Webhook request failed", "path", c.Path(), "status", code, "error", err)
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Use(recover.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Post(cfg.Path, adaptor.HTTPHandlerFunc(updates))

	return &Server{
		app:    app,
		listen: cfg.Listen,
		logger: log,
	}
}

// Start listens until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("Starting webhook server", "listen", s.listen)
	if err := s.app.Listen(s.listen); err != nil {
		return fmt.Errorf("webhook server: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Stopping webhook server")
	return s.app.ShutdownWithContext(ctx)
}
