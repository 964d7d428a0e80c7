// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the paper collection over HTTP: a browser
// index page and a small JSON API for adding, listing, deleting, and
// exporting papers.
package server

import (
	_ "embed"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/nro337/docparse/internal/export"
	"github.com/nro337/docparse/internal/ingest"
	"github.com/nro337/docparse/internal/store"
	"github.com/nro337/docparse/pkg/types"
)

//go:embed index.html
var indexHTML string

// Server binds store operations to HTTP routes.
type Server struct {
	app       *fiber.App
	store     *store.Store
	ingestor  *ingest.Ingestor
	exportCfg types.ExportConfig
}

// New wires the Fiber app with all routes registered.
func New(s *store.Store, in *ingest.Ingestor, exportCfg types.ExportConfig) *Server {
	app := fiber.New(fiber.Config{
		AppName: "docparse",
	})
	app.Use(recover.New())
	app.Use(logger.New())

	srv := &Server{
		app:       app,
		store:     s,
		ingestor:  in,
		exportCfg: exportCfg,
	}
	srv.routes()
	return srv
}

// App returns the underlying Fiber app. Tests drive it via app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) routes() {
	s.app.Get("/", s.handleIndex)
	s.app.Get("/api/papers", s.handleListPapers)
	s.app.Post("/api/papers", s.handleAddPaper)
	s.app.Delete("/api/papers/:id", s.handleDeletePaper)
	s.app.Post("/api/export", s.handleExport)
}

func (s *Server) handleIndex(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(indexHTML)
}

func (s *Server) handleListPapers(c *fiber.Ctx) error {
	return c.JSON(s.store.List())
}

// addRequest is the POST /api/papers body.
type addRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleAddPaper(c *fiber.Ctx) error {
	var req addRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	url := strings.TrimSpace(req.URL)
	if url == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "URL is required"})
	}

	paper, err := s.ingestor.Add(c.UserContext(), url)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(paper.Summary())
}

func (s *Server) handleDeletePaper(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "paper ID must be an integer"})
	}

	if err := s.store.Remove(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Paper not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true})
}

func (s *Server) handleExport(c *fiber.Ctx) error {
	path, err := export.Write(s.store.Papers(), s.exportCfg, "")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "filename": path})
}

// Run serves on cfg.Addr until SIGINT or SIGTERM, then shuts down
// gracefully within cfg.ShutdownTimeout.
func (s *Server) Run(cfg types.ServerConfig) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(cfg.Addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
		timeout := cfg.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		return s.app.ShutdownWithTimeout(timeout)
	}
}
