package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the guild bank HTTP server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 0, "HTTP server port (overrides PORT)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serverPort != 0 {
		cfg.Port = serverPort
	}

	svc, err := buildServices(cfg)
	if err != nil {
		return err
	}

	app := fiber.New()
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	svc.handler.RegisterRoutes(app)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.Port)
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-sigChan:
		slog.Info("Received shutdown signal, gracefully stopping...")
		if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			return err
		}
		slog.Info("Server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
