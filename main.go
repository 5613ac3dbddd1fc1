package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ramesh-HM-001/aimeetingnotes/clients/gemini"
	"github.com/Ramesh-HM-001/aimeetingnotes/clients/whisper"
	"github.com/Ramesh-HM-001/aimeetingnotes/config"
	"github.com/Ramesh-HM-001/aimeetingnotes/handlers/api"
	"github.com/Ramesh-HM-001/aimeetingnotes/logger"
	"github.com/Ramesh-HM-001/aimeetingnotes/services/meeting"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.LogDir, cfg.Debug); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if cfg.Whisper.APIKey == "" {
		logrus.Warn("OPENAI_API_KEY is not set; transcription will fail")
	}
	if len(cfg.Gemini.APIKeys) == 0 {
		logrus.Warn("GEMINI_API_KEY is not set; summarization will fail")
	}

	// Initialize downstream clients
	transcriber := whisper.NewClient(whisper.Config{
		APIKey:  cfg.Whisper.APIKey,
		Model:   cfg.Whisper.Model,
		BaseURL: cfg.Whisper.BaseURL,
		Timeout: cfg.Whisper.Timeout,
	})
	summarizer := gemini.NewClient(gemini.Config{
		APIKeys: cfg.Gemini.APIKeys,
		Model:   cfg.Gemini.Model,
	})

	// Initialize meeting service
	meetingService := meeting.NewService(transcriber, summarizer, meeting.Config{
		TempDir: cfg.TempDir,
	})

	// Initialize server
	server, err := api.NewServer(cfg, meetingService)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	// Graceful shutdown setup
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdownChan
		logrus.Info("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logrus.WithError(err).Error("Server shutdown error")
		}
	}()

	if err := server.Start(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
