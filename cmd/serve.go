package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thechaitanyaanand/preseguide-api/api"
	"github.com/thechaitanyaanand/preseguide-api/api/types"
	"github.com/thechaitanyaanand/preseguide-api/internal/database"
	"github.com/thechaitanyaanand/preseguide-api/internal/models"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/analysis"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/audiostore"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/badges"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/coach"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/jobs"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/presentations"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/progression"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/recordings"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/scoring"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/transcription"
	"github.com/thechaitanyaanand/preseguide-api/internal/services/workers"
	"github.com/thechaitanyaanand/preseguide-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the PreseGuide API server with the configured settings.

The server handles presentation management, recording uploads, and
serves analysis results while background workers process queued
recordings.

Example:
  preseguide-api serve
  preseguide-api serve --port 9090
  preseguide-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(
		&models.Presentation{},
		&models.Recording{},
		&models.Badge{},
		&models.Job{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	deps, pool, err := buildDependencies(cfg, db)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if pool != nil {
		if err := pool.Start(ctx); err != nil {
			return fmt.Errorf("failed to start worker pool: %w", err)
		}
	}

	address := fmt.Sprintf("%s:%d", serverHost, serverPort)
	server := api.NewServer(address, cfg.Server.MaxUploadBytes)
	server.SetDatabase(db)
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	fmt.Printf("PreseGuide API listening on %s\n", address)

	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	// Workers first so in-flight analyses finish before connections close
	if pool != nil {
		pool.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}

// buildDependencies wires every service the handlers and workers need.
func buildDependencies(cfg *config.Config, db *database.DB) (*types.Dependencies, *workers.WorkerPool, error) {
	jobService := jobs.NewService(jobs.NewRepository(db.DB))

	ledger := progression.NewLedger(progression.Config{
		CreationXP:       cfg.Gamification.CreationXP,
		DocumentXP:       cfg.Gamification.DocumentXP,
		CompletionXP:     cfg.Gamification.CompletionXP,
		ImprovementXPCap: cfg.Gamification.ImprovementXPCap,
		LevelUpBonusXP:   cfg.Gamification.LevelUpBonusXP,
	})

	scorer := scoring.NewScorer(scoring.Config{
		IdealWPMLow:    cfg.Scoring.IdealWPMLow,
		IdealWPMHigh:   cfg.Scoring.IdealWPMHigh,
		PacingWeight:   cfg.Scoring.PacingWeight,
		ClarityWeight:  cfg.Scoring.ClarityWeight,
		CoverageWeight: cfg.Scoring.CoverageWeight,
	})

	presentationRepo := presentations.NewRepository(db.DB)
	presentationService := presentations.NewService(presentationRepo, ledger)

	recordingRepo := recordings.NewRepository(db.DB)
	recordingService := recordings.NewService(recordingRepo, jobService)

	badgeRepo := badges.NewRepository(db.DB)
	badgeService := badges.NewService(badgeRepo)

	audioStore, err := audiostore.NewFilesystemStore(cfg.Storage.AudioDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize audio storage: %w", err)
	}

	var generator coach.Generator
	if cfg.Gemini.APIKey != "" {
		generator = coach.NewClient(coach.Config{
			APIKey:  cfg.Gemini.APIKey,
			BaseURL: cfg.Gemini.BaseURL,
			Model:   cfg.Gemini.Model,
			Timeout: cfg.Gemini.Timeout,
		})
	} else {
		log.Printf("[DEBUG] No Gemini API key configured, coaching uses built-in feedback")
	}
	coachService := coach.NewService(generator)

	deps := &types.Dependencies{
		DB:                  db,
		PresentationService: presentationService,
		RecordingService:    recordingService,
		BadgeService:        badgeService,
		JobService:          jobService,
		CoachService:        coachService,
		AudioStore:          audioStore,
	}

	transcriber, err := transcription.NewWhisperClient(transcription.WhisperConfig{
		APIKey:      cfg.Whisper.APIKey,
		Model:       cfg.Whisper.Model,
		Language:    cfg.Whisper.Language,
		Temperature: cfg.Whisper.Temperature,
		Timeout:     cfg.Whisper.Timeout,
	})
	if err != nil {
		// Uploads still queue; jobs wait until a transcriber is configured
		log.Printf("[ERROR] Whisper client unavailable (%v), analysis workers disabled", err)
		return deps, nil, nil
	}

	pipeline := analysis.NewPipeline(
		recordingRepo,
		presentationRepo,
		badgeRepo,
		jobService,
		transcriber,
		coachService,
		scorer,
		ledger,
	)

	pool := workers.NewWorkerPool(jobService, cfg.Processing.Workers, cfg.Processing.PollInterval)
	pool.RegisterProcessor(workers.NewAnalysisProcessor(pipeline, jobService))

	deps.WorkerPool = pool
	return deps, pool, nil
}
