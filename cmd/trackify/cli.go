package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shubham56-h/Trackify/internal/api"
	"github.com/shubham56-h/Trackify/internal/config"
	"github.com/shubham56-h/Trackify/internal/live"
	"github.com/shubham56-h/Trackify/internal/logging"
	"github.com/shubham56-h/Trackify/internal/metrics"
	"github.com/shubham56-h/Trackify/internal/repository/postgres"
	"github.com/shubham56-h/Trackify/internal/service"
	log "github.com/sirupsen/logrus"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version kong.VersionFlag `help:"Show version information"`
	Config  string           `help:"Path to a YAML config file" type:"path" env:"TRACKIFY_CONFIG"`

	Serve   ServeCmd   `cmd:"" help:"Run the HTTP API (default)" default:"1"`
	Migrate MigrateCmd `cmd:"" help:"Manage the database schema"`
	Seed    SeedCmd    `cmd:"" help:"Install template splits and default exercises"`

	cfg *config.Config `kong:"-"`
}

// AfterApply loads config and initializes logging before any command runs
func (c *CLI) AfterApply() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	logging.Setup(logging.SetupParams{
		LogFileName:   cfg.LogFile,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogJSON,
	})
	c.cfg = cfg
	return nil
}

type ServeCmd struct {
	Seed bool `help:"Seed templates and default exercises at startup" default:"true" negatable:""`
}

func (s *ServeCmd) Run(cli *CLI) error {
	cfg := cli.cfg

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewManager("trackify", "api", reg)

	repos := postgres.NewRepositories(db)

	hub := live.NewHub(m)
	go hub.Run()
	defer hub.Stop()

	services := service.NewServices(repos, postgres.NewTransactor(db), cfg, hub, m)

	if s.Seed {
		report, err := services.Seeder.Seed(context.Background())
		if err != nil {
			return fmt.Errorf("seeding: %w", err)
		}
		log.Infof("Seed: %d templates created, %d exercises created", report.TemplatesCreated, report.ExercisesCreated)
	}

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      api.NewRouter(services, hub, m, reg),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Server starting on port %s (%s)", cfg.Port, cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped")
	return nil
}

type MigrateCmd struct {
	Up      MigrateUpCmd      `cmd:"" help:"Apply all pending migrations"`
	Down    MigrateDownCmd    `cmd:"" help:"Roll back migrations"`
	Version MigrateVersionCmd `cmd:"" help:"Print the current schema version"`
}

type MigrateUpCmd struct{}

func (m *MigrateUpCmd) Run(cli *CLI) error {
	if err := postgres.RunMigrations(cli.cfg.DatabaseURL); err != nil {
		return err
	}
	log.Info("Migrations applied")
	return nil
}

type MigrateDownCmd struct {
	Steps int `help:"Number of migrations to roll back" default:"1"`
}

func (m *MigrateDownCmd) Run(cli *CLI) error {
	if m.Steps <= 0 {
		return fmt.Errorf("steps must be positive")
	}
	if err := postgres.RollbackMigrations(cli.cfg.DatabaseURL, m.Steps); err != nil {
		return err
	}
	log.Infof("Rolled back %d migration(s)", m.Steps)
	return nil
}

type MigrateVersionCmd struct{}

func (m *MigrateVersionCmd) Run(cli *CLI) error {
	version, dirty, err := postgres.MigrationVersion(cli.cfg.DatabaseURL)
	if err != nil {
		return err
	}
	fmt.Printf("version %d (dirty: %t)\n", version, dirty)
	return nil
}

type SeedCmd struct{}

func (s *SeedCmd) Run(cli *CLI) error {
	cfg := cli.cfg

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
		return err
	}

	services := service.NewServices(postgres.NewRepositories(db), postgres.NewTransactor(db), cfg, nil, nil)
	report, err := services.Seeder.Seed(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("templates: %d created, %d already present\n", report.TemplatesCreated, report.TemplatesSkipped)
	fmt.Printf("exercises: %d created\n", report.ExercisesCreated)
	return nil
}
