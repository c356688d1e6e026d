// negoprep-apiserver is the HTTP API server for the negotiation preparation
// service. It wires configuration, logging, the snapshot backend, the
// optional artifact archive and metrics, then serves until SIGINT/SIGTERM.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zaoqi-icu/negoprep/internal/config"
	"github.com/zaoqi-icu/negoprep/internal/export"
	"github.com/zaoqi-icu/negoprep/internal/interfaces/http"
	"github.com/zaoqi-icu/negoprep/internal/logging"
	"github.com/zaoqi-icu/negoprep/internal/metrics"
	"github.com/zaoqi-icu/negoprep/internal/planning"
	"github.com/zaoqi-icu/negoprep/internal/reporting"
	"github.com/zaoqi-icu/negoprep/internal/storage/file"
	"github.com/zaoqi-icu/negoprep/internal/storage/minio"
	"github.com/zaoqi-icu/negoprep/internal/storage/postgres"
	"github.com/zaoqi-icu/negoprep/internal/storage/redis"
)

// version is injected at build time via -ldflags.
var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to the YAML config file; empty loads from NEGOPREP_* env only")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("negoprep-apiserver", version)
		return
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	log, err := logging.NewLogger(logging.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		OutputPaths: cfg.Log.OutputPaths,
	})
	if err != nil {
		return err
	}
	logging.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	snap, closeSnap, err := newSnapshotStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeSnap()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	storeOpts := []planning.Option{}
	if m != nil {
		storeOpts = append(storeOpts, planning.WithMetrics(m))
	}
	store := planning.NewStore(ctx, snap, log, storeOpts...)

	gen, err := reporting.NewGenerator(log)
	if err != nil {
		return err
	}

	exportOpts := []export.Option{}
	if cfg.Archive.Enabled {
		archive, err := minio.New(ctx, cfg.Archive, log)
		if err != nil {
			return err
		}
		exportOpts = append(exportOpts, export.WithArchiver(archive))
	}
	if m != nil {
		exportOpts = append(exportOpts, export.WithRecorder(m))
	}
	exporter := export.New(cfg.Export, log, exportOpts...)

	routerCfg := http.RouterConfig{
		Mode:   cfg.Server.Mode,
		Plan:   http.NewPlanHandler(store, log),
		Report: http.NewReportHandler(store, gen, exporter, log),
		Health: http.NewHealthHandler(version),
		Log:    log,
	}
	if m != nil {
		routerCfg.MetricsHandler = m.Handler()
		routerCfg.MetricsPath = cfg.Metrics.Path
		routerCfg.Recorder = m
	}

	srv := http.NewServer(cfg.Server, http.NewRouter(routerCfg), log)

	log.Info("starting apiserver",
		logging.String("version", version),
		logging.Int("port", cfg.Server.Port),
		logging.String("backend", cfg.Storage.Backend),
	)
	return srv.Run(ctx)
}

// newSnapshotStore builds the snapshot backend selected by storage.backend.
// The returned close func releases backend connections; for the file backend
// it is a no-op.
func newSnapshotStore(ctx context.Context, cfg *config.Config, log logging.Logger) (planning.SnapshotStore, func(), error) {
	name := cfg.Storage.SnapshotName

	switch cfg.Storage.Backend {
	case config.BackendFile:
		s, err := file.New(cfg.Storage.File.Dir, name, log)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil

	case config.BackendRedis:
		s, err := redis.New(ctx, cfg.Storage.Redis, name, log)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil

	case config.BackendPostgres:
		s, err := postgres.New(ctx, cfg.Storage.Postgres, name, log)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
