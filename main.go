package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Thwargle/BrowseronsCall-sub000/internal/level"
	"github.com/Thwargle/BrowseronsCall-sub000/internal/persistence"
)

func main() {
	cfg := loadConfig()

	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	} else {
		logrus.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	store, err := openStore(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open player store")
	}
	defer store.Close()

	lvl, err := level.Load(cfg.LevelDir, cfg.LevelName)
	if err != nil {
		logrus.WithError(err).WithField("level", cfg.LevelName).Fatal("failed to load level")
	}
	logrus.WithField("level", lvl.Name).Info("level loaded")

	world := newWorld(lvl, store, cfg.Seed)
	hub := newHub(world)

	stop := make(chan struct{})
	go hub.RunSimulation(stop)
	go hub.RunProjectileMotion(stop)
	go hub.RunAutosave(stop)

	mux := newMux(hub, &cfg)

	plain := &http.Server{Addr: cfg.Addr, Handler: mux}
	go func() {
		logrus.WithField("addr", cfg.Addr).Info("listening")
		if err := plain.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	var secure *http.Server
	if cfg.CertFile != "" && cfg.KeyFile != "" {
		secure = &http.Server{Addr: cfg.TLSAddr, Handler: mux}
		go func() {
			logrus.WithField("addr", cfg.TLSAddr).Info("listening with TLS")
			if err := secure.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logrus.WithError(err).Fatal("TLS server failed")
			}
		}()
	} else {
		logrus.Warn("no TLS certificate configured, serving plaintext only")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	<-ctx.Done()
	logrus.Info("shutting down")

	close(stop)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := plain.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("shutdown error")
	}
	if secure != nil {
		if err := secure.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Warn("TLS shutdown error")
		}
	}

	hub.mu.Lock()
	world.persistAll()
	hub.mu.Unlock()
	logrus.Info("player data saved")
}

// openStore selects the persistence backend. A configured connection
// string selects PostgreSQL, otherwise players are saved as JSON files
// under the data directory.
func openStore(cfg Config) (persistence.Store, error) {
	if cfg.Postgres != "" {
		logrus.Info("using PostgreSQL player store")
		return persistence.NewPostgresStore(cfg.Postgres)
	}
	logrus.WithField("dir", cfg.DataDir).Info("using file player store")
	return persistence.NewFileStore(cfg.DataDir)
}
