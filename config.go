package main

import (
	"flag"
	"os"
)

// Config carries every server knob. Values come from flags first, then
// environment, then defaults.
type Config struct {
	Addr      string // plaintext listener
	TLSAddr   string // TLS listener, skipped when cert/key are absent
	CertFile  string
	KeyFile   string
	ClientDir string
	DataDir   string
	LevelDir  string
	LevelName string
	Postgres  string // connection string; empty selects the file store
	LogLevel  string
	Seed      int64 // 0 seeds from the wall clock
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// loadConfig parses flags and environment into a Config.
func loadConfig() Config {
	var cfg Config
	flag.StringVar(&cfg.Addr, "addr", envOr("BC_ADDR", ":8081"), "plaintext listen address")
	flag.StringVar(&cfg.TLSAddr, "tls-addr", envOr("BC_TLS_ADDR", ":8443"), "TLS listen address")
	flag.StringVar(&cfg.CertFile, "cert", envOr("BC_CERT", ""), "TLS certificate file")
	flag.StringVar(&cfg.KeyFile, "key", envOr("BC_KEY", ""), "TLS key file")
	flag.StringVar(&cfg.ClientDir, "client", envOr("BC_CLIENT_DIR", "client"), "client bundle directory")
	flag.StringVar(&cfg.DataDir, "data", envOr("BC_DATA_DIR", "playerdata"), "player data directory")
	flag.StringVar(&cfg.LevelDir, "levels", envOr("BC_LEVEL_DIR", "levels"), "level document directory")
	flag.StringVar(&cfg.LevelName, "level", envOr("BC_LEVEL", ""), "level to load (empty for default)")
	flag.StringVar(&cfg.Postgres, "postgres", envOr("BC_POSTGRES", ""), "PostgreSQL connection string (empty for file store)")
	flag.StringVar(&cfg.LogLevel, "log-level", envOr("BC_LOG_LEVEL", "info"), "log level")
	flag.Int64Var(&cfg.Seed, "seed", 0, "world RNG seed (0 for random)")
	flag.Parse()
	return cfg
}
