package main

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Thwargle/BrowseronsCall-sub000/internal/level"
)

// newMux wires the websocket endpoint, the level API, and the static
// client files onto one handler shared by the plain and TLS listeners.
func newMux(h *Hub, cfg *Config) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", h.serveWS)

	mux.HandleFunc("GET /api/levels", func(w http.ResponseWriter, r *http.Request) {
		names, err := level.List(cfg.LevelDir)
		if err != nil {
			logrus.WithError(err).Warn("failed to list levels")
			http.Error(w, "failed to list levels", http.StatusInternalServerError)
			return
		}
		writeJSON(w, names)
	})

	mux.HandleFunc("GET /api/level/{name}", func(w http.ResponseWriter, r *http.Request) {
		lvl, err := level.Load(cfg.LevelDir, r.PathValue("name"))
		if err != nil {
			logrus.WithError(err).WithField("level", r.PathValue("name")).Warn("failed to load level")
			http.Error(w, "level not found", http.StatusNotFound)
			return
		}
		writeJSON(w, lvl)
	})

	mux.Handle("/", http.FileServer(http.Dir(cfg.ClientDir)))

	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Debug("failed to write response")
	}
}
