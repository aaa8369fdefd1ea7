// Package server owns the listen+serve lifecycle for the HTTP kernel.
package server

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/mangamart/config"
	"github.com/shashiranjanraj/mangamart/pkg/logger"
)

// Start binds the configured port and serves the given handler.
// It blocks until the listener fails.
func Start(handler http.Handler) error {
	addr := ":" + config.AppPort()

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("mangamart listening", "addr", addr, "env", config.AppEnv())
	return srv.ListenAndServe()
}
