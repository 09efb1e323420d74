package main

import (
	"net/http"
	"os"

	"github.com/MalithGihan/flowseed/internal/config"
	"github.com/MalithGihan/flowseed/internal/fixture"
	"github.com/MalithGihan/flowseed/internal/logger"
	"github.com/MalithGihan/flowseed/internal/server"
	"github.com/MalithGihan/flowseed/internal/store"
)

func main() {
	cfg, envFile := config.Load()
	log := logger.New(cfg.Debug)
	if !envFile {
		log.Debug("No .env file found, using system environment variables")
	}

	if err := fixture.Verify(); err != nil {
		log.Fatal("built-in fixtures are broken", "err", err)
	}

	st, err := store.New(cfg.DataRoot)
	if err != nil {
		log.Fatal("open data root", "root", cfg.DataRoot, "err", err)
	}

	srv := server.New(st, log)
	log.Info("flowseed listening", "addr", cfg.Addr(), "data_root", cfg.DataRoot)
	if err := http.ListenAndServe(cfg.Addr(), srv.Routes()); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
