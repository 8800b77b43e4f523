// Command strings-remote serves an in-memory strings repository that speaks
// the client's REST contract. It is meant for local trials of the client.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-strings-editor/internal/adapter/remotetest"
	"github.com/MKhiriev/go-strings-editor/internal/config"
	"github.com/MKhiriev/go-strings-editor/internal/logger"
	"github.com/MKhiriev/go-strings-editor/internal/server"
)

func main() {
	log := logger.NewLogger("strings-remote")

	cfg, err := config.GetRemoteConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	remote := remotetest.New(cfg.HashKey, log)
	if cfg.FixturePath != "" {
		if err = applyFixture(remote, cfg.FixturePath); err != nil {
			log.Fatal().Err(err).Str("path", cfg.FixturePath).Msg("error loading fixture")
		}
	}

	srv, err := server.NewHTTPServer(cfg.Address, remote, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server run error")
	}
}

func applyFixture(remote *remotetest.Server, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	fixture, err := remotetest.LoadFixture(f)
	if err != nil {
		return err
	}
	remote.Apply(fixture)
	return nil
}
