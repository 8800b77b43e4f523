package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-strings-editor/internal/adapter"
	"github.com/MKhiriev/go-strings-editor/internal/client"
	"github.com/MKhiriev/go-strings-editor/internal/config"
	"github.com/MKhiriev/go-strings-editor/internal/crypto"
	"github.com/MKhiriev/go-strings-editor/internal/logger"
	"github.com/MKhiriev/go-strings-editor/internal/service"
	"github.com/MKhiriev/go-strings-editor/internal/store"
	"github.com/MKhiriev/go-strings-editor/internal/validators"
	"github.com/MKhiriev/go-strings-editor/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	if len(cfg.Command) > 0 && cfg.Command[0] == "version" {
		printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	log := logger.NewClientLogger("strings-client", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, log)
	stop()

	if err != nil {
		log.Err(err).Strs("command", cfg.Command[:min(1, len(cfg.Command))]).Msg("client run error")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) || errors.Is(err, client.ErrUsage) {
			fmt.Fprintln(os.Stderr, client.Usage())
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) error {
	partition := models.DefaultPartition
	if cfg.App.DefaultPartition != "" {
		p, err := models.ParsePartition(cfg.App.DefaultPartition)
		if err != nil {
			return fmt.Errorf("default partition: %w", err)
		}
		partition = p
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	validator := validators.NewStringsValidator()

	collaborator, err := adapter.NewHTTPSyncCollaborator(
		cfg.Adapter,
		cfg.App,
		storages.Credentials,
		crypto.NewCredentialSealer(cfg.App.CredentialsKey),
		validator,
		partition,
		log,
	)
	if err != nil {
		return fmt.Errorf("create sync collaborator: %w", err)
	}

	coordinator := service.NewCoordinator(collaborator, storages.Preferences, client.NewEventLogger(log), log, partition)

	return client.NewApp(coordinator, validator, os.Stdout, log).Run(ctx, cfg.Command)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
