package app

import (
	"context"
	"log/slog"

	"vietkichban/internal/api"
	"vietkichban/internal/storage"
	"vietkichban/pkg/config"
	"vietkichban/pkg/prompts"
)

type BuildResult struct {
	Service *Service
	Close   func() error
}

func BuildService(ctx context.Context, cfg *config.Config) (*BuildResult, error) {
	p, err := prompts.Load()
	if err != nil {
		return nil, err
	}

	client := api.NewClient(api.Options{BaseURL: cfg.API.BaseURL})

	closeFn := func() error { return nil }

	var saver storage.Saver
	if cfg.GCS.Enabled {
		gcs, err := storage.NewGCSStorage(ctx, storage.GCSOptions{
			Bucket:          cfg.GCSBucket,
			Prefix:          cfg.GCS.Prefix,
			CredentialsFile: cfg.GCS.CredentialsFile,
		})
		if err != nil {
			return nil, err
		}
		saver = gcs
		closeFn = gcs.Close
		slog.Debug("Using GCS storage", "bucket", cfg.GCSBucket, "prefix", cfg.GCS.Prefix)
	} else {
		saver = storage.NewLocalStorage(cfg.Output.Dir)
	}

	service := NewService(ServiceOptions{
		Config:  cfg,
		Client:  client,
		Prompts: p,
		Saver:   saver,
	})

	return &BuildResult{
		Service: service,
		Close:   closeFn,
	}, nil
}
