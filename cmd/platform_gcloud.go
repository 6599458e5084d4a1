//go:build gcloud

package main

import (
	"context"
	"os"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/config"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/logging"
)

// loadDotEnv is a no-op on Cloud Run.
func loadDotEnv() {}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "deadline-reminder"
	}

	env := logging.EnvProd
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("GCLOUD_PROJECT_ID")
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("K_REVISION"),
		},
		Environment:   env,
		GCPProjectID:  projectID,
		SamplingRate:  1.0,
		DefaultModule: serviceModule,
		LogLevel:      cfg.LogLevel,
	})
	if err != nil {
		return nil, err
	}

	return obs, nil
}
