// Command healthcheck probes GET /health of a running server and exits with
// status 1 unless it answers 200 with status "ok". It is meant to be used as
// a container HEALTHCHECK.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/MKhiriev/go-user-service/models"
	"github.com/caarlos0/env/v11"
)

type healthcheckConfig struct {
	// Env: HEALTHCHECK_URL
	URL string `env:"HEALTHCHECK_URL" envDefault:"http://127.0.0.1:3000"`
	// Env: HEALTHCHECK_TIMEOUT
	Timeout time.Duration `env:"HEALTHCHECK_TIMEOUT" envDefault:"3s"`
}

func main() {
	log := logger.NewLogger("go-user-healthcheck")

	var cfg healthcheckConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("error parsing healthcheck configs")
	}

	if err := probe(utils.NewHTTPClient(cfg.URL, cfg.Timeout)); err != nil {
		log.Err(err).Str("url", cfg.URL).Msg("service is unhealthy")
		os.Exit(1)
	}
}

func probe(client *utils.HTTPClient) error {
	var health models.HealthResponse
	resp, err := client.R().SetResult(&health).Get("/health")
	if err != nil {
		return fmt.Errorf("error requesting health: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode())
	}
	if health.Status != "ok" {
		return fmt.Errorf("unexpected health status %q", health.Status)
	}

	return nil
}
