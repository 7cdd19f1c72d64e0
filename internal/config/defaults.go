package config

import (
	"time"

	"github.com/MKhiriev/go-user-service/internal/utils"
)

const (
	DefaultTokenIssuer     = "go-user-service"
	DefaultTokenDuration   = time.Hour
	DefaultLogLevel        = "debug"
	DefaultDBPort          = 5432
	DefaultDBSSLMode       = "disable"
	DefaultDBConnectTime   = 5 * time.Second
	DefaultServerPort      = 3000
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultBodyLimit       = 10 << 10
	DefaultRateLimit       = 100
	DefaultRateLimitWindow = 15 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: utils.DefaultPasswordHashCost,
			LogLevel:         DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Port:           DefaultDBPort,
				SSLMode:        DefaultDBSSLMode,
				ConnectTimeout: DefaultDBConnectTime,
			},
		},
		Server: Server{
			Port:            DefaultServerPort,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			BodyLimit:       DefaultBodyLimit,
			RateLimit: RateLimit{
				Requests: DefaultRateLimit,
				Window:   DefaultRateLimitWindow,
			},
			CORS: CORS{
				AllowedOrigins: []string{"*"},
			},
		},
	}
}
