// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/netip"

	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Every violation is reported; the result wraps [ErrInvalidStorageConfigs],
// [ErrInvalidServerConfigs] or [ErrInvalidAppConfigs] for each failing group.
func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		cfg.Storage.validate(),
		cfg.Server.validate(),
		cfg.App.validate(),
	)
}

func (s Storage) validate() error {
	var errs []error

	if s.DB.Host == "" {
		errs = append(errs, invalid(ErrInvalidStorageConfigs, "DB_HOST is empty"))
	}
	if !validPort(s.DB.Port) {
		errs = append(errs, invalid(ErrInvalidStorageConfigs, "DB_PORT %d is out of range", s.DB.Port))
	}
	if s.DB.User == "" {
		errs = append(errs, invalid(ErrInvalidStorageConfigs, "DB_USER is empty"))
	}
	if s.DB.Password == "" {
		errs = append(errs, invalid(ErrInvalidStorageConfigs, "DB_PASSWORD is empty"))
	}
	if s.DB.Name == "" {
		errs = append(errs, invalid(ErrInvalidStorageConfigs, "DB_NAME is empty"))
	}
	if s.DB.ConnectTimeout < 0 {
		errs = append(errs, invalid(ErrInvalidStorageConfigs, "DB_CONNECT_TIMEOUT is negative"))
	}

	return errors.Join(errs...)
}

func (s Server) validate() error {
	var errs []error

	if !validPort(s.Port) {
		errs = append(errs, invalid(ErrInvalidServerConfigs, "PORT %d is out of range", s.Port))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, invalid(ErrInvalidServerConfigs, "REQUEST_TIMEOUT is negative"))
	}
	if s.ShutdownTimeout <= 0 {
		errs = append(errs, invalid(ErrInvalidServerConfigs, "SHUTDOWN_TIMEOUT must be positive"))
	}
	if s.BodyLimit <= 0 {
		errs = append(errs, invalid(ErrInvalidServerConfigs, "BODY_LIMIT must be positive"))
	}
	if s.RateLimit.Requests <= 0 {
		errs = append(errs, invalid(ErrInvalidServerConfigs, "RATE_LIMIT_REQUESTS must be positive"))
	}
	if s.RateLimit.Window <= 0 {
		errs = append(errs, invalid(ErrInvalidServerConfigs, "RATE_LIMIT_WINDOW must be positive"))
	}
	for _, cidr := range s.TrustedProxies {
		if _, err := netip.ParsePrefix(cidr); err != nil {
			errs = append(errs, invalid(ErrInvalidServerConfigs, "TRUSTED_PROXIES entry %q is not a CIDR", cidr))
		}
	}

	return errors.Join(errs...)
}

func (a App) validate() error {
	var errs []error

	if a.TokenSignKey == "" {
		errs = append(errs, invalid(ErrInvalidAppConfigs, "JWT_SECRET is empty"))
	}
	if a.TokenIssuer == "" {
		errs = append(errs, invalid(ErrInvalidAppConfigs, "JWT_ISSUER is empty"))
	}
	if a.TokenDuration <= 0 {
		errs = append(errs, invalid(ErrInvalidAppConfigs, "JWT_DURATION must be positive"))
	}
	if !utils.ValidPasswordHashCost(a.PasswordHashCost) {
		errs = append(errs, invalid(ErrInvalidAppConfigs, "BCRYPT_COST %d is out of range", a.PasswordHashCost))
	}
	if _, err := zerolog.ParseLevel(a.LogLevel); err != nil {
		errs = append(errs, invalid(ErrInvalidAppConfigs, "LOG_LEVEL %q is unknown", a.LogLevel))
	}

	return errors.Join(errs...)
}

func validPort(port int) bool {
	return port > 0 && port <= 65535
}

func invalid(group error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", group, fmt.Sprintf(format, args...))
}
