package config

import (
	"errors"
	"fmt"
)

const minSecretLen = 16

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Store.validate(),
		c.Auth.validate(),
		c.RateLimit.validate(),
		c.Pagination.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	var errs []error

	switch s.Driver {
	case DriverMongo:
		if s.Mongo.URI == "" {
			errs = append(errs, errors.New("store.mongo.uri must not be empty"))
		}
		if s.Mongo.Database == "" {
			errs = append(errs, errors.New("store.mongo.database must not be empty"))
		}
		if s.Mongo.Timeout <= 0 {
			errs = append(errs, errors.New("store.mongo.timeout must be positive"))
		}
	case DriverSQLite:
		if s.SQLite.Path == "" {
			errs = append(errs, errors.New("store.sqlite.path must not be empty"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.driver must be one of: mongo, sqlite; got %q", s.Driver))
	}

	if s.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("store.circuit_breaker.max_failures must be >= 1, got %d",
			s.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (a *AuthConfig) validate() error {
	var errs []error

	if len(a.JWTSecret) < minSecretLen {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least %d characters", minSecretLen))
	}
	if a.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	if a.BcryptCost < 4 || a.BcryptCost > 31 {
		errs = append(errs, fmt.Errorf("auth.bcrypt_cost must be between 4 and 31, got %d", a.BcryptCost))
	}

	return errors.Join(errs...)
}

func (r *RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}

	var errs []error

	if r.RequestsPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit.requests_per_second must be positive, got %f", r.RequestsPerSecond))
	}
	if r.Burst < 1 {
		errs = append(errs, fmt.Errorf("rate_limit.burst must be >= 1, got %d", r.Burst))
	}

	return errors.Join(errs...)
}

func (p *PaginationConfig) validate() error {
	var errs []error

	if p.MaxLimit < 1 {
		errs = append(errs, fmt.Errorf("pagination.max_limit must be >= 1, got %d", p.MaxLimit))
	}
	if p.DefaultLimit < 1 || p.DefaultLimit > p.MaxLimit {
		errs = append(errs, fmt.Errorf("pagination.default_limit must be between 1 and max_limit, got %d",
			p.DefaultLimit))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
