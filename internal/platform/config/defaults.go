package config

const (
	defaultServerPort = 8080

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultBcryptCost = 10

	defaultRateLimitRPS   = 10.0
	defaultRateLimitBurst = 20

	defaultPageLimit = 10
	maxPageLimit     = 100
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                 "0.0.0.0",
		"server.port":                 defaultServerPort,
		"server.read_timeout":         "5s",
		"server.write_timeout":        "10s",
		"server.idle_timeout":         "120s",
		"server.request_timeout":      "30s",
		"server.cors_allowed_origins": []string{"*"},

		"log.level":  "info",
		"log.format": "json",

		"store.driver":                          DriverSQLite,
		"store.mongo.uri":                       "mongodb://localhost:27017",
		"store.mongo.database":                  "todos",
		"store.mongo.timeout":                   "5s",
		"store.mongo.connect_timeout":           "10s",
		"store.sqlite.path":                     "todos.db",
		"store.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"store.circuit_breaker.timeout":         "30s",
		"store.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"auth.jwt_secret":  "",
		"auth.token_ttl":   "720h",
		"auth.issuer":      "todo-service",
		"auth.bcrypt_cost": defaultBcryptCost,

		"rate_limit.enabled":             true,
		"rate_limit.requests_per_second": defaultRateLimitRPS,
		"rate_limit.burst":               defaultRateLimitBurst,
		"rate_limit.cleanup_interval":    "5m",

		"pagination.default_limit": defaultPageLimit,
		"pagination.max_limit":     maxPageLimit,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-service",
	}
}
