// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// SharedDataPlaneDSN points at the multi-tenant business database, dedicated databases
	// are derived from it by swapping the database name.
	SharedDataPlaneDSN  string `envconfig:"shared_dataplane_dsn" required:"true"`
	DedicatedDBMaxConns int32  `envconfig:"dedicated_db_max_conns" default:"5"`
	DedicatedDBMinConns int32  `envconfig:"dedicated_db_min_conns" default:"0"`
	MigrationBatchSize  uint64 `envconfig:"migration_batch_size" default:"500"`

	// CacheBackend is memory, redis, tiered or none, empty picks tiered when RedisAddr is set
	CacheBackend      string        `envconfig:"cache_backend"`
	CacheTTL          time.Duration `envconfig:"cache_ttl" default:"5m"`
	CacheL1TTL        time.Duration `envconfig:"cache_l1_ttl" default:"30s"`
	CacheMaxCostBytes int64         `envconfig:"cache_max_cost_bytes" default:"67108864"`

	RedisAddr      string `envconfig:"redis_addr"`
	RedisPassword  string `envconfig:"redis_password"`
	RedisDB        int    `envconfig:"redis_db" default:"0"`
	RedisKeyPrefix string `envconfig:"redis_key_prefix" default:"tenant-access"`

	SchedulerEnabled  bool   `envconfig:"scheduler_enabled" default:"true"`
	SweepSchedule     string `envconfig:"sweep_schedule" default:"@every 5m"`
	SweepBatchSize    uint64 `envconfig:"sweep_batch_size" default:"500"`
	NotifySchedule    string `envconfig:"notify_schedule" default:"@every 1m"`
	NotifyBatchSize   uint64 `envconfig:"notify_batch_size" default:"100"`
	NotifyMaxAttempts int    `envconfig:"notify_max_attempts" default:"5"`

	SMTPHost            string `envconfig:"smtp_host"`
	SMTPPort            int    `envconfig:"smtp_port" default:"587"`
	SMTPUser            string `envconfig:"smtp_user"`
	SMTPPassword        string `envconfig:"smtp_password"`
	SMTPFrom            string `envconfig:"smtp_from" default:"no-reply@localhost"`
	SMTPInsecureSkipTLS bool   `envconfig:"smtp_insecure_skip_tls" default:"false"`

	AuthenticationEnabled       bool   `envconfig:"authentication_enabled" default:"false"`
	AuthenticationIssuer        string `envconfig:"authentication_issuer"`
	AuthenticationJwksURL       string `envconfig:"authentication_jwks_url"`
	AuthenticationAudience      string `envconfig:"authentication_audience"`
	AuthenticationUserClaim     string `envconfig:"authentication_user_claim" default:"sub"`
	AuthenticationRequiredScope string `envconfig:"authentication_required_scope"`

	// AuthenticationTrustedHeader, when set, takes the user id from a header injected by an
	// identity aware proxy instead of verifying a bearer token.
	AuthenticationTrustedHeader string `envconfig:"authentication_trusted_header"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins"`
}
