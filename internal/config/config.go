// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// dia-companion application. It aggregates all sub-configurations and is
// populated by merging built-in defaults, a .env file, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the admin list, the password hashing
	// mode and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the document store, the diary
	// key-value store and the CLI session marker.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// AI holds the generative model settings.
	AI AI `envPrefix:"AI_"`

	// Adapter holds the settings the CLI uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// ClientLogFile is where the CLI writes its log.
	ClientLogFile string `env:"CLIENT_LOG_FILE"`

	// EnvFilePath is the optional path to a dotenv file. When empty, a
	// ".env" file in the working directory is loaded if it exists.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds application-level configuration values that control tokens,
// accounts and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AdminEmails lists the accounts that receive the admin role when they
	// register. Comma-separated in the environment.
	// Env: APP_ADMIN_EMAILS
	AdminEmails []string `env:"ADMIN_EMAILS" envSeparator:","`

	// PasswordHashing selects how passwords are kept at rest: "bcrypt" or
	// "plain".
	// Env: APP_PASSWORD_HASHING
	PasswordHashing string `env:"PASSWORD_HASHING"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the document store connection settings.
	DB DB `envPrefix:"DB_"`

	// Diary holds the diary key-value store settings.
	Diary Diary `envPrefix:"DIARY_"`

	// Session holds the CLI session marker settings.
	Session Session `envPrefix:"SESSION_"`
}

// DB holds connection settings for the document store.
type DB struct {
	// DSN selects the backend: "postgres://" and "postgresql://" DSNs open
	// PostgreSQL through pgx, anything else is a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Diary backends.
const (
	DiaryBackendSQLite = "sqlite"
	DiaryBackendRedis  = "redis"
	DiaryBackendMemory = "memory"
)

// Diary holds the settings of the per-user diary key-value store.
type Diary struct {
	// Backend is one of "sqlite", "redis" or "memory".
	// Env: STORAGE_DIARY_BACKEND
	Backend string `env:"BACKEND"`

	// DSN is the SQLite file used by the "sqlite" backend.
	// Env: STORAGE_DIARY_DSN
	DSN string `env:"DSN"`

	// RedisAddress is the host:port of the "redis" backend.
	// Env: STORAGE_DIARY_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// RedisPassword is the optional password of the "redis" backend.
	// Env: STORAGE_DIARY_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// RedisDB is the logical database number of the "redis" backend.
	// Env: STORAGE_DIARY_REDIS_DB
	RedisDB int `env:"REDIS_DB"`

	// Namespace is the key prefix; keys are "<namespace>_<email>".
	// Env: STORAGE_DIARY_NAMESPACE
	Namespace string `env:"NAMESPACE"`
}

// Session holds the location of the CLI session marker.
type Session struct {
	// MarkerPath is the JSON file that remembers the logged-in user.
	// Env: STORAGE_SESSION_MARKER_PATH
	MarkerPath string `env:"MARKER_PATH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP API in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health service.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound HTTP request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// AI holds the generative model settings.
type AI struct {
	// APIKey authenticates against the Gemini API. When empty, assistant
	// endpoints answer with an "assistant unavailable" error.
	// Env: AI_API_KEY
	APIKey string `env:"API_KEY"`

	// Env: AI_CHAT_MODEL
	ChatModel string `env:"CHAT_MODEL"`

	// Env: AI_ANALYSIS_MODEL
	AnalysisModel string `env:"ANALYSIS_MODEL"`

	// Env: AI_IMAGE_MODEL
	ImageModel string `env:"IMAGE_MODEL"`

	// Env: AI_SPEECH_MODEL
	SpeechModel string `env:"SPEECH_MODEL"`

	// Voice is the prebuilt voice used for speech synthesis.
	// Env: AI_VOICE
	Voice string `env:"VOICE"`
}

// Adapter holds the settings the CLI uses to reach the server.
type Adapter struct {
	// HTTPAddress is the base URL of the HTTP API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// CheckInterval is how often the store availability check runs.
	// Env: WORKERS_CHECK_INTERVAL
	CheckInterval time.Duration `env:"CHECK_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later
// sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. .env file
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
