package config

import "time"

// Built-in defaults applied when no other source sets a field.
const (
	DefaultHTTPAddress    = "0.0.0.0:3000"
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxBodyBytes   = 50 << 20

	DefaultTokenSignKey  = "timi-dev-secret-change-in-production"
	DefaultTokenIssuer   = "timi-sync"
	DefaultTokenDuration = 7 * 24 * time.Hour
	DefaultBcryptCost    = 10

	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"

	DefaultLogLevel = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  DefaultTokenSignKey,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			BcryptCost:    DefaultBcryptCost,
			AdminUsername: DefaultAdminUsername,
			AdminPassword: DefaultAdminPassword,
			LogLevel:      DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxBodyBytes:   DefaultMaxBodyBytes,
		},
	}
}

// UsesDefaultSecrets reports whether the token key or admin password were
// left at their development defaults.
func (cfg *StructuredConfig) UsesDefaultSecrets() bool {
	return cfg.App.TokenSignKey == DefaultTokenSignKey || cfg.App.AdminPassword == DefaultAdminPassword
}
