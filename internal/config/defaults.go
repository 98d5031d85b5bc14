package config

import "time"

const (
	DefaultTokenIssuer    = "video-blog"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultLogLevel       = "debug"
	DefaultMaxOpenConns   = 10
	DefaultMaxIdleConns   = 4
	DefaultRequestTimeout = 30 * time.Second
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			LogLevel:      DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverPostgres,
				MaxOpenConns: DefaultMaxOpenConns,
				MaxIdleConns: DefaultMaxIdleConns,
			},
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
