package config

import "time"

const (
	defaultDSN           = "/tmp/test.db"
	defaultHost          = "0.0.0.0"
	defaultPort          = 3000
	defaultUserID        = 1
	defaultLogLevel      = "debug"
	defaultServiceName   = "starwars-api"
	defaultAPIURL        = "http://localhost:3000"
	defaultClientTimeout = 15 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:      defaultLogLevel,
			DefaultUserID: defaultUserID,
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN},
		},
		Server: Server{
			Host:               defaultHost,
			Port:               defaultPort,
			CORSAllowedOrigins: []string{"*"},
		},
		Telemetry: Telemetry{
			ServiceName: defaultServiceName,
		},
		Adapter: Adapter{
			BaseURL:        defaultAPIURL,
			RequestTimeout: defaultClientTimeout,
		},
	}
}
