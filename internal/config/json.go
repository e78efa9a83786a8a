package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape accepted from
// a JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version       string `json:"version"`
		LogLevel      string `json:"log_level"`
		DefaultUserID int64  `json:"default_user_id"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		Host               string   `json:"host"`
		Port               int      `json:"port"`
		RequestTimeout     Duration `json:"request_timeout"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
	} `json:"server,omitempty"`

	Telemetry struct {
		OTLPEndpoint string `json:"otlp_endpoint"`
		ServiceName  string `json:"service_name"`
	} `json:"telemetry,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
			DefaultUserID: jsonCfg.App.DefaultUserID,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			Host:               jsonCfg.Server.Host,
			Port:               jsonCfg.Server.Port,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			CORSAllowedOrigins: jsonCfg.Server.CORSAllowedOrigins,
		},
		Telemetry: Telemetry{
			OTLPEndpoint: jsonCfg.Telemetry.OTLPEndpoint,
			ServiceName:  jsonCfg.Telemetry.ServiceName,
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
