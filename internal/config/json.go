package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		Secret            string   `json:"secret"`
		PasswordAlgorithm string   `json:"password_algorithm"`
		SessionLifetime   Duration `json:"session_lifetime"`
		SessionSliding    bool     `json:"session_sliding"`
		SessionUpdateAge  Duration `json:"session_update_age"`
		SignUpEnabled     bool     `json:"sign_up_enabled"`
		LogLevel          string   `json:"log_level"`
		Version           string   `json:"version"`
		Environment       string   `json:"environment"`
	} `json:"app,omitempty"`

	Cookie struct {
		Name     string `json:"name"`
		Insecure bool   `json:"insecure"`
		SameSite string `json:"same_site"`
		Domain   string `json:"domain"`
	} `json:"cookie,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Cache struct {
			SessionTTL   Duration `json:"session_ttl"`
			SessionMaxMB int      `json:"session_max_mb"`
		} `json:"cache,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Workers struct {
		SessionSweepInterval Duration `json:"session_sweep_interval"`
	} `json:"workers,omitempty"`
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
			Secret:            jsonCfg.App.Secret,
			PasswordAlgorithm: jsonCfg.App.PasswordAlgorithm,
			SessionLifetime:   time.Duration(jsonCfg.App.SessionLifetime),
			SessionSliding:    jsonCfg.App.SessionSliding,
			SessionUpdateAge:  time.Duration(jsonCfg.App.SessionUpdateAge),
			SignUpEnabled:     jsonCfg.App.SignUpEnabled,
			LogLevel:          jsonCfg.App.LogLevel,
			Version:           jsonCfg.App.Version,
			Environment:       jsonCfg.App.Environment,
		},
		Cookie: Cookie{
			Name:     jsonCfg.Cookie.Name,
			Insecure: jsonCfg.Cookie.Insecure,
			SameSite: jsonCfg.Cookie.SameSite,
			Domain:   jsonCfg.Cookie.Domain,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Cache: Cache{
				SessionTTL:   time.Duration(jsonCfg.Storage.Cache.SessionTTL),
				SessionMaxMB: jsonCfg.Storage.Cache.SessionMaxMB,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Workers: Workers{
			SessionSweepInterval: time.Duration(jsonCfg.Workers.SessionSweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
