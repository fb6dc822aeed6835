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
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RoutePrefix     string   `json:"route_prefix"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Upstream struct {
		BaseURL        string   `json:"base_url"`
		AuthToken      string   `json:"auth_token"`
		Referer        string   `json:"referer"`
		UserAgent      string   `json:"user_agent"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"upstream,omitempty"`
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
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RoutePrefix:     jsonCfg.Server.RoutePrefix,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Upstream: Upstream{
			BaseURL:        jsonCfg.Upstream.BaseURL,
			AuthToken:      jsonCfg.Upstream.AuthToken,
			Referer:        jsonCfg.Upstream.Referer,
			UserAgent:      jsonCfg.Upstream.UserAgent,
			RequestTimeout: time.Duration(jsonCfg.Upstream.RequestTimeout),
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
