package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so JSON config files can spell durations as
// strings ("30s", "1m") or as raw nanosecond numbers.
type Duration struct {
	time.Duration
}

// UnmarshalJSON implements json.Unmarshaler for both spellings.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		parsed, err := time.ParseDuration(asString)
		if err != nil {
			return fmt.Errorf("error parsing duration %q: %w", asString, err)
		}
		d.Duration = parsed
		return nil
	}

	var asNumber int64
	if err := json.Unmarshal(data, &asNumber); err != nil {
		return fmt.Errorf("error parsing duration: %w", err)
	}
	d.Duration = time.Duration(asNumber)

	return nil
}

// StructuredJSONConfig mirrors StructuredConfig for the JSON file source.
type StructuredJSONConfig struct {
	Server struct {
		Host           string   `json:"host"`
		Port           int      `json:"port"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DataDir string `json:"root"`
	} `json:"storage,omitempty"`

	Scraper struct {
		Timeout   Duration `json:"timeout"`
		UserAgent string   `json:"user_agent"`
	} `json:"scraper,omitempty"`

	Runner struct {
		DefaultTimeout Duration `json:"default_timeout"`
	} `json:"runner,omitempty"`
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
		Server: Server{
			Host:           jsonCfg.Server.Host,
			Port:           jsonCfg.Server.Port,
			RequestTimeout: jsonCfg.Server.RequestTimeout.Duration,
		},
		Storage: Storage{
			DataDir: jsonCfg.Storage.DataDir,
		},
		Scraper: Scraper{
			Timeout:   jsonCfg.Scraper.Timeout.Duration,
			UserAgent: jsonCfg.Scraper.UserAgent,
		},
		Runner: Runner{
			DefaultTimeout: jsonCfg.Runner.DefaultTimeout.Duration,
		},
	}

	return cfg, nil
}
