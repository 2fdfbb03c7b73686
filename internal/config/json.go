package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/spacedata/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed values
// are copied into the runtime Config.
type JsonConfig struct {
	StorePath          string `json:"store_path"`
	NEOEndpointAddr    string `json:"neo_endpoint_addr"`
	SBDBEndpointAddr   string `json:"sbdb_endpoint_addr"`
	APIKey             string `json:"api_key"`
	LoginAttemptsLimit int    `json:"login_attempts_limit"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via flagx.JsonConfigFlags;
// if empty, no JSON is loaded. Zero-valued JSON fields leave the current
// Config values untouched, so a partial file only overrides what it names.
// Panics on read or unmarshal errors.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.NEOEndpointAddr != "" {
		cfg.NEOEndpointAddr = jc.NEOEndpointAddr
	}
	if jc.SBDBEndpointAddr != "" {
		cfg.SBDBEndpointAddr = jc.SBDBEndpointAddr
	}
	if jc.APIKey != "" {
		cfg.APIKey = jc.APIKey
	}
	if jc.LoginAttemptsLimit > 0 {
		cfg.LoginAttemptsLimit = jc.LoginAttemptsLimit
	}
}
