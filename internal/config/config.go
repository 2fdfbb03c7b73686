// Package config loads runtime settings for the space data CLI.
package config

// Config holds runtime settings for the CLI.
//
// Fields:
//   - StorePath: path to the CSV file with registered users.
//   - NEOEndpointAddr: URL of the NASA near-earth object feed API.
//   - SBDBEndpointAddr: URL of the JPL small-body database lookup API.
//   - APIKey: NASA API key sent with NEO feed requests.
//   - LoginAttemptsLimit: failed login attempts allowed per login session.
type Config struct {
	StorePath          string
	NEOEndpointAddr    string
	SBDBEndpointAddr   string
	APIKey             string
	LoginAttemptsLimit int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorePath = "regno.csv"
	c.NEOEndpointAddr = "https://api.nasa.gov/neo/rest/v1/feed"
	c.SBDBEndpointAddr = "https://ssd-api.jpl.nasa.gov/sbdb.api"
	c.APIKey = "DEMO_KEY"
	c.LoginAttemptsLimit = 5
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
