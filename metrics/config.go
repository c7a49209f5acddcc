package metrics

// Config of the prometheus endpoint
type Config struct {
	// Enabled serves /metrics when true
	Enabled bool `mapstructure:"Enabled"`
	// Host to listen on
	Host string `mapstructure:"Host"`
	// Port to listen on
	Port int `mapstructure:"Port"`
}
