package config

// Config is the root configuration for a generator run.
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Generator GeneratorConfig `yaml:"generator"`
	Database  DBConfig        `yaml:"database"`
}

// Sink names accepted in output.sinks.
const (
	SinkFile     = "file"
	SinkPostgres = "postgres"
)

// OutputConfig selects where generated tables go.
type OutputConfig struct {
	Dir   string            `yaml:"dir"`   // Empty = directory of the running executable
	Sinks []string          `yaml:"sinks"` // Any of "file", "postgres"
	Files map[string]string `yaml:"files"` // Dataset -> file name overrides
}

// GeneratorConfig controls what gets generated.
type GeneratorConfig struct {
	Seed     uint64       `yaml:"seed"` // 0 = time-based
	CUSIPs   []string     `yaml:"cusips"`
	PriceMin float64      `yaml:"price_min"`
	PriceMax float64      `yaml:"price_max"`
	Counts   CountsConfig `yaml:"counts"`
}

// CountsConfig holds rows per instrument for each dataset. All must be even.
type CountsConfig struct {
	Prices     int `yaml:"prices"`
	Trades     int `yaml:"trades"`
	MarketData int `yaml:"market_data"`
	Inquiries  int `yaml:"inquiries"`
}

// DBConfig holds the Postgres connection used by the postgres sink.
type DBConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Name      string `yaml:"name"`
	User      string `yaml:"user"`
	Password  string `yaml:"password"`
	SSLMode   string `yaml:"ssl_mode"`
	MaxConns  int    `yaml:"max_conns"`
	MinConns  int    `yaml:"min_conns"`
	BatchSize int    `yaml:"batch_size"`
}

// HasSink reports whether name is among the configured sinks.
func (c *Config) HasSink(name string) bool {
	for _, s := range c.Output.Sinks {
		if s == name {
			return true
		}
	}
	return false
}
