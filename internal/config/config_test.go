package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rickgao/treasury-testdata/internal/refdata"
)

func TestLoad(t *testing.T) {
	yaml := `
output:
  dir: /tmp/testdata
  sinks: [file, postgres]
  files:
    inquiries: inquiries.txt
generator:
  seed: 7
  cusips: [9128283H1, 912810RZ3]
  counts:
    prices: 100
    market_data: 50
database:
  host: localhost
  name: testdata
  user: testuser
  password: testpass
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Output.Dir != "/tmp/testdata" {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "/tmp/testdata")
	}
	if !cfg.HasSink(SinkPostgres) || !cfg.HasSink(SinkFile) {
		t.Errorf("Output.Sinks = %v, want file and postgres", cfg.Output.Sinks)
	}
	if cfg.Output.Files["inquiries"] != "inquiries.txt" {
		t.Errorf("Output.Files[inquiries] = %q, want %q", cfg.Output.Files["inquiries"], "inquiries.txt")
	}
	if cfg.Generator.Seed != 7 {
		t.Errorf("Generator.Seed = %d, want 7", cfg.Generator.Seed)
	}
	if len(cfg.Generator.CUSIPs) != 2 {
		t.Errorf("Generator.CUSIPs = %v, want 2 entries", cfg.Generator.CUSIPs)
	}
	if cfg.Generator.Counts.MarketData != 50 {
		t.Errorf("Generator.Counts.MarketData = %d, want 50", cfg.Generator.Counts.MarketData)
	}
	if cfg.Generator.Counts.Trades != 0 {
		t.Errorf("Generator.Counts.Trades = %d, want 0 before defaults", cfg.Generator.Counts.Trades)
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "secret123")

	yaml := `
output:
  sinks: [postgres]
database:
  host: localhost
  name: testdata
  user: testuser
  password: ${TEST_DB_PASSWORD}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Password != "secret123" {
		t.Errorf("Database.Password = %q, want %q", cfg.Database.Password, "secret123")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	path := writeTempFile(t, "generator:\n  counts:\n    trades: 20\n")

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	// Check defaults were applied
	if len(cfg.Output.Sinks) != 1 || cfg.Output.Sinks[0] != DefaultSink {
		t.Errorf("Output.Sinks = %v, want [%s]", cfg.Output.Sinks, DefaultSink)
	}
	if len(cfg.Generator.CUSIPs) != len(refdata.CUSIPs()) {
		t.Errorf("Generator.CUSIPs = %v, want reference set", cfg.Generator.CUSIPs)
	}
	if cfg.Generator.Counts.Trades != 20 {
		t.Errorf("Generator.Counts.Trades = %d, want 20", cfg.Generator.Counts.Trades)
	}
	if cfg.Generator.Counts.Prices != DefaultPriceRows {
		t.Errorf("Generator.Counts.Prices = %d, want default %d", cfg.Generator.Counts.Prices, DefaultPriceRows)
	}
	if cfg.Generator.PriceMin != DefaultPriceMin || cfg.Generator.PriceMax != DefaultPriceMax {
		t.Errorf("price range = [%v, %v], want defaults", cfg.Generator.PriceMin, cfg.Generator.PriceMax)
	}
	if cfg.Database.Port != DefaultDBPort {
		t.Errorf("Database.Port = %d, want default %d", cfg.Database.Port, DefaultDBPort)
	}
	if cfg.Database.BatchSize != DefaultBatchSize {
		t.Errorf("Database.BatchSize = %d, want default %d", cfg.Database.BatchSize, DefaultBatchSize)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}

	path := writeTempFile(t, "output: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Error("Load(bad yaml) error = nil, want error")
	}
}

func TestLoadAndValidate_EmptyPath(t *testing.T) {
	cfg, err := LoadAndValidate("")
	if err != nil {
		t.Fatalf("LoadAndValidate(\"\") error = %v", err)
	}
	if cfg.Generator.Counts.MarketData != DefaultMarketDataRows {
		t.Errorf("Generator.Counts.MarketData = %d, want default %d", cfg.Generator.Counts.MarketData, DefaultMarketDataRows)
	}
}

func TestLoadAndValidate_Invalid(t *testing.T) {
	path := writeTempFile(t, "generator:\n  counts:\n    prices: 3\n")

	if _, err := LoadAndValidate(path); err == nil {
		t.Error("LoadAndValidate() error = nil, want odd count error")
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("TESTDATA_ENV_PROBE=from-file\n"), 0644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("TESTDATA_ENV_PROBE", "")
	os.Unsetenv("TESTDATA_ENV_PROBE")

	loaded, err := LoadEnvFiles(filepath.Join(dir, "missing.env"), envPath)
	if err != nil {
		t.Fatalf("LoadEnvFiles() error = %v", err)
	}
	if loaded != envPath {
		t.Errorf("loaded = %q, want %q", loaded, envPath)
	}
	if got := os.Getenv("TESTDATA_ENV_PROBE"); got != "from-file" {
		t.Errorf("TESTDATA_ENV_PROBE = %q, want %q", got, "from-file")
	}
}

func TestLoadEnvFiles_NoneFound(t *testing.T) {
	loaded, err := LoadEnvFiles(filepath.Join(t.TempDir(), "nope.env"))
	if err != nil {
		t.Fatalf("LoadEnvFiles() error = %v", err)
	}
	if loaded != "" {
		t.Errorf("loaded = %q, want empty", loaded)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return *Default()
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "defaults",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "unknown sink",
			mutate:  func(c *Config) { c.Output.Sinks = []string{"kafka"} },
			wantErr: `output.sinks: unknown sink "kafka"`,
		},
		{
			name:    "bad cusip",
			mutate:  func(c *Config) { c.Generator.CUSIPs = []string{"A"} },
			wantErr: `generator.cusips: "A" is not a 9-character CUSIP`,
		},
		{
			name:    "duplicate cusip",
			mutate:  func(c *Config) { c.Generator.CUSIPs = []string{"9128283H1", "9128283H1"} },
			wantErr: `generator.cusips: duplicate "9128283H1"`,
		},
		{
			name:    "odd count",
			mutate:  func(c *Config) { c.Generator.Counts.Inquiries = 9 },
			wantErr: "generator.counts.inquiries must be even, got 9",
		},
		{
			name:    "negative count",
			mutate:  func(c *Config) { c.Generator.Counts.MarketData = -4 },
			wantErr: "generator.counts.market_data must be >= 2",
		},
		{
			name:    "inverted price range",
			mutate:  func(c *Config) { c.Generator.PriceMin, c.Generator.PriceMax = 101, 99 },
			wantErr: "generator.price_min (101) must be below price_max (99)",
		},
		{
			name:    "price range out of codec domain",
			mutate:  func(c *Config) { c.Generator.PriceMax = 1000 },
			wantErr: "generator.price_min and price_max must lie within [1, 999]",
		},
		{
			name:    "postgres without host",
			mutate:  func(c *Config) { c.Output.Sinks = []string{SinkPostgres} },
			wantErr: "database.host is required",
		},
		{
			name: "postgres min_conns exceeds max_conns",
			mutate: func(c *Config) {
				c.Output.Sinks = []string{SinkFile, SinkPostgres}
				c.Database = DBConfig{Host: "localhost", Name: "db", User: "user", Password: "pass", MaxConns: 2, MinConns: 5, BatchSize: 100}
			},
			wantErr: "database.min_conns (5) cannot exceed max_conns (2)",
		},
		{
			name: "postgres valid",
			mutate: func(c *Config) {
				c.Output.Sinks = []string{SinkPostgres}
				c.Database = DBConfig{Host: "localhost", Name: "db", User: "user", Password: "pass", MaxConns: 4, MinConns: 1, BatchSize: 100}
			},
			wantErr: "",
		},
		{
			name: "database ignored without postgres sink",
			mutate: func(c *Config) {
				c.Database = DBConfig{}
			},
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("Validate() expected error containing %q, got nil", tt.wantErr)
				} else if err.Error() != tt.wantErr {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
				}
			}
		})
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadAndValidate_ExampleConfig(t *testing.T) {
	t.Setenv("TESTDATA_DB_PASSWORD", "example")

	cfg, err := LoadAndValidate(filepath.Join("..", "..", "configs", "generator.example.yaml"))
	if err != nil {
		t.Fatalf("LoadAndValidate(example) error = %v", err)
	}
	if cfg.Generator.Counts.Prices != 1000000 {
		t.Errorf("Generator.Counts.Prices = %d, want 1000000", cfg.Generator.Counts.Prices)
	}
	if cfg.Database.Password != "example" {
		t.Errorf("Database.Password = %q, want %q", cfg.Database.Password, "example")
	}
}
