package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	CockroachURL string   `env:"COCKROACH_URL" envDefault:"postgres://root@localhost:26257/casino?sslmode=disable"`
	ScyllaNodes  []string `env:"SCYLLA_NODES" envSeparator:"," envDefault:"127.0.0.1:9042"`
	HTTPAddr     string   `env:"HTTP_ADDR" envDefault:":8080"`

	EventQueueSize  int  `env:"EVENT_QUEUE_SIZE" envDefault:"256"`
	BootstrapSchema bool `env:"BOOTSTRAP_SCHEMA" envDefault:"true"`
	SeedDemoAccount bool `env:"SEED_DEMO_ACCOUNT" envDefault:"true"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
