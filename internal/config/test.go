package config

import "github.com/caarlos0/env/v11"

type TestConfig struct {
	TestCockroachURL string `env:"TEST_COCKROACH_URL,required,notEmpty"`
}

func LoadTest() (TestConfig, error) {
	var cfg TestConfig
	err := env.Parse(&cfg)
	return cfg, err
}
