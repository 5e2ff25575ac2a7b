package config

import (
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/book-review/pkg/logger"
	"github.com/Astemirdum/book-review/pkg/server"
	"github.com/kelseyhightower/envconfig"
)

type Backend struct {
	URL     string        `yaml:"url" envconfig:"BACKEND_URL" default:"http://localhost:3000"`
	Timeout time.Duration `yaml:"timeout" envconfig:"BACKEND_TIMEOUT" default:"30s"`
}

type Config struct {
	Server  server.Config `yaml:"server"`
	Backend Backend       `yaml:"backend"`
	Log     logger.Log    `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		config := Config{
			Server: server.Config{Port: "4000"},
		}
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
	})

	return cfg
}
