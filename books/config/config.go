package config

import (
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/book-review/pkg/logger"
	"github.com/Astemirdum/book-review/pkg/postgres"
	"github.com/Astemirdum/book-review/pkg/server"
	"github.com/kelseyhightower/envconfig"
)

type GoogleBooks struct {
	URL     string        `yaml:"url" envconfig:"GOOGLE_BOOKS_URL" default:"https://www.googleapis.com/books/v1"`
	APIKey  string        `yaml:"apiKey" envconfig:"GOOGLE_BOOKS_API_KEY"`
	Timeout time.Duration `yaml:"timeout" envconfig:"GOOGLE_BOOKS_TIMEOUT" default:"10s"`
}

type Config struct {
	Server      server.Config `yaml:"server"`
	Database    postgres.DB   `yaml:"db"`
	GoogleBooks GoogleBooks   `yaml:"googleBooks"`
	Log         logger.Log    `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		config := Config{
			Server: server.Config{Port: "3000"},
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
