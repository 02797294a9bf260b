package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/ophelieturenne/cloud-bookshelf/pkg/auth"
	"github.com/ophelieturenne/cloud-bookshelf/pkg/kafka"
	"github.com/ophelieturenne/cloud-bookshelf/pkg/logger"
	"github.com/ophelieturenne/cloud-bookshelf/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"5s"`
	WriteTimeout time.Duration
}

type Sweeper struct {
	Interval time.Duration `yaml:"interval" envconfig:"SWEEP_INTERVAL" default:"1h"`
}

type Config struct {
	Server   HTTPServer `yaml:"server"`
	Database postgres.Config
	Kafka    kafka.Config
	Auth     auth.Config
	Sweeper  Sweeper
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	cfg.Auth.Secret = "***"
	cfg.Database.Password = "***"
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
