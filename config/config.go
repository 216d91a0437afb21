package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/prency-hangers/rental-service/pkg/auth0"
	"github.com/prency-hangers/rental-service/pkg/kafka"
	"github.com/prency-hangers/rental-service/pkg/logger"
	"github.com/prency-hangers/rental-service/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"STOREFRONT_HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"STOREFRONT_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"30s"`
	WriteTimeout time.Duration
}

type Mailer struct {
	BaseURL string `yaml:"baseUrl" envconfig:"RESEND_BASE_URL" default:"https://api.resend.com"`
	APIKey  string `yaml:"apiKey" envconfig:"RESEND_API_KEY" json:"-"`
	From    string `yaml:"from" envconfig:"MAIL_FROM" default:"orders@prencyhangers.example"`
}

type Config struct {
	Server   HTTPServer   `yaml:"server"`
	Database postgres.DB  `yaml:"db"`
	Kafka    kafka.Config `yaml:"kafka"`
	Auth0    auth0.Config `yaml:"auth0"`
	Mailer   Mailer       `yaml:"mailer"`
	Log      logger.Log   `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
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
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
