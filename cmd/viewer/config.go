package main

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Name     string `envconfig:"NAME"`
	Email    string `envconfig:"EMAIL"`
	Password string `envconfig:"PASSWORD"`
	// VIEWER_REGISTER submits the register form instead of the sign in form
	Register bool   `envconfig:"REGISTER" default:"false"`
	View     string `envconfig:"VIEW" default:"messages"`
	Search   string `envconfig:"SEARCH"`
	// VIEWER_COLOURS enables colorized output
	Colours  bool   `envconfig:"COLOURS" default:"true"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"WARN"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("viewer", &cfg)
	return cfg, err
}
