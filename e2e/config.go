package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_SHELL_ADDR targets a running server, e.g. http://localhost:8080. Empty starts one in process.
	ShellAddr string `envconfig:"E2E_SHELL_ADDR"`
	// E2E_DEBUG_BODY dumps every response body
	DebugBody bool `envconfig:"E2E_DEBUG_BODY" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
