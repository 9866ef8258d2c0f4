package config

import (
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"

	srvErrors "github.com/kubev2v/taskpool/pkg/errors"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Pool

const (
	ServerModeDev  = "dev"
	ServerModeProd = "prod"

	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

type Configuration struct {
	Server    Server `debugmap:"visible-format"`
	Pool      Pool   `debugmap:"visible-format"`
	LogFormat string `debugmap:"visible" default:"console"`
	LogLevel  string `debugmap:"visible" default:"info"`
}

type Server struct {
	Address       string        `debugmap:"visible" default:"127.0.0.1:5000"`
	Mode          string        `debugmap:"visible" default:"dev"`
	StaticsFolder string        `debugmap:"visible" default:"static"`
	SleepDuration time.Duration `debugmap:"visible" default:"5s"`
	BindRetries   uint          `debugmap:"visible" default:"5"`
}

type Pool struct {
	Size int    `debugmap:"visible" default:"8"`
	Name string `debugmap:"visible" default:"http"`
}

func (c *Configuration) Validate() error {
	if c.Pool.Size <= 0 {
		return srvErrors.NewConfigError("pool.size", fmt.Sprintf("invalid pool size %d: must be greater than zero", c.Pool.Size))
	}
	if c.Server.Address == "" {
		return srvErrors.NewConfigError("server.address", "address is empty")
	}
	switch c.Server.Mode {
	case ServerModeDev, ServerModeProd:
	default:
		return srvErrors.NewConfigError("server.mode", fmt.Sprintf("unknown mode %q: must be 'dev' or 'prod'", c.Server.Mode))
	}
	if c.Server.SleepDuration < 0 {
		return srvErrors.NewConfigError("server.sleep-duration", "must not be negative")
	}
	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return srvErrors.NewConfigError("log-format", fmt.Sprintf("unknown format %q: must be 'console' or 'json'", c.LogFormat))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return srvErrors.NewConfigError("log-level", err.Error())
	}
	return nil
}
