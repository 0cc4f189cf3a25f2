// Package config reads the defaults of the imresize command from the environment.
package config

import (
	"github.com/kelseyhightower/envconfig"

	zlog "github.com/go-imsto/imresize/log"
)

// NameSpace is the prefix of environment variables, e.g. IMRESIZE_FROM
const NameSpace = "imresize"

// Version is set by the build
var Version = "0.1.0"

// Config ...
type Config struct {
	From      string `envconfig:"FROM" default:"./"`
	To        string `envconfig:"TO" default:"./resized/"`
	Ext       string `envconfig:"EXT" default:"png"`
	Size      string `envconfig:"SIZE" default:"256x256"`
	Backend   string `envconfig:"BACKEND" default:"imaging"`
	Filter    string `envconfig:"FILTER"`
	Mode      string `envconfig:"MODE" default:"scale"`
	Quality   uint8  `envconfig:"QUALITY" default:"75"`
	Develop   bool   `envconfig:"DEVELOP"`
	SentryDSN string `envconfig:"SENTRY_DSN"`
}

// Current ...
var Current Config

func init() {
	if err := Load(); err != nil {
		zlog.Warnw("load config fail", "err", err)
	}
}

// Load (re)reads Current from the environment
func Load() error {
	var c Config
	if err := envconfig.Process(NameSpace, &c); err != nil {
		return err
	}
	Current = c
	return nil
}

// InDevelop ...
func InDevelop() bool {
	return Current.Develop
}

// Usage prints the environment variables understood
func Usage() error {
	return envconfig.Usage(NameSpace, &Config{})
}
