package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"

	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

type Configuration struct {
	// Prompt is printed before each line when stdin is a terminal.
	Prompt string `json:"prompt"`
	// Color controls colored prompts and error prefixes.
	Color string `json:"color" validate:"oneof=always auto never"`
	// LogLevel sets the diagnostic log level.
	LogLevel string `json:"log_level" validate:"oneof=debug info warn error"`

	History History `json:"history"`
}

type History struct {
	// MaxEntries bounds the number of retained entries, 0 means unbounded.
	// Dropped entries never cause renumbering.
	MaxEntries int `json:"max_entries" validate:"gte=0"`
	// EchoExpansion prints a line after history expansion, before running it.
	EchoExpansion bool `json:"echo_expansion"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the built-in configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
