// Package config defines the root command-line structure parsed by Kong.
package config

import "github.com/bogentools/bogen/internal/cmd"

// LogOptions are the global logging flags, shared by every command.
type LogOptions struct {
	Level string `help:"Log level (trace|debug|info|warn|error)" enum:"trace,debug,info,warn,error" default:"info" env:"BOGEN_LOG_LEVEL"`
	File  string `help:"Write logs to this file; console output moves to stderr" env:"BOGEN_LOG_FILE"`
}

// CLI is the root of the command tree.
type CLI struct {
	Config string     `help:"Path to a configuration file" env:"BOGEN_CONFIG"`
	Log    LogOptions `embed:"" prefix:"log."`

	Generate  cmd.Generate      `cmd:"" help:"Generate business object variants from a plain data class"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration file helpers"`
	Version   cmd.Version       `cmd:"" help:"Print the build version"`
}
