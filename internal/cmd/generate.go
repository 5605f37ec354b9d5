package cmd

import (
	"log/slog"

	"github.com/bogentools/bogen/internal/codegen/generator"
)

// Generate reads one plain data class and writes the requested variants.
type Generate struct {
	File      string   `arg:"" name:"file" help:"Path to the class source file" type:"existingfile"`
	Output    string   `help:"Destination directory. Default is inferred from the input path" env:"BOGEN_OUTPUT"`
	Variant   []string `help:"Variant to generate: All, BO, Info, EL or RL (repeatable)" enum:"All,BO,Info,EL,RL" default:"All" env:"BOGEN_VARIANT"`
	Namespace string   `help:"Namespace for the generated classes, overriding the inferred one" env:"BOGEN_NAMESPACE"`
}

// Run is called by Kong when the generate command is executed.
func (c *Generate) Run(logger *slog.Logger) error {
	logger.Info("Starting business object generation", "file", c.File, "variants", c.Variant)

	gen := generator.New(logger)
	return gen.Generate(generator.Options{
		InputPath: c.File,
		OutputDir: c.Output,
		Namespace: c.Namespace,
		Variants:  c.Variant,
	})
}
