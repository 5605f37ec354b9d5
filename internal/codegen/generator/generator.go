// Package generator drives the extraction, destination and rendering
// pipeline for one input file.
package generator

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bogentools/bogen/internal/codegen/destination"
	"github.com/bogentools/bogen/internal/codegen/renderer"
	"github.com/bogentools/bogen/internal/codegen/scanner"
)

type Generator struct {
	logger *slog.Logger
}

// Options is one generation request. OutputDir and Namespace are optional;
// when OutputDir is empty the destination heuristic supplies both, with an
// explicit Namespace still winning for rendering.
type Options struct {
	InputPath string
	OutputDir string
	Namespace string
	Variants  []string
}

func New(logger *slog.Logger) *Generator {
	return &Generator{logger: logger}
}

// Generate runs the pipeline: extract once, resolve the destination, then
// render and write each requested variant in the fixed BO, Info, EL, RL
// order. Extraction failure aborts before any file is touched; a write
// failure aborts the remaining variants without rolling back files already
// written.
func (g *Generator) Generate(opts Options) error {
	src, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return fmt.Errorf("read input file: %w", err)
	}

	model, err := scanner.Extract(string(src))
	if err != nil {
		return fmt.Errorf("extract %s: %w", opts.InputPath, err)
	}
	g.logger.Debug("Extracted structural model",
		"namespace", model.Namespace,
		"class", model.Name,
		"properties", len(model.Properties))

	outDir := opts.OutputDir
	ns := opts.Namespace
	if outDir == "" {
		res, err := destination.Resolve(opts.InputPath)
		if err != nil {
			return fmt.Errorf("resolve destination: %w", err)
		}
		outDir = res.Dir
		if ns == "" {
			ns = res.Namespace
		}
		g.logger.Debug("Resolved destination", "dir", outDir, "namespace", res.Namespace)
	} else if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	variants, err := renderer.Expand(opts.Variants)
	if err != nil {
		return err
	}

	ext := filepath.Ext(opts.InputPath)
	for _, v := range variants {
		text, err := renderer.Render(model, v, ns)
		if err != nil {
			return err
		}

		outPath := filepath.Join(outDir, model.Name+v.Suffix+ext)
		if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
			return fmt.Errorf("write %s variant: %w", v.Suffix, err)
		}
		g.logger.Info("Generated file", "variant", v.Suffix, "path", outPath)
	}

	g.logger.Info("Generation complete", "class", model.Name, "variants", len(variants), "dir", outDir)
	return nil
}
