package main

import (
	"os"
	"strings"

	"github.com/bogentools/bogen/internal/codegen/common"
	"github.com/bogentools/bogen/internal/config"
	"github.com/bogentools/bogen/internal/configpaths"
	"github.com/bogentools/bogen/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	version, err := common.GetVersion()
	if err != nil {
		_, _ = os.Stderr.WriteString("invalid build version: " + err.Error() + "\n")
		os.Exit(2)
	}

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("bogen"),
		kong.Description("Business object generator for plain data classes"),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	ctx.Bind(logger)
	ctx.Bind(common.BuildInfo{Version: version})

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("BOGEN_CONFIG"); v != "" {
		return v
	}
	return ""
}
