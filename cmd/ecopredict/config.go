package main

import "flag"

// cliConfig holds settings for the ecopredict binary.
// ModelPath and ScalerPath override the embedded artifacts, ConfigPath points
// at the engine configuration YAML, and InputPath names the JSON request
// file ("-" reads stdin).
type cliConfig struct {
	ModelPath  string
	ScalerPath string
	ConfigPath string
	InputPath  string
	LogLevel   string
	Pretty     bool
}

func parseConfig() *cliConfig {
	cfg := &cliConfig{}

	flag.StringVar(&cfg.ModelPath, "model", "", "Path to a model artifact JSON (default: embedded)")
	flag.StringVar(&cfg.ScalerPath, "scaler", "", "Path to a scaler artifact JSON (default: embedded)")
	flag.StringVar(&cfg.ConfigPath, "config", "", "Path to the engine configuration YAML (default: built-in)")
	flag.StringVar(&cfg.InputPath, "input", "-", "Path to the JSON prediction request, or - for stdin")
	flag.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")
	flag.BoolVar(&cfg.Pretty, "pretty", false, "Indent the JSON result")

	flag.Parse()

	return cfg
}
