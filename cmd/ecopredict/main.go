// Command ecopredict predicts a supply-chain greenhouse-gas emission factor
// for one JSON request and prints the prediction, data-quality score, and
// recommendation as JSON. It is a thin presentation collaborator around
// internal/engine; chart and page rendering live elsewhere.
package main

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/ecopredict/ecopredict/internal/artifact"
	"github.com/ecopredict/ecopredict/internal/config"
	"github.com/ecopredict/ecopredict/internal/engine"
)

func main() {
	cfg := parseConfig()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ecopredict] Invalid log level %q: %v\n", cfg.LogLevel, err)
		os.Exit(1)
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("prediction failed")
		os.Exit(1)
	}
}

func run(cfg *cliConfig, logger zerolog.Logger) error {
	store := artifact.NewStore(cfg.ModelPath, cfg.ScalerPath, logger)
	m, err := store.Model()
	if err != nil {
		return err
	}
	s, err := store.Scaler()
	if err != nil {
		return err
	}

	engineCfg, err := config.Load(cfg.ConfigPath, logger)
	if err != nil {
		return err
	}

	eng, err := engine.New(m, s, engineCfg, logger)
	if err != nil {
		return err
	}

	req, err := readRequest(cfg.InputPath)
	if err != nil {
		return err
	}

	result, err := eng.Predict(req)
	if err != nil {
		return err
	}

	return writeResult(os.Stdout, result, cfg.Pretty)
}

// readRequest decodes one prediction request from path, or stdin when path
// is "-".
func readRequest(path string) (engine.Request, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return engine.Request{}, fmt.Errorf("open request: %w", err)
		}
		defer f.Close()
		r = f
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return engine.Request{}, fmt.Errorf("read request: %w", err)
	}

	var req engine.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return engine.Request{}, fmt.Errorf("parse request: %w", err)
	}
	return req, nil
}

func writeResult(w io.Writer, result *engine.Result, pretty bool) error {
	var (
		out []byte
		err error
	)
	if pretty {
		out, err = json.MarshalIndent(result, "", "  ")
	} else {
		out, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
