// Command cramdata loads a CRAM dataset file and/or a category config file
// and prints a summary of what it found.
//
// Usage:
//
//	go run ./cmd/cramdata --data ./data/cram_test.json
//	go run ./cmd/cramdata --categories ./data/categories.yaml --json
//	go run ./cmd/cramdata --config ./cramdata.yaml --log-level debug
//
// Settings are resolved as flags, then CRAMDATA_* environment variables
// (a .env file in the working directory is loaded if present), then the
// --config file, then defaults.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/brunobiangulo/cramdata"
	"github.com/brunobiangulo/cramdata/dataset"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "cramdata: loading .env: %v\n", err)
		os.Exit(1)
	}
	if err := run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "cramdata: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer, getenv func(string) string) error {
	flags := flag.NewFlagSet("cramdata", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		configPath     = flags.String("config", "", "Path to a YAML config file")
		dataPath       = flags.String("data", "", "Path to the dataset JSON file (default: $"+cramdata.EnvDataset+")")
		categoriesPath = flags.String("categories", "", "Path to the category config file (default: $"+cramdata.EnvCategories+")")
		logLevel       = flags.String("log-level", "", "Log level: debug, info, warn, error")
		asJSON         = flags.Bool("json", false, "Print the summary as JSON")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg := cramdata.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = cramdata.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	cfg.ApplyEnv(getenv)
	if *dataPath != "" {
		cfg.DatasetPath = *dataPath
	}
	if *categoriesPath != "" {
		cfg.CategoriesPath = *categoriesPath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	if cfg.DatasetPath == "" && cfg.CategoriesPath == "" {
		return fmt.Errorf("%w: nothing to load, set --data or --categories", cramdata.ErrInvalidConfig)
	}

	var s summary
	if cfg.DatasetPath != "" {
		records, err := dataset.LoadData(cfg.DatasetPath)
		if err != nil {
			return err
		}
		ds := summarizeData(cfg.DatasetPath, records)
		s.Dataset = &ds
		slog.Info("dataset summarized", "path", cfg.DatasetPath, "records", ds.Records)
	}
	if cfg.CategoriesPath != "" {
		configs, err := dataset.LoadCategories(cfg.CategoriesPath)
		if err != nil {
			return err
		}
		cs := summarizeCategories(cfg.CategoriesPath, configs)
		s.Categories = &cs
		slog.Info("categories summarized", "path", cfg.CategoriesPath, "categories", len(cs.Labels))
	}

	if *asJSON {
		return writeJSON(stdout, s)
	}
	s.writeText(stdout)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
