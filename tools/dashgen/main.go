package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mercadoflow/meli-gateway/tools/dashgen/dashboards"
	"github.com/mercadoflow/meli-gateway/tools/dashgen/rules"
	"github.com/mercadoflow/meli-gateway/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by dashgen. DO NOT EDIT.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, validateOnly bool) error {
	if cfg.DashboardEnabled {
		if err := generateDashboard(cfg, validateOnly); err != nil {
			return err
		}
	}
	if cfg.RulesEnabled {
		if err := generateRules(cfg, validateOnly); err != nil {
			return err
		}
	}
	if validateOnly {
		fmt.Println("validation passed")
	}
	return nil
}

func generateDashboard(cfg Config, validateOnly bool) error {
	dash, err := dashboards.BuildOverview().Build()
	if err != nil {
		return fmt.Errorf("building overview dashboard: %w", err)
	}

	result := validate.Dashboard(dash, KnownMetrics)
	reportWarnings(result)
	if !result.Ok() {
		return fmt.Errorf("overview dashboard failed validation: %v", result.Errors)
	}
	if validateOnly {
		return nil
	}

	data, err := json.MarshalIndent(dash, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling overview dashboard: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(cfg.OutputDir, "grafana", "data", "meligw-overview.json")
	if err := writeArtifact(path, data); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func generateRules(cfg Config, validateOnly bool) error {
	artifacts := []struct {
		name string
		cr   rules.PrometheusRule
	}{
		{"meligw-recording-rules.yaml", rules.RecordingRules()},
		{"meligw-alerts.yaml", rules.AlertRules()},
	}

	for _, artifact := range artifacts {
		result := validate.Rules(artifact.cr, KnownMetrics)
		reportWarnings(result)
		if !result.Ok() {
			return fmt.Errorf("%s failed validation: %v", artifact.name, result.Errors)
		}
		if validateOnly {
			continue
		}

		data, err := yaml.Marshal(artifact.cr)
		if err != nil {
			return fmt.Errorf("marshaling %s: %w", artifact.name, err)
		}
		data = append([]byte(generatedHeader), data...)

		path := filepath.Join(cfg.OutputDir, "prometheus", artifact.name)
		if err := writeArtifact(path, data); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

func writeArtifact(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func reportWarnings(result validate.Result) {
	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}
}
