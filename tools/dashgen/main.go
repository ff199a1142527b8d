// Command dashgen generates the localflipper Grafana dashboard and
// Prometheus rule files from Go definitions.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/localflipper/tools/dashgen/dashboards"
	"github.com/donaldgifford/localflipper/tools/dashgen/rules"
	"github.com/donaldgifford/localflipper/tools/dashgen/validate"
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

	if err := run(os.Stdout, cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// artifact is one rendered output file, relative to the output directory.
type artifact struct {
	path string
	data []byte
}

func run(out io.Writer, cfg Config, validateOnly bool) error {
	artifacts, result, err := render(cfg)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	if !result.Ok() {
		return fmt.Errorf("validation failed:\n  %s", strings.Join(result.Errors, "\n  "))
	}

	if validateOnly {
		fmt.Fprintln(out, "validation passed")
		return nil
	}

	for _, a := range artifacts {
		dest := filepath.Join(cfg.OutputDir, a.path)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(dest), err)
		}
		if err := os.WriteFile(dest, a.data, 0o644); err != nil { //nolint:gosec // generated config is world-readable
			return fmt.Errorf("writing %s: %w", dest, err)
		}
		fmt.Fprintf(out, "dashgen: wrote %s\n", dest)
	}
	return nil
}

// render builds and validates every enabled artifact.
func render(cfg Config) ([]artifact, validate.Result, error) {
	var (
		artifacts []artifact
		result    validate.Result
	)

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview().Build()
		if err != nil {
			return nil, result, fmt.Errorf("building dashboard: %w", err)
		}
		result.Merge(validate.Dashboard(dash, KnownMetrics))

		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return nil, result, fmt.Errorf("encoding dashboard: %w", err)
		}
		artifacts = append(artifacts, artifact{
			path: filepath.Join("grafana", "data", dashboards.UID+".json"),
			data: append(data, '\n'),
		})
	}

	if cfg.RulesEnabled {
		recording, alerts := rules.RecordingRules(), rules.AlertRules()
		result.Merge(validate.Rules(recording, KnownMetrics))
		result.Merge(validate.Rules(alerts, KnownMetrics))

		for _, doc := range []struct {
			name string
			v    any
		}{
			{recording.Metadata.Name + ".yaml", recording},
			{alerts.Metadata.Name + ".yaml", alerts},
			{"lfl-rules.yml", rules.File(recording, alerts)},
		} {
			data, err := yaml.Marshal(doc.v)
			if err != nil {
				return nil, result, fmt.Errorf("encoding %s: %w", doc.name, err)
			}
			artifacts = append(artifacts, artifact{
				path: filepath.Join("prometheus", doc.name),
				data: append([]byte(generatedHeader), data...),
			})
		}
	}

	if len(artifacts) == 0 {
		return nil, result, errors.New("nothing to generate")
	}
	return artifacts, result, nil
}
