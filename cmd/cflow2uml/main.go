package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/flowviz/cflow2uml/dot"
	"github.com/flowviz/cflow2uml/graph"
	"github.com/flowviz/cflow2uml/plantuml"
	"github.com/flowviz/cflow2uml/trace"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
	"os"
)

const version = "0.1.0"

const (
	formatPlantUML = "plantuml"
	formatDot      = "dot"
	formatYAML     = "yaml"
)

type config struct {
	title       string
	format      string
	output      string
	indentUnit  int
	showVersion bool
}

func main() {
	cfg := parseFlags()

	if cfg.showVersion {
		fmt.Printf("cflow2uml %s\n", version)
		os.Exit(0)
	}
	if err := validate(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "cflow2uml:", err)
		flag.Usage()
		os.Exit(2)
	}
	if err := run(cfg, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "cflow2uml:", err)
		os.Exit(1)
	}
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.title, "t", "", "diagram title")
	flag.StringVar(&cfg.title, "title", "", "diagram title")
	flag.StringVar(&cfg.format, "f", formatPlantUML, "output format: plantuml|dot|yaml")
	flag.StringVar(&cfg.format, "format", formatPlantUML, "output format (long form)")
	flag.StringVar(&cfg.output, "o", "", "output file (omit for stdout)")
	flag.IntVar(&cfg.indentUnit, "indent-unit", trace.DefaultIndentUnit, "leading spaces per call-tree level")
	flag.BoolVar(&cfg.showVersion, "V", false, "show version and exit")
	flag.Parse()
	return cfg
}

func validate(cfg config) error {
	switch cfg.format {
	case formatPlantUML, formatDot, formatYAML:
	default:
		return fmt.Errorf("unsupported format: %s", cfg.format)
	}
	if cfg.indentUnit <= 0 {
		return fmt.Errorf("indent-unit must be positive, got %d", cfg.indentUnit)
	}
	return nil
}

// run reads the traces named by locations (stdin when empty), builds the
// call graph and writes the rendered output.
func run(cfg config, locations []string) error {
	builder := trace.NewBuilder(trace.WithIndentUnit(cfg.indentUnit))
	if len(locations) == 0 {
		if err := trace.LoadReader(os.Stdin, builder); err != nil {
			return err
		}
	} else {
		if err := trace.LoadAll(context.Background(), afs.New(), locations, builder); err != nil {
			return err
		}
	}
	data, err := render(cfg, builder.Graph())
	if err != nil {
		return err
	}
	return write(cfg.output, data)
}

func render(cfg config, g *graph.Graph) ([]byte, error) {
	switch cfg.format {
	case formatDot:
		return dot.New().Emit(g)
	case formatYAML:
		return yaml.Marshal(g.Document())
	default:
		var options []plantuml.Option
		if cfg.title != "" {
			options = append(options, plantuml.WithTitle(cfg.title))
		}
		return plantuml.New(options...).Emit(g)
	}
}

func write(output string, data []byte) error {
	if output == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
