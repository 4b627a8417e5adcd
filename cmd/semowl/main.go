// Package main provides the semowl binary entry point.
// Semowl translates between OWL2 axioms and their RDF triple encoding.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/semowl/config"
	"github.com/c360studio/semowl/export"
	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/vocabulary/owl2"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semowl"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
}

func rootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "OWL2 axiom to RDF translator",
		Long: `Semowl translates OWL2 structural axioms to RDF triples and back,
following the W3C OWL2 mapping to RDF graphs.

Graphs are read from N-Quads or N-Triples files ("-" for stdin).`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		readCmd(flags),
		roundTripCmd(flags),
		exportCmd(flags),
		vocabCmd(),
		configCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)
	return cmd
}

// setup loads the layered configuration and builds the app. The log level
// flag overrides the configured level.
func setup(flags *globalFlags, stderr io.Writer) (*App, error) {
	bootstrap := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	var explicit []string
	if flags.configPath != "" {
		explicit = append(explicit, flags.configPath)
	}
	cfg, err := config.NewLoader(bootstrap).Load(explicit...)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	return NewApp(cfg, logger)
}

func readCmd(flags *globalFlags) *cobra.Command {
	var (
		types       []string
		showTriples bool
	)

	cmd := &cobra.Command{
		Use:   "read <file>",
		Short: "List the axioms encoded in a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseAxiomTypes(types)
			if err != nil {
				return err
			}
			app, err := setup(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			g, err := app.LoadGraph(args[0])
			if err != nil {
				return err
			}
			axioms, err := app.Axioms(g, filter...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, w := range axioms {
				fmt.Fprintln(out, w.String())
				if showTriples {
					for _, t := range w.Triples() {
						fmt.Fprintf(out, "    %s\n", t)
					}
				}
			}
			return app.ReportMetrics()
		},
	}

	cmd.Flags().StringSliceVarP(&types, "type", "t", nil, "Only list axioms of these types (e.g. SubClassOf)")
	cmd.Flags().BoolVar(&showTriples, "triples", false, "Print the triples of each axiom")
	return cmd
}

func roundTripCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip <file>",
		Short: "Read the axioms of a graph, write them back and compare",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			g, err := app.LoadGraph(args[0])
			if err != nil {
				return err
			}
			res, err := app.RoundTrip(g)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "axioms: %d\ntriples: %d original, %d written\n",
				res.Axioms, res.OriginalTriples, res.WrittenTriples)
			for _, s := range res.Missing {
				fmt.Fprintf(out, "- %s\n", s)
			}
			for _, s := range res.Extra {
				fmt.Fprintf(out, "+ %s\n", s)
			}
			if err := app.ReportMetrics(); err != nil {
				return err
			}
			if !res.OK() {
				return fmt.Errorf("round trip changed %d axioms", len(res.Missing)+len(res.Extra))
			}
			return nil
		},
	}
}

func exportCmd(flags *globalFlags) *cobra.Command {
	var (
		format   string
		profile  string
		output   string
		prefixes []string
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Serialize a graph as Turtle or N-Triples",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if _, ok := export.Profiles[export.Profile(profile)]; !ok {
				return fmt.Errorf("unknown profile: %s", profile)
			}
			ns, err := parsePrefixes(prefixes)
			if err != nil {
				return err
			}

			app, err := setup(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			g, err := app.LoadGraph(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer file.Close()
				w = file
			}
			if err := app.Export(w, g, f, export.Profile(profile), ns); err != nil {
				return err
			}
			return app.ReportMetrics()
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatTurtle), "Output format (turtle, ntriples)")
	cmd.Flags().StringVarP(&profile, "profile", "p", string(export.ProfileFull), "Export profile (full, tbox, rbox, abox, schema)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringSliceVar(&prefixes, "prefix", nil, "Extra Turtle prefix as name=iri")
	return cmd
}

func vocabCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vocab",
		Short: "List the registered mapping predicates and their IRIs",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range owl2.MappingPredicates() {
				iri, ok := owl2.PredicateIRI(name)
				if !ok {
					return fmt.Errorf("predicate %s is not registered", name)
				}
				fmt.Fprintf(out, "%-40s %s\n", name, iri)
			}
			return nil
		},
	}
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the user configuration file with defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			return config.NewLoader(logger).EnsureUserConfig()
		},
	})
	return cmd
}

func parseAxiomTypes(names []string) ([]owl.AxiomType, error) {
	out := make([]owl.AxiomType, 0, len(names))
	for _, name := range names {
		t, ok := owl.ParseAxiomType(name)
		if !ok {
			return nil, fmt.Errorf("unknown axiom type: %s", name)
		}
		out = append(out, t)
	}
	return out, nil
}

func parsePrefixes(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, iri, ok := strings.Cut(pair, "=")
		if !ok || name == "" || iri == "" {
			return nil, fmt.Errorf("invalid prefix %q, want name=iri", pair)
		}
		out[name] = iri
	}
	return out, nil
}
