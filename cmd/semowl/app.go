package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/c360studio/semowl/config"
	"github.com/c360studio/semowl/export"
	"github.com/c360studio/semowl/metric"
	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/provenance"
	"github.com/c360studio/semowl/rdf"
	"github.com/c360studio/semowl/translate"
)

// App wires the configuration, logger, metrics and translator manager used by
// every command.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metric.Registry
	manager *translate.Manager
}

// RoundTripResult compares the axioms of a graph with those read back after
// writing them into a fresh graph.
type RoundTripResult struct {
	Axioms          int
	OriginalTriples int
	WrittenTriples  int
	Missing         []string
	Extra           []string
}

// OK reports whether every axiom survived the round trip unchanged.
func (r RoundTripResult) OK() bool {
	return len(r.Missing) == 0 && len(r.Extra) == 0
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	app := &App{cfg: cfg, logger: logger}

	opts := []translate.ManagerOption{translate.WithLogger(logger)}
	if cfg.Metrics.Enabled {
		reg, err := metric.NewRegistry(cfg.Metrics.Namespace)
		if err != nil {
			return nil, fmt.Errorf("create metrics registry: %w", err)
		}
		app.metrics = reg
		opts = append(opts, translate.WithMetrics(reg.Metrics))
	}
	app.manager = translate.NewManager(cfg.TranslatorOptions(), opts...)
	return app, nil
}

// LoadGraph parses an N-Quads or N-Triples file into a new graph. "-" reads
// standard input.
func (a *App) LoadGraph(path string) (*rdf.MemGraph, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open graph: %w", err)
		}
		defer f.Close()
		r = f
	}

	g := rdf.NewMemGraph()
	n, err := rdf.ReadNQuads(r, g)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Loaded graph", slog.String("path", path), slog.Int("triples", n))
	return g, nil
}

// Axioms reads every axiom of g, optionally restricted to the given types,
// sorted by their functional-syntax rendering.
func (a *App) Axioms(g rdf.Graph, types ...owl.AxiomType) ([]provenance.Wrapped[owl.Axiom], error) {
	all, err := a.manager.ReadAll(g)
	if err != nil {
		return nil, err
	}

	want := make(map[owl.AxiomType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	out := all[:0]
	for _, w := range all {
		if len(want) == 0 || want[w.Object().AxiomType()] {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out, nil
}

// RoundTrip reads the axioms of g, writes them into a fresh graph and reads
// that graph back.
func (a *App) RoundTrip(g rdf.Graph) (RoundTripResult, error) {
	axioms, err := a.manager.ReadAll(g)
	if err != nil {
		return RoundTripResult{}, fmt.Errorf("read original: %w", err)
	}

	out := rdf.NewMemGraph()
	objects := make([]owl.Axiom, len(axioms))
	for i, w := range axioms {
		objects[i] = w.Object()
	}
	if err := a.manager.Write(out, objects...); err != nil {
		return RoundTripResult{}, fmt.Errorf("write axioms: %w", err)
	}

	back, err := a.manager.ReadAll(out)
	if err != nil {
		return RoundTripResult{}, fmt.Errorf("read written graph: %w", err)
	}

	res := RoundTripResult{
		Axioms:          len(axioms),
		OriginalTriples: g.Size(),
		WrittenTriples:  out.Size(),
	}
	res.Missing, res.Extra = diff(rendered(axioms), rendered(back))
	a.logger.Debug("Round trip complete",
		slog.Int("axioms", res.Axioms),
		slog.Int("missing", len(res.Missing)),
		slog.Int("extra", len(res.Extra)))
	return res, nil
}

// Export writes the profile's triples of g to w.
func (a *App) Export(w io.Writer, g rdf.Graph, format export.Format, profile export.Profile, prefixes map[string]string) error {
	e := export.NewRDFExporter(profile, export.WithManager(a.manager), export.WithLogger(a.logger))
	for prefix, iri := range prefixes {
		e.SetPrefix(prefix, iri)
	}
	return e.Export(w, g, format)
}

// ReportMetrics logs the collected metric samples. It does nothing when
// metrics are disabled.
func (a *App) ReportMetrics() error {
	if a.metrics == nil {
		return nil
	}
	families, err := a.metrics.PrometheusRegistry().Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				a.logger.Info("Metric",
					slog.String("name", mf.GetName()),
					slog.Any("labels", labels(m.GetLabel())),
					slog.Float64("value", c.GetValue()))
			}
		}
	}
	return nil
}

func rendered(ws []provenance.Wrapped[owl.Axiom]) map[string]bool {
	out := make(map[string]bool, len(ws))
	for _, w := range ws {
		out[w.String()] = true
	}
	return out
}

func diff(before, after map[string]bool) (missing, extra []string) {
	for s := range before {
		if !after[s] {
			missing = append(missing, s)
		}
	}
	for s := range after {
		if !before[s] {
			extra = append(extra, s)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return missing, extra
}

type labelPair interface {
	GetName() string
	GetValue() string
}

func labels[L labelPair](pairs []L) map[string]string {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		out[p.GetName()] = p.GetValue()
	}
	return out
}
