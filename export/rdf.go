// Package export serializes OWL graphs, optionally restricted to the axioms
// of an ontology profile.
package export

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cayleygraph/quad/nquads"

	"github.com/c360studio/semowl/rdf"
	"github.com/c360studio/semowl/translate"
)

// RDFExporter exports graphs with a configurable profile.
type RDFExporter struct {
	profile  ProfileConfig
	manager  *translate.Manager
	prefixes map[string]string
	logger   *slog.Logger
}

// Option configures an RDFExporter.
type Option func(*RDFExporter)

// WithManager sets the manager used to read axioms for filtered profiles.
func WithManager(m *translate.Manager) Option {
	return func(e *RDFExporter) {
		if m != nil {
			e.manager = m
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *RDFExporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewRDFExporter creates a new RDF exporter with the specified profile.
func NewRDFExporter(profile Profile, opts ...Option) *RDFExporter {
	e := &RDFExporter{
		profile:  GetProfileConfig(profile),
		prefixes: make(map[string]string),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.manager == nil {
		e.manager = translate.NewManager(translate.DefaultConfig(), translate.WithLogger(e.logger))
	}
	return e
}

// SetPrefix adds a namespace prefix for Turtle output.
func (e *RDFExporter) SetPrefix(prefix, iri string) {
	e.prefixes[prefix] = iri
}

// Triples returns the triples of g selected by the profile, in graph order.
// Filtered profiles keep the triples of the axioms they include.
func (e *RDFExporter) Triples(g rdf.Graph) ([]rdf.Triple, error) {
	all := rdf.All(g)
	if e.profile.AllTriples {
		return all, nil
	}

	axioms, err := e.manager.ReadAll(g)
	if err != nil {
		return nil, fmt.Errorf("read axioms: %w", err)
	}
	keep := make(map[string]bool)
	included := 0
	for _, w := range axioms {
		if !e.profile.Includes(w.Object().AxiomType()) {
			continue
		}
		included++
		for _, t := range w.Triples() {
			keep[t.Key()] = true
		}
	}

	out := make([]rdf.Triple, 0, len(keep))
	for _, t := range all {
		if keep[t.Key()] {
			out = append(out, t)
		}
	}
	e.logger.Debug("Selected profile triples",
		slog.String("profile", string(e.profile.Name)),
		slog.Int("axioms", included),
		slog.Int("triples", len(out)))
	return out, nil
}

// Export serializes the profile's triples of g to w.
func (e *RDFExporter) Export(w io.Writer, g rdf.Graph, format Format) error {
	if _, ok := GetFormatInfo(format); !ok {
		return fmt.Errorf("unsupported format: %s", format)
	}
	ts, err := e.Triples(g)
	if err != nil {
		return err
	}

	switch format {
	case FormatTurtle:
		return e.toTurtle(w, ts)
	default:
		return toNTriples(w, ts)
	}
}

// toTurtle serializes to Turtle format.
func (e *RDFExporter) toTurtle(w io.Writer, ts []rdf.Triple) error {
	tw := NewTurtleWriter()
	for prefix, iri := range e.prefixes {
		tw.SetPrefix(prefix, iri)
	}
	tw.WritePrefixes()
	tw.WriteTriples(ts)
	if _, err := io.WriteString(w, tw.String()); err != nil {
		return fmt.Errorf("write turtle: %w", err)
	}
	return nil
}

// toNTriples serializes to N-Triples format.
func toNTriples(w io.Writer, ts []rdf.Triple) error {
	qw := nquads.NewWriter(w)
	for _, t := range ts {
		if err := qw.WriteQuad(t.Quad()); err != nil {
			return fmt.Errorf("write n-triples: %w", err)
		}
	}
	return qw.Close()
}
