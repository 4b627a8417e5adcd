package translate

import (
	"log/slog"
	"time"

	"github.com/c360studio/semowl/metric"
	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/provenance"
	"github.com/c360studio/semowl/rdf"
)

// Manager dispatches axioms to their translators and reads whole graphs.
// A Manager holds no graph state; callers serialize access to the graph.
type Manager struct {
	cfg     Config
	logger  *slog.Logger
	metrics *metric.Metrics
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithMetrics records write and read counts in metrics.
func WithMetrics(metrics *metric.Metrics) ManagerOption {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

// NewManager creates a manager with the given translator configuration.
func NewManager(cfg Config, opts ...ManagerOption) *Manager {
	m := &Manager{
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Config returns the translator configuration.
func (m *Manager) Config() Config { return m.cfg }

// Write adds the triples of every axiom to g. With atomic writes enabled a
// failing axiom leaves g unchanged; axioms written before it stay.
func (m *Manager) Write(g rdf.Graph, axioms ...owl.Axiom) error {
	for _, ax := range axioms {
		if ax == nil {
			return classify(illegalArgumentf("nil axiom"), "Write", "write axiom")
		}
		if err := m.write(g, ax); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) write(g rdf.Graph, ax owl.Axiom) error {
	typ := ax.AxiomType().String()
	t, err := Lookup(ax.AxiomType())
	if err != nil {
		return err
	}

	if !m.cfg.AtomicWrites {
		before := g.Size()
		err := t.Write(g, ax)
		m.metrics.RecordWrite(typ, g.Size()-before, err)
		if err != nil {
			return classify(err, "Write", "write "+typ)
		}
		m.logger.Debug("Wrote axiom", slog.String("axiom_type", typ), slog.Int("triples", g.Size()-before))
		return nil
	}

	buf := rdf.NewBuffer(g)
	if err := t.Write(buf, ax); err != nil {
		buf.Discard()
		m.metrics.RecordWrite(typ, 0, err)
		return classify(err, "Write", "write "+typ)
	}
	added, _ := buf.Commit()
	m.metrics.RecordWrite(typ, added, nil)
	m.logger.Debug("Wrote axiom", slog.String("axiom_type", typ), slog.Int("triples", added))
	return nil
}

// Read reconstructs the axiom of type t anchored at stmt.
func (m *Manager) Read(g rdf.Graph, t owl.AxiomType, stmt rdf.Triple) (provenance.Wrapped[owl.Axiom], error) {
	tr, err := Lookup(t)
	if err != nil {
		return provenance.Wrapped[owl.Axiom]{}, err
	}
	w, err := tr.Read(g, stmt, m.cfg)
	if err != nil {
		m.metrics.RecordReadError(t.String(), "failed")
		return provenance.Wrapped[owl.Axiom]{}, classify(err, "Read", "read "+t.String())
	}
	m.metrics.RecordRead(t.String())
	return w, nil
}

// ReadAll reads every axiom encoded in g. Equal axioms are returned once
// with their triples merged, and pairwise equivalence and sameness axioms
// sharing operands and annotations are joined into one n-ary axiom.
// Statements that fail with a translation error abort the read unless the
// configuration ignores read errors.
func (m *Manager) ReadAll(g rdf.Graph) ([]provenance.Wrapped[owl.Axiom], error) {
	start := time.Now()
	set := provenance.NewSet[owl.Axiom]()

	for _, tr := range Translators() {
		typ := tr.AxiomType().String()
		for _, stmt := range tr.Statements(g, m.cfg) {
			w, err := tr.Read(g, stmt, m.cfg)
			if err != nil {
				if m.cfg.IgnoreReadErrors && IsTranslationError(err) {
					m.logger.Warn("Skipping statement",
						slog.String("axiom_type", typ),
						slog.String("statement", stmt.String()),
						slog.Any("error", err))
					m.metrics.RecordReadError(typ, "skipped")
					continue
				}
				m.metrics.RecordReadError(typ, "failed")
				return nil, classify(err, "ReadAll", "read "+typ)
			}
			set.Add(w)
			m.metrics.RecordRead(typ)
		}
	}

	out := mergeNary(set.Items())
	m.metrics.RecordReadAll(time.Since(start))
	m.logger.Debug("Read graph",
		slog.Int("triples", g.Size()),
		slog.Int("axioms", len(out)),
		slog.Duration("duration", time.Since(start)))
	return out, nil
}

// Remove retracts exactly the triples recorded in w and returns how many
// were present.
func (m *Manager) Remove(g rdf.Graph, w provenance.Wrapped[owl.Axiom]) int {
	n := rdf.RemoveAll(g, w.Triples())
	m.metrics.RecordRemove(n)
	m.logger.Debug("Removed axiom", slog.String("axiom", w.String()), slog.Int("triples", n))
	return n
}
