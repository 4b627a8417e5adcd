package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semowl/config"
	"github.com/c360studio/semowl/export"
	"github.com/c360studio/semowl/owl"
)

const zooGraph = `<http://example.org/zoo#Animal> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#Class> .
<http://example.org/zoo#Dog> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#Class> .
<http://example.org/zoo#Dog> <http://www.w3.org/2000/01/rdf-schema#subClassOf> <http://example.org/zoo#Animal> .
<http://example.org/zoo#rex> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://example.org/zoo#Dog> .
`

var zooAxioms = []string{
	"ClassAssertion(<http://example.org/zoo#Dog> <http://example.org/zoo#rex>)",
	"Declaration(Class(<http://example.org/zoo#Animal>))",
	"Declaration(Class(<http://example.org/zoo#Dog>))",
	"SubClassOf(<http://example.org/zoo#Dog> <http://example.org/zoo#Animal>)",
}

func writeGraph(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.nt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	app, err := NewApp(cfg, nil)
	require.NoError(t, err)
	return app
}

func TestAppAxioms(t *testing.T) {
	app := newTestApp(t, nil)
	g, err := app.LoadGraph(writeGraph(t, zooGraph))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Size())

	axioms, err := app.Axioms(g)
	require.NoError(t, err)
	got := make([]string, len(axioms))
	for i, w := range axioms {
		got[i] = w.String()
	}
	assert.Equal(t, zooAxioms, got)

	filtered, err := app.Axioms(g, owl.AxiomSubClassOf)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, zooAxioms[3], filtered[0].String())
}

func TestAppLoadGraphMissingFile(t *testing.T) {
	app := newTestApp(t, nil)

	_, err := app.LoadGraph(filepath.Join(t.TempDir(), "missing.nt"))
	assert.Error(t, err)
}

func TestAppRoundTrip(t *testing.T) {
	app := newTestApp(t, nil)
	g, err := app.LoadGraph(writeGraph(t, zooGraph))
	require.NoError(t, err)

	res, err := app.RoundTrip(g)
	require.NoError(t, err)
	assert.True(t, res.OK(), "missing %v, extra %v", res.Missing, res.Extra)
	assert.Equal(t, 4, res.Axioms)
	assert.Equal(t, 4, res.OriginalTriples)
	assert.Equal(t, 4, res.WrittenTriples)
}

func TestAppExportProfile(t *testing.T) {
	app := newTestApp(t, nil)
	g, err := app.LoadGraph(writeGraph(t, zooGraph))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = app.Export(&buf, g, export.FormatTurtle, export.ProfileTBox, map[string]string{"zoo": "http://example.org/zoo#"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "rdfs:subClassOf zoo:Animal")
	assert.NotContains(t, out, "zoo:rex")
}

func TestAppMetrics(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Namespace = "semowl_cli_test"
	app := newTestApp(t, cfg)
	require.NotNil(t, app.metrics)

	g, err := app.LoadGraph(writeGraph(t, zooGraph))
	require.NoError(t, err)
	_, err = app.Axioms(g)
	require.NoError(t, err)
	assert.NoError(t, app.ReportMetrics())

	families, err := app.metrics.PrometheusRegistry().Gather()
	require.NoError(t, err)
	var found bool
	for _, mf := range families {
		if mf.GetName() == "semowl_cli_test_axioms_read_total" {
			found = true
		}
	}
	assert.True(t, found, "axioms read counter should be collected")
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cmd := rootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReadCommand(t *testing.T) {
	path := writeGraph(t, zooGraph)

	out, err := runCLI(t, "read", path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(zooAxioms, "\n")+"\n", out)

	out, err = runCLI(t, "read", "--type", "ClassAssertion", "--triples", path)
	require.NoError(t, err)
	assert.Contains(t, out, zooAxioms[0])
	assert.Contains(t, out, "    <http://example.org/zoo#rex>")
	assert.NotContains(t, out, "SubClassOf")

	_, err = runCLI(t, "read", "--type", "NotAnAxiom", path)
	assert.Error(t, err)
}

func TestRoundTripCommand(t *testing.T) {
	out, err := runCLI(t, "roundtrip", writeGraph(t, zooGraph))
	require.NoError(t, err)
	assert.Contains(t, out, "axioms: 4")
	assert.Contains(t, out, "triples: 4 original, 4 written")
}

func TestExportCommand(t *testing.T) {
	path := writeGraph(t, zooGraph)
	target := filepath.Join(t.TempDir(), "out.nt")

	_, err := runCLI(t, "export", "--format", "nt", "--profile", "abox", "--output", target, path)
	require.NoError(t, err)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<http://example.org/zoo#rex>")
	assert.NotContains(t, string(data), "subClassOf")

	_, err = runCLI(t, "export", "--profile", "bogus", path)
	assert.Error(t, err)

	_, err = runCLI(t, "export", "--prefix", "novalue", path)
	assert.Error(t, err)
}

func TestVocabCommand(t *testing.T) {
	out, err := runCLI(t, "vocab")
	require.NoError(t, err)
	assert.Contains(t, out, "rdfs.schema.sub_class_of")
	assert.Contains(t, out, "http://www.w3.org/2000/01/rdf-schema#subClassOf")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "semowl version 0.1.0 (build: dev)\n", out)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := runCLI(t, "--log-level", "loud", "read", writeGraph(t, zooGraph))
	assert.Error(t, err)
}

func TestParsePrefixes(t *testing.T) {
	got, err := parsePrefixes([]string{"zoo=http://example.org/zoo#", "a=http://a/"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"zoo": "http://example.org/zoo#", "a": "http://a/"}, got)

	_, err = parsePrefixes([]string{"=http://a/"})
	assert.Error(t, err)
}
