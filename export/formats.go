package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semowl/rdf"
	"github.com/c360studio/semowl/vocabulary/owl2"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples - Line-based RDF format",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// ParseFormat resolves a format name or file extension.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, info := range FormatRegistry {
		if name == string(f) || name == info.Extension || "."+name == info.Extension {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format: %s", name)
}

// defaultPrefixes returns the standard namespace prefixes for Turtle output.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":   owl2.RdfNamespace,
		"rdfs":  owl2.RdfsNamespace,
		"owl":   owl2.OwlNamespace,
		"xsd":   owl2.XsdNamespace,
		"swrl":  owl2.SwrlNamespace,
		"swrlb": "http://www.w3.org/2003/11/swrlb#",
	}
}

// TurtleWriter writes RDF in Turtle format.
type TurtleWriter struct {
	prefixes map[string]string
	sb       strings.Builder
}

// NewTurtleWriter creates a new Turtle writer with default prefixes.
func NewTurtleWriter() *TurtleWriter {
	return &TurtleWriter{
		prefixes: defaultPrefixes(),
	}
}

// SetPrefix sets a namespace prefix.
func (w *TurtleWriter) SetPrefix(prefix, iri string) {
	w.prefixes[prefix] = iri
}

// WritePrefixes writes prefix declarations.
func (w *TurtleWriter) WritePrefixes() {
	// Sort prefixes for consistent output
	keys := make([]string, 0, len(w.prefixes))
	for k := range w.prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, prefix := range keys {
		w.sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, w.prefixes[prefix]))
	}
	w.sb.WriteString("\n")
}

// WriteTriples writes one block per subject, in the order subjects first
// appear. Objects sharing a predicate are joined with commas.
func (w *TurtleWriter) WriteTriples(ts []rdf.Triple) {
	var subjects []string
	bySubject := make(map[string][]rdf.Triple)
	for _, t := range ts {
		k := rdf.TermKey(t.Subject)
		if _, ok := bySubject[k]; !ok {
			subjects = append(subjects, k)
		}
		bySubject[k] = append(bySubject[k], t)
	}

	for _, k := range subjects {
		block := bySubject[k]
		w.sb.WriteString(w.Term(block[0].Subject))
		w.sb.WriteString("\n")

		var preds []string
		objects := make(map[string][]string)
		for _, t := range block {
			p := w.predicate(t.Predicate)
			if _, ok := objects[p]; !ok {
				preds = append(preds, p)
			}
			objects[p] = append(objects[p], w.Term(t.Object))
		}
		for i, p := range preds {
			terminator := " ;"
			if i == len(preds)-1 {
				terminator = " ."
			}
			w.sb.WriteString(fmt.Sprintf("    %s %s%s\n", p, strings.Join(objects[p], ", "), terminator))
		}
		w.sb.WriteString("\n")
	}
}

func (w *TurtleWriter) predicate(p quad.Value) string {
	if rdf.Is(p, owl2.RdfType) {
		return "a"
	}
	return w.Term(p)
}

// Term formats a node, abbreviating IRIs with the longest matching prefix.
func (w *TurtleWriter) Term(v quad.Value) string {
	switch x := rdf.Normalize(v).(type) {
	case quad.IRI:
		return w.iri(string(x))
	case quad.BNode:
		return "_:" + string(x)
	case quad.String:
		return fmt.Sprintf("\"%s\"", escapeString(string(x)))
	case quad.LangString:
		return fmt.Sprintf("\"%s\"@%s", escapeString(string(x.Value)), x.Lang)
	case quad.TypedString:
		return fmt.Sprintf("\"%s\"^^%s", escapeString(string(x.Value)), w.iri(string(x.Type)))
	default:
		return v.String()
	}
}

func (w *TurtleWriter) iri(iri string) string {
	best, local := "", ""
	for prefix, ns := range w.prefixes {
		if !strings.HasPrefix(iri, ns) || len(ns) <= len(w.prefixes[best]) {
			continue
		}
		if rest := iri[len(ns):]; isLocalName(rest) {
			best, local = prefix, rest
		}
	}
	if best == "" {
		return fmt.Sprintf("<%s>", iri)
	}
	return best + ":" + local
}

// isLocalName reports whether s can follow a prefix without escaping.
func isLocalName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r == '-' || (r >= '0' && r <= '9')):
		default:
			return false
		}
	}
	return true
}

// WriteBlank writes a blank line for readability.
func (w *TurtleWriter) WriteBlank() {
	w.sb.WriteString("\n")
}

// String returns the accumulated Turtle output.
func (w *TurtleWriter) String() string {
	return w.sb.String()
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
