package store

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/roach88/playgraph/internal/rdf"
)

// Graph-exchange text form: one triple per line, terminated by " .".
//
//	<track:abc> name "Reverie" .
//	<track:abc> byArtist <artist:def> .
//
// Nodes are angle-bracketed identifiers, literals are double-quoted with
// backslash escapes, predicates are the bare vocabulary tokens. Lines
// starting with '#' and blank lines are ignored on parse. Serialization
// writes triples in insertion order; parsing accepts any order, and a
// serialize-parse round trip reproduces the identical triple set.

// ParseError reports a malformed line in a graph file.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Encode writes the store's triple set in the graph-exchange text form.
func Encode(w io.Writer, s *Store) error {
	bw := bufio.NewWriter(w)
	for _, t := range s.triples {
		if _, err := fmt.Fprintf(bw, "<%s> %s %s .\n", t.Subject, t.Predicate, encodeObject(t.Object)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode parses the graph-exchange text form into a fresh store.
// Unknown predicates and malformed lines fail with a *ParseError;
// duplicate lines collapse under the store's set semantics.
func Decode(r io.Reader) (*Store, error) {
	s := New()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t, err := decodeLine(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Message: err.Error()}
		}
		s.Insert(t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading graph: %w", err)
	}
	return s, nil
}

func encodeObject(o rdf.Term) string {
	switch v := o.(type) {
	case rdf.Node:
		return fmt.Sprintf("<%s>", v)
	case rdf.Literal:
		return quote(string(v))
	default:
		// Unreachable: Term is sealed to Node and Literal.
		panic(fmt.Sprintf("unknown term type %T", o))
	}
}

func decodeLine(line string) (rdf.Triple, error) {
	rest := line

	// Subject: <node>
	if !strings.HasPrefix(rest, "<") {
		return rdf.Triple{}, fmt.Errorf("expected '<' at start of subject")
	}
	end := strings.IndexByte(rest, '>')
	if end < 0 {
		return rdf.Triple{}, fmt.Errorf("unterminated subject node")
	}
	subject := rdf.Node(rest[1:end])
	if subject == "" {
		return rdf.Triple{}, fmt.Errorf("empty subject node")
	}
	rest = strings.TrimLeft(rest[end+1:], " \t")

	// Predicate: bare token from the closed vocabulary.
	sp := strings.IndexAny(rest, " \t")
	if sp < 0 {
		return rdf.Triple{}, fmt.Errorf("missing object")
	}
	predicate, err := rdf.ParsePredicate(rest[:sp])
	if err != nil {
		return rdf.Triple{}, err
	}
	rest = strings.TrimLeft(rest[sp:], " \t")

	// Object: <node> or "literal".
	var object rdf.Term
	switch {
	case strings.HasPrefix(rest, "<"):
		end := strings.IndexByte(rest, '>')
		if end < 0 {
			return rdf.Triple{}, fmt.Errorf("unterminated object node")
		}
		object = rdf.Node(rest[1:end])
		rest = rest[end+1:]
	case strings.HasPrefix(rest, `"`):
		text, tail, err := unquote(rest)
		if err != nil {
			return rdf.Triple{}, err
		}
		object = rdf.Literal(text)
		rest = tail
	default:
		return rdf.Triple{}, fmt.Errorf("object must be a <node> or a quoted literal")
	}

	if strings.TrimSpace(rest) != "." {
		return rdf.Triple{}, fmt.Errorf("missing ' .' terminator")
	}
	return rdf.NewTriple(subject, predicate, object)
}

// quote renders literal text with the codec's escape set: quote,
// backslash, newline, tab, carriage return. Everything else, including
// non-ASCII text, passes through verbatim.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// unquote decodes a leading double-quoted string with backslash escapes
// and returns the decoded text plus the remainder of the line.
func unquote(s string) (string, string, error) {
	var b strings.Builder
	i := 1 // skip opening quote
	for i < len(s) {
		c := s[i]
		switch c {
		case '"':
			return b.String(), s[i+1:], nil
		case '\\':
			i++
			if i >= len(s) {
				return "", "", fmt.Errorf("dangling escape in literal")
			}
			switch s[i] {
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				return "", "", fmt.Errorf("unknown escape \\%c in literal", s[i])
			}
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", "", fmt.Errorf("unterminated literal")
}
