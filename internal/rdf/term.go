package rdf

// Term is a sealed interface over the value types that may appear as a
// triple component. Only Node and Literal implement it.
// The marker method pattern prevents external implementations and
// enables exhaustive type switches in the store codec.
type Term interface {
	term() // Sealed - only types in this package implement it
	String() string
}

// Node is a graph vertex identifier. The identifier string is opaque but
// scoped by kind and origin id ("track:<id>", "artist:<id>",
// "album:<id>"). Equality is exact string equality; nodes are immutable.
type Node string

func (Node) term() {}

// String returns the raw identifier.
func (n Node) String() string { return string(n) }

// ClassMusicRecording is the class node every track points at through
// the IsA predicate. It is the only class in the vocabulary.
const ClassMusicRecording = Node("schema:MusicRecording")

// TrackNode builds the node identifier for a catalog track id.
func TrackNode(id string) Node { return Node("track:" + id) }

// ArtistNode builds the node identifier for a catalog artist id.
func ArtistNode(id string) Node { return Node("artist:" + id) }

// AlbumNode builds the node identifier for a catalog album id.
func AlbumNode(id string) Node { return Node("album:" + id) }

// Literal is a scalar value attached to a node: free text (track, artist
// or album name) or a duration in its raw "M:SS" form. Literals carry no
// type tag; a duration literal is just its exact text, and comparisons
// on it are string comparisons (see package doc).
type Literal string

func (Literal) term() {}

// String returns the literal text.
func (l Literal) String() string { return string(l) }

// DurationLiteral renders a Duration value into the literal form stored
// in the graph.
func DurationLiteral(d Duration) Literal { return Literal(d.String()) }
