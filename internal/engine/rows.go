package engine

// SongRow is one song with its raw "M:SS" duration text. Rows are value
// copies; rank numbering is the renderer's concern (1-based by output
// position).
type SongRow struct {
	Title    string
	Duration string
}

// Group is a set of songs sharing an album or artist name. Songs keep
// their first-seen order from the join.
type Group struct {
	Name  string
	Songs []string
}

// ArtistCount is one artist with the number of track rows naming them.
type ArtistCount struct {
	Artist string
	Count  int
}
