package engine

import (
	"errors"
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/playgraph/internal/rdf"
)

// TotalSongs counts track rows, one per track node typed as a music
// recording. Distinct titles are not collapsed.
func (e *Engine) TotalSongs() int {
	return len(e.evaluate([]Pattern{trackPattern()}))
}

// TotalDuration sums every track's duration in seconds and reports the
// decomposed total. This is the only query that decodes duration text;
// a malformed literal aborts the whole aggregation with a *FormatError
// naming the track at fault. There is no best-effort partial sum.
func (e *Engine) TotalDuration() (rdf.Duration, error) {
	rows := e.evaluate([]Pattern{
		trackPattern(),
		{Subject: varTrack, Predicate: rdf.PredicateDuration, Object: varDur},
	})

	total := 0
	for _, row := range rows {
		raw, ok := text(row, varDur)
		if !ok {
			continue
		}
		d, err := rdf.ParseDuration(raw)
		if err != nil {
			return rdf.Duration{}, blameTrack(err, row)
		}
		total += d.TotalSeconds()
	}
	return rdf.FromSeconds(total), nil
}

// SongsByLength returns every song ordered by descending raw duration
// text. The comparison is lexicographic on "M:SS", so "9:59" orders
// above "10:00". Each duration literal is still decoded for validation;
// malformed text is fatal to the query.
func (e *Engine) SongsByLength() ([]SongRow, error) {
	rows, err := e.songRows()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Duration > rows[j].Duration
	})
	return rows, nil
}

// Longest returns the song with the greatest raw duration text. The
// second return is false when the store has no tracks.
func (e *Engine) Longest() (SongRow, bool, error) {
	rows, err := e.SongsByLength()
	if err != nil || len(rows) == 0 {
		return SongRow{}, false, err
	}
	return rows[0], true, nil
}

// Shortest returns the song with the least raw duration text. The
// second return is false when the store has no tracks.
func (e *Engine) Shortest() (SongRow, bool, error) {
	rows, err := e.SongsByLength()
	if err != nil || len(rows) == 0 {
		return SongRow{}, false, err
	}
	return rows[len(rows)-1], true, nil
}

// LongerThan returns the songs whose raw duration text is strictly
// greater than the threshold text, ordered by descending raw duration.
// The threshold is compared as text, not parsed: a caller passing
// "9:00" against a playlist of "2:00" and "10:00" tracks gets nothing,
// because both compare below "9:00" lexicographically. Malformed
// thresholds simply produce whatever the string comparison yields.
func (e *Engine) LongerThan(threshold string) []SongRow {
	rows := e.evaluate(songPatterns())
	over := keep(rows, func(row Binding) bool {
		raw, ok := text(row, varDur)
		return ok && raw > threshold
	})

	out := toSongRows(over)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Duration > out[j].Duration
	})
	return out
}

// SongsByAlbum groups songs by album name, albums in ascending name
// order, songs within a group in first-seen join order. Tracks without
// an album relation (or albums without a name) are absent.
func (e *Engine) SongsByAlbum() []Group {
	return e.groupSongs(rdf.PredicateInAlbum, varAlbum)
}

// SongsByArtistName groups songs by artist name, artists in ascending
// name order, songs within a group in first-seen join order.
func (e *Engine) SongsByArtistName() []Group {
	return e.groupSongs(rdf.PredicateByArtist, varArtist)
}

// ArtistsByAppearance counts track rows per artist name, ordered by
// descending count. Ties keep the join's natural first-seen order; they
// are not re-sorted by name.
func (e *Engine) ArtistsByAppearance() []ArtistCount {
	rows := e.evaluate([]Pattern{
		trackPattern(),
		{Subject: varTrack, Predicate: rdf.PredicateByArtist, Object: varArtist},
		{Subject: varArtist, Predicate: rdf.PredicateName, Object: varName},
	})

	counts := make(map[string]int)
	var order []string
	for _, row := range rows {
		name, ok := text(row, varName)
		if !ok {
			continue
		}
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	out := make([]ArtistCount, 0, len(order))
	for _, name := range order {
		out = append(out, ArtistCount{Artist: name, Count: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// SongsByArtist returns the titles of every song by the named artist,
// in natural join order. Matching is exact string equality on the
// NFC-normalized name; an unknown artist yields an empty result, not an
// error. Callers present choices from Artists beforehand.
func (e *Engine) SongsByArtist(artistName string) []string {
	selected := rdf.Literal(norm.NFC.String(artistName))
	rows := e.evaluate([]Pattern{
		trackPattern(),
		{Subject: varTrack, Predicate: rdf.PredicateName, Object: varTitle},
		{Subject: varTrack, Predicate: rdf.PredicateByArtist, Object: varArtist},
		{Subject: varArtist, Predicate: rdf.PredicateName, Object: Bound{Term: selected}},
	})

	var titles []string
	for _, row := range rows {
		if title, ok := text(row, varTitle); ok {
			titles = append(titles, title)
		}
	}
	return titles
}

// Artists returns the distinct artist names appearing on tracks, in
// ascending order. This is the candidate list for SongsByArtist.
func (e *Engine) Artists() []string {
	rows := e.evaluate([]Pattern{
		trackPattern(),
		{Subject: varTrack, Predicate: rdf.PredicateByArtist, Object: varArtist},
		{Subject: varArtist, Predicate: rdf.PredicateName, Object: varName},
	})

	seen := make(map[string]bool)
	var names []string
	for _, row := range rows {
		name, ok := text(row, varName)
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// songRows evaluates the title+duration join and validates every
// duration literal.
func (e *Engine) songRows() ([]SongRow, error) {
	rows := e.evaluate(songPatterns())
	out := make([]SongRow, 0, len(rows))
	for _, row := range rows {
		title, ok := text(row, varTitle)
		if !ok {
			continue
		}
		raw, ok := text(row, varDur)
		if !ok {
			continue
		}
		if _, err := rdf.ParseDuration(raw); err != nil {
			return nil, blameTrack(err, row)
		}
		out = append(out, SongRow{Title: title, Duration: raw})
	}
	return out, nil
}

// groupSongs evaluates track -> title plus track -> related-entity ->
// name, then groups titles under the related entity's name.
func (e *Engine) groupSongs(link rdf.Predicate, entity Var) []Group {
	rows := e.evaluate([]Pattern{
		trackPattern(),
		{Subject: varTrack, Predicate: rdf.PredicateName, Object: varTitle},
		{Subject: varTrack, Predicate: link, Object: entity},
		{Subject: entity, Predicate: rdf.PredicateName, Object: varName},
	})

	byName := make(map[string][]string)
	var order []string
	for _, row := range rows {
		title, ok := text(row, varTitle)
		if !ok {
			continue
		}
		name, ok := text(row, varName)
		if !ok {
			continue
		}
		if _, seen := byName[name]; !seen {
			order = append(order, name)
		}
		byName[name] = append(byName[name], title)
	}

	groups := make([]Group, 0, len(order))
	for _, name := range order {
		groups = append(groups, Group{Name: name, Songs: byName[name]})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Name < groups[j].Name
	})
	return groups
}

func toSongRows(rows []Binding) []SongRow {
	out := make([]SongRow, 0, len(rows))
	for _, row := range rows {
		title, ok := text(row, varTitle)
		if !ok {
			continue
		}
		raw, ok := text(row, varDur)
		if !ok {
			continue
		}
		out = append(out, SongRow{Title: title, Duration: raw})
	}
	return out
}

// blameTrack attaches the row's track node to a duration format error
// so the caller can name the record at fault.
func blameTrack(err error, row Binding) error {
	var fe *rdf.FormatError
	if errors.As(err, &fe) {
		if track, ok := row[varTrack].(rdf.Node); ok {
			return &rdf.FormatError{Text: fe.Text, Reason: fe.Reason, Subject: track}
		}
	}
	return err
}
