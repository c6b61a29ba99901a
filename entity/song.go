package entity

import (
	"errors"
	"net/url"
	"strings"
)

// Song is a custom song catalog entry. Song records use the "~|~"
// field separator and "~:~" between records, unlike gameplay records.
type Song struct {
	ID         int
	Name       string
	ArtistID   int
	ArtistName string
	Size       float64
	IsVerified bool
	Link       string
	New        bool

	VideoID          string
	ArtistYouTubeURL string
	Priority         int
	NongType         int
	HasNongType      bool
	ExtraArtistIDs   []int
	ExtraArtistNames string
	NewButtonType    int

	Unknown map[string]string
}

var songSchema = Schema{
	Ints:    []int{1, 3, 9, 11, 14},
	Strs:    []int{2, 4, 6, 7, 15},
	Bools:   []int{8, 13},
	Special: []int{5, 10, 12},
}

// DecodeSong decodes a single "~|~"-separated song record. ID and name
// are structurally mandatory; a record missing either is a parse
// error, not a defaulted song.
func DecodeSong(raw string) (Song, error) {
	r := SplitRaw(raw, "~|~")
	if r.Str(1) == "" {
		return Song{}, errors.New("song record missing ID")
	}
	if !r.Has(2) || r.Str(2) == "" {
		return Song{}, errors.New("song record missing name")
	}
	s := Song{
		ID:         r.Int(1),
		Name:       r.Str(2),
		ArtistID:   r.Int(3),
		ArtistName: r.Str(4),
		Size:       parseFloat(r.Str(5)),
		IsVerified: r.Bool(8),
		New:        r.Bool(13),

		VideoID:          r.Str(6),
		ArtistYouTubeURL: r.Str(7),
		Priority:         r.Int(9),
		NewButtonType:    r.Int(14),
		ExtraArtistNames: r.Str(15),

		Unknown: songSchema.Unknown(r),
	}
	if v := r.Str(10); v != "" {
		if dec, err := url.PathUnescape(v); err == nil {
			s.Link = dec
		} else {
			s.Link = v
		}
	}
	// Presence matters for the nong type: an explicit 0 is meaningful.
	if r.Has(11) {
		s.NongType = r.Int(11)
		s.HasNongType = true
	}
	if v := r.Str(12); v != "" {
		for _, id := range strings.Split(v, ".") {
			s.ExtraArtistIDs = append(s.ExtraArtistIDs, atoi(id))
		}
	}
	return s, nil
}

// DecodeSongs parses a "~:~"-separated song list into an ID-keyed map.
// Entries without an ID are dropped entirely rather than surfacing
// under a bogus key.
func DecodeSongs(raw string) map[string]Song {
	out := make(map[string]Song)
	for _, rec := range strings.Split(raw, "~:~") {
		s, err := DecodeSong(rec)
		if err != nil {
			continue
		}
		out[SplitRaw(rec, "~|~").Str(1)] = s
	}
	return out
}

// Artist is a top-artists catalog entry.
type Artist struct {
	Name    string
	YouTube string

	Unknown map[string]string
}

var artistSchema = Schema{
	Strs: []int{4, 7},
}

// DecodeArtists parses a "|"-separated artist list.
func DecodeArtists(raw string) []Artist {
	var out []Artist
	for _, rec := range strings.Split(raw, "|") {
		if rec == "" {
			continue
		}
		r := SplitRaw(rec, ":")
		out = append(out, Artist{
			Name:    r.Str(4),
			YouTube: r.Str(7),
			Unknown: artistSchema.Unknown(r),
		})
	}
	return out
}
