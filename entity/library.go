package entity

import (
	"errors"
	"net/url"
	"strings"

	"github.com/DiversenSato/dashtools/robtop"
)

// The music and SFX libraries are downloaded from the content server
// as base64url blobs wrapping a compressed "|"-framed document.

// LibraryArtist is an artist entry inside the music library.
type LibraryArtist struct {
	ID      int
	Name    string
	Website string
	YouTube string
}

// LibrarySong is a song entry inside the music library. The newer
// 12-segment format adds platform and ordering metadata; older
// libraries leave those fields zeroed.
type LibrarySong struct {
	ID              int
	Name            string
	PrimaryArtistID int
	FileSize        int
	Duration        int
	Tags            []int

	MusicPlatform int
	ExtraArtists  []int
	ExternalLink  string
	NewButton     bool
	PriorityOrder int
	SongNumber    int
}

// MusicLibrary is the decoded music library document.
type MusicLibrary struct {
	Version int
	Artists []LibraryArtist
	Songs   []LibrarySong
	Tags    map[int]string
}

// DecodeAudioLibrary base64url-decodes and decompresses a library
// payload.
func DecodeAudioLibrary(payload string) ([]byte, error) {
	raw, err := robtop.Base64DecodeBytes(payload)
	if err != nil {
		return nil, err
	}
	return robtop.TryUnzip(raw), nil
}

// ParseMusicLibrary decodes a music library payload. Both the
// 6-segment (2.200) and 12-segment (2.206) song formats are accepted;
// anything else is a parse error.
func ParseMusicLibrary(payload string) (MusicLibrary, error) {
	doc, err := DecodeAudioLibrary(payload)
	if err != nil {
		return MusicLibrary{}, err
	}
	sections := strings.Split(string(doc), "|")
	if len(sections) < 4 {
		return MusicLibrary{}, errors.New("music library missing sections")
	}
	lib := MusicLibrary{
		Version: atoi(sections[0]),
		Tags:    make(map[int]string),
	}
	for _, a := range strings.Split(sections[1], ";") {
		if a == "" {
			continue
		}
		parts := strings.Split(a, ",")
		artist := LibraryArtist{
			ID:      intAt(parts, 0),
			Name:    strAt(parts, 1),
			YouTube: strAt(parts, 3),
		}
		if w, err := url.PathUnescape(strAt(parts, 2)); err == nil {
			artist.Website = w
		} else {
			artist.Website = strAt(parts, 2)
		}
		lib.Artists = append(lib.Artists, artist)
	}
	for _, s := range strings.Split(sections[2], ";") {
		if s == "" {
			continue
		}
		parts := strings.Split(s, ",")
		if parts[0] == "" {
			continue
		}
		switch len(parts) {
		case 6:
			lib.Songs = append(lib.Songs, LibrarySong{
				ID:              intAt(parts, 0),
				Name:            strAt(parts, 1),
				PrimaryArtistID: intAt(parts, 2),
				FileSize:        intAt(parts, 3),
				Duration:        intAt(parts, 4),
				Tags:            splitDotInts(strAt(parts, 5)),
			})
		case 12:
			song := LibrarySong{
				ID:              intAt(parts, 0),
				Name:            strAt(parts, 1),
				PrimaryArtistID: intAt(parts, 2),
				FileSize:        intAt(parts, 3),
				Duration:        intAt(parts, 4),
				Tags:            splitDotInts(strAt(parts, 5)),
				MusicPlatform:   intAt(parts, 6),
				ExtraArtists:    splitDotInts(strAt(parts, 7)),
				NewButton:       intAt(parts, 9) != 0,
				PriorityOrder:   intAt(parts, 10),
				SongNumber:      intAt(parts, 11),
			}
			if l, err := url.PathUnescape(strAt(parts, 8)); err == nil {
				song.ExternalLink = l
			} else {
				song.ExternalLink = strAt(parts, 8)
			}
			lib.Songs = append(lib.Songs, song)
		default:
			return MusicLibrary{}, errors.New("unsupported music library format")
		}
	}
	for _, t := range strings.Split(sections[3], ";") {
		parts := strings.Split(t, ",")
		if strAt(parts, 1) == "" {
			continue
		}
		lib.Tags[intAt(parts, 0)] = parts[1]
	}
	return lib, nil
}

func splitDotInts(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ".")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		out = append(out, atoi(p))
	}
	return out
}

// SFXCredit is a credit entry in the SFX library.
type SFXCredit struct {
	Name string
	Link string
}

// SFXFile is a file or folder entry in the SFX library. Folder entries
// have IsFolder set and carry no size/duration.
type SFXFile struct {
	ID           int
	Name         string
	IsFolder     bool
	ParentFolder int
	FileSize     int
	Duration     int
}

// SFXLibrary is the decoded SFX library document. Files is the flat
// entry list; Tree assembles the folder hierarchy on demand.
type SFXLibrary struct {
	Version int
	Credits []SFXCredit
	Files   []SFXFile
}

// ParseSFXLibrary decodes an SFX library payload.
func ParseSFXLibrary(payload string) (SFXLibrary, error) {
	doc, err := DecodeAudioLibrary(payload)
	if err != nil {
		return SFXLibrary{}, err
	}
	sections := strings.Split(string(doc), "|")
	if len(sections) < 2 {
		return SFXLibrary{}, errors.New("sfx library missing sections")
	}
	var lib SFXLibrary
	for _, c := range strings.Split(sections[1], ";") {
		if c == "" {
			continue
		}
		parts := strings.Split(c, ",")
		lib.Credits = append(lib.Credits, SFXCredit{
			Name: strAt(parts, 0),
			Link: strAt(parts, 1),
		})
	}
	objects := strings.Split(sections[0], ";")
	for _, o := range objects {
		if o == "" {
			continue
		}
		parts := strings.Split(o, ",")
		f := SFXFile{
			ID:           intAt(parts, 0),
			Name:         strAt(parts, 1),
			IsFolder:     intAt(parts, 2) != 0,
			ParentFolder: intAt(parts, 3),
		}
		if !f.IsFolder {
			f.FileSize = intAt(parts, 4)
			f.Duration = intAt(parts, 5)
		}
		lib.Files = append(lib.Files, f)
	}
	if len(lib.Files) > 0 {
		// The version rides in the root folder entry's second field.
		lib.Version = intAt(strings.Split(objects[0], ","), 1)
	}
	return lib, nil
}

// SFXFolder is a folder node in the assembled SFX tree.
type SFXFolder struct {
	ID      int
	Name    string
	Files   []SFXFile
	Folders []*SFXFolder
}

// Tree assembles the flat file list into a folder hierarchy keyed by
// folder ID. Files with an unlisted parent get a placeholder folder.
func (l SFXLibrary) Tree() map[int]*SFXFolder {
	folders := make(map[int]*SFXFolder)
	folderFor := func(id int) *SFXFolder {
		f, ok := folders[id]
		if !ok {
			f = &SFXFolder{ID: id}
			folders[id] = f
		}
		return f
	}
	for _, f := range l.Files {
		if f.IsFolder {
			node := folderFor(f.ID)
			node.Name = f.Name
		} else {
			parent := folderFor(f.ParentFolder)
			parent.Files = append(parent.Files, f)
		}
	}
	for _, f := range l.Files {
		if f.IsFolder && f.ParentFolder != f.ID {
			if parent, ok := folders[f.ParentFolder]; ok {
				parent.Folders = append(parent.Folders, folders[f.ID])
			}
		}
	}
	return folders
}
