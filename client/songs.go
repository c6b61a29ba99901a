package client

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/DiversenSato/dashtools/entity"
)

// ErrSongNotFound reports a song ID the servers do not know, or one
// whose use is disallowed.
var ErrSongNotFound = errors.New("song not found")

// GetSongInfo fetches metadata for one custom song.
func (c *Client) GetSongInfo(ctx context.Context, songID int, overrides Params) (entity.Song, error) {
	body, err := c.do(ctx, ActionGetSongInfo, Params{
		"songID": strconv.Itoa(songID),
	}, overrides)
	if err != nil {
		return entity.Song{}, err
	}
	if _, negative := negativeCode(body); negative {
		return entity.Song{}, ErrSongNotFound
	}
	songs := entity.DecodeSongs(body)
	if s, ok := songs[strconv.Itoa(songID)]; ok {
		return s, nil
	}
	for _, s := range songs {
		return s, nil
	}
	return entity.Song{}, ErrSongNotFound
}

// TopArtistsResult is a decoded page of the top artist listing.
type TopArtistsResult struct {
	Artists []entity.Artist

	entity.Pagination
}

// GetTopArtists fetches a page of the most popular Newgrounds artists.
func (c *Client) GetTopArtists(ctx context.Context, page int, overrides Params) (TopArtistsResult, error) {
	body, err := c.do(ctx, ActionGetTopArtists, Params{
		"page": strconv.Itoa(page),
	}, overrides)
	if err != nil {
		return TopArtistsResult{}, err
	}
	if err := bodyError(body, nil); err != nil {
		return TopArtistsResult{}, err
	}
	segments := entity.SplitSegments(body)
	if len(segments) < 2 {
		return TopArtistsResult{}, errors.New("malformed top artists response")
	}
	return TopArtistsResult{
		Artists:    entity.DecodeArtists(segments[0]),
		Pagination: entity.ParsePagination(segments[1]),
	}, nil
}

// GetContentURL asks the game servers for the current content CDN
// base URL.
func (c *Client) GetContentURL(ctx context.Context, overrides Params) (string, error) {
	body, err := c.do(ctx, ActionGetContentURL, nil, overrides)
	if err != nil {
		return "", err
	}
	if err := bodyError(body, nil); err != nil {
		return "", err
	}
	return strings.TrimSpace(body), nil
}

// Content server file paths. The 2.200 update moved the music library
// to a second revision; the old paths still resolve.
const (
	pathMusicLibraryVersion    = "music/musiclibrary_version_02.txt"
	pathMusicLibraryVersionOld = "music/musiclibrary_version.txt"
	pathMusicLibrary           = "music/musiclibrary_02.dat"
	pathMusicLibraryOld        = "music/musiclibrary.dat"
	pathSFXLibraryVersion      = "sfx/sfxlibrary_version.txt"
	pathSFXLibrary             = "sfx/sfxlibrary.dat"
)

func (c *Client) contentVersion(ctx context.Context, path string) (int, error) {
	body, err := c.contentGet(ctx, path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(body)))
	if err != nil {
		return 0, errors.New("malformed library version")
	}
	return v, nil
}

// GetMusicLibraryVersion fetches the current music library revision.
func (c *Client) GetMusicLibraryVersion(ctx context.Context) (int, error) {
	return c.contentVersion(ctx, pathMusicLibraryVersion)
}

// GetOldMusicLibraryVersion fetches the pre-2.200 library revision.
func (c *Client) GetOldMusicLibraryVersion(ctx context.Context) (int, error) {
	return c.contentVersion(ctx, pathMusicLibraryVersionOld)
}

// GetSFXLibraryVersion fetches the current sound effect library
// revision.
func (c *Client) GetSFXLibraryVersion(ctx context.Context) (int, error) {
	return c.contentVersion(ctx, pathSFXLibraryVersion)
}

// GetMusicLibrary downloads and parses the music library.
func (c *Client) GetMusicLibrary(ctx context.Context) (entity.MusicLibrary, error) {
	return c.musicLibrary(ctx, pathMusicLibrary)
}

// GetOldMusicLibrary downloads and parses the pre-2.200 music library.
func (c *Client) GetOldMusicLibrary(ctx context.Context) (entity.MusicLibrary, error) {
	return c.musicLibrary(ctx, pathMusicLibraryOld)
}

// musicLibrary hands the raw base64url blob to the parser, which owns
// the decode and decompression.
func (c *Client) musicLibrary(ctx context.Context, path string) (entity.MusicLibrary, error) {
	body, err := c.contentGet(ctx, path)
	if err != nil {
		return entity.MusicLibrary{}, err
	}
	return entity.ParseMusicLibrary(string(body))
}

// GetSFXLibrary downloads and parses the sound effect library.
func (c *Client) GetSFXLibrary(ctx context.Context) (entity.SFXLibrary, error) {
	body, err := c.contentGet(ctx, pathSFXLibrary)
	if err != nil {
		return entity.SFXLibrary{}, err
	}
	return entity.ParseSFXLibrary(string(body))
}

// DownloadLibrarySong downloads a library song as raw OGG bytes.
func (c *Client) DownloadLibrarySong(ctx context.Context, songID int) ([]byte, error) {
	return c.contentGet(ctx, "music/"+strconv.Itoa(songID)+".ogg")
}

// DownloadSoundEffect downloads a sound effect as raw OGG bytes.
func (c *Client) DownloadSoundEffect(ctx context.Context, sfxID int) ([]byte, error) {
	return c.contentGet(ctx, "sfx/s"+strconv.Itoa(sfxID)+".ogg")
}
