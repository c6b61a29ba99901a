package client

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/DiversenSato/dashtools/checksum"
	"github.com/DiversenSato/dashtools/entity"
	"github.com/DiversenSato/dashtools/robtop"
)

// Search type values for GetLevels. Type 0 is normalized to
// TypeMostLiked on the wire, matching the game's search ordering.
const (
	TypeSearch          = 0
	TypeMostDownloaded  = 1
	TypeMostLiked       = 2
	TypeTrending        = 3
	TypeRecent          = 4
	TypeByPlayer        = 5
	TypeFeatured        = 6
	TypeMagic           = 7
	TypeSentOld         = 8
	TypeRatedByIDs      = 10
	TypeAwarded         = 11
	TypeFollowed        = 12
	TypeFriends         = 13
	TypeMostLikedWorld  = 15
	TypeHallOfFame      = 16
	TypeFeaturedWorld   = 17
	TypeDailyHistory    = 21
	TypeWeeklyHistory   = 22
	TypeList            = 25
	TypeSent            = 27
	TypeByIDs           = 19
)

// ErrMultipleDemonFilters is returned when a search names more than
// one demon tier; the protocol only carries a single demonFilter.
var ErrMultipleDemonFilters = errors.New("only one demon difficulty can be searched at a time")

// LevelSearch is the full filter set for GetLevels.
type LevelSearch struct {
	Query string
	Page  int
	Type  int

	// Difficulties uses the Difficulty* and *Demon constants.
	Difficulties []int
	// Length filters by level length; nil means any.
	Length *int

	Rated     bool
	Unrated   bool
	Featured  bool
	Epic      bool
	Legendary bool
	Mythic    bool
	Coins     bool
	TwoPlayer bool
	Original  bool

	// Uncompleted/Completed filter against LevelIDs as the completed
	// set. LevelIDs also carries the target IDs for TypeByIDs,
	// TypeRatedByIDs.
	Uncompleted bool
	Completed   bool
	LevelIDs    []int

	// AccountIDs is the followed-creators set for TypeFollowed.
	AccountIDs []int
	// PlayerID targets TypeByPlayer.
	PlayerID int
	// ListID targets TypeList.
	ListID int

	CustomSong int
	SongID     int
}

// LevelSearchResult is a decoded level search page. Users and Songs
// index the sidecar segments by player ID and song ID.
type LevelSearchResult struct {
	Levels []entity.Level
	Users  map[string]entity.UserRef
	Songs  map[string]entity.Song

	entity.Pagination
	Hash        string
	IsHashValid bool
}

// The wire difficulty encoding differs from the display one: auto is
// -3, NA is -1 and every demon tier collapses to -2 plus demonFilter.
var wireDifficulty = map[int]int{
	DifficultyAuto:   -3,
	DifficultyNA:     -1,
	DifficultyEasy:   1,
	DifficultyNormal: 2,
	DifficultyHard:   3,
	DifficultyHarder: 4,
	DifficultyInsane: 5,
	EasyDemon:        -2,
	MediumDemon:      -2,
	HardDemon:        -2,
	InsaneDemon:      -2,
	ExtremeDemon:     -2,
}

// GetLevels searches levels.
func (c *Client) GetLevels(ctx context.Context, search LevelSearch, overrides Params) (LevelSearchResult, error) {
	fields := Params{
		"page":      strconv.Itoa(search.Page),
		"str":       search.Query,
		"len":       "-",
		"noStar":    flag(search.Unrated),
		"star":      flag(search.Rated),
		"featured":  flag(search.Featured),
		"epic":      flag(search.Epic),
		"legendary": flag(search.Legendary),
		"mythic":    flag(search.Mythic),
		"coins":     flag(search.Coins),
		"twoPlayer": flag(search.TwoPlayer),
		"original":  flag(search.Original),

		"followed":        joinInts(search.AccountIDs),
		"uncompleted":     flag(search.Uncompleted),
		"onlyCompleted":   flag(search.Completed),
		"completedLevels": "",
		"customSong":      strconv.Itoa(search.CustomSong),
		"song":            strconv.Itoa(search.SongID),
		"demonFilter":     "0",
	}
	searchType := search.Type
	if searchType == TypeSearch {
		searchType = TypeMostLiked
	}
	fields["type"] = strconv.Itoa(searchType)

	if search.Length != nil {
		fields["len"] = strconv.Itoa(*search.Length)
	}
	if search.Uncompleted || search.Completed {
		fields["completedLevels"] = "(" + joinInts(search.LevelIDs) + ")"
	}
	switch search.Type {
	case TypeByPlayer:
		fields["str"] = strconv.Itoa(search.PlayerID)
	case TypeRatedByIDs, TypeByIDs:
		fields["str"] = joinInts(search.LevelIDs)
	case TypeList:
		fields["str"] = strconv.Itoa(search.ListID)
	case TypeFriends:
		if !c.account.authenticated() {
			return LevelSearchResult{}, ErrUnauthenticated
		}
		fields["accountID"] = strconv.Itoa(c.account.AccountID)
		fields["gjp2"] = c.account.GJP2()
	}
	if len(search.Difficulties) > 0 {
		mapped := make([]int, 0, len(search.Difficulties))
		demons := 0
		for _, d := range search.Difficulties {
			w := wireDifficulty[d]
			mapped = append(mapped, w)
			if w == -2 {
				demons++
			}
		}
		switch {
		case len(mapped) > 1 && demons > 0:
			return LevelSearchResult{}, ErrMultipleDemonFilters
		case len(mapped) == 1 && mapped[0] == -2:
			fields["demonFilter"] = strconv.Itoa(search.Difficulties[0] - 5)
			fields["diff"] = "-2"
		default:
			fields["diff"] = joinInts(dedupe(mapped))
		}
	}

	body, err := c.do(ctx, ActionGetLevels, fields, overrides)
	if err != nil {
		return LevelSearchResult{}, err
	}
	if err := bodyError(body, nil); err != nil {
		return LevelSearchResult{}, err
	}
	return c.decodeLevelPage(body)
}

func (c *Client) decodeLevelPage(body string) (LevelSearchResult, error) {
	segments := entity.SplitSegments(body)
	if len(segments) < 4 {
		return LevelSearchResult{}, errors.New("malformed level search response")
	}
	var res LevelSearchResult
	records, _ := entity.SplitRecords(segments[0])
	for _, rec := range records {
		l, err := entity.DecodeLevel(rec)
		if err != nil {
			continue
		}
		res.Levels = append(res.Levels, l)
	}
	res.Users = entity.DecodeUserIndex(segments[1])
	// Pre-1.9 servers have no song segment.
	pages, hash := 2, 3
	if c.versions.GameVersion >= 19 && len(segments) > 4 {
		res.Songs = entity.DecodeSongs(segments[2])
		pages, hash = 3, 4
	}
	res.Pagination = entity.ParsePagination(segments[pages])
	res.Hash = segments[hash]
	res.IsHashValid = checksum.LevelsHash(res.Levels) == res.Hash
	return res, nil
}

// DailyInfo is the metadata for the current daily or weekly level.
type DailyInfo struct {
	DailyID  int
	TimeLeft int
}

// GetDailyLevel returns the current daily level's rotation metadata.
func (c *Client) GetDailyLevel(ctx context.Context, overrides Params) (DailyInfo, error) {
	return c.dailyInfo(ctx, Params{}, overrides)
}

// GetWeeklyLevel returns the current weekly demon's rotation metadata.
func (c *Client) GetWeeklyLevel(ctx context.Context, overrides Params) (DailyInfo, error) {
	return c.dailyInfo(ctx, Params{"weekly": "1"}, overrides)
}

func (c *Client) dailyInfo(ctx context.Context, fields, overrides Params) (DailyInfo, error) {
	body, err := c.do(ctx, ActionGetDailyLevel, fields, overrides)
	if err != nil {
		return DailyInfo{}, err
	}
	if err := bodyError(body, nil); err != nil {
		return DailyInfo{}, err
	}
	parts := strings.Split(body, "|")
	info := DailyInfo{DailyID: atoi(parts[0])}
	if len(parts) > 1 {
		info.TimeLeft = atoi(parts[1])
	}
	return info, nil
}

// MapPacksResult is a decoded map pack page.
type MapPacksResult struct {
	Packs []entity.MapPack

	entity.Pagination
	Hash        string
	IsHashValid bool
}

// GetMapPacks fetches one page of map packs.
func (c *Client) GetMapPacks(ctx context.Context, page int, overrides Params) (MapPacksResult, error) {
	body, err := c.do(ctx, ActionGetMapPacks, Params{"page": strconv.Itoa(page)}, overrides)
	if err != nil {
		return MapPacksResult{}, err
	}
	if err := bodyError(body, nil); err != nil {
		return MapPacksResult{}, err
	}
	segments := entity.SplitSegments(body)
	if len(segments) < 3 {
		return MapPacksResult{}, errors.New("malformed map pack response")
	}
	var res MapPacksResult
	records, _ := entity.SplitRecords(segments[0])
	for _, rec := range records {
		p, err := entity.DecodeMapPack(rec)
		if err != nil {
			continue
		}
		res.Packs = append(res.Packs, p)
	}
	res.Pagination = entity.ParsePagination(segments[1])
	res.Hash = segments[2]
	res.IsHashValid = checksum.MapPacksHash(res.Packs) == res.Hash
	return res, nil
}

// GauntletsResult is the decoded gauntlet listing.
type GauntletsResult struct {
	Gauntlets []entity.Gauntlet

	Hash        string
	IsHashValid bool
}

// GetGauntlets fetches the gauntlet listing.
func (c *Client) GetGauntlets(ctx context.Context, overrides Params) (GauntletsResult, error) {
	body, err := c.do(ctx, ActionGetGauntlets, Params{"special": "1"}, overrides)
	if err != nil {
		return GauntletsResult{}, err
	}
	if err := bodyError(body, nil); err != nil {
		return GauntletsResult{}, err
	}
	segments := entity.SplitSegments(body)
	if len(segments) < 2 {
		return GauntletsResult{}, errors.New("malformed gauntlet response")
	}
	var res GauntletsResult
	records, _ := entity.SplitRecords(segments[0])
	for _, rec := range records {
		g, err := entity.DecodeGauntlet(rec)
		if err != nil {
			continue
		}
		res.Gauntlets = append(res.Gauntlets, g)
	}
	res.Hash = segments[1]
	res.IsHashValid = checksum.GauntletsHash(res.Gauntlets) == res.Hash
	return res, nil
}

// Timely pseudo-IDs accepted by DownloadLevel.
const (
	DailyLevelID  = -1
	WeeklyLevelID = -2
	EventLevelID  = -3
)

// DownloadedLevel is a decoded level download, including the game data
// payload and both integrity verdicts.
type DownloadedLevel struct {
	Level entity.Level

	Hashes       []string
	IsHash1Valid bool
	IsHash2Valid bool

	Songs        map[string]entity.Song
	ExtraArtists map[string]string
}

// DownloadLevel downloads a level by ID, or a timely level via the
// negative pseudo-IDs. Incrementing the download counter requires an
// account.
func (c *Client) DownloadLevel(ctx context.Context, levelID int, increment bool, overrides Params) (DownloadedLevel, error) {
	fields := Params{
		"levelID": strconv.Itoa(levelID),
		"rs":      robtop.RS(10),
	}
	if c.account.authenticated() {
		inc := flag(increment)
		fields["udid"] = c.account.UDID
		fields["uuid"] = c.account.UUID
		fields["gjp2"] = c.account.GJP2()
		fields["accountID"] = strconv.Itoa(c.account.AccountID)
		fields["inc"] = inc
		fields["chk"] = checksum.Chk(checksum.Values(
			levelID, inc, fields["rs"], c.account.AccountID, c.account.UDID, c.account.UUID,
		), robtop.KeyLevel, robtop.SaltLevel)
	} else if increment {
		return DownloadedLevel{}, ErrUnauthenticated
	}

	body, err := c.do(ctx, ActionDownloadLevel, fields, overrides)
	if err != nil {
		return DownloadedLevel{}, err
	}
	if err := bodyError(body, nil); err != nil {
		return DownloadedLevel{}, err
	}
	segments := entity.SplitSegments(body)
	if len(segments) < 3 {
		return DownloadedLevel{}, errors.New("malformed level download response")
	}
	decode := entity.DecodeLevel
	if c.versions.GameVersion < 20 {
		decode = entity.DecodeLevelOld
	}
	level, err := decode(segments[0])
	if err != nil {
		return DownloadedLevel{}, err
	}
	res := DownloadedLevel{
		Level:        level,
		Hashes:       segments[1:3],
		IsHash1Valid: checksum.DownloadHash(level.LevelString) == segments[1],
		IsHash2Valid: checksum.DownloadMetaHash(level) == segments[2],
	}
	if len(segments) > 4 && segments[4] != "" {
		res.Songs = entity.DecodeSongs(segments[4])
	}
	if len(segments) > 5 && segments[5] != "" {
		res.ExtraArtists = entity.SplitRaw(segments[5], ",")
	}
	return res, nil
}

// ReportLevel reports a level. The return value is the report count.
func (c *Client) ReportLevel(ctx context.Context, levelID int, overrides Params) (int, error) {
	body, err := c.do(ctx, ActionReportLevel, Params{"levelID": strconv.Itoa(levelID)}, overrides)
	if err != nil {
		return 0, err
	}
	if err := bodyError(body, nil); err != nil {
		return 0, err
	}
	return atoi(body), nil
}

// RateLevel submits a star rating suggestion.
func (c *Client) RateLevel(ctx context.Context, levelID, stars int, overrides Params) error {
	if !c.account.authenticated() {
		return ErrUnauthenticated
	}
	rs := robtop.RS(10)
	chk := checksum.Chk(checksum.Values(
		levelID, stars, rs, c.account.AccountID, c.account.UDID, c.account.PlayerID,
	), robtop.KeyRate, robtop.SaltLikeOrRate)

	body, err := c.authDo(ctx, ActionRateLevel, Params{
		"levelID": strconv.Itoa(levelID),
		"stars":   strconv.Itoa(stars),
		"chk":     chk,
		"rs":      rs,
		"udid":    c.account.UDID,
		"uuid":    c.account.UUID,
	}, overrides)
	if err != nil {
		return err
	}
	return bodyError(body, nil)
}

// RateDemon submits a demon tier suggestion. Only moderators are
// heard; the request needs the mod secret either way.
func (c *Client) RateDemon(ctx context.Context, levelID, rating int, overrides Params) error {
	body, err := c.authDo(ctx, ActionRateDemon, Params{
		"levelID": strconv.Itoa(levelID),
		"rating":  strconv.Itoa(rating),
	}, overrides)
	if err != nil {
		return err
	}
	return bodyError(body, nil)
}

// UpdateDescription replaces an own level's description.
func (c *Client) UpdateDescription(ctx context.Context, levelID int, description string, overrides Params) error {
	body, err := c.authDo(ctx, ActionUpdateDescription, Params{
		"levelID":   strconv.Itoa(levelID),
		"levelDesc": robtop.Base64Encode(description),
	}, overrides)
	if err != nil {
		return err
	}
	return bodyError(body, nil)
}

// LevelUpload describes a level to upload. A zero ID uploads a new
// level; a known ID updates it.
type LevelUpload struct {
	ID             int
	Name           string
	Description    string
	LevelString    string
	Version        int
	Unlisted       int
	RequestedStars int
	Length         int
	OriginalID     int
	TwoPlayer      bool
	Objects        int
	Coins          int
	LowDetailMode  bool

	// Password is the copy password; nil picks the era default (free
	// to copy on 2.201+, locked before).
	Password *int

	OfficialSongID int
	SongID         int
	SongIDs        []int
	SFXIDs         []int

	VerificationTime int
	EditorTime       int
	CopiesEditorTime int
}

// UploadLevel uploads or updates a level and returns its ID.
func (c *Client) UploadLevel(ctx context.Context, up LevelUpload, overrides Params) (int, error) {
	if !c.account.authenticated() {
		return 0, ErrUnauthenticated
	}
	version := up.Version
	if version == 0 {
		version = 1
	}
	password := 0
	if up.Password != nil {
		password = *up.Password
	} else if c.versions.BinaryVersion > 37 {
		password = 1
	}
	description := ""
	if up.Description != "" {
		description = robtop.Base64Encode(up.Description)
	}
	fields := Params{
		"userName":       c.account.Username,
		"levelID":        strconv.Itoa(up.ID),
		"levelName":      up.Name,
		"levelDesc":      description,
		"unlisted":       strconv.Itoa(up.Unlisted),
		"levelVersion":   strconv.Itoa(version),
		"requestedStars": strconv.Itoa(up.RequestedStars),
		"levelString":    up.LevelString,
		"levelLength":    strconv.Itoa(up.Length),
		"original":       strconv.Itoa(up.OriginalID),
		"twoPlayer":      flag(up.TwoPlayer),
		"objects":        strconv.Itoa(up.Objects),
		"coins":          strconv.Itoa(up.Coins),
		"ldm":            flag(up.LowDetailMode),
		"password":       strconv.Itoa(password),
		"audioTrack":     strconv.Itoa(up.OfficialSongID),
		"songID":         strconv.Itoa(up.SongID),
		"ts":             strconv.Itoa(up.VerificationTime),
		"auto":           "0",
		"wt":             strconv.Itoa(up.EditorTime),
		"wt2":            strconv.Itoa(up.CopiesEditorTime),
		"seed":           robtop.RS(10),
		"seed2":          checksum.UploadSeed2(up.LevelString),
		"uuid":           c.account.UUID,
		"udid":           c.account.UDID,
	}
	if len(up.SongIDs) > 0 {
		fields["songIDs"] = joinInts(up.SongIDs)
	}
	if len(up.SFXIDs) > 0 {
		fields["sfxIDs"] = joinInts(up.SFXIDs)
	}
	body, err := c.authDo(ctx, ActionUploadLevel, fields, overrides)
	if err != nil {
		return 0, err
	}
	if err := bodyError(body, nil); err != nil {
		return 0, err
	}
	return atoi(body), nil
}

// DeleteLevel deletes an own level.
func (c *Client) DeleteLevel(ctx context.Context, levelID int, overrides Params) error {
	body, err := c.authDo(ctx, ActionDeleteLevel, Params{
		"levelID": strconv.Itoa(levelID),
	}, overrides)
	if err != nil {
		return err
	}
	return bodyError(body, nil)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func dedupe(vs []int) []int {
	seen := make(map[int]bool, len(vs))
	out := vs[:0]
	for _, v := range vs {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
