package entity

import (
	"errors"
	"strings"

	"github.com/DiversenSato/dashtools/robtop"
)

// Level is a level record as returned by search and download
// endpoints. It is an immutable snapshot: re-fetching supersedes, the
// library never mutates a decoded level.
type Level struct {
	ID          int
	Name        string
	Description string
	Version     int
	PlayerID    int

	// Difficulty is the raw difficulty divided by the rating divisor
	// (field 8) when that divisor is present and nonzero. Without a
	// divisor the raw face value is kept as-is.
	Difficulty      float64
	DemonDifficulty int
	Demon           bool
	Auto            bool

	Downloads    int
	Completions  int
	Likes        int
	Stars        int
	StarsRequested int
	FeatureScore int
	EpicRating   int
	Coins        int
	VerifiedCoins bool

	OfficialSong int
	CustomSongID int
	SongIDs      []string
	SFXIDs       []string

	GameVersion int
	Length      int
	TwoPlayer   bool
	LowDetailMode bool
	IsGauntlet  bool
	CopiedFromID int
	DailyNumber int
	Objects     int

	UploadDate   string
	UpdateDate   string
	RecordString string
	ExtraString  string
	SettingsString string

	EditorTimeSeconds       int
	EditorTimeCopiesSeconds int
	VerificationTimeFrames  int

	// Password is the decoded copy password, "" when not copyable,
	// "1" when free to copy.
	Password string

	// LevelString is the opaque game-data payload, present only on
	// download responses.
	LevelString string

	Unknown map[string]string
}

var levelSchema = Schema{
	Ints: []int{1, 5, 6, 9, 10, 11, 12, 13, 14, 15, 18, 19, 30, 35, 37,
		39, 41, 42, 43, 45, 46, 47, 57},
	Strs:    []int{2, 26, 28, 29, 36, 48},
	Bools:   []int{17, 25, 31, 38, 40, 44},
	Special: []int{3, 4, 8, 27, 52, 53},
}

var levelOldSchema = Schema{
	Ints:    []int{1, 5, 6, 9, 10, 11, 12, 13, 14, 15, 18, 19, 30, 35},
	Strs:    []int{2, 26, 27, 28, 29, 36},
	Bools:   []int{17, 25, 31},
	Special: []int{3, 4, 8},
}

// DecodeLevel decodes a ":"-separated level record.
func DecodeLevel(raw string) (Level, error) {
	if raw == "" {
		return Level{}, errors.New("empty level record")
	}
	r := SplitRaw(raw, ":")
	l := decodeLevelCommon(r)
	l.StarsRequested = r.Int(39)
	l.DailyNumber = r.Int(41)
	l.EpicRating = r.Int(42)
	l.DemonDifficulty = r.Int(43)
	l.Objects = r.Int(45)
	l.EditorTimeSeconds = r.Int(46)
	l.EditorTimeCopiesSeconds = r.Int(47)
	l.VerificationTimeFrames = r.Int(57)
	l.VerifiedCoins = r.Bool(38)
	l.LowDetailMode = r.Bool(40)
	l.IsGauntlet = r.Bool(44)
	l.SettingsString = r.Str(48)

	if v := r.Str(27); v != "" {
		l.Password = decodeLevelPassword(v)
	}
	if v := r.Str(52); v != "" {
		l.SongIDs = strings.Split(v, ",")
	}
	if v := r.Str(53); v != "" {
		l.SFXIDs = strings.Split(v, ",")
	}
	l.Unknown = levelSchema.Unknown(r)
	return l, nil
}

// DecodeLevelOld decodes level records from pre-2.0 servers, where the
// password travels in the clear and the newer fields do not exist.
func DecodeLevelOld(raw string) (Level, error) {
	if raw == "" {
		return Level{}, errors.New("empty level record")
	}
	r := SplitRaw(raw, ":")
	l := decodeLevelCommon(r)
	l.Password = r.Str(27)
	l.Unknown = levelOldSchema.Unknown(r)
	return l, nil
}

func decodeLevelCommon(r Raw) Level {
	l := Level{
		ID:           r.Int(1),
		Name:         r.Str(2),
		Version:      r.Int(5),
		PlayerID:     r.Int(6),
		Difficulty:   float64(r.Int(9)),
		Downloads:    r.Int(10),
		Completions:  r.Int(11),
		OfficialSong: r.Int(12),
		GameVersion:  r.Int(13),
		Likes:        r.Int(14),
		Length:       r.Int(15),
		Demon:        r.Bool(17),
		Stars:        r.Int(18),
		FeatureScore: r.Int(19),
		Auto:         r.Bool(25),
		RecordString: r.Str(26),
		UploadDate:   r.Str(28),
		UpdateDate:   r.Str(29),
		CopiedFromID: r.Int(30),
		TwoPlayer:    r.Bool(31),
		CustomSongID: r.Int(35),
		ExtraString:  r.Str(36),
		Coins:        r.Int(37),
		LevelString:  r.Str(4),
	}
	if v := r.Str(3); v != "" {
		l.Description = decodeDescription(v)
	}
	// Divide only when the has-rating divisor is present and nonzero;
	// otherwise the raw value is a face-value sentinel.
	if r.Presence(8) == NonZero {
		l.Difficulty /= float64(r.Int(8))
	}
	return l
}

// decodeDescription base64-decodes the description, falling back to
// the raw value when the result contains control bytes (very old
// levels stored descriptions unencoded).
func decodeDescription(v string) string {
	dec, err := robtop.Base64Decode(v)
	if err != nil {
		return v
	}
	for i := 0; i < len(dec); i++ {
		if dec[i] <= 0x1f {
			return v
		}
	}
	return dec
}

// decodeLevelPassword strips the obfuscation from field 27. Multi-char
// passwords carry a leading copyability digit that is discarded.
func decodeLevelPassword(v string) string {
	pw, err := robtop.XORDecode(v, robtop.KeyLevelPassword)
	if err != nil {
		return ""
	}
	if len(pw) != 1 {
		return pw[1:]
	}
	return pw
}
