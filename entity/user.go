package entity

import (
	"errors"
	"strings"

	"github.com/DiversenSato/dashtools/robtop"
)

// User is the profile/stats record returned by user, leaderboard and
// friend endpoints. Leaderboard variants reuse the stars slot for
// percentages/times; the dispatch layer renames those after decode.
type User struct {
	Username string
	PlayerID int

	Stars         int
	Demons        int
	Moons         int
	Diamonds      int
	SecretCoins   int
	UserCoins     int
	CreatorPoints int
	Rank          int
	GlobalRank    int

	AccountID        int
	AccountHighlight int
	IsRegistered     bool
	ModLevel         int

	IconID      int
	IconType    int
	Color1      int
	Color2      int
	Color3      int
	Special     int
	Cube        int
	Ship        int
	Ball        int
	UFO         int
	Wave        int
	Robot       int
	Spider      int
	Swing       int
	Jetpack     int
	Trail       int
	Glow        int
	DeathEffect int

	MessagePermissions        int
	FriendPermissions         int
	CommentHistoryPermissions int
	YouTube                   string
	Twitter                   string
	Twitch                    string

	FriendState      int
	FriendRequestID  int
	FriendRequestAge string
	NewFriendRequest bool
	Messages         int
	FriendRequests   int
	NewFriends       int

	Comment  string
	ScoreAge string

	DemonCounts *DemonCounts
	LevelCounts *LevelCounts

	Unknown map[string]string
}

// DemonCounts breaks down completed demons by tier and source.
type DemonCounts struct {
	Classic    DemonTierCounts
	Platformer DemonTierCounts
	Weekly     int
	Gauntlet   int
}

type DemonTierCounts struct {
	Easy    int
	Medium  int
	Hard    int
	Insane  int
	Extreme int
}

// LevelCounts breaks down completed non-demon levels by difficulty.
type LevelCounts struct {
	Classic    LevelTierCounts
	Platformer LevelTierCounts
	Daily      int
	Gauntlet   int
}

type LevelTierCounts struct {
	Auto   int
	Easy   int
	Normal int
	Hard   int
	Harder int
	Insane int
}

var userSchema = Schema{
	Ints: []int{2, 3, 4, 6, 7, 8, 9, 10, 11, 13, 14, 15, 16, 17, 18, 19,
		21, 22, 23, 24, 25, 26, 27, 28, 30, 31, 32, 38, 39, 40, 43, 46,
		48, 49, 50, 51, 52, 53, 54},
	Strs:    []int{1, 20, 37, 42, 44, 45},
	Bools:   []int{29, 41},
	Special: []int{35, 55, 56, 57},
}

// DecodeUser decodes a user record. Profile responses use ":" as the
// separator; users embedded in comments use "~".
func DecodeUser(raw, sep string) (User, error) {
	if raw == "" {
		return User{}, errors.New("empty user record")
	}
	if sep == "" {
		sep = ":"
	}
	r := SplitRaw(raw, sep)
	u := User{
		Username: r.Str(1),
		PlayerID: r.Int(2),

		Stars:         r.Int(3),
		Demons:        r.Int(4),
		Moons:         r.Int(52),
		Diamonds:      r.Int(46),
		SecretCoins:   r.Int(13),
		UserCoins:     r.Int(17),
		CreatorPoints: r.Int(8),
		Rank:          r.Int(6),
		GlobalRank:    r.Int(30),

		AccountID:        r.Int(16),
		AccountHighlight: r.Int(7),
		IsRegistered:     r.Bool(29),
		ModLevel:         r.Int(49),

		IconID:      r.Int(9),
		IconType:    r.Int(14),
		Color1:      r.Int(10),
		Color2:      r.Int(11),
		Color3:      r.Int(51),
		Special:     r.Int(15),
		Cube:        r.Int(21),
		Ship:        r.Int(22),
		Ball:        r.Int(23),
		UFO:         r.Int(24),
		Wave:        r.Int(25),
		Robot:       r.Int(26),
		Spider:      r.Int(43),
		Swing:       r.Int(53),
		Jetpack:     r.Int(54),
		Trail:       r.Int(27),
		Glow:        r.Int(28),
		DeathEffect: r.Int(48),

		MessagePermissions:        r.Int(18),
		FriendPermissions:         r.Int(19),
		CommentHistoryPermissions: r.Int(50),
		YouTube:                   r.Str(20),
		Twitter:                   r.Str(44),
		Twitch:                    r.Str(45),

		FriendState:      r.Int(31),
		FriendRequestID:  r.Int(32),
		FriendRequestAge: r.Str(37),
		NewFriendRequest: r.Bool(41),
		Messages:         r.Int(38),
		FriendRequests:   r.Int(39),
		NewFriends:       r.Int(40),

		ScoreAge: r.Str(42),

		Unknown: userSchema.Unknown(r),
	}
	if v := r.Str(35); v != "" {
		if dec, err := robtop.Base64Decode(v); err == nil {
			u.Comment = dec
		} else {
			u.Comment = v
		}
	}
	if v := r.Str(55); v != "" {
		dc := strings.Split(v, ",")
		u.DemonCounts = &DemonCounts{
			Classic: DemonTierCounts{
				Easy:    intAt(dc, 0),
				Medium:  intAt(dc, 1),
				Hard:    intAt(dc, 2),
				Insane:  intAt(dc, 3),
				Extreme: intAt(dc, 4),
			},
			Platformer: DemonTierCounts{
				Easy:    intAt(dc, 5),
				Medium:  intAt(dc, 6),
				Hard:    intAt(dc, 7),
				Insane:  intAt(dc, 8),
				Extreme: intAt(dc, 9),
			},
			Weekly:   intAt(dc, 10),
			Gauntlet: intAt(dc, 11),
		}
	}
	if v := r.Str(56); v != "" {
		lc := strings.Split(v, ",")
		u.LevelCounts = &LevelCounts{
			Classic:  levelTier(lc, 0),
			Daily:    intAt(lc, 6),
			Gauntlet: intAt(lc, 7),
		}
	}
	if v := r.Str(57); v != "" {
		lc := strings.Split(v, ",")
		if u.LevelCounts == nil {
			u.LevelCounts = &LevelCounts{}
		}
		u.LevelCounts.Platformer = levelTier(lc, 0)
	}
	return u, nil
}

func levelTier(parts []string, off int) LevelTierCounts {
	return LevelTierCounts{
		Auto:   intAt(parts, off),
		Easy:   intAt(parts, off+1),
		Normal: intAt(parts, off+2),
		Hard:   intAt(parts, off+3),
		Harder: intAt(parts, off+4),
		Insane: intAt(parts, off+5),
	}
}

// UserRef is the abbreviated user entry attached to level and list
// search responses: "playerID:username:accountID" joined by "|".
type UserRef struct {
	Username  string
	AccountID int
}

// DecodeUserIndex parses the abbreviated user segment into a
// playerID → UserRef map. Empty entries are skipped.
func DecodeUserIndex(s string) map[string]UserRef {
	out := make(map[string]UserRef)
	for _, rec := range strings.Split(s, "|") {
		parts := strings.Split(rec, ":")
		if len(parts) == 0 || parts[0] == "" {
			continue
		}
		out[parts[0]] = UserRef{
			Username:  strAt(parts, 1),
			AccountID: intAt(parts, 2),
		}
	}
	return out
}
