package client

import (
	"context"
	"strconv"
	"strings"

	"github.com/DiversenSato/dashtools/checksum"
	"github.com/DiversenSato/dashtools/entity"
	"github.com/DiversenSato/dashtools/robtop"
)

// LeaderboardResult is a decoded global leaderboard. Emptyslots counts
// vacant ranks, which the relative leaderboard pads with empty
// records.
type LeaderboardResult struct {
	Users      []entity.User
	EmptySlots int
}

// GetLeaderboard fetches a global leaderboard. Relative placement
// requires an accountID in the overrides or an authenticated client.
func (c *Client) GetLeaderboard(ctx context.Context, lbType LeaderboardType, overrides Params) (LeaderboardResult, error) {
	fields := Params{"type": string(lbType)}
	if lbType == ScoresRelative && c.account.AccountID != 0 {
		fields["accountID"] = strconv.Itoa(c.account.AccountID)
	}
	body, err := c.do(ctx, ActionGetLeaderboards, fields, overrides)
	if err != nil {
		return LeaderboardResult{}, err
	}
	if err := bodyError(body, nil); err != nil {
		return LeaderboardResult{}, err
	}
	var res LeaderboardResult
	records, empty := entity.SplitRecords(body)
	res.EmptySlots = empty
	for _, rec := range records {
		u, err := entity.DecodeUser(rec, ":")
		if err != nil {
			continue
		}
		res.Users = append(res.Users, u)
	}
	return res, nil
}

// LevelScore is one leaderboard entry on a level. Classic boards fill
// Percentage; platformer boards fill Time or Points depending on mode.
type LevelScore struct {
	entity.User

	Percentage int
	Time       int
	Points     int
}

// ScoreSubmission carries the player's own run, submitted alongside
// every level leaderboard fetch. A zero value fetches without
// submitting anything meaningful.
type ScoreSubmission struct {
	Percentage        int
	Attempts          int
	BestAttemptTime   int
	BestAttemptClicks int
	Coins             int
	TimelyID          int

	// Percentages lists the progression milestones; the wire carries
	// consecutive differences, not absolute values.
	Percentages []int

	// Time (milliseconds) and Points are platformer-only.
	Time   int
	Points int
}

func diffString(percentages []int) string {
	if len(percentages) == 0 {
		return "0"
	}
	parts := make([]string, len(percentages))
	prev := 0
	for i, v := range percentages {
		parts[i] = strconv.Itoa(v - prev)
		prev = v
	}
	return strings.Join(parts, ",")
}

// GetLevelScores submits the run and fetches a classic level
// leaderboard.
func (c *Client) GetLevelScores(ctx context.Context, levelID, scoreType int, sub ScoreSubmission, overrides Params) ([]LevelScore, error) {
	if !c.account.authenticated() {
		return nil, ErrUnauthenticated
	}
	seed := checksum.LeaderboardSeed(sub.BestAttemptClicks, sub.Percentage, sub.BestAttemptTime, 1)
	fields := c.levelScoreFields(levelID, scoreType, sub, sub.BestAttemptTime, seed, diffString(sub.Percentages))
	fields["time"] = "0"
	fields["points"] = "0"
	fields["plat"] = "0"
	fields["mode"] = "1"
	if sub.Percentage != 0 {
		fields["percent"] = strconv.Itoa(sub.Percentage)
	}

	body, err := c.authDo(ctx, ActionGetLevelLeaderboards, fields, overrides)
	if err != nil {
		return nil, err
	}
	if err := scoresBodyError(body); err != nil {
		return nil, err
	}
	return decodeScores(body, func(s *LevelScore, stars int) {
		s.Percentage = stars
	}), nil
}

// Platformer leaderboard modes.
const (
	PlatformerModeTime   = 0
	PlatformerModePoints = 1
)

// GetPlatformerLevelScores submits the run and fetches a platformer
// level leaderboard ranked by time or points.
func (c *Client) GetPlatformerLevelScores(ctx context.Context, levelID, scoreType, mode int, sub ScoreSubmission, overrides Params) ([]LevelScore, error) {
	if !c.account.authenticated() {
		return nil, ErrUnauthenticated
	}
	bestTime := sub.BestAttemptTime
	if bestTime == 0 && sub.Time != 0 {
		bestTime = sub.Time / 1000
	}
	seed := checksum.PlatformerLeaderboardSeed(sub.Time, sub.Points)
	diffs := diffString(sub.Percentages)
	fields := c.levelScoreFields(levelID, scoreType, sub, bestTime, seed, diffs)
	// Classic runs obfuscate the milestone diffs in s6; platformer
	// boards reuse the slot for the percentage when no diffs exist.
	if diffs == "0" {
		fields["s6"] = robtop.XOREncode(strconv.Itoa(sub.Percentage), robtop.KeyLevel)
	}
	fields["time"] = strconv.Itoa(sub.Time)
	fields["points"] = strconv.Itoa(sub.Points)
	fields["plat"] = "1"
	fields["mode"] = strconv.Itoa(mode)
	if sub.Percentage != 0 {
		fields["percent"] = strconv.Itoa(sub.Percentage)
	}

	body, err := c.authDo(ctx, ActionGetPlatformerLevelLeaderboards, fields, overrides)
	if err != nil {
		return nil, err
	}
	if err := scoresBodyError(body); err != nil {
		return nil, err
	}
	return decodeScores(body, func(s *LevelScore, stars int) {
		if mode == PlatformerModeTime {
			s.Time = stars
		} else {
			s.Points = stars
		}
	}), nil
}

// levelScoreFields builds the shared obfuscated stat fields and the
// submission chk. The chk value order is a protocol contract.
func (c *Client) levelScoreFields(levelID, scoreType int, sub ScoreSubmission, bestTime, seed int, diffs string) Params {
	rs := robtop.RS(10)
	chk := checksum.Chk(checksum.Values(
		c.account.AccountID, levelID, sub.Percentage, bestTime,
		sub.BestAttemptClicks, sub.Attempts, seed, diffs, 1,
		sub.Coins, sub.TimelyID,
	), robtop.KeyLevelLeaderboard, robtop.SaltLevelLeaderboards+rs)

	return Params{
		"levelID": strconv.Itoa(levelID),
		"type":    strconv.Itoa(scoreType),
		"s1":      strconv.Itoa(sub.Attempts + 8354),
		"s2":      strconv.Itoa(sub.BestAttemptClicks + 3991),
		"s3":      strconv.Itoa(bestTime + 4085),
		"s4":      strconv.Itoa(seed + 1482),
		"s5":      strconv.Itoa(robtop.RandomNumber(2000, 3999)),
		"s6":      robtop.XOREncode(diffs, robtop.KeyLevel),
		"s7":      rs,
		"s8":      strconv.Itoa(sub.Attempts),
		"s9":      strconv.Itoa(sub.Coins + 5819),
		"s10":     strconv.Itoa(sub.TimelyID),
		"chk":     chk,
		"udid":    c.account.UDID,
		"uuid":    c.account.UUID,
	}
}

// scoresBodyError also rejects the "-01" body some servers use for
// invalid submissions.
func scoresBodyError(body string) error {
	if strings.TrimSpace(body) == "-01" {
		return &ServerError{Code: -1}
	}
	return bodyError(body, nil)
}

// decodeScores decodes leaderboard user records, moving the stars slot
// into the mode-specific field.
func decodeScores(body string, place func(*LevelScore, int)) []LevelScore {
	var scores []LevelScore
	records, _ := entity.SplitRecords(body)
	for _, rec := range records {
		u, err := entity.DecodeUser(rec, ":")
		if err != nil {
			continue
		}
		s := LevelScore{User: u}
		place(&s, u.Stars)
		s.User.Stars = 0
		scores = append(scores, s)
	}
	return scores
}
