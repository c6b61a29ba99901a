package client

import (
	"context"
	"errors"
	"strconv"

	"github.com/DiversenSato/dashtools/checksum"
	"github.com/DiversenSato/dashtools/entity"
	"github.com/DiversenSato/dashtools/robtop"
)

// UserSearchResult is a decoded user search page.
type UserSearchResult struct {
	Users []entity.User

	entity.Pagination
}

// SearchUsers searches users by name or ID.
func (c *Client) SearchUsers(ctx context.Context, query string, overrides Params) (UserSearchResult, error) {
	body, err := c.do(ctx, ActionGetUsers, Params{"str": query}, overrides)
	if err != nil {
		return UserSearchResult{}, err
	}
	if err := bodyError(body, nil); err != nil {
		return UserSearchResult{}, err
	}
	segments := entity.SplitSegments(body)
	if len(segments) < 2 {
		return UserSearchResult{}, errors.New("malformed user search response")
	}
	var res UserSearchResult
	records, _ := entity.SplitRecords(segments[0])
	for _, rec := range records {
		u, err := entity.DecodeUser(rec, ":")
		if err != nil {
			continue
		}
		res.Users = append(res.Users, u)
	}
	res.Pagination = entity.ParsePagination(segments[1])
	return res, nil
}

// GetUser fetches a profile by account ID. Authenticated clients see
// extra fields (messages, friend state); pass anonymous to query as a
// logged-out user anyway.
func (c *Client) GetUser(ctx context.Context, accountID int, anonymous bool, overrides Params) (entity.User, error) {
	fields := Params{"targetAccountID": strconv.Itoa(accountID)}
	if c.account.authenticated() && !anonymous {
		fields["accountID"] = strconv.Itoa(c.account.AccountID)
		fields["gjp2"] = c.account.GJP2()
	}
	body, err := c.do(ctx, ActionGetUserInfo, fields, overrides)
	if err != nil {
		return entity.User{}, err
	}
	if err := bodyError(body, nil); err != nil {
		return entity.User{}, err
	}
	return entity.DecodeUser(body, ":")
}

// StatsUpdate carries the full profile stat set for UpdateStats. The
// servers cross-check most of it inside the seed2 checksum, so partial
// updates are not possible.
type StatsUpdate struct {
	Stars       int
	Moons       int
	Demons      int
	Diamonds    int
	SecretCoins int
	UserCoins   int

	IconType      int
	CubeID        int
	ShipID        int
	BallID        int
	UFOID         int
	WaveID        int
	RobotID       int
	SpiderID      int
	SwingID       int
	JetpackID     int
	DeathEffectID int
	Color1        int
	Color2        int
	GlowColor     int
	Glow          bool

	// CompletedDemons lists level IDs; Demons defaults to its length.
	CompletedDemons            []int
	CompletedWeeklies          int
	CompletedGauntletDemons    int
	CompletedGauntletNonDemons int
	CompletedDailies           int
	Classic                    entity.LevelTierCounts
	Platformer                 entity.LevelTierCounts
}

// activeIcon picks the icon ID matching the selected icon type.
func (s StatsUpdate) activeIcon() int {
	switch s.IconType {
	case IconShip:
		return s.ShipID
	case IconBall:
		return s.BallID
	case IconUFO:
		return s.UFOID
	case IconWave:
		return s.WaveID
	case IconRobot:
		return s.RobotID
	case IconSpider:
		return s.SpiderID
	case IconSwing:
		return s.SwingID
	case IconJetpack:
		return s.JetpackID
	default:
		return s.CubeID
	}
}

func tierString(t entity.LevelTierCounts) string {
	return joinInts([]int{t.Auto, t.Easy, t.Normal, t.Hard, t.Harder, t.Insane})
}

// UpdateStats submits the profile stats and returns the player ID.
func (c *Client) UpdateStats(ctx context.Context, s StatsUpdate, overrides Params) (int, error) {
	if !c.account.authenticated() {
		return 0, ErrUnauthenticated
	}
	demons := s.Demons
	if demons == 0 {
		demons = len(s.CompletedDemons)
	}
	dinfo := joinInts(s.CompletedDemons)
	sinfo := tierString(s.Classic) + "," + tierString(s.Platformer)
	icon := s.activeIcon()
	glowColor := s.GlowColor
	if glowColor == 0 {
		glowColor = -1
	}
	special := 0
	if s.Glow {
		special = 2
	}

	// The value order inside seed2 is a protocol contract.
	seed2 := checksum.Chk(checksum.Values(
		c.account.AccountID, s.UserCoins, demons, s.Stars, s.SecretCoins,
		s.IconType, icon, s.Diamonds,
		s.CubeID, s.ShipID, s.BallID, s.UFOID, s.WaveID, s.RobotID,
		s.Glow, s.SpiderID, s.DeathEffectID,
		len(dinfo), s.CompletedWeeklies, s.CompletedGauntletDemons,
		sinfo, s.CompletedDailies, s.CompletedGauntletNonDemons,
	), robtop.KeyStatSubmission, robtop.SaltStatSubmission)

	body, err := c.authDo(ctx, ActionUpdateUserScore, Params{
		"stars":        strconv.Itoa(s.Stars),
		"moons":        strconv.Itoa(s.Moons),
		"demons":       strconv.Itoa(demons),
		"diamonds":     strconv.Itoa(s.Diamonds),
		"coins":        strconv.Itoa(s.SecretCoins),
		"userCoins":    strconv.Itoa(s.UserCoins),
		"icon":         strconv.Itoa(icon),
		"iconType":     strconv.Itoa(s.IconType),
		"accIcon":      strconv.Itoa(s.CubeID),
		"accShip":      strconv.Itoa(s.ShipID),
		"accBall":      strconv.Itoa(s.BallID),
		"accBird":      strconv.Itoa(s.UFOID),
		"accDart":      strconv.Itoa(s.WaveID),
		"accRobot":     strconv.Itoa(s.RobotID),
		"accGlow":      flag(s.Glow),
		"accSpider":    strconv.Itoa(s.SpiderID),
		"accExplosion": strconv.Itoa(s.DeathEffectID),
		"accSwing":     strconv.Itoa(s.SwingID),
		"accJetpack":   strconv.Itoa(s.JetpackID),
		"color1":       strconv.Itoa(s.Color1),
		"color2":       strconv.Itoa(s.Color2),
		"color3":       strconv.Itoa(glowColor),
		"special":      strconv.Itoa(special),
		"dinfo":        dinfo,
		"dinfow":       strconv.Itoa(s.CompletedWeeklies),
		"dinfog":       strconv.Itoa(s.CompletedGauntletDemons),
		"sinfo":        sinfo,
		"sinfod":       strconv.Itoa(s.CompletedDailies),
		"sinfog":       strconv.Itoa(s.CompletedGauntletNonDemons),
		"seed":         robtop.RS(10),
		"seed2":        seed2,
	}, overrides)
	if err != nil {
		return 0, err
	}
	if err := bodyError(body, nil); err != nil {
		return 0, err
	}
	return atoi(body), nil
}

// AccountSettings are the privacy and social link fields.
type AccountSettings struct {
	MessagePermissions        int
	FriendPermissions         int
	CommentHistoryPermissions int
	YouTube                   string
	Twitter                   string
	Twitch                    string
}

// UpdateAccountSettings stores the privacy settings and social links.
func (c *Client) UpdateAccountSettings(ctx context.Context, s AccountSettings, overrides Params) error {
	body, err := c.authDo(ctx, ActionUpdateAccountSettings, Params{
		"mS":      strconv.Itoa(s.MessagePermissions),
		"frS":     strconv.Itoa(s.FriendPermissions),
		"cS":      strconv.Itoa(s.CommentHistoryPermissions),
		"yt":      s.YouTube,
		"twitter": s.Twitter,
		"twitch":  s.Twitch,
	}, overrides)
	if err != nil {
		return err
	}
	return bodyError(body, nil)
}
