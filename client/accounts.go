package client

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/DiversenSato/dashtools/entity"
	"github.com/DiversenSato/dashtools/robtop"
)

// Register creates a new account. Validation failures come back as the
// named sentinel errors (ErrUsernameTaken, ErrInvalidEmail, ...).
func (c *Client) Register(ctx context.Context, username, email, password string, overrides Params) error {
	body, err := c.do(ctx, ActionRegisterAccount, Params{
		"userName": username,
		"email":    email,
		"password": password,
	}, overrides)
	if err != nil {
		return err
	}
	return bodyError(body, registerErrors)
}

// Session is the ID pair returned by a successful login.
type Session struct {
	AccountID int
	PlayerID  int
}

// Login validates credentials and returns the account and player IDs.
// It does not mutate the client; build a new client with the returned
// IDs to act as the account.
func (c *Client) Login(ctx context.Context, username, password string, overrides Params) (Session, error) {
	body, err := c.do(ctx, ActionLoginAccount, Params{
		"userName": username,
		"password": password,
		"udid":     c.account.UDID,
	}, overrides)
	if err != nil {
		return Session{}, err
	}
	if err := bodyError(body, loginErrors); err != nil {
		return Session{}, err
	}
	parts := strings.Split(body, ",")
	if len(parts) < 2 {
		return Session{}, errors.New("malformed login response")
	}
	return Session{
		AccountID: atoi(parts[0]),
		PlayerID:  atoi(parts[1]),
	}, nil
}

// RequestModAccess asks for the account's moderator level. The boolean
// is false when the account has no access at all.
func (c *Client) RequestModAccess(ctx context.Context, overrides Params) (int, bool, error) {
	body, err := c.authDo(ctx, ActionRequestModAccess, Params{}, overrides)
	if err != nil {
		return 0, false, err
	}
	if strings.TrimSpace(body) == "-1" {
		return 0, false, nil
	}
	if err := bodyError(body, nil); err != nil {
		return 0, false, err
	}
	return atoi(body), true, nil
}

// SaveData is a decoded account backup.
type SaveData struct {
	GameManager   string
	LocalLevels   string
	GameVersion   int
	BinaryVersion int

	// RatedLevels maps level ID to its star rating.
	RatedLevels map[string]int
	MapPacks    []entity.MapPack
}

// LoadSaveData downloads and decodes the account backup. The rated
// level and map pack blobs arrive wrapped in 20-byte framing noise on
// each side, base64 and zlib.
func (c *Client) LoadSaveData(ctx context.Context, overrides Params) (SaveData, error) {
	if !c.account.authenticated() {
		return SaveData{}, ErrUnauthenticated
	}
	body, err := c.authDo(ctx, ActionLoadSaveData, Params{
		"uuid": c.account.UUID,
		"udid": c.account.UDID,
	}, overrides)
	if err != nil {
		return SaveData{}, err
	}
	if err := bodyError(body, nil); err != nil {
		return SaveData{}, err
	}
	elements := strings.Split(body, ";")
	if len(elements) < 6 {
		return SaveData{}, errors.New("malformed save data response")
	}
	save := SaveData{
		GameManager:   elements[0],
		LocalLevels:   elements[1],
		GameVersion:   atoi(elements[2]),
		BinaryVersion: atoi(elements[3]),
		RatedLevels:   map[string]int{},
	}
	for id, stars := range robtop.Split(unwrapSaveBlob(elements[4]), ",") {
		save.RatedLevels[id] = atoi(stars)
	}
	for _, rec := range strings.Split(unwrapSaveBlob(elements[5]), "|") {
		if rec == "" {
			continue
		}
		p, err := entity.DecodeMapPack(rec)
		if err != nil {
			continue
		}
		save.MapPacks = append(save.MapPacks, p)
	}
	return save, nil
}

func unwrapSaveBlob(blob string) string {
	if len(blob) <= 40 {
		return ""
	}
	raw, err := robtop.Base64DecodeBytes(blob[20 : len(blob)-20])
	if err != nil {
		return ""
	}
	return string(robtop.TryUnzip(raw))
}

// BackupSaveData uploads an account backup.
func (c *Client) BackupSaveData(ctx context.Context, gameManager, localLevels string, overrides Params) error {
	if !c.account.authenticated() {
		return ErrUnauthenticated
	}
	body, err := c.authDo(ctx, ActionBackupSaveData, Params{
		"uuid":     c.account.UUID,
		"udid":     c.account.UDID,
		"saveData": gameManager + ";" + localLevels,
	}, overrides)
	if err != nil {
		return err
	}
	return bodyError(body, nil)
}

// Account URL types for GetAccountURL.
const (
	AccountURLBackup = 1
	AccountURLSync   = 2
)

// GetAccountURL asks the main server which base URL handles account
// traffic. The empty string means the server declined to answer.
func (c *Client) GetAccountURL(ctx context.Context, urlType int, overrides Params) (string, error) {
	// Any valid account ID satisfies the endpoint; ID 71 is used as
	// the placeholder for anonymous clients.
	accountID := c.account.AccountID
	if accountID == 0 {
		accountID = 71
	}
	body, err := c.do(ctx, ActionGetAccountURL, Params{
		"accountID": strconv.Itoa(accountID),
		"type":      strconv.Itoa(urlType),
	}, overrides)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(body) == "-1" {
		return "", nil
	}
	if err := bodyError(body, nil); err != nil {
		return "", err
	}
	return body, nil
}
