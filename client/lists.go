package client

import (
	"context"
	"errors"
	"strconv"

	"github.com/DiversenSato/dashtools/checksum"
	"github.com/DiversenSato/dashtools/entity"
	"github.com/DiversenSato/dashtools/robtop"
)

// ListSearch is the filter set for GetLists. The type values are
// shared with LevelSearch.
type ListSearch struct {
	Query string
	Page  int
	Type  int

	// Difficulty uses the Difficulty* and *Demon constants; zero means
	// any.
	Difficulty int
	Rated      bool

	// AccountID targets TypeByPlayer searches; AccountIDs is the
	// followed set for TypeFollowed.
	AccountID  int
	AccountIDs []int
}

// ListSearchResult is a decoded list search page.
type ListSearchResult struct {
	Lists []entity.LevelList
	Users map[string]entity.UserRef

	entity.Pagination
	Hash string
}

// GetLists searches level lists.
func (c *Client) GetLists(ctx context.Context, search ListSearch, overrides Params) (ListSearchResult, error) {
	fields := Params{
		"str":      search.Query,
		"star":     flag(search.Rated),
		"page":     strconv.Itoa(search.Page),
		"followed": joinInts(search.AccountIDs),
	}
	searchType := search.Type
	if searchType == TypeSearch {
		searchType = TypeMostLiked
	}
	fields["type"] = strconv.Itoa(searchType)

	if search.Difficulty != 0 {
		fields["difficulty"] = strconv.Itoa(wireDifficulty[search.Difficulty])
		if search.Difficulty > DifficultyInsane {
			fields["demonFilter"] = strconv.Itoa(search.Difficulty - 5)
		}
	}
	switch search.Type {
	case TypeByPlayer:
		fields["str"] = strconv.Itoa(search.AccountID)
	case TypeFriends:
		if !c.account.authenticated() {
			return ListSearchResult{}, ErrUnauthenticated
		}
		fields["accountID"] = strconv.Itoa(c.account.AccountID)
		fields["gjp2"] = c.account.GJP2()
	}

	body, err := c.do(ctx, ActionGetLists, fields, overrides)
	if err != nil {
		return ListSearchResult{}, err
	}
	if err := bodyError(body, nil); err != nil {
		return ListSearchResult{}, err
	}
	segments := entity.SplitSegments(body)
	if len(segments) < 4 {
		return ListSearchResult{}, errors.New("malformed list search response")
	}
	var res ListSearchResult
	records, _ := entity.SplitRecords(segments[0])
	for _, rec := range records {
		l, err := entity.DecodeList(rec)
		if err != nil {
			continue
		}
		res.Lists = append(res.Lists, l)
	}
	res.Users = entity.DecodeUserIndex(segments[1])
	res.Pagination = entity.ParsePagination(segments[2])
	res.Hash = segments[3]
	return res, nil
}

// ListUpload describes a level list to upload. A zero ID uploads a new
// list; a known ID updates it.
type ListUpload struct {
	ID          int
	Name        string
	Description string
	Levels      []int
	Difficulty  int
	OriginalID  int
	Unlisted    int
	Version     int
}

// UploadList uploads or updates a level list and returns its ID.
func (c *Client) UploadList(ctx context.Context, up ListUpload, overrides Params) (int, error) {
	if !c.account.authenticated() {
		return 0, ErrUnauthenticated
	}
	difficulty := up.Difficulty
	if difficulty == 0 {
		difficulty = -1
	}
	description := ""
	if up.Description != "" {
		description = robtop.Base64Encode(up.Description)
	}
	seed2 := robtop.RS(5)
	listLevels := joinInts(up.Levels)
	fields := Params{
		"listID":      strconv.Itoa(up.ID),
		"listName":    up.Name,
		"listDesc":    description,
		"listLevels":  listLevels,
		"difficulty":  strconv.Itoa(difficulty),
		"original":    strconv.Itoa(up.OriginalID),
		"unlisted":    strconv.Itoa(up.Unlisted),
		"listVersion": strconv.Itoa(up.Version),
		"seed":        checksum.UploadListSeed(listLevels, strconv.Itoa(c.account.AccountID), seed2),
		"seed2":       seed2,
	}
	body, err := c.authDo(ctx, ActionUploadList, fields, overrides)
	if err != nil {
		return 0, err
	}
	if err := bodyError(body, uploadListErrors); err != nil {
		return 0, err
	}
	return atoi(body), nil
}

// DeleteList deletes an own level list.
func (c *Client) DeleteList(ctx context.Context, listID int, overrides Params) error {
	body, err := c.authDo(ctx, ActionDeleteList, Params{
		"listID": strconv.Itoa(listID),
	}, overrides)
	if err != nil {
		return err
	}
	return bodyError(body, nil)
}
