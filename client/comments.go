package client

import (
	"context"
	"errors"
	"strconv"

	"github.com/DiversenSato/dashtools/checksum"
	"github.com/DiversenSato/dashtools/entity"
	"github.com/DiversenSato/dashtools/robtop"
)

// Comment sort modes.
const (
	CommentsRecent = 0
	CommentsTop    = 1
)

// CommentsResult is a decoded comment page.
type CommentsResult struct {
	Comments []entity.Comment

	entity.Pagination
}

// GetLevelComments fetches a page of a level's comments. A level with
// no comments answers with a negative body, which decodes to an empty
// page rather than an error.
func (c *Client) GetLevelComments(ctx context.Context, levelID, count, mode, page int, overrides Params) (CommentsResult, error) {
	body, err := c.do(ctx, ActionGetComments, Params{
		"levelID": strconv.Itoa(levelID),
		"count":   strconv.Itoa(count),
		"mode":    strconv.Itoa(mode),
		"page":    strconv.Itoa(page),
	}, overrides)
	if err != nil {
		return CommentsResult{}, err
	}
	if _, negative := negativeCode(body); negative {
		return CommentsResult{}, nil
	}
	return decodeCommentPage(body)
}

// GetCommentHistory fetches a page of a player's comment history.
func (c *Client) GetCommentHistory(ctx context.Context, playerID, count, mode, page int, overrides Params) (CommentsResult, error) {
	body, err := c.do(ctx, ActionGetCommentHistory, Params{
		"userID": strconv.Itoa(playerID),
		"count":  strconv.Itoa(count),
		"mode":   strconv.Itoa(mode),
		"page":   strconv.Itoa(page),
	}, overrides)
	if err != nil {
		return CommentsResult{}, err
	}
	if err := bodyError(body, nil); err != nil {
		return CommentsResult{}, err
	}
	return decodeCommentPage(body)
}

func decodeCommentPage(body string) (CommentsResult, error) {
	segments := entity.SplitSegments(body)
	if len(segments) < 2 {
		return CommentsResult{}, errors.New("malformed comment response")
	}
	var res CommentsResult
	records, _ := entity.SplitRecords(segments[0])
	for _, rec := range records {
		cm, err := entity.DecodeComment(rec)
		if err != nil {
			continue
		}
		res.Comments = append(res.Comments, cm)
	}
	res.Pagination = entity.ParsePagination(segments[1])
	return res, nil
}

// UploadComment posts a comment on a level. The percentage rides both
// in the clear and inside the chk.
func (c *Client) UploadComment(ctx context.Context, levelID int, content string, percentage int, overrides Params) error {
	if !c.account.authenticated() {
		return ErrUnauthenticated
	}
	if c.account.Username == "" {
		return errors.New("comment upload requires the account username")
	}
	encoded := robtop.Base64Encode(content)
	chk := checksum.Chk(checksum.Values(
		c.account.Username, encoded, levelID, percentage, 0,
	), robtop.KeyComment, robtop.SaltComment)

	body, err := c.authDo(ctx, ActionUploadComment, Params{
		"levelID":  strconv.Itoa(levelID),
		"comment":  encoded,
		"percent":  strconv.Itoa(percentage),
		"chk":      chk,
		"userName": c.account.Username,
	}, overrides)
	if err != nil {
		return err
	}
	return bodyError(body, nil)
}

// DeleteComment deletes an own comment from a level.
func (c *Client) DeleteComment(ctx context.Context, levelID, commentID int, overrides Params) error {
	body, err := c.authDo(ctx, ActionDeleteComment, Params{
		"levelID":   strconv.Itoa(levelID),
		"commentID": strconv.Itoa(commentID),
	}, overrides)
	if err != nil {
		return err
	}
	return bodyError(body, nil)
}

// UploadProfilePost posts to the account's own profile.
func (c *Client) UploadProfilePost(ctx context.Context, content string, overrides Params) error {
	if !c.account.authenticated() {
		return ErrUnauthenticated
	}
	encoded := robtop.Base64Encode(content)
	fields := Params{
		"comment": encoded,
		"cType":   "1",
	}
	// Unnamed accounts may still post; the chk is only sent when the
	// username is known, matching the game.
	if c.account.Username != "" {
		fields["userName"] = c.account.Username
		fields["chk"] = checksum.Chk(checksum.Values(
			c.account.Username, encoded, 0, 0, 1,
		), robtop.KeyComment, robtop.SaltComment)
	}
	body, err := c.authDo(ctx, ActionUploadAccountComment, fields, overrides)
	if err != nil {
		return err
	}
	return bodyError(body, nil)
}

// DeleteProfilePost deletes a profile post. A zero targetAccountID
// targets the own profile.
func (c *Client) DeleteProfilePost(ctx context.Context, postID, targetAccountID int, overrides Params) error {
	if targetAccountID == 0 {
		targetAccountID = c.account.AccountID
	}
	body, err := c.authDo(ctx, ActionDeleteAccountComment, Params{
		"commentID":       strconv.Itoa(postID),
		"targetAccountID": strconv.Itoa(targetAccountID),
	}, overrides)
	if err != nil {
		return err
	}
	return bodyError(body, nil)
}
