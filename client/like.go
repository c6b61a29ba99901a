package client

import (
	"context"
	"strconv"

	"github.com/DiversenSato/dashtools/checksum"
	"github.com/DiversenSato/dashtools/robtop"
)

// ContentType selects what a like targets. The special field carries
// the container ID for comments and profile posts.
type ContentType int

const (
	ContentLevel       ContentType = 1
	ContentComment     ContentType = 2
	ContentProfilePost ContentType = 3
	ContentList        ContentType = 4
)

// LikeItem submits a like or dislike for any content type.
func (c *Client) LikeItem(ctx context.Context, itemID, special int, contentType ContentType, like bool, overrides Params) error {
	if !c.account.authenticated() {
		return ErrUnauthenticated
	}
	rs := robtop.RS(10)
	chk := checksum.Chk(checksum.Values(
		special, itemID, flag(like), int(contentType), rs,
		c.account.AccountID, c.account.UDID, c.account.PlayerID,
	), robtop.KeyRate, robtop.SaltLikeOrRate)

	body, err := c.authDo(ctx, ActionLikeItem, Params{
		"itemID":  strconv.Itoa(itemID),
		"special": strconv.Itoa(special),
		"type":    strconv.Itoa(int(contentType)),
		"like":    flag(like),
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

// LikeLevel likes or dislikes a level.
func (c *Client) LikeLevel(ctx context.Context, levelID int, like bool, overrides Params) error {
	return c.LikeItem(ctx, levelID, 0, ContentLevel, like, overrides)
}

// LikeComment likes or dislikes a level comment.
func (c *Client) LikeComment(ctx context.Context, commentID, levelID int, like bool, overrides Params) error {
	return c.LikeItem(ctx, commentID, levelID, ContentComment, like, overrides)
}

// LikeProfilePost likes or dislikes a profile post.
func (c *Client) LikeProfilePost(ctx context.Context, postID, accountID int, like bool, overrides Params) error {
	return c.LikeItem(ctx, postID, accountID, ContentProfilePost, like, overrides)
}

// LikeList likes or dislikes a level list.
func (c *Client) LikeList(ctx context.Context, listID int, like bool, overrides Params) error {
	return c.LikeItem(ctx, listID, 0, ContentList, like, overrides)
}
