package client

import (
	"context"
	"errors"
	"strconv"

	"github.com/DiversenSato/dashtools/entity"
	"github.com/DiversenSato/dashtools/robtop"
)

// User list types for GetUserList.
const (
	UserListFriends = 0
	UserListBlocked = 1
)

// GetUserList fetches the friends or block list.
func (c *Client) GetUserList(ctx context.Context, listType int, overrides Params) ([]entity.User, error) {
	body, err := c.authDo(ctx, ActionGetUserList, Params{
		"type": strconv.Itoa(listType),
	}, overrides)
	if err != nil {
		return nil, err
	}
	if err := bodyError(body, nil); err != nil {
		return nil, err
	}
	var users []entity.User
	records, _ := entity.SplitRecords(body)
	for _, rec := range records {
		u, err := entity.DecodeUser(rec, ":")
		if err != nil {
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

// Message box selectors.
const (
	MessagesIncoming = 0
	MessagesOutgoing = 1
)

// MessagesResult is a decoded message page. Bodies are only present
// when reading a single message.
type MessagesResult struct {
	Messages []entity.Message

	entity.Pagination
}

// GetMessages fetches a page of the in- or outbox.
func (c *Client) GetMessages(ctx context.Context, page, box int, overrides Params) (MessagesResult, error) {
	body, err := c.authDo(ctx, ActionGetMessages, Params{
		"page":    strconv.Itoa(page),
		"getSent": strconv.Itoa(box),
		"total":   "0",
	}, overrides)
	if err != nil {
		return MessagesResult{}, err
	}
	if err := bodyError(body, nil); err != nil {
		return MessagesResult{}, err
	}
	segments := entity.SplitSegments(body)
	if len(segments) < 2 {
		return MessagesResult{}, errors.New("malformed message response")
	}
	var res MessagesResult
	records, _ := entity.SplitRecords(segments[0])
	for _, rec := range records {
		m, err := entity.DecodeMessage(rec)
		if err != nil {
			continue
		}
		res.Messages = append(res.Messages, m)
	}
	res.Pagination = entity.ParsePagination(segments[1])
	return res, nil
}

// ReadMessage fetches one message with its body. Reading marks the
// message as read server-side.
func (c *Client) ReadMessage(ctx context.Context, messageID int, isSender bool, overrides Params) (entity.Message, error) {
	body, err := c.authDo(ctx, ActionReadMessage, Params{
		"messageID": strconv.Itoa(messageID),
		"isSender":  flag(isSender),
	}, overrides)
	if err != nil {
		return entity.Message{}, err
	}
	if err := bodyError(body, nil); err != nil {
		return entity.Message{}, err
	}
	return entity.DecodeMessage(body)
}

// SendMessage sends a message to another account. The body travels
// XOR-obfuscated, the subject plain base64.
func (c *Client) SendMessage(ctx context.Context, toAccountID int, subject, content string, overrides Params) error {
	body, err := c.authDo(ctx, ActionSendMessage, Params{
		"toAccountID": strconv.Itoa(toAccountID),
		"subject":     robtop.Base64Encode(subject),
		"body":        robtop.XOREncode(content, robtop.KeyMessages),
	}, overrides)
	if err != nil {
		return err
	}
	return bodyError(body, nil)
}

// DeleteMessage removes a message from the own in- or outbox.
func (c *Client) DeleteMessage(ctx context.Context, messageID int, isSender bool, overrides Params) error {
	body, err := c.authDo(ctx, ActionDeleteMessage, Params{
		"messageID": strconv.Itoa(messageID),
		"isSender":  flag(isSender),
	}, overrides)
	if err != nil {
		return err
	}
	return bodyError(body, nil)
}

// BlockUser blocks an account.
func (c *Client) BlockUser(ctx context.Context, accountID int, overrides Params) error {
	body, err := c.authDo(ctx, ActionBlockUser, Params{
		"targetAccountID": strconv.Itoa(accountID),
	}, overrides)
	if err != nil {
		return err
	}
	return bodyError(body, nil)
}

// UnblockUser unblocks an account.
func (c *Client) UnblockUser(ctx context.Context, accountID int, overrides Params) error {
	body, err := c.authDo(ctx, ActionUnblockUser, Params{
		"targetAccountID": strconv.Itoa(accountID),
	}, overrides)
	if err != nil {
		return err
	}
	return bodyError(body, nil)
}

// FriendRequestsResult is a decoded friend request page. Requests are
// user records with the request fields filled in.
type FriendRequestsResult struct {
	Requests []entity.User

	entity.Pagination
}

// GetFriendRequests fetches a page of in- or outgoing friend requests.
func (c *Client) GetFriendRequests(ctx context.Context, page, box int, overrides Params) (FriendRequestsResult, error) {
	body, err := c.authDo(ctx, ActionGetFriendRequests, Params{
		"page":    strconv.Itoa(page),
		"getSent": strconv.Itoa(box),
		"total":   "0",
	}, overrides)
	if err != nil {
		return FriendRequestsResult{}, err
	}
	if err := bodyError(body, nil); err != nil {
		return FriendRequestsResult{}, err
	}
	segments := entity.SplitSegments(body)
	if len(segments) < 2 {
		return FriendRequestsResult{}, errors.New("malformed friend request response")
	}
	var res FriendRequestsResult
	records, _ := entity.SplitRecords(segments[0])
	for _, rec := range records {
		u, err := entity.DecodeUser(rec, ":")
		if err != nil {
			continue
		}
		res.Requests = append(res.Requests, u)
	}
	res.Pagination = entity.ParsePagination(segments[1])
	return res, nil
}

// SendFriendRequest sends a friend request with an optional comment.
func (c *Client) SendFriendRequest(ctx context.Context, toAccountID int, comment string, overrides Params) error {
	body, err := c.authDo(ctx, ActionSendFriendRequest, Params{
		"toAccountID": strconv.Itoa(toAccountID),
		"comment":     robtop.Base64Encode(comment),
	}, overrides)
	if err != nil {
		return err
	}
	return bodyError(body, nil)
}

// ReadFriendRequest marks a friend request as read.
func (c *Client) ReadFriendRequest(ctx context.Context, requestID int, overrides Params) error {
	body, err := c.authDo(ctx, ActionReadFriendRequest, Params{
		"requestID": strconv.Itoa(requestID),
	}, overrides)
	if err != nil {
		return err
	}
	return bodyError(body, nil)
}

// AcceptFriendRequest accepts a friend request.
func (c *Client) AcceptFriendRequest(ctx context.Context, requestID, fromAccountID int, overrides Params) error {
	body, err := c.authDo(ctx, ActionAcceptFriendRequest, Params{
		"requestID":       strconv.Itoa(requestID),
		"targetAccountID": strconv.Itoa(fromAccountID),
	}, overrides)
	if err != nil {
		return err
	}
	return bodyError(body, nil)
}

// DeleteFriendRequests deletes one or more friend requests by their
// sender account IDs.
func (c *Client) DeleteFriendRequests(ctx context.Context, accountIDs []int, isSender bool, overrides Params) error {
	fields := Params{
		"targetAccountID": "0",
		"isSender":        flag(isSender),
	}
	if len(accountIDs) == 1 {
		fields["targetAccountID"] = strconv.Itoa(accountIDs[0])
	} else {
		fields["accounts"] = joinInts(accountIDs)
	}
	body, err := c.authDo(ctx, ActionDeleteFriendRequests, fields, overrides)
	if err != nil {
		return err
	}
	return bodyError(body, nil)
}

// RemoveFriend removes an account from the friends list.
func (c *Client) RemoveFriend(ctx context.Context, accountID int, overrides Params) error {
	body, err := c.authDo(ctx, ActionRemoveFriend, Params{
		"targetAccountID": strconv.Itoa(accountID),
	}, overrides)
	if err != nil {
		return err
	}
	return bodyError(body, nil)
}
