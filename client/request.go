package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/DiversenSato/dashtools/checksum"
)

// do sends one server action. The field tiers are resolved as
// action defaults, then per-action fields, then client-level params,
// then per-call overrides.
func (c *Client) do(ctx context.Context, action Action, fields, overrides Params) (string, error) {
	path, ok := c.endpoints[action]
	if !ok {
		return "", fmt.Errorf("action %d not available on this endpoint table", action)
	}
	base := Params{
		"secret": action.secret(),
		"gdw":    "0",
	}
	if !action.versionless() {
		base["gameVersion"] = strconv.Itoa(c.versions.GameVersion)
		base["binaryVersion"] = strconv.Itoa(c.versions.BinaryVersion)
	}
	merged := resolve(base, fields, c.params, overrides)

	server := c.server
	if action.accountServer() {
		server = c.accountServer
	}
	return c.transport.PostForm(ctx, server, "/"+path, merged)
}

// authDo is do with the credential fields attached. It fails before
// any network traffic when the client has no account.
func (c *Client) authDo(ctx context.Context, action Action, fields, overrides Params) (string, error) {
	if !c.account.authenticated() {
		return "", ErrUnauthenticated
	}
	merged := resolve(c.authParams(), fields)
	return c.do(ctx, action, merged, overrides)
}

func (c *Client) authParams() Params {
	return Params{
		"accountID": strconv.Itoa(c.account.AccountID),
		"gjp2":      c.account.GJP2(),
	}
}

// contentGet fetches a path from the content server, attaching the
// expiring token the CDN validates.
func (c *Client) contentGet(ctx context.Context, path string) ([]byte, error) {
	expires := strconv.FormatInt(time.Now().Unix()+3600, 10)
	query := url.Values{
		"expires": {expires},
		"token":   {checksum.CDNToken("/"+path, expires)},
	}
	host := c.contentServer
	headers := map[string]string{}
	if u, err := url.Parse(c.contentServer); err == nil && u.Host != "" {
		headers["Host"] = u.Host
	}
	return c.transport.Get(ctx, host, "/"+path, query, headers)
}
