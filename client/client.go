// Package client is the dispatch layer: it binds credentials, protocol
// constants and integrity values into server requests and decodes the
// responses into entity values.
package client

import (
	"strconv"
	"strings"

	"github.com/DiversenSato/dashtools/robtop"
	"github.com/DiversenSato/dashtools/transport"
)

// Account holds the credentials attached to authenticated actions.
// A zero AccountID means the client is anonymous; read-only actions
// still work.
type Account struct {
	PlayerID  int
	AccountID int
	Password  string
	Username  string
	UDID      string
	UUID      string
}

// NewAccount fills in the device identity fields the way the game
// does: a digits-only UDID with the S15/1000 framing and the player ID
// as UUID when known.
func NewAccount(playerID, accountID int, password, username string) Account {
	a := Account{
		PlayerID:  playerID,
		AccountID: accountID,
		Password:  password,
		Username:  username,
		UDID:      "S15" + robtop.RSCharset(25, robtop.DigitCharacters) + "1000",
	}
	if playerID != 0 {
		a.UUID = strconv.Itoa(playerID)
	} else {
		a.UUID = robtop.RandomUUID()
	}
	if a.Username == "" {
		a.Username = "Player"
	}
	return a
}

// GJP2 derives the password token sent on authenticated requests.
func (a Account) GJP2() string {
	return robtop.GJP2(a.Password)
}

func (a Account) authenticated() bool {
	return a.AccountID != 0 && a.Password != ""
}

// Client talks to one server instance.
type Client struct {
	server        string
	accountServer string
	contentServer string
	endpoints     Endpoints
	headers       map[string]string
	versions      Versions
	params        Params

	account   Account
	transport *transport.Transport
}

// New builds a client for the given account and configuration. A nil
// config targets the official servers.
func New(account Account, cfg *Config) *Client {
	c := &Client{
		server:    DefaultServer,
		endpoints: DefaultEndpoints,
		headers:   DefaultHeaders22(),
		versions:  VersionsLatest,
		account:   account,
	}
	if cfg != nil {
		if cfg.Server != "" {
			c.server = strings.TrimRight(cfg.Server, "/")
		}
		if cfg.AccountServer != "" {
			c.accountServer = strings.TrimRight(cfg.AccountServer, "/")
		}
		if cfg.ContentServer != "" {
			c.contentServer = strings.TrimRight(cfg.ContentServer, "/")
		}
		if cfg.Endpoints != nil {
			c.endpoints = cfg.Endpoints
		}
		if cfg.Headers != nil {
			c.headers = cfg.Headers
		}
		if (cfg.Versions != Versions{}) {
			c.versions = cfg.Versions
		}
		c.params = cfg.Params
	}
	// Custom servers keep all traffic on one base; only the official
	// one splits account and content hosts off.
	if c.accountServer == "" {
		if c.server == DefaultServer {
			c.accountServer = DefaultAccountServer
		} else {
			c.accountServer = c.server
		}
	}
	if c.contentServer == "" {
		if c.server == DefaultServer {
			c.contentServer = DefaultContentServer
		} else {
			c.contentServer = c.server
		}
	}
	c.transport = transport.New(c.headers)
	return c
}

// Account returns the bound account.
func (c *Client) Account() Account {
	return c.account
}
