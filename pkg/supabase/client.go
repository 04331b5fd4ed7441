package supabase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/postgrest-go"
)

// Client talks to PostgREST and GoTrue on behalf of one caller.
type Client struct {
	cfg     Config
	cookies CookieStore // nil for direct clients

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

// NewServerClient builds a client whose session lives in request cookies.
// Refreshed tokens are written back through the same store.
func NewServerClient(cfg Config, cookies CookieStore) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c := &Client{cfg: cfg, cookies: cookies}
	if cookies != nil {
		c.accessToken, _ = cookies.Get(cfg.AccessCookieName)
		c.refreshToken, _ = cookies.Get(cfg.RefreshCookieName)
	}
	return c, nil
}

// NewClient builds a client that sends accessToken as a bearer token.
// An empty token makes anonymous calls with the anon key.
func NewClient(cfg Config, accessToken string) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Client{cfg: cfg, accessToken: accessToken}, nil
}

// AccessToken returns the current access token.
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// Events returns the bus this client reports auth changes to.
func (c *Client) Events() *AuthEvents {
	return c.cfg.Events
}

func (c *Client) canRefresh() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cookies != nil && c.refreshToken != ""
}

func (c *Client) setSession(s *Session) {
	c.mu.Lock()
	c.accessToken = s.AccessToken
	c.refreshToken = s.RefreshToken
	c.mu.Unlock()

	if c.cookies != nil {
		c.cookies.Set(c.cfg.AccessCookieName, s.AccessToken, s.ExpiresIn)
		// Refresh tokens outlive access tokens; keep them for 30 days.
		c.cookies.Set(c.cfg.RefreshCookieName, s.RefreshToken, 30*24*3600)
	}
}

func (c *Client) clearSession() {
	c.mu.Lock()
	c.accessToken = ""
	c.refreshToken = ""
	c.mu.Unlock()

	if c.cookies != nil {
		c.cookies.Delete(c.cfg.AccessCookieName)
		c.cookies.Delete(c.cfg.RefreshCookieName)
	}
}

// bearer is the token for calls made on behalf of the caller.
func (c *Client) bearer() string {
	if t := c.AccessToken(); t != "" {
		return t
	}
	return c.cfg.AnonKey
}

// rest returns a PostgREST client bound to one exchange.
func (c *Client) rest(x *exchange, token string) *postgrest.Client {
	pc := postgrest.NewClient(c.baseURL()+restPath, "", nil)
	if pc.ClientError != nil {
		return pc
	}
	pc.Transport.Parent = x
	pc.SetApiKey(c.cfg.AnonKey)
	if token != "" {
		pc.SetAuthToken(token)
	}
	return pc
}

// auth returns a GoTrue client bound to one exchange.
func (c *Client) auth(x *exchange, token string) gotrue.Client {
	gc := gotrue.New("", c.cfg.AnonKey).
		WithCustomGoTrueURL(c.baseURL() + authPath).
		WithClient(http.Client{Transport: x, Timeout: c.cfg.HTTPClient.Timeout})
	if token != "" {
		gc = gc.WithToken(token)
	}
	return gc
}

func (c *Client) baseURL() string {
	return strings.TrimRight(c.cfg.URL, "/")
}

// newExchange binds ctx to the configured transport for one call.
func (c *Client) newExchange(ctx context.Context) *exchange {
	base := c.cfg.HTTPClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	return &exchange{ctx: ctx, base: base}
}

// withRefresh runs fn with the caller's token and, for server clients that own
// a refresh token, retries it once after refreshing on 401.
func (c *Client) withRefresh(ctx context.Context, fn func(x *exchange, token string) error) error {
	err := fn(c.newExchange(ctx), c.bearer())
	if err == nil || !IsUnauthorized(err) || !c.canRefresh() {
		return err
	}

	if _, rErr := c.RefreshSession(ctx); rErr != nil {
		return err
	}
	return fn(c.newExchange(ctx), c.bearer())
}

// exchange is the round tripper under both upstream clients. It attaches the
// caller's context and keeps the last non-2xx answer so errors stay typed.
type exchange struct {
	ctx     context.Context
	base    http.RoundTripper
	failure *Error
}

func (x *exchange) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := x.base.RoundTrip(req.WithContext(x.ctx))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}
		x.failure = parseError(resp.StatusCode, raw)
		resp.Body = io.NopCloser(bytes.NewReader(raw))
	}
	return resp, nil
}

// wrap prefers the captured upstream error over the library's flattened one.
func (x *exchange) wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if x.failure != nil {
		return x.failure
	}
	return fmt.Errorf("supabase: %s: %w", op, err)
}
