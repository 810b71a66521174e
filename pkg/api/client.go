package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"sync"
	"time"

	"ktap/pkg/content"
)

// SessionMarkerCookie is readable by the client and tells whether a session
// is worth checking on start.
const SessionMarkerCookie = "user_id"

type Client struct {
	baseURL *url.URL

	mu   sync.Mutex
	http *http.Client
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: u,
		http:    &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

func (c *Client) HasSession() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ck := range c.http.Jar.Cookies(c.baseURL) {
		if ck.Name == SessionMarkerCookie && ck.Value != "" {
			return true
		}
	}
	return false
}

// ClearSession drops every cookie the client holds.
func (c *Client) ClearSession() {
	jar, _ := cookiejar.New(nil)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.http = &http.Client{Jar: jar, Timeout: c.http.Timeout}
}

func (c *Client) CurrentUser(ctx context.Context) (*content.User, error) {
	var resp content.Envelope[*content.User]
	if err := c.do(ctx, http.MethodGet, "/api/user", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*content.User, error) {
	req := map[string]string{"email": email, "password": password}
	var resp content.Envelope[*content.User]
	if err := c.do(ctx, http.MethodPost, "/api/login", req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) Register(ctx context.Context, email, name, password string) (*content.User, error) {
	req := map[string]string{"email": email, "name": name, "password": password}
	var resp content.Envelope[*content.User]
	if err := c.do(ctx, http.MethodPost, "/api/register", req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/logout", nil, nil)
}

func (c *Client) Gifts(ctx context.Context) ([]*content.Gift, error) {
	var resp content.Envelope[[]*content.Gift]
	if err := c.do(ctx, http.MethodGet, "/api/gifts", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) Items(ctx context.Context, e Endpoint, skip, limit int64) (*content.Page[*content.Item], error) {
	page := &content.Page[*content.Item]{}
	if err := c.do(ctx, http.MethodGet, e.Path("")+pageQuery(skip, limit), nil, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (c *Client) Item(ctx context.Context, e Endpoint, id string) (*content.Item, error) {
	var resp content.Envelope[*content.Item]
	if err := c.do(ctx, http.MethodGet, e.Path(id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// NewItem is the body of a create request. GameID and Score apply to reviews.
type NewItem struct {
	GameID  string `json:"gameId,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Score   int    `json:"score,omitempty"`
}

func (c *Client) CreateItem(ctx context.Context, e Endpoint, it *NewItem) (*content.Item, error) {
	var resp content.Envelope[*content.Item]
	if err := c.do(ctx, http.MethodPost, e.Path(""), it, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) Thumb(ctx context.Context, e Endpoint, id string, d content.Reaction) (*content.Thumbs, error) {
	if d == content.None {
		return nil, fmt.Errorf("thumb needs a direction")
	}
	var resp content.Envelope[*content.Thumbs]
	if err := c.do(ctx, http.MethodPost, e.Path(id, "thumb", d.String()), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("empty thumb response")
	}
	return resp.Data, nil
}

func (c *Client) SendGift(ctx context.Context, e Endpoint, id string, giftID int64) (*content.GiftSent, error) {
	resp := &content.GiftSent{}
	path := e.Path(id, "gifts", strconv.FormatInt(giftID, 10))
	if err := c.do(ctx, http.MethodPost, path, nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Comments(ctx context.Context, e Endpoint, id string, skip, limit int64) (*content.Page[*content.Comment], error) {
	page := &content.Page[*content.Comment]{}
	if err := c.do(ctx, http.MethodGet, e.Path(id, "comments")+pageQuery(skip, limit), nil, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (c *Client) AddComment(ctx context.Context, e Endpoint, id, body string) (*content.Comment, error) {
	var resp content.Envelope[*content.Comment]
	req := map[string]string{"content": body}
	if err := c.do(ctx, http.MethodPost, e.Path(id, "comments"), req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) DeleteComment(ctx context.Context, e Endpoint, id, commentID string) error {
	return c.do(ctx, http.MethodDelete, e.Path(id, "comments", commentID), nil, nil)
}

func (c *Client) Report(ctx context.Context, e Endpoint, id, reason string) error {
	req := map[string]string{"reason": reason}
	return c.do(ctx, http.MethodPost, e.Path(id, "report"), req, nil)
}

func pageQuery(skip, limit int64) string {
	q := url.Values{}
	q.Set("skip", strconv.FormatInt(skip, 10))
	q.Set("limit", strconv.FormatInt(limit, 10))
	return "?" + q.Encode()
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	ref, err := url.Parse(path)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.ResolveReference(ref).String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.Lock()
	hc := c.http
	c.mu.Unlock()

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%s %s: decode: %w", method, path, err)
	}
	return nil
}

func decodeError(status int, body []byte) error {
	var msg struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &msg)

	switch status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusBadRequest:
		if msg.Message == "" {
			msg.Message = "bad request"
		}
		return &ValidationError{Message: msg.Message}
	}
	return &StatusError{Code: status, Message: msg.Message}
}
