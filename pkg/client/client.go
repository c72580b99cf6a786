// Package client is a typed Go client for the skillswap HTTP API together with an
// in-memory state store for interactive front ends.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/YusovID/skillswap/pkg/api"
)

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	Status  int
	Code    api.ErrorCode
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("skillswap api: %d %s: %s", e.Status, e.Code, e.Message)
}

// IsCode reports whether err is an *APIError carrying code.
func IsCode(err error, code api.ErrorCode) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.token
}

// SearchParams mirrors the query string of GET /skills/search. Empty fields are omitted.
type SearchParams struct {
	Query            string
	Category         string
	ProficiencyLevel string
	Type             string
	Location         string
	Limit            int
	Offset           int
}

func (p SearchParams) values() url.Values {
	v := url.Values{}

	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}

	set("q", p.Query)
	set("category", p.Category)
	set("proficiency_level", p.ProficiencyLevel)
	set("type", p.Type)
	set("location", p.Location)

	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		v.Set("offset", strconv.Itoa(p.Offset))
	}

	return v
}

func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.User, error) {
	var user api.User
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Login authenticates and keeps the returned token for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, api.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}

	c.SetToken(resp.Token)

	return &resp, nil
}

func (c *Client) Me(ctx context.Context) (*api.User, error) {
	var user api.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) (*api.User, error) {
	var user api.User
	if err := c.do(ctx, http.MethodPatch, "/users/me", nil, req, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *Client) DeleteAccount(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/users/me", nil, nil, nil)
}

func (c *Client) GetUser(ctx context.Context, id string) (*api.User, error) {
	var user api.User
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *Client) UserSkills(ctx context.Context, userID string) ([]api.Skill, error) {
	var resp api.SkillsResponse
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID)+"/skills", nil, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Skills, nil
}

// UserFeedback lists feedback given or received by a user. An empty direction means received.
func (c *Client) UserFeedback(ctx context.Context, userID, direction string) ([]api.Feedback, error) {
	q := url.Values{}
	if direction != "" {
		q.Set("direction", direction)
	}

	var resp api.FeedbackResponse
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID)+"/feedback", q, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Feedback, nil
}

func (c *Client) CreateSkill(ctx context.Context, req api.CreateSkillRequest) (*api.Skill, error) {
	var skill api.Skill
	if err := c.do(ctx, http.MethodPost, "/skills", nil, req, &skill); err != nil {
		return nil, err
	}

	return &skill, nil
}

func (c *Client) GetSkill(ctx context.Context, id string) (*api.Skill, error) {
	var skill api.Skill
	if err := c.do(ctx, http.MethodGet, "/skills/"+url.PathEscape(id), nil, nil, &skill); err != nil {
		return nil, err
	}

	return &skill, nil
}

func (c *Client) UpdateSkill(ctx context.Context, id string, req api.UpdateSkillRequest) (*api.Skill, error) {
	var skill api.Skill
	if err := c.do(ctx, http.MethodPatch, "/skills/"+url.PathEscape(id), nil, req, &skill); err != nil {
		return nil, err
	}

	return &skill, nil
}

func (c *Client) SetSkillVisibility(ctx context.Context, id string, public bool) (*api.Skill, error) {
	var skill api.Skill
	if err := c.do(ctx, http.MethodPost, "/skills/"+url.PathEscape(id)+"/visibility", nil, api.SetVisibilityRequest{IsPublic: &public}, &skill); err != nil {
		return nil, err
	}

	return &skill, nil
}

func (c *Client) SetSkillAvailability(ctx context.Context, id string, available bool) (*api.Skill, error) {
	var skill api.Skill
	if err := c.do(ctx, http.MethodPost, "/skills/"+url.PathEscape(id)+"/availability", nil, api.SetAvailabilityRequest{IsAvailable: &available}, &skill); err != nil {
		return nil, err
	}

	return &skill, nil
}

func (c *Client) DeleteSkill(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/skills/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) SearchSkills(ctx context.Context, params SearchParams) ([]api.SkillListing, error) {
	var resp api.SearchResponse
	if err := c.do(ctx, http.MethodGet, "/skills/search", params.values(), nil, &resp); err != nil {
		return nil, err
	}

	return resp.Skills, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var resp api.CategoriesResponse
	if err := c.do(ctx, http.MethodGet, "/skills/categories", nil, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Categories, nil
}

func (c *Client) CreateSwap(ctx context.Context, req api.CreateSwapRequest) (*api.SwapRequest, error) {
	var swap api.SwapRequest
	if err := c.do(ctx, http.MethodPost, "/swaps", nil, req, &swap); err != nil {
		return nil, err
	}

	return &swap, nil
}

// Swaps lists the caller's requests; direction is "sent" or "received".
func (c *Client) Swaps(ctx context.Context, direction string) ([]api.SwapRequest, error) {
	var resp api.SwapsResponse
	if err := c.do(ctx, http.MethodGet, "/swaps", url.Values{"direction": {direction}}, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Swaps, nil
}

func (c *Client) CompletedSwaps(ctx context.Context) ([]api.SwapRequest, error) {
	var resp api.SwapsResponse
	if err := c.do(ctx, http.MethodGet, "/swaps/completed", nil, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Swaps, nil
}

func (c *Client) GetSwap(ctx context.Context, id string) (*api.SwapRequest, error) {
	var swap api.SwapRequest
	if err := c.do(ctx, http.MethodGet, "/swaps/"+url.PathEscape(id), nil, nil, &swap); err != nil {
		return nil, err
	}

	return &swap, nil
}

func (c *Client) RespondSwap(ctx context.Context, id, status string) (*api.SwapRequest, error) {
	var swap api.SwapRequest
	if err := c.do(ctx, http.MethodPost, "/swaps/"+url.PathEscape(id)+"/respond", nil, api.RespondSwapRequest{Status: status}, &swap); err != nil {
		return nil, err
	}

	return &swap, nil
}

func (c *Client) CompleteSwap(ctx context.Context, id string) (*api.SwapRequest, error) {
	var swap api.SwapRequest
	if err := c.do(ctx, http.MethodPost, "/swaps/"+url.PathEscape(id)+"/complete", nil, nil, &swap); err != nil {
		return nil, err
	}

	return &swap, nil
}

func (c *Client) DeleteSwap(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/swaps/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) SubmitFeedback(ctx context.Context, swapID string, req api.SubmitFeedbackRequest) (*api.Feedback, error) {
	var fb api.Feedback
	if err := c.do(ctx, http.MethodPost, "/swaps/"+url.PathEscape(swapID)+"/feedback", nil, req, &fb); err != nil {
		return nil, err
	}

	return &fb, nil
}

func (c *Client) SwapFeedback(ctx context.Context, swapID string) ([]api.Feedback, error) {
	var resp api.FeedbackResponse
	if err := c.do(ctx, http.MethodGet, "/swaps/"+url.PathEscape(swapID)+"/feedback", nil, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Feedback, nil
}

// do sends one request. A nil out discards the response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}

	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var envelope api.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error.Code == "" {
		apiErr.Code = api.INTERNAL
		apiErr.Message = http.StatusText(resp.StatusCode)

		return apiErr
	}

	apiErr.Code = envelope.Error.Code
	apiErr.Message = envelope.Error.Message

	return apiErr
}
