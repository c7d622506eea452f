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

	"github.com/dmitrijs2005/llmpid-console/internal/client/models"
)

// maxErrorBody caps how much of an error response is read for its message.
const maxErrorBody = 4 << 10

// HTTPClient implements Client over the REST API. It expects doer to be the
// gateway client so that every call carries the session credential.
type HTTPClient struct {
	baseURL *url.URL
	doer    *http.Client
}

// NewHTTPClient returns a client for the API rooted at baseURL
// (e.g. "http://127.0.0.1:8080/api").
func NewHTTPClient(baseURL string, doer *http.Client) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse api url: unsupported scheme %q", u.Scheme)
	}
	if doer == nil {
		doer = http.DefaultClient
	}
	return &HTTPClient{baseURL: u, doer: doer}, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	Username    string `json:"username"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type classifyRequest struct {
	Text string `json:"text"`
}

type addSystemRequest struct {
	SystemName string `json:"system_name"`
}

type addSystemResponse struct {
	SystemName string `json:"system_name"`
	AccessKey  string `json:"access_key"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, c.endpoint(nil, "user", "auth", "login"),
		loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) (string, error) {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, c.endpoint(nil, "user", "auth", "credentials", "change"),
		changePasswordRequest{Username: username, OldPassword: oldPassword, NewPassword: newPassword}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, c.endpoint(nil, "user", "auth", "logout"), nil, nil)
}

func (c *HTTPClient) Classify(ctx context.Context, text string) (*models.ClassificationResult, error) {
	var resp models.ClassificationResult
	if err := c.do(ctx, http.MethodPost, c.endpoint(nil, "classification"), classifyRequest{Text: text}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ListClassifications(ctx context.Context, q models.ListQuery) ([]models.Classification, error) {
	q = q.Normalize()
	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("limit", strconv.Itoa(q.Limit))
	query.Set("sortBy", q.Sort.Param())

	var resp []models.Classification
	if err := c.do(ctx, http.MethodGet, c.endpoint(query, "classification", "logs"), nil, &resp); err != nil {
		return nil, err
	}
	if resp == nil {
		resp = []models.Classification{}
	}
	return resp, nil
}

func (c *HTTPClient) ListExternalSystems(ctx context.Context) ([]models.ExternalSystem, error) {
	var names []string
	if err := c.do(ctx, http.MethodGet, c.endpoint(nil, "system", "external"), nil, &names); err != nil {
		return nil, err
	}
	systems := make([]models.ExternalSystem, 0, len(names))
	for _, n := range names {
		systems = append(systems, models.ExternalSystem{Name: n})
	}
	return systems, nil
}

func (c *HTTPClient) AddExternalSystem(ctx context.Context, name string) (*models.Registration, error) {
	var resp addSystemResponse
	if err := c.do(ctx, http.MethodPost, c.endpoint(nil, "system", "external"), addSystemRequest{SystemName: name}, &resp); err != nil {
		return nil, err
	}
	if resp.AccessKey == "" {
		return nil, fmt.Errorf("%w: registration returned no access key", ErrRemote)
	}
	if resp.SystemName == "" {
		resp.SystemName = name
	}
	return &models.Registration{Name: resp.SystemName, AccessKey: resp.AccessKey}, nil
}

func (c *HTTPClient) DeleteExternalSystem(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, c.endpoint(nil, "system", "external", name), nil, nil)
}

// endpoint joins escaped path segments onto the base URL.
func (c *HTTPClient) endpoint(query url.Values, segments ...string) *url.URL {
	u := *c.baseURL
	path, raw := u.Path, u.EscapedPath()
	for _, s := range segments {
		path += "/" + s
		raw += "/" + url.PathEscape(s)
	}
	u.Path, u.RawPath = path, raw
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return &u
}

func (c *HTTPClient) do(ctx context.Context, method string, u *url.URL, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func readAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var er errorResponse
	if json.Unmarshal(b, &er) == nil {
		switch {
		case er.Message != "":
			apiErr.Message = er.Message
		case er.Error != "":
			apiErr.Message = er.Error
		default:
			apiErr.Message = er.Status
		}
	}
	return apiErr
}
