// Package client is the typed HTTP client for the AU Connect API. The list
// controllers consume it as their fetch layer.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/saihein2480/au-connect/internal/dto"
	"github.com/saihein2480/au-connect/internal/model"
	"github.com/saihein2480/au-connect/pkg/response"
)

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	Status  int
	Kind    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Kind, e.Message)
}

// Client talks to one AU Connect server. SetToken installs the bearer token
// returned by Login; zero-value token means unauthenticated calls.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New creates a Client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken installs the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

// Upload is one file attached to a multipart request.
type Upload struct {
	Filename string
	Reader   io.Reader
}

// ── auth ──

// Signup registers an account and returns the server's message.
func (c *Client) Signup(ctx context.Context, req *dto.SignupRequest) (string, error) {
	env, err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/signup", req)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// Login checks credentials and installs the returned token on success.
func (c *Client) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	env, err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/login", &dto.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var result dto.LoginResponse
	if err := decodeData(env, &result); err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

// Logout revokes the current token and clears it.
func (c *Client) Logout(ctx context.Context) error {
	if _, err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/logout", nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// Me returns the authenticated account.
func (c *Client) Me(ctx context.Context) (*dto.UserResponse, error) {
	env, err := c.doJSON(ctx, http.MethodGet, "/api/v1/auth/me", nil)
	if err != nil {
		return nil, err
	}
	var user dto.UserResponse
	if err := decodeData(env, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ── contacts ──

// ContactForm carries the multipart fields of a contact create or update.
type ContactForm struct {
	Name       string
	Faculty    string
	Role       string
	Gender     string
	Department string
	Email      string
	Phone      string
	Facebook   string
	Line       string
	Picture    *Upload
}

func (f *ContactForm) fields() map[string]string {
	return map[string]string{
		"name":       f.Name,
		"faculty":    f.Faculty,
		"role":       f.Role,
		"gender":     f.Gender,
		"department": f.Department,
		"email":      f.Email,
		"phone":      f.Phone,
		"facebook":   f.Facebook,
		"line":       f.Line,
	}
}

// ListContacts fetches the full directory, newest first.
func (c *Client) ListContacts(ctx context.Context) ([]model.Contact, error) {
	env, err := c.doJSON(ctx, http.MethodGet, "/api/v1/contacts", nil)
	if err != nil {
		return nil, err
	}
	var contacts []model.Contact
	if err := decodeData(env, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// GetContact fetches one contact by id.
func (c *Client) GetContact(ctx context.Context, id string) (*model.Contact, error) {
	env, err := c.doJSON(ctx, http.MethodGet, "/api/v1/contacts/"+id, nil)
	if err != nil {
		return nil, err
	}
	var contact model.Contact
	if err := decodeData(env, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// CreateContact adds a directory entry.
func (c *Client) CreateContact(ctx context.Context, form *ContactForm) (*model.Contact, error) {
	env, err := c.doMultipart(ctx, http.MethodPost, "/api/v1/contacts", form.fields(), "profilePicture", form.Picture)
	if err != nil {
		return nil, err
	}
	var contact model.Contact
	if err := decodeData(env, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// UpdateContact rewrites a directory entry.
func (c *Client) UpdateContact(ctx context.Context, id string, form *ContactForm) (*model.Contact, error) {
	env, err := c.doMultipart(ctx, http.MethodPut, "/api/v1/contacts/"+id, form.fields(), "profilePicture", form.Picture)
	if err != nil {
		return nil, err
	}
	var contact model.Contact
	if err := decodeData(env, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// DeleteContact removes a directory entry.
func (c *Client) DeleteContact(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/api/v1/contacts/"+id, nil)
	return err
}

// ── announcements ──

// AnnouncementForm carries the multipart fields of an announcement create or
// update.
type AnnouncementForm struct {
	Title   string
	Content string
	Cover   *Upload
}

func (f *AnnouncementForm) fields() map[string]string {
	return map[string]string{
		"title":   f.Title,
		"content": f.Content,
	}
}

// ListAnnouncements fetches the feed, newest first.
func (c *Client) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	env, err := c.doJSON(ctx, http.MethodGet, "/api/v1/announcements", nil)
	if err != nil {
		return nil, err
	}
	var items []model.Announcement
	if err := decodeData(env, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetAnnouncement fetches one announcement by id.
func (c *Client) GetAnnouncement(ctx context.Context, id string) (*model.Announcement, error) {
	env, err := c.doJSON(ctx, http.MethodGet, "/api/v1/announcements/"+id, nil)
	if err != nil {
		return nil, err
	}
	var item model.Announcement
	if err := decodeData(env, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateAnnouncement posts a notice.
func (c *Client) CreateAnnouncement(ctx context.Context, form *AnnouncementForm) (*model.Announcement, error) {
	env, err := c.doMultipart(ctx, http.MethodPost, "/api/v1/announcements", form.fields(), "coverImage", form.Cover)
	if err != nil {
		return nil, err
	}
	var item model.Announcement
	if err := decodeData(env, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateAnnouncement rewrites a notice.
func (c *Client) UpdateAnnouncement(ctx context.Context, id string, form *AnnouncementForm) (*model.Announcement, error) {
	env, err := c.doMultipart(ctx, http.MethodPut, "/api/v1/announcements/"+id, form.fields(), "coverImage", form.Cover)
	if err != nil {
		return nil, err
	}
	var item model.Announcement
	if err := decodeData(env, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteAnnouncement removes a notice.
func (c *Client) DeleteAnnouncement(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/api/v1/announcements/"+id, nil)
	return err
}

// ── profiles ──

// ListProfiles fetches every account.
func (c *Client) ListProfiles(ctx context.Context) ([]dto.UserResponse, error) {
	env, err := c.doJSON(ctx, http.MethodGet, "/api/v1/profile", nil)
	if err != nil {
		return nil, err
	}
	var users []dto.UserResponse
	if err := decodeData(env, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetProfile fetches one account by id.
func (c *Client) GetProfile(ctx context.Context, id string) (*dto.UserResponse, error) {
	env, err := c.doJSON(ctx, http.MethodGet, "/api/v1/profile/"+id, nil)
	if err != nil {
		return nil, err
	}
	var user dto.UserResponse
	if err := decodeData(env, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateProfile adds an account.
func (c *Client) CreateProfile(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	env, err := c.doJSON(ctx, http.MethodPost, "/api/v1/profile", req)
	if err != nil {
		return nil, err
	}
	var user dto.UserResponse
	if err := decodeData(env, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile rewrites an account.
func (c *Client) UpdateProfile(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	env, err := c.doJSON(ctx, http.MethodPut, "/api/v1/profile/"+id, req)
	if err != nil {
		return nil, err
	}
	var user dto.UserResponse
	if err := decodeData(env, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteProfile removes an account.
func (c *Client) DeleteProfile(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/api/v1/profile/"+id, nil)
	return err
}

// ── plumbing ──

func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}) (*response.Envelope, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req)
}

func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, fileField string, file *Upload) (*response.Envelope, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if v == "" {
			continue
		}
		if err := mw.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("encode form field %s: %w", k, err)
		}
	}
	if file != nil {
		fw, err := mw.CreateFormFile(fileField, file.Filename)
		if err != nil {
			return nil, fmt.Errorf("encode form file: %w", err)
		}
		if _, err := io.Copy(fw, file.Reader); err != nil {
			return nil, fmt.Errorf("copy form file: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.send(req)
}

func (c *Client) send(req *http.Request) (*response.Envelope, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env response.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode response (%d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{Status: resp.StatusCode, Kind: env.Kind, Message: env.Message}
	}
	return &env, nil
}

// decodeData re-marshals the envelope's data field into out.
func decodeData(env *response.Envelope, out interface{}) error {
	if env.Data == nil {
		return nil
	}
	b, err := json.Marshal(env.Data)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
