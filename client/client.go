// Package client is a programmatic client for the catalog API. It mirrors
// the behaviour of the website and admin panel: reads prefer the server and
// refresh a local snapshot file; when the server is unreachable the snapshot
// serves as a read-only offline copy, and writes made while offline land in
// the snapshot alone and are never reconciled with the server afterwards.
// The two stores can permanently diverge; that is the documented trade-off.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mohit-bt/ayurveda-website/models"
)

// ErrAuthRequired is returned when the server rejects the stored token. The
// client discards its token; the caller should log in again.
var ErrAuthRequired = errors.New("authentication required")

// ErrNotCached is returned when the server is unreachable and the snapshot
// has nothing to serve.
var ErrNotCached = errors.New("server unreachable and no local snapshot available")

// snapshot is the on-disk offline copy.
type snapshot struct {
	Products []models.Product `json:"products"`
	Profile  *models.Profile  `json:"profile"`
	SavedAt  time.Time        `json:"saved_at"`
}

// Client talks to a catalog server and maintains the local snapshot.
type Client struct {
	baseURL      string
	snapshotPath string
	httpClient   *http.Client

	mu    sync.Mutex
	token string
}

// New creates a client for the given server base URL (e.g.
// "http://localhost:3000"). snapshotPath names the offline copy; pass ""
// to disable offline fallback entirely.
func New(baseURL, snapshotPath string) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		snapshotPath: snapshotPath,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken installs a bearer token obtained elsewhere (e.g. a stored one).
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the current bearer token, empty when logged out.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// --- HTTP plumbing ---

// doJSON performs a request with an optional JSON body and decodes a JSON
// response into out (when out is non-nil and the status is 2xx). A transport
// error is returned as-is so callers can distinguish "server unreachable"
// from an HTTP-level failure, which is reported as *APIStatusError.
func (c *Client) doJSON(method, path string, body any, out any, authed bool) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token := c.Token()
		if token == "" {
			return ErrAuthRequired
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Token expired or revoked server-side: drop our copy.
		c.SetToken("")
		return ErrAuthRequired
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIStatusError(resp)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// APIStatusError reports a non-success HTTP response, carrying the server's
// error message when one was provided.
type APIStatusError struct {
	StatusCode int
	Message    string
}

func (e *APIStatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

func newAPIStatusError(resp *http.Response) *APIStatusError {
	apiErr := &APIStatusError{StatusCode: resp.StatusCode}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Error
	}
	return apiErr
}

// isNetworkError reports whether err means the server could not be reached
// at all, which is what triggers the offline fallback. HTTP-level errors
// (4xx/5xx) are not network errors.
func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var statusErr *APIStatusError
	if errors.As(err, &statusErr) {
		return false
	}
	return !errors.Is(err, ErrAuthRequired)
}

// --- Snapshot handling ---

func (c *Client) loadSnapshot() (snapshot, bool) {
	if c.snapshotPath == "" {
		return snapshot{}, false
	}
	data, err := os.ReadFile(c.snapshotPath)
	if err != nil {
		return snapshot{}, false
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return snapshot{}, false
	}
	return snap, true
}

func (c *Client) saveSnapshot(snap snapshot) {
	if c.snapshotPath == "" {
		return
	}
	snap.SavedAt = time.Now().UTC()
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return
	}
	// Snapshot writes are opportunistic; a failure leaves the previous copy.
	_ = os.WriteFile(c.snapshotPath, data, 0644)
}

func (c *Client) updateSnapshot(update func(*snapshot)) {
	snap, _ := c.loadSnapshot()
	update(&snap)
	c.saveSnapshot(snap)
}

// --- Catalog reads (with offline fallback) ---

// GetProducts fetches the catalog, refreshing the snapshot on success. When
// the server is unreachable the snapshot is served instead; ErrNotCached is
// returned when there is no snapshot either.
func (c *Client) GetProducts() ([]models.Product, error) {
	var products []models.Product
	err := c.doJSON(http.MethodGet, "/api/products", nil, &products, false)
	if err == nil {
		c.updateSnapshot(func(s *snapshot) { s.Products = products })
		return products, nil
	}
	if isNetworkError(err) {
		if snap, ok := c.loadSnapshot(); ok && snap.Products != nil {
			return snap.Products, nil
		}
		return nil, ErrNotCached
	}
	return nil, err
}

// GetProduct fetches one product, falling back to the snapshot offline.
func (c *Client) GetProduct(id int64) (models.Product, error) {
	var product models.Product
	err := c.doJSON(http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &product, false)
	if err == nil {
		return product, nil
	}
	if isNetworkError(err) {
		if snap, ok := c.loadSnapshot(); ok {
			for _, p := range snap.Products {
				if p.ID == id {
					return p, nil
				}
			}
		}
		return models.Product{}, ErrNotCached
	}
	return models.Product{}, err
}

// GetProfile fetches the business profile with the same fallback behaviour.
func (c *Client) GetProfile() (models.Profile, error) {
	var profile models.Profile
	err := c.doJSON(http.MethodGet, "/api/profile", nil, &profile, false)
	if err == nil {
		c.updateSnapshot(func(s *snapshot) { s.Profile = &profile })
		return profile, nil
	}
	if isNetworkError(err) {
		if snap, ok := c.loadSnapshot(); ok && snap.Profile != nil {
			return *snap.Profile, nil
		}
		return models.Profile{}, ErrNotCached
	}
	return models.Profile{}, err
}

// --- Authentication ---

// Login exchanges the admin password for a bearer token and stores it.
func (c *Client) Login(password string) error {
	var resp struct {
		Token string `json:"token"`
	}
	err := c.doJSON(http.MethodPost, "/api/auth/login", map[string]string{"password": password}, &resp, false)
	if err != nil {
		return err
	}
	c.SetToken(resp.Token)
	return nil
}

// Verify asks the server whether the stored token is still valid.
func (c *Client) Verify() (bool, error) {
	var resp struct {
		Valid bool `json:"valid"`
	}
	err := c.doJSON(http.MethodGet, "/api/auth/verify", nil, &resp, true)
	if err != nil {
		if errors.Is(err, ErrAuthRequired) {
			return false, nil
		}
		return false, err
	}
	return resp.Valid, nil
}

// Logout revokes the token server-side (best-effort) and always discards
// the local copy.
func (c *Client) Logout() error {
	err := c.doJSON(http.MethodPost, "/api/auth/logout", nil, nil, true)
	c.SetToken("")
	if err != nil && !errors.Is(err, ErrAuthRequired) && !isNetworkError(err) {
		return err
	}
	return nil
}

// ChangePassword rotates the admin password. The server invalidates the
// session on success, so the stored token is discarded.
func (c *Client) ChangePassword(currentPassword, newPassword, confirmPassword string) error {
	body := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
		"confirmPassword": confirmPassword,
	}
	if err := c.doJSON(http.MethodPost, "/api/auth/change-password", body, nil, true); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}

// --- Catalog writes (offline writes stay local) ---

// CreateProduct creates a product through the API. When the server is
// unreachable the product is appended to the snapshot only, with a
// locally assigned id; such offline writes never reach the server.
func (c *Client) CreateProduct(product models.Product) (models.Product, error) {
	var created models.Product
	err := c.doJSON(http.MethodPost, "/api/products", product, &created, true)
	if err == nil {
		c.updateSnapshot(func(s *snapshot) { s.Products = append(s.Products, created) })
		return created, nil
	}
	if isNetworkError(err) {
		product.ID = time.Now().UnixMilli()
		c.updateSnapshot(func(s *snapshot) { s.Products = append(s.Products, product) })
		return product, nil
	}
	return models.Product{}, err
}

// UpdateProduct replaces a product through the API, or in the snapshot when
// offline.
func (c *Client) UpdateProduct(product models.Product) (models.Product, error) {
	var updated models.Product
	err := c.doJSON(http.MethodPut, "/api/products", product, &updated, true)
	if err == nil {
		c.replaceInSnapshot(updated)
		return updated, nil
	}
	if isNetworkError(err) {
		c.replaceInSnapshot(product)
		return product, nil
	}
	return models.Product{}, err
}

func (c *Client) replaceInSnapshot(product models.Product) {
	c.updateSnapshot(func(s *snapshot) {
		for i, p := range s.Products {
			if p.ID == product.ID {
				s.Products[i] = product
				return
			}
		}
	})
}

// DeleteProduct removes a product through the API, or from the snapshot when
// offline.
func (c *Client) DeleteProduct(id int64) error {
	err := c.doJSON(http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, nil, true)
	if err != nil && !isNetworkError(err) {
		return err
	}
	c.updateSnapshot(func(s *snapshot) {
		filtered := s.Products[:0]
		for _, p := range s.Products {
			if p.ID != id {
				filtered = append(filtered, p)
			}
		}
		s.Products = filtered
	})
	return nil
}

// SaveProfile replaces the profile through the API, or in the snapshot when
// offline.
func (c *Client) SaveProfile(profile models.Profile) error {
	err := c.doJSON(http.MethodPut, "/api/profile", profile, nil, true)
	if err == nil || isNetworkError(err) {
		c.updateSnapshot(func(s *snapshot) { s.Profile = &profile })
		return nil
	}
	return err
}

// UploadImage sends a local file to the upload endpoint and returns the
// served /uploads path. There is no offline fallback for uploads.
func (c *Client) UploadImage(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	// CreateFormFile would tag the part application/octet-stream, which the
	// server's image check rejects, so build the part header by hand.
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filepath.Base(path)))
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", newAPIStatusError(resp)
	}

	var out struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.ImageURL, nil
}
