// Package adminclient est le client Go du backend W3LIQUOR, côté dashboard :
// login admin, garde de session et gestion du catalogue (liste, formulaire,
// suppression) avec le modèle de synchronisation full refresh.
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	mu    sync.RWMutex
	token string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewFromEnv construit le client depuis W3LIQUOR_API_URL.
func NewFromEnv() *Client {
	return New(os.Getenv("W3LIQUOR_API_URL"))
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

// APIError est une réponse d'erreur du backend, avec son code stable.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("api: %s (HTTP %d)", e.Message, e.StatusCode)
}

// Messages utilisateur par code d'erreur du login. Tout code inconnu retombe
// sur le message générique.
var loginMessages = map[string]string{
	"auth/invalid-email":     "Format email tidak valid.",
	"auth/user-not-found":    "Email tidak terdaftar.",
	"auth/wrong-password":    "Password salah.",
	"auth/too-many-requests": "Terlalu banyak percobaan. Coba beberapa menit lagi.",
	"auth/admin-only":        "Akun ini tidak terdaftar sebagai admin.",
}

// LoginErrorMessage mappe une erreur de login vers son message utilisateur.
func LoginErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg, ok := loginMessages[apiErr.Code]; ok {
			return msg
		}
	}
	return "Login gagal. Coba lagi."
}

type LoginResult struct {
	Token   string `json:"token"`
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
}

type Identity struct {
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// Login authentifie et retient le token pour les appels suivants.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	var res LoginResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", body, &res); err != nil {
		return nil, err
	}

	c.SetToken(res.Token)
	return &res, nil
}

// Logout révoque la session côté serveur et oublie le token.
func (c *Client) Logout(ctx context.Context) error {
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	c.SetToken("")
	return err
}

// Me retourne l'identité courante et son statut admin.
func (c *Client) Me(ctx context.Context) (*Identity, error) {
	var id Identity
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

// AdminResolver expose le lookup admin du backend sous la forme attendue par
// la garde, pour que le login et la garde partagent la même résolution.
func (c *Client) AdminResolver() ResolveFunc {
	return func(ctx context.Context, identity string) (bool, error) {
		me, err := c.Me(ctx)
		if err != nil {
			return false, err
		}
		if identity != "" && me.UserID != identity {
			return false, nil
		}
		return me.IsAdmin, nil
	}
}

func (c *Client) ListLiquors(ctx context.Context) ([]Liquor, error) {
	var liquors []Liquor
	if err := c.doJSON(ctx, http.MethodGet, "/api/liquors", nil, &liquors); err != nil {
		return nil, err
	}
	return liquors, nil
}

func (c *Client) GetLiquor(ctx context.Context, id string) (*Liquor, error) {
	var l Liquor
	if err := c.doJSON(ctx, http.MethodGet, "/api/liquors/"+id, nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *Client) CreateLiquor(ctx context.Context, draft Draft) (*Liquor, error) {
	return c.submitLiquor(ctx, http.MethodPost, "/api/liquors", draft)
}

func (c *Client) UpdateLiquor(ctx context.Context, id string, draft Draft) (*Liquor, error) {
	return c.submitLiquor(ctx, http.MethodPut, "/api/liquors/"+id, draft)
}

func (c *Client) DeleteLiquor(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/liquors/"+id, nil, nil)
}

// submitLiquor envoie le brouillon en multipart/form-data, image comprise,
// comme le formulaire du dashboard.
func (c *Client) submitLiquor(ctx context.Context, method, path string, draft Draft) (*Liquor, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"nama":      draft.Nama,
		"harga":     draft.Harga,
		"diskon":    draft.Diskon,
		"stok":      draft.Stok,
		"deskripsi": draft.Deskripsi,
		"kategori":  draft.Kategori,
		"rating":    draft.Rating,
		"sold":      draft.Sold,
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return nil, err
		}
	}

	if draft.Gambar != nil {
		fw, err := mw.CreateFormFile("gambar", draft.GambarName)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(fw, draft.Gambar); err != nil {
			return nil, err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var l Liquor
	if err := c.do(req, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		if err := json.Unmarshal(data, &payload); err == nil {
			apiErr.Message = payload.Error
			apiErr.Code = payload.Code
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}
