package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jiraclone/taskboard-backend/internal/accounts/domain"
)

const identityToolkitBaseURL = "https://identitytoolkit.googleapis.com/v1"

// IdentityToolkitClient is a thin client for the Google Identity Toolkit
// REST API. The Admin SDK deliberately has no password sign-in, so login
// goes through the same endpoint the web SDK uses, keyed by the project's
// Web API key.
type IdentityToolkitClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewIdentityToolkitClient(apiKey string) *IdentityToolkitClient {
	return &IdentityToolkitClient{
		apiKey:  apiKey,
		baseURL: identityToolkitBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewIdentityToolkitClientWithBaseURL overrides the endpoint, for tests.
func NewIdentityToolkitClientWithBaseURL(apiKey, baseURL string) *IdentityToolkitClient {
	c := NewIdentityToolkitClient(apiKey)
	c.baseURL = baseURL
	return c
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithPassword exchanges credentials for a session. Credential-shaped
// rejections map to domain.ErrInvalidCredentials; anything else is a service
// failure.
func (c *IdentityToolkitClient) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	body, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, fmt.Errorf("encode sign-in request: %w", err)
	}

	url := fmt.Sprintf("%s/accounts:signInWithPassword?key=%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sign-in request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil {
			switch apiErr.Error.Message {
			case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "USER_DISABLED":
				return nil, domain.ErrInvalidCredentials
			}
			if apiErr.Error.Message != "" {
				return nil, fmt.Errorf("sign-in rejected: %s", apiErr.Error.Message)
			}
		}
		return nil, fmt.Errorf("sign-in failed with status %d", resp.StatusCode)
	}

	var out signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode sign-in response: %w", err)
	}

	return &domain.Session{
		UID:          out.LocalID,
		Email:        out.Email,
		IDToken:      out.IDToken,
		RefreshToken: out.RefreshToken,
		ExpiresIn:    out.ExpiresIn,
	}, nil
}
