package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const identityToolkitBase = "https://identitytoolkit.googleapis.com/v1"

// IdentityClient talks to the Firebase Identity Toolkit REST endpoints using
// the project's web API key. Sign-in, sign-up and password resets are fully
// delegated; this service never stores passwords.
type IdentityClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewIdentityClient creates a new Identity Toolkit client
func NewIdentityClient(apiKey string) *IdentityClient {
	return &IdentityClient{
		apiKey:  apiKey,
		baseURL: identityToolkitBase,
		client:  &http.Client{},
	}
}

// NewIdentityClientWithBaseURL creates a client against a custom endpoint.
// Used by tests and the Firebase auth emulator.
func NewIdentityClientWithBaseURL(apiKey, baseURL string) *IdentityClient {
	c := NewIdentityClient(apiKey)
	c.baseURL = baseURL
	return c
}

// SignInResult is the subset of the Identity Toolkit response this service
// consumes.
type SignInResult struct {
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
	LocalID string `json:"localId"`
}

type identityError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn verifies an email/password pair against accounts:signInWithPassword.
func (c *IdentityClient) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	return c.post(ctx, "accounts:signInWithPassword", map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
}

// SignUp creates a new account via accounts:signUp.
func (c *IdentityClient) SignUp(ctx context.Context, email, password string) (*SignInResult, error) {
	return c.post(ctx, "accounts:signUp", map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
}

// SendPasswordReset asks Firebase to email a password-reset link.
func (c *IdentityClient) SendPasswordReset(ctx context.Context, email string) error {
	_, err := c.post(ctx, "accounts:sendOobCode", map[string]interface{}{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	})
	return err
}

func (c *IdentityClient) post(ctx context.Context, action string, payload map[string]interface{}) (*SignInResult, error) {
	url := fmt.Sprintf("%s/%s?key=%s", c.baseURL, action, c.apiKey)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity toolkit request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		var apiErr identityError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, errors.New(apiErr.Error.Message)
		}
		return nil, fmt.Errorf("identity toolkit error: status %d", resp.StatusCode)
	}

	var result SignInResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}
