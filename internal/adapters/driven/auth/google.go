// Package auth verifies Google OAuth credentials. Both ID tokens and plain
// OAuth access tokens are accepted: ID tokens are checked against Google's
// tokeninfo endpoint, access tokens against the userinfo endpoint.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driven"
)

// Ensure GoogleVerifier implements TokenVerifier
var _ driven.TokenVerifier = (*GoogleVerifier)(nil)

const (
	defaultTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"
	defaultUserInfoURL  = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// GoogleVerifier validates Google-issued tokens and extracts the user
// identity. user_id is the local part of the verified email address.
type GoogleVerifier struct {
	clientID     string
	tokenInfoURL string
	userInfoURL  string
	client       *http.Client
}

// Option configures a GoogleVerifier
type Option func(*GoogleVerifier)

// WithEndpoints overrides the Google endpoints. Intended for tests.
func WithEndpoints(tokenInfoURL, userInfoURL string) Option {
	return func(v *GoogleVerifier) {
		v.tokenInfoURL = tokenInfoURL
		v.userInfoURL = userInfoURL
	}
}

// NewGoogleVerifier creates a verifier. clientID, when non-empty, is
// checked against the ID token's audience.
func NewGoogleVerifier(clientID string, opts ...Option) *GoogleVerifier {
	v := &GoogleVerifier{
		clientID:     clientID,
		tokenInfoURL: defaultTokenInfoURL,
		userInfoURL:  defaultUserInfoURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// tokenInfoResponse is Google's tokeninfo payload for a valid ID token
type tokenInfoResponse struct {
	Audience      string `json:"aud"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	Expiry        string `json:"exp"`
}

// userInfoResponse is Google's userinfo payload for a valid access token
type userInfoResponse struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Verify validates the token and extracts the user identity.
// ID tokens are tried first; anything that does not parse as a JWT (or
// fails ID-token verification) is retried as an OAuth access token.
func (v *GoogleVerifier) Verify(ctx context.Context, token string) (*domain.UserInfo, error) {
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}

	if looksLikeJWT(token) {
		if user, err := v.verifyIDToken(ctx, token); err == nil {
			return user, nil
		}
	}

	return v.verifyAccessToken(ctx, token)
}

// looksLikeJWT reports whether the token parses as an unverified JWT.
// Signature verification is delegated to Google's tokeninfo endpoint.
func looksLikeJWT(token string) bool {
	parser := jwt.NewParser()
	_, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	return err == nil
}

// verifyIDToken checks an ID token against the tokeninfo endpoint
func (v *GoogleVerifier) verifyIDToken(ctx context.Context, token string) (*domain.UserInfo, error) {
	endpoint := v.tokenInfoURL + "?id_token=" + url.QueryEscape(token)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: tokeninfo returned status %d", domain.ErrTokenInvalid, resp.StatusCode)
	}

	var info tokenInfoResponse
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to parse tokeninfo response: %w", err)
	}

	if v.clientID != "" && info.Audience != v.clientID {
		return nil, fmt.Errorf("%w: audience mismatch", domain.ErrTokenInvalid)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("%w: no email in token", domain.ErrTokenInvalid)
	}

	return userFromIdentity(info.Email, info.Name, info.Picture), nil
}

// verifyAccessToken checks an OAuth access token against the userinfo
// endpoint
func (v *GoogleVerifier) verifyAccessToken(ctx context.Context, token string) (*domain.UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", v.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: userinfo returned status %d", domain.ErrTokenInvalid, resp.StatusCode)
	}

	var info userInfoResponse
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to parse userinfo response: %w", err)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("%w: no email for token", domain.ErrTokenInvalid)
	}

	return userFromIdentity(info.Email, info.Name, info.Picture), nil
}

// userFromIdentity maps a verified Google identity onto domain.UserInfo
func userFromIdentity(email, name, picture string) *domain.UserInfo {
	userID := email
	if at := strings.Index(email, "@"); at > 0 {
		userID = email[:at]
	}
	return &domain.UserInfo{
		UserID:  userID,
		Email:   email,
		Name:    name,
		Picture: picture,
	}
}
