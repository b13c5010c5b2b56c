package googleauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const _jwtBearerGrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"

var ErrMissingAccessToken = errors.New("Google token exchange failed: missing access_token")

// ExchangeError is a non-2xx answer from the token endpoint.
type ExchangeError struct {
	StatusCode int
	Body       string
}

func (e *ExchangeError) Error() string {
	return fmt.Sprintf("Google token exchange failed: %d %s", e.StatusCode, e.Body)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// TokenExchanger trades signed assertions for bearer tokens. Tokens are never
// cached; every call is one round trip.
type TokenExchanger struct {
	httpClient *http.Client
	tokenURL   string
}

func NewTokenExchanger(tokenURL string, httpClient *http.Client) *TokenExchanger {
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &TokenExchanger{
		httpClient: httpClient,
		tokenURL:   tokenURL,
	}
}

func (e *TokenExchanger) Exchange(ctx context.Context, assertion string) (*oauth2.Token, error) {
	form := url.Values{
		"grant_type": {_jwtBearerGrantType},
		"assertion":  {assertion},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ExchangeError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var parsed tokenResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}
	if parsed.AccessToken == "" {
		return nil, ErrMissingAccessToken
	}

	token := &oauth2.Token{
		AccessToken: parsed.AccessToken,
		TokenType:   parsed.TokenType,
	}
	if parsed.ExpiresIn > 0 {
		token.Expiry = time.Now().Add(time.Duration(parsed.ExpiresIn) * time.Second)
	}
	return token, nil
}

// ServiceAccount holds the raw credentials as found in the environment.
type ServiceAccount struct {
	Email      string
	PrivateKey string
}

// Authenticator performs the whole sign-then-exchange flow for a service account.
type Authenticator struct {
	exchanger *TokenExchanger
	now       func() time.Time
}

func NewAuthenticator(exchanger *TokenExchanger) *Authenticator {
	return &Authenticator{exchanger: exchanger, now: time.Now}
}

func (a *Authenticator) Token(ctx context.Context, account ServiceAccount) (*oauth2.Token, error) {
	key, err := ParsePrivateKey(account.PrivateKey)
	if err != nil {
		return nil, err
	}

	assertion, err := SignAssertion(key, NewAssertionClaims(account.Email, a.now()))
	if err != nil {
		return nil, err
	}

	return a.exchanger.Exchange(ctx, assertion)
}
