package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultRESTTimeout = 30 * time.Second

// RESTProvider talks to the Google Identity Toolkit API, the managed
// email/password provider behind the production deployment.
type RESTProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewRESTProvider(baseURL, apiKey string) *RESTProvider {
	return &RESTProvider{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultRESTTimeout},
	}
}

func (p *RESTProvider) Name() string {
	return "identitytoolkit"
}

type restAccountResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	IDToken     string `json:"idToken"`
	ExpiresIn   string `json:"expiresIn"`
}

type restErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (p *RESTProvider) CreateAccount(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	var resp restAccountResponse
	if err := p.post(ctx, "accounts:signUp", body, &resp); err != nil {
		return nil, err
	}
	return sessionFromREST(&resp), nil
}

func (p *RESTProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	var resp restAccountResponse
	if err := p.post(ctx, "accounts:signInWithPassword", body, &resp); err != nil {
		return nil, err
	}
	return sessionFromREST(&resp), nil
}

func (p *RESTProvider) SetDisplayName(ctx context.Context, idToken, name string) error {
	body := map[string]any{
		"idToken":           idToken,
		"displayName":       name,
		"returnSecureToken": false,
	}
	var resp restAccountResponse
	return p.post(ctx, "accounts:update", body, &resp)
}

// SignOut discards the session on the caller's side. The managed provider
// has no revocation endpoint for password sessions; tokens simply expire.
func (p *RESTProvider) SignOut(ctx context.Context, idToken string) error {
	return nil
}

func (p *RESTProvider) post(ctx context.Context, endpoint string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", endpoint, err)
	}

	url := fmt.Sprintf("%s/%s?key=%s", p.baseURL, endpoint, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp restErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			return &ProviderError{Code: "HTTP_" + strconv.Itoa(resp.StatusCode)}
		}
		return providerErrorFromMessage(errResp.Error.Message)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

// providerErrorFromMessage splits the toolkit's "CODE : detail" message
// shape into a structured error.
func providerErrorFromMessage(message string) *ProviderError {
	code, detail, found := strings.Cut(message, ":")
	code = strings.TrimSpace(code)
	if !found {
		return &ProviderError{Code: code}
	}
	return &ProviderError{Code: code, Message: strings.TrimSpace(detail)}
}

func sessionFromREST(resp *restAccountResponse) *Session {
	expiresAt := time.Time{}
	if seconds, err := strconv.Atoi(resp.ExpiresIn); err == nil {
		expiresAt = time.Now().Add(time.Duration(seconds) * time.Second)
	}

	return &Session{
		Identity: Identity{
			UID:         resp.LocalID,
			Email:       resp.Email,
			DisplayName: resp.DisplayName,
		},
		IDToken:   resp.IDToken,
		ExpiresAt: expiresAt,
	}
}
