package identity

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type localAccount struct {
	uid          string
	email        string
	displayName  string
	passwordHash string
	disabled     bool
}

// LocalProvider is an in-process identity provider used in development and
// tests, when no managed-provider API key is configured. It reports the
// same error codes as the managed service.
type LocalProvider struct {
	tokens *TokenService

	mu       sync.Mutex
	accounts map[string]*localAccount // keyed by lowercased email
	sessions map[string]string        // id token -> uid
}

func NewLocalProvider(tokens *TokenService) *LocalProvider {
	return &LocalProvider{
		tokens:   tokens,
		accounts: make(map[string]*localAccount),
		sessions: make(map[string]string),
	}
}

func (p *LocalProvider) Name() string {
	return "local"
}

func (p *LocalProvider) CreateAccount(ctx context.Context, email, password string) (*Session, error) {
	key := strings.ToLower(email)

	if !strings.Contains(email, "@") {
		return nil, &ProviderError{Code: CodeInvalidEmail, Message: "malformed email address"}
	}
	if len(password) < 6 {
		return nil, &ProviderError{Code: CodeWeakPassword, Message: "password must be at least 6 characters"}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.accounts[key]; exists {
		return nil, &ProviderError{Code: CodeEmailExists, Message: "email already registered"}
	}

	account := &localAccount{
		uid:          uuid.New().String(),
		email:        email,
		passwordHash: HashPassword(password),
	}
	p.accounts[key] = account

	return p.issueLocked(account)
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	account, ok := p.accounts[strings.ToLower(email)]
	if !ok {
		return nil, &ProviderError{Code: CodeEmailNotFound, Message: "no account for email"}
	}
	if account.disabled {
		return nil, &ProviderError{Code: CodeUserDisabled, Message: "account disabled"}
	}
	if account.passwordHash != HashPassword(password) {
		return nil, &ProviderError{Code: CodeInvalidPassword, Message: "wrong password"}
	}

	return p.issueLocked(account)
}

func (p *LocalProvider) SetDisplayName(ctx context.Context, idToken, name string) error {
	claims, err := p.tokens.ValidateIDToken(idToken)
	if err != nil {
		return &ProviderError{Code: CodeInvalidIDToken, Message: "id token rejected"}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, account := range p.accounts {
		if account.uid == claims.UID {
			account.displayName = name
			return nil
		}
	}
	return &ProviderError{Code: CodeEmailNotFound, Message: "no account for token"}
}

func (p *LocalProvider) SignOut(ctx context.Context, idToken string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.sessions, idToken)
	return nil
}

// Disable marks an account disabled, so subsequent sign-ins fail with
// USER_DISABLED. Test hook; the managed provider does this from its console.
func (p *LocalProvider) Disable(email string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if account, ok := p.accounts[strings.ToLower(email)]; ok {
		account.disabled = true
	}
}

func (p *LocalProvider) issueLocked(account *localAccount) (*Session, error) {
	token, expiresAt, err := p.tokens.GenerateIDToken(account.uid, account.email)
	if err != nil {
		return nil, err
	}
	p.sessions[token] = account.uid

	return &Session{
		Identity: Identity{
			UID:         account.uid,
			Email:       account.email,
			DisplayName: account.displayName,
		},
		IDToken:   token,
		ExpiresAt: expiresAt,
	}, nil
}
