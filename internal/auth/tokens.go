package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// ErrNotSignedIn is returned when a Graph call is attempted without a
// completed sign-in.
var ErrNotSignedIn = errors.New("not signed in")

// Store holds the single signed-in Microsoft account's OAuth token in
// memory. Tokens do not survive a restart; the user signs in again. It
// implements msgraph.TokenSource.
type Store struct {
	mu    sync.Mutex
	cfg   *oauth2.Config
	token *oauth2.Token
	state string
}

// NewStore creates a token store around the given OAuth config.
func NewStore(cfg *oauth2.Config) *Store {
	return &Store{cfg: cfg}
}

// AuthURL returns the consent page URL for a fresh sign-in attempt and
// remembers the state value for the callback check.
func (s *Store) AuthURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = uuid.NewString()
	return s.cfg.AuthCodeURL(s.state, oauth2.AccessTypeOffline)
}

// Exchange completes the sign-in: it checks the callback state and trades
// the authorization code for a token.
func (s *Store) Exchange(ctx context.Context, state, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == "" || state != s.state {
		return errors.New("state mismatch")
	}
	s.state = ""

	token, err := s.cfg.Exchange(ctx, code)
	if err != nil {
		return err
	}
	s.token = token
	return nil
}

// Logout discards the stored token.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = nil
}

// SignedIn reports whether a token is available.
func (s *Store) SignedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != nil
}

// AccessToken returns a valid bearer token, refreshing through the OAuth
// config when the stored one has expired.
func (s *Store) AccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == nil {
		return "", ErrNotSignedIn
	}

	refreshed, err := s.cfg.TokenSource(ctx, s.token).Token()
	if err != nil {
		return "", err
	}
	s.token = refreshed
	return refreshed.AccessToken, nil
}
