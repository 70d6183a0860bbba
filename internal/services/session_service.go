// internal/services/session_service.go
package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/sproutlabs/sprout-backend/internal/cart"
	"github.com/sproutlabs/sprout-backend/internal/checkout"
	"github.com/sproutlabs/sprout-backend/internal/config"
	"github.com/sproutlabs/sprout-backend/internal/models"
)

// Session is the client-owned state for one simulated profile: the cart and
// the checkout handshake. It is never persisted.
type Session struct {
	ProfileID uuid.UUID
	Cart      *cart.Cart
	Handshake *checkout.Handshake
}

// SessionStore is the slice of the data sync layer sessions touch: profile
// lookup for identity, settings for the associate tag, and the stock
// writeback checkout performs.
type SessionStore interface {
	GetProfile(id uuid.UUID) (*models.Profile, error)
	ListProfiles() []models.Profile
	GetSettings() models.ShopSettings
	ConfirmReceived(productID uuid.UUID)
}

// SessionService owns the simulated current-user value and the per-profile
// session registry. There is no authentication; switching identities is a
// local operation.
type SessionService struct {
	mu       sync.Mutex
	store    SessionStore
	config   *config.Config
	sessions map[uuid.UUID]*Session
	current  uuid.UUID
}

func NewSessionService(store SessionStore, cfg *config.Config) *SessionService {
	return &SessionService{
		store:    store,
		config:   cfg,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Resolve implements middleware.ProfileResolver. An empty id resolves to the
// current profile, defaulting to the seeded owner on first use.
func (s *SessionService) Resolve(id string) (*models.Profile, error) {
	if id == "" {
		return s.currentProfile()
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid profile id: %w", err)
	}
	return s.store.GetProfile(parsed)
}

// Switch changes the current simulated identity.
func (s *SessionService) Switch(id uuid.UUID) (*models.Profile, error) {
	profile, err := s.store.GetProfile(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = id
	s.mu.Unlock()

	return profile, nil
}

func (s *SessionService) currentProfile() (*models.Profile, error) {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()

	if current != uuid.Nil {
		return s.store.GetProfile(current)
	}

	// Default to the seeded owner profile
	for _, p := range s.store.ListProfiles() {
		if p.Role == models.RoleOwner {
			s.mu.Lock()
			s.current = p.ID
			s.mu.Unlock()
			profile := p
			return &profile, nil
		}
	}

	return nil, errors.New("no profiles seeded")
}

// SessionFor returns the profile's session, creating cart and handshake on
// first use.
func (s *SessionService) SessionFor(profileID uuid.UUID) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[profileID]; ok {
		return session
	}

	c := cart.New()
	session := &Session{
		ProfileID: profileID,
		Cart:      c,
		Handshake: s.newHandshake(c),
	}
	s.sessions[profileID] = session
	return session
}

// ResetHandshake starts a fresh checkout instance for the session's cart.
// Used after a handshake reaches its terminal success stage.
func (s *SessionService) ResetHandshake(profileID uuid.UUID) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[profileID]
	if !ok {
		return nil
	}
	session.Handshake = s.newHandshake(session.Cart)
	return session
}

func (s *SessionService) newHandshake(c *cart.Cart) *checkout.Handshake {
	// The shop's associate tag is settings-driven, with config as fallback.
	tag := s.store.GetSettings().AssociateTag
	if tag == "" {
		tag = s.config.Checkout.AssociateTag
	}

	return checkout.New(c, s.store, checkout.Options{
		Endpoint:      s.config.Checkout.MarketplaceEndpoint,
		AssociateTag:  tag,
		TransferDelay: s.config.Checkout.TransferDelay,
	})
}
