package session

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/threadline-co/threadline-backend/internal/storage"
	pkgerrors "github.com/threadline-co/threadline-backend/pkg/errors"
)

// Identity is the logged-in shopper. There is no credential store; any
// submitted identity is accepted as-is.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionDTO is the persisted and returned session shape.
type SessionDTO struct {
	User       *Identity `json:"user"`
	IsLoggedIn bool      `json:"is_logged_in"`
}

// SnapshotStore is the persistence surface the session writes through to.
type SnapshotStore interface {
	Load(ctx context.Context, clientID, name string) ([]byte, bool, error)
	Save(ctx context.Context, clientID, name string, payload []byte) error
}

// Service holds the per-client mock session.
type Service interface {
	Get(ctx context.Context, clientID string) (SessionDTO, error)
	Login(ctx context.Context, clientID string, identity Identity) (SessionDTO, error)
	Logout(ctx context.Context, clientID string) (SessionDTO, error)
}

type service struct {
	mu       sync.Mutex
	store    SnapshotStore
	sessions map[string]*SessionDTO
}

// NewService builds a session service persisting through the given store.
func NewService(store SnapshotStore) (Service, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "snapshot store is required")
	}
	return &service{
		store:    store,
		sessions: map[string]*SessionDTO{},
	}, nil
}

// Get returns the session, restoring persisted identity on first touch.
func (s *service) Get(ctx context.Context, clientID string) (SessionDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionFor(ctx, clientID)
	if err != nil {
		return SessionDTO{}, err
	}
	return *sess, nil
}

// Login unconditionally replaces the session with the given identity.
// A blank id is minted fresh; a blank name falls back to the email's
// local part.
func (s *service) Login(ctx context.Context, clientID string, identity Identity) (SessionDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionFor(ctx, clientID)
	if err != nil {
		return SessionDTO{}, err
	}

	if identity.ID == "" {
		identity.ID = uuid.NewString()
	}
	if identity.Name == "" {
		identity.Name = localPart(identity.Email)
	}

	sess.User = &identity
	sess.IsLoggedIn = true

	if err := s.persist(ctx, clientID, sess); err != nil {
		return SessionDTO{}, err
	}
	return *sess, nil
}

// Logout clears the identity and marks the session logged out.
func (s *service) Logout(ctx context.Context, clientID string) (SessionDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionFor(ctx, clientID)
	if err != nil {
		return SessionDTO{}, err
	}

	sess.User = nil
	sess.IsLoggedIn = false

	if err := s.persist(ctx, clientID, sess); err != nil {
		return SessionDTO{}, err
	}
	return *sess, nil
}

func (s *service) sessionFor(ctx context.Context, clientID string) (*SessionDTO, error) {
	if sess, ok := s.sessions[clientID]; ok {
		return sess, nil
	}

	sess := &SessionDTO{}
	payload, found, err := s.store.Load(ctx, clientID, storage.UserRecordName)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load session snapshot")
	}
	if found {
		var snap SessionDTO
		if err := json.Unmarshal(payload, &snap); err == nil {
			sess = &snap
		}
	}

	s.sessions[clientID] = sess
	return sess, nil
}

func (s *service) persist(ctx context.Context, clientID string, sess *SessionDTO) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode session snapshot")
	}
	if err := s.store.Save(ctx, clientID, storage.UserRecordName, payload); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save session snapshot")
	}
	return nil
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
