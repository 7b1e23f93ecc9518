package state

import (
	"context"
	"encoding/json"

	"github.com/asaskevich/EventBus"
	"github.com/jobscout/jobscout/internal/entities"
	"github.com/jobscout/jobscout/internal/events"
	"github.com/jobscout/jobscout/internal/logger"
	"github.com/jobscout/jobscout/internal/services"
	"github.com/jobscout/jobscout/internal/store"
	log "github.com/sirupsen/logrus"
	"sync"
)

// AuthState is the committed authentication state. IsAuthenticated is
// derived, never stored: user and token are set and cleared together.
type AuthState struct {
	User      *entities.User
	Token     string
	IsLoading bool
}

func (s AuthState) IsAuthenticated() bool {
	return s.User != nil && s.Token != ""
}

func reduceAuthPending(st AuthState) AuthState {
	st.IsLoading = true
	return st
}

func reduceAuthSuccess(st AuthState, user entities.User, token string) AuthState {
	st.IsLoading = false
	st.User = &user
	st.Token = token
	return st
}

func reduceAuthFailure(st AuthState) AuthState {
	st.IsLoading = false
	st.User = nil
	st.Token = ""
	return st
}

func reduceUserUpdated(st AuthState, user entities.User) AuthState {
	st.User = &user
	return st
}

type authService interface {
	Login(ctx context.Context, credentials services.Credentials) (services.Session, error)
	Register(ctx context.Context, registration services.Registration) (services.Session, error)
	UpdateProfile(ctx context.Context, partial entities.User) (entities.User, error)
}

// AuthSlice serializes all auth transitions through its mutex; service
// and storage calls happen outside the lock, reducers commit inside it.
type AuthSlice struct {
	mu    sync.Mutex
	state AuthState
	auth  authService
	store store.Store
	bus   EventBus.Bus
}

func NewAuthSlice(auth authService, kv store.Store, bus EventBus.Bus) *AuthSlice {
	return &AuthSlice{auth: auth, store: kv, bus: bus}
}

func (s *AuthSlice) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *AuthSlice) commit(reduce func(AuthState) AuthState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduce(s.state)
}

// Login commits the session before persisting it: a failed storage write
// leaves the user logged in for this run and surfaces a StorageError.
func (s *AuthSlice) Login(ctx context.Context, credentials services.Credentials) error {

	s.commit(reduceAuthPending)

	session, err := s.auth.Login(ctx, credentials)
	if err != nil {
		s.commit(reduceAuthFailure)
		return err
	}

	s.commit(func(st AuthState) AuthState {
		return reduceAuthSuccess(st, session.User, session.Token)
	})

	return s.persistSession(ctx, session)
}

func (s *AuthSlice) Register(ctx context.Context, registration services.Registration) error {

	s.commit(reduceAuthPending)

	session, err := s.auth.Register(ctx, registration)
	if err != nil {
		s.commit(reduceAuthFailure)
		return err
	}

	s.commit(func(st AuthState) AuthState {
		return reduceAuthSuccess(st, session.User, session.Token)
	})

	return s.persistSession(ctx, session)
}

// Logout clears the committed state first, then the store; the session
// entries and per-user job lists are removed together.
func (s *AuthSlice) Logout(ctx context.Context) error {

	var userID string
	if st := s.State(); st.User != nil {
		userID = st.User.ID
	}

	s.commit(reduceAuthFailure)
	s.bus.Publish(events.UserLoggedOutTopic, events.UserLoggedOut{UserID: userID})

	err := s.store.Remove(ctx,
		store.KeyUserToken, store.KeyUserData, store.KeySavedJobs, store.KeyRecentlyViewed)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStorage).
			Errorf("failed to clear stored session: %v", err)
		return &entities.StorageError{Op: "remove", Key: store.KeyUserToken, Err: err}
	}
	return nil
}

// Rehydrate restores a stored session at app start. Absent or malformed
// entries keep the slice logged out without an error.
func (s *AuthSlice) Rehydrate(ctx context.Context) error {

	s.commit(reduceAuthPending)

	token, err := s.store.Get(ctx, store.KeyUserToken)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStorage).
			Errorf("failed to read stored token: %v", err)
	}
	userData, err := s.store.Get(ctx, store.KeyUserData)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStorage).
			Errorf("failed to read stored user: %v", err)
	}

	if len(token) == 0 || len(userData) == 0 {
		s.commit(reduceAuthFailure)
		return nil
	}

	var user entities.User
	if err = json.Unmarshal(userData, &user); err != nil {
		log.Errorf("failed to parse stored user, staying logged out: %v", err)
		s.commit(reduceAuthFailure)
		return nil
	}

	s.commit(func(st AuthState) AuthState {
		return reduceAuthSuccess(st, user, string(token))
	})
	return nil
}

func (s *AuthSlice) UpdateProfile(ctx context.Context, partial entities.User) error {

	user, err := s.auth.UpdateProfile(ctx, partial)
	if err != nil {
		return err
	}

	s.commit(func(st AuthState) AuthState {
		return reduceUserUpdated(st, user)
	})

	encoded, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err = s.store.Set(ctx, store.KeyUserData, encoded); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStorage).
			Errorf("failed to persist updated user: %v", err)
		return &entities.StorageError{Op: "set", Key: store.KeyUserData, Err: err}
	}
	return nil
}

func (s *AuthSlice) persistSession(ctx context.Context, session services.Session) error {

	if err := s.store.Set(ctx, store.KeyUserToken, []byte(session.Token)); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStorage).
			Errorf("failed to persist token: %v", err)
		return &entities.StorageError{Op: "set", Key: store.KeyUserToken, Err: err}
	}

	encoded, err := json.Marshal(session.User)
	if err != nil {
		return err
	}
	if err = s.store.Set(ctx, store.KeyUserData, encoded); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStorage).
			Errorf("failed to persist user: %v", err)
		return &entities.StorageError{Op: "set", Key: store.KeyUserData, Err: err}
	}
	return nil
}
