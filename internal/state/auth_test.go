package state

import (
	"context"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/jobscout/jobscout/internal/entities"
	"github.com/jobscout/jobscout/internal/events"
	"github.com/jobscout/jobscout/internal/services"
	"github.com/jobscout/jobscout/internal/store"
	"github.com/stretchr/testify/assert"
)

func demoCredentials() services.Credentials {
	return services.Credentials{Email: "demo@example.com", Password: "password123"}
}

func Test_AuthSlice_LoginSuccessPersistsSession(t *testing.T) {

	assert := assert.New(t)
	kv := newMemoryStore()
	slice := NewAuthSlice(services.NewAuthService(), kv, EventBus.New())

	err := slice.Login(context.Background(), demoCredentials())
	assert.NoError(err)

	st := slice.State()
	assert.True(st.IsAuthenticated())
	assert.False(st.IsLoading)
	assert.Equal("Demo User", st.User.Username)

	token, _ := kv.Get(context.Background(), store.KeyUserToken)
	assert.NotEmpty(token)
	userData, _ := kv.Get(context.Background(), store.KeyUserData)
	assert.NotEmpty(userData)
}

func Test_AuthSlice_LoginFailureClearsState(t *testing.T) {

	assert := assert.New(t)
	kv := newMemoryStore()
	slice := NewAuthSlice(services.NewAuthService(), kv, EventBus.New())

	err := slice.Login(context.Background(), services.Credentials{
		Email:    "demo@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(err, entities.ErrInvalidCredentials)

	st := slice.State()
	assert.False(st.IsAuthenticated())
	assert.Nil(st.User)
	assert.Empty(st.Token)
	assert.False(st.IsLoading)

	token, _ := kv.Get(context.Background(), store.KeyUserToken)
	assert.Nil(token)
}

func Test_AuthSlice_LoginSurvivesStorageWriteFailure(t *testing.T) {

	assert := assert.New(t)
	kv := newMemoryStore()
	kv.failSet = true
	slice := NewAuthSlice(services.NewAuthService(), kv, EventBus.New())

	err := slice.Login(context.Background(), demoCredentials())

	var storageErr *entities.StorageError
	assert.ErrorAs(err, &storageErr)
	// the session is live for this run even though it is not durable
	assert.True(slice.State().IsAuthenticated())
}

func Test_AuthSlice_RegisterShortPasswordLeavesStateUnchanged(t *testing.T) {

	assert := assert.New(t)
	kv := newMemoryStore()
	slice := NewAuthSlice(services.NewAuthService(), kv, EventBus.New())

	err := slice.Register(context.Background(), services.Registration{
		Username:        "newuser",
		Email:           "new@example.com",
		Password:        "abc",
		ConfirmPassword: "abc",
	})

	var validationErr *entities.ValidationError
	assert.ErrorAs(err, &validationErr)
	assert.False(slice.State().IsAuthenticated())
	assert.Empty(kv.values)
}

func Test_AuthSlice_LogoutClearsStoreAndPublishes(t *testing.T) {

	assert := assert.New(t)
	kv := newMemoryStore()
	bus := EventBus.New()
	slice := NewAuthSlice(services.NewAuthService(), kv, bus)

	var loggedOut []events.UserLoggedOut
	err := bus.Subscribe(events.UserLoggedOutTopic, func(event events.UserLoggedOut) {
		loggedOut = append(loggedOut, event)
	})
	assert.NoError(err)

	assert.NoError(slice.Login(context.Background(), demoCredentials()))
	_ = kv.Set(context.Background(), store.KeySavedJobs, []byte("[]"))
	_ = kv.Set(context.Background(), store.KeyRecentlyViewed, []byte("[]"))

	assert.NoError(slice.Logout(context.Background()))

	st := slice.State()
	assert.False(st.IsAuthenticated())
	assert.Nil(st.User)

	for _, key := range []string{store.KeyUserToken, store.KeyUserData, store.KeySavedJobs, store.KeyRecentlyViewed} {
		value, _ := kv.Get(context.Background(), key)
		assert.Nil(value, "key %s should be removed", key)
	}

	assert.Len(loggedOut, 1)
	assert.Equal("1", loggedOut[0].UserID)
}

func Test_AuthSlice_RehydrateRestoresStoredSession(t *testing.T) {

	assert := assert.New(t)
	kv := newMemoryStore()
	_ = kv.Set(context.Background(), store.KeyUserToken, []byte("stored-token"))
	_ = kv.Set(context.Background(), store.KeyUserData, []byte(`{"id":"1","username":"Demo User","email":"demo@example.com","skills":[],"experience":"5+ years"}`))

	slice := NewAuthSlice(services.NewAuthService(), kv, EventBus.New())
	assert.NoError(slice.Rehydrate(context.Background()))

	st := slice.State()
	assert.True(st.IsAuthenticated())
	assert.Equal("stored-token", st.Token)
	assert.Equal("Demo User", st.User.Username)
}

func Test_AuthSlice_RehydrateWithMissingTokenStaysLoggedOut(t *testing.T) {

	kv := newMemoryStore()
	slice := NewAuthSlice(services.NewAuthService(), kv, EventBus.New())

	assert.NoError(t, slice.Rehydrate(context.Background()))
	assert.False(t, slice.State().IsAuthenticated())
}

func Test_AuthSlice_RehydrateWithCorruptUserStaysLoggedOut(t *testing.T) {

	kv := newMemoryStore()
	_ = kv.Set(context.Background(), store.KeyUserToken, []byte("stored-token"))
	_ = kv.Set(context.Background(), store.KeyUserData, []byte("{not json"))

	slice := NewAuthSlice(services.NewAuthService(), kv, EventBus.New())

	assert.NoError(t, slice.Rehydrate(context.Background()))
	assert.False(t, slice.State().IsAuthenticated())
}

func Test_AuthSlice_UpdateProfileCommitsAndPersists(t *testing.T) {

	assert := assert.New(t)
	kv := newMemoryStore()
	slice := NewAuthSlice(services.NewAuthService(), kv, EventBus.New())

	assert.NoError(slice.Login(context.Background(), demoCredentials()))
	assert.NoError(slice.UpdateProfile(context.Background(), entities.User{Username: "Renamed"}))

	st := slice.State()
	assert.Equal("Renamed", st.User.Username)

	userData, _ := kv.Get(context.Background(), store.KeyUserData)
	assert.Contains(string(userData), "Renamed")
}
