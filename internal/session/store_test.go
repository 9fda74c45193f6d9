package session

import (
	"context"
	"errors"
	"testing"

	"turuplats-client/internal/rest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockGateway is a mock implementation of the Gateway interface
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Me(ctx context.Context) (*User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockGateway) Login(ctx context.Context, creds Credentials) error {
	args := m.Called(ctx, creds)
	return args.Error(0)
}

func (m *MockGateway) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGateway) Register(ctx context.Context, input RegisterInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func testUser() *User {
	return &User{ID: 7, UserName: "mari", Email: "mari@example.com", Roles: NewRoleSet("User")}
}

func TestStore_Bootstrap(t *testing.T) {
	t.Run("Authenticated", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Me", mock.Anything).Return(testUser(), nil)

		store := NewStore(gw)
		assert.True(t, store.Loading())

		store.Bootstrap(context.Background())

		assert.False(t, store.Loading())
		assert.True(t, store.Authenticated())
		assert.Equal(t, 7, store.Current().ID)
		gw.AssertExpectations(t)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Me", mock.Anything).Return(nil, rest.ErrUnauthenticated)

		store := NewStore(gw)
		store.Bootstrap(context.Background())

		assert.False(t, store.Loading())
		assert.Nil(t, store.Current())
	})

	t.Run("NetworkFailureLeavesAnonymous", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Me", mock.Anything).Return(nil, errors.New("connection refused")).Once()

		store := NewStore(gw)
		store.Bootstrap(context.Background())

		assert.False(t, store.Loading())
		assert.Nil(t, store.Current())
		// no automatic retry
		gw.AssertNumberOfCalls(t, "Me", 1)
	})
}

func TestStore_Login(t *testing.T) {
	creds := Credentials{Email: "mari@example.com", Password: "pw"}

	t.Run("Success", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Login", mock.Anything, creds).Return(nil)
		gw.On("Me", mock.Anything).Return(testUser(), nil)

		store := NewStore(gw)
		err := store.Login(context.Background(), creds)

		assert.NoError(t, err)
		assert.Equal(t, "mari", store.Current().UserName)
		// identity always comes from /api/users/me, not the login response
		gw.AssertCalled(t, "Me", mock.Anything)
	})

	t.Run("InvalidCredentials", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Login", mock.Anything, creds).Return(rest.ErrUnauthenticated)

		store := NewStore(gw)
		err := store.Login(context.Background(), creds)

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, store.Current())
		gw.AssertNotCalled(t, "Me", mock.Anything)
	})

	t.Run("MissingCredentials", func(t *testing.T) {
		gw := new(MockGateway)
		store := NewStore(gw)

		err := store.Login(context.Background(), Credentials{Email: "a@b.c"})
		assert.ErrorIs(t, err, ErrMissingCredentials)
		gw.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})

	t.Run("FailureLeavesUserUnchanged", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Me", mock.Anything).Return(testUser(), nil).Once()
		gw.On("Login", mock.Anything, creds).Return(errors.New("boom"))

		store := NewStore(gw)
		store.Bootstrap(context.Background())

		err := store.Login(context.Background(), creds)
		assert.Error(t, err)
		assert.Equal(t, 7, store.Current().ID)
	})
}

func TestStore_Logout(t *testing.T) {
	t.Run("ClearsUserEvenWhenCallFails", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Me", mock.Anything).Return(testUser(), nil)
		gw.On("Logout", mock.Anything).Return(errors.New("backend down"))

		store := NewStore(gw)
		store.Bootstrap(context.Background())
		assert.True(t, store.Authenticated())

		store.Logout(context.Background())
		assert.Nil(t, store.Current())
	})
}

func TestStore_Register(t *testing.T) {
	input := RegisterInput{Username: "mari", Email: "mari@example.com", Password: "pw"}

	t.Run("RegistersThenSignsIn", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Register", mock.Anything, input).Return(nil)
		gw.On("Login", mock.Anything, Credentials{Email: input.Email, Password: input.Password}).Return(nil)
		gw.On("Me", mock.Anything).Return(testUser(), nil)

		store := NewStore(gw)
		err := store.Register(context.Background(), input)

		assert.NoError(t, err)
		assert.True(t, store.Authenticated())
	})

	t.Run("MissingFields", func(t *testing.T) {
		gw := new(MockGateway)
		store := NewStore(gw)

		err := store.Register(context.Background(), RegisterInput{Email: "a@b.c"})
		assert.ErrorIs(t, err, ErrMissingFields)
		gw.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}

func TestRoleSet(t *testing.T) {
	user := &User{ID: 1, Roles: NewRoleSet("User", RoleAdmin)}

	assert.True(t, user.Roles.Has(RoleAdmin))
	assert.False(t, user.Roles.Has("Moderator"))
	assert.True(t, user.IsAdmin())

	var nobody *User
	assert.False(t, nobody.IsAdmin())
}

func TestRoleSet_JSON(t *testing.T) {
	var s RoleSet
	err := s.UnmarshalJSON([]byte(`["Admin","User"]`))
	assert.NoError(t, err)
	assert.True(t, s.Has("Admin"))

	out, err := s.MarshalJSON()
	assert.NoError(t, err)
	assert.JSONEq(t, `["Admin","User"]`, string(out))
}
