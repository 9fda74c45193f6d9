package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockGateway is a mock implementation of the Gateway interface
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Chats(ctx context.Context) ([]Chat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Chat), args.Error(1)
}

func (m *MockGateway) Messages(ctx context.Context, chatID int) ([]Message, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Message), args.Error(1)
}

func (m *MockGateway) Send(ctx context.Context, chatID int, text string) error {
	args := m.Called(ctx, chatID, text)
	return args.Error(0)
}

func (m *MockGateway) OpenForProduct(ctx context.Context, productID int) (*Chat, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Chat), args.Error(1)
}

func TestService_Find(t *testing.T) {
	chats := []Chat{
		{ID: 1, OtherUser: Participant{ID: 2, UserName: "jaan"}},
		{ID: 4, OtherUser: Participant{ID: 9, UserName: "kati"}},
	}

	gw := new(MockGateway)
	gw.On("Chats", mock.Anything).Return(chats, nil)

	svc := NewService(gw)

	found, err := svc.Find(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "kati", found.OtherUser.UserName)

	_, err = svc.Find(context.Background(), 99)
	assert.ErrorIs(t, err, ErrChatNotFound)
}

func TestService_Send(t *testing.T) {
	t.Run("TrimsAndReloads", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Send", mock.Anything, 1, "tere").Return(nil)
		gw.On("Messages", mock.Anything, 1).Return([]Message{
			{ID: 10, ChatID: 1, SenderID: 7, Text: "tere"},
		}, nil)

		svc := NewService(gw)
		messages, err := svc.Send(context.Background(), 1, "  tere  ")

		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, "tere", messages[0].Text)
	})

	t.Run("EmptyMessageRejectedLocally", func(t *testing.T) {
		gw := new(MockGateway)
		svc := NewService(gw)

		_, err := svc.Send(context.Background(), 1, "   ")
		assert.ErrorIs(t, err, ErrEmptyMessage)
		gw.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_OpenForProduct(t *testing.T) {
	gw := new(MockGateway)
	gw.On("OpenForProduct", mock.Anything, 10).Return(&Chat{ID: 5, ProductID: 10}, nil)

	svc := NewService(gw)
	chat, err := svc.OpenForProduct(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, 5, chat.ID)
}
