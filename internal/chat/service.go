package chat

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/time/rate"
)

var (
	ErrEmptyMessage = errors.New("message text is empty")
	ErrChatNotFound = errors.New("chat not found")
)

// Poll pacing. Each open conversation polls every 3 seconds; the shared
// limiter keeps several open conversations from stampeding the backend.
const (
	limitPoll = rate.Limit(2)
	burstPoll = 5
)

type Service struct {
	gw      Gateway
	limiter *rate.Limiter
}

func NewService(gw Gateway) *Service {
	return &Service{
		gw:      gw,
		limiter: rate.NewLimiter(limitPoll, burstPoll),
	}
}

// Chats lists the user's conversations.
func (s *Service) Chats(ctx context.Context) ([]Chat, error) {
	return s.gw.Chats(ctx)
}

// Find returns the conversation with the given id from the chat list,
// which is where the other participant's name comes from.
func (s *Service) Find(ctx context.Context, chatID int) (*Chat, error) {
	chats, err := s.gw.Chats(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range chats {
		if c.ID == chatID {
			return &c, nil
		}
	}
	return nil, ErrChatNotFound
}

// OpenForProduct starts (or resumes) a conversation with a product's seller.
func (s *Service) OpenForProduct(ctx context.Context, productID int) (*Chat, error) {
	return s.gw.OpenForProduct(ctx, productID)
}

// Messages fetches the current message list for a conversation.
func (s *Service) Messages(ctx context.Context, chatID int) ([]Message, error) {
	return s.gw.Messages(ctx, chatID)
}

// Send posts a message and returns the reloaded message list, so the
// sender sees their message with the backend's id and timestamp.
func (s *Service) Send(ctx context.Context, chatID int, text string) ([]Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	if err := s.gw.Send(ctx, chatID, text); err != nil {
		return nil, err
	}
	return s.gw.Messages(ctx, chatID)
}
