package chat

import (
	"context"
	"time"

	"turuplats-client/internal/logger"

	"go.uber.org/zap"
)

// Poller re-fetches a conversation's messages on a fixed interval for as
// long as the conversation is open. It is an explicit resource: Start
// acquires it, Stop releases it and waits for the goroutine to finish,
// so a closed conversation can never leak polling calls.
type Poller struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// StartPoller begins polling chatID every interval, delivering each
// fetched message list to onUpdate. The first fetch happens immediately.
// onUpdate is called from the polling goroutine.
func (s *Service) StartPoller(ctx context.Context, chatID int, interval time.Duration, onUpdate func([]Message)) *Poller {
	ctx, cancel := context.WithCancel(ctx)
	p := &Poller{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(p.done)

		s.poll(ctx, chatID, onUpdate)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.poll(ctx, chatID, onUpdate)
			}
		}
	}()

	return p
}

func (s *Service) poll(ctx context.Context, chatID int, onUpdate func([]Message)) {
	if err := s.limiter.Wait(ctx); err != nil {
		return
	}

	messages, err := s.gw.Messages(ctx, chatID)
	if err != nil {
		if ctx.Err() == nil {
			logger.FromCtx(ctx).Warn("chat poll failed",
				zap.Int("chat_id", chatID),
				zap.Error(err),
			)
		}
		return
	}
	onUpdate(messages)
}

// Stop cancels the poller and blocks until its goroutine has exited.
func (p *Poller) Stop() {
	p.cancel()
	<-p.done
}
