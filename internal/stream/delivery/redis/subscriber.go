package redis

import (
	"context"
	"fmt"
)

func (s *subscriber) Start() error {
	ctx := context.Background()

	s.pubsub = s.redis.Subscribe(ctx, EventsChannel)

	// Wait for confirmation that the subscription is active.
	if _, err := s.pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	s.wg.Add(1)
	go s.listen(ctx)

	s.logger.Infof(ctx, "internal.stream.delivery.redis.Start: listening on %s", EventsChannel)
	return nil
}

func (s *subscriber) listen(ctx context.Context) {
	defer s.wg.Done()

	ch := s.pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				s.logger.Warnf(ctx, "internal.stream.delivery.redis.listen: pubsub channel closed")
				return
			}
			s.handleMessage(ctx, msg.Channel, []byte(msg.Payload))
		case <-s.quit:
			return
		}
	}
}

func (s *subscriber) Shutdown(ctx context.Context) error {
	s.once.Do(func() { close(s.quit) })
	if s.pubsub != nil {
		if err := s.pubsub.Close(); err != nil {
			s.logger.Errorf(ctx, "internal.stream.delivery.redis.Shutdown: close pubsub: %v", err)
		}
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Infof(ctx, "internal.stream.delivery.redis.Shutdown: stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
