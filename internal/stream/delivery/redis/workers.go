package redis

import "context"

func (s *subscriber) handleMessage(ctx context.Context, channel string, payload []byte) {
	if err := s.uc.RelayEvent(ctx, payload); err != nil {
		s.logger.Warnf(ctx, "internal.stream.delivery.redis.handleMessage: channel=%s err=%v", channel, err)
	}
}
