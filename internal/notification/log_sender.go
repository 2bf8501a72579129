package notification

import (
	"context"

	"go.uber.org/zap"
)

// LogSender only records that a message would have been sent. Bodies are not
// logged because invite emails carry a plaintext password.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	if logger == nil {
		logger = zap.L()
	}
	return &LogSender{logger: logger.Named("notification.log_sender")}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.logger.Info("email dispatched",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("body_bytes", len(msg.HTMLBody)),
	)
	return nil
}
