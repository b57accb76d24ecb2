package services

import (
	"context"

	"github.com/dmitrijs2005/eterbox/internal/logging"
	"github.com/dmitrijs2005/eterbox/internal/server/models"
)

// Notifier tells a user about security-relevant account changes.
type Notifier interface {
	PasswordChanged(ctx context.Context, user *models.User) error
}

// LogNotifier records notifications in the server log. Delivery by mail is
// left to a deployment-specific Notifier.
type LogNotifier struct {
	log logging.Logger
}

func NewLogNotifier(l logging.Logger) *LogNotifier {
	return &LogNotifier{log: l.With("module", "notifier")}
}

func (n *LogNotifier) PasswordChanged(ctx context.Context, user *models.User) error {
	n.log.Info(ctx, "password changed notification", "user_id", user.ID, "email", user.Email)
	return nil
}
