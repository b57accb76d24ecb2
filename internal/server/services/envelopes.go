package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/common"
	"github.com/dmitrijs2005/eterbox/internal/cryptox"
	"github.com/dmitrijs2005/eterbox/internal/server/models"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// EnvelopeService stores vault envelopes. It only checks their framing; it
// has no key that could open them.
type EnvelopeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewEnvelopeService(db *sql.DB, m repomanager.RepositoryManager) *EnvelopeService {
	return &EnvelopeService{db: db, repomanager: m, now: time.Now}
}

func (s *EnvelopeService) List(ctx context.Context, userID string) ([]*models.VaultEnvelope, error) {
	return s.repomanager.Envelopes(s.db).ListByUser(ctx, userID)
}

// Save creates or overwrites an envelope. It must be sealed under the
// user's current key generation, so a stale client cannot write envelopes
// a rekey would miss. The repository checks the generation in the same
// statement that writes the row.
func (s *EnvelopeService) Save(ctx context.Context, userID string, e *models.VaultEnvelope) (*models.VaultEnvelope, error) {
	if _, err := cryptox.ParseEnvelope(e.Payload); err != nil {
		return nil, fmt.Errorf("%w: malformed envelope", common.ErrorValidation)
	}

	out := *e
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	out.UserID = userID
	out.UpdatedAt = s.now()

	if err := s.repomanager.Envelopes(s.db).Upsert(ctx, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *EnvelopeService) Delete(ctx context.Context, userID, id string) error {
	return s.repomanager.Envelopes(s.db).Delete(ctx, userID, id)
}
