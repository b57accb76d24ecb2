package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/client/client"
	"github.com/dmitrijs2005/eterbox/internal/client/vault"
	"github.com/google/uuid"
)

// Entry is the cleartext listing row. Only the item itself is sealed.
type Entry struct {
	ID            string
	Name          string
	URL           string
	KeyGeneration int
	UpdatedAt     time.Time
}

type VaultService interface {
	List(ctx context.Context) ([]Entry, error)
	Add(ctx context.Context, name, url string, item *vault.Item) (string, error)
	Show(ctx context.Context, id string) (*Entry, *vault.Item, error)
	Delete(ctx context.Context, id string) error
}

type vaultService struct {
	client client.Client
	auth   AuthService
}

func NewVaultService(c client.Client, auth AuthService) VaultService {
	return &vaultService{client: c, auth: auth}
}

func (s *vaultService) List(ctx context.Context) ([]Entry, error) {
	if s.auth.Session() == nil {
		return nil, ErrNotLoggedIn
	}
	envs, err := s.client.ListEnvelopes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list envelopes error: %w", err)
	}
	out := make([]Entry, 0, len(envs))
	for _, e := range envs {
		out = append(out, toEntry(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *vaultService) Add(ctx context.Context, name, url string, item *vault.Item) (string, error) {
	sess := s.auth.Session()
	if sess == nil {
		return "", ErrNotLoggedIn
	}
	id := uuid.NewString()
	payload, err := sess.keys.Seal(id, item)
	if err != nil {
		return "", fmt.Errorf("encryption error: %w", err)
	}
	saved, err := s.client.SaveEnvelope(ctx, client.Envelope{
		ID:            id,
		DisplayName:   name,
		URL:           url,
		Payload:       payload,
		KeyGeneration: sess.KeyGeneration,
	})
	if err != nil {
		return "", fmt.Errorf("saving error: %w", err)
	}
	return saved.ID, nil
}

// Show decrypts one item. A payload that fails to open is reported, never
// returned half-decoded.
func (s *vaultService) Show(ctx context.Context, id string) (*Entry, *vault.Item, error) {
	sess := s.auth.Session()
	if sess == nil {
		return nil, nil, ErrNotLoggedIn
	}
	envs, err := s.client.ListEnvelopes(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list envelopes error: %w", err)
	}
	for _, e := range envs {
		if e.ID != id {
			continue
		}
		item, err := sess.keys.Open(e.ID, e.Payload)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", id, err)
		}
		entry := toEntry(e)
		return &entry, item, nil
	}
	return nil, nil, client.ErrNotFound
}

func (s *vaultService) Delete(ctx context.Context, id string) error {
	if s.auth.Session() == nil {
		return ErrNotLoggedIn
	}
	return s.client.DeleteEnvelope(ctx, id)
}

func toEntry(e client.Envelope) Entry {
	return Entry{ID: e.ID, Name: e.DisplayName, URL: e.URL, KeyGeneration: e.KeyGeneration, UpdatedAt: e.UpdatedAt}
}
