package item

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// MaxListLimit caps how many items a single list call returns.
const MaxListLimit = 100

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List reads the newest MaxListLimit items and computes the derived risk
// fields for each. A store failure is returned as an error, never as an
// empty result.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	rows, err := s.repo.List(ctx, MaxListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		score, level := Classify(row.Name)
		items = append(items, Item{
			ID:        row.ID,
			Name:      row.Name,
			RiskScore: score,
			RiskLevel: level,
		})
	}
	return items, nil
}

// Create generates a random 128-bit id, persists (id, name), and returns
// the full item with derived fields. Concurrent creates with the same name
// are independent inserts; there is no uniqueness constraint or dedup.
// On insert failure the generated id is discarded, never returned.
func (s *Service) Create(ctx context.Context, params CreateItemParams) (*Item, error) {
	id := uuid.New()

	if err := s.repo.Insert(ctx, id, params.Name); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	score, level := Classify(params.Name)
	return &Item{
		ID:        id,
		Name:      params.Name,
		RiskScore: score,
		RiskLevel: level,
	}, nil
}
