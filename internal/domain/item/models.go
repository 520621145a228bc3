package item

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrStoreUnavailable means the database could not be reached at all
	// (pool exhausted, connection refused, network failure).
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrQueryFailed means the database was reachable but rejected the
	// statement.
	ErrQueryFailed = errors.New("query failed")
)

// Risk levels derived from a risk score. See Classify.
const (
	RiskLevelLow    = "LOW"
	RiskLevelMedium = "MEDIUM"
	RiskLevelHigh   = "HIGH"
)

// Item is the client-facing representation. RiskScore and RiskLevel are
// recomputed from Name on every read and are never persisted, so a change
// to the classification rules takes effect without a data migration.
type Item struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	RiskScore int       `json:"risk_score"`
	RiskLevel string    `json:"risk_level"`
}

// Row is what the store actually holds for an item. created_at exists in
// the table for ordering but is never read back.
type Row struct {
	ID   uuid.UUID
	Name string
}

type CreateItemParams struct {
	Name string
}

func (p *CreateItemParams) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if len(p.Name) > 255 {
		return errors.New("name must be 255 characters or less")
	}
	return nil
}
