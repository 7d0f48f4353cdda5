package availability

import (
	"errors"
	"strings"
	"time"

	"bounce-booking/internal/pkg/civil"

	"github.com/google/uuid"
)

var (
	ErrBlockedDateRequired = errors.New("blocked date is required")
	ErrReasonTooLong       = errors.New("reason must be 200 characters or fewer")
)

const MaxReasonLength = 200

// BlockedDate excludes a calendar day. A nil asset applies to every asset.
type BlockedDate struct {
	id        uuid.UUID
	date      civil.Date
	assetID   *string
	reason    string
	createdAt time.Time
}

func NewBlockedDate(date civil.Date, assetID *string, reason string, now time.Time) (*BlockedDate, error) {
	if date.IsZero() {
		return nil, ErrBlockedDateRequired
	}
	reason = strings.TrimSpace(reason)
	if len([]rune(reason)) > MaxReasonLength {
		return nil, ErrReasonTooLong
	}
	if assetID != nil {
		trimmed := strings.TrimSpace(*assetID)
		if trimmed == "" {
			assetID = nil
		} else {
			assetID = &trimmed
		}
	}
	return &BlockedDate{
		id:        uuid.New(),
		date:      date,
		assetID:   assetID,
		reason:    reason,
		createdAt: now,
	}, nil
}

func ReconstructBlockedDate(id uuid.UUID, date civil.Date, assetID *string, reason string, createdAt time.Time) *BlockedDate {
	return &BlockedDate{
		id:        id,
		date:      date,
		assetID:   assetID,
		reason:    reason,
		createdAt: createdAt,
	}
}

func (b *BlockedDate) AppliesTo(assetID string) bool {
	return b.assetID == nil || *b.assetID == assetID
}

// DisplayReason falls back to a generic message when no reason was recorded.
func (b *BlockedDate) DisplayReason() string {
	if b.reason == "" {
		return ReasonUnavailable
	}
	return b.reason
}

func (b *BlockedDate) ID() uuid.UUID        { return b.id }
func (b *BlockedDate) Date() civil.Date     { return b.date }
func (b *BlockedDate) AssetID() *string     { return b.assetID }
func (b *BlockedDate) Reason() string       { return b.reason }
func (b *BlockedDate) CreatedAt() time.Time { return b.createdAt }
