package response

import (
	"time"

	"bounce-booking/internal/domain/availability"
	"bounce-booking/internal/usecase/commands"
	"bounce-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type DayResponse struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
}

type DateAvailabilityResponse struct {
	DayResponse
	AssetID  string `json:"assetId"`
	Degraded bool   `json:"degraded,omitempty"`
}

type MonthAvailabilityResponse struct {
	AssetID  string        `json:"assetId"`
	Year     int           `json:"year"`
	Month    int           `json:"month"`
	Degraded bool          `json:"degraded"`
	Days     []DayResponse `json:"days"`
}

type PromoValidationResponse struct {
	Valid          bool     `json:"valid"`
	Code           string   `json:"code,omitempty"`
	DiscountType   string   `json:"discountType,omitempty"`
	DiscountValue  *float64 `json:"discountValue,omitempty"`
	DiscountAmount *float64 `json:"discountAmount,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Error          string   `json:"error,omitempty"`
}

type BlockedDateResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	AssetID   *string   `json:"assetId,omitempty"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

type BlockedDateListResponse struct {
	BlockedDates []*BlockedDateResponse `json:"blockedDates"`
}

type WebhookResponse struct {
	Received bool   `json:"received"`
	EventID  string `json:"eventId,omitempty"`
	Outcome  string `json:"outcome"`
}

func fromDay(d availability.Day) DayResponse {
	return DayResponse{
		Date:      d.Date.String(),
		Available: d.Available(),
		Status:    string(d.Status),
		Reason:    d.Reason,
	}
}

func FromDateAvailability(a *queries.DateAvailability) *DateAvailabilityResponse {
	return &DateAvailabilityResponse{DayResponse: fromDay(a.Day), AssetID: a.AssetID, Degraded: a.Degraded}
}

func FromMonthAvailability(m *queries.MonthAvailability) *MonthAvailabilityResponse {
	days := make([]DayResponse, 0, len(m.Days))
	for _, d := range m.Days {
		days = append(days, fromDay(d))
	}
	return &MonthAvailabilityResponse{
		AssetID:  m.AssetID,
		Year:     m.Year,
		Month:    int(m.Month),
		Degraded: m.Degraded,
		Days:     days,
	}
}

func FromPromoValidation(v *queries.PromoValidation) *PromoValidationResponse {
	if !v.Valid {
		return &PromoValidationResponse{Valid: false, Error: v.Error}
	}
	value := v.DiscountValue
	amount := v.DiscountAmount.Dollars()
	return &PromoValidationResponse{
		Valid:          true,
		Code:           v.Code,
		DiscountType:   string(v.DiscountType),
		DiscountValue:  &value,
		DiscountAmount: &amount,
		Description:    v.Description,
	}
}

func FromBlockedDate(b *availability.BlockedDate) *BlockedDateResponse {
	return &BlockedDateResponse{
		ID:        b.ID(),
		Date:      b.Date().String(),
		AssetID:   b.AssetID(),
		Reason:    b.Reason(),
		CreatedAt: b.CreatedAt(),
	}
}

func FromBlockedDateViews(views []*queries.BlockedDateView) *BlockedDateListResponse {
	out := make([]*BlockedDateResponse, 0, len(views))
	for _, v := range views {
		out = append(out, &BlockedDateResponse{
			ID:        v.ID,
			Date:      v.Date.String(),
			AssetID:   v.AssetID,
			Reason:    v.Reason,
			CreatedAt: v.CreatedAt,
		})
	}
	return &BlockedDateListResponse{BlockedDates: out}
}

func FromReconcileResult(r *commands.ReconcileResult) *WebhookResponse {
	return &WebhookResponse{Received: true, EventID: r.EventID, Outcome: string(r.Outcome)}
}
