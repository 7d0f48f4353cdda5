package queries

//go:generate mockgen -source=promo.go -destination=../../../tests/mock/queries/promo.go -package=queriesmock

import (
	"context"
	"time"

	"bounce-booking/internal/domain/money"
	"bounce-booking/internal/domain/promo"
	"bounce-booking/internal/infra"
	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/usecase/shared"
)

type PromoQueries interface {
	// Validate never fails for an unusable code; the verdict carries the
	// customer-facing reason instead. Errors are storage failures only.
	Validate(ctx context.Context, code string, orderAmount money.Cents) (*PromoValidation, error)
}

type promoQueriesImpl struct {
	reads shared.PromoReader
	clock clock.Clock
}

func NewPromoQueries(reads shared.PromoReader, clk clock.Clock) PromoQueries {
	return &promoQueriesImpl{reads: reads, clock: clk}
}

func (q *promoQueriesImpl) Validate(ctx context.Context, code string, orderAmount money.Cents) (*PromoValidation, error) {
	normalized := promo.NormalizeCode(code)
	if normalized == "" {
		return invalidPromo(promo.ErrNotFound), nil
	}

	p, err := q.reads.PromoByCode(ctx, normalized)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return invalidPromo(promo.ErrNotFound), nil
		}
		return nil, err
	}

	v, _ := CheckPromo(p, q.clock.Now(), orderAmount)
	return &v, nil
}

// CheckPromo evaluates a loaded promo against an order. The returned error is
// the rule that failed, nil when the code applies.
func CheckPromo(p *promo.PromoCode, now time.Time, orderAmount money.Cents) (PromoValidation, error) {
	if p == nil {
		return *invalidPromo(promo.ErrNotFound), promo.ErrNotFound
	}
	if err := p.Validate(now, orderAmount); err != nil {
		return *invalidPromo(err), err
	}

	d := p.Discount()
	return PromoValidation{
		Valid:          true,
		Code:           p.Code().String(),
		DiscountType:   d.Type(),
		DiscountValue:  d.Value(),
		DiscountAmount: p.DiscountFor(orderAmount),
		Description:    p.Description(),
	}, nil
}

func invalidPromo(err error) *PromoValidation {
	return &PromoValidation{Valid: false, Error: promo.Message(err)}
}
