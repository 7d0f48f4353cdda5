//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for use-case tests.
// Transactions are serialized and run against a copy of the state that is
// committed only when the callback succeeds.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"bounce-booking/internal/domain/addon"
	"bounce-booking/internal/domain/availability"
	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/promo"
	"bounce-booking/internal/infra"
	"bounce-booking/internal/pkg/civil"
	"bounce-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type state struct {
	bookings map[uuid.UUID]*booking.Booking
	promos   map[uuid.UUID]*promo.PromoCode
	blocked  map[uuid.UUID]*availability.BlockedDate
	events   map[string]string
	addOns   []*addon.AddOn
}

func newState() *state {
	return &state{
		bookings: map[uuid.UUID]*booking.Booking{},
		promos:   map[uuid.UUID]*promo.PromoCode{},
		blocked:  map[uuid.UUID]*availability.BlockedDate{},
		events:   map[string]string{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for id, b := range s.bookings {
		c.bookings[id] = cloneBooking(b)
	}
	for id, p := range s.promos {
		c.promos[id] = p
	}
	for id, bd := range s.blocked {
		c.blocked[id] = bd
	}
	for id, t := range s.events {
		c.events[id] = t
	}
	c.addOns = append(c.addOns, s.addOns...)
	return c
}

type Store struct {
	mu    sync.Mutex
	state *state

	// FailReads makes every read return a storage failure.
	FailReads bool
}

func New() *Store {
	return &Store{state: newState()}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.state.clone()
	if err := fn(ctx, &tx{store: s, st: staged}); err != nil {
		return err
	}
	s.state = staged
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &lockedReads{store: s}
}

// Seeding and inspection helpers.

func (s *Store) PutBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.bookings[b.ID()] = cloneBooking(b)
}

func (s *Store) PutPromo(p *promo.PromoCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.promos[p.ID()] = p
}

func (s *Store) PutBlockedDate(bd *availability.BlockedDate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.blocked[bd.ID()] = bd
}

func (s *Store) PutAddOn(a *addon.AddOn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.addOns = append(s.state.addOns, a)
}

func (s *Store) Booking(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.state.bookings[id]
	if !ok {
		return nil, false
	}
	return cloneBooking(b), true
}

// Bookings returns every stored booking ordered by creation time.
func (s *Store) Bookings() []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*booking.Booking, 0, len(s.state.bookings))
	for _, b := range s.state.bookings {
		out = append(out, cloneBooking(b))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out
}

func (s *Store) Promo(id uuid.UUID) (*promo.PromoCode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.state.promos[id]
	return p, ok
}

func (s *Store) BlockedDateCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.blocked)
}

func (s *Store) WebhookEventCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.events)
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	return booking.ReconstructBooking(
		b.ID(),
		b.AssetID(),
		b.Customer(),
		b.Event(),
		b.Pricing(),
		b.Status(),
		b.PaymentStatus(),
		b.PaymentSessionID(),
		b.PaymentIntentID(),
		b.CreatedAt(),
		b.DepositPaidAt(),
		b.UpdatedAt(),
	)
}

var errReadFailure = infra.WrapRepoErr("memstore read failure", nil)

type lockedReads struct {
	store *Store
}

func (r *lockedReads) reads() (*reads, func()) {
	r.store.mu.Lock()
	return &reads{store: r.store, st: r.store.state}, r.store.mu.Unlock
}

func (r *lockedReads) BlockedDates(ctx context.Context, assetID string, from, to civil.Date) ([]*availability.BlockedDate, error) {
	rd, unlock := r.reads()
	defer unlock()
	return rd.BlockedDates(ctx, assetID, from, to)
}

func (r *lockedReads) Occupancy(ctx context.Context, assetID string, from, to civil.Date, pendingSince time.Time) ([]availability.Occupancy, error) {
	rd, unlock := r.reads()
	defer unlock()
	return rd.Occupancy(ctx, assetID, from, to, pendingSince)
}

func (r *lockedReads) PromoByCode(ctx context.Context, code promo.Code) (*promo.PromoCode, error) {
	rd, unlock := r.reads()
	defer unlock()
	return rd.PromoByCode(ctx, code)
}

func (r *lockedReads) ActiveAddOns(ctx context.Context) ([]*addon.AddOn, error) {
	rd, unlock := r.reads()
	defer unlock()
	return rd.ActiveAddOns(ctx)
}

func (r *lockedReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	rd, unlock := r.reads()
	defer unlock()
	return rd.BookingByID(ctx, id)
}

// reads works on a state the caller already holds the lock for.
type reads struct {
	store *Store
	st    *state
}

func (r *reads) BlockedDates(_ context.Context, assetID string, from, to civil.Date) ([]*availability.BlockedDate, error) {
	if r.store.FailReads {
		return nil, errReadFailure
	}
	var out []*availability.BlockedDate
	for _, bd := range r.st.blocked {
		if bd.Date().Before(from) || bd.Date().After(to) || !bd.AppliesTo(assetID) {
			continue
		}
		out = append(out, bd)
	}
	return out, nil
}

func (r *reads) Occupancy(_ context.Context, assetID string, from, to civil.Date, pendingSince time.Time) ([]availability.Occupancy, error) {
	if r.store.FailReads {
		return nil, errReadFailure
	}
	var out []availability.Occupancy
	for _, b := range r.st.bookings {
		d := b.Event().Date
		if b.AssetID() != assetID || d.Before(from) || d.After(to) {
			continue
		}
		confirmed := b.Status() == booking.StatusConfirmed
		fresh := b.Status() == booking.StatusPending && !b.CreatedAt().Before(pendingSince)
		if !confirmed && !fresh {
			continue
		}
		out = append(out, availability.Occupancy{
			Date:      d,
			AssetID:   b.AssetID(),
			Confirmed: confirmed,
			CreatedAt: b.CreatedAt(),
		})
	}
	return out, nil
}

func (r *reads) PromoByCode(_ context.Context, code promo.Code) (*promo.PromoCode, error) {
	if r.store.FailReads {
		return nil, errReadFailure
	}
	for _, p := range r.st.promos {
		if p.Code() == code {
			return p, nil
		}
	}
	return nil, infra.WrapRepoErr("promo code not found", nil, infra.KindNotFound)
}

func (r *reads) ActiveAddOns(context.Context) ([]*addon.AddOn, error) {
	if r.store.FailReads {
		return nil, errReadFailure
	}
	var out []*addon.AddOn
	for _, a := range r.st.addOns {
		if a.IsActive() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *reads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	if r.store.FailReads {
		return nil, errReadFailure
	}
	b, ok := r.st.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return cloneBooking(b), nil
}

type tx struct {
	store *Store
	st    *state
}

func (t *tx) Bookings() shared.BookingRepository         { return &bookingRepo{st: t.st} }
func (t *tx) Promos() shared.PromoRepository             { return &promoRepo{st: t.st} }
func (t *tx) BlockedDates() shared.BlockedDateRepository { return &blockedRepo{st: t.st} }
func (t *tx) WebhookEvents() shared.WebhookEventRepository {
	return &eventRepo{st: t.st}
}
func (t *tx) Reads() shared.CommandReads { return &reads{store: t.store, st: t.st} }

type bookingRepo struct {
	st *state
}

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if _, ok := r.st.bookings[b.ID()]; ok {
		return infra.WrapRepoErr("booking already exists", nil, infra.KindDuplicateKey)
	}
	r.st.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r *bookingRepo) LockByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.st.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return cloneBooking(b), nil
}

func (r *bookingRepo) AttachSession(_ context.Context, b *booking.Booking) error {
	cur, ok := r.st.bookings[b.ID()]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	if cur.PaymentSessionID() != nil {
		return nil
	}
	r.st.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r *bookingRepo) SaveTransition(_ context.Context, b *booking.Booking, from booking.Status) (bool, error) {
	cur, ok := r.st.bookings[b.ID()]
	if !ok || cur.Status() != from {
		return false, nil
	}
	r.st.bookings[b.ID()] = cloneBooking(b)
	return true, nil
}

func (r *bookingRepo) AbandonedPending(_ context.Context, createdBefore time.Time, limit int) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.st.bookings {
		if b.Status() == booking.StatusPending && b.PaymentSessionID() == nil && b.CreatedAt().Before(createdBefore) {
			out = append(out, cloneBooking(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type promoRepo struct {
	st *state
}

func (r *promoRepo) Redeem(_ context.Context, id uuid.UUID) (bool, error) {
	p, ok := r.st.promos[id]
	if !ok || !p.IsActive() || p.IsExhausted() {
		return false, nil
	}
	r.st.promos[id] = promo.ReconstructPromoCode(
		p.ID(), p.Code(), p.Discount(), p.Description(), p.MinOrderAmount(), p.MaxUses(),
		p.UsesCount()+1, p.ValidFrom(), p.ValidUntil(), p.IsActive(), p.CreatedAt(), time.Now(),
	)
	return true, nil
}

type blockedRepo struct {
	st *state
}

func (r *blockedRepo) Create(_ context.Context, bd *availability.BlockedDate) error {
	r.st.blocked[bd.ID()] = bd
	return nil
}

func (r *blockedRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.st.blocked[id]; !ok {
		return infra.WrapRepoErr("blocked date not found", nil, infra.KindNotFound)
	}
	delete(r.st.blocked, id)
	return nil
}

type eventRepo struct {
	st *state
}

func (r *eventRepo) Record(_ context.Context, eventID, eventType string, _ time.Time) (bool, error) {
	if _, ok := r.st.events[eventID]; ok {
		return false, nil
	}
	r.st.events[eventID] = eventType
	return true, nil
}
