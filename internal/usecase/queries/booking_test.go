//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"bounce-booking/internal/infra"
	"bounce-booking/internal/pkg/civil"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/usecase/queries"
	"bounce-booking/tests/common/builder"
	queriesmock "bounce-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func listItems(n int) []*queries.BookingListItem {
	items := make([]*queries.BookingListItem, 0, n)
	for i := range n {
		items = append(items, builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.CreatedAt = testNow.Add(-time.Duration(i) * time.Minute)
		}).BuildListItem())
	}
	return items
}

func TestBookingQueries_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	q := queries.NewBookingQueries(store)
	view := builder.NewBookingBuilder().BuildView()

	store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)
	got, err := q.GetByID(context.Background(), view.ID)
	require.NoError(t, err)
	assert.Equal(t, view, got)

	missing := uuid.New()
	store.EXPECT().FindByID(gomock.Any(), missing).
		Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)).Times(1)
	_, err = q.GetByID(context.Background(), missing)
	assert.True(t, errs.Is(err, queries.ErrBookingNotFound))
}

func TestBookingQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("first page returns a cursor when more rows exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		rows := listItems(3)
		store.EXPECT().ListFirstPage(gomock.Any(), queries.BookingFilter{}, int32(3)).Return(rows, nil).Times(1)

		got, next, err := queries.NewBookingQueries(store).List(ctx, queries.BookingFilter{}, nil, 2)
		require.NoError(t, err)

		assert.Len(t, got, 2)
		require.NotNil(t, next)
		createdAt, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.Equal(t, rows[1].CreatedAt.UnixMicro(), createdAt.UnixMicro())
	})

	t.Run("keyset page without further rows has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		last := listItems(1)[0]
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(last.CreatedAt, last.ID)}

		store.EXPECT().ListKeyset(gomock.Any(), gomock.Any(), gomock.Any(), last.ID, int32(queries.DefaultListLimit+1)).
			Return(listItems(1), nil).Times(1)

		got, next, err := queries.NewBookingQueries(store).List(ctx, queries.BookingFilter{}, cursor, 0)
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("limit is capped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().ListFirstPage(gomock.Any(), gomock.Any(), int32(queries.MaxListLimit+1)).Return(nil, nil).Times(1)

		_, _, err := queries.NewBookingQueries(store).List(ctx, queries.BookingFilter{}, nil, 10_000)
		require.NoError(t, err)
	})

	t.Run("rejects bad input before touching storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewBookingQueries(queriesmock.NewMockBookingReadStore(ctrl))

		_, _, err := q.List(ctx, queries.BookingFilter{}, &queries.Cursor{After: "not-a-cursor"}, 10)
		assert.True(t, errs.Is(err, queries.ErrInvalidCursor))

		from := civil.New(2030, time.July, 2)
		to := civil.New(2030, time.July, 1)
		_, _, err = q.List(ctx, queries.BookingFilter{From: &from, To: &to}, nil, 10)
		assert.True(t, errs.Is(err, queries.ErrInvalidRange))
	})
}

func TestBlockedDateQueries_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBlockedDateReadStore(ctrl)
	q := queries.NewBlockedDateQueries(store)

	from := civil.New(2030, time.July, 1)
	to := civil.New(2030, time.July, 31)
	store.EXPECT().List(gomock.Any(), &from, &to, (*string)(nil)).Return([]*queries.BlockedDateView{}, nil).Times(1)

	got, err := q.List(context.Background(), &from, &to, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = q.List(context.Background(), &to, &from, nil)
	assert.True(t, errs.Is(err, queries.ErrInvalidRange))
}
