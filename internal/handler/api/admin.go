package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"bounce-booking/internal/domain/booking"
	reqdto "bounce-booking/internal/handler/dto/request"
	resdto "bounce-booking/internal/handler/dto/response"
	"bounce-booking/internal/handler/httperr"
	"bounce-booking/internal/pkg/civil"
	"bounce-booking/internal/usecase/commands"
	"bounce-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errInvalidQuery = errors.New("invalid query parameter")

type AdminHandler struct {
	cmds     commands.AdminCommands
	bookings queries.BookingQueries
	blocked  queries.BlockedDateQueries
}

func NewAdminHandler(cmds commands.AdminCommands, bookings queries.BookingQueries, blocked queries.BlockedDateQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, bookings: bookings, blocked: blocked}
}

// @Summary List bookings
// @Description Newest first, keyset paginated
// @Tags admin
// @Produce json
// @Security AdminToken
// @Param status query string false "pending|confirmed|cancelled|completed"
// @Param assetId query string false "Asset ID"
// @Param from query string false "Event date lower bound (YYYY-MM-DD)"
// @Param to query string false "Event date upper bound (YYYY-MM-DD)"
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size (default 50, max 200)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	filter, ok := bookingFilter(c)
	if !ok {
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.bookings.List(c.Request.Context(), filter, cursor, limit)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items, next))
}

func bookingFilter(c *gin.Context) (queries.BookingFilter, bool) {
	var f queries.BookingFilter
	if raw := c.Query("status"); raw != "" {
		st, ok := booking.ParseStatus(raw)
		if !ok {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidQuery, "Invalid status", map[string]string{"status": "must be one of: pending confirmed cancelled completed"})
			return f, false
		}
		f.Status = &st
	}
	if raw := c.Query("assetId"); raw != "" {
		f.AssetID = &raw
	}
	var ok bool
	if f.From, ok = queryDate(c, "from"); !ok {
		return f, false
	}
	if f.To, ok = queryDate(c, "to"); !ok {
		return f, false
	}
	return f, true
}

func queryDate(c *gin.Context, name string) (*civil.Date, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	d, err := civil.Parse(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", map[string]string{name: "must be a date formatted as YYYY-MM-DD"})
		return nil, false
	}
	return &d, true
}

// @Summary Get booking
// @Tags admin
// @Produce json
// @Security AdminToken
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [get]
func (h *AdminHandler) GetBooking(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Complete booking
// @Description Confirmed → completed. Repeating the call is a no-op.
// @Tags admin
// @Produce json
// @Security AdminToken
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/complete [post]
func (h *AdminHandler) CompleteBooking(c *gin.Context) {
	h.transition(c, h.cmds.CompleteBooking)
}

// @Summary Cancel booking
// @Description Pending or confirmed → cancelled. Repeating the call is a no-op.
// @Tags admin
// @Produce json
// @Security AdminToken
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/cancel [post]
func (h *AdminHandler) CancelBooking(c *gin.Context) {
	h.transition(c, h.cmds.CancelBooking)
}

func (h *AdminHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*commands.TransitionResult, error)) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	result, err := fn(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransition(result))
}

// @Summary Block a date
// @Description Without assetId the block applies to every asset
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param request body reqdto.CreateBlockedDateRequest true "Blocked date"
// @Success 201 {object} resdto.BlockedDateResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/blocked-dates [post]
func (h *AdminHandler) CreateBlockedDate(c *gin.Context) {
	var req reqdto.CreateBlockedDateRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", map[string]string{"date": "must be a date formatted as YYYY-MM-DD"})
		return
	}
	created, err := h.cmds.CreateBlockedDate(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/admin/blocked-dates/"+created.ID().String())
	c.JSON(http.StatusCreated, resdto.FromBlockedDate(created))
}

// @Summary Unblock a date
// @Tags admin
// @Security AdminToken
// @Param id path string true "Blocked date ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /admin/blocked-dates/{id} [delete]
func (h *AdminHandler) DeleteBlockedDate(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteBlockedDate(c.Request.Context(), id); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List blocked dates
// @Tags admin
// @Produce json
// @Security AdminToken
// @Param from query string false "Lower bound (YYYY-MM-DD)"
// @Param to query string false "Upper bound (YYYY-MM-DD)"
// @Param assetId query string false "Asset ID; global blocks are always included"
// @Success 200 {object} resdto.BlockedDateListResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/blocked-dates [get]
func (h *AdminHandler) ListBlockedDates(c *gin.Context) {
	from, ok := queryDate(c, "from")
	if !ok {
		return
	}
	to, ok := queryDate(c, "to")
	if !ok {
		return
	}
	var assetID *string
	if raw := c.Query("assetId"); raw != "" {
		assetID = &raw
	}
	views, err := h.blocked.List(c.Request.Context(), from, to, assetID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBlockedDateViews(views))
}
