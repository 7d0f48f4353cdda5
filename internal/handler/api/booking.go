package api

import (
	"net/http"

	reqdto "bounce-booking/internal/handler/dto/request"
	resdto "bounce-booking/internal/handler/dto/response"
	"bounce-booking/internal/handler/httperr"
	"bounce-booking/internal/usecase/commands"
	"bounce-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create checkout
// @Description Price a booking request, hold the date and open a hosted deposit checkout
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /bookings/checkout [post]
func (h *BookingHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", map[string]string{"eventDate": "must be a date formatted as YYYY-MM-DD"})
		return
	}

	result, err := h.cmds.CreateCheckout(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

// @Summary Booking summary
// @Description Public status and amounts for the checkout success page
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingSummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/summary [get]
func (h *BookingHandler) Summary(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingSummary(view))
}
