package api

import (
	"net/http"

	"bounce-booking/internal/domain/money"
	reqdto "bounce-booking/internal/handler/dto/request"
	resdto "bounce-booking/internal/handler/dto/response"
	"bounce-booking/internal/handler/httperr"
	"bounce-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromoHandler struct {
	q queries.PromoQueries
}

func NewPromoHandler(q queries.PromoQueries) *PromoHandler {
	return &PromoHandler{q: q}
}

// @Summary Validate promo code
// @Description Rejections are reported in the body with valid=false
// @Tags promo
// @Accept json
// @Produce json
// @Param request body reqdto.ValidatePromoRequest true "Promo validation request"
// @Success 200 {object} resdto.PromoValidationResponse
// @Failure 400 {object} httperr.Response
// @Router /promo/validate [post]
func (h *PromoHandler) Validate(c *gin.Context) {
	var req reqdto.ValidatePromoRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.q.Validate(c.Request.Context(), req.Code, money.FromDollars(req.OrderAmount))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromoValidation(result))
}
