package api

import (
	"errors"
	"io"
	"net/http"

	resdto "bounce-booking/internal/handler/dto/response"
	"bounce-booking/internal/handler/httperr"
	"bounce-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	StripeSignatureHeader = "Stripe-Signature"
	maxWebhookBodyBytes   = 64 << 10
)

type WebhookHandler struct {
	cmds commands.ReconciliationCommands
}

func NewWebhookHandler(cmds commands.ReconciliationCommands) *WebhookHandler {
	return &WebhookHandler{cmds: cmds}
}

// @Summary Stripe webhook
// @Description Signed payment events. Redeliveries are acknowledged without side effects.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} resdto.WebhookResponse
// @Failure 400 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) Stripe(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Payload too large", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}
	signature := c.GetHeader(StripeSignatureHeader)
	if signature == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, commands.ErrWebhookSignature, "Missing signature", nil)
		return
	}

	result, err := h.cmds.HandleWebhook(c.Request.Context(), payload, signature)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReconcileResult(result))
}
