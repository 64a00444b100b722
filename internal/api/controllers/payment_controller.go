package controllers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"zfit/internal/models/request_models"
	"zfit/internal/services"
	"zfit/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// HandleWebhook godoc
// @Summary Payment provider callback
// @Description Applies paid/refunded order events to the customer's subscription tier
// @Tags Payments
// @Accept json
// @Produce json
// @Param token query string true "Webhook validation token"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /webhooks/kiwify [post]
func (p *PaymentController) HandleWebhook(c *gin.Context) {
	if token := os.Getenv("KIWIFY_WEBHOOK_TOKEN"); token != "" && c.Query("token") != token {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid webhook token")
		return
	}

	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("webhook: error reading body: %v", err)
		utils.RespondError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var event request_models.KiwifyWebhook
	if err := json.Unmarshal(rawBody, &event); err != nil {
		log.Printf("webhook: invalid payload: %v", err)
		utils.RespondError(c, http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	if err := p.paymentService.HandleOrderEvent(c.Request.Context(), event, rawBody); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Processado com sucesso")
}
