package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/swarnaabhushan/backoffice-api/internal/application/service"
	"github.com/swarnaabhushan/backoffice-api/internal/presentation/http/dto/request"
	"github.com/swarnaabhushan/backoffice-api/internal/presentation/http/dto/response"
)

// PaymentHandler handles payment HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Create records a payment against a bill
// @Summary Create Payment
// @Tags payment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Replays the first response for a repeated request"
// @Param request body request.CreatePaymentRequest true "Payment"
// @Success 201 {object} response.APIResponse
// @Router /api/payment [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var req request.CreatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.paymentService.CreatePayment(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded successfully", result)
}

// Search handles payment search by customer, bill and date range
// @Summary Search Payments
// @Tags payment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.SearchRequest false "Filters"
// @Success 200 {object} response.APIResponse
// @Router /api/payment/search [post]
func (h *PaymentHandler) Search(c *gin.Context) {
	req, ok := bindSearch(c)
	if !ok {
		return
	}

	result, err := h.paymentService.SearchPayments(c.Request.Context(), req.Payments())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", result)
}

// Get handles getting a single payment by ID
// @Summary Get Payment
// @Tags payment
// @Security BearerAuth
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.APIResponse
// @Router /api/payment/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	payment, err := h.paymentService.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment retrieved successfully", payment)
}

// Delete handles soft-deleting a payment
// @Summary Delete Payment
// @Tags payment
// @Security BearerAuth
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.APIResponse
// @Router /api/payment/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	if err := h.paymentService.DeletePayment(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment deleted successfully", nil)
}
