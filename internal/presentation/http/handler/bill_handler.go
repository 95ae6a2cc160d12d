package handler

import (
	"bytes"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/swarnaabhushan/backoffice-api/internal/application/service"
	"github.com/swarnaabhushan/backoffice-api/internal/presentation/http/dto/request"
	"github.com/swarnaabhushan/backoffice-api/internal/presentation/http/dto/response"
	"github.com/swarnaabhushan/backoffice-api/pkg/spreadsheet"
)

// BillHandler handles billing HTTP requests
type BillHandler struct {
	billService *service.BillService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

// Create handles creating a bill
// @Summary Create Bill
// @Tags billings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateBillRequest true "Bill"
// @Success 201 {object} response.APIResponse
// @Router /api/billings [post]
func (h *BillHandler) Create(c *gin.Context) {
	var req request.CreateBillRequest
	if !bindJSON(c, &req) {
		return
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", bill)
}

// Search handles bill search by keyword, customer, date range and status
// @Summary Search Bills
// @Tags billings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.SearchRequest false "Filters"
// @Success 200 {object} response.APIResponse
// @Router /api/billings/search [post]
func (h *BillHandler) Search(c *gin.Context) {
	req, ok := bindSearch(c)
	if !ok {
		return
	}

	result, err := h.billService.SearchBills(c.Request.Context(), req.Bills())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bills retrieved successfully", result)
}

// Export handles downloading every bill matching the query filters as xlsx
// @Summary Export Bills
// @Tags billings
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param keyword query string false "Bill number or customer"
// @Param userId query string false "Customer ID"
// @Param range query string false "Date range preset"
// @Param billStatus query string false "Payment status"
// @Success 200 {file} file
// @Router /api/billings/export [get]
func (h *BillHandler) Export(c *gin.Context) {
	req, ok := bindSearch(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.billService.ExportBills(c.Request.Context(), req.Bills(), &buf); err != nil {
		response.Error(c, err)
		return
	}

	response.Attachment(c, "bills.xlsx", spreadsheet.ContentType, buf.Bytes())
}

// Get handles getting a single bill by ID
// @Summary Get Bill
// @Tags billings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} response.APIResponse
// @Router /api/billings/{id} [get]
func (h *BillHandler) Get(c *gin.Context) {
	bill, err := h.billService.GetBill(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// Update handles repricing a bill
// @Summary Update Bill
// @Tags billings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param request body request.UpdateBillRequest true "Bill"
// @Success 200 {object} response.APIResponse
// @Router /api/billings/{id} [put]
func (h *BillHandler) Update(c *gin.Context) {
	var req request.UpdateBillRequest
	if !bindJSON(c, &req) {
		return
	}

	bill, err := h.billService.UpdateBill(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill updated successfully", bill)
}

// Delete handles soft-deleting a bill
// @Summary Delete Bill
// @Tags billings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} response.APIResponse
// @Router /api/billings/{id} [delete]
func (h *BillHandler) Delete(c *gin.Context) {
	if err := h.billService.DeleteBill(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill deleted successfully", nil)
}

// Invoice renders the bill's PDF invoice
// @Summary Bill Invoice
// @Tags billings
// @Security BearerAuth
// @Produce application/pdf
// @Param id path string true "Bill ID"
// @Success 200 {file} file
// @Router /api/billings/{id}/invoice [get]
func (h *BillHandler) Invoice(c *gin.Context) {
	id := c.Param("id")

	var buf bytes.Buffer
	if err := h.billService.GenerateInvoice(c.Request.Context(), id, &buf); err != nil {
		response.Error(c, err)
		return
	}

	response.PDF(c, fmt.Sprintf("invoice-%s.pdf", id), buf.Bytes())
}
