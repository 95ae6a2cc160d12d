package handler

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/swarnaabhushan/backoffice-api/internal/application/service"
	"github.com/swarnaabhushan/backoffice-api/internal/presentation/http/dto/request"
	"github.com/swarnaabhushan/backoffice-api/internal/presentation/http/dto/response"
	"github.com/swarnaabhushan/backoffice-api/pkg/spreadsheet"
)

// maxImportSize caps an uploaded catalog workbook
const maxImportSize = 5 << 20

// ItemHandler handles catalog HTTP requests
type ItemHandler struct {
	itemService *service.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// Create handles creating a catalog item
// @Summary Create Item
// @Tags items
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.ItemRequest true "Item"
// @Success 201 {object} response.APIResponse
// @Router /api/items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	var req request.ItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created successfully", item)
}

// List handles listing items, optionally filtered by name
// @Summary List Items
// @Tags items
// @Security BearerAuth
// @Produce json
// @Param keyword query string false "Matches the item name"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.APIResponse
// @Router /api/items [get]
func (h *ItemHandler) List(c *gin.Context) {
	req, ok := bindSearch(c)
	if !ok {
		return
	}

	result, err := h.itemService.ListItems(c.Request.Context(), req.Items())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Items retrieved successfully", result)
}

// Get handles getting a single item by ID
// @Summary Get Item
// @Tags items
// @Security BearerAuth
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.APIResponse
// @Router /api/items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	item, err := h.itemService.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved successfully", item)
}

// Update handles replacing an item
// @Summary Update Item
// @Tags items
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body request.ItemRequest true "Item"
// @Success 200 {object} response.APIResponse
// @Router /api/items/{id} [put]
func (h *ItemHandler) Update(c *gin.Context) {
	var req request.ItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", item)
}

// Delete handles soft-deleting an item
// @Summary Delete Item
// @Tags items
// @Security BearerAuth
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.APIResponse
// @Router /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	if err := h.itemService.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item deleted successfully", nil)
}

// Import handles a catalog upload as an xlsx workbook with the columns
// Name, Type, Weight, PricePerGram and MakingCharge
// @Summary Import Items
// @Tags items
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx workbook"
// @Success 200 {object} response.APIResponse
// @Router /api/items/import [post]
func (h *ItemHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File is required")
		return
	}
	if strings.ToLower(filepath.Ext(fileHeader.Filename)) != ".xlsx" {
		response.BadRequest(c, "Only .xlsx files are supported")
		return
	}
	if fileHeader.Size > maxImportSize {
		response.BadRequest(c, "File is too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Failed to read file")
		return
	}
	defer file.Close()

	records, err := spreadsheet.ReadRecords(file)
	if err != nil {
		response.BadRequest(c, "Failed to parse file: "+err.Error())
		return
	}

	rows := make([]service.ImportItemRow, len(records))
	for i, rec := range records {
		rows[i] = service.ImportItemRow{
			Name:         column(rec, "name"),
			Type:         column(rec, "type"),
			Weight:       column(rec, "weight"),
			PricePerGram: column(rec, "pricepergram", "price per gram", "price_per_gram"),
			MakingCharge: column(rec, "makingcharge", "making charge", "making_charge"),
		}
	}

	result, err := h.itemService.ImportItems(c.Request.Context(), rows)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Import completed", result)
}

// column returns the first non-empty value among header spellings
func column(rec spreadsheet.Record, names ...string) string {
	for _, name := range names {
		if v := rec[name]; v != "" {
			return v
		}
	}
	return ""
}
