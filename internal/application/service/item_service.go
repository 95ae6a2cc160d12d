package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/swarnaabhushan/backoffice-api/internal/domain/entity"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/enum"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/repository"
	"github.com/swarnaabhushan/backoffice-api/pkg/apperror"
	"github.com/swarnaabhushan/backoffice-api/pkg/pagination"
)

// ItemService handles the jewellery catalog
type ItemService struct {
	itemRepo repository.ItemRepository
	log      *zap.Logger
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository, log *zap.Logger) *ItemService {
	return &ItemService{itemRepo: itemRepo, log: log}
}

// ItemInput is used for both create and update
type ItemInput struct {
	Name         string            `json:"name" validate:"required,min=2,max=50"`
	Type         enum.MaterialType `json:"type" validate:"required,oneof=Gold Silver Diamond"`
	Weight       decimal.Decimal   `json:"weight" validate:"dgte=0,dlte=1000000,dscale=3"`
	PricePerGram decimal.Decimal   `json:"pricePerGram" validate:"dgte=0,dlte=1000000,dscale=2"`
	MakingCharge decimal.Decimal   `json:"makingCharge" validate:"dgte=0,dlte=100,dscale=2"`
}

// SearchItemsInput filters the catalog listing
type SearchItemsInput struct {
	Keyword string
	Page    int
	Limit   int
}

func (s *ItemService) checkName(ctx context.Context, name string, self *entity.Item) error {
	existing, err := s.itemRepo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && (self == nil || existing.UUID != self.UUID) {
		return apperror.NewInvalidInputError("Item with this name already exists")
	}
	return nil
}

// CreateItem creates a new catalog item with its price derived
func (s *ItemService) CreateItem(ctx context.Context, input *ItemInput) (*entity.Item, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := s.checkName(ctx, input.Name, nil); err != nil {
		return nil, err
	}

	item := &entity.Item{
		Name:         input.Name,
		Type:         input.Type,
		Weight:       input.Weight,
		PricePerGram: input.PricePerGram,
		MakingCharge: input.MakingCharge,
	}
	item.Reprice()

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.log.Info("item created", zap.String("item_id", item.UUID.String()), zap.String("price", item.Price.String()))
	return item, nil
}

// GetItem retrieves an item by public id
func (s *ItemService) GetItem(ctx context.Context, id string) (*entity.Item, error) {
	itemID, err := parseID(id, "item id")
	if err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// UpdateItem replaces an item's fields and re-derives its price
func (s *ItemService) UpdateItem(ctx context.Context, id string, input *ItemInput) (*entity.Item, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkName(ctx, input.Name, item); err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.Type = input.Type
	item.Weight = input.Weight
	item.PricePerGram = input.PricePerGram
	item.MakingCharge = input.MakingCharge
	item.Reprice()

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems lists catalog items, optionally filtered by name
func (s *ItemService) ListItems(ctx context.Context, input *SearchItemsInput) (*pagination.Result[entity.Item], error) {
	params := pageParams(input.Page, input.Limit)
	items, total, err := s.itemRepo.List(ctx, &repository.ItemFilterParams{
		Pagination: params,
		Keyword:    strings.TrimSpace(input.Keyword),
	})
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(items, total, params), nil
}

// DeleteItem soft-deletes an item
func (s *ItemService) DeleteItem(ctx context.Context, id string) error {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}
	return s.itemRepo.SoftDelete(ctx, item.UUID)
}

// ImportItemRow is one data row of a catalog spreadsheet, as text
type ImportItemRow struct {
	Name         string
	Type         string
	Weight       string
	PricePerGram string
	MakingCharge string
}

// ImportResult contains the result of a catalog import
type ImportResult struct {
	TotalRows  int              `json:"totalRows"`
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
	Errors     []ImportRowError `json:"errors,omitempty"`
}

// ImportRowError describes an error for a specific spreadsheet row
type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportItems validates each row and creates the valid ones. Row numbers in
// errors are spreadsheet rows, the header being row 1.
func (s *ItemService) ImportItems(ctx context.Context, rows []ImportItemRow) (*ImportResult, error) {
	result := &ImportResult{TotalRows: len(rows)}
	seen := make(map[string]int)

	for i, row := range rows {
		rowNum := i + 2

		input, rowErr := parseImportRow(row)
		if rowErr != nil {
			rowErr.Row = rowNum
			result.Errors = append(result.Errors, *rowErr)
			continue
		}

		key := strings.ToLower(input.Name)
		if prev, ok := seen[key]; ok {
			result.Errors = append(result.Errors, ImportRowError{
				Row:     rowNum,
				Field:   "name",
				Message: fmt.Sprintf("Duplicate name '%s' (same as row %d)", input.Name, prev),
			})
			continue
		}

		if _, err := s.CreateItem(ctx, input); err != nil {
			appErr := apperror.GetAppError(err)
			if appErr.Kind == apperror.KindInternal {
				return nil, err
			}
			result.Errors = append(result.Errors, importErrors(rowNum, appErr)...)
			continue
		}

		seen[key] = rowNum
		result.Successful++
	}

	result.Failed = len(rows) - result.Successful
	s.log.Info("items imported", zap.Int("rows", result.TotalRows), zap.Int("created", result.Successful))
	return result, nil
}

func parseImportRow(row ImportItemRow) (*ItemInput, *ImportRowError) {
	input := &ItemInput{
		Name: strings.TrimSpace(row.Name),
		Type: enum.MaterialType(strings.TrimSpace(row.Type)),
	}

	numbers := []struct {
		field  string
		raw    string
		target *decimal.Decimal
	}{
		{"weight", row.Weight, &input.Weight},
		{"pricePerGram", row.PricePerGram, &input.PricePerGram},
		{"makingCharge", row.MakingCharge, &input.MakingCharge},
	}
	for _, n := range numbers {
		raw := strings.TrimSpace(n.raw)
		if raw == "" {
			raw = "0"
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, &ImportRowError{Field: n.field, Message: fmt.Sprintf("'%s' is not a number", n.raw)}
		}
		*n.target = d
	}
	return input, nil
}

func importErrors(row int, appErr *apperror.AppError) []ImportRowError {
	if len(appErr.Errors) == 0 {
		return []ImportRowError{{Row: row, Field: "name", Message: appErr.Message}}
	}
	out := make([]ImportRowError, 0, len(appErr.Errors))
	for _, fe := range appErr.Errors {
		out = append(out, ImportRowError{Row: row, Field: fe.Field, Message: fe.Message})
	}
	return out
}
