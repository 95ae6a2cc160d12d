package request

import (
	"github.com/shopspring/decimal"

	"github.com/swarnaabhushan/backoffice-api/internal/application/service"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/enum"
)

// LineItemRequest is one line of a bill request
type LineItemRequest struct {
	Name         string            `json:"name" binding:"required,max=100"`
	Type         enum.MaterialType `json:"type" binding:"required,oneof=Gold Silver Diamond"`
	Weight       decimal.Decimal   `json:"weight" binding:"dgte=0,dscale=3"`
	PricePerGram decimal.Decimal   `json:"pricePerGram" binding:"dgte=0,dscale=2"`
	MakingCharge decimal.Decimal   `json:"makingCharge" binding:"dgte=0,dlte=100,dscale=2"`
}

func (r LineItemRequest) toInput() service.LineItemInput {
	return service.LineItemInput{
		Name:         r.Name,
		Type:         r.Type,
		Weight:       r.Weight,
		PricePerGram: r.PricePerGram,
		MakingCharge: r.MakingCharge,
	}
}

func lineInputs(items []LineItemRequest) []service.LineItemInput {
	out := make([]service.LineItemInput, len(items))
	for i, item := range items {
		out[i] = item.toInput()
	}
	return out
}

// CreateBillRequest represents a bill creation request
type CreateBillRequest struct {
	CustomerID string            `json:"customerId" binding:"required,uuid"`
	Items      []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	Tax        decimal.Decimal   `json:"tax" binding:"dgte=0,dlte=100,dscale=2"`
	Discount   decimal.Decimal   `json:"discount" binding:"dgte=0,dscale=2"`
}

// ToInput converts the request to the service input
func (r *CreateBillRequest) ToInput() *service.CreateBillInput {
	return &service.CreateBillInput{
		CustomerID: r.CustomerID,
		Items:      lineInputs(r.Items),
		Tax:        r.Tax,
		Discount:   r.Discount,
	}
}

// UpdateBillRequest replaces a bill's lines, tax and discount
type UpdateBillRequest struct {
	CustomerID string            `json:"customerId" binding:"omitempty,uuid"`
	Items      []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	Tax        decimal.Decimal   `json:"tax" binding:"dgte=0,dlte=100,dscale=2"`
	Discount   decimal.Decimal   `json:"discount" binding:"dgte=0,dscale=2"`
}

// ToInput converts the request to the service input
func (r *UpdateBillRequest) ToInput() *service.UpdateBillInput {
	return &service.UpdateBillInput{
		CustomerID: r.CustomerID,
		Items:      lineInputs(r.Items),
		Tax:        r.Tax,
		Discount:   r.Discount,
	}
}
