package request

import (
	"github.com/shopspring/decimal"

	"github.com/swarnaabhushan/backoffice-api/internal/application/service"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/enum"
)

// ItemRequest represents an item create or update request
type ItemRequest struct {
	Name         string            `json:"name" binding:"required,min=2,max=50"`
	Type         enum.MaterialType `json:"type" binding:"required,oneof=Gold Silver Diamond"`
	Weight       decimal.Decimal   `json:"weight" binding:"dgte=0,dlte=1000000,dscale=3"`
	PricePerGram decimal.Decimal   `json:"pricePerGram" binding:"dgte=0,dlte=1000000,dscale=2"`
	MakingCharge decimal.Decimal   `json:"makingCharge" binding:"dgte=0,dlte=100,dscale=2"`
}

// ToInput converts the request to the service input
func (r *ItemRequest) ToInput() *service.ItemInput {
	return &service.ItemInput{
		Name:         r.Name,
		Type:         r.Type,
		Weight:       r.Weight,
		PricePerGram: r.PricePerGram,
		MakingCharge: r.MakingCharge,
	}
}
