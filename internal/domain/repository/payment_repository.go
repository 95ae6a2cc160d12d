package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/swarnaabhushan/backoffice-api/internal/domain/entity"
	"github.com/swarnaabhushan/backoffice-api/pkg/daterange"
	"github.com/swarnaabhushan/backoffice-api/pkg/pagination"
)

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	// RecordAgainstBill inserts the payment and writes the new settlement to
	// its bill in one transaction. The bill is only written if its version
	// still matches; otherwise nothing is persisted and (false, nil) is
	// returned.
	RecordAgainstBill(ctx context.Context, payment *entity.Payment, settlement entity.BillSettlement) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PaymentFilterParams) ([]entity.Payment, int64, error)
}

// PaymentFilterParams contains filtering parameters for payment queries
type PaymentFilterParams struct {
	Pagination *pagination.Params
	CustomerID *uuid.UUID
	BillID     *uuid.UUID
	Range      *daterange.Range
}
