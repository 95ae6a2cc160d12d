package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/swarnaabhushan/backoffice-api/internal/domain/entity"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/enum"
	"github.com/swarnaabhushan/backoffice-api/pkg/daterange"
	"github.com/swarnaabhushan/backoffice-api/pkg/pagination"
)

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	ExistsByBillNumber(ctx context.Context, billNumber string) (bool, error)
	// UpdateIfVersion writes the bill only if its stored version still equals
	// expectedVersion, and bumps the version on success.
	// Returns (false, nil) when another writer got there first.
	UpdateIfVersion(ctx context.Context, bill *entity.Bill, expectedVersion int) (bool, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *BillFilterParams) ([]entity.Bill, int64, error)
}

// BillFilterParams contains filtering parameters for bill queries.
// A nil Pagination returns every match.
type BillFilterParams struct {
	Pagination *pagination.Params
	Keyword    string
	// CustomerID restricts results to one customer; the keyword then only
	// matches bill numbers. Without it the keyword also matches the
	// customer's name, email or mobile.
	CustomerID *uuid.UUID
	Range      *daterange.Range
	Status     enum.PaymentStatus
}
