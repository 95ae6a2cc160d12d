package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/swarnaabhushan/backoffice-api/internal/domain/entity"
	domainRepo "github.com/swarnaabhushan/backoffice-api/internal/domain/repository"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return translateError(r.db.WithContext(ctx).Create(bill).Error)
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).Scopes(NotDeleted).First(&bill, "uuid = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &bill, nil
}

// ExistsByBillNumber also sees deleted bills, bill numbers are never reused
func (r *billRepository) ExistsByBillNumber(ctx context.Context, billNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Where("bill_number = ?", billNumber).
		Count(&count).Error
	return count > 0, translateError(err)
}

// UpdateIfVersion uses:
// UPDATE bills SET ..., version = version + 1 WHERE uuid = ? AND version = ? AND is_deleted = false
func (r *billRepository) UpdateIfVersion(ctx context.Context, bill *entity.Bill, expectedVersion int) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Where("uuid = ? AND version = ? AND is_deleted = ?", bill.UUID, expectedVersion, false).
		Updates(map[string]interface{}{
			"customer_id":    bill.CustomerID,
			"items":          bill.Items,
			"tax":            bill.Tax,
			"tax_amount":     bill.TaxAmount,
			"discount":       bill.Discount,
			"subtotal":       bill.Subtotal,
			"total":          bill.Total,
			"due_amount":     bill.DueAmount,
			"total_paid":     bill.TotalPaid,
			"payment_mode":   bill.PaymentMode,
			"payment_status": bill.PaymentStatus,
			"version":        gorm.Expr("version + 1"),
			"updated_at":     now,
		})
	if result.Error != nil {
		return false, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	bill.Version = expectedVersion + 1
	bill.UpdatedAt = now
	return true, nil
}

func (r *billRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).Model(&entity.Bill{}).
		Where("uuid = ?", id).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"version":    gorm.Expr("version + 1"),
		}).Error)
}

func (r *billRepository) List(ctx context.Context, params *domainRepo.BillFilterParams) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Scopes(NotDeleted, CreatedWithin(params.Range))

	if params.Status != "" {
		query = query.Where("payment_status = ?", params.Status)
	}

	switch {
	case params.CustomerID != nil:
		query = query.Where("customer_id = ?", *params.CustomerID)
		if params.Keyword != "" {
			query = query.Where("LOWER(bill_number) LIKE ?", containsPattern(params.Keyword))
		}
	case params.Keyword != "":
		pattern := containsPattern(params.Keyword)
		customers := r.db.Model(&entity.User{}).
			Select("uuid").
			Where("is_deleted = ?", false).
			Where("(LOWER(name) LIKE ? OR LOWER(COALESCE(email, '')) LIKE ? OR mobile LIKE ?)",
				pattern, pattern, pattern)
		query = query.Where("(LOWER(bill_number) LIKE ? OR customer_id IN (?))", pattern, customers)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	err := query.Scopes(NewestFirst, Paginate(params.Pagination)).Find(&bills).Error
	return bills, total, translateError(err)
}
