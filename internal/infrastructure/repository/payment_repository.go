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

// errStaleBill rolls back a payment whose bill changed since it was read
var errStaleBill = errors.New("bill version changed")

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

// RecordAgainstBill inserts the payment and applies the settlement to the
// bill in one transaction. If the bill version moved, the insert is rolled
// back as well.
func (r *paymentRepository) RecordAgainstBill(ctx context.Context, payment *entity.Payment, s entity.BillSettlement) (bool, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		result := tx.Model(&entity.Bill{}).
			Where("uuid = ? AND version = ? AND is_deleted = ?", s.BillUUID, s.ExpectedVersion, false).
			Updates(map[string]interface{}{
				"total_paid":     s.Settlement.TotalPaid,
				"due_amount":     s.Settlement.DueAmount,
				"payment_status": s.Settlement.Status,
				"payment_mode":   s.PaymentMode,
				"version":        gorm.Expr("version + 1"),
				"updated_at":     time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errStaleBill
		}
		return nil
	})

	if errors.Is(err, errStaleBill) {
		payment.ID = 0
		return false, nil
	}
	if err != nil {
		return false, translateError(err)
	}
	return true, nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := r.db.WithContext(ctx).Scopes(NotDeleted).First(&payment, "uuid = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &payment, nil
}

func (r *paymentRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).Model(&entity.Payment{}).
		Where("uuid = ?", id).
		Update("is_deleted", true).Error)
}

func (r *paymentRepository) List(ctx context.Context, params *domainRepo.PaymentFilterParams) ([]entity.Payment, int64, error) {
	var payments []entity.Payment
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Payment{}).
		Scopes(NotDeleted, CreatedWithin(params.Range))

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.BillID != nil {
		query = query.Where("bill_id = ?", *params.BillID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	err := query.Scopes(NewestFirst, Paginate(params.Pagination)).Find(&payments).Error
	return payments, total, translateError(err)
}
