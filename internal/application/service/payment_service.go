package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/swarnaabhushan/backoffice-api/internal/config"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/billing"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/entity"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/enum"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/repository"
	"github.com/swarnaabhushan/backoffice-api/pkg/apperror"
	"github.com/swarnaabhushan/backoffice-api/pkg/pagination"
)

// PaymentService records payments against bills
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	billRepo    repository.BillRepository
	userRepo    repository.UserRepository
	maxRetries  int
	now         func() time.Time
	log         *zap.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	billRepo repository.BillRepository,
	userRepo repository.UserRepository,
	payment config.PaymentConfig,
	log *zap.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		billRepo:    billRepo,
		userRepo:    userRepo,
		maxRetries:  payment.MaxRetries,
		now:         time.Now,
		log:         log,
	}
}

// CreatePaymentInput represents the create payment input
type CreatePaymentInput struct {
	BillID      string           `json:"billId" validate:"required,uuid"`
	Amount      decimal.Decimal  `json:"amount" validate:"dscale=2"`
	PaymentMode enum.PaymentMode `json:"paymentMode" validate:"required,oneof=Cash UPI Card"`
	Note        string           `json:"note" validate:"max=255"`
}

// PaymentView is a payment with its customer's name
type PaymentView struct {
	*entity.Payment
	CustomerName string `json:"customerName"`
}

// PaymentResult is returned when a payment is recorded
type PaymentResult struct {
	Payment     PaymentView `json:"payment"`
	UpdatedBill *BillView   `json:"updatedBill"`
}

// SearchPaymentsInput filters the payment listing
type SearchPaymentsInput struct {
	UserID string
	BillID string
	Range  string
	Page   int
	Limit  int
}

// CreatePayment validates the amount against the bill's due amount and
// records it. The payment insert and the bill update commit together; when
// another write moved the bill in between, the bill is re-read and the
// payment re-validated.
func (s *PaymentService) CreatePayment(ctx context.Context, input *CreatePaymentInput) (*PaymentResult, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	billID, err := parseID(input.BillID, "bill id")
	if err != nil {
		return nil, err
	}

	var (
		payment  *entity.Payment
		bill     *entity.Bill
		customer *entity.User
	)
	ok, err := retry(ctx, s.maxRetries, func(attempt int) (bool, error) {
		current, err := s.billRepo.GetByID(ctx, billID)
		if err != nil {
			return false, err
		}
		if current == nil {
			return false, apperror.NewNotFoundError("Bill")
		}

		settlement, err := billing.ApplyPayment(current.Total, current.TotalPaid, input.Amount)
		if err != nil {
			if errors.Is(err, billing.ErrInvalidPayment) {
				return false, apperror.NewInvalidInputError(err.Error())
			}
			return false, err
		}

		if customer == nil || customer.UUID != current.CustomerID {
			customer, err = s.userRepo.GetByID(ctx, current.CustomerID)
			if err != nil {
				return false, err
			}
			if customer == nil {
				return false, apperror.NewNotFoundError("User")
			}
		}

		candidate := &entity.Payment{
			BillID:      current.UUID,
			CustomerID:  current.CustomerID,
			Amount:      input.Amount,
			PaymentMode: input.PaymentMode,
			Note:        strings.TrimSpace(input.Note),
		}
		done, err := s.paymentRepo.RecordAgainstBill(ctx, candidate, entity.BillSettlement{
			BillUUID:        current.UUID,
			ExpectedVersion: current.Version,
			Settlement:      settlement,
			PaymentMode:     input.PaymentMode,
		})
		if err != nil {
			return false, err
		}
		if !done {
			s.log.Warn("bill changed during payment, retrying",
				zap.String("bill_id", billID.String()), zap.Int("attempt", attempt))
			return false, nil
		}

		current.ApplySettlement(settlement)
		current.PaymentMode = input.PaymentMode
		current.Version++
		payment, bill = candidate, current
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrConcurrentBillUpdate
	}

	s.log.Info("payment recorded",
		zap.String("payment_id", payment.UUID.String()),
		zap.String("bill_id", bill.UUID.String()),
		zap.String("amount", payment.Amount.String()),
		zap.String("status", bill.PaymentStatus.String()),
	)
	return &PaymentResult{
		Payment:     PaymentView{Payment: payment, CustomerName: customer.Name},
		UpdatedBill: newBillView(bill, customer),
	}, nil
}

// GetPayment retrieves a payment with its customer's name
func (s *PaymentService) GetPayment(ctx context.Context, id string) (*PaymentView, error) {
	paymentID, err := parseID(id, "payment id")
	if err != nil {
		return nil, err
	}
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}
	customer, err := s.userRepo.GetByID(ctx, payment.CustomerID)
	if err != nil {
		return nil, err
	}
	view := &PaymentView{Payment: payment}
	if customer != nil {
		view.CustomerName = customer.Name
	}
	return view, nil
}

// SearchPayments lists payments by customer, bill and date range
func (s *PaymentService) SearchPayments(ctx context.Context, input *SearchPaymentsInput) (*pagination.Result[PaymentView], error) {
	customerID, err := parseOptionalID(input.UserID, "userId")
	if err != nil {
		return nil, err
	}
	billID, err := parseOptionalID(input.BillID, "billId")
	if err != nil {
		return nil, err
	}
	r, err := resolveRange(input.Range, s.now())
	if err != nil {
		return nil, err
	}

	params := pageParams(input.Page, input.Limit)
	payments, total, err := s.paymentRepo.List(ctx, &repository.PaymentFilterParams{
		Pagination: params,
		CustomerID: customerID,
		BillID:     billID,
		Range:      r,
	})
	if err != nil {
		return nil, err
	}

	ids := lo.Uniq(lo.Map(payments, func(p entity.Payment, _ int) uuid.UUID { return p.CustomerID }))
	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := lo.SliceToMap(users, func(u entity.User) (uuid.UUID, string) { return u.UUID, u.Name })

	views := make([]PaymentView, len(payments))
	for i := range payments {
		views[i] = PaymentView{Payment: &payments[i], CustomerName: names[payments[i].CustomerID]}
	}
	return pagination.NewResult(views, total, params), nil
}

// DeletePayment soft-deletes a payment. The bill's paid amount is left as is.
func (s *PaymentService) DeletePayment(ctx context.Context, id string) error {
	view, err := s.GetPayment(ctx, id)
	if err != nil {
		return err
	}
	if err := s.paymentRepo.SoftDelete(ctx, view.UUID); err != nil {
		return err
	}
	s.log.Info("payment deleted", zap.String("payment_id", view.UUID.String()))
	return nil
}
