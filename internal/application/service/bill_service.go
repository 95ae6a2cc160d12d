package service

import (
	"context"
	"io"
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
	"github.com/swarnaabhushan/backoffice-api/pkg/invoice"
	"github.com/swarnaabhushan/backoffice-api/pkg/pagination"
	"github.com/swarnaabhushan/backoffice-api/pkg/spreadsheet"
	"github.com/swarnaabhushan/backoffice-api/pkg/utils"
)

const billNumberAttempts = 5

// BillService handles bills, their pricing and their invoices
type BillService struct {
	billRepo   repository.BillRepository
	userRepo   repository.UserRepository
	renderer   *invoice.Renderer
	maxRetries int
	now        func() time.Time
	log        *zap.Logger
}

// NewBillService creates a new bill service
func NewBillService(
	billRepo repository.BillRepository,
	userRepo repository.UserRepository,
	renderer *invoice.Renderer,
	payment config.PaymentConfig,
	log *zap.Logger,
) *BillService {
	return &BillService{
		billRepo:   billRepo,
		userRepo:   userRepo,
		renderer:   renderer,
		maxRetries: payment.MaxRetries,
		now:        time.Now,
		log:        log,
	}
}

// BillView is a bill with its customer's name and phone
type BillView struct {
	*entity.Bill
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
}

func newBillView(bill *entity.Bill, customer *entity.User) *BillView {
	view := &BillView{Bill: bill}
	if customer != nil {
		view.CustomerName = customer.Name
		view.CustomerPhone = customer.Mobile
	}
	return view
}

// LineItemInput is one line of a bill request
type LineItemInput struct {
	Name         string            `json:"name" validate:"required,max=100"`
	Type         enum.MaterialType `json:"type" validate:"required,oneof=Gold Silver Diamond"`
	Weight       decimal.Decimal   `json:"weight" validate:"dgte=0,dscale=3"`
	PricePerGram decimal.Decimal   `json:"pricePerGram" validate:"dgte=0,dscale=2"`
	MakingCharge decimal.Decimal   `json:"makingCharge" validate:"dgte=0,dlte=100,dscale=2"`
}

// CreateBillInput represents the create bill input
type CreateBillInput struct {
	CustomerID string          `json:"customerId" validate:"required,uuid"`
	Items      []LineItemInput `json:"items" validate:"required,min=1,dive"`
	Tax        decimal.Decimal `json:"tax" validate:"dgte=0,dlte=100,dscale=2"`
	Discount   decimal.Decimal `json:"discount" validate:"dgte=0,dscale=2"`
}

// UpdateBillInput replaces a bill's lines, tax and discount. An empty
// customerId keeps the current customer.
type UpdateBillInput struct {
	CustomerID string          `json:"customerId" validate:"omitempty,uuid"`
	Items      []LineItemInput `json:"items" validate:"required,min=1,dive"`
	Tax        decimal.Decimal `json:"tax" validate:"dgte=0,dlte=100,dscale=2"`
	Discount   decimal.Decimal `json:"discount" validate:"dgte=0,dscale=2"`
}

// SearchBillsInput filters the bill listing
type SearchBillsInput struct {
	Keyword    string
	UserID     string
	Range      string
	BillStatus string
	Page       int
	Limit      int
}

func toLineItems(inputs []LineItemInput) []entity.LineItem {
	return lo.Map(inputs, func(in LineItemInput, _ int) entity.LineItem {
		return entity.LineItem{
			Name:         strings.TrimSpace(in.Name),
			Type:         in.Type,
			Weight:       in.Weight,
			PricePerGram: in.PricePerGram,
			MakingCharge: in.MakingCharge,
		}
	})
}

func (s *BillService) customer(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// nextBillNumber draws bill numbers until one is unused
func (s *BillService) nextBillNumber(ctx context.Context) (string, error) {
	for i := 0; i < billNumberAttempts; i++ {
		number := utils.GenerateBillNumber()
		exists, err := s.billRepo.ExistsByBillNumber(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
	return "", apperror.NewInternalError("Failed to allocate bill number", nil)
}

// CreateBill prices the lines and stores a new pending bill
func (s *BillService) CreateBill(ctx context.Context, input *CreateBillInput) (*BillView, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	customerID, err := parseID(input.CustomerID, "customer id")
	if err != nil {
		return nil, err
	}
	customer, err := s.customer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	number, err := s.nextBillNumber(ctx)
	if err != nil {
		return nil, err
	}

	bill := &entity.Bill{
		BillNumber: number,
		CustomerID: customer.UUID,
		Items:      toLineItems(input.Items),
		Tax:        input.Tax,
		Discount:   input.Discount,
	}
	totals := billing.Price(bill.PricingLines(), bill.Tax, bill.Discount)
	bill.ApplyTotals(totals)
	bill.ApplySettlement(billing.Opening(totals))

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	s.log.Info("bill created",
		zap.String("bill_id", bill.UUID.String()),
		zap.String("bill_number", bill.BillNumber),
		zap.String("total", bill.Total.String()),
	)
	return newBillView(bill, customer), nil
}

func (s *BillService) bill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// GetBill retrieves a bill with its customer details
func (s *BillService) GetBill(ctx context.Context, id string) (*BillView, error) {
	billID, err := parseID(id, "bill id")
	if err != nil {
		return nil, err
	}
	bill, err := s.bill(ctx, billID)
	if err != nil {
		return nil, err
	}
	customer, err := s.userRepo.GetByID(ctx, bill.CustomerID)
	if err != nil {
		return nil, err
	}
	return newBillView(bill, customer), nil
}

// UpdateBill reprices a bill against what has already been paid. The write
// is retried when a payment lands between the read and the write.
func (s *BillService) UpdateBill(ctx context.Context, id string, input *UpdateBillInput) (*BillView, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	billID, err := parseID(id, "bill id")
	if err != nil {
		return nil, err
	}
	newCustomerID, err := parseOptionalID(input.CustomerID, "customer id")
	if err != nil {
		return nil, err
	}
	if newCustomerID != nil {
		if _, err := s.customer(ctx, *newCustomerID); err != nil {
			return nil, err
		}
	}

	var updated *entity.Bill
	ok, err := retry(ctx, s.maxRetries, func(attempt int) (bool, error) {
		bill, err := s.bill(ctx, billID)
		if err != nil {
			return false, err
		}
		expected := bill.Version

		if newCustomerID != nil {
			bill.CustomerID = *newCustomerID
		}
		bill.Items = toLineItems(input.Items)
		bill.Tax = input.Tax
		bill.Discount = input.Discount

		totals := billing.Price(bill.PricingLines(), bill.Tax, bill.Discount)
		if totals.Total.LessThan(bill.TotalPaid) {
			return false, apperror.NewInvalidInputError("Bill total cannot be less than the amount already paid")
		}
		bill.ApplyTotals(totals)
		bill.ApplySettlement(billing.Settle(totals.Total, bill.TotalPaid))

		done, err := s.billRepo.UpdateIfVersion(ctx, bill, expected)
		if err != nil {
			return false, err
		}
		if !done {
			s.log.Warn("bill changed during update, retrying",
				zap.String("bill_id", billID.String()), zap.Int("attempt", attempt))
			return false, nil
		}
		updated = bill
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrConcurrentBillUpdate
	}

	customer, err := s.customer(ctx, updated.CustomerID)
	if err != nil {
		return nil, err
	}
	return newBillView(updated, customer), nil
}

func (s *BillService) filter(input *SearchBillsInput) (*repository.BillFilterParams, error) {
	customerID, err := parseOptionalID(input.UserID, "userId")
	if err != nil {
		return nil, err
	}
	r, err := resolveRange(input.Range, s.now())
	if err != nil {
		return nil, err
	}
	status := enum.PaymentStatus(strings.TrimSpace(input.BillStatus))
	if status != "" && !status.IsValid() {
		return nil, apperror.NewInvalidInputError("Invalid billStatus: " + input.BillStatus)
	}
	return &repository.BillFilterParams{
		Keyword:    strings.TrimSpace(input.Keyword),
		CustomerID: customerID,
		Range:      r,
		Status:     status,
	}, nil
}

// views attaches customers to bills with one lookup
func (s *BillService) views(ctx context.Context, bills []entity.Bill) ([]BillView, error) {
	ids := lo.Uniq(lo.Map(bills, func(b entity.Bill, _ int) uuid.UUID { return b.CustomerID }))
	customers := map[uuid.UUID]entity.User{}
	if len(ids) > 0 {
		users, err := s.userRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		customers = lo.KeyBy(users, func(u entity.User) uuid.UUID { return u.UUID })
	}

	views := make([]BillView, len(bills))
	for i := range bills {
		var customer *entity.User
		if u, ok := customers[bills[i].CustomerID]; ok {
			customer = &u
		}
		views[i] = *newBillView(&bills[i], customer)
	}
	return views, nil
}

// SearchBills lists bills by keyword, customer, date range and status
func (s *BillService) SearchBills(ctx context.Context, input *SearchBillsInput) (*pagination.Result[BillView], error) {
	params, err := s.filter(input)
	if err != nil {
		return nil, err
	}
	params.Pagination = pageParams(input.Page, input.Limit)

	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	views, err := s.views(ctx, bills)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(views, total, params.Pagination), nil
}

var exportHeader = []string{
	"Bill Number", "Date", "Customer", "Phone", "Status",
	"Subtotal", "Tax Amount", "Discount", "Total", "Paid", "Due",
}

// ExportBills writes every bill matching input as an xlsx sheet
func (s *BillService) ExportBills(ctx context.Context, input *SearchBillsInput, w io.Writer) error {
	params, err := s.filter(input)
	if err != nil {
		return err
	}
	bills, _, err := s.billRepo.List(ctx, params)
	if err != nil {
		return err
	}
	views, err := s.views(ctx, bills)
	if err != nil {
		return err
	}

	rows := lo.Map(views, func(v BillView, _ int) []interface{} {
		return []interface{}{
			v.BillNumber,
			invoice.Date(v.CreatedAt),
			v.CustomerName,
			v.CustomerPhone,
			v.PaymentStatus.String(),
			v.Subtotal.InexactFloat64(),
			v.TaxAmount.InexactFloat64(),
			v.Discount.InexactFloat64(),
			v.Total.InexactFloat64(),
			v.TotalPaid.InexactFloat64(),
			v.DueAmount.InexactFloat64(),
		}
	})
	if err := spreadsheet.Write(w, "Bills", exportHeader, rows); err != nil {
		return apperror.NewInternalError("Failed to export bills", err)
	}
	return nil
}

// DeleteBill soft-deletes a bill. Its payments are kept.
func (s *BillService) DeleteBill(ctx context.Context, id string) error {
	billID, err := parseID(id, "bill id")
	if err != nil {
		return err
	}
	bill, err := s.bill(ctx, billID)
	if err != nil {
		return err
	}
	if err := s.billRepo.SoftDelete(ctx, bill.UUID); err != nil {
		return err
	}
	s.log.Info("bill deleted", zap.String("bill_id", bill.UUID.String()))
	return nil
}

// InvoiceDocument formats a bill for the invoice renderer
func InvoiceDocument(view *BillView) invoice.Document {
	lines := lo.Map(view.Items, func(l entity.LineItem, _ int) invoice.Line {
		return invoice.Line{
			Name:   l.Name,
			Weight: invoice.Weight(l.Weight),
			Rate:   invoice.Money(l.PricePerGram),
			Making: invoice.Percent(l.MakingCharge),
			Total:  invoice.Money(billing.Round2(l.Total())),
		}
	})
	return invoice.Document{
		InvoiceNumber: view.BillNumber,
		Date:          invoice.Date(view.CreatedAt),
		CustomerName:  view.CustomerName,
		CustomerPhone: view.CustomerPhone,
		Lines:         lines,
		Subtotal:      invoice.Money(view.Subtotal),
		Tax:           invoice.Money(view.TaxAmount),
		Discount:      invoice.Money(view.Discount),
		GrandTotal:    invoice.Money(view.Total),
	}
}

// GenerateInvoice renders the PDF invoice of a bill into w
func (s *BillService) GenerateInvoice(ctx context.Context, id string, w io.Writer) error {
	view, err := s.GetBill(ctx, id)
	if err != nil {
		return err
	}
	if err := s.renderer.Render(w, InvoiceDocument(view)); err != nil {
		s.log.Error("invoice render failed", zap.String("bill_id", view.UUID.String()), zap.Error(err))
		return err
	}
	return nil
}
