package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarnaabhushan/backoffice-api/internal/domain/entity"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/enum"
	domainRepo "github.com/swarnaabhushan/backoffice-api/internal/domain/repository"
	"github.com/swarnaabhushan/backoffice-api/pkg/apperror"
	"github.com/swarnaabhushan/backoffice-api/pkg/spreadsheet"
	"github.com/swarnaabhushan/backoffice-api/pkg/utils"
)

func ringLine() LineItemInput {
	return LineItemInput{
		Name: "Gold Ring", Type: enum.MaterialGold,
		Weight: dec("10"), PricePerGram: dec("5000"), MakingCharge: dec("10"),
	}
}

func (f *fixture) bill(t *testing.T, customer *entity.User) *BillView {
	t.Helper()
	bill, err := f.bills.CreateBill(context.Background(), &CreateBillInput{
		CustomerID: customer.UUID.String(),
		Items:      []LineItemInput{ringLine()},
		Tax:        dec("3"),
		Discount:   dec("200"),
	})
	require.NoError(t, err)
	return bill
}

func TestCreateBillPricesLines(t *testing.T) {
	f := newFixture(t)
	customer := f.customer(t, "Meera Sharma", "9876543210")

	bill := f.bill(t, customer)
	assert.True(t, strings.HasPrefix(bill.BillNumber, utils.BillNumberPrefix))
	assert.True(t, dec("55000").Equal(bill.Subtotal))
	assert.True(t, dec("1644").Equal(bill.TaxAmount))
	assert.True(t, dec("56444").Equal(bill.Total))
	assert.True(t, dec("56444").Equal(bill.DueAmount))
	assert.True(t, bill.TotalPaid.IsZero())
	assert.Equal(t, enum.PaymentStatusPending, bill.PaymentStatus)
	assert.Equal(t, enum.PaymentModeNone, bill.PaymentMode)
	assert.Equal(t, "Meera Sharma", bill.CustomerName)
	assert.Equal(t, "9876543210", bill.CustomerPhone)

	stored, err := f.bills.GetBill(context.Background(), bill.UUID.String())
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.True(t, dec("5000").Equal(stored.Items[0].PricePerGram))
	assert.True(t, dec("56444").Equal(stored.Total))
}

func TestCreateBillErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customer := f.customer(t, "Meera Sharma", "9876543210")

	_, err := f.bills.CreateBill(ctx, &CreateBillInput{
		CustomerID: uuid.NewString(),
		Items:      []LineItemInput{ringLine()},
	})
	assertKind(t, err, apperror.KindNotFound)
	assert.Equal(t, "User not found", err.Error())

	_, err = f.bills.CreateBill(ctx, &CreateBillInput{CustomerID: customer.UUID.String()})
	assertKind(t, err, apperror.KindInvalidInput)

	bad := ringLine()
	bad.MakingCharge = dec("120")
	_, err = f.bills.CreateBill(ctx, &CreateBillInput{CustomerID: customer.UUID.String(), Items: []LineItemInput{bad}})
	assertKind(t, err, apperror.KindInvalidInput)
}

func TestPaymentSettlesBill(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customer := f.customer(t, "Meera Sharma", "9876543210")
	bill := f.bill(t, customer)

	first, err := f.payments.CreatePayment(ctx, &CreatePaymentInput{
		BillID: bill.UUID.String(), Amount: dec("20000"), PaymentMode: enum.PaymentModeUPI, Note: "advance",
	})
	require.NoError(t, err)
	assert.Equal(t, "Meera Sharma", first.Payment.CustomerName)
	assert.Equal(t, customer.UUID, first.Payment.CustomerID)
	assert.Equal(t, enum.PaymentStatusPartialPaid, first.UpdatedBill.PaymentStatus)
	assert.True(t, dec("36444").Equal(first.UpdatedBill.DueAmount))

	_, err = f.payments.CreatePayment(ctx, &CreatePaymentInput{
		BillID: bill.UUID.String(), Amount: dec("36444.01"), PaymentMode: enum.PaymentModeCash,
	})
	assertKind(t, err, apperror.KindInvalidInput)
	assert.Equal(t, "Payment exceeds due amount", err.Error())

	second, err := f.payments.CreatePayment(ctx, &CreatePaymentInput{
		BillID: bill.UUID.String(), Amount: dec("36444"), PaymentMode: enum.PaymentModeCash,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentStatusPaid, second.UpdatedBill.PaymentStatus)
	assert.True(t, second.UpdatedBill.DueAmount.IsZero())
	assert.Equal(t, enum.PaymentModeCash, second.UpdatedBill.PaymentMode)

	_, err = f.payments.CreatePayment(ctx, &CreatePaymentInput{
		BillID: bill.UUID.String(), Amount: dec("1"), PaymentMode: enum.PaymentModeCash,
	})
	assertKind(t, err, apperror.KindInvalidInput)

	stored, err := f.bills.GetBill(ctx, bill.UUID.String())
	require.NoError(t, err)
	assert.True(t, dec("56444").Equal(stored.TotalPaid))
	assert.Equal(t, enum.PaymentStatusPaid, stored.PaymentStatus)

	list, err := f.payments.SearchPayments(ctx, &SearchPaymentsInput{BillID: bill.UUID.String()})
	require.NoError(t, err)
	assert.EqualValues(t, 2, list.Total)
	assert.Equal(t, "Meera Sharma", list.Data[0].CustomerName)
}

func TestPaymentValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	bill := f.bill(t, f.customer(t, "Meera Sharma", "9876543210"))

	_, err := f.payments.CreatePayment(ctx, &CreatePaymentInput{
		BillID: bill.UUID.String(), Amount: dec("0"), PaymentMode: enum.PaymentModeCash,
	})
	assertKind(t, err, apperror.KindInvalidInput)
	assert.Equal(t, "Payment amount must be greater than zero", err.Error())

	_, err = f.payments.CreatePayment(ctx, &CreatePaymentInput{
		BillID: uuid.NewString(), Amount: dec("10"), PaymentMode: enum.PaymentModeCash,
	})
	assertKind(t, err, apperror.KindNotFound)

	_, err = f.payments.CreatePayment(ctx, &CreatePaymentInput{BillID: bill.UUID.String(), Amount: dec("10")})
	assertKind(t, err, apperror.KindInvalidInput)
}

func TestSubCentAmountsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customer := f.customer(t, "Meera Sharma", "9876543210")
	bill := f.bill(t, customer)

	_, err := f.payments.CreatePayment(ctx, &CreatePaymentInput{
		BillID: bill.UUID.String(), Amount: dec("56443.999"), PaymentMode: enum.PaymentModeUPI,
	})
	assertKind(t, err, apperror.KindInvalidInput)
	assert.Contains(t, err.Error(), "amount must have at most 2 decimal places")

	stored, err := f.bills.GetBill(ctx, bill.UUID.String())
	require.NoError(t, err)
	assert.True(t, stored.TotalPaid.IsZero())
	assert.Equal(t, enum.PaymentStatusPending, stored.PaymentStatus)

	list, err := f.payments.SearchPayments(ctx, &SearchPaymentsInput{BillID: bill.UUID.String()})
	require.NoError(t, err)
	assert.EqualValues(t, 0, list.Total)

	// trailing zeros are not extra precision
	result, err := f.payments.CreatePayment(ctx, &CreatePaymentInput{
		BillID: bill.UUID.String(), Amount: dec("56444.000"), PaymentMode: enum.PaymentModeUPI,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentStatusPaid, result.UpdatedBill.PaymentStatus)
	assert.True(t, result.UpdatedBill.DueAmount.IsZero())

	_, err = f.bills.CreateBill(ctx, &CreateBillInput{
		CustomerID: customer.UUID.String(),
		Items:      []LineItemInput{ringLine()},
		Discount:   dec("0.005"),
	})
	assertKind(t, err, apperror.KindInvalidInput)

	_, err = f.bills.CreateBill(ctx, &CreateBillInput{
		CustomerID: customer.UUID.String(),
		Items:      []LineItemInput{ringLine()},
		Tax:        dec("3.125"),
	})
	assertKind(t, err, apperror.KindInvalidInput)

	line := ringLine()
	line.PricePerGram = dec("5000.001")
	_, err = f.bills.UpdateBill(ctx, bill.UUID.String(), &UpdateBillInput{Items: []LineItemInput{line}})
	assertKind(t, err, apperror.KindInvalidInput)
}

// staleBills reports a lost version race for the first stale calls
type staleBills struct {
	domainRepo.PaymentRepository
	stale int
	calls int
}

func (r *staleBills) RecordAgainstBill(ctx context.Context, p *entity.Payment, s entity.BillSettlement) (bool, error) {
	r.calls++
	if r.calls <= r.stale {
		return false, nil
	}
	return r.PaymentRepository.RecordAgainstBill(ctx, p, s)
}

func TestPaymentRetriesLostRace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	bill := f.bill(t, f.customer(t, "Meera Sharma", "9876543210"))

	repo := &staleBills{PaymentRepository: f.paymentRepo, stale: 2}
	f.payments.paymentRepo = repo

	result, err := f.payments.CreatePayment(ctx, &CreatePaymentInput{
		BillID: bill.UUID.String(), Amount: dec("100"), PaymentMode: enum.PaymentModeCard,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, repo.calls)
	assert.True(t, dec("100").Equal(result.UpdatedBill.TotalPaid))
}

func TestPaymentGivesUpAfterRetries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	bill := f.bill(t, f.customer(t, "Meera Sharma", "9876543210"))

	repo := &staleBills{PaymentRepository: f.paymentRepo, stale: 10}
	f.payments.paymentRepo = repo

	_, err := f.payments.CreatePayment(ctx, &CreatePaymentInput{
		BillID: bill.UUID.String(), Amount: dec("100"), PaymentMode: enum.PaymentModeCard,
	})
	assert.Equal(t, ErrConcurrentBillUpdate, err)
	assert.Equal(t, testPayment.MaxRetries, repo.calls)

	stored, err := f.bills.GetBill(ctx, bill.UUID.String())
	require.NoError(t, err)
	assert.True(t, stored.TotalPaid.IsZero())
}

func TestDeletePaymentKeepsBillPaid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	bill := f.bill(t, f.customer(t, "Meera Sharma", "9876543210"))

	result, err := f.payments.CreatePayment(ctx, &CreatePaymentInput{
		BillID: bill.UUID.String(), Amount: dec("1000"), PaymentMode: enum.PaymentModeCash,
	})
	require.NoError(t, err)

	require.NoError(t, f.payments.DeletePayment(ctx, result.Payment.UUID.String()))
	_, err = f.payments.GetPayment(ctx, result.Payment.UUID.String())
	assertKind(t, err, apperror.KindNotFound)

	stored, err := f.bills.GetBill(ctx, bill.UUID.String())
	require.NoError(t, err)
	assert.True(t, dec("1000").Equal(stored.TotalPaid))
}

func TestUpdateBillRepricesAgainstPaid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	bill := f.bill(t, f.customer(t, "Meera Sharma", "9876543210"))

	_, err := f.payments.CreatePayment(ctx, &CreatePaymentInput{
		BillID: bill.UUID.String(), Amount: dec("50000"), PaymentMode: enum.PaymentModeCash,
	})
	require.NoError(t, err)

	small := ringLine()
	small.Weight = dec("1")
	_, err = f.bills.UpdateBill(ctx, bill.UUID.String(), &UpdateBillInput{Items: []LineItemInput{small}})
	assertKind(t, err, apperror.KindInvalidInput)

	two := ringLine()
	two.Weight = dec("20")
	updated, err := f.bills.UpdateBill(ctx, bill.UUID.String(), &UpdateBillInput{
		Items: []LineItemInput{two}, Tax: dec("3"), Discount: dec("200"),
	})
	require.NoError(t, err)
	// 20g * 5000 * 1.1 = 110000, less 200, plus 3% tax
	assert.True(t, dec("113094").Equal(updated.Total), updated.Total.String())
	assert.True(t, dec("63094").Equal(updated.DueAmount), updated.DueAmount.String())
	assert.Equal(t, enum.PaymentStatusPartialPaid, updated.PaymentStatus)
	assert.Equal(t, "Meera Sharma", updated.CustomerName)

	_, err = f.payments.CreatePayment(ctx, &CreatePaymentInput{
		BillID: bill.UUID.String(), Amount: dec("63094"), PaymentMode: enum.PaymentModeUPI,
	})
	require.NoError(t, err)
}

func TestSearchBills(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	meera := f.customer(t, "Meera Sharma", "9876543210")
	asha := f.customer(t, "Asha Verma", "9123456780")
	mb := f.bill(t, meera)
	f.bill(t, asha)

	result, err := f.bills.SearchBills(ctx, &SearchBillsInput{Keyword: "meera"})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, mb.UUID, result.Data[0].UUID)
	assert.Equal(t, "Meera Sharma", result.Data[0].CustomerName)

	result, err = f.bills.SearchBills(ctx, &SearchBillsInput{UserID: asha.UUID.String(), Range: "thisMonth"})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Asha Verma", result.Data[0].CustomerName)

	result, err = f.bills.SearchBills(ctx, &SearchBillsInput{BillStatus: "Paid"})
	require.NoError(t, err)
	assert.Empty(t, result.Data)

	_, err = f.bills.SearchBills(ctx, &SearchBillsInput{Range: "forever"})
	assertKind(t, err, apperror.KindInvalidInput)
	assert.Equal(t, "Invalid range: forever", err.Error())

	_, err = f.bills.SearchBills(ctx, &SearchBillsInput{BillStatus: "Overdue"})
	assertKind(t, err, apperror.KindInvalidInput)

	require.NoError(t, f.bills.DeleteBill(ctx, mb.UUID.String()))
	result, err = f.bills.SearchBills(ctx, &SearchBillsInput{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Total)
}

func TestExportBills(t *testing.T) {
	f := newFixture(t)
	bill := f.bill(t, f.customer(t, "Meera Sharma", "9876543210"))

	var buf bytes.Buffer
	require.NoError(t, f.bills.ExportBills(context.Background(), &SearchBillsInput{}, &buf))

	records, err := spreadsheet.ReadRecords(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, bill.BillNumber, records[0]["bill number"])
	assert.Equal(t, "Meera Sharma", records[0]["customer"])
	assert.Equal(t, "Pending", records[0]["status"])
}

func TestGenerateInvoice(t *testing.T) {
	f := newFixture(t)
	bill := f.bill(t, f.customer(t, "Meera Sharma", "9876543210"))

	var buf bytes.Buffer
	require.NoError(t, f.bills.GenerateInvoice(context.Background(), bill.UUID.String(), &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

	err := f.bills.GenerateInvoice(context.Background(), uuid.NewString(), &buf)
	assertKind(t, err, apperror.KindNotFound)
}

func TestInvoiceDocument(t *testing.T) {
	f := newFixture(t)
	bill := f.bill(t, f.customer(t, "Meera Sharma", "9876543210"))

	doc := InvoiceDocument(bill)
	assert.Equal(t, bill.BillNumber, doc.InvoiceNumber)
	assert.Equal(t, "Meera Sharma", doc.CustomerName)
	require.Len(t, doc.Lines, 1)
	assert.Equal(t, "10.00", doc.Lines[0].Weight)
	assert.Equal(t, "Rs. 5,000.00", doc.Lines[0].Rate)
	assert.Equal(t, "10%", doc.Lines[0].Making)
	assert.Equal(t, "Rs. 55,000.00", doc.Lines[0].Total)
	assert.Equal(t, "Rs. 1,644.00", doc.Tax)
	assert.Equal(t, "Rs. 56,444.00", doc.GrandTotal)
}
