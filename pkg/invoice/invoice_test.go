package invoice

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chai2010/webp"
	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarnaabhushan/backoffice-api/pkg/apperror"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 120, 80))
	for x := 0; x < 120; x++ {
		for y := 0; y < 80; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: 0x28, B: uint8(y), A: 0xff})
		}
	}
	return img
}

func writePNG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, testImage()))
	return path
}

func testBrand() Brand {
	return Brand{
		Name:    "SWARN AABHUSHAN",
		Address: "12 Johari Bazaar, Jaipur",
		Phone:   "+91 98765 43210",
		Email:   "hello@swarnaabhushan.in",
		GSTIN:   "08ABCDE1234F1Z5",
	}
}

func testDocument(lines int) Document {
	doc := Document{
		InvoiceNumber: "BILL-A1B2C3",
		Date:          Date(time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)),
		CustomerName:  "Meera Sharma",
		CustomerPhone: "9876543210",
		Subtotal:      Money(decimal.RequireFromString("81000")),
		Tax:           Money(decimal.RequireFromString("2430")),
		Discount:      Money(decimal.Zero),
		GrandTotal:    Money(decimal.RequireFromString("83430")),
	}
	for i := 0; i < lines; i++ {
		doc.Lines = append(doc.Lines, Line{
			Name:   "Gold Ring with a rather long descriptive name that overflows",
			Weight: Weight(decimal.RequireFromString("10")),
			Rate:   Money(decimal.RequireFromString("7363.64")),
			Making: Percent(decimal.RequireFromString("10")),
			Total:  Money(decimal.RequireFromString("81000")),
		})
	}
	return doc
}

func TestRenderProducesPDF(t *testing.T) {
	r := NewRenderer(testBrand(), writePNG(t))

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, testDocument(3)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestRenderWithoutLines(t *testing.T) {
	r := NewRenderer(testBrand(), writePNG(t))

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, testDocument(0)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestRenderMissingLogo(t *testing.T) {
	r := NewRenderer(testBrand(), filepath.Join(t.TempDir(), "missing.png"))

	var buf bytes.Buffer
	err := r.Render(&buf, testDocument(1))
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindAssetNotFound))
	assert.Zero(t, buf.Len())
}

func TestRenderWebPLogo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.webp")
	var raw bytes.Buffer
	require.NoError(t, webp.Encode(&raw, testImage(), &webp.Options{Lossless: true}))
	require.NoError(t, os.WriteFile(path, raw.Bytes(), 0o600))

	r := NewRenderer(testBrand(), path)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, testDocument(1)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestLoadLogoIsSquare(t *testing.T) {
	raw, err := loadLogo(writePNG(t))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, logoPixels, img.Bounds().Dx())
	assert.Equal(t, logoPixels, img.Bounds().Dy())
}

func TestLoadLogoRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o600))

	_, err := loadLogo(path)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInternal))
}

func TestAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"999.5", "999.50"},
		{"1000", "1,000.00"},
		{"83430", "83,430.00"},
		{"1234567.891", "1,234,567.89"},
		{"-2500.5", "-2,500.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Amount(decimal.RequireFromString(tt.in)), tt.in)
	}
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "Rs. 7,363.64", Money(decimal.RequireFromString("7363.64")))
	assert.Equal(t, "10.50", Weight(decimal.RequireFromString("10.5")))
	assert.Equal(t, "12.5%", Percent(decimal.RequireFromString("12.5")))
	assert.Equal(t, "05 Mar 2024", Date(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)))
}

func TestFitTruncates(t *testing.T) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	p := &page{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	p.font("", 10)

	assert.Equal(t, "Ring", p.fit("Ring", 140))

	got := p.fit(strings.Repeat("Necklace ", 20), 140)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, p.width(got), 140.0)
}
