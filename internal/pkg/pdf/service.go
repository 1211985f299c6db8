// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/voice-shop/internal/config"
	"github.com/your-org/voice-shop/internal/domain/order"
)

var receiptTmpl = template.Must(template.New("receipt").Parse(receiptTemplate))

// Service renders order receipts
type Service struct {
	company CompanyInfo
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		company: CompanyInfo{
			Name:    cfg.Receipt.CompanyName,
			Email:   cfg.Receipt.CompanyEmail,
			Website: cfg.Receipt.CompanyWebsite,
		},
	}
}

// ReceiptData represents the data passed to the receipt template
type ReceiptData struct {
	ReceiptNumber string
	OrderDate     string
	Order         order.Order
	Company       CompanyInfo
}

// CompanyInfo represents company information
type CompanyInfo struct {
	Name    string
	Email   string
	Website string
}

// RenderHTML renders the receipt page for an order
func (s *Service) RenderHTML(o order.Order) ([]byte, error) {
	data := ReceiptData{
		ReceiptNumber: fmt.Sprintf("RCPT-%s", o.ID),
		OrderDate:     o.CreatedAt.Format("January 2, 2006 15:04 MST"),
		Order:         o,
		Company:       s.company,
	}

	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateReceipt renders the receipt and converts it to PDF with wkhtmltopdf
func (s *Service) GenerateReceipt(o order.Order) (*bytes.Buffer, error) {
	htmlContent, err := s.RenderHTML(o)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA5)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(htmlContent))
	page.FooterFontSize.Set(8)
	page.FooterCenter.Set(s.company.Website)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.ReceiptNumber}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 20px; color: #333; }
        .header { border-bottom: 2px solid #eee; padding-bottom: 16px; margin-bottom: 24px; }
        .title { font-size: 24px; font-weight: bold; color: #2563eb; }
        table { width: 100%; border-collapse: collapse; }
        td { padding: 6px 0; }
        .label { font-weight: bold; width: 140px; }
        .amount { text-align: right; }
        .grand-total td { border-top: 2px solid #333; font-weight: bold; font-size: 16px; }
    </style>
</head>
<body>
    <div class="header">
        <div class="title">{{.Company.Name}}</div>
        <div>{{.Company.Email}} &middot; {{.Company.Website}}</div>
    </div>
    <table>
        <tr><td class="label">Receipt</td><td>{{.ReceiptNumber}}</td></tr>
        <tr><td class="label">Order</td><td>{{.Order.ID}}</td></tr>
        <tr><td class="label">Date</td><td>{{.OrderDate}}</td></tr>
        <tr><td class="label">Status</td><td>{{.Order.Status}}</td></tr>
        <tr><td class="label">Estimated delivery</td><td>{{.Order.EtaDays}} days</td></tr>
    </table>
    <br>
    <table>
        <tr><td>Subtotal</td><td class="amount">{{.Order.FormattedSubtotal}}</td></tr>
        {{if .Order.PromoCode}}<tr><td>Discount ({{.Order.PromoCode}})</td><td class="amount">-{{.Order.FormattedDiscount}}</td></tr>{{end}}
        <tr class="grand-total"><td>Total</td><td class="amount">{{.Order.FormattedTotal}}</td></tr>
    </table>
</body>
</html>
`
