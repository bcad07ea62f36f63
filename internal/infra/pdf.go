package infra

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/catvAlbuss/minimarketsystem/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// VoucherLine is one already-resolved product line of the receipt.
type VoucherLine struct {
	Product  string
	Quantity int
	Discount decimal.Decimal
	SubTotal decimal.Decimal
}

// GenerateVoucherPDF renders a thermal receipt-style voucher for a sale and
// writes it to storagePath/voucher_{number}.pdf. Returns the file path.
func GenerateVoucherPDF(sale *model.Sale, customer *model.Customer, lines []VoucherLine, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("voucher_%s.pdf", sale.VoucherNumber)
	filePath := filepath.Join(storagePath, fileName)

	// A7 ≈ 74mm × 105mm, close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Minimarket", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	title := "Ticket de Venta"
	if sale.Voucher == "invoice" {
		title = "Factura de Venta"
	}
	pdf.CellFormat(contentW, 5, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, "Comprobante "+sale.VoucherNumber, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, sale.DateTime.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, fmt.Sprintf("Cliente: %s %s (DNI %s)", customer.Name, customer.LastName, customer.DNI), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	col1 := contentW * 0.52
	col2 := contentW * 0.16
	col3 := contentW * 0.32

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, line := range lines {
		name := line.Product
		if len(name) > 22 {
			name = name[:21] + "…"
		}
		pdf.CellFormat(col1, 5, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", line.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "S/"+line.SubTotal.StringFixed(2), "", 1, "R", false, 0, "")
		if !line.Discount.IsZero() {
			pdf.SetFont("Helvetica", "I", 6)
			pdf.CellFormat(col1+col2, 4, "  descuento", "", 0, "L", false, 0, "")
			pdf.CellFormat(col3, 4, "-S/"+line.Discount.StringFixed(2), "", 1, "R", false, 0, "")
			pdf.SetFont("Helvetica", "", 7)
		}
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1+col2, 5, "IGV:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 5, sale.IGV.Mul(decimal.NewFromInt(100)).StringFixed(0)+"%", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "S/"+sale.Total.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1+col2, 4, "Pago ("+sale.PaymentMethod+"):", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 4, "S/"+sale.Total.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "¡Gracias por su compra!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
