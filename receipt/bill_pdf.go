package receipt

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/yeremiapane/bill-printing-app/models"
	"github.com/yeremiapane/bill-printing-app/utils"
)

// Thermal roll layout, in millimetres.
const (
	paperWidth  = 80.0
	margin      = 4.0
	contentW    = paperWidth - 2*margin
	amountW     = 26.0
	lineHeight  = 5.0
	baseHeight  = 90.0
	fontFamily  = "Helvetica"
	thankYouMsg = "Thank you! Visit again."
)

type RestaurantInfo struct {
	Name    string
	Address string
	Phone   string
}

// Row is one printed line: a label on the left, an amount on the right.
type Row struct {
	Label  string
	Amount string
	Bold   bool
}

// Bill is the printable layout of a stored order.
type Bill struct {
	Header   []string
	Items    []Row
	Summary  []Row
	Payments []Row
}

// BuildBill lays out the stored snapshot. Amounts come from the order as stored.
func BuildBill(order *models.Order, info RestaurantInfo) Bill {
	b := Bill{}

	b.Header = append(b.Header, info.Name)
	if info.Address != "" {
		b.Header = append(b.Header, info.Address)
	}
	if info.Phone != "" {
		b.Header = append(b.Header, "Tel: "+info.Phone)
	}
	b.Header = append(b.Header, "Bill #"+shortID(order.ID))
	if order.TableNo != nil && *order.TableNo != "" {
		b.Header = append(b.Header, "Table: "+*order.TableNo)
	}
	b.Header = append(b.Header, order.CreatedAt.Format("02 Jan 2006 15:04"))

	for _, line := range order.Items {
		label := fmt.Sprintf("%s  %d x %s", line.Name, line.Quantity, utils.FormatCurrencyINR(line.Price))
		b.Items = append(b.Items, Row{Label: label, Amount: utils.FormatCurrencyINR(line.LineSubtotal())})
		if line.Notes != nil && *line.Notes != "" {
			b.Items = append(b.Items, Row{Label: "  * " + *line.Notes})
		}
	}

	if order.Discount > 0 {
		b.Summary = append(b.Summary, Row{Label: "Discount", Amount: "-" + utils.FormatCurrencyINR(order.Discount)})
	}
	b.Summary = append(b.Summary,
		Row{Label: "Subtotal", Amount: utils.FormatCurrencyINR(order.Subtotal)},
		Row{Label: "GST", Amount: utils.FormatCurrencyINR(order.TaxTotal)},
		Row{Label: "Grand Total", Amount: utils.FormatCurrencyINR(order.GrandTotal), Bold: true},
	)

	for _, p := range order.Payments {
		label := "Paid (" + strings.ToUpper(p.Method) + ")"
		if p.Reference != nil && *p.Reference != "" {
			label += " " + *p.Reference
		}
		b.Payments = append(b.Payments, Row{Label: label, Amount: utils.FormatCurrencyINR(p.Amount)})
	}
	if len(order.Payments) > 0 {
		balance := math.Max(0, order.GrandTotal-order.PaidAmount())
		b.Payments = append(b.Payments, Row{Label: "Balance Due", Amount: utils.FormatCurrencyINR(utils.RoundMoney(balance)), Bold: true})
	}

	return b
}

// RenderBill writes the order's bill as a single-page PDF sized for an 80mm roll.
func RenderBill(w io.Writer, order *models.Order, info RestaurantInfo) error {
	bill := BuildBill(order, info)

	rows := len(bill.Header) + len(bill.Items) + len(bill.Summary) + len(bill.Payments)
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: paperWidth, Ht: baseHeight + float64(rows)*lineHeight},
	})
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.SetTitle("Bill "+order.ID, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, line := range bill.Header {
		if i == 0 {
			pdf.SetFont(fontFamily, "B", 12)
		} else {
			pdf.SetFont(fontFamily, "", 8)
		}
		pdf.CellFormat(contentW, lineHeight, tr(line), "", 1, "C", false, 0, "")
	}

	divider(pdf)
	pdf.SetFont(fontFamily, "", 8)
	writeRows(pdf, tr, bill.Items)
	divider(pdf)
	writeRows(pdf, tr, bill.Summary)
	if len(bill.Payments) > 0 {
		divider(pdf)
		writeRows(pdf, tr, bill.Payments)
	}
	divider(pdf)

	pdf.SetFont(fontFamily, "I", 8)
	pdf.CellFormat(contentW, lineHeight, thankYouMsg, "", 1, "C", false, 0, "")

	return pdf.Output(w)
}

func writeRows(pdf *fpdf.Fpdf, tr func(string) string, rows []Row) {
	for _, r := range rows {
		style := ""
		if r.Bold {
			style = "B"
		}
		pdf.SetFont(fontFamily, style, 8)
		pdf.CellFormat(contentW-amountW, lineHeight, tr(r.Label), "", 0, "L", false, 0, "")
		pdf.CellFormat(amountW, lineHeight, r.Amount, "", 1, "R", false, 0, "")
	}
}

func divider(pdf *fpdf.Fpdf) {
	y := pdf.GetY() + 1
	pdf.Line(margin, y, paperWidth-margin, y)
	pdf.Ln(2)
}

func shortID(id string) string {
	if len(id) > 8 {
		return strings.ToUpper(id[:8])
	}
	return strings.ToUpper(id)
}
