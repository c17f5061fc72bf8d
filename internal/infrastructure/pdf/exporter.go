package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/senior-copycoders/Backend/internal/domain/model"
)

// ScheduleExporter implements port.ScheduleRenderer using gofpdf.
type ScheduleExporter struct{}

// NewScheduleExporter creates a PDF schedule renderer.
func NewScheduleExporter() *ScheduleExporter {
	return &ScheduleExporter{}
}

var columns = []struct {
	title string
	width float64
}{
	{"#", 10},
	{"Due date", 26},
	{"Amount", 42},
	{"Interest", 42},
	{"Principal", 42},
	{"Balance before", 42},
	{"Balance after", 42},
	{"Status", 24},
}

// Render produces a landscape A4 document with one table row per
// installment.
func (e *ScheduleExporter) Render(credit model.Credit) ([]byte, error) {
	doc := gofpdf.New("L", "mm", "A4", "")
	doc.SetTitle("Payment schedule", false)
	doc.AddPage()

	doc.SetFont("Arial", "B", 14)
	doc.CellFormat(0, 10, fmt.Sprintf("Payment schedule %s", credit.ID()), "", 1, "L", false, 0, "")

	doc.SetFont("Arial", "", 10)
	doc.CellFormat(0, 6, fmt.Sprintf(
		"%s credit of %s, rate %s%%, %d months, opened against an initial payment of %s",
		credit.CreditType(), credit.CreditAmount(), credit.AnnualRate(),
		credit.TermMonths(), credit.InitialPayment(),
	), "", 1, "L", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Arial", "B", 9)
	doc.SetFillColor(230, 230, 230)
	for _, col := range columns {
		doc.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Arial", "", 9)
	for _, inst := range credit.Schedule() {
		cells := []string{
			fmt.Sprintf("%d", inst.Number),
			inst.DueDate.Format("2006-01-02"),
			inst.Amount.StringFixed(2),
			inst.Interest.StringFixed(2),
			inst.Principal.StringFixed(2),
			inst.BalanceBefore.StringFixed(2),
			inst.BalanceAfter.StringFixed(2),
			inst.Status.String(),
		}
		for i, col := range columns {
			align := "R"
			if i == 0 || i == 1 || i == 7 {
				align = "C"
			}
			doc.CellFormat(col.width, 6, cells[i], "1", 0, align, false, 0, "")
		}
		doc.Ln(-1)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}
