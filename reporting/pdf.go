package reporting

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/huseyin4215/QRCal-sub002/models"
)

const reportFilePrefix = "randevu-raporu"

var (
	fontOnce    sync.Once
	fontRegular []byte
	fontBold    []byte
)

// loadFonts reads the embedded-font assets exactly once, no matter how many
// exports run concurrently. Missing files are fine: the renderer then falls
// back to core fonts with the Turkish code page.
func loadFonts(dir string) {
	fontOnce.Do(func() {
		if dir == "" {
			return
		}
		fontRegular, _ = os.ReadFile(filepath.Join(dir, "DejaVuSans.ttf"))
		fontBold, _ = os.ReadFile(filepath.Join(dir, "DejaVuSans-Bold.ttf"))
		if fontBold == nil {
			fontBold = fontRegular
		}
	})
}

// FileName returns the download name for a report generated at t.
func FileName(t time.Time) string {
	return reportFilePrefix + "-" + t.Format("2006-01-02") + ".pdf"
}

var dataHeaders = [6]string{"Öğrenci", "Öğretim Üyesi", "Konu", "Tarih", "Saat", "Durum"}

// RenderPDF produces the report document: a title band, the generation
// timestamp, a status summary table and a six-column data table. All text
// goes through tr so Turkish characters survive the core-font fallback.
func RenderPDF(title string, rows []models.ReportRow, stats models.ReportStats, fontDir string) ([]byte, error) {
	loadFonts(fontDir)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(false, 0)

	family := "Arial"
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1254")
	if len(fontRegular) > 0 {
		family = "DejaVu"
		pdf.AddUTF8FontFromBytes(family, "", fontRegular)
		pdf.AddUTF8FontFromBytes(family, "B", fontBold)
		tr = func(s string) string { return s }
	}
	pdf.AddPage()

	// title band
	pdf.SetFillColor(63, 81, 181)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(family, "B", 16)
	pdf.CellFormat(0, 12, tr(title), "", 1, "C", true, 0, "")

	pdf.SetTextColor(105, 105, 105)
	pdf.SetFont(family, "", 9)
	generated := "Oluşturulma: " + stats.GeneratedAt.Format("02.01.2006 15:04")
	pdf.CellFormat(0, 8, tr(generated), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	renderStats(pdf, tr, family, stats)
	pdf.Ln(4)
	renderRows(pdf, tr, family, rows)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

func renderStats(pdf *gofpdf.Fpdf, tr func(string) string, family string, stats models.ReportStats) {
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont(family, "B", 11)
	pdf.CellFormat(0, 8, tr("Özet"), "", 1, "L", false, 0, "")

	lines := []struct {
		label string
		count int
	}{
		{"Toplam", stats.Total},
		{"Onaylanan", stats.Approved},
		{"Reddedilen", stats.Rejected},
		{"Bekleyen", stats.Pending},
		{"Yanıtsız", stats.NoResponse},
		{"İptal Edilen", stats.Cancelled},
	}
	pdf.SetFont(family, "", 10)
	pdf.SetFillColor(245, 245, 245)
	for i, line := range lines {
		fill := i%2 == 1
		pdf.CellFormat(60, 7, tr(line.label), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(25, 7, strconv.Itoa(line.count), "1", 1, "C", fill, 0, "")
	}
}

// colWidths sizes date/time/status to their widest content and splits the
// remaining page width evenly over student/faculty/topic.
func colWidths(pdf *gofpdf.Fpdf, tr func(string) string, family string, rows []models.ReportRow) [6]float64 {
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right

	pdf.SetFont(family, "", 9)
	auto := [3]float64{
		pdf.GetStringWidth(tr(dataHeaders[3])),
		pdf.GetStringWidth(tr(dataHeaders[4])),
		pdf.GetStringWidth(tr(dataHeaders[5])),
	}
	for _, row := range rows {
		for i, s := range [3]string{row.Date, row.Time, row.Status} {
			if w := pdf.GetStringWidth(tr(s)); w > auto[i] {
				auto[i] = w
			}
		}
	}

	var widths [6]float64
	fixed := 0.0
	for i, w := range auto {
		widths[3+i] = w + 4
		fixed += widths[3+i]
	}
	flex := (usable - fixed) / 3
	widths[0], widths[1], widths[2] = flex, flex, flex
	return widths
}

func renderRows(pdf *gofpdf.Fpdf, tr func(string) string, family string, rows []models.ReportRow) {
	widths := colWidths(pdf, tr, family, rows)

	header := func() {
		pdf.SetFont(family, "B", 9)
		pdf.SetFillColor(63, 81, 181)
		pdf.SetTextColor(255, 255, 255)
		for i, h := range dataHeaders {
			ln := 0
			if i == len(dataHeaders)-1 {
				ln = 1
			}
			pdf.CellFormat(widths[i], 8, tr(h), "1", ln, "C", true, 0, "")
		}
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont(family, "", 9)
		pdf.SetFillColor(240, 240, 240)
	}
	header()

	_, pageH := pdf.GetPageSize()
	for n, row := range rows {
		if pdf.GetY() > pageH-20 {
			pdf.AddPage()
			header()
		}
		fill := n%2 == 1
		cells := [6]string{row.Student, row.Faculty, row.Topic, row.Date, row.Time, row.Status}
		for i, cell := range cells {
			ln := 0
			align := "L"
			if i >= 3 {
				align = "C"
			}
			if i == len(cells)-1 {
				ln = 1
			}
			pdf.CellFormat(widths[i], 7, fit(pdf, tr(cell), widths[i]), "1", ln, align, fill, 0, "")
		}
	}
}

// fit truncates a cell value that would overflow its column.
func fit(pdf *gofpdf.Fpdf, s string, w float64) string {
	if pdf.GetStringWidth(s) <= w-3 {
		return s
	}
	runes := []rune(s)
	for len(runes) > 1 && pdf.GetStringWidth(string(runes)+"...") > w-3 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
