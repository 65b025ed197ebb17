package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	apperrors "github.com/notulen-team/e-notulen/errors"
	"github.com/notulen-team/e-notulen/internal/domain/entities"
)

// Layout constants, in millimeters on an A4 portrait page.
const (
	marginLeft   = 20.0
	marginRight  = 20.0
	contentRight = 190.0
	pageCenter   = 105.0
	topMargin    = 20.0

	lineHeight = 5.0
	rowHeight  = 7.0

	// Greedy page-break thresholds: body text breaks later than tables and
	// the signature block, which need more room.
	breakBody  = 260.0
	breakTable = 250.0
	breakBlock = 240.0

	signaturePlaceholder = "______________________"
)

const (
	orgLine1 = "BADAN PENGAWASAN KEUANGAN DAN PEMBANGUNAN"
	orgLine2 = "PERWAKILAN PROVINSI PAPUA TENGAH"
	docTitle = "NOTULEN RAPAT"
)

// PDFDocument is a rendered meeting document.
type PDFDocument struct {
	FileName string
	Content  []byte
}

// RenderPDF lays a meeting out as a paginated printable document. The layout
// is greedy: each block starts a new page when the cursor passes the
// threshold for its block type; wrapped paragraphs complete within the page
// they start on, accepting overflow rather than splitting.
func RenderPDF(m entities.Meeting) (*PDFDocument, error) {
	if err := m.Validate(); err != nil {
		return nil, apperrors.ErrInvalidRecord(m.ID, err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	r := &pdfRenderer{pdf: pdf}
	r.header(m)
	r.attendeeTable(m.Attendees)
	r.pointsSection(m.Points)
	r.followUpSection(m.FollowUp)
	r.actionItemTable(m.ActionItems)
	r.signatureBlock(m.ScribeName, m.ApproverName)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, apperrors.ErrExportFailed("pdf", err)
	}
	return &PDFDocument{
		FileName: documentFileName(m),
		Content:  buf.Bytes(),
	}, nil
}

// documentFileName derives the download name from title and date, whitespace
// collapsed to underscores.
func documentFileName(m entities.Meeting) string {
	title := strings.Join(strings.Fields(m.Title), "_")
	if title == "" {
		title = "Rapat"
	}
	return fmt.Sprintf("Notulen_%s_%s.pdf", title, m.Date)
}

type pdfRenderer struct {
	pdf *gofpdf.Fpdf
	y   float64
}

// ensure starts a new page when the cursor has passed the given threshold.
func (r *pdfRenderer) ensure(threshold float64) {
	if r.y > threshold {
		r.pdf.AddPage()
		r.y = topMargin
	}
}

func (r *pdfRenderer) centeredText(x, y float64, text string) {
	w := r.pdf.GetStringWidth(text)
	r.pdf.Text(x-w/2, y, text)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (r *pdfRenderer) header(m entities.Meeting) {
	pdf := r.pdf

	pdf.SetFont("Helvetica", "B", 14)
	r.centeredText(pageCenter, 15, orgLine1)
	pdf.SetFont("Helvetica", "B", 12)
	r.centeredText(pageCenter, 22, orgLine2)

	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, 27, contentRight, 27)
	pdf.SetLineWidth(0.2)
	pdf.Line(marginLeft, 28, contentRight, 28)

	pdf.SetFont("Helvetica", "B", 14)
	r.centeredText(pageCenter, 40, docTitle)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(marginLeft, 50, fmt.Sprintf("Judul Rapat : %s", orDash(m.Title)))
	pdf.Text(marginLeft, 56, fmt.Sprintf("Tanggal      : %s", orDash(m.Date)))
	pdf.Text(marginLeft, 62, fmt.Sprintf("Tempat       : %s", orDash(m.Location)))

	r.y = 75
}

func (r *pdfRenderer) attendeeTable(attendees []entities.Attendee) {
	r.ensure(breakTable)
	r.sectionHeader("I. DAFTAR PESERTA")

	rows := make([][]string, 0, len(attendees))
	for i, a := range attendees {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), a.Name, a.Position})
	}
	if len(rows) == 0 {
		rows = append(rows, []string{"-", "Tidak ada data", "-"})
	}
	r.table([]string{"No", "Nama", "Jabatan"}, []float64{15, 77.5, 77.5}, rows)
	r.y += 15
}

func (r *pdfRenderer) pointsSection(points []entities.NotePoint) {
	r.ensure(breakBody)
	r.sectionHeader("II. PEMBAHASAN DAN KEPUTUSAN")
	r.y += 3

	pdf := r.pdf
	for i, p := range points {
		r.ensure(breakBody)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Text(marginLeft+5, r.y, fmt.Sprintf("%d. [%s]", i+1, strings.ToUpper(string(p.Category))))
		r.y += 6

		pdf.SetFont("Helvetica", "", 10)
		lines := pdf.SplitText(orDash(p.Content), 160)
		for _, line := range lines {
			pdf.Text(marginLeft+5, r.y, line)
			r.y += lineHeight
		}
		r.y += lineHeight
	}
	r.y += 10
}

func (r *pdfRenderer) followUpSection(followUp string) {
	r.ensure(breakBody)
	r.sectionHeader("III. RENCANA TINDAK LANJUT")
	r.y += 3

	pdf := r.pdf
	pdf.SetFont("Helvetica", "", 10)
	lines := pdf.SplitText(orDash(followUp), 170)
	for _, line := range lines {
		pdf.Text(marginLeft, r.y, line)
		r.y += lineHeight
	}
	r.y += 15
}

func (r *pdfRenderer) actionItemTable(items []entities.ActionItem) {
	r.ensure(breakBlock)
	r.sectionHeader("IV. PENANGGUNGJAWAB TINDAK LANJUT")

	rows := make([][]string, 0, len(items))
	for i, item := range items {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), item.Assignee, item.Task, item.Deadline})
	}
	if len(rows) == 0 {
		rows = append(rows, []string{"-", "Belum ada", "-", "-"})
	}
	r.table([]string{"No", "Nama Penanggungjawab", "Tugas", "Tenggat Waktu"}, []float64{15, 55, 65, 35}, rows)
}

func (r *pdfRenderer) signatureBlock(scribeName, approverName string) {
	r.y += 25
	r.ensure(breakBlock)

	pdf := r.pdf
	pdf.SetFont("Helvetica", "", 10)
	r.centeredText(40, r.y, "Notulis,")
	r.centeredText(150, r.y, "Mengetahui,")

	// Vertical gap standing in for the handwritten signatures.
	r.y += 25

	pdf.SetFont("Helvetica", "B", 10)
	scribe := strings.TrimSpace(scribeName)
	if scribe == "" {
		scribe = signaturePlaceholder
	}
	approver := strings.TrimSpace(approverName)
	if approver == "" {
		approver = signaturePlaceholder
	}
	r.centeredText(40, r.y, scribe)
	r.centeredText(150, r.y, approver)
}

func (r *pdfRenderer) sectionHeader(title string) {
	r.pdf.SetFont("Helvetica", "B", 10)
	r.pdf.Text(marginLeft, r.y, title)
	r.y += lineHeight
}

// table draws a grid table with a filled header row. Cell content wraps; a
// row taller than one line grows the whole row. Rows past the table threshold
// continue on a fresh page.
func (r *pdfRenderer) table(head []string, widths []float64, rows [][]string) {
	pdf := r.pdf

	drawRow := func(cells []string, fill bool) {
		lineCounts := 1
		wrapped := make([][]string, len(cells))
		for i, cell := range cells {
			wrapped[i] = pdf.SplitText(cell, widths[i]-2)
			if len(wrapped[i]) > lineCounts {
				lineCounts = len(wrapped[i])
			}
		}
		height := float64(lineCounts)*lineHeight + 2

		x := marginLeft
		for i := range cells {
			style := "D"
			if fill {
				style = "FD"
			}
			pdf.Rect(x, r.y, widths[i], height, style)
			textY := r.y + lineHeight - 0.5
			for _, line := range wrapped[i] {
				pdf.Text(x+1, textY, line)
				textY += lineHeight
			}
			x += widths[i]
		}
		r.y += height
	}

	pdf.SetFillColor(51, 65, 85)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	drawRow(head, true)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		r.ensure(breakTable)
		drawRow(row, false)
	}
}
