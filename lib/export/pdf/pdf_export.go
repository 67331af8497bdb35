package pdfexport

import (
	"bytes"
	_ "embed"
	"fmt"

	"interview-assessment/lib/assessment"
	"interview-assessment/lib/rating"
	"interview-assessment/lib/report"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	ContentType = "application/pdf"
	fontFamily  = "DejaVu"
)

var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	fontRegular []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	fontBold []byte
	//go:embed fonts/DejaVuSansCondensed-Oblique.ttf
	fontItalic []byte
)

var profileRows = []struct {
	label string
	field assessment.Field
}{
	{"Candidate Name", assessment.FieldName},
	{"Date", assessment.FieldDate},
	{"Current Role", assessment.FieldCurrentRole},
	{"Current Company", assessment.FieldCurrentCompany},
	{"Current Salary", assessment.FieldCurrentSalary},
	{"Minimum Required Salary", assessment.FieldMinimumSalary},
	{"Notice Period", assessment.FieldNoticePeriod},
	{"Open to Relocation", assessment.FieldRelocationOpen},
}

// GenerateReport - печатная версия отчёта оценки.
// Шрифты DejaVu встроены в бинарник, текст выводится в UTF-8.
func GenerateReport(title string, r report.Report) ([]byte, error) {
	return generate(title, r, true)
}

func generate(title string, r report.Report, compress bool) (pdfFile []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Errorf("GenerateReport panic recover: %v", rec)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.AddUTF8FontFromBytes(fontFamily, "", fontRegular)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", fontBold)
	pdf.AddUTF8FontFromBytes(fontFamily, "I", fontItalic)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	pdf.SetTitle(title, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// заголовок
	pdf.SetFillColor(239, 68, 68)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 12, title, "", 1, "L", true, 0, "")
	pdf.Ln(4)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont(fontFamily, "", 11)
	for _, item := range profileRows {
		value := fmt.Sprint(r.CandidateInfo.Value(item.field))
		if item.field.IsBool() {
			value = "No"
			if r.CandidateInfo.RelocationOpen {
				value = "Yes"
			}
		}
		pdf.SetFont(fontFamily, "B", 11)
		pdf.CellFormat(55, 7, item.label, "", 0, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 11)
		pdf.MultiCell(0, 7, value, "", "L", false)
	}

	for _, section := range r.AssessmentData {
		pdf.Ln(4)
		pdf.SetTextColor(239, 68, 68)
		pdf.SetFont(fontFamily, "B", 13)
		pdf.CellFormat(0, 9, section.Title, "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		for _, question := range section.Questions {
			pdf.SetFont(fontFamily, "B", 10)
			pdf.MultiCell(0, 6, question.Question, "", "L", false)
			pdf.SetFont(fontFamily, "", 10)
			score := fmt.Sprintf("%s  %d/%d", rating.Glyphs(question.Score, "*", "-"), question.Score, rating.Positions)
			pdf.CellFormat(0, 6, score, "", 1, "L", false, 0, "")
			if question.Notes != "" {
				pdf.SetFont(fontFamily, "I", 10)
				pdf.MultiCell(0, 6, question.Notes, "", "L", false)
			}
			pdf.Ln(2)
		}
	}

	if r.CandidateInfo.Notes != "" {
		pdf.Ln(4)
		pdf.SetTextColor(239, 68, 68)
		pdf.SetFont(fontFamily, "B", 13)
		pdf.CellFormat(0, 9, "Additional Notes", "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont(fontFamily, "", 10)
		pdf.MultiCell(0, 6, r.CandidateInfo.Notes, "", "L", false)
	}

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
