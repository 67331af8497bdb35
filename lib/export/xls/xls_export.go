package xlsexport

import (
	"bytes"

	"interview-assessment/lib/assessment"
	"interview-assessment/lib/report"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	ContentType     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	CandidateSheet  = "Candidate"
	AssessmentSheet = "Assessment"
)

type Provider interface {
	ExportReport(r report.Report) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var (
	candidateHeaders  = []string{"Field", "Value"}
	assessmentHeaders = []string{"Section", "Question", "Score", "Notes"}

	candidateLabels = map[assessment.Field]string{
		assessment.FieldName:           "Candidate Name",
		assessment.FieldDate:           "Date",
		assessment.FieldCurrentRole:    "Current Role",
		assessment.FieldCurrentCompany: "Current Company",
		assessment.FieldCurrentSalary:  "Current Salary",
		assessment.FieldMinimumSalary:  "Minimum Required Salary",
		assessment.FieldNoticePeriod:   "Notice Period",
		assessment.FieldRelocationOpen: "Open to Relocation",
		assessment.FieldNotes:          "Additional Notes",
	}
)

func (i impl) ExportReport(r report.Report) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	if err := f.SetSheetName("Sheet1", CandidateSheet); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа в xlsx")
	}
	if err := writeCandidateSheet(f, r.CandidateInfo); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования листа кандидата в xlsx")
	}
	if _, err := f.NewSheet(AssessmentSheet); err != nil {
		return nil, errors.Wrap(err, "ошибка создания листа оценки в xlsx")
	}
	if err := writeAssessmentSheet(f, r.AssessmentData); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования листа оценки в xlsx")
	}
	return f.WriteToBuffer()
}

func writeCandidateSheet(f *excelize.File, profile assessment.CandidateProfile) error {
	row, err := writeHeader(f, CandidateSheet, 0, candidateHeaders, []float64{28, 60})
	if err != nil {
		return err
	}
	if err = applyDataCellStyle(f, CandidateSheet, 1, row+1, len(candidateHeaders), row+len(assessment.Fields)); err != nil {
		return err
	}
	for _, field := range assessment.Fields {
		row++
		var value interface{} = profile.Value(field)
		if field.IsBool() {
			value = yesNo(profile.RelocationOpen)
		}
		if err = writeRow(f, CandidateSheet, row, candidateLabels[field], value); err != nil {
			return err
		}
	}
	return nil
}

func writeAssessmentSheet(f *excelize.File, sections []report.SectionResult) error {
	row, err := writeHeader(f, AssessmentSheet, 0, assessmentHeaders, []float64{28, 70, 8, 60})
	if err != nil {
		return err
	}
	total := 0
	for _, section := range sections {
		total += len(section.Questions)
	}
	if err = applyDataCellStyle(f, AssessmentSheet, 1, row+1, len(assessmentHeaders), row+total); err != nil {
		return err
	}
	for _, section := range sections {
		for _, question := range section.Questions {
			row++
			if err = writeRow(f, AssessmentSheet, row, section.Title, question.Question, question.Score, question.Notes); err != nil {
				return err
			}
		}
	}
	return nil
}

func yesNo(flag bool) string {
	if flag {
		return "Yes"
	}
	return "No"
}
