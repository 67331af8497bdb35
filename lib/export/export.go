package export

import (
	"time"

	"interview-assessment/lib/assessment"
	"interview-assessment/lib/catalog"
	pdfexport "interview-assessment/lib/export/pdf"
	xlsexport "interview-assessment/lib/export/xls"
	"interview-assessment/lib/metrics"
	"interview-assessment/lib/report"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

var ErrUnknownFormat = errors.New("неизвестный формат выгрузки")

func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%s", value)
}

// Build формирует файл отчёта в нужном формате.
// Содержимое всегда строится из одного и того же report.Report.
func Build(format Format, title string, state assessment.FormState, cat *catalog.Catalog, now time.Time) (report.Artifact, error) {
	artifact, err := build(format, title, state, cat, now)
	if err != nil {
		metrics.ReportExportsFailed.WithLabelValues(string(format)).Inc()
		log.WithError(err).WithField("format", format).Error("ошибка выгрузки отчёта")
		return report.Artifact{}, err
	}
	metrics.ReportsExported.WithLabelValues(string(format)).Inc()
	log.WithField("format", format).WithField("file_name", artifact.FileName).Info("отчёт выгружен")
	return artifact, nil
}

func build(format Format, title string, state assessment.FormState, cat *catalog.Catalog, now time.Time) (report.Artifact, error) {
	switch format {
	case FormatJSON:
		return report.Export(state, cat, now)
	case FormatXLSX:
		if xlsexport.Instance == nil {
			xlsexport.NewHandler()
		}
		buf, err := xlsexport.Instance.ExportReport(report.Generate(state, cat))
		if err != nil {
			return report.Artifact{}, err
		}
		return report.Artifact{
			FileName:    report.FileNameWithExt(state.Profile.Name, now, string(FormatXLSX)),
			ContentType: xlsexport.ContentType,
			Body:        buf.Bytes(),
		}, nil
	case FormatPDF:
		body, err := pdfexport.GenerateReport(title, report.Generate(state, cat))
		if err != nil {
			return report.Artifact{}, errors.Wrap(err, "ошибка формирования pdf")
		}
		return report.Artifact{
			FileName:    report.FileNameWithExt(state.Profile.Name, now, string(FormatPDF)),
			ContentType: pdfexport.ContentType,
			Body:        body,
		}, nil
	}
	return report.Artifact{}, errors.Wrapf(ErrUnknownFormat, "%s", format)
}
