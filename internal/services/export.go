package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/nursingskill/backend/internal/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	exportSheetName  = "학습기록"
	exportDateLayout = "2006-01-02"
	exportTimeLayout = "15:04:05"

	resultPassed = "합격"
	resultFailed = "불합격"
)

// exportHeader is the fixed header row of the history export
var exportHeader = []string{"번호", "날짜", "시간", "유형", "술기", "점수", "결과"}

// utf8BOM lets spreadsheet applications detect UTF-8 in CSV files
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Export renders the history as a spreadsheet file.
//
// formatParam must be either "xlsx" or "csv"; an empty value means "xlsx".
// The file name carries the current date in the configured location.
func (s *dashboardService) Export(ctx context.Context, formatParam string) (*models.ExportFile, error) {
	format := models.ExportFormat(formatParam)
	if format == "" {
		format = models.ExportFormatXLSX
	}
	if format != models.ExportFormatXLSX && format != models.ExportFormatCSV {
		return nil, models.ErrInvalidExportFormat
	}

	records, err := s.History(ctx)
	if err != nil {
		return nil, err
	}

	rows := ExportRows(records, s.location)
	file := &models.ExportFile{
		FileName: fmt.Sprintf("nursing_history_%s.%s", s.now().In(s.location).Format("20060102"), format),
	}

	switch format {
	case models.ExportFormatCSV:
		file.ContentType = "text/csv; charset=utf-8"
		file.Content, err = RenderCSV(rows)
	default:
		file.ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		file.Content, err = RenderXLSX(rows)
	}
	if err != nil {
		s.logger.Error("failed to render export", zap.Error(err), zap.String("format", string(format)))
		return nil, fmt.Errorf("failed to render export: %w", err)
	}

	return file, nil
}

// ExportRows converts records into export rows including the header row
func ExportRows(records []models.AssessmentRecord, location *time.Location) [][]string {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, exportHeader)
	for i, record := range records {
		date := record.Date.In(location)
		result := resultFailed
		if record.Passed {
			result = resultPassed
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			date.Format(exportDateLayout),
			date.Format(exportTimeLayout),
			record.Type.Label(),
			record.SkillTitle,
			strconv.Itoa(record.Score),
			result,
		})
	}
	return rows
}

// RenderCSV renders rows into a UTF-8 CSV with a byte order mark
func RenderCSV(rows [][]string) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.Write(utf8BOM)

	w := csv.NewWriter(buf)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// RenderXLSX renders rows into a single-sheet workbook.
// The number and score columns are written as numbers.
func RenderXLSX(rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheetName); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, value := range row {
			cells[j] = value
			if i > 0 && (j == 0 || j == 5) {
				if n, err := strconv.Atoi(value); err == nil {
					cells[j] = n
				}
			}
		}

		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheetName, cell, &cells); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(exportSheetName, "B", "C", 12); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(exportSheetName, "D", "E", 20); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
