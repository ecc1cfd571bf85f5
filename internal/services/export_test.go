package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/nursingskill/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func exportRecords() []models.AssessmentRecord {
	return []models.AssessmentRecord{
		record(100, true, models.AssessmentTypeSelfCheck, "활력징후 측정", time.Date(2024, 5, 9, 23, 30, 0, 0, time.UTC)),
		record(40, false, models.AssessmentTypeGameOrder, "기관 흡인", time.Date(2024, 5, 10, 1, 5, 9, 0, time.UTC)),
		record(90, true, models.AssessmentTypeGameItem, "기관 흡인", time.Date(2024, 5, 10, 2, 0, 0, 0, time.UTC)),
	}
}

func TestExportRows(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)

	rows := ExportRows(exportRecords(), seoul)

	require.Len(t, rows, 4)
	assert.Equal(t, []string{"번호", "날짜", "시간", "유형", "술기", "점수", "결과"}, rows[0])
	assert.Equal(t, []string{"1", "2024-05-10", "08:30:00", "자가평가", "활력징후 측정", "100", "합격"}, rows[1])
	assert.Equal(t, []string{"2", "2024-05-10", "10:05:09", "게임(순서 맞추기)", "기관 흡인", "40", "불합격"}, rows[2])
	assert.Equal(t, "게임(물품 준비)", rows[3][3])
}

func TestRenderCSV(t *testing.T) {
	content, err := RenderCSV(ExportRows(exportRecords(), time.UTC))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}))

	rows, err := csv.NewReader(bytes.NewReader(content[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "번호", rows[0][0])
	assert.Equal(t, "23:30:00", rows[1][2])
}

func TestRenderXLSX(t *testing.T) {
	content, err := RenderXLSX(ExportRows(exportRecords(), time.UTC))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"학습기록"}, f.GetSheetList())
	rows, err := f.GetRows("학습기록")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"번호", "날짜", "시간", "유형", "술기", "점수", "결과"}, rows[0])
	assert.Equal(t, []string{"3", "2024-05-10", "02:00:00", "게임(물품 준비)", "기관 흡인", "90", "합격"}, rows[3])
}

func TestDashboardService_Export(t *testing.T) {
	tests := []struct {
		name                string
		format              string
		expectedError       error
		expectedFileName    string
		expectedContentType string
	}{
		{
			name:                "default xlsx",
			format:              "",
			expectedFileName:    "nursing_history_20240510.xlsx",
			expectedContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		},
		{
			name:                "csv",
			format:              "csv",
			expectedFileName:    "nursing_history_20240510.csv",
			expectedContentType: "text/csv; charset=utf-8",
		},
		{
			name:          "invalid format",
			format:        "pdf",
			expectedError: models.ErrInvalidExportFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := &mockHistoryRepository{records: exportRecords()}
			svc := NewDashboardService(history, time.UTC, zap.NewNop())
			svc.now = func() time.Time { return testNow }

			file, err := svc.Export(context.Background(), tt.format)

			if tt.expectedError != nil {
				assert.True(t, errors.Is(err, tt.expectedError))
				assert.Nil(t, file)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedFileName, file.FileName)
			assert.Equal(t, tt.expectedContentType, file.ContentType)
			assert.NotEmpty(t, file.Content)
		})
	}
}

func TestDashboardService_ExportReadFailure(t *testing.T) {
	history := &mockHistoryRepository{readErr: errors.New("connection refused")}
	svc := NewDashboardService(history, time.UTC, zap.NewNop())

	file, err := svc.Export(context.Background(), "csv")
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(file.Content, utf8BOM))).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{exportHeader}, rows)
}
