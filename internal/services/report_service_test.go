package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gearguard/internal/dto"
)

func TestRequestsWorkbook(t *testing.T) {
	requestDate := time.Date(2026, 8, 12, 9, 30, 0, 0, time.UTC)
	repo := &fakeRequestRepo{}
	repo.listItems = []dto.RequestListItemDTO{
		{
			ID:              uuid.New(),
			Subject:         "Hydraulic press leaking",
			Description:     null.StringFrom("oil pooling under the frame"),
			Type:            "CORRECTIVE",
			Priority:        "HIGH",
			Stage:           "IN_PROGRESS",
			RequestDate:     requestDate,
			DurationMinutes: 90,
			EquipmentName:   null.StringFrom("Hydraulic Press"),
			EquipmentSerial: null.StringFrom("HP-001"),
			TeamName:        null.StringFrom("Mechanical"),
			AssignedTo:      null.StringFrom("Sam Ortiz"),
		},
		{
			ID:          uuid.New(),
			Subject:     "Quarterly HVAC check",
			Type:        "PREVENTIVE",
			Priority:    "LOW",
			Stage:       "NEW",
			RequestDate: requestDate,
			ScheduledAt: null.TimeFrom(requestDate.Add(48 * time.Hour)),
		},
	}
	svc := NewReportService(repo, zap.NewNop())

	buf, filename, err := svc.RequestsWorkbook(context.Background(), uuid.New())
	require.NoError(t, err)

	expected := fmt.Sprintf("maintenance-requests-%s.xlsx", time.Now().Format("2006-01-02"))
	assert.Equal(t, expected, filename)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Requests")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per request")

	assert.Equal(t, "Subject", rows[0][0])
	assert.Equal(t, "Hydraulic press leaking", rows[1][0])
	assert.Equal(t, "HIGH", rows[1][3])
	assert.Equal(t, "HP-001", rows[1][11])
	assert.Equal(t, "Quarterly HVAC check", rows[2][0])
	assert.Equal(t, requestDate.Add(48*time.Hour).Format(time.RFC3339), rows[2][6])
}

func TestRequestsWorkbookEmpty(t *testing.T) {
	svc := NewReportService(&fakeRequestRepo{}, zap.NewNop())

	buf, _, err := svc.RequestsWorkbook(context.Background(), uuid.New())
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Requests")
	require.NoError(t, err)
	require.Len(t, rows, 1, "only the header row")
}
