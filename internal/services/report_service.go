package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gearguard/internal/repositories"
	"gearguard/pkg/types"
)

type ReportServiceInterface interface {
	RequestsWorkbook(ctx context.Context, companyID uuid.UUID) (*bytes.Buffer, string, error)
}

type ReportService struct {
	requestRepo repositories.RequestRepositoryInterface
	logger      *zap.Logger
}

func NewReportService(requestRepo repositories.RequestRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{requestRepo: requestRepo, logger: logger}
}

var reportHeaders = []interface{}{
	"Subject", "Description", "Type", "Priority", "Stage",
	"Request Date", "Scheduled At", "Due At", "Overdue", "Duration (min)",
	"Equipment", "Serial Number", "Team", "Created By", "Assigned To",
}

// RequestsWorkbook renders every maintenance request of the company into an
// XLSX workbook and returns it with a dated filename.
func (s *ReportService) RequestsWorkbook(ctx context.Context, companyID uuid.UUID) (*bytes.Buffer, string, error) {
	items, err := s.requestRepo.List(ctx, companyID, types.Filter{})
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("failed to close report workbook", zap.Error(err))
		}
	}()

	const sheet = "Requests"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", err
	}

	if err := f.SetSheetRow(sheet, "A1", &reportHeaders); err != nil {
		return nil, "", err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastCol, _ := excelize.CoordinatesToCellName(len(reportHeaders), 1)
		if err := f.SetCellStyle(sheet, "A1", lastCol, headerStyle); err != nil {
			s.logger.Warn("failed to style report header", zap.Error(err))
		}
	}

	for i, item := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", err
		}
		row := []interface{}{
			item.Subject,
			item.Description.String,
			item.Type,
			item.Priority,
			item.Stage,
			item.RequestDate.Format(time.RFC3339),
			formatNullTime(item.ScheduledAt),
			formatNullTime(item.DueAt),
			item.IsOverdue,
			item.DurationMinutes,
			item.EquipmentName.String,
			item.EquipmentSerial.String,
			item.TeamName.String,
			item.CreatedBy.String,
			item.AssignedTo.String,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, "", err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("maintenance-requests-%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

func formatNullTime(t null.Time) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(time.RFC3339)
}
