package export

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/loanguard/loanguard/constants"
	"github.com/loanguard/loanguard/internal/compliance"
	"github.com/loanguard/loanguard/internal/entity"
)

// Service produces XLSX workbooks from loan profiles for lender and
// asset-manager consumption.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ChecklistXLSX returns a compliance checklist workbook: one row per
// requirement in canonical category order, plus a summary sheet.
func (s *Service) ChecklistXLSX(profile *entity.LoanProfile) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Requirements"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop excelize's default sheet
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"ID",
		"Category",
		"Title",
		"Severity",
		"Status",
		"Deadline",
		"Frequency",
		"Threshold",
		"Cure Period (Days)",
		"Reference",
		"Summary",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, cat := range constants.AllCategories() {
		for _, req := range profile.RequirementsByCategory(cat) {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheet, cell, v)
			}

			write(1, req.ID)
			write(2, string(req.Category))
			write(3, req.Title)
			write(4, string(req.Severity))
			write(5, string(req.Status))
			if req.Deadline != nil {
				write(6, req.Deadline.Description)
				write(7, string(req.Deadline.Frequency))
			}
			if req.Threshold != nil {
				write(8, req.Threshold.HumanReadable())
			}
			if req.CurePeriodDays != nil {
				write(9, *req.CurePeriodDays)
			}
			write(10, req.DocumentReference)
			write(11, truncate(req.PlainLanguageSummary, 140))

			row++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 10)
	_ = f.SetColWidth(sheet, "B", "B", 22)
	_ = f.SetColWidth(sheet, "C", "C", 34)
	_ = f.SetColWidth(sheet, "D", "E", 14)
	_ = f.SetColWidth(sheet, "F", "F", 40)
	_ = f.SetColWidth(sheet, "G", "G", 12)
	_ = f.SetColWidth(sheet, "H", "H", 32)
	_ = f.SetColWidth(sheet, "I", "I", 10)
	_ = f.SetColWidth(sheet, "J", "J", 24)
	_ = f.SetColWidth(sheet, "K", "K", 60)

	if err := s.writeSummarySheet(f, profile); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"loan_id", profile.LoanID,
		"rows", row-2,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) writeSummarySheet(f *excelize.File, profile *entity.LoanProfile) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	summary := compliance.Summarize(profile)

	rows := [][2]any{
		{"Loan ID", profile.LoanID},
		{"Property", profile.PropertyName},
		{"Borrower", profile.BorrowerName},
		{"Lender", profile.LenderName},
		{"Original Loan Amount", profile.OriginalLoanAmount},
		{"Total Requirements", summary.TotalRequirements},
		{"Critical Items", summary.CriticalItems},
		{"Non-Compliant", summary.NonCompliantCount},
		{"At Risk", summary.AtRiskCount},
		{"Compliance Score", summary.Score},
	}
	for i, pair := range rows {
		labelCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valueCell, _ := excelize.CoordinatesToCellName(2, i+1)
		if err := f.SetCellValue(sheet, labelCell, pair[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, valueCell, pair[1]); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(sheet, "A", "A", 24)
	_ = f.SetColWidth(sheet, "B", "B", 40)
	return nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return strings.TrimRight(s[:n-1], " ") + "…"
}
