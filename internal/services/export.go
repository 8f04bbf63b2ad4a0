package services

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"github.com/GregMSThompson/expense-tracker/internal/aggregate"
	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/pkg/logger"
)

const (
	expenseSheet  = "Expenses"
	categorySheet = "Categories"
	exportLayout  = "2006-01-02 15:04"
)

// ExportReport writes the admin report as an .xlsx workbook: one row per
// expense, then a per-category sheet.
func (s *adminService) ExportReport(ctx context.Context, w io.Writer) error {
	log := logger.FromContext(ctx)

	var (
		expenses []models.Expense
		students []models.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = s.ledger.AllExpenses(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		students, err = s.ledger.Students(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	report, err := adminReport(expenses)
	if err != nil {
		return err
	}

	names := make(map[string]string, len(students))
	for _, st := range students {
		names[st.UID] = st.Name
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})

	f := excelize.NewFile()
	defer f.Close()

	styles, err := newExportStyles(f)
	if err != nil {
		return err
	}

	if err := f.SetSheetName("Sheet1", expenseSheet); err != nil {
		return err
	}
	if err := setColWidths(f, expenseSheet, map[string]float64{"A": 18, "B": 24, "C": 30, "D": 16, "E": 12}); err != nil {
		return err
	}

	if err := writeRow(f, expenseSheet, 1, styles.header, "Date", "Student", "Title", "Category", "Amount"); err != nil {
		return err
	}
	row := 2
	for _, e := range expenses {
		student := names[e.UserID]
		if student == "" {
			student = e.UserID
		}
		name, _ := aggregate.ReportPalette(e.Category)
		err := writeRow(f, expenseSheet, row, styles.data,
			e.Date.In(s.location).Format(exportLayout), student, e.Title, name, e.Amount)
		if err != nil {
			return err
		}
		row++
	}
	err = writeRow(f, expenseSheet, row, styles.summary,
		"Total", fmt.Sprintf("%d expenses", len(expenses)), "", "", report.TotalAmount.InexactFloat64())
	if err != nil {
		return err
	}

	if _, err := f.NewSheet(categorySheet); err != nil {
		return err
	}
	if err := setColWidths(f, categorySheet, map[string]float64{"A": 20, "B": 14, "C": 14}); err != nil {
		return err
	}
	if err := writeRow(f, categorySheet, 1, styles.header, "Category", "Amount", "Percentage"); err != nil {
		return err
	}
	for i, b := range report.Categories {
		err := writeRow(f, categorySheet, i+2, styles.data,
			b.Name, b.Amount.InexactFloat64(), b.Percentage.InexactFloat64())
		if err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		log.Error("failed to write report workbook", "error", err)
		return err
	}
	log.Info("admin report exported", "expenses", len(expenses), "categories", len(report.Categories))
	return nil
}

type exportStyles struct {
	header  int
	data    int
	summary int
}

func newExportStyles(f *excelize.File) (exportStyles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"10B981"}, Pattern: 1},
		Alignment: center,
		Border:    border,
	})
	if err != nil {
		return exportStyles{}, err
	}
	data, err := f.NewStyle(&excelize.Style{Alignment: center, Border: border})
	if err != nil {
		return exportStyles{}, err
	}
	summary, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: center,
		Border:    border,
	})
	if err != nil {
		return exportStyles{}, err
	}
	return exportStyles{header: header, data: data, summary: summary}, nil
}

func setColWidths(f *excelize.File, sheet string, widths map[string]float64) error {
	for col, width := range widths {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("set width of %s!%s: %w", sheet, col, err)
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row, style int, values ...any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
		}
	}
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(values), row)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, first, last, style); err != nil {
		return fmt.Errorf("style %s!%s:%s: %w", sheet, first, last, err)
	}
	return nil
}
