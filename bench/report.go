package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/xuri/excelize/v2"
)

const (
	runsSheet    = "Runs"
	summarySheet = "Summary"
)

var (
	runsHeader    = []string{"Instance", "Items", "Solver", "Price", "Weight", "Optimum", "Rel. error", "Duration (µs)", "Selection"}
	summaryHeader = []string{"Solver", "Instances", "Rated", "Avg rel. error", "Max rel. error", "Avg duration (µs)", "Total duration (ms)"}
)

// RenderTable writes the per-solver summary of rep to w.
func RenderTable(w io.Writer, rep *Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("BENCH %s", rep.RunID))
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(toRow(summaryHeader))
	for _, s := range rep.Summaries {
		t.AppendRow(table.Row{
			s.Solver,
			s.Instances,
			s.Rated,
			percent(s.AvgRelativeError, s.Rated > 0),
			percent(s.MaxRelativeError, s.Rated > 0),
			fmt.Sprintf("%.1f", micros(s.AvgDuration)),
			fmt.Sprintf("%.3f", float64(s.TotalDuration)/float64(time.Millisecond)),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
	})
	t.Render()
}

// RenderRows writes every row of rep to w.
func RenderRows(w io.Writer, rep *Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(toRow(runsHeader[:len(runsHeader)-1]))
	prev := -1
	for i, r := range rep.Rows {
		if i > 0 && r.InstanceID != prev {
			t.AppendSeparator()
		}
		prev = r.InstanceID
		opt := "-"
		if r.HasOptimum {
			opt = fmt.Sprint(r.Optimum)
		}
		t.AppendRow(table.Row{
			r.InstanceID, r.Size, r.Solver, r.Price, r.Weight, opt,
			percent(r.RelativeError, r.HasOptimum), fmt.Sprintf("%.1f", micros(r.Duration)),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignLeft},
	})
	t.Render()
}

// WriteXLSX saves rep as a workbook with a "Runs" and a "Summary" sheet.
func WriteXLSX(path string, rep *Report) error {
	fx := excelize.NewFile()
	defer fx.Close()

	if err := fx.SetSheetName(fx.GetSheetName(0), runsSheet); err != nil {
		return err
	}
	if _, err := fx.NewSheet(summarySheet); err != nil {
		return err
	}

	header, err := fx.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	pct, err := fx.NewStyle(&excelize.Style{NumFmt: 10}) // 0.00%
	if err != nil {
		return err
	}

	if err := writeHeader(fx, runsSheet, runsHeader, header); err != nil {
		return err
	}
	for i, r := range rep.Rows {
		values := []any{r.InstanceID, r.Size, r.Solver, r.Price, r.Weight, nil, nil, micros(r.Duration), r.Selection}
		if r.HasOptimum {
			values[5], values[6] = r.Optimum, r.RelativeError
		}
		if err := writeRow(fx, runsSheet, i+2, values); err != nil {
			return err
		}
	}
	if err := styleColumn(fx, runsSheet, 7, len(rep.Rows), pct); err != nil {
		return err
	}

	if err := writeHeader(fx, summarySheet, summaryHeader, header); err != nil {
		return err
	}
	for i, s := range rep.Summaries {
		values := []any{
			s.Solver, s.Instances, s.Rated, s.AvgRelativeError, s.MaxRelativeError,
			micros(s.AvgDuration), float64(s.TotalDuration) / float64(time.Millisecond),
		}
		if err := writeRow(fx, summarySheet, i+2, values); err != nil {
			return err
		}
	}
	for col := 4; col <= 5; col++ {
		if err := styleColumn(fx, summarySheet, col, len(rep.Summaries), pct); err != nil {
			return err
		}
	}
	if err := fx.SetColWidth(runsSheet, "I", "I", 40); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

func writeHeader(fx *excelize.File, sheet string, cols []string, style int) error {
	for i, h := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := fx.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		if err := fx.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(fx *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := fx.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// styleColumn applies style to rows 2…n+1 of column col.
func styleColumn(fx *excelize.File, sheet string, col, n, style int) error {
	if n == 0 {
		return nil
	}
	top, err := excelize.CoordinatesToCellName(col, 2)
	if err != nil {
		return err
	}
	bottom, err := excelize.CoordinatesToCellName(col, n+1)
	if err != nil {
		return err
	}
	return fx.SetCellStyle(sheet, top, bottom, style)
}

func toRow(cols []string) table.Row {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	return row
}

func percent(v float64, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", 100*v)
}

func micros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}
