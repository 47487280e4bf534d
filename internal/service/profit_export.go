package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

var profitExportHeaders = []string{
	"案件名", "顧客名", "状態", "見積金額", "売上", "労務費", "積込費", "車両費",
	"材料費", "外注費", "諸経費", "原価合計", "粗利", "粗利率(%)",
}

// ExportProfitReport 採算ダッシュボードをExcelに書き出す
func (s *ProfitService) ExportProfitReport(ctx context.Context, status string) (*excelize.File, string, error) {
	dashboard, err := s.GetProfitDashboard(ctx, status)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheet := "採算"
	f.SetSheetName("Sheet1", sheet)

	// 表頭: 太字+塗り
	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, h := range profitExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for i, row := range dashboard.Projects {
		values := []interface{}{
			row.Title, row.CustomerName, row.Status,
			row.EstimateAmount, row.Revenue,
			row.LaborCost, row.LoadingCost, row.VehicleCost,
			row.MaterialCost, row.SubcontractorCost, row.OtherExpenses,
			row.TotalCost, row.GrossProfit, row.ProfitMargin,
		}
		for j, v := range values {
			col, _ := excelize.ColumnNumberToName(j + 1)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, i+2), v)
		}
	}

	// 末尾にサマリ行
	summaryRow := len(dashboard.Projects) + 3
	summary := dashboard.Summary
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("合計 %d件", summary.TotalProjects))
	f.SetCellValue(sheet, fmt.Sprintf("E%d", summaryRow), summary.TotalRevenue)
	f.SetCellValue(sheet, fmt.Sprintf("L%d", summaryRow), summary.TotalCost)
	f.SetCellValue(sheet, fmt.Sprintf("M%d", summaryRow), summary.TotalGrossProfit)
	f.SetCellValue(sheet, fmt.Sprintf("N%d", summaryRow), summary.AverageProfitMargin)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("N%d", summaryRow), boldStyle)

	filename := fmt.Sprintf("profit_report_%s.xlsx", time.Now().Format("20060102"))
	return f, filename, nil
}
