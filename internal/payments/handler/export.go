package handler

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"paylens/internal/payments"
)

// Statement download formats accepted by the statement endpoint.
const (
	formatXLSX = "xlsx"
	formatPDF  = "pdf"
)

// BuildStatementPDF renders a monthly statement as a single-page PDF: a
// summary block followed by one table row per payment.
func BuildStatementPDF(stmt payments.MonthStatement) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Monthly Payment Statement")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Month: %s", stmt.Month.String()))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", stmt.GeneratedAt.Format(time.RFC3339)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Payments: %d", len(stmt.Payments)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total: %s", stmt.Total.StringFixed(2)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Discount: %s", stmt.Discount.StringFixed(2)))
	pdf.Ln(8)

	// Payments table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(30, 6, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(75, 6, "Customer", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 6, "Items", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Total", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Discount", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, p := range stmt.Payments {
		pdf.CellFormat(30, 6, p.PaidAt.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(75, 6, p.User.Email, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", len(p.Items)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, p.Total().StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, p.DiscountTotal().StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	err := pdf.Output(&buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildStatementXLSX renders a monthly statement as a workbook with a summary
// sheet, a payments sheet, and an item-line sheet.
func BuildStatementXLSX(stmt payments.MonthStatement) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	paymentsSheet := "payments"
	itemsSheet := "items"
	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(paymentsSheet)
	f.NewSheet(itemsSheet)

	_ = f.SetCellValue(summarySheet, "A1", "Monthly Payment Statement")
	_ = f.SetCellValue(summarySheet, "A3", "Month")
	_ = f.SetCellValue(summarySheet, "B3", stmt.Month.String())
	_ = f.SetCellValue(summarySheet, "A4", "Generated")
	_ = f.SetCellValue(summarySheet, "B4", stmt.GeneratedAt.Format(time.RFC3339))
	_ = f.SetCellValue(summarySheet, "A5", "Payments")
	_ = f.SetCellValue(summarySheet, "B5", len(stmt.Payments))
	_ = f.SetCellValue(summarySheet, "A6", "Total")
	_ = f.SetCellValue(summarySheet, "B6", stmt.Total.StringFixed(2))
	_ = f.SetCellValue(summarySheet, "A7", "Discount")
	_ = f.SetCellValue(summarySheet, "B7", stmt.Discount.StringFixed(2))

	_ = f.SetCellValue(paymentsSheet, "A1", "Date")
	_ = f.SetCellValue(paymentsSheet, "B1", "Customer")
	_ = f.SetCellValue(paymentsSheet, "C1", "Items")
	_ = f.SetCellValue(paymentsSheet, "D1", "Total")
	_ = f.SetCellValue(paymentsSheet, "E1", "Discount")
	for i, p := range stmt.Payments {
		row := i + 2
		_ = f.SetCellValue(paymentsSheet, fmt.Sprintf("A%d", row), p.PaidAt.Format("2006-01-02"))
		_ = f.SetCellValue(paymentsSheet, fmt.Sprintf("B%d", row), p.User.Email)
		_ = f.SetCellValue(paymentsSheet, fmt.Sprintf("C%d", row), len(p.Items))
		_ = f.SetCellValue(paymentsSheet, fmt.Sprintf("D%d", row), p.Total().StringFixed(2))
		_ = f.SetCellValue(paymentsSheet, fmt.Sprintf("E%d", row), p.DiscountTotal().StringFixed(2))
	}

	_ = f.SetCellValue(itemsSheet, "A1", "Date")
	_ = f.SetCellValue(itemsSheet, "B1", "Customer")
	_ = f.SetCellValue(itemsSheet, "C1", "Product")
	_ = f.SetCellValue(itemsSheet, "D1", "Regular Price")
	_ = f.SetCellValue(itemsSheet, "E1", "Final Price")
	row := 2
	for _, p := range stmt.Payments {
		for _, item := range p.Items {
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("A%d", row), p.PaidAt.Format("2006-01-02"))
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("B%d", row), p.User.Email)
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("C%d", row), item.Name)
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("D%d", row), item.RegularPrice.StringFixed(2))
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("E%d", row), item.FinalPrice.StringFixed(2))
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
