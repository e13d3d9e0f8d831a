// Package report экспорт отчета по резервациям в PDF и CSV.
//
// Генератор — чистая трансформация: набор строк ему передает вызывающая
// сторона, сам он в базу не ходит.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/m04kA/SMC-ReservationsService/internal/domain"
)

var csvHeader = []string{
	"reserva_id",
	"fecha_reserva",
	"salon",
	"turno",
	"cliente",
	"importe_salon",
	"importe_total",
}

// Generator генератор отчетов
type Generator struct {
	outputDir string
}

// NewGenerator создает генератор отчетов.
// outputDir — каталог для CSV файлов, создается при необходимости.
func NewGenerator(outputDir string) *Generator {
	return &Generator{outputDir: outputDir}
}

// PDFResult результат генерации PDF: документ целиком в памяти
type PDFResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// CSVResult результат генерации CSV: ссылка на файл для потоковой отдачи
type CSVResult struct {
	Path        string
	ContentType string
	Filename    string
}

// ExportPDF рендерит строки отчета в PDF документ в памяти
func (g *Generator) ExportPDF(rows []domain.ReportRow) (*PDFResult, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Reporte de reservas", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Reporte de reservas")
	pdf.Ln(14)

	colWidths := []float64{20, 28, 60, 45, 70, 28, 28}
	headers := []string{"ID", "Fecha", "Salon", "Turno", "Cliente", "Imp. salon", "Imp. total"}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range rows {
		cells := []string{
			strconv.FormatInt(row.ReservationID, 10),
			row.Date,
			row.VenueName,
			row.ShiftLabel,
			row.CustomerEmail,
			formatAmount(row.VenueFee),
			formatAmount(row.TotalAmount),
		}
		for i, c := range cells {
			pdf.CellFormat(colWidths[i], 7, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderPDF, err)
	}

	return &PDFResult{
		Content:     buf.Bytes(),
		ContentType: "application/pdf",
		Filename:    "reporte_reservas.pdf",
	}, nil
}

// ExportCSV пишет строки отчета в CSV файл в outputDir и возвращает путь.
// Имя файла уникальное, чтобы параллельные запросы не перезаписывали друг друга.
func (g *Generator) ExportCSV(rows []domain.ReportRow) (*CSVResult, error) {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create output dir: %v", ErrWriteCSV, err)
	}

	filename := fmt.Sprintf("reporte_%s.csv", uuid.NewString())
	path := filepath.Join(g.outputDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: create file: %v", ErrWriteCSV, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("%w: write header: %v", ErrWriteCSV, err)
	}

	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.ReservationID, 10),
			row.Date,
			row.VenueName,
			row.ShiftLabel,
			row.CustomerEmail,
			formatAmount(row.VenueFee),
			formatAmount(row.TotalAmount),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("%w: write record: %v", ErrWriteCSV, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("%w: flush: %v", ErrWriteCSV, err)
	}

	return &CSVResult{
		Path:        path,
		ContentType: "text/csv",
		Filename:    "reporte.csv",
	}, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
