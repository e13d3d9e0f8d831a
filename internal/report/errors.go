package report

import "errors"

var (
	// ErrRenderPDF возвращается при ошибке генерации PDF документа
	ErrRenderPDF = errors.New("report: failed to render pdf")

	// ErrWriteCSV возвращается при ошибке записи CSV файла
	ErrWriteCSV = errors.New("report: failed to write csv file")
)
