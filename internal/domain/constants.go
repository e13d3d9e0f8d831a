package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ReportFormat is a supported export format for the reservations report
type ReportFormat string

const (
	ReportFormatPDF ReportFormat = "pdf"
	ReportFormatCSV ReportFormat = "csv"
)

// IsValid returns true if the format belongs to the supported set
func (f ReportFormat) IsValid() bool {
	return f == ReportFormatPDF || f == ReportFormatCSV
}

// Business validation constants
const (
	MaxThemeLength = 255
)
