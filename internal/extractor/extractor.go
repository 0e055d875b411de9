package extractor

import (
	"fmt"

	"docqa/internal/domain"
)

// Extractor implements port.DocumentExtractor over the pdf and workbook
// parsing libraries. It is stateless and safe for concurrent use.
type Extractor struct{}

// New creates a document extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract parses data according to ext and returns normalized content.
// Extraction is deterministic and never mutates data. Parser panics on
// corrupt input are recovered and reported as extraction errors.
func (e *Extractor) Extract(data []byte, ext string) (content *domain.ExtractedContent, err error) {
	reason := domain.ReasonUnparsableSpreadsheet
	if ext == "pdf" {
		reason = domain.ReasonUnparsablePDF
	}
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = &domain.ExtractionError{Reason: reason, Err: fmt.Errorf("parser panic: %v", r)}
		}
	}()

	switch ext {
	case "pdf":
		return extractPDF(data)
	case "xlsx":
		return extractXLSX(data)
	case "xls":
		return extractXLS(data)
	default:
		return nil, fmt.Errorf("extractor does not handle %q files", ext)
	}
}
