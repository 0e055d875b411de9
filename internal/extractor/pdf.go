package extractor

import (
	"bytes"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"docqa/internal/domain"
)

func extractPDF(data []byte) (*domain.ExtractedContent, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &domain.ExtractionError{Reason: domain.ReasonUnparsablePDF, Err: err}
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return nil, &domain.ExtractionError{Reason: domain.ReasonUnparsablePDF, Err: err}
	}

	var buf strings.Builder
	if _, err := io.Copy(&buf, plain); err != nil {
		return nil, &domain.ExtractionError{Reason: domain.ReasonUnparsablePDF, Err: err}
	}

	return domain.NewTextContent(strings.TrimSpace(buf.String())), nil
}
