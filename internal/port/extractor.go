package port

import "docqa/internal/domain"

// DocumentExtractor normalizes raw file bytes into extracted content.
// ext is the lower-case file extension without the dot (pdf, xlsx, xls).
type DocumentExtractor interface {
	Extract(data []byte, ext string) (*domain.ExtractedContent, error)
}
