package domain

// ContentType tags extracted document content and doubles as the wire value
// of the contentType field in API responses and query requests.
type ContentType string

const (
	// ContentTypeText marks linear text extracted from a PDF.
	ContentTypeText ContentType = "text/plain"
	// ContentTypeTable marks structured sheet data extracted from a workbook.
	ContentTypeTable ContentType = "application/json"
)

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeXLSX FileType = "xlsx"
	FileTypeXLS  FileType = "xls"
)

// AllowedFileTypes maps FileType to the media type the upload must declare.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF:  "application/pdf",
	FileTypeXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FileTypeXLS:  "application/vnd.ms-excel",
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"xlsx": FileTypeXLSX,
	"xls":  FileTypeXLS,
}
