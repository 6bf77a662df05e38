package intake

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/notice_pipeline/internal/domain"
)

var lanes = map[string]domain.ProcessingLane{
	"jpg":  domain.LaneImage,
	"jpeg": domain.LaneImage,
	"png":  domain.LaneImage,
	"webp": domain.LaneImage,
	"pdf":  domain.LanePDF,
	"doc":  domain.LaneOfficeDoc,
	"docx": domain.LaneOfficeDoc,
	"ppt":  domain.LaneOfficePPT,
	"pptx": domain.LaneOfficePPT,
	"xls":  domain.LaneOfficeXLS,
	"xlsx": domain.LaneOfficeXLS,
	"txt":  domain.LaneStructuredText,
	"json": domain.LaneStructuredText,
	"csv":  domain.LaneStructuredText,
	"xml":  domain.LaneStructuredText,
}

var contentTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"webp": "image/webp",
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"ppt":  "application/vnd.ms-powerpoint",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"txt":  "text/plain",
	"json": "application/json",
	"csv":  "text/csv",
	"xml":  "application/xml",
}

// Classify picks the lane for a filename. Unknown extensions are handled
// as generic documents.
func Classify(filename string) domain.ProcessingLane {
	if lane, ok := lanes[extension(filename)]; ok {
		return lane
	}

	return domain.LaneOfficeDoc
}

func ClassifyStructured(filename string) (domain.StructuredFormat, error) {
	switch ext := extension(filename); ext {
	case "csv":
		return domain.FormatCSV, nil
	case "json":
		return domain.FormatJSON, nil
	case "xml":
		return domain.FormatXML, nil
	case "txt":
		return domain.FormatTXT, nil
	default:
		return "", fmt.Errorf("%w: %q is not a structured data file", domain.ErrUnsupportedFormat, filename)
	}
}

// ContentType keeps a meaningful declared type and otherwise derives one
// from the extension.
func ContentType(filename, declared string) string {
	if declared != "" {
		if mediaType, _, err := mime.ParseMediaType(declared); err == nil && mediaType != "application/octet-stream" {
			return mediaType
		}
	}

	if ct, ok := contentTypes[extension(filename)]; ok {
		return ct
	}

	return "application/octet-stream"
}

func extension(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}
