package domain

type CompressionMethod string

const (
	MethodNone      CompressionMethod = "none"
	MethodImageJPEG CompressionMethod = "image-jpeg"
	MethodPDFResave CompressionMethod = "pdf-resave"
	MethodPDFRaster CompressionMethod = "pdf-raster"
)

// CompressionAttempt records one rung of a ladder. Scale is 1.0 for
// quality-only attempts.
type CompressionAttempt struct {
	Method          CompressionMethod `json:"method"`
	Quality         int               `json:"quality"`
	Scale           float64           `json:"scale"`
	ResultSizeBytes int64             `json:"resultSizeBytes"`
	Error           string            `json:"error,omitempty"`
}

type CompressionResult struct {
	Data         []byte               `json:"-"`
	Filename     string               `json:"fileName"`
	ContentType  string               `json:"-"`
	OriginalSize int64                `json:"originalSize"`
	ResultSize   int64                `json:"resultSize"`
	MetBudget    bool                 `json:"metBudget"`
	Method       CompressionMethod    `json:"method"`
	Attempts     []CompressionAttempt `json:"attempts"`
}

// Grew reports whether the best result is larger than the input.
func (r *CompressionResult) Grew() bool {
	return r.ResultSize > r.OriginalSize
}

// Outcome is the result of one staging run.
type Outcome struct {
	Lane        ProcessingLane     `json:"lane"`
	RoutedTo    Stage              `json:"routedTo"`
	Filename    string             `json:"fileName"`
	SizeBytes   int64              `json:"fileSizeBytes"`
	Trail       []Stage            `json:"trail"`
	Compression *CompressionResult `json:"compression,omitempty"`
	Notice      *ExtractedNotice   `json:"extractedNotice"`
}
