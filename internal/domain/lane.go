package domain

type ProcessingLane string

const (
	LaneImage          ProcessingLane = "image"
	LanePDF            ProcessingLane = "pdf"
	LaneOfficeDoc      ProcessingLane = "office-doc"
	LaneOfficePPT      ProcessingLane = "office-ppt"
	LaneOfficeXLS      ProcessingLane = "office-xls"
	LaneStructuredText ProcessingLane = "structured-text"
)

// NeedsConversion reports whether files of the lane are turned into PDF
// before anything else happens to them.
func (l ProcessingLane) NeedsConversion() bool {
	switch l {
	case LaneOfficeDoc, LaneOfficePPT, LaneOfficeXLS:
		return true
	}

	return false
}

func (l ProcessingLane) Compressible() bool {
	return l == LaneImage || l == LanePDF
}

type StructuredFormat string

const (
	FormatCSV  StructuredFormat = "csv"
	FormatJSON StructuredFormat = "json"
	FormatXML  StructuredFormat = "xml"
	FormatTXT  StructuredFormat = "txt"
)

type Stage string

const (
	StageReceived             Stage = "received"
	StageClassified           Stage = "classified"
	StageConversion           Stage = "conversion"
	StageCompression          Stage = "compression"
	StageStructuredExtraction Stage = "structured-extraction"
	StageTextExtraction       Stage = "text-extraction"
	StageFileExtraction       Stage = "file-extraction"
	StageDone                 Stage = "done"
	StageFailed               Stage = "failed"
)
