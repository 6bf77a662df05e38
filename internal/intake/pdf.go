package intake

import (
	"bytes"
	"fmt"
	"io"

	"github.com/kurochkinivan/notice_pipeline/internal/domain"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// PDFCPU implements the structural PDF operations the compressor needs.
type PDFCPU struct{}

func NewPDFCPU() *PDFCPU {
	return &PDFCPU{}
}

func configuration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.WriteObjectStream = true
	conf.WriteXRefStream = true

	return conf
}

// Resave rewrites the document with object streams and without the
// descriptive metadata. Page content is left untouched.
func (PDFCPU) Resave(data []byte) ([]byte, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), configuration())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read pdf: %w", domain.ErrInvalidFormat, err)
	}

	xrt := ctx.XRefTable
	xrt.Title = ""
	xrt.Author = ""
	xrt.Subject = ""
	xrt.Keywords = ""
	xrt.Creator = ""
	xrt.Producer = ""
	xrt.CreationDate = ""
	xrt.ModDate = ""
	xrt.Info = nil

	if xrt.RootDict != nil {
		xrt.RootDict.Delete("Metadata")
	}

	var buf bytes.Buffer
	if err := api.WriteContext(ctx, &buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func (PDFCPU) PageCount(data []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(data), configuration())
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count pages: %w", domain.ErrInvalidFormat, err)
	}

	return n, nil
}

// Assemble builds a new document with one full-page image per entry, page
// size following the image size.
func (PDFCPU) Assemble(pages [][]byte) ([]byte, error) {
	imp := pdfcpu.DefaultImportConfig()
	imp.Pos = types.Full

	readers := make([]io.Reader, len(pages))
	for i, page := range pages {
		readers[i] = bytes.NewReader(page)
	}

	var buf bytes.Buffer
	if err := api.ImportImages(nil, &buf, readers, imp, configuration()); err != nil {
		return nil, fmt.Errorf("failed to assemble pdf: %w", err)
	}

	return buf.Bytes(), nil
}
