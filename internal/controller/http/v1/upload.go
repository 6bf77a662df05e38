package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/kurochkinivan/notice_pipeline/internal/domain"
)

const (
	formMemory   = 32 << 20
	formOverhead = 1 << 20
)

var (
	errBadRequest        = errors.New("bad request")
	errUnknownDepartment = errors.New("unknown department")
)

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

// parseForm limits the body to maxSize plus room for the other form fields.
// Plain url-encoded forms are accepted as well.
func parseForm(w http.ResponseWriter, r *http.Request, maxSize int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+formOverhead)

	err := r.ParseMultipartForm(formMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		err = r.ParseForm()
	}
	if err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			return fmt.Errorf("%w: request body over %d bytes", domain.ErrFileTooLarge, maxBytes.Limit)
		}
		return badRequest("failed to parse form: %v", err)
	}

	return nil
}

// formFile reads the "file" field. A missing field yields nil, nil.
func formFile(r *http.Request, maxSize int64) (*domain.UploadedFile, error) {
	f, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, badRequest("failed to read file: %v", err)
	}
	defer f.Close()

	if header.Size > maxSize {
		return nil, fmt.Errorf("%w: %d bytes, at most %d allowed", domain.ErrFileTooLarge, header.Size, maxSize)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return &domain.UploadedFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func readUpload(w http.ResponseWriter, r *http.Request, maxSize int64) (*domain.UploadedFile, error) {
	if err := parseForm(w, r, maxSize); err != nil {
		return nil, err
	}

	file, err := formFile(r, maxSize)
	if err != nil {
		return nil, err
	}

	if file == nil {
		return nil, badRequest(`multipart field "file" is required`)
	}

	if file.Size() == 0 {
		return nil, fmt.Errorf("%w: %s is empty", domain.ErrInvalidFormat, file.Name)
	}

	return file, nil
}
