package domain

import (
	"path/filepath"
	"strings"
)

// UploadedFile lives for one pipeline invocation only.
type UploadedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

func (f *UploadedFile) Size() int64 {
	return int64(len(f.Data))
}

// Ext returns the lower-cased extension without the leading dot.
func (f *UploadedFile) Ext() string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(f.Name)), ".")
}

// Renamed returns a copy of the file carrying data under the same base
// name with the extension replaced by ext.
func (f *UploadedFile) Renamed(ext, contentType string, data []byte) *UploadedFile {
	base := strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
	if base == "" {
		base = "upload"
	}

	return &UploadedFile{
		Name:        base + "." + strings.TrimPrefix(ext, "."),
		ContentType: contentType,
		Data:        data,
	}
}
