package intake

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kurochkinivan/notice_pipeline/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// StructuredExtractor turns csv/json/xml/txt payloads into prompt text.
type StructuredExtractor struct {
	log *slog.Logger
}

func NewStructuredExtractor(log *slog.Logger) *StructuredExtractor {
	return &StructuredExtractor{log: log}
}

func (e *StructuredExtractor) Extract(format domain.StructuredFormat, data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	switch format {
	case domain.FormatCSV:
		return e.extractCSV(data)
	case domain.FormatJSON:
		return extractJSON(data)
	case domain.FormatXML:
		return extractXML(data)
	case domain.FormatTXT:
		return strings.ToValidUTF8(string(data), "�"), nil
	default:
		return "", fmt.Errorf("%w: structured format %q", domain.ErrUnsupportedFormat, format)
	}
}

func (e *StructuredExtractor) extractCSV(data []byte) (string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: csv has no header row", domain.ErrInvalidFormat)
		}
		return "", fmt.Errorf("%w: failed to read csv header: %w", domain.ErrInvalidFormat, err)
	}

	rows := make([]map[string]any, 0)
	skipped := 0

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return "", fmt.Errorf("failed to read csv: %w", err)
			}

			skipped++
			e.log.Debug("skipping malformed csv row",
				slog.Int("line", parseErr.Line),
				slog.String("err", parseErr.Err.Error()),
			)
			continue
		}

		rows = append(rows, csvRow(header, record))
	}

	if skipped > 0 {
		e.log.Warn("csv parsed partially",
			slog.Int("rows", len(rows)),
			slog.Int("skipped_rows", skipped),
		)
	}

	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode csv rows: %w", err)
	}

	return string(out), nil
}

func csvRow(header, record []string) map[string]any {
	row := make(map[string]any, len(header))
	for i, name := range header {
		if i < len(record) {
			row[name] = record[i]
		}
	}

	if len(record) > len(header) {
		row["_extra"] = record[len(header):]
	}

	return row
}

func extractJSON(data []byte) (string, error) {
	if !json.Valid(data) {
		return "", fmt.Errorf("%w: malformed json", domain.ErrInvalidFormat)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidFormat, err)
	}

	return buf.String(), nil
}

type xmlNode struct {
	name     string
	attrs    map[string]any
	children map[string]any
	text     strings.Builder
}

func (n *xmlNode) add(name string, value any) {
	if n.children == nil {
		n.children = make(map[string]any)
	}

	switch existing := n.children[name].(type) {
	case nil:
		n.children[name] = value
	case []any:
		n.children[name] = append(existing, value)
	default:
		n.children[name] = []any{existing, value}
	}
}

// value collapses text-only elements to plain strings. Attributes go under
// "$" and text mixed with child elements under "_".
func (n *xmlNode) value() any {
	text := strings.TrimSpace(n.text.String())
	if len(n.attrs) == 0 && len(n.children) == 0 {
		return text
	}

	out := make(map[string]any, len(n.children)+2)
	for k, v := range n.children {
		out[k] = v
	}

	if len(n.attrs) > 0 {
		out["$"] = n.attrs
	}

	if text != "" {
		out["_"] = text
	}

	return out
}

func extractXML(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		stack []*xmlNode
		root  map[string]any
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return "", fmt.Errorf("%w: %w", domain.ErrInvalidFormat, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return "", fmt.Errorf("%w: multiple root elements", domain.ErrInvalidFormat)
			}

			node := &xmlNode{name: t.Name.Local}
			for _, attr := range t.Attr {
				if node.attrs == nil {
					node.attrs = make(map[string]any, len(t.Attr))
				}
				node.attrs[attr.Name.Local] = attr.Value
			}
			stack = append(stack, node)

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}

		case xml.EndElement:
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if len(stack) == 0 {
				root = map[string]any{node.name: node.value()}
				continue
			}
			stack[len(stack)-1].add(node.name, node.value())
		}
	}

	if root == nil {
		return "", fmt.Errorf("%w: xml has no root element", domain.ErrInvalidFormat)
	}

	out, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode xml tree: %w", err)
	}

	return string(out), nil
}
