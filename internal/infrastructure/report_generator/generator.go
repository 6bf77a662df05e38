package report_generator

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/notice_pipeline/internal/domain"
)

const (
	labelSize = 4
	valueSize = 8
	rowHeight = 8
)

var (
	labelStyle = props.Text{Top: 1.5, Style: fontstyle.Bold, Size: 10}
	valueStyle = props.Text{Top: 1.5, Size: 10}
)

// Generator renders a one page PDF sheet describing an extracted notice.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateNoticeSheet(outputPath, sourceFile string, outcome *domain.Outcome) error {
	if outcome == nil || outcome.Notice == nil {
		return fmt.Errorf("no notice to render for %q", sourceFile)
	}

	m := maroto.New(config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build(),
	)

	notice := outcome.Notice

	m.AddRows(
		text.NewRow(14, notice.Title, props.Text{
			Top:   3,
			Style: fontstyle.Bold,
			Align: align.Center,
			Size:  14,
		}),
		text.NewRow(8, "Source: "+sourceFile, props.Text{
			Align: align.Center,
			Size:  9,
		}),
	)

	m.AddRows(field("Severity", string(notice.Severity)))
	m.AddRows(field("Deadline", deref(notice.Deadline)))
	m.AddRows(field("Authorized by", deref(notice.AuthorizedBy)))
	m.AddRows(field("Departments", departments(notice.Departments)))
	m.AddRows(field("Lane", string(outcome.Lane)))
	m.AddRows(field("Stages", trail(outcome.Trail)))

	if c := outcome.Compression; c != nil {
		m.AddRows(field("Compression", fmt.Sprintf("%s, %d -> %d bytes", c.Method, c.OriginalSize, c.ResultSize)))
	}

	m.AddRows(
		text.NewRow(rowHeight, "Actionable insights", labelStyle),
		text.NewRow(float64(rowHeight*max(1, strings.Count(notice.Insights, "\n")+1)), notice.Insights, valueStyle),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate notice sheet: %w", err)
	}

	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save notice sheet: %w", err)
	}

	return nil
}

func field(label, value string) core.Row {
	if value == "" {
		value = "-"
	}

	return row.New(rowHeight).Add(
		text.NewCol(labelSize, label, labelStyle),
		text.NewCol(valueSize, value, valueStyle),
	)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func departments(depts []domain.Department) string {
	names := make([]string, 0, len(depts))
	for _, d := range depts {
		names = append(names, string(d))
	}

	return strings.Join(names, ", ")
}

func trail(stages []domain.Stage) string {
	names := make([]string, 0, len(stages))
	for _, s := range stages {
		names = append(names, string(s))
	}

	return strings.Join(names, " > ")
}
