package domain

import "time"

type NoticeRow struct {
	ID                 int64     `csv:"id"                  db:"id"                  json:"id"`
	Uploader           string    `csv:"uploader"            db:"uploader"            json:"uploader"`
	UploaderName       string    `csv:"uploader_name"       db:"uploader_name"       json:"uploader_name"`
	DepartmentFrom     *string   `csv:"department_from"     db:"department_from"     json:"department_from"`
	Designation        *string   `csv:"designation"         db:"designation"         json:"designation"`
	PhoneNumber        *string   `csv:"phone_number"        db:"phone_number"        json:"phone_number"`
	Title              string    `csv:"title"               db:"title"               json:"title"`
	ActionableInsights *string   `csv:"actionable_insights" db:"actionable_insights" json:"actionable_insights"`
	Severity           *string   `csv:"severity"            db:"severity"            json:"severity"`
	AuthorizedBy       *string   `csv:"authorized_by"       db:"authorized_by"       json:"authorized_by"`
	Deadline           *string   `csv:"deadline"            db:"deadline"            json:"deadline"`
	DocumentPath       *string   `csv:"document_path"       db:"document_path"       json:"document_path"`
	CreatedAt          time.Time `csv:"created_at"          db:"created_at"          json:"created_at"`
}

// DocumentRow is the cross-department copy kept when an upload is retained
// as a document.
type DocumentRow struct {
	NoticeRow
	DepartmentTo Department `db:"department_to" json:"department_to"`
	IsNotice     bool       `db:"is_notice"     json:"is_notice"`
}

type Profile struct {
	ID          string  `db:"id"           json:"id"`
	FirstName   *string `db:"first_name"   json:"first_name"`
	LastName    *string `db:"last_name"    json:"last_name"`
	Department  *string `db:"department"   json:"department"`
	Designation *string `db:"designation"  json:"designation"`
	PhoneNumber *string `db:"phone_number" json:"phone_number"`
}

func (p *Profile) FullName() string {
	var first, last string
	if p.FirstName != nil {
		first = *p.FirstName
	}
	if p.LastName != nil {
		last = *p.LastName
	}

	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

// NewNoticeRow binds a notice to its uploader. Department and document path
// are decided by the caller.
func NewNoticeRow(n *ExtractedNotice, uploader *Profile, createdAt time.Time) NoticeRow {
	row := NoticeRow{
		Uploader:       uploader.ID,
		UploaderName:   uploader.FullName(),
		DepartmentFrom: uploader.Department,
		Designation:    uploader.Designation,
		PhoneNumber:    uploader.PhoneNumber,
		Title:          n.Title,
		AuthorizedBy:   n.AuthorizedBy,
		Deadline:       n.Deadline,
		CreatedAt:      createdAt,
	}

	if n.Insights != "" {
		insights := n.Insights
		row.ActionableInsights = &insights
	}

	if n.Severity != "" {
		severity := string(n.Severity)
		row.Severity = &severity
	}

	return row
}

const TableDocuments = "documents"

var noticeTables = map[Department]string{
	DepartmentDesign:      "design_notice",
	DepartmentEngineering: "engineering_notice",
	DepartmentFinance:     "finance_notice",
	DepartmentOperations:  "operations_notice",
}

// NoticeTable returns the dedicated table of a department.
func NoticeTable(d Department) (string, bool) {
	table, ok := noticeTables[d]
	return table, ok
}

func IsNoticeTable(table string) bool {
	for _, t := range noticeTables {
		if t == table {
			return true
		}
	}

	return false
}
