package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/notice_pipeline/internal/domain"
)

var noticeColumns = []string{
	"uploader",
	"uploader_name",
	"department_from",
	"designation",
	"phone_number",
	"title",
	"actionable_insights",
	"severity",
	"authorized_by",
	"deadline",
	"document_path",
	"created_at",
}

type NoticesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewNoticesRepository(pool *pgxpool.Pool) *NoticesRepository {
	return &NoticesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func noticeValues(row *domain.NoticeRow) []any {
	return []any{
		row.Uploader,
		row.UploaderName,
		row.DepartmentFrom,
		row.Designation,
		row.PhoneNumber,
		row.Title,
		row.ActionableInsights,
		row.Severity,
		row.AuthorizedBy,
		row.Deadline,
		row.DocumentPath,
		row.CreatedAt,
	}
}

func (r *NoticesRepository) SaveDocumentRow(ctx context.Context, row *domain.DocumentRow) error {
	sql, args, err := r.qb.
		Insert(domain.TableDocuments).
		Columns(append(noticeColumns, "department_to", "is_notice")...).
		Values(append(noticeValues(&row.NoticeRow), row.DepartmentTo, row.IsNotice)...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&row.ID); err != nil {
		return insertRowError(err)
	}

	return nil
}

func (r *NoticesRepository) SaveNoticeRow(ctx context.Context, table string, row *domain.NoticeRow) error {
	if !domain.IsNoticeTable(table) {
		return fmt.Errorf("%q is not a notice table", table)
	}

	sql, args, err := r.qb.
		Insert(table).
		Columns(noticeColumns...).
		Values(noticeValues(row)...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&row.ID); err != nil {
		return insertRowError(err)
	}

	return nil
}

// NoticesByDepartment returns a page of a department's notices, newest
// first, along with the department's total.
func (r *NoticesRepository) NoticesByDepartment(
	ctx context.Context,
	dept domain.Department,
	limit, offset uint64,
) ([]*domain.NoticeRow, int, error) {
	table, ok := domain.NoticeTable(dept)
	if !ok {
		return nil, -1, fmt.Errorf("%w: no notice table for %q", domain.ErrInvalidNotice, dept)
	}

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(table).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	notices, err := r.selectNotices(ctx, r.qb.
		Select(append([]string{"id"}, noticeColumns...)...).
		From(table).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		Offset(offset),
	)
	if err != nil {
		return nil, -1, err
	}

	return notices, total, nil
}

// ExportNotices returns every notice of a department, oldest first.
func (r *NoticesRepository) ExportNotices(ctx context.Context, dept domain.Department) ([]*domain.NoticeRow, error) {
	table, ok := domain.NoticeTable(dept)
	if !ok {
		return nil, fmt.Errorf("%w: no notice table for %q", domain.ErrInvalidNotice, dept)
	}

	return r.selectNotices(ctx, r.qb.
		Select(append([]string{"id"}, noticeColumns...)...).
		From(table).
		OrderBy("created_at ASC", "id ASC"),
	)
}

func (r *NoticesRepository) selectNotices(ctx context.Context, query sq.SelectBuilder) ([]*domain.NoticeRow, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	notices, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.NoticeRow])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return notices, nil
}
