package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/notice_pipeline/internal/domain"
)

const TableIntakeFiles = "intake_files"

type FilesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewFilesRepository(pool *pgxpool.Pool) *FilesRepository {
	return &FilesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *FilesRepository) Files(ctx context.Context) ([]*domain.IntakeFile, error) {
	sql, args, err := r.qb.
		Select(
			"name",
			"status",
			"lane",
			"notice",
			"error_message",
			"processed_at",
		).
		From(TableIntakeFiles).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	files, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.IntakeFile])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return files, nil
}

func (r *FilesRepository) UpdateOrCreateFile(ctx context.Context, file *domain.IntakeFile) error {
	sql, args, err := r.qb.
		Insert(TableIntakeFiles).
		Columns(
			"name",
			"status",
			"lane",
			"notice",
			"error_message",
			"processed_at",
		).
		Values(
			file.Name,
			file.Status,
			file.Lane,
			file.Notice,
			file.ErrorMessage,
			file.ProcessedAt,
		).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			status = EXCLUDED.status,
			lane = EXCLUDED.lane,
			notice = EXCLUDED.notice,
			error_message = EXCLUDED.error_message,
			processed_at = EXCLUDED.processed_at
		`).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *FilesRepository) ResetProcessingFiles(ctx context.Context) error {
	sql, args, err := r.qb.
		Update(TableIntakeFiles).
		Set("status", domain.StatusPending).
		Where(sq.Eq{"status": domain.StatusProcessing}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}
