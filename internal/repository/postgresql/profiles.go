package postgresql

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/notice_pipeline/internal/domain"
)

const TableProfiles = "profiles"

type ProfilesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewProfilesRepository(pool *pgxpool.Pool) *ProfilesRepository {
	return &ProfilesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ProfilesRepository) ProfileByID(ctx context.Context, id string) (*domain.Profile, error) {
	sql, args, err := r.qb.
		Select(
			"id",
			"first_name",
			"last_name",
			"department",
			"designation",
			"phone_number",
		).
		From(TableProfiles).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	profile, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Profile])
	if err != nil {
		// ids that are not UUIDs cannot belong to anyone
		if errors.Is(err, pgx.ErrNoRows) || pgCode(err) == codeInvalidTextRepresentation {
			return nil, domain.ErrProfileNotFound
		}
		return nil, collectRowsError(err)
	}

	return profile, nil
}
