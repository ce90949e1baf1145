package pgdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"job-management-api/internal/entity"
	"job-management-api/internal/repo/repo_errors"
	"job-management-api/pkg/postgres"
	"time"

	"github.com/google/uuid"
)

type ShareLinkRepo struct {
	*postgres.Postgres
}

func NewShareLinkRepo(pgdb *postgres.Postgres) *ShareLinkRepo {
	return &ShareLinkRepo{pgdb}
}

func (r *ShareLinkRepo) CreateShare(ctx context.Context, share *entity.ShareLink) error {
	snapshot, err := json.Marshal(share.Snapshot)
	if err != nil {
		return err
	}

	createShareSql, args, _ := r.SqlBuilder.
		Insert("share_link").
		Columns("id", "day", "snapshot", "comment", "expires_at").
		Values(share.Id, share.Day, snapshot, share.Comment, share.ExpiresAt).
		ToSql()

	_, err = r.Database.ExecContext(ctx, createShareSql, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *ShareLinkRepo) GetShareById(ctx context.Context, id string) (*entity.ShareLink, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getShareSql, args, _ := r.SqlBuilder.
		Select("id", "day", "snapshot", "comment", "expires_at", "created_at").
		From("share_link").
		Where("id = ?", uuidForm).
		ToSql()

	var share entity.ShareLink
	var snapshot []byte
	var createdAt time.Time
	row := r.Database.QueryRowContext(ctx, getShareSql, args...)
	err = row.Scan(&share.Id, &share.Day, &snapshot, &share.Comment, &share.ExpiresAt, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}
	share.CreatedAt = createdAt.Format(time.RFC3339)

	if err = json.Unmarshal(snapshot, &share.Snapshot); err != nil {
		return nil, err
	}

	return &share, nil
}

func (r *ShareLinkRepo) SetShareCommentById(ctx context.Context, id string, comment string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	setCommentSql, args, _ := r.SqlBuilder.
		Update("share_link").
		Set("comment", comment).
		Where("id = ?", uuidForm).
		ToSql()

	res, err := r.Database.ExecContext(ctx, setCommentSql, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

func (r *ShareLinkRepo) DeleteShareById(ctx context.Context, id string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	deleteShareSql, args, _ := r.SqlBuilder.
		Delete("share_link").
		Where("id = ?", uuidForm).
		ToSql()

	_, err = r.Database.ExecContext(ctx, deleteShareSql, args...)
	if err != nil {
		return err
	}

	return nil
}
