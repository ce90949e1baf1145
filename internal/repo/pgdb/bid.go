package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"job-management-api/internal/entity"
	"job-management-api/internal/repo/repo_errors"
	"job-management-api/pkg/postgres"
	"time"

	"github.com/google/uuid"
)

type BidRepo struct {
	*postgres.Postgres
}

func NewBidRepo(pgdb *postgres.Postgres) *BidRepo {
	return &BidRepo{pgdb}
}

const bidColumns = "id, name, email, phone, address, amount, start_date, duration, notes, status, accepted_date, created_at"

func (r *BidRepo) CreateBid(ctx context.Context, id uuid.UUID, input *entity.CreateBidInput) error {
	createBidSql, args, _ := r.SqlBuilder.
		Insert("bid").
		Columns("id", "name", "email", "phone", "address", "amount", "start_date", "duration", "notes", "status").
		Values(id, input.Name, input.Email, input.Phone, input.Address, input.Amount,
			input.StartDate, input.Duration, input.Notes, input.Status).
		ToSql()

	_, err := r.Database.ExecContext(ctx, createBidSql, args...)
	if err != nil {
		return err
	}

	return nil
}

func scanBid(row interface{ Scan(...any) error }) (*entity.Bid, error) {
	var bid entity.Bid
	var createdAt time.Time
	err := row.Scan(&bid.Id, &bid.Name, &bid.Email, &bid.Phone, &bid.Address, &bid.Amount,
		&bid.StartDate, &bid.Duration, &bid.Notes, &bid.Status, &bid.AcceptedDate, &createdAt)
	if err != nil {
		return &bid, err
	}
	bid.CreatedAt = createdAt.Format(time.RFC3339)

	return &bid, nil
}

func (r *BidRepo) GetBidById(ctx context.Context, id string) (*entity.Bid, error) {
	getBidSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		Where("id = ?", id).
		ToSql()

	bid, err := scanBid(r.Database.QueryRowContext(ctx, getBidSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return bid, repo_errors.ErrNotFound
		}

		return bid, err
	}

	return bid, nil
}

func (r *BidRepo) GetBids(ctx context.Context, pg *entity.PaginationInput) ([]entity.Bid, error) {
	getBidsSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		OrderBy("created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getBidsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]entity.Bid, 0)
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return bids, err
		}
		bids = append(bids, *bid)
	}
	if err = rows.Err(); err != nil {
		return bids, err
	}

	return bids, nil
}

func (r *BidRepo) EditBidById(ctx context.Context, id string, input *entity.EditBidInput) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	builder := r.SqlBuilder.Update("bid").Where("id = ?", uuidForm)
	if input.Name != nil {
		builder = builder.Set("name", *input.Name)
	}
	if input.Email != nil {
		builder = builder.Set("email", *input.Email)
	}
	if input.Phone != nil {
		builder = builder.Set("phone", *input.Phone)
	}
	if input.Address != nil {
		builder = builder.Set("address", *input.Address)
	}
	if input.Amount != nil {
		builder = builder.Set("amount", *input.Amount)
	}
	if input.StartDate != nil {
		builder = builder.Set("start_date", *input.StartDate)
	}
	if input.Duration != nil {
		builder = builder.Set("duration", *input.Duration)
	}
	if input.Notes != nil {
		builder = builder.Set("notes", *input.Notes)
	}

	editBidSql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	res, err := r.Database.ExecContext(ctx, editBidSql, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

func (r *BidRepo) SetBidStatusById(ctx context.Context, id string, status string, acceptedDate string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	setStatusSql, args, _ := r.SqlBuilder.
		Update("bid").
		Set("status", status).
		Set("accepted_date", acceptedDate).
		Where("id = ?", uuidForm).
		ToSql()

	res, err := r.Database.ExecContext(ctx, setStatusSql, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

func (r *BidRepo) DeleteBidById(ctx context.Context, id string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	deleteBidSql, args, _ := r.SqlBuilder.
		Delete("bid").
		Where("id = ?", uuidForm).
		ToSql()

	_, err = r.Database.ExecContext(ctx, deleteBidSql, args...)
	if err != nil {
		return err
	}

	return nil
}
