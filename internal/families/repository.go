package families

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"rukun/internal/citizens"
	"rukun/pkg/pagination"
	"rukun/pkg/query"
	"rukun/pkg/repository"
)

const familyCardColumns = "id, no_kk, head_name, address, rt, rw"

type repo struct {
	db         *sql.DB
	citizens   citizens.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a family card repository implementing the System interface.
func New(
	db *sql.DB,
	citizenSys citizens.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		citizens:   citizenSys,
		logger:     logger.With("system", "families"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[FamilyCard], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "NoKK", "HeadName", "Address")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count family cards: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	cards, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanFamilyCard)
	if err != nil {
		return nil, fmt.Errorf("query family cards: %w", err)
	}

	result := pagination.NewPageResult(cards, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*FamilyCard, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	f, err := repository.QueryOne(ctx, r.db, q, args, scanFamilyCard)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &f, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*FamilyCard, error) {
	if strings.TrimSpace(cmd.NoKK) == "" {
		return nil, fmt.Errorf("%w: no_kk required", ErrInvalidCard)
	}
	if strings.TrimSpace(cmd.HeadName) == "" {
		return nil, fmt.Errorf("%w: head_name required", ErrInvalidCard)
	}

	q := fmt.Sprintf(`
		INSERT INTO family_cards(%s)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING %s`, familyCardColumns, familyCardColumns)

	insertArgs := []any{
		uuid.New(),
		cmd.NoKK,
		cmd.HeadName,
		cmd.Address,
		cmd.RT,
		cmd.RW,
	}

	f, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (FamilyCard, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanFamilyCard)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("family card registered", "id", f.ID, "no_kk", f.NoKK)
	return &f, nil
}

// Delete removes a family card and detaches its members. Member records
// survive with no card assignment.
func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if _, err := tx.ExecContext(
			ctx,
			"UPDATE citizens SET family_card_id = NULL WHERE family_card_id = ?",
			id,
		); err != nil {
			return struct{}{}, fmt.Errorf("detach members: %w", err)
		}

		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM family_cards WHERE id = ?",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("family card removed", "id", id)
	return nil
}

func (r *repo) Members(ctx context.Context, id uuid.UUID) ([]citizens.Citizen, error) {
	if _, err := r.Find(ctx, id); err != nil {
		return nil, err
	}

	page := pagination.PageRequest{Page: 1, PageSize: r.pagination.MaxPageSize}
	result, err := r.citizens.List(ctx, page, citizens.Filters{FamilyCardID: &id})
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}

	return result.Data, nil
}
