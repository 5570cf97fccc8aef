package citizens

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"rukun/internal/genai"
	"rukun/pkg/pagination"
	"rukun/pkg/query"
	"rukun/pkg/repository"
)

const citizenColumns = "id, nik, name, pob, dob, gender, marital_status, religion, occupation, address, is_head_of_family, family_card_id"

type repo struct {
	db         *sql.DB
	gateway    genai.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a citizen repository implementing the System interface.
func New(
	db *sql.DB,
	gateway genai.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		gateway:    gateway,
		logger:     logger.With("system", "citizens"),
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
) (*pagination.PageResult[Citizen], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "NIK", "Address")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count citizens: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	records, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanCitizen)
	if err != nil {
		return nil, fmt.Errorf("query citizens: %w", err)
	}

	result := pagination.NewPageResult(records, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Citizen, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanCitizen)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Citizen, error) {
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		INSERT INTO citizens(%s)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING %s`, citizenColumns, citizenColumns)

	insertArgs := []any{
		uuid.New(),
		cmd.NIK,
		cmd.Name,
		cmd.POB,
		cmd.DOB,
		cmd.Gender,
		cmd.MaritalStatus,
		cmd.Religion,
		cmd.Occupation,
		cmd.Address,
		cmd.IsHeadOfFamily,
		nullableID(cmd.FamilyCardID),
	}

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Citizen, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanCitizen)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("citizen registered", "id", c.ID, "name", c.Name)
	return &c, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Citizen, error) {
	if err := validateCommand(cmd.CreateCommand); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		UPDATE citizens
		SET nik = ?, name = ?, pob = ?, dob = ?, gender = ?, marital_status = ?,
			religion = ?, occupation = ?, address = ?, is_head_of_family = ?,
			family_card_id = ?
		WHERE id = ?
		RETURNING %s`, citizenColumns)

	updateArgs := []any{
		cmd.NIK,
		cmd.Name,
		cmd.POB,
		cmd.DOB,
		cmd.Gender,
		cmd.MaritalStatus,
		cmd.Religion,
		cmd.Occupation,
		cmd.Address,
		cmd.IsHeadOfFamily,
		nullableID(cmd.FamilyCardID),
		id,
	}

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Citizen, error) {
		return repository.QueryOne(ctx, tx, q, updateArgs, scanCitizen)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("citizen updated", "id", c.ID)
	return &c, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM citizens WHERE id = ?",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("citizen removed", "id", id)
	return nil
}

func (r *repo) Extract(ctx context.Context, text string) genai.ExtractionResult {
	return r.gateway.ExtractCitizenRecord(ctx, text)
}

func validateCommand(cmd CreateCommand) error {
	if strings.TrimSpace(cmd.NIK) == "" {
		return fmt.Errorf("%w: nik required", ErrInvalidCitizen)
	}
	if strings.TrimSpace(cmd.Name) == "" {
		return fmt.Errorf("%w: name required", ErrInvalidCitizen)
	}
	if cmd.Gender != "" && cmd.Gender != GenderMale && cmd.Gender != GenderFemale {
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidCitizen, cmd.Gender)
	}
	return nil
}

func nullableID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
