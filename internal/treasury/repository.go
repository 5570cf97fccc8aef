package treasury

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

const transactionColumns = "id, tx_date, description, amount, type, category"

// snapshotSize is the number of most recent transactions included in the
// insight snapshot.
const snapshotSize = 5

type repo struct {
	db         *sql.DB
	gateway    genai.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a treasury repository implementing the System interface.
func New(
	db *sql.DB,
	gateway genai.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		gateway:    gateway,
		logger:     logger.With("system", "treasury"),
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
) (*pagination.PageResult[Transaction], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Description", "Category")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count transactions: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	txs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanTransaction)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}

	result := pagination.NewPageResult(txs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	t, err := repository.QueryOne(ctx, r.db, q, args, scanTransaction)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &t, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Transaction, error) {
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		INSERT INTO transactions(%s)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING %s`, transactionColumns, transactionColumns)

	insertArgs := []any{
		uuid.New(),
		cmd.Date,
		cmd.Description,
		cmd.Amount,
		string(cmd.Type),
		cmd.Category,
	}

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Transaction, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanTransaction)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("transaction recorded", "id", t.ID, "type", t.Type, "amount", t.Amount)
	return &t, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM transactions WHERE id = ?",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("transaction removed", "id", id)
	return nil
}

func (r *repo) Summarize(ctx context.Context) (*Summary, error) {
	q := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'INCOME' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'EXPENSE' THEN amount ELSE 0 END), 0)
		FROM transactions`

	var s Summary
	if err := r.db.QueryRowContext(ctx, q).Scan(&s.TotalIncome, &s.TotalExpense); err != nil {
		return nil, fmt.Errorf("summarize ledger: %w", err)
	}

	s.Balance = s.TotalIncome - s.TotalExpense
	return &s, nil
}

func (r *repo) Insight(ctx context.Context) (string, error) {
	snapshot, err := r.snapshot(ctx)
	if err != nil {
		return "", err
	}

	return r.gateway.GenerateFinancialInsight(ctx, *snapshot), nil
}

// snapshot assembles the ledger summary plus the most recent transactions
// for the insight prompt.
func (r *repo) snapshot(ctx context.Context) (*genai.FinancialSnapshot, error) {
	summary, err := r.Summarize(ctx)
	if err != nil {
		return nil, err
	}

	qb := query.NewBuilder(projection, defaultSort)
	pageSQL, pageArgs := qb.BuildPage(1, snapshotSize)

	recent, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanTransaction)
	if err != nil {
		return nil, fmt.Errorf("query recent transactions: %w", err)
	}

	lines := make([]genai.TransactionLine, len(recent))
	for i, t := range recent {
		lines[i] = genai.TransactionLine{
			Date:        t.Date,
			Description: t.Description,
			Amount:      t.Amount,
			Type:        string(t.Type),
			Category:    t.Category,
		}
	}

	return &genai.FinancialSnapshot{
		Balance:      summary.Balance,
		TotalIncome:  summary.TotalIncome,
		TotalExpense: summary.TotalExpense,
		Recent:       lines,
	}, nil
}

func validateCommand(cmd CreateCommand) error {
	if strings.TrimSpace(cmd.Description) == "" {
		return fmt.Errorf("%w: description required", ErrInvalidTransaction)
	}
	if cmd.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidTransaction)
	}
	if cmd.Type != TypeIncome && cmd.Type != TypeExpense {
		return ErrInvalidType
	}
	if strings.TrimSpace(cmd.Date) == "" {
		return fmt.Errorf("%w: date required", ErrInvalidTransaction)
	}
	return nil
}
