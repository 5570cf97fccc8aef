package letters

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"rukun/internal/citizens"
	"rukun/internal/genai"
	"rukun/pkg/formatting"
	"rukun/pkg/pagination"
	"rukun/pkg/query"
	"rukun/pkg/repository"
	"rukun/web/print"
)

const letterColumns = "id, type, citizen_id, letter_date, purpose, content, created_at"

// Fixed letterhead identity of the issuing office.
const (
	officeRT  = "01"
	officeRW  = "05"
	chairName = "Bpk. Admin RT"
)

const pendingBody = "Isi surat belum tersedia."

type repo struct {
	db         *sql.DB
	gateway    genai.System
	citizens   citizens.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a letter repository implementing the System interface.
func New(
	db *sql.DB,
	gateway genai.System,
	citizenSys citizens.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		gateway:    gateway,
		citizens:   citizenSys,
		logger:     logger.With("system", "letters"),
		pagination: pagination,
	}
}

func (r *repo) Handler(renderer *print.Renderer) *Handler {
	return NewHandler(r, renderer, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Letter], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Purpose")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count letters: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	records, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanLetter)
	if err != nil {
		return nil, fmt.Errorf("query letters: %w", err)
	}

	result := pagination.NewPageResult(records, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Letter, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	l, err := repository.QueryOne(ctx, r.db, q, args, scanLetter)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &l, nil
}

func (r *repo) Draft(ctx context.Context, cmd DraftCommand) (*Letter, error) {
	if err := validateDraft(&cmd); err != nil {
		return nil, err
	}

	citizen, err := r.citizens.Find(ctx, cmd.CitizenID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCitizenNotFound, cmd.CitizenID)
	}

	var content *string
	if body, ok := r.gateway.GenerateLetterBody(ctx, string(cmd.Type), citizen.Name, cmd.Purpose); ok {
		content = &body
	} else {
		r.logger.Warn("letter stored without generated body", "type", cmd.Type, "citizen", citizen.ID)
	}

	q := fmt.Sprintf(`
		INSERT INTO letters(%s)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING %s`, letterColumns, letterColumns)

	insertArgs := []any{
		uuid.New(),
		string(cmd.Type),
		cmd.CitizenID,
		cmd.Date,
		cmd.Purpose,
		content,
		time.Now().UTC().Format(time.RFC3339),
	}

	l, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Letter, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanLetter)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("letter drafted", "id", l.ID, "type", l.Type, "generated", content != nil)
	return &l, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM letters WHERE id = ?",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("letter removed", "id", id)
	return nil
}

func (r *repo) PrintView(ctx context.Context, id uuid.UUID) (*print.LetterView, error) {
	letter, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	citizen, err := r.citizens.Find(ctx, letter.CitizenID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCitizenNotFound, letter.CitizenID)
	}

	body := pendingBody
	if letter.Content != nil {
		body = *letter.Content
	}

	letterDate := time.Now()
	if d, err := formatting.ParseISODate(letter.Date); err == nil {
		letterDate = d
	}

	birthInfo := citizen.POB
	if d, err := formatting.ParseISODate(citizen.DOB); err == nil {
		birthInfo = fmt.Sprintf("%s, %s", citizen.POB, formatting.FormatDateID(d))
	}

	return &print.LetterView{
		Type:      string(letter.Type),
		Number:    letterNumber(letterDate),
		Name:      citizen.Name,
		NIK:       citizen.NIK,
		BirthInfo: birthInfo,
		Address:   citizen.Address,
		Body:      body,
		DateLine:  formatting.FormatDateID(letterDate),
		RT:        officeRT,
		RW:        officeRW,
		ChairName: chairName,
	}, nil
}

func letterNumber(date time.Time) string {
	return fmt.Sprintf("045 / RT%s / RW%s / %d / %d", officeRT, officeRW, int(date.Month()), date.Year())
}

func validateDraft(cmd *DraftCommand) error {
	if cmd.Type == "" {
		return ErrInvalidLetterType
	}
	if cmd.CitizenID == uuid.Nil {
		return fmt.Errorf("%w: citizen_id required", ErrInvalidLetter)
	}
	if strings.TrimSpace(cmd.Purpose) == "" {
		return fmt.Errorf("%w: purpose required", ErrInvalidLetter)
	}
	if cmd.Date == "" {
		cmd.Date = time.Now().Format("2006-01-02")
	} else if _, err := formatting.ParseISODate(cmd.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidLetter)
	}
	return nil
}
