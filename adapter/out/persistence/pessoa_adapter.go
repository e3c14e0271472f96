package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dvrs00/teste-de-software/core/domain"
	"github.com/dvrs00/teste-de-software/core/port/out"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// PessoaAdapter implements out.PessoaRepository on Postgres.
type PessoaAdapter struct {
	db *sqlx.DB
}

// NewPessoaAdapter creates a new PessoaAdapter
func NewPessoaAdapter(db *sqlx.DB) *PessoaAdapter {
	return &PessoaAdapter{db: db}
}

var _ out.PessoaRepository = (*PessoaAdapter)(nil)

type pessoaRow struct {
	ID             uuid.UUID   `db:"id"`
	Nome           string      `db:"nome"`
	CPF            string      `db:"cpf"`
	Email          string      `db:"email"`
	DataNascimento domain.Date `db:"data_nascimento"`
	CreatedAt      time.Time   `db:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at"`
}

func (r *pessoaRow) toDomain() *domain.Pessoa {
	return &domain.Pessoa{
		ID:             r.ID,
		Nome:           r.Nome,
		CPF:            r.CPF,
		Email:          r.Email,
		DataNascimento: r.DataNascimento,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

const pessoaColumns = `id, nome, cpf, email, data_nascimento, created_at, updated_at`

func (a *PessoaAdapter) FindByCPF(ctx context.Context, cpf string) (*domain.Pessoa, error) {
	return a.getOne(ctx, "find by cpf", `SELECT `+pessoaColumns+` FROM pessoas WHERE cpf = $1`, cpf)
}

func (a *PessoaAdapter) FindByEmail(ctx context.Context, email string) (*domain.Pessoa, error) {
	return a.getOne(ctx, "find by email", `SELECT `+pessoaColumns+` FROM pessoas WHERE email = $1`, email)
}

func (a *PessoaAdapter) FindByID(ctx context.Context, id uuid.UUID) (*domain.Pessoa, error) {
	return a.getOne(ctx, "find by id", `SELECT `+pessoaColumns+` FROM pessoas WHERE id = $1`, id)
}

func (a *PessoaAdapter) getOne(ctx context.Context, op, query string, arg any) (*domain.Pessoa, error) {
	var row pessoaRow
	if err := a.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return row.toDomain(), nil
}

func (a *PessoaAdapter) FindAll(ctx context.Context) ([]*domain.Pessoa, error) {
	query := `SELECT ` + pessoaColumns + ` FROM pessoas ORDER BY created_at, id`

	var rows []pessoaRow
	if err := a.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list pessoas: %w", err)
	}

	pessoas := make([]*domain.Pessoa, len(rows))
	for i := range rows {
		pessoas[i] = rows[i].toDomain()
	}
	return pessoas, nil
}

func (a *PessoaAdapter) Insert(ctx context.Context, pessoa *domain.Pessoa) (*domain.Pessoa, error) {
	query := `
		INSERT INTO pessoas (id, nome, cpf, email, data_nascimento)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + pessoaColumns

	var row pessoaRow
	err := a.db.QueryRowxContext(ctx, query,
		uuid.New(), pessoa.Nome, pessoa.CPF, pessoa.Email, pessoa.DataNascimento,
	).StructScan(&row)
	if err != nil {
		return nil, fmt.Errorf("insert pessoa: %w", translateError(err))
	}
	return row.toDomain(), nil
}

func (a *PessoaAdapter) Save(ctx context.Context, pessoa *domain.Pessoa) (*domain.Pessoa, error) {
	query := `
		UPDATE pessoas
		SET nome = $2, cpf = $3, email = $4, data_nascimento = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + pessoaColumns

	var row pessoaRow
	err := a.db.QueryRowxContext(ctx, query,
		pessoa.ID, pessoa.Nome, pessoa.CPF, pessoa.Email, pessoa.DataNascimento,
	).StructScan(&row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("save pessoa %s: %w", pessoa.ID, ErrNotFound)
		}
		return nil, fmt.Errorf("save pessoa: %w", translateError(err))
	}
	return row.toDomain(), nil
}

func (a *PessoaAdapter) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := a.db.ExecContext(ctx, `DELETE FROM pessoas WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete pessoa: %w", err)
	}
	return result.RowsAffected()
}

func (a *PessoaAdapter) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}
