package out

import (
	"context"

	"github.com/dvrs00/teste-de-software/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=pessoa_repository.go -destination=mocks/pessoa_repository_mock.go -package=mocks

// PessoaRepository defines the interface for pessoa persistence.
// Lookups return (nil, nil) when no record matches.
type PessoaRepository interface {
	FindByCPF(ctx context.Context, cpf string) (*domain.Pessoa, error)
	FindByEmail(ctx context.Context, email string) (*domain.Pessoa, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Pessoa, error)
	FindAll(ctx context.Context) ([]*domain.Pessoa, error)

	// Insert assigns the id and timestamps of a new record.
	Insert(ctx context.Context, pessoa *domain.Pessoa) (*domain.Pessoa, error)
	// Save persists an existing record under the same id.
	Save(ctx context.Context, pessoa *domain.Pessoa) (*domain.Pessoa, error)
	// DeleteByID returns the number of rows removed.
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)

	Ping(ctx context.Context) error
}
