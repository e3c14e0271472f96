package in

import (
	"context"

	"github.com/dvrs00/teste-de-software/core/domain"

	"github.com/google/uuid"
)

// PessoaService defines the interface for pessoa operations
type PessoaService interface {
	Create(ctx context.Context, req *CreatePessoaRequest) (*domain.Pessoa, error)
	FindAll(ctx context.Context) ([]*domain.Pessoa, error)
	FindOne(ctx context.Context, id uuid.UUID) (*domain.Pessoa, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdatePessoaRequest) (*domain.Pessoa, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

// CreatePessoaRequest is the body of POST /pessoas.
type CreatePessoaRequest struct {
	Nome           string       `json:"nome"`
	CPF            string       `json:"cpf"`
	Email          string       `json:"email"`
	DataNascimento *domain.Date `json:"dataNascimento"`
}

// UpdatePessoaRequest is the body of PATCH /pessoas/:id. Absent fields are
// left untouched.
type UpdatePessoaRequest struct {
	Nome           *string      `json:"nome,omitempty"`
	CPF            *string      `json:"cpf,omitempty"`
	Email          *string      `json:"email,omitempty"`
	DataNascimento *domain.Date `json:"dataNascimento,omitempty"`
}

// Patch converts the request into a domain patch.
func (r *UpdatePessoaRequest) Patch() domain.PessoaPatch {
	return domain.PessoaPatch{
		Nome:           r.Nome,
		CPF:            r.CPF,
		Email:          r.Email,
		DataNascimento: r.DataNascimento,
	}
}
