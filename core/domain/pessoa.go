package domain

import (
	"time"

	"github.com/google/uuid"
)

// Pessoa is a registered person. CPF and Email are unique across all
// records; ID is assigned once by the store and never reused.
type Pessoa struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Nome           string    `json:"nome" db:"nome"`
	CPF            string    `json:"cpf" db:"cpf"`
	Email          string    `json:"email" db:"email"`
	DataNascimento Date      `json:"dataNascimento" db:"data_nascimento"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// Clone returns a shallow copy; Pessoa has no reference fields.
func (p *Pessoa) Clone() *Pessoa {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// PessoaPatch carries the fields of a partial update. A nil field is absent
// and leaves the stored value untouched.
type PessoaPatch struct {
	Nome           *string
	CPF            *string
	Email          *string
	DataNascimento *Date
}

// Apply overwrites the fields present in the patch.
func (p PessoaPatch) Apply(target *Pessoa) {
	if p.Nome != nil {
		target.Nome = *p.Nome
	}
	if p.CPF != nil {
		target.CPF = *p.CPF
	}
	if p.Email != nil {
		target.Email = *p.Email
	}
	if p.DataNascimento != nil {
		target.DataNascimento = *p.DataNascimento
	}
}
