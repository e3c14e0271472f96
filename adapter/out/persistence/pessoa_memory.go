package persistence

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dvrs00/teste-de-software/core/domain"
	"github.com/dvrs00/teste-de-software/core/port/out"

	"github.com/google/uuid"
)

// PessoaMemory is an in-process out.PessoaRepository with the same unique
// constraints as the pessoas table. Records are copied in and out.
type PessoaMemory struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*domain.Pessoa
	order []uuid.UUID
	clock func() time.Time
}

// NewPessoaMemory creates an empty store.
func NewPessoaMemory() *PessoaMemory {
	return &PessoaMemory{
		byID:  make(map[uuid.UUID]*domain.Pessoa),
		clock: time.Now,
	}
}

var _ out.PessoaRepository = (*PessoaMemory)(nil)

func (m *PessoaMemory) FindByCPF(_ context.Context, cpf string) (*domain.Pessoa, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.findBy(func(p *domain.Pessoa) bool { return p.CPF == cpf }).Clone(), nil
}

func (m *PessoaMemory) FindByEmail(_ context.Context, email string) (*domain.Pessoa, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.findBy(func(p *domain.Pessoa) bool { return p.Email == email }).Clone(), nil
}

func (m *PessoaMemory) FindByID(_ context.Context, id uuid.UUID) (*domain.Pessoa, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.byID[id].Clone(), nil
}

func (m *PessoaMemory) FindAll(_ context.Context) ([]*domain.Pessoa, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	pessoas := make([]*domain.Pessoa, 0, len(m.order))
	for _, id := range m.order {
		pessoas = append(pessoas, m.byID[id].Clone())
	}
	return pessoas, nil
}

func (m *PessoaMemory) Insert(_ context.Context, pessoa *domain.Pessoa) (*domain.Pessoa, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkUnique(pessoa, uuid.Nil); err != nil {
		return nil, err
	}

	stored := pessoa.Clone()
	stored.ID = uuid.New()
	stored.CreatedAt = m.clock().UTC()
	stored.UpdatedAt = stored.CreatedAt

	m.byID[stored.ID] = stored
	m.order = append(m.order, stored.ID)
	return stored.Clone(), nil
}

func (m *PessoaMemory) Save(_ context.Context, pessoa *domain.Pessoa) (*domain.Pessoa, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.byID[pessoa.ID]
	if !ok {
		return nil, fmt.Errorf("save pessoa %s: %w", pessoa.ID, ErrNotFound)
	}
	if err := m.checkUnique(pessoa, pessoa.ID); err != nil {
		return nil, err
	}

	stored := pessoa.Clone()
	stored.CreatedAt = current.CreatedAt
	stored.UpdatedAt = m.clock().UTC()
	m.byID[stored.ID] = stored
	return stored.Clone(), nil
}

func (m *PessoaMemory) DeleteByID(_ context.Context, id uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[id]; !ok {
		return 0, nil
	}
	delete(m.byID, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func (m *PessoaMemory) Ping(context.Context) error {
	return nil
}

// findBy expects the lock to be held.
func (m *PessoaMemory) findBy(match func(*domain.Pessoa) bool) *domain.Pessoa {
	for _, id := range m.order {
		if p := m.byID[id]; match(p) {
			return p
		}
	}
	return nil
}

// checkUnique expects the write lock to be held. self is skipped so a record
// can be saved with its own values. A CPF clash wins over an email clash
// even when they hit different records.
func (m *PessoaMemory) checkUnique(pessoa *domain.Pessoa, self uuid.UUID) error {
	emailTaken := false
	for id, p := range m.byID {
		if id == self {
			continue
		}
		if p.CPF == pessoa.CPF {
			return &out.DuplicateError{Field: "cpf"}
		}
		if p.Email == pessoa.Email {
			emailTaken = true
		}
	}
	if emailTaken {
		return &out.DuplicateError{Field: "email"}
	}
	return nil
}
