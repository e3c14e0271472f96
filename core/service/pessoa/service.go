package pessoa

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dvrs00/teste-de-software/core/domain"
	"github.com/dvrs00/teste-de-software/core/port/in"
	"github.com/dvrs00/teste-de-software/core/port/out"
	"github.com/dvrs00/teste-de-software/pkg/apperr"
	"github.com/dvrs00/teste-de-software/pkg/cpf"
	"github.com/dvrs00/teste-de-software/pkg/logger"
	"github.com/dvrs00/teste-de-software/pkg/metrics"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	msgCPFInUse   = "CPF already in use."
	msgEmailInUse = "email already in use."
)

// Service implements in.PessoaService
type Service struct {
	repo    out.PessoaRepository
	metrics *metrics.Metrics
}

// NewService creates a new PessoaService. m may be nil.
func NewService(repo out.PessoaRepository, m *metrics.Metrics) in.PessoaService {
	return &Service{
		repo:    repo,
		metrics: m,
	}
}

// NormalizeEmail trims and lower-cases an address before storage and
// comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create checks CPF and email uniqueness, then inserts the new record.
// Payload validation is the caller's job.
func (s *Service) Create(ctx context.Context, req *in.CreatePessoaRequest) (*domain.Pessoa, error) {
	log := logger.WithContext(ctx).WithField("cpf", cpf.Mask(req.CPF))
	log.Info("creating pessoa")

	candidate := &domain.Pessoa{
		Nome:  strings.TrimSpace(req.Nome),
		CPF:   cpf.Normalize(req.CPF),
		Email: NormalizeEmail(req.Email),
	}
	if req.DataNascimento != nil {
		candidate.DataNascimento = *req.DataNascimento
	}

	if err := s.checkUniqueness(ctx, candidate.CPF, candidate.Email); err != nil {
		s.metrics.IncOperation("create", outcome(err))
		log.WithError(err).Warn("create rejected")
		return nil, err
	}

	created, err := s.repo.Insert(ctx, candidate)
	if err != nil {
		err = mapStoreError("insert pessoa", err)
		s.metrics.IncOperation("create", outcome(err))
		log.WithError(err).Warn("insert failed")
		return nil, err
	}

	s.metrics.IncOperation("create", "ok")
	log.WithField("pessoa_id", created.ID.String()).Info("pessoa created")
	return created, nil
}

// checkUniqueness runs both lookups concurrently and waits for both. A CPF
// conflict wins over an email conflict.
func (s *Service) checkUniqueness(ctx context.Context, cpfValue, email string) error {
	var byCPF, byEmail *domain.Pessoa

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.repo.FindByCPF(gctx, cpfValue)
		if err != nil {
			return fmt.Errorf("find by cpf: %w", err)
		}
		byCPF = p
		return nil
	})
	g.Go(func() error {
		p, err := s.repo.FindByEmail(gctx, email)
		if err != nil {
			return fmt.Errorf("find by email: %w", err)
		}
		byEmail = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return apperr.DatabaseError("uniqueness check", err)
	}

	if byCPF != nil {
		return conflict("cpf")
	}
	if byEmail != nil {
		return conflict("email")
	}
	return nil
}

func (s *Service) FindAll(ctx context.Context) ([]*domain.Pessoa, error) {
	logger.WithContext(ctx).Debug("listing pessoas")

	pessoas, err := s.repo.FindAll(ctx)
	if err != nil {
		s.metrics.IncOperation("find_all", "error")
		return nil, apperr.DatabaseError("list pessoas", err)
	}
	if pessoas == nil {
		pessoas = []*domain.Pessoa{}
	}

	s.metrics.IncOperation("find_all", "ok")
	return pessoas, nil
}

// FindOne is also the existence precondition of Update and Remove.
func (s *Service) FindOne(ctx context.Context, id uuid.UUID) (*domain.Pessoa, error) {
	pessoa, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.DatabaseError("find pessoa", err)
	}
	if pessoa == nil {
		logger.WithContext(ctx).WithField("pessoa_id", id.String()).Warn("pessoa not found")
		return nil, notFound(id)
	}
	return pessoa, nil
}

// Update merges the present fields onto the stored record. Uniqueness of a
// changed CPF or email is not re-checked here; only the store's unique
// indexes guard it.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *in.UpdatePessoaRequest) (*domain.Pessoa, error) {
	log := logger.WithContext(ctx).WithField("pessoa_id", id.String())
	log.Info("updating pessoa")

	pessoa, err := s.FindOne(ctx, id)
	if err != nil {
		s.metrics.IncOperation("update", outcome(err))
		return nil, err
	}

	patch := req.Patch()
	if patch.Nome != nil {
		nome := strings.TrimSpace(*patch.Nome)
		patch.Nome = &nome
	}
	if patch.CPF != nil {
		normalized := cpf.Normalize(*patch.CPF)
		patch.CPF = &normalized
	}
	if patch.Email != nil {
		normalized := NormalizeEmail(*patch.Email)
		patch.Email = &normalized
	}
	patch.Apply(pessoa)

	saved, err := s.repo.Save(ctx, pessoa)
	if err != nil {
		err = mapStoreError("save pessoa", err)
		s.metrics.IncOperation("update", outcome(err))
		log.WithError(err).Warn("save failed")
		return nil, err
	}

	s.metrics.IncOperation("update", "ok")
	log.Info("pessoa updated")
	return saved, nil
}

func (s *Service) Remove(ctx context.Context, id uuid.UUID) error {
	log := logger.WithContext(ctx).WithField("pessoa_id", id.String())
	log.Info("removing pessoa")

	if _, err := s.FindOne(ctx, id); err != nil {
		s.metrics.IncOperation("remove", outcome(err))
		return err
	}

	if _, err := s.repo.DeleteByID(ctx, id); err != nil {
		s.metrics.IncOperation("remove", "error")
		return apperr.DatabaseError("delete pessoa", err)
	}

	s.metrics.IncOperation("remove", "ok")
	log.Info("pessoa removed")
	return nil
}

func conflict(field string) *apperr.AppError {
	msg := msgEmailInUse
	if field == "cpf" {
		msg = msgCPFInUse
	}
	return apperr.Conflict(msg).WithDetail("field", field)
}

func notFound(id uuid.UUID) *apperr.AppError {
	return apperr.NotFound(fmt.Sprintf("pessoa with id %q not found.", id.String())).
		WithDetail("id", id.String())
}

// mapStoreError turns a unique-index violation into the same conflict the
// pre-insert check would have produced.
func mapStoreError(op string, err error) error {
	var dup *out.DuplicateError
	if errors.As(err, &dup) {
		return conflict(dup.Field)
	}
	return apperr.DatabaseError(op, err)
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	switch apperr.AsAppError(err).Code {
	case apperr.CodeConflict:
		return "conflict"
	case apperr.CodeNotFound:
		return "not_found"
	default:
		return "error"
	}
}
