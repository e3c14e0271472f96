package pessoa

import (
	"strings"
	"time"

	"github.com/dvrs00/teste-de-software/core/domain"
	"github.com/dvrs00/teste-de-software/core/port/in"
	"github.com/dvrs00/teste-de-software/pkg/apperr"
	"github.com/dvrs00/teste-de-software/pkg/cpf"

	"github.com/go-playground/validator/v10"
)

// Field messages returned to clients.
const (
	MsgNomeRequired           = "nome is required."
	MsgCPFRequired            = "CPF is required."
	MsgCPFInvalid             = "invalid CPF."
	MsgEmailRequired          = "email is required."
	MsgEmailInvalid           = "email must be a valid email address."
	MsgDataNascimentoRequired = "dataNascimento is required."
	MsgDataNascimentoFuture   = "dataNascimento cannot be in the future."
)

var validate = validator.New()

// now is replaced in tests.
var now = time.Now

// ValidateCreate checks every field of a create payload and reports all
// failures at once.
func ValidateCreate(req *in.CreatePessoaRequest) error {
	var fields []apperr.FieldError

	fields = append(fields, checkNome(req.Nome)...)
	fields = append(fields, checkCPF(req.CPF)...)
	fields = append(fields, checkEmail(req.Email)...)
	fields = append(fields, checkDataNascimento(req.DataNascimento)...)

	if len(fields) > 0 {
		return apperr.ValidationFailed(fields...)
	}
	return nil
}

// ValidateUpdate applies the create rules to the fields that are present.
func ValidateUpdate(req *in.UpdatePessoaRequest) error {
	var fields []apperr.FieldError

	if req.Nome != nil {
		fields = append(fields, checkNome(*req.Nome)...)
	}
	if req.CPF != nil {
		fields = append(fields, checkCPF(*req.CPF)...)
	}
	if req.Email != nil {
		fields = append(fields, checkEmail(*req.Email)...)
	}
	if req.DataNascimento != nil {
		fields = append(fields, checkDataNascimento(req.DataNascimento)...)
	}

	if len(fields) > 0 {
		return apperr.ValidationFailed(fields...)
	}
	return nil
}

func checkNome(nome string) []apperr.FieldError {
	if strings.TrimSpace(nome) == "" {
		return []apperr.FieldError{{Field: "nome", Message: MsgNomeRequired}}
	}
	return nil
}

func checkCPF(value string) []apperr.FieldError {
	if strings.TrimSpace(value) == "" {
		return []apperr.FieldError{{Field: "cpf", Message: MsgCPFRequired}}
	}
	if !cpf.Valid(value) {
		return []apperr.FieldError{{Field: "cpf", Message: MsgCPFInvalid}}
	}
	return nil
}

func checkEmail(email string) []apperr.FieldError {
	email = strings.TrimSpace(email)
	if email == "" {
		return []apperr.FieldError{{Field: "email", Message: MsgEmailRequired}}
	}
	if err := validate.Var(email, "email"); err != nil {
		return []apperr.FieldError{{Field: "email", Message: MsgEmailInvalid}}
	}
	return nil
}

func checkDataNascimento(d *domain.Date) []apperr.FieldError {
	if d == nil || d.IsZero() {
		return []apperr.FieldError{{Field: "dataNascimento", Message: MsgDataNascimentoRequired}}
	}
	if d.AfterDay(now()) {
		return []apperr.FieldError{{Field: "dataNascimento", Message: MsgDataNascimentoFuture}}
	}
	return nil
}
