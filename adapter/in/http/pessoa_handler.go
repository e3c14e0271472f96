package http

import (
	"github.com/dvrs00/teste-de-software/core/port/in"
	"github.com/dvrs00/teste-de-software/core/service/pessoa"
	"github.com/dvrs00/teste-de-software/infra/middleware"

	"github.com/gofiber/fiber/v2"
)

const (
	msgNomeType           = "nome must be a string."
	msgCPFType            = "cpf must be a string."
	msgEmailType          = "email must be a string."
	msgDataNascimentoType = "dataNascimento must be a valid date (YYYY-MM-DD)."
)

// PessoaHandler handles HTTP requests for pessoa records
type PessoaHandler struct {
	service in.PessoaService
}

// NewPessoaHandler creates a new PessoaHandler
func NewPessoaHandler(service in.PessoaService) *PessoaHandler {
	return &PessoaHandler{service: service}
}

// Register registers pessoa routes. Extra handlers run before every route,
// e.g. rate limiting.
func (h *PessoaHandler) Register(router fiber.Router, handlers ...fiber.Handler) {
	pessoas := router.Group("/pessoas", handlers...)

	pessoas.Post("/", h.Create)
	pessoas.Get("/", h.List)

	byID := middleware.ValidateUUID("id")
	pessoas.Get("/:id", byID, h.Get)
	pessoas.Patch("/:id", byID, h.Update)
	pessoas.Put("/:id", byID, h.Update)
	pessoas.Delete("/:id", byID, h.Delete)
}

// Create creates a pessoa
// @Summary Create pessoa
// @Tags Pessoas
// @Accept json
// @Produce json
// @Success 201 {object} domain.Pessoa
// @Failure 400,409 {object} middleware.ErrorResponse
// @Router /pessoas [post]
func (h *PessoaHandler) Create(c *fiber.Ctx) error {
	var req in.CreatePessoaRequest
	err := decodeStrict(c.Body(), map[string]fieldTarget{
		"nome":           {&req.Nome, msgNomeType},
		"cpf":            {&req.CPF, msgCPFType},
		"email":          {&req.Email, msgEmailType},
		"dataNascimento": {&req.DataNascimento, msgDataNascimentoType},
	})
	if err != nil {
		return err
	}
	if err := pessoa.ValidateCreate(&req); err != nil {
		return err
	}

	created, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// List returns every pessoa
// @Summary List pessoas
// @Tags Pessoas
// @Produce json
// @Success 200 {array} domain.Pessoa
// @Router /pessoas [get]
func (h *PessoaHandler) List(c *fiber.Ctx) error {
	pessoas, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(pessoas)
}

// Get returns one pessoa
// @Summary Get pessoa
// @Tags Pessoas
// @Produce json
// @Param id path string true "Pessoa ID"
// @Success 200 {object} domain.Pessoa
// @Failure 400,404 {object} middleware.ErrorResponse
// @Router /pessoas/{id} [get]
func (h *PessoaHandler) Get(c *fiber.Ctx) error {
	found, err := h.service.FindOne(c.UserContext(), middleware.ParamUUID(c, "id"))
	if err != nil {
		return err
	}
	return c.JSON(found)
}

// Update applies a partial update
// @Summary Update pessoa
// @Tags Pessoas
// @Accept json
// @Produce json
// @Param id path string true "Pessoa ID"
// @Success 200 {object} domain.Pessoa
// @Failure 400,404,409 {object} middleware.ErrorResponse
// @Router /pessoas/{id} [patch]
func (h *PessoaHandler) Update(c *fiber.Ctx) error {
	var req in.UpdatePessoaRequest
	err := decodeStrict(c.Body(), map[string]fieldTarget{
		"nome":           {&req.Nome, msgNomeType},
		"cpf":            {&req.CPF, msgCPFType},
		"email":          {&req.Email, msgEmailType},
		"dataNascimento": {&req.DataNascimento, msgDataNascimentoType},
	})
	if err != nil {
		return err
	}
	if err := pessoa.ValidateUpdate(&req); err != nil {
		return err
	}

	updated, err := h.service.Update(c.UserContext(), middleware.ParamUUID(c, "id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// Delete removes a pessoa
// @Summary Delete pessoa
// @Tags Pessoas
// @Param id path string true "Pessoa ID"
// @Success 204
// @Failure 400,404 {object} middleware.ErrorResponse
// @Router /pessoas/{id} [delete]
func (h *PessoaHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Remove(c.UserContext(), middleware.ParamUUID(c, "id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
