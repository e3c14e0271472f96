package http_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	handler "github.com/dvrs00/teste-de-software/adapter/in/http"
	"github.com/dvrs00/teste-de-software/adapter/out/persistence"
	"github.com/dvrs00/teste-de-software/core/domain"
	"github.com/dvrs00/teste-de-software/core/service/pessoa"
	"github.com/dvrs00/teste-de-software/infra/middleware"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mariaBody = `{"nome":"Maria Silva","cpf":"039.317.752-16","email":"maria@example.com","dataNascimento":"1990-05-17"}`

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
	RequestID string `json:"request_id"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})
	app.Use(middleware.RequestID())

	service := pessoa.NewService(persistence.NewPessoaMemory(), nil)
	handler.NewPessoaHandler(service).Register(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func decodeError(t *testing.T, data []byte) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(data, &body))
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.RequestID)
	return body
}

func createMaria(t *testing.T, app *fiber.App) domain.Pessoa {
	t.Helper()
	status, data := do(t, app, "POST", "/pessoas", mariaBody)
	require.Equal(t, fiber.StatusCreated, status, string(data))

	var created domain.Pessoa
	require.NoError(t, json.Unmarshal(data, &created))
	return created
}

func TestCreate_Success(t *testing.T) {
	app := newTestApp(t)

	created := createMaria(t, app)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Maria Silva", created.Nome)
	assert.Equal(t, "03931775216", created.CPF)
	assert.Equal(t, "1990-05-17", created.DataNascimento.String())
}

func TestCreate_InvalidCPF(t *testing.T) {
	app := newTestApp(t)

	status, data := do(t, app, "POST", "/pessoas",
		`{"nome":"Ana","cpf":"12345678901","email":"ana@example.com","dataNascimento":"1990-01-01"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	body := decodeError(t, data)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, pessoa.MsgCPFInvalid, body.Error.Message)
}

func TestCreate_MissingFieldsReportsAll(t *testing.T) {
	app := newTestApp(t)

	status, data := do(t, app, "POST", "/pessoas", `{}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	body := decodeError(t, data)
	fields, ok := body.Error.Details["fields"].([]any)
	require.True(t, ok)
	assert.Len(t, fields, 4)
}

func TestCreate_DuplicateCPF(t *testing.T) {
	app := newTestApp(t)
	createMaria(t, app)

	status, data := do(t, app, "POST", "/pessoas",
		`{"nome":"Outra","cpf":"03931775216","email":"outra@example.com","dataNascimento":"1985-02-03"}`)

	assert.Equal(t, fiber.StatusConflict, status)
	body := decodeError(t, data)
	assert.Equal(t, "CONFLICT", body.Error.Code)
	assert.Equal(t, "CPF already in use.", body.Error.Message)
}

func TestCreate_DuplicateEmailIgnoresCase(t *testing.T) {
	app := newTestApp(t)
	createMaria(t, app)

	status, data := do(t, app, "POST", "/pessoas",
		`{"nome":"Outra","cpf":"57270619972","email":"MARIA@example.com","dataNascimento":"1985-02-03"}`)

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "email already in use.", decodeError(t, data).Error.Message)
}

func TestCreate_RejectsUnknownField(t *testing.T) {
	app := newTestApp(t)

	status, data := do(t, app, "POST", "/pessoas",
		`{"nome":"Ana","cpf":"03931775216","email":"ana@example.com","dataNascimento":"1990-01-01","idade":30}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "property idade should not exist.", decodeError(t, data).Error.Message)
}

func TestCreate_MalformedJSON(t *testing.T) {
	app := newTestApp(t)

	status, data := do(t, app, "POST", "/pessoas", `{"nome":`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "BAD_REQUEST", decodeError(t, data).Error.Code)
}

func TestCreate_BadDate(t *testing.T) {
	app := newTestApp(t)

	status, data := do(t, app, "POST", "/pessoas",
		`{"nome":"Ana","cpf":"03931775216","email":"ana@example.com","dataNascimento":"17/05/1990"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, decodeError(t, data).Error.Message, "dataNascimento")
}

func TestList_EmptyIsArray(t *testing.T) {
	app := newTestApp(t)

	status, data := do(t, app, "GET", "/pessoas", "")

	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[]`, string(data))
}

func TestList_ReturnsCreated(t *testing.T) {
	app := newTestApp(t)
	created := createMaria(t, app)

	status, data := do(t, app, "GET", "/pessoas", "")
	require.Equal(t, fiber.StatusOK, status)

	var list []domain.Pessoa
	require.NoError(t, json.Unmarshal(data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestGet_InvalidID(t *testing.T) {
	app := newTestApp(t)

	status, data := do(t, app, "GET", "/pessoas/not-a-uuid", "")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, data).Error.Code)
}

func TestGet_NotFoundNamesID(t *testing.T) {
	app := newTestApp(t)
	id := uuid.New()

	status, data := do(t, app, "GET", "/pessoas/"+id.String(), "")

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, decodeError(t, data).Error.Message, id.String())
}

func TestUpdate_PartialKeepsOtherFields(t *testing.T) {
	app := newTestApp(t)
	created := createMaria(t, app)

	status, data := do(t, app, "PATCH", "/pessoas/"+created.ID.String(), `{"nome":"Maria Souza"}`)
	require.Equal(t, fiber.StatusOK, status, string(data))

	var updated domain.Pessoa
	require.NoError(t, json.Unmarshal(data, &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Maria Souza", updated.Nome)
	assert.Equal(t, created.CPF, updated.CPF)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.DataNascimento.String(), updated.DataNascimento.String())
}

func TestUpdate_InvalidCPF(t *testing.T) {
	app := newTestApp(t)
	created := createMaria(t, app)

	status, _ := do(t, app, "PATCH", "/pessoas/"+created.ID.String(), `{"cpf":"111.111.111-11"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestUpdate_NotFound(t *testing.T) {
	app := newTestApp(t)

	status, _ := do(t, app, "PATCH", "/pessoas/"+uuid.NewString(), `{"nome":"X"}`)

	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestUpdate_ConflictFromStore(t *testing.T) {
	app := newTestApp(t)
	createMaria(t, app)

	status, data := do(t, app, "POST", "/pessoas",
		`{"nome":"Joao","cpf":"57270619972","email":"joao@example.com","dataNascimento":"1980-01-01"}`)
	require.Equal(t, fiber.StatusCreated, status)
	var joao domain.Pessoa
	require.NoError(t, json.Unmarshal(data, &joao))

	status, data = do(t, app, "PATCH", "/pessoas/"+joao.ID.String(), `{"email":"maria@example.com"}`)

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "email already in use.", decodeError(t, data).Error.Message)
}

func TestDelete_ThenNotFound(t *testing.T) {
	app := newTestApp(t)
	created := createMaria(t, app)
	path := "/pessoas/" + created.ID.String()

	status, data := do(t, app, "DELETE", path, "")
	assert.Equal(t, fiber.StatusNoContent, status)
	assert.Empty(t, data)

	status, _ = do(t, app, "GET", path, "")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = do(t, app, "DELETE", path, "")
	assert.Equal(t, fiber.StatusNotFound, status)
}
