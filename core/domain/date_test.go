package domain

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"plain date", "1995-10-20", NewDate(1995, time.October, 20), false},
		{"rfc3339 utc", "1992-04-15T00:00:00.000Z", NewDate(1992, time.April, 15), false},
		{"rfc3339 offset keeps written day", "2000-01-01T23:30:00-03:00", NewDate(2000, time.January, 1), false},
		{"garbage", "not-a-date", Date{}, true},
		{"impossible day", "2000-02-31", Date{}, true},
		{"date with junk suffix", "2000-01-01xyz", Date{}, true},
		{"empty", "", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time), "got %s", got)
		})
	}
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		D *Date `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2000-02-19T00:00:00.000Z"}`), &payload))
	require.NotNil(t, payload.D)
	assert.Equal(t, "2000-02-19", payload.D.String())

	out, err := json.Marshal(struct {
		D Date `json:"d"`
	}{D: NewDate(1995, time.May, 10)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"1995-05-10"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"d":12}`), &payload))
}

func TestDate_ScanAndValue(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(1990, time.March, 3, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "1990-03-03", d.String())

	require.NoError(t, d.Scan([]byte("2001-12-24")))
	assert.Equal(t, "2001-12-24", d.String())

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2001-12-24", v)

	assert.Error(t, d.Scan(42))
}

func TestPessoaPatch_Apply(t *testing.T) {
	original := Pessoa{
		Nome:           "Carlos Antigo",
		CPF:            "57270619972",
		Email:          "carlos.antigo@teste.com",
		DataNascimento: NewDate(1992, time.April, 15),
	}

	name := "Carlos Nogueira Atualizado"
	patched := original
	PessoaPatch{Nome: &name}.Apply(&patched)

	assert.Equal(t, name, patched.Nome)
	assert.Equal(t, original.CPF, patched.CPF)
	assert.Equal(t, original.Email, patched.Email)
	assert.Equal(t, original.DataNascimento, patched.DataNascimento)
}
