package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithParam(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"url without query", "postgres://u:p@h:5432/db", "postgres://u:p@h:5432/db?default_query_exec_mode=simple_protocol"},
		{"url with query", "postgres://h/db?sslmode=disable", "postgres://h/db?sslmode=disable&default_query_exec_mode=simple_protocol"},
		{"keyword dsn", "host=h dbname=db", "host=h dbname=db default_query_exec_mode=simple_protocol"},
		{"already set", "postgres://h/db?default_query_exec_mode=exec", "postgres://h/db?default_query_exec_mode=exec"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withParam(tt.dsn, "default_query_exec_mode", "simple_protocol"))
		})
	}
}

func TestNewPostgresWithConfig_RejectsUnknownDriver(t *testing.T) {
	_, err := NewPostgresWithConfig("postgres://h/db", &PostgresConfig{Driver: "mysql"})
	assert.ErrorContains(t, err, "unsupported database driver")
}
