package postgres_test

import (
	"testing"

	"github.com/Astemirdum/book-review/pkg/postgres"
	"github.com/stretchr/testify/require"
)

func TestDB_DSN(t *testing.T) {
	cfg := postgres.DB{
		Host:     "db",
		Port:     "5433",
		Username: "reviewer",
		Password: "p@ss word",
		NameDB:   "books",
		SSLMode:  "disable",
	}
	require.Equal(t, "postgres://reviewer:p%40ss%20word@db:5433/books?sslmode=disable", cfg.DSN())
}
