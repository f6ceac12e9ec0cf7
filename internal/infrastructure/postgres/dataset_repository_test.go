package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aircatering-bi/internal/domain"
)

type failingQuerier struct{ err error }

func (q failingQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, q.err
}

func TestDatasetRepo_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"tabla inexistente", &pgconn.PgError{Code: "42P01"}, domain.ErrDatasetUnavailable},
		{"dato inválido", &pgconn.PgError{Code: "22007"}, domain.ErrMalformedDataset},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := NewDatasetRepository(failingQuerier{err: tc.err})
			_, err := repo.LoadSales(context.Background())
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDatasetRepo_OtherErrorsAreWrapped(t *testing.T) {
	boom := errors.New("conexión rechazada")
	repo := NewDatasetRepository(failingQuerier{err: boom})

	_, err := repo.LoadEmployees(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, domain.ErrDatasetUnavailable))
}

func TestIsUndefinedTable(t *testing.T) {
	assert.True(t, isUndefinedTable(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, isUndefinedTable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUndefinedTable(errors.New("42P01")))
}
