package product

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"github.com/sweetbakery/storefront/internal/database"
	"github.com/sweetbakery/storefront/internal/entity"
)

var productColumns = []string{
	"id", "name", "category", "price", "image", "description", "rating", "created_at", "updated_at",
}

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := bun.NewDB(sqlDB, pgdialect.New())
	return NewRepository(&database.Connections{Writer: db, Reader: db}), mock
}

func productRow(id int64, name, category string) []driver.Value {
	created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	return []driver.Value{id, name, category, 1500.0, "/images/cake.jpg", "", 5.0, created, created}
}

func TestListAllLabelSkipsCategoryFilter(t *testing.T) {
	repo, mock := newMockRepo(t)

	// No WHERE clause between FROM and ORDER BY.
	mock.ExpectQuery(`FROM "products" AS "product" ORDER BY "id" ASC`).WillReturnRows(
		sqlmock.NewRows(productColumns).
			AddRow(productRow(1, "Торт Наполеон", "Торты")...).
			AddRow(productRow(2, "Эклер", "Пирожные")...),
	)

	products, err := repo.List(context.Background(), entity.CategoryAll)
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFiltersByCategory(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`WHERE \(category = 'Торты'\)`).WillReturnRows(
		sqlmock.NewRows(productColumns).
			AddRow(productRow(1, "Торт Наполеон", "Торты")...),
	)

	products, err := repo.List(context.Background(), "Торты")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Торты", products[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "products"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), &entity.Product{ID: 42, Name: "Торт", Category: "Торты", Price: 1500, Image: "/images/cake.jpg"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateReturnsStoredRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "products"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "products"`).WillReturnRows(
		sqlmock.NewRows(productColumns).
			AddRow(productRow(1, "Торт Наполеон", "Торты")...),
	)

	stored, err := repo.Update(context.Background(), &entity.Product{ID: 1, Name: "Торт Наполеон", Category: "Торты", Price: 1500, Image: "/images/cake.jpg"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, stored.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTouchOnlyMovesTimestamp(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "products"(.+)SET updated_at = (.+) WHERE \(id = 9\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Touching an unknown id is not an error.
	assert.NoError(t, repo.Touch(context.Background(), 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}
