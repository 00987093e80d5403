package review

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"go.uber.org/zap"

	"github.com/sweetbakery/storefront/internal/database"
	"github.com/sweetbakery/storefront/internal/dto"
	reviewrepo "github.com/sweetbakery/storefront/internal/repository/review"
	reviewsvc "github.com/sweetbakery/storefront/internal/service/review"
)

func newTestServer(t *testing.T) (*echo.Echo, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := bun.NewDB(sqlDB, pgdialect.New())
	svc := reviewsvc.NewService(reviewsvc.Params{
		Repository: reviewrepo.NewRepository(&database.Connections{Writer: db, Reader: db}),
		Logger:     zap.NewNop(),
	})

	e := echo.New()
	Register(e, NewHandler(svc))
	return e, mock
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestListReturnsNewestFirst(t *testing.T) {
	e, mock := newTestServer(t)

	created := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM "reviews" AS "review" ORDER BY "created_at" DESC`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "author", "rating", "text", "created_at"}).
			AddRow(2, "Мария", 5, "Очень вкусно!", created.Add(time.Hour)).
			AddRow(1, "Анна", 4, "Хороший торт", created),
	)

	rec := doRequest(e, http.MethodGet, "/reviews", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var reviews []dto.ReviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reviews))
	require.Len(t, reviews, 2)
	assert.Equal(t, "Мария", reviews[0].Author)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePersistsReview(t *testing.T) {
	e, mock := newTestServer(t)

	mock.ExpectQuery(`INSERT INTO "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	rec := doRequest(e, http.MethodPost, "/reviews", `{"author": "Анна", "rating": 5, "text": "Очень вкусно!"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var review dto.ReviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &review))
	assert.EqualValues(t, 3, review.ID)
	assert.Equal(t, "Анна", review.Author)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsIncompletePayload(t *testing.T) {
	e, mock := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/reviews", `{"author": "Анна"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"missing required review fields"}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreflightUsesDefaultHeaders(t *testing.T) {
	e, mock := newTestServer(t)

	rec := doRequest(e, http.MethodOptions, "/reviews", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get(echo.HeaderAccessControlAllowMethods))
	assert.Equal(t, "Content-Type", rec.Header().Get(echo.HeaderAccessControlAllowHeaders))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnsupportedMethodIsRejected(t *testing.T) {
	e, mock := newTestServer(t)

	rec := doRequest(e, http.MethodPut, "/reviews", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
