// internal/page/page_test.go
//
// Unit-tests for page queries and the cached lookup service, using
// sqlmock.
//
// Run: go test ./internal/page -v

package page

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

const selectPattern = `SELECT id, city_slug, service_slug`

var pageColumns = []string{
	"id", "city_slug", "service_slug", "seo_title", "meta_description", "h1",
	"hero_text", "description", "sections_json", "features_json",
	"testimonials_json", "faq_json", "city_description", "cta_text",
	"price_range", "published_at", "created_at", "updated_at",
}

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func pageRow() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(pageColumns).AddRow(
		7, "sandy-ut", "kitchen-remodeling", nil, nil, nil,
		"Custom Hero", nil, nil, nil,
		nil, nil, nil, nil,
		nil, now, now, now,
	)
}

func TestByURL_Hit(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectPattern)).
		WithArgs("sandy-ut", "kitchen-remodeling").
		WillReturnRows(pageRow())

	rec, err := ByURL(context.Background(), db, "Sandy-UT", "Kitchen Remodeling")
	if err != nil {
		t.Fatalf("ByURL: %v", err)
	}
	if rec.HeroText == nil || *rec.HeroText != "Custom Hero" {
		t.Fatalf("hero_text = %v", rec.HeroText)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestByURL_MissMapsToErrNotFound(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectPattern)).
		WithArgs("sandy-ut", "roofing").
		WillReturnRows(sqlmock.NewRows(pageColumns))

	_, err := ByURL(context.Background(), db, "sandy-ut", "roofing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestService_CachesSnapshots(t *testing.T) {
	db, mock := newMock(t)

	// Exactly one query is expected; the second call must be served from
	// the cache.
	mock.ExpectQuery(regexp.QuoteMeta(selectPattern)).
		WithArgs("sandy-ut", "kitchen-remodeling").
		WillReturnRows(pageRow())

	svc := NewService(db, 0)
	ctx := context.Background()

	first, err := svc.ByURL(ctx, "sandy-ut", "kitchen-remodeling")
	if err != nil {
		t.Fatalf("first lookup: %v", err)
	}
	second, err := svc.ByURL(ctx, "sandy-ut", "kitchen-remodeling")
	if err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if first != second {
		t.Fatal("second lookup did not return the cached snapshot")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestService_ErrorPropagates(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectPattern)).
		WillReturnError(errors.New("connection refused"))

	svc := NewService(db, 0)
	if _, err := svc.ByURL(context.Background(), "sandy-ut", "kitchen-remodeling"); err == nil {
		t.Fatal("expected error from failed query")
	}
}
