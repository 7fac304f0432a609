// internal/lead/repository.go
//
// MySQL persistence for captured leads.
//
// Schema (2026-07-14)
// -------------------
//
//	CREATE TABLE lead (
//	  id            BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
//	  name          VARCHAR(120)  NOT NULL,
//	  email         VARCHAR(255)  NOT NULL,
//	  phone         VARCHAR(32)   NOT NULL DEFAULT '',
//	  city_slug     VARCHAR(80)   NOT NULL DEFAULT '',
//	  service_slug  VARCHAR(80)   NOT NULL DEFAULT '',
//	  message       TEXT          NOT NULL,
//	  ua_device     VARCHAR(40)   NOT NULL DEFAULT '',
//	  ua_browser    VARCHAR(80)   NOT NULL DEFAULT '',
//	  geo_city      VARCHAR(80)   NOT NULL DEFAULT '',
//	  geo_region    VARCHAR(80)   NOT NULL DEFAULT '',
//	  created_at    TIMESTAMP     NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
package lead

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const insertSQL = `
INSERT INTO lead (name, email, phone, city_slug, service_slug, message,
                  ua_device, ua_browser, geo_city, geo_region)
VALUES (:name, :email, :phone, :city_slug, :service_slug, :message,
        :ua_device, :ua_browser, :geo_city, :geo_region)`

// Repository persists leads.  Zero value is invalid; construct with
// NewRepository.
type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository { return &Repository{db: db} }

// Insert stores one lead and returns its row ID.
func (r *Repository) Insert(ctx context.Context, l *Lead) (int64, error) {
	res, err := r.db.NamedExecContext(ctx, insertSQL, l)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
