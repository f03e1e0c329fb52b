package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pulsemetrics/analytics-manager/internal/entity"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	Sources interface {
		// AddSource creates a source for the given owner and returns it.
		AddSource(ctx context.Context, userID string, src *entity.SourceInsert) (*entity.Source, error)
		// GetSourceById returns a source regardless of owner.
		GetSourceById(ctx context.Context, id string) (*entity.Source, error)
		// ListSources returns all sources of an owner, newest first.
		ListSources(ctx context.Context, userID string) ([]entity.Source, error)
		// DeleteSourceById deletes an owner's source.
		DeleteSourceById(ctx context.Context, id, userID string) error
		// UpdateLastSynced sets the last-synchronized timestamp.
		UpdateLastSynced(ctx context.Context, id string, ts time.Time) error
		// ListSourcesDueForSync returns sources whose sync frequency says they
		// should be refreshed at the given time. Manual sources are excluded.
		ListSourcesDueForSync(ctx context.Context, now time.Time) ([]entity.Source, error)
	}

	Reports interface {
		// AddReport creates a report for the given owner and returns it.
		AddReport(ctx context.Context, userID string, rep *entity.ReportInsert) (*entity.Report, error)
		// GetReportById returns a report regardless of owner.
		GetReportById(ctx context.Context, id string) (*entity.Report, error)
		// ListReportsWithSources returns an owner's reports joined with the
		// source name, newest first.
		ListReportsWithSources(ctx context.Context, userID string) ([]entity.ReportWithSource, error)
		// DeleteReportById deletes an owner's report.
		DeleteReportById(ctx context.Context, id, userID string) error
	}

	Users interface {
		// AddUser creates a user and returns it.
		AddUser(ctx context.Context, email, pwHash string) (*entity.User, error)
		// GetUserByEmail returns a user by email.
		GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	}

	// AnalyticsClient produces a GA4-shaped result table for resolved query
	// parameters against an authorized source. Implemented by the synthetic
	// metrics engine and by the real GA4 Data API client.
	AnalyticsClient interface {
		RunReport(ctx context.Context, src *entity.Source, params entity.QueryParameters) (*entity.RunReportResponse, error)
	}

	Repository interface {
		Sources() Sources
		Reports() Reports
		Users() Users
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		IsErrUniqueViolation(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
		PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
