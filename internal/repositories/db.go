package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/vibeguard/vibeguard/internal/middlewares"
)

// ext returns the request transaction when one was opened by
// TxMiddleware, otherwise the shared connection pool.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
