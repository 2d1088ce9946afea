package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nebur23/bizsense-ai/internal/domain"
)

// ReportRepository implements usecase.ReportRepository with SQL aggregates.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// Cashflow aggregates signed movements per day. Inflows and outflows come
// from the movement signs, so the chart always matches the ledger. Transfers
// move money between own accounts and are excluded.
func (r *ReportRepository) Cashflow(ctx context.Context, businessID string, from, to time.Time) ([]domain.CashflowPoint, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date_trunc('day', t.date) AS day,
			COALESCE(SUM(at.amount) FILTER (WHERE at.amount > 0), 0) AS income,
			COALESCE(-SUM(at.amount) FILTER (WHERE at.amount < 0), 0) AS expense
		FROM account_transactions at
		JOIN transactions t ON t.id = at.transaction_id
		WHERE t.business_id = $1
			AND t.type <> 'TRANSFER'
			AND t.date >= $2 AND t.date <= $3
		GROUP BY day
		ORDER BY day`,
		businessID, timeToPgTimestamptz(from), timeToPgTimestamptz(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []domain.CashflowPoint
	for rows.Next() {
		var (
			day             pgtype.Timestamptz
			income, expense pgtype.Numeric
		)

		if err := rows.Scan(&day, &income, &expense); err != nil {
			return nil, err
		}

		points = append(points, domain.CashflowPoint{
			Date:    day.Time,
			Income:  numericToDecimal(income),
			Expense: numericToDecimal(expense),
		})
	}

	return points, rows.Err()
}

// BalanceDrifts returns every account whose cached balance disagrees with its
// reconstruction: the opening balance plus the sum of all movements.
func (r *ReportRepository) BalanceDrifts(ctx context.Context) ([]domain.BalanceDrift, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.name, a.balance,
			a.opening_balance + COALESCE(SUM(at.amount), 0) AS reconstructed
		FROM accounts a
		LEFT JOIN account_transactions at ON at.account_id = a.id
		GROUP BY a.id, a.name, a.balance, a.opening_balance
		HAVING a.balance <> a.opening_balance + COALESCE(SUM(at.amount), 0)
		ORDER BY a.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drifts []domain.BalanceDrift
	for rows.Next() {
		var (
			drift                 domain.BalanceDrift
			balance, movementSum  pgtype.Numeric
		)

		if err := rows.Scan(&drift.AccountID, &drift.AccountName, &balance, &movementSum); err != nil {
			return nil, err
		}

		drift.Balance = numericToDecimal(balance)
		drift.MovementSum = numericToDecimal(movementSum)
		drifts = append(drifts, drift)
	}

	return drifts, rows.Err()
}
