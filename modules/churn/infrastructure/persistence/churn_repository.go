package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/churnai/churnai/modules/churn/services"
	"github.com/churnai/churnai/pkg/composables"
)

const (
	// Creation order keeps positional-cyclic assignment stable across runs.
	customerListQuery = `
		SELECT id, name FROM customers
		WHERE organization_id = $1
		ORDER BY created_at, id`

	customerMRRUpdateQuery = `
		UPDATE customers SET mrr = $1, updated_at = now()
		WHERE organization_id = $2 AND id = $3`

	executionLogInsertQuery = `
		INSERT INTO execution_logs (id, organization_id, run_type, status, started_at)
		VALUES ($1, $2, $3, 'running', $4)`

	executionLogFinishQuery = `
		UPDATE execution_logs
		SET status = $1, customers_processed = $2, error_message = $3, finished_at = $4
		WHERE id = $5`
)

type ChurnRepository struct{}

func NewChurnRepository() services.ChurnRepository {
	return &ChurnRepository{}
}

func (r *ChurnRepository) ListCustomers(ctx context.Context, organizationID uuid.UUID) ([]services.CustomerRef, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, customerListQuery, organizationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}
	defer rows.Close()

	var customers []services.CustomerRef
	for rows.Next() {
		var c services.CustomerRef
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, errors.Wrap(err, "failed to scan customer row")
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}
	return customers, nil
}

func (r *ChurnRepository) InsertCustomers(ctx context.Context, organizationID uuid.UUID, batch []services.CustomerInsert) (int, error) {
	args := make([]any, 0, len(batch)*7)
	for _, c := range batch {
		args = append(args, uuid.New(), organizationID, c.Name, c.MRR, c.RiskScore, string(c.RiskZone), c.RiskVariation)
	}
	query := multiInsertQuery(
		"customers",
		[]string{"id", "organization_id", "name", "mrr", "risk_score", "risk_zone", "risk_variation"},
		len(batch),
	)
	return execBatchInsert(ctx, query, args)
}

func (r *ChurnRepository) UpdateCustomerMRR(ctx context.Context, organizationID, customerID uuid.UUID, mrr decimal.Decimal) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get transaction")
	}
	if _, err := tx.Exec(ctx, customerMRRUpdateQuery, mrr, organizationID, customerID); err != nil {
		return errors.Wrap(err, "failed to update customer mrr")
	}
	return nil
}

func (r *ChurnRepository) InsertCustomerMetrics(ctx context.Context, batch []services.CustomerMetricInsert) (int, error) {
	args := make([]any, 0, len(batch)*8)
	for _, m := range batch {
		args = append(args, uuid.New(), m.CustomerID, m.TicketsOpen, m.NPS, m.PaymentStatus, m.LoginCount30d, m.FeaturesUsed, m.TotalFeatures)
	}
	query := multiInsertQuery(
		"customer_metrics",
		[]string{"id", "customer_id", "tickets_open", "nps", "payment_status", "login_count_30d", "features_used", "total_features"},
		len(batch),
	)
	return execBatchInsert(ctx, query, args)
}

func (r *ChurnRepository) InsertRiskScores(ctx context.Context, batch []services.RiskScoreInsert) (int, error) {
	args := make([]any, 0, len(batch)*6)
	for _, s := range batch {
		args = append(args, uuid.New(), s.CustomerID, s.Score, string(s.Zone), s.Horizon, []byte(s.DriversSnapshot))
	}
	query := multiInsertQuery(
		"risk_scores",
		[]string{"id", "customer_id", "score", "zone", "horizon", "drivers_snapshot"},
		len(batch),
	)
	return execBatchInsert(ctx, query, args)
}

func (r *ChurnRepository) InsertRiskDrivers(ctx context.Context, batch []services.RiskDriverInsert) (int, error) {
	args := make([]any, 0, len(batch)*8)
	for _, d := range batch {
		args = append(args, uuid.New(), d.CustomerID, d.Name, d.Category, d.Direction, d.Impact, d.Value, d.PreviousValue)
	}
	query := multiInsertQuery(
		"risk_drivers",
		[]string{"id", "customer_id", "name", "category", "direction", "impact", "value", "previous_value"},
		len(batch),
	)
	return execBatchInsert(ctx, query, args)
}

func (r *ChurnRepository) InsertExecutionLog(ctx context.Context, organizationID uuid.UUID, runType string, startedAt time.Time) (uuid.UUID, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to get transaction")
	}
	id := uuid.New()
	if _, err := tx.Exec(ctx, executionLogInsertQuery, id, organizationID, runType, startedAt); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to insert execution log")
	}
	return id, nil
}

func (r *ChurnRepository) FinishExecutionLog(ctx context.Context, id uuid.UUID, status string, processed int, errorMessage *string, finishedAt time.Time) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get transaction")
	}
	if _, err := tx.Exec(ctx, executionLogFinishQuery, status, processed, errorMessage, finishedAt, id); err != nil {
		return errors.Wrap(err, "failed to finish execution log")
	}
	return nil
}

// multiInsertQuery builds a single multi-row INSERT for one batch.
func multiInsertQuery(table string, columns []string, rowCount int) string {
	groups := make([]string, 0, rowCount)
	arg := 1
	for i := 0; i < rowCount; i++ {
		placeholders := make([]string, len(columns))
		for j := range columns {
			placeholders[j] = fmt.Sprintf("$%d", arg)
			arg++
		}
		groups = append(groups, "("+strings.Join(placeholders, ",")+")")
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES %s",
		table,
		strings.Join(columns, ", "),
		strings.Join(groups, ", "),
	)
}

func execBatchInsert(ctx context.Context, query string, args []any) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get transaction")
	}
	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
