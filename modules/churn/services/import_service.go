package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/churnai/churnai/modules/churn/domain/events"
	"github.com/churnai/churnai/modules/churn/domain/risk"
	"github.com/churnai/churnai/pkg/eventbus"
)

const (
	CSVTypeAccounts       = "accounts"
	CSVTypeSubscriptions  = "subscriptions"
	CSVTypeSupportTickets = "support_tickets"
	CSVTypeFeatureUsage   = "feature_usage"
	CSVTypeChurnEvents    = "churn_events"
)

const (
	runStatusCompleted           = "completed"
	runStatusCompletedWithErrors = "completed_with_errors"
	runStatusFailed              = "failed"
)

type ChurnRepository interface {
	// ListCustomers returns the organization's customers in creation order.
	// The positional-cyclic assignment of aggregates depends on this order
	// being stable across importer runs.
	ListCustomers(ctx context.Context, organizationID uuid.UUID) ([]CustomerRef, error)
	InsertCustomers(ctx context.Context, organizationID uuid.UUID, batch []CustomerInsert) (int, error)
	UpdateCustomerMRR(ctx context.Context, organizationID, customerID uuid.UUID, mrr decimal.Decimal) error
	InsertCustomerMetrics(ctx context.Context, batch []CustomerMetricInsert) (int, error)
	InsertRiskScores(ctx context.Context, batch []RiskScoreInsert) (int, error)
	InsertRiskDrivers(ctx context.Context, batch []RiskDriverInsert) (int, error)

	InsertExecutionLog(ctx context.Context, organizationID uuid.UUID, runType string, startedAt time.Time) (uuid.UUID, error)
	FinishExecutionLog(ctx context.Context, id uuid.UUID, status string, processed int, errorMessage *string, finishedAt time.Time) error
}

type CustomerRef struct {
	ID   uuid.UUID
	Name string
}

type CustomerInsert struct {
	Name          string
	MRR           decimal.Decimal
	RiskScore     int
	RiskZone      risk.Zone
	RiskVariation int
}

type CustomerMetricInsert struct {
	CustomerID    uuid.UUID
	TicketsOpen   int
	NPS           *int
	PaymentStatus string
	LoginCount30d int
	FeaturesUsed  int
	TotalFeatures int
}

type RiskScoreInsert struct {
	CustomerID      uuid.UUID
	Score           int
	Zone            risk.Zone
	Horizon         string
	DriversSnapshot json.RawMessage
}

type RiskDriverInsert struct {
	CustomerID    uuid.UUID
	Name          string
	Category      string
	Direction     string
	Impact        string
	Value         float64
	PreviousValue float64
}

// ImportResult is the wire-level outcome of one import run. Skipped is only
// present for the accounts importer, Updated only for subscriptions.
type ImportResult struct {
	Inserted int      `json:"inserted"`
	Skipped  *int     `json:"skipped,omitempty"`
	Updated  bool     `json:"updated,omitempty"`
	Errors   []string `json:"errors"`
}

func newImportResult() *ImportResult {
	return &ImportResult{Errors: make([]string, 0)}
}

// ImportService is the CSV import pipeline: it parses an uploaded CSV for
// one of the five entity types, derives MRR / risk scores / drivers and
// writes organization-scoped rows in batches of 100.
type ImportService struct {
	repo ChurnRepository
	bus  eventbus.EventBus
	rng  *rand.Rand
}

// NewImportService wires the pipeline. The rand source is injected so
// tests can pin the placeholder scoring heuristics to a seed.
func NewImportService(repo ChurnRepository, bus eventbus.EventBus, rng *rand.Rand) *ImportService {
	return &ImportService{repo: repo, bus: bus, rng: rng}
}

// Run dispatches one uploaded CSV to the matching importer. Batch write
// failures are reported inside the result and do not fail the run; only
// auth, validation and precondition problems surface as errors.
func (s *ImportService) Run(ctx context.Context, organizationID uuid.UUID, requestID, csvType, csvContent string) (*ImportResult, error) {
	if organizationID == uuid.Nil {
		return nil, newServiceError(http.StatusBadRequest, "CHURN_NO_ORGANIZATION", "organization_id is required", nil)
	}
	if strings.TrimSpace(csvType) == "" || csvContent == "" {
		return nil, newServiceError(http.StatusBadRequest, "CHURN_INVALID_BODY", "csv_type and csv_content required", nil)
	}

	startedAt := time.Now().UTC()
	logID, logErr := s.repo.InsertExecutionLog(ctx, organizationID, "import_"+csvType, startedAt)

	rows := ParseCSV(csvContent)

	var result *ImportResult
	var err error
	switch csvType {
	case CSVTypeAccounts:
		result, err = s.importAccounts(ctx, organizationID, rows)
	case CSVTypeSupportTickets:
		result, err = s.importSupportTickets(ctx, organizationID, rows)
	case CSVTypeFeatureUsage:
		result, err = s.importFeatureUsage(ctx, organizationID, rows)
	case CSVTypeChurnEvents:
		result, err = s.importChurnEvents(ctx, organizationID, rows)
	case CSVTypeSubscriptions:
		result, err = s.importSubscriptions(ctx, organizationID, rows)
	default:
		err = newServiceError(http.StatusBadRequest, "CHURN_UNKNOWN_CSV_TYPE", fmt.Sprintf("Unknown csv_type: %s", csvType), nil)
	}

	finishedAt := time.Now().UTC()
	s.finishRun(ctx, logID, logErr, result, err, finishedAt)

	status := runStatus(result, err)
	recordImportRun(csvType, status, result)
	s.publishCompleted(organizationID, requestID, csvType, result, startedAt, finishedAt)

	return result, err
}

func runStatus(result *ImportResult, err error) string {
	switch {
	case err != nil:
		return runStatusFailed
	case result != nil && len(result.Errors) > 0:
		return runStatusCompletedWithErrors
	default:
		return runStatusCompleted
	}
}

// finishRun closes the execution log row. Log bookkeeping must never fail
// an import, so every error here is swallowed.
func (s *ImportService) finishRun(ctx context.Context, logID uuid.UUID, logErr error, result *ImportResult, runErr error, finishedAt time.Time) {
	if logErr != nil || logID == uuid.Nil {
		return
	}

	processed := 0
	var errorMessage *string
	if result != nil {
		processed = result.Inserted
		if len(result.Errors) > 0 {
			joined := strings.Join(result.Errors, "; ")
			errorMessage = &joined
		}
	}
	if runErr != nil {
		msg := runErr.Error()
		errorMessage = &msg
	}

	_ = s.repo.FinishExecutionLog(ctx, logID, runStatus(result, runErr), processed, errorMessage, finishedAt)
}

func (s *ImportService) publishCompleted(organizationID uuid.UUID, requestID, csvType string, result *ImportResult, startedAt, finishedAt time.Time) {
	if s.bus == nil {
		return
	}

	evt := events.ImportCompletedV1{
		EventID:        uuid.New(),
		EventVersion:   events.EventVersionV1,
		RequestID:      requestID,
		OrganizationID: organizationID,
		CSVType:        csvType,
		StartedAt:      startedAt,
		FinishedAt:     finishedAt,
	}
	if result != nil {
		evt.Inserted = result.Inserted
		if result.Skipped != nil {
			evt.Skipped = *result.Skipped
		}
		evt.BatchErrors = len(result.Errors)
	}
	s.bus.Publish(evt)
}

// requireCustomers loads the organization's customers and enforces the
// shared precondition of every importer except accounts.
func (s *ImportService) requireCustomers(ctx context.Context, organizationID uuid.UUID) ([]CustomerRef, error) {
	customers, err := s.repo.ListCustomers(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, newServiceError(http.StatusBadRequest, "CHURN_NO_CUSTOMERS", "Import accounts first", nil)
	}
	return customers, nil
}
