package services

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/churnai/churnai/modules/churn/domain/events"
	"github.com/churnai/churnai/modules/churn/domain/risk"
	"github.com/churnai/churnai/pkg/eventbus"
)

type finishedLog struct {
	id           uuid.UUID
	status       string
	processed    int
	errorMessage *string
}

type fakeChurnRepository struct {
	customers []CustomerRef

	metrics []CustomerMetricInsert
	scores  []RiskScoreInsert
	drivers []RiskDriverInsert

	mrrUpdates map[uuid.UUID]decimal.Decimal

	startedRunTypes []string
	finished        []finishedLog

	insertCustomersErr error
	updateMRRErrFor    map[uuid.UUID]error
}

func newFakeChurnRepository() *fakeChurnRepository {
	return &fakeChurnRepository{
		mrrUpdates:      map[uuid.UUID]decimal.Decimal{},
		updateMRRErrFor: map[uuid.UUID]error{},
	}
}

func (f *fakeChurnRepository) seedCustomers(names ...string) {
	for _, name := range names {
		f.customers = append(f.customers, CustomerRef{ID: uuid.New(), Name: name})
	}
}

func (f *fakeChurnRepository) ListCustomers(_ context.Context, _ uuid.UUID) ([]CustomerRef, error) {
	return append([]CustomerRef(nil), f.customers...), nil
}

func (f *fakeChurnRepository) InsertCustomers(_ context.Context, _ uuid.UUID, batch []CustomerInsert) (int, error) {
	if f.insertCustomersErr != nil {
		return 0, f.insertCustomersErr
	}
	for _, c := range batch {
		f.customers = append(f.customers, CustomerRef{ID: uuid.New(), Name: c.Name})
	}
	return len(batch), nil
}

func (f *fakeChurnRepository) UpdateCustomerMRR(_ context.Context, _, customerID uuid.UUID, mrr decimal.Decimal) error {
	if err := f.updateMRRErrFor[customerID]; err != nil {
		return err
	}
	f.mrrUpdates[customerID] = mrr
	return nil
}

func (f *fakeChurnRepository) InsertCustomerMetrics(_ context.Context, batch []CustomerMetricInsert) (int, error) {
	f.metrics = append(f.metrics, batch...)
	return len(batch), nil
}

func (f *fakeChurnRepository) InsertRiskScores(_ context.Context, batch []RiskScoreInsert) (int, error) {
	f.scores = append(f.scores, batch...)
	return len(batch), nil
}

func (f *fakeChurnRepository) InsertRiskDrivers(_ context.Context, batch []RiskDriverInsert) (int, error) {
	f.drivers = append(f.drivers, batch...)
	return len(batch), nil
}

func (f *fakeChurnRepository) InsertExecutionLog(_ context.Context, _ uuid.UUID, runType string, _ time.Time) (uuid.UUID, error) {
	f.startedRunTypes = append(f.startedRunTypes, runType)
	return uuid.New(), nil
}

func (f *fakeChurnRepository) FinishExecutionLog(_ context.Context, id uuid.UUID, status string, processed int, errorMessage *string, _ time.Time) error {
	f.finished = append(f.finished, finishedLog{id: id, status: status, processed: processed, errorMessage: errorMessage})
	return nil
}

func newTestService(repo ChurnRepository) *ImportService {
	return NewImportService(repo, nil, rand.New(rand.NewSource(1)))
}

func TestImportService_RejectsMissingBody(t *testing.T) {
	svc := newTestService(newFakeChurnRepository())

	_, err := svc.Run(context.Background(), uuid.New(), "req", "", "a,b\n1,2")
	requireServiceError(t, err, http.StatusBadRequest, "csv_type and csv_content required")

	_, err = svc.Run(context.Background(), uuid.New(), "req", CSVTypeAccounts, "")
	requireServiceError(t, err, http.StatusBadRequest, "csv_type and csv_content required")
}

func TestImportService_RejectsNilOrganization(t *testing.T) {
	svc := newTestService(newFakeChurnRepository())

	_, err := svc.Run(context.Background(), uuid.Nil, "req", CSVTypeAccounts, "a\n1")
	requireServiceError(t, err, http.StatusBadRequest, "organization_id is required")
}

func TestImportService_RejectsUnknownCSVType(t *testing.T) {
	svc := newTestService(newFakeChurnRepository())

	_, err := svc.Run(context.Background(), uuid.New(), "req", "invoices", "a\n1")
	requireServiceError(t, err, http.StatusBadRequest, "Unknown csv_type: invoices")
}

func TestImportService_DependentImportersRequireCustomers(t *testing.T) {
	for _, csvType := range []string{CSVTypeSubscriptions, CSVTypeSupportTickets, CSVTypeFeatureUsage, CSVTypeChurnEvents} {
		svc := newTestService(newFakeChurnRepository())

		_, err := svc.Run(context.Background(), uuid.New(), "req", csvType, "account_id,x\na1,1")
		requireServiceError(t, err, http.StatusBadRequest, "Import accounts first")
	}
}

func TestImportAccounts_MRRAndScoreHeuristics(t *testing.T) {
	repo := newFakeChurnRepository()
	svc := newTestService(repo)

	csv := "account_name,plan_tier,seats,churn_flag\n" +
		"Acme,Enterprise,10,True\n" +
		"Globex,Pro,2,False\n" +
		"Initech,Free,3,False"
	result, err := svc.Run(context.Background(), uuid.New(), "req", CSVTypeAccounts, csv)
	require.NoError(t, err)

	require.Equal(t, 3, result.Inserted)
	require.NotNil(t, result.Skipped)
	require.Equal(t, 0, *result.Skipped)
	require.Empty(t, result.Errors)

	require.Len(t, repo.customers, 3)
	require.Equal(t, []string{"Acme", "Globex", "Initech"},
		[]string{repo.customers[0].Name, repo.customers[1].Name, repo.customers[2].Name})
}

func TestImportAccounts_FlaggedAccountsScoreHighZone(t *testing.T) {
	repo := newFakeChurnRepository()
	var inserted []CustomerInsert
	// Capture the insert payload before the fake turns it into refs.
	capture := &captureRepo{fakeChurnRepository: repo, onInsertCustomers: func(batch []CustomerInsert) {
		inserted = append(inserted, batch...)
	}}
	svc := newTestService(capture)

	csv := "account_name,plan_tier,seats,churn_flag\nAcme,Enterprise,10,True\nGlobex,Pro,2,False"
	_, err := svc.Run(context.Background(), uuid.New(), "req", CSVTypeAccounts, csv)
	require.NoError(t, err)
	require.Len(t, inserted, 2)

	flagged := inserted[0]
	require.True(t, decimal.NewFromInt(1990).Equal(flagged.MRR), "10 seats * 199")
	require.GreaterOrEqual(t, flagged.RiskScore, 70)
	require.LessOrEqual(t, flagged.RiskScore, 95)
	require.Contains(t, []risk.Zone{risk.ZoneHigh, risk.ZoneExtreme}, flagged.RiskZone)

	calm := inserted[1]
	require.True(t, decimal.NewFromInt(98).Equal(calm.MRR), "2 seats * 49")
	require.GreaterOrEqual(t, calm.RiskScore, 0)
	require.LessOrEqual(t, calm.RiskScore, 50)

	for _, c := range inserted {
		require.GreaterOrEqual(t, c.RiskVariation, -10)
		require.LessOrEqual(t, c.RiskVariation, 10)
	}
}

func TestImportAccounts_ReuploadSkipsExistingNames(t *testing.T) {
	repo := newFakeChurnRepository()
	svc := newTestService(repo)
	org := uuid.New()

	csv := "account_name,plan_tier,seats,churn_flag\nAcme,Pro,1,False\nGlobex,Pro,1,False"
	first, err := svc.Run(context.Background(), org, "req", CSVTypeAccounts, csv)
	require.NoError(t, err)
	require.Equal(t, 2, first.Inserted)

	second, err := svc.Run(context.Background(), org, "req", CSVTypeAccounts, csv)
	require.NoError(t, err)
	require.Equal(t, 0, second.Inserted)
	require.NotNil(t, second.Skipped)
	require.Equal(t, 2, *second.Skipped)
	require.Len(t, repo.customers, 2)
}

func TestImportAccounts_DefaultsForMissingColumns(t *testing.T) {
	repo := newFakeChurnRepository()
	var inserted []CustomerInsert
	capture := &captureRepo{fakeChurnRepository: repo, onInsertCustomers: func(batch []CustomerInsert) {
		inserted = append(inserted, batch...)
	}}
	svc := newTestService(capture)

	// No seats, no tier: one seat at the base multiplier.
	_, err := svc.Run(context.Background(), uuid.New(), "req", CSVTypeAccounts, "account_name\nAcme")
	require.NoError(t, err)
	require.Len(t, inserted, 1)
	require.True(t, decimal.NewFromInt(19).Equal(inserted[0].MRR))
}

func TestImportAccounts_BatchFailureReportedNotFatal(t *testing.T) {
	repo := newFakeChurnRepository()
	repo.insertCustomersErr = errors.New("connection reset")
	svc := newTestService(repo)

	result, err := svc.Run(context.Background(), uuid.New(), "req", CSVTypeAccounts, "account_name\nAcme\nGlobex")
	require.NoError(t, err)
	require.Equal(t, 0, result.Inserted)
	require.Equal(t, []string{"batch 0: connection reset"}, result.Errors)
	require.NotNil(t, result.Skipped)
	require.Equal(t, 2, *result.Skipped)

	require.Len(t, repo.finished, 1)
	require.Equal(t, runStatusCompletedWithErrors, repo.finished[0].status)
	require.NotNil(t, repo.finished[0].errorMessage)
	require.Equal(t, "batch 0: connection reset", *repo.finished[0].errorMessage)
}

func TestImportSupportTickets_AggregatesPerAccount(t *testing.T) {
	repo := newFakeChurnRepository()
	repo.seedCustomers("Acme", "Globex")
	svc := newTestService(repo)

	csv := "account_id,closed_at,satisfaction_score\n" +
		"a1,,5\n" +
		"a1,,4\n" +
		"a1,2024-01-01,3\n" +
		"a2,2024-01-02,"
	result, err := svc.Run(context.Background(), uuid.New(), "req", CSVTypeSupportTickets, csv)
	require.NoError(t, err)
	require.Equal(t, 2, result.Inserted)
	require.Len(t, repo.metrics, 2)

	first := repo.metrics[0]
	require.Equal(t, repo.customers[0].ID, first.CustomerID)
	require.Equal(t, 2, first.TicketsOpen)
	require.NotNil(t, first.NPS)
	// avg(5,4,3)=4 rescaled to (4-3)*50.
	require.Equal(t, 50, *first.NPS)
	require.Equal(t, "current", first.PaymentStatus)
	require.Equal(t, 20, first.TotalFeatures)
	require.GreaterOrEqual(t, first.LoginCount30d, 0)
	require.Less(t, first.LoginCount30d, 30)
	require.GreaterOrEqual(t, first.FeaturesUsed, 0)
	require.Less(t, first.FeaturesUsed, 15)

	second := repo.metrics[1]
	require.Equal(t, repo.customers[1].ID, second.CustomerID)
	require.Equal(t, 0, second.TicketsOpen)
	require.Nil(t, second.NPS)
}

func TestImportSupportTickets_NPSHalfValuesRoundUp(t *testing.T) {
	repo := newFakeChurnRepository()
	repo.seedCustomers("Acme")
	svc := newTestService(repo)

	// avg(1,1,1,2)=1.25 rescales to -87.5, which rounds toward positive
	// infinity: -87, not -88.
	csv := "account_id,closed_at,satisfaction_score\n" +
		"a1,,1\n" +
		"a1,,1\n" +
		"a1,,1\n" +
		"a1,,2"
	_, err := svc.Run(context.Background(), uuid.New(), "req", CSVTypeSupportTickets, csv)
	require.NoError(t, err)
	require.Len(t, repo.metrics, 1)
	require.NotNil(t, repo.metrics[0].NPS)
	require.Equal(t, -87, *repo.metrics[0].NPS)
}

func TestImportSupportTickets_AggregatesCappedAtCustomerCount(t *testing.T) {
	repo := newFakeChurnRepository()
	repo.seedCustomers("Acme")
	svc := newTestService(repo)

	csv := "account_id,closed_at,satisfaction_score\na1,,\na2,,\na3,,"
	result, err := svc.Run(context.Background(), uuid.New(), "req", CSVTypeSupportTickets, csv)
	require.NoError(t, err)
	require.Equal(t, 1, result.Inserted)
	require.Len(t, repo.metrics, 1)
}

func TestImportFeatureUsage_DriversPerAggregate(t *testing.T) {
	repo := newFakeChurnRepository()
	repo.seedCustomers("Acme")
	svc := newTestService(repo)

	csv := "subscription_id,feature_name,usage_count,error_count\n" +
		"s1,reports,3,0\n" +
		"s1,exports,1,0\n" +
		"s1,alerts,2,0\n" +
		"s1,api,9,0\n" +
		"s1,sso,1,0\n" +
		"s1,audit,1,0\n" +
		"s2,reports,4,5"
	result, err := svc.Run(context.Background(), uuid.New(), "req", CSVTypeFeatureUsage, csv)
	require.NoError(t, err)
	require.Equal(t, 3, result.Inserted)
	require.Len(t, repo.drivers, 3)

	adoption := repo.drivers[0]
	require.Equal(t, "Feature Adoption", adoption.Name)
	require.Equal(t, "product", adoption.Category)
	require.Equal(t, "up", adoption.Direction)
	require.Equal(t, "positive", adoption.Impact)
	require.InDelta(t, 6, adoption.Value, 0)
	require.GreaterOrEqual(t, adoption.PreviousValue, 1.0)
	require.LessOrEqual(t, adoption.PreviousValue, 6.0)

	lowAdoption := repo.drivers[1]
	require.Equal(t, "Feature Adoption", lowAdoption.Name)
	require.Equal(t, "down", lowAdoption.Direction)
	require.Equal(t, "negative", lowAdoption.Impact)
	require.InDelta(t, 1, lowAdoption.Value, 0)

	errorRate := repo.drivers[2]
	require.Equal(t, "Error Rate", errorRate.Name)
	require.Equal(t, "up", errorRate.Direction)
	require.Equal(t, "negative", errorRate.Impact)
	require.InDelta(t, 5, errorRate.Value, 0)
	require.InDelta(t, 3, errorRate.PreviousValue, 0)
}

func TestImportFeatureUsage_LimitsAggregatesToTriplePerCustomer(t *testing.T) {
	repo := newFakeChurnRepository()
	repo.seedCustomers("Acme")
	svc := newTestService(repo)

	csv := "subscription_id,feature_name,usage_count,error_count\n" +
		"s1,a,1,0\ns2,a,1,0\ns3,a,1,0\ns4,a,1,0\ns5,a,1,0"
	result, err := svc.Run(context.Background(), uuid.New(), "req", CSVTypeFeatureUsage, csv)
	require.NoError(t, err)
	// One customer consumes at most three aggregates.
	require.Equal(t, 3, result.Inserted)
}

func TestImportChurnEvents_AppendsScoresWithSnapshot(t *testing.T) {
	repo := newFakeChurnRepository()
	repo.seedCustomers("Acme", "Globex")
	svc := newTestService(repo)

	csv := "reason_code,refund_amount_usd,feedback_text,is_reactivation\n" +
		"too_expensive,120.50,Too pricey for us,False\n" +
		"missing_features,,,True\n" +
		"support,0,,False"
	result, err := svc.Run(context.Background(), uuid.New(), "req", CSVTypeChurnEvents, csv)
	require.NoError(t, err)
	require.Equal(t, 3, result.Inserted)
	require.Len(t, repo.scores, 3)

	// Cyclic assignment over the two customers.
	require.Equal(t, repo.customers[0].ID, repo.scores[0].CustomerID)
	require.Equal(t, repo.customers[1].ID, repo.scores[1].CustomerID)
	require.Equal(t, repo.customers[0].ID, repo.scores[2].CustomerID)

	for _, sc := range repo.scores {
		require.GreaterOrEqual(t, sc.Score, 60)
		require.LessOrEqual(t, sc.Score, 95)
		require.Equal(t, "30d", sc.Horizon)
	}

	var snapshot churnDriversSnapshot
	require.NoError(t, json.Unmarshal(repo.scores[0].DriversSnapshot, &snapshot))
	require.Equal(t, "too_expensive", snapshot.ReasonCode)
	require.InDelta(t, 120.5, snapshot.RefundAmount, 0)
	require.NotNil(t, snapshot.Feedback)
	require.Equal(t, "Too pricey for us", *snapshot.Feedback)
	require.False(t, snapshot.IsReactivation)

	require.NoError(t, json.Unmarshal(repo.scores[1].DriversSnapshot, &snapshot))
	require.Nil(t, snapshot.Feedback)
	require.True(t, snapshot.IsReactivation)
}

func TestImportChurnEvents_ReuploadAppendsDuplicates(t *testing.T) {
	repo := newFakeChurnRepository()
	repo.seedCustomers("Acme")
	svc := newTestService(repo)
	org := uuid.New()

	csv := "reason_code,refund_amount_usd,feedback_text,is_reactivation\ntoo_expensive,10,,False"
	_, err := svc.Run(context.Background(), org, "req", CSVTypeChurnEvents, csv)
	require.NoError(t, err)
	_, err = svc.Run(context.Background(), org, "req", CSVTypeChurnEvents, csv)
	require.NoError(t, err)

	require.Len(t, repo.scores, 2)
}

func TestImportSubscriptions_SumsCyclicallyAndOverwrites(t *testing.T) {
	repo := newFakeChurnRepository()
	repo.seedCustomers("Acme", "Globex")
	svc := newTestService(repo)
	org := uuid.New()

	csv := "mrr_amount\n100\n50\n25.50\nnot-a-number"
	result, err := svc.Run(context.Background(), org, "req", CSVTypeSubscriptions, csv)
	require.NoError(t, err)
	require.Equal(t, 2, result.Inserted)
	require.True(t, result.Updated)
	require.Nil(t, result.Skipped)

	// Rows 0 and 2 land on customer 0, rows 1 and 3 on customer 1.
	require.True(t, decimal.RequireFromString("125.50").Equal(repo.mrrUpdates[repo.customers[0].ID]))
	require.True(t, decimal.NewFromInt(50).Equal(repo.mrrUpdates[repo.customers[1].ID]))

	// A re-upload overwrites with the same sums instead of doubling them.
	_, err = svc.Run(context.Background(), org, "req", CSVTypeSubscriptions, csv)
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("125.50").Equal(repo.mrrUpdates[repo.customers[0].ID]))
}

func TestImport_AccountsThenSubscriptionsEndToEnd(t *testing.T) {
	repo := newFakeChurnRepository()
	svc := newTestService(repo)
	org := uuid.New()

	accounts := "account_name,plan_tier,seats,churn_flag\nAcme,Pro,1,False\nGlobex,Pro,1,False\nInitech,Pro,1,False"
	result, err := svc.Run(context.Background(), org, "req", CSVTypeAccounts, accounts)
	require.NoError(t, err)
	require.Equal(t, 3, result.Inserted)
	require.Len(t, repo.customers, 3)

	// The fourth row wraps back to the first customer and accumulates into
	// its sum before the one update per customer runs.
	subscriptions := "mrr_amount\n100\n200\n300\n40"
	result, err = svc.Run(context.Background(), org, "req", CSVTypeSubscriptions, subscriptions)
	require.NoError(t, err)
	require.Equal(t, 3, result.Inserted)
	require.True(t, result.Updated)

	require.True(t, decimal.NewFromInt(140).Equal(repo.mrrUpdates[repo.customers[0].ID]))
	require.True(t, decimal.NewFromInt(200).Equal(repo.mrrUpdates[repo.customers[1].ID]))
	require.True(t, decimal.NewFromInt(300).Equal(repo.mrrUpdates[repo.customers[2].ID]))
}

func TestImportSubscriptions_ZeroSumCustomersUntouched(t *testing.T) {
	repo := newFakeChurnRepository()
	repo.seedCustomers("Acme", "Globex")
	svc := newTestService(repo)

	result, err := svc.Run(context.Background(), uuid.New(), "req", CSVTypeSubscriptions, "mrr_amount\n75")
	require.NoError(t, err)
	require.Equal(t, 1, result.Inserted)
	require.Len(t, repo.mrrUpdates, 1)
	require.NotContains(t, repo.mrrUpdates, repo.customers[1].ID)
}

func TestImportSubscriptions_UpdateFailureRecordedPerCustomer(t *testing.T) {
	repo := newFakeChurnRepository()
	repo.seedCustomers("Acme", "Globex")
	repo.updateMRRErrFor[repo.customers[0].ID] = errors.New("row locked")
	svc := newTestService(repo)

	result, err := svc.Run(context.Background(), uuid.New(), "req", CSVTypeSubscriptions, "mrr_amount\n100\n50")
	require.NoError(t, err)
	require.Equal(t, 1, result.Inserted)
	require.Len(t, result.Errors, 1)
	require.Contains(t, result.Errors[0], repo.customers[0].ID.String())
	require.Contains(t, result.Errors[0], "row locked")
}

func TestImportService_WritesExecutionLog(t *testing.T) {
	repo := newFakeChurnRepository()
	svc := newTestService(repo)

	result, err := svc.Run(context.Background(), uuid.New(), "req", CSVTypeAccounts, "account_name\nAcme")
	require.NoError(t, err)
	require.Equal(t, 1, result.Inserted)

	require.Equal(t, []string{"import_accounts"}, repo.startedRunTypes)
	require.Len(t, repo.finished, 1)
	require.Equal(t, runStatusCompleted, repo.finished[0].status)
	require.Equal(t, 1, repo.finished[0].processed)
	require.Nil(t, repo.finished[0].errorMessage)
}

func TestImportService_WritesFailedExecutionLog(t *testing.T) {
	repo := newFakeChurnRepository()
	svc := newTestService(repo)

	_, err := svc.Run(context.Background(), uuid.New(), "req", "bogus", "a\n1")
	require.Error(t, err)

	require.Len(t, repo.finished, 1)
	require.Equal(t, runStatusFailed, repo.finished[0].status)
	require.NotNil(t, repo.finished[0].errorMessage)
	require.Equal(t, "Unknown csv_type: bogus", *repo.finished[0].errorMessage)
}

func TestImportService_PublishesCompletionEvent(t *testing.T) {
	repo := newFakeChurnRepository()
	bus := eventbus.NewEventPublisher(logrus.New())

	var got []events.ImportCompletedV1
	bus.Subscribe(func(evt events.ImportCompletedV1) {
		got = append(got, evt)
	})

	svc := NewImportService(repo, bus, rand.New(rand.NewSource(1)))
	org := uuid.New()
	_, err := svc.Run(context.Background(), org, "req-42", CSVTypeAccounts, "account_name\nAcme\nGlobex")
	require.NoError(t, err)

	require.Len(t, got, 1)
	evt := got[0]
	require.Equal(t, events.EventVersionV1, evt.EventVersion)
	require.Equal(t, "req-42", evt.RequestID)
	require.Equal(t, org, evt.OrganizationID)
	require.Equal(t, CSVTypeAccounts, evt.CSVType)
	require.Equal(t, 2, evt.Inserted)
	require.Equal(t, 0, evt.Skipped)
	require.Zero(t, evt.BatchErrors)
	require.False(t, evt.FinishedAt.Before(evt.StartedAt))
}

func TestImportResult_WireShape(t *testing.T) {
	result := newImportResult()
	result.Inserted = 3

	raw, err := json.Marshal(result)
	require.NoError(t, err)
	require.JSONEq(t, `{"inserted":3,"errors":[]}`, string(raw))

	skipped := 2
	result.Skipped = &skipped
	result.Updated = true
	raw, err = json.Marshal(result)
	require.NoError(t, err)
	require.JSONEq(t, `{"inserted":3,"skipped":2,"updated":true,"errors":[]}`, string(raw))
}

func requireServiceError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, status, svcErr.Status)
	require.Equal(t, message, svcErr.Message)
}

// captureRepo lets a test observe the raw insert payload that the fake
// repository immediately flattens into customer refs.
type captureRepo struct {
	*fakeChurnRepository
	onInsertCustomers func([]CustomerInsert)
}

func (c *captureRepo) InsertCustomers(ctx context.Context, organizationID uuid.UUID, batch []CustomerInsert) (int, error) {
	if c.onInsertCustomers != nil {
		c.onInsertCustomers(batch)
	}
	return c.fakeChurnRepository.InsertCustomers(ctx, organizationID, batch)
}
