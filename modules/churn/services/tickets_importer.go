package services

import (
	"context"

	"github.com/google/uuid"
)

type ticketAggregate struct {
	accountID   string
	ticketsOpen int
	nps         *int
}

// importSupportTickets aggregates tickets per CSV account_id and appends
// one customer_metrics row per aggregate. The accounts CSV is the only
// source that ties account_id to a customer and that mapping is not
// persisted, so aggregates are assigned to customers by cyclic index over
// the existing customer list, capped at the customer count.
func (s *ImportService) importSupportTickets(ctx context.Context, organizationID uuid.UUID, rows []Row) (*ImportResult, error) {
	customers, err := s.requireCustomers(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	// Group in first-seen order; assignment depends on it.
	order := make([]string, 0)
	grouped := make(map[string][]Row)
	for _, row := range rows {
		accountID := row["account_id"]
		if _, ok := grouped[accountID]; !ok {
			order = append(order, accountID)
		}
		grouped[accountID] = append(grouped[accountID], row)
	}

	aggregates := make([]ticketAggregate, 0, len(order))
	for _, accountID := range order {
		tickets := grouped[accountID]

		open := 0
		var satSum float64
		satCount := 0
		for _, t := range tickets {
			if t["closed_at"] == "" {
				open++
			}
			if score, ok := parseFloat(t["satisfaction_score"]); ok {
				satSum += score
				satCount++
			}
		}

		agg := ticketAggregate{accountID: accountID, ticketsOpen: open}
		if satCount > 0 {
			// Rescale the 1-5 satisfaction average to an NPS-like -100..100.
			nps := roundHalfUp((satSum/float64(satCount) - 3) * 50)
			agg.nps = &nps
		}
		aggregates = append(aggregates, agg)
	}

	toInsert := make([]CustomerMetricInsert, 0, len(aggregates))
	for i := 0; i < len(aggregates) && i < len(customers); i++ {
		toInsert = append(toInsert, CustomerMetricInsert{
			CustomerID:    customers[i%len(customers)].ID,
			TicketsOpen:   aggregates[i].ticketsOpen,
			NPS:           aggregates[i].nps,
			PaymentStatus: "current",
			LoginCount30d: s.rng.Intn(30),
			FeaturesUsed:  s.rng.Intn(15),
			TotalFeatures: 20,
		})
	}

	result := newImportResult()
	inserted, errs := writeBatches(ctx, toInsert, batchSize, s.repo.InsertCustomerMetrics)
	result.Inserted = inserted
	result.Errors = append(result.Errors, errs...)
	return result, nil
}
