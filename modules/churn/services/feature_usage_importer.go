package services

import (
	"context"

	"github.com/google/uuid"
)

type featureAggregate struct {
	subscriptionID string
	totalUsage     int
	features       map[string]struct{}
	errorCount     int
}

// importFeatureUsage rolls usage rows up per subscription_id and emits
// risk drivers: a Feature Adoption driver per aggregate and an Error Rate
// driver when errors were recorded. At most 3 aggregates per customer are
// consumed; assignment is positional-cyclic.
func (s *ImportService) importFeatureUsage(ctx context.Context, organizationID uuid.UUID, rows []Row) (*ImportResult, error) {
	customers, err := s.requireCustomers(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	order := make([]string, 0)
	grouped := make(map[string]*featureAggregate)
	for _, row := range rows {
		subID := row["subscription_id"]
		agg, ok := grouped[subID]
		if !ok {
			agg = &featureAggregate{subscriptionID: subID, features: make(map[string]struct{})}
			grouped[subID] = agg
			order = append(order, subID)
		}
		agg.totalUsage += parseIntDefault(row["usage_count"], 0)
		agg.features[row["feature_name"]] = struct{}{}
		agg.errorCount += parseIntDefault(row["error_count"], 0)
	}

	limit := len(order)
	if maxAggregates := len(customers) * 3; limit > maxAggregates {
		limit = maxAggregates
	}

	toInsert := make([]RiskDriverInsert, 0, limit)
	for i := 0; i < limit; i++ {
		agg := grouped[order[i]]
		customerID := customers[i%len(customers)].ID

		featureCount := len(agg.features)
		direction, impact := "down", "negative"
		if featureCount > 5 {
			direction, impact = "up", "positive"
		}
		previous := featureCount - s.rng.Intn(3)
		if previous < 1 {
			previous = 1
		}
		toInsert = append(toInsert, RiskDriverInsert{
			CustomerID:    customerID,
			Name:          "Feature Adoption",
			Category:      "product",
			Direction:     direction,
			Impact:        impact,
			Value:         float64(featureCount),
			PreviousValue: float64(previous),
		})

		if agg.errorCount > 0 {
			previousErrors := agg.errorCount - 2
			if previousErrors < 0 {
				previousErrors = 0
			}
			toInsert = append(toInsert, RiskDriverInsert{
				CustomerID:    customerID,
				Name:          "Error Rate",
				Category:      "product",
				Direction:     "up",
				Impact:        "negative",
				Value:         float64(agg.errorCount),
				PreviousValue: float64(previousErrors),
			})
		}
	}

	result := newImportResult()
	inserted, errs := writeBatches(ctx, toInsert, batchSize, s.repo.InsertRiskDrivers)
	result.Inserted = inserted
	result.Errors = append(result.Errors, errs...)
	return result, nil
}
