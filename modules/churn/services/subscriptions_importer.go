package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// importSubscriptions sums mrr_amount per cyclic customer index across the
// whole file and then overwrites each affected customer's stored MRR with
// its sum. Overwrite, not add: a re-upload converges to the same values.
func (s *ImportService) importSubscriptions(ctx context.Context, organizationID uuid.UUID, rows []Row) (*ImportResult, error) {
	customers, err := s.requireCustomers(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	sums := make([]decimal.Decimal, len(customers))
	for i, row := range rows {
		amount := decimal.Zero
		if v, parseErr := decimal.NewFromString(row["mrr_amount"]); parseErr == nil {
			amount = v
		}
		idx := i % len(customers)
		sums[idx] = sums[idx].Add(amount)
	}

	result := newImportResult()
	for idx, sum := range sums {
		if !sum.IsPositive() {
			continue
		}
		if err := s.repo.UpdateCustomerMRR(ctx, organizationID, customers[idx].ID, sum); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("customer %s: %v", customers[idx].ID, err))
			continue
		}
		result.Inserted++
	}

	result.Updated = true
	return result, nil
}
