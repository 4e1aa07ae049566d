package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/churnai/churnai/modules/churn/domain/risk"
)

// Plan-tier MRR multipliers in USD per seat.
var tierMultipliers = map[string]int64{
	"Enterprise": 199,
	"Pro":        49,
}

const defaultTierMultiplier int64 = 19

func tierMultiplier(planTier string) int64 {
	if m, ok := tierMultipliers[planTier]; ok {
		return m
	}
	return defaultTierMultiplier
}

// importAccounts creates one customer per unseen account_name. Rows whose
// name already exists for the organization are skipped rather than merged,
// which makes re-uploads of the same file idempotent. Scores are the
// documented placeholder heuristic, not a model: flagged accounts land in
// [70,95), the rest in [0,50).
func (s *ImportService) importAccounts(ctx context.Context, organizationID uuid.UUID, rows []Row) (*ImportResult, error) {
	existing, err := s.repo.ListCustomers(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	existingNames := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		existingNames[c.Name] = struct{}{}
	}

	toInsert := make([]CustomerInsert, 0, len(rows))
	for _, row := range rows {
		if _, ok := existingNames[row["account_name"]]; ok {
			continue
		}

		seats := parseIntDefault(row["seats"], 1)
		mrr := decimal.NewFromInt(int64(seats) * tierMultiplier(row["plan_tier"]))

		var score float64
		if parseCSVBool(row["churn_flag"]) {
			score = 70 + s.rng.Float64()*25
		} else {
			score = s.rng.Float64() * 50
		}

		toInsert = append(toInsert, CustomerInsert{
			Name:          row["account_name"],
			MRR:           mrr,
			RiskScore:     roundHalfUp(score),
			RiskZone:      risk.ZoneForScore(score),
			RiskVariation: roundHalfUp(s.rng.Float64()*20 - 10),
		})
	}

	result := newImportResult()
	inserted, errs := writeBatches(ctx, toInsert, batchSize, func(ctx context.Context, chunk []CustomerInsert) (int, error) {
		return s.repo.InsertCustomers(ctx, organizationID, chunk)
	})
	result.Inserted = inserted
	result.Errors = append(result.Errors, errs...)

	skipped := len(rows) - inserted
	result.Skipped = &skipped
	return result, nil
}
