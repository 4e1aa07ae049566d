package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/churnai/churnai/modules/churn/domain/risk"
)

type churnDriversSnapshot struct {
	ReasonCode     string  `json:"reason_code"`
	RefundAmount   float64 `json:"refund_amount"`
	Feedback       *string `json:"feedback"`
	IsReactivation bool    `json:"is_reactivation"`
}

// importChurnEvents appends one risk_scores row per CSV row with the
// original event fields preserved verbatim in the drivers snapshot.
// There is no dedup key: re-uploading the same file appends duplicates.
func (s *ImportService) importChurnEvents(ctx context.Context, organizationID uuid.UUID, rows []Row) (*ImportResult, error) {
	customers, err := s.requireCustomers(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	toInsert := make([]RiskScoreInsert, 0, len(rows))
	for i, row := range rows {
		customer := customers[i%len(customers)]
		score := 60 + s.rng.Float64()*35

		refund, _ := parseFloat(row["refund_amount_usd"])
		var feedback *string
		if v := row["feedback_text"]; v != "" {
			feedback = &v
		}
		snapshot, err := json.Marshal(churnDriversSnapshot{
			ReasonCode:     row["reason_code"],
			RefundAmount:   refund,
			Feedback:       feedback,
			IsReactivation: parseCSVBool(row["is_reactivation"]),
		})
		if err != nil {
			return nil, err
		}

		toInsert = append(toInsert, RiskScoreInsert{
			CustomerID:      customer.ID,
			Score:           roundHalfUp(score),
			Zone:            risk.ZoneForScore(score),
			Horizon:         "30d",
			DriversSnapshot: snapshot,
		})
	}

	result := newImportResult()
	inserted, errs := writeBatches(ctx, toInsert, batchSize, s.repo.InsertRiskScores)
	result.Inserted = inserted
	result.Errors = append(result.Errors, errs...)
	return result, nil
}
