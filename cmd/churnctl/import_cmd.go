package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	churnpersistence "github.com/churnai/churnai/modules/churn/infrastructure/persistence"
	churnservices "github.com/churnai/churnai/modules/churn/services"
	"github.com/churnai/churnai/pkg/composables"
	"github.com/churnai/churnai/pkg/configuration"
	"github.com/churnai/churnai/pkg/eventbus"
)

type importOptions struct {
	organizationID uuid.UUID
	csvType        string
	file           string
	apply          bool
	seed           int64
}

func newImportCmd() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a churn CSV file for an organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.csvType, "type", "", "CSV type: accounts, subscriptions, support_tickets, feature_usage, churn_events (required)")
	cmd.Flags().StringVar(&opts.file, "file", "", "Path to the CSV file (required)")
	cmd.Flags().BoolVar(&opts.apply, "apply", false, "Apply changes to DB (default is dry-run)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed for the scoring randomness (0 uses the current time)")

	var org string
	cmd.Flags().StringVar(&org, "org", "", "Organization UUID (required)")

	_ = cmd.MarkFlagRequired("org")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("file")

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(strings.TrimSpace(org))
		if err != nil {
			return withCode(exitUsage, fmt.Errorf("invalid --org: %w", err))
		}
		opts.organizationID = id
		return nil
	}

	return cmd
}

func runImport(ctx context.Context, opts importOptions) error {
	raw, err := os.ReadFile(opts.file)
	if err != nil {
		return withCode(exitUsage, fmt.Errorf("read %s: %w", opts.file, err))
	}

	rows := churnservices.ParseCSV(string(raw))
	if !opts.apply {
		fmt.Printf("dry-run: %s rows=%d org=%s\n", opts.csvType, len(rows), opts.organizationID)
		return nil
	}

	conf := configuration.Use()
	logger := conf.Logger()

	pool, err := connectDB(ctx, conf.Database.Opts)
	if err != nil {
		return withCode(exitDB, err)
	}
	defer pool.Close()

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	service := churnservices.NewImportService(
		churnpersistence.NewChurnRepository(),
		eventbus.NewEventPublisher(logger),
		rng,
	)

	ctx = composables.WithPool(ctx, pool)
	ctx = composables.WithLogger(ctx, logger.WithField("component", "churnctl"))

	requestID := uuid.New().String()
	result, err := service.Run(ctx, opts.organizationID, requestID, opts.csvType, string(raw))
	if err != nil {
		return withCode(exitValidation, err)
	}

	fmt.Printf("applied: %s inserted=%d", opts.csvType, result.Inserted)
	if result.Skipped != nil {
		fmt.Printf(" skipped=%d", *result.Skipped)
	}
	fmt.Printf(" errors=%d\n", len(result.Errors))
	for _, msg := range result.Errors {
		fmt.Println("  " + msg)
	}
	return nil
}

func connectDB(ctx context.Context, opts string) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("db connect failed: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db connect failed: %w", err)
	}
	return pool, nil
}
