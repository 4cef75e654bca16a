package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/AanchalGupta13/Cost-Estimation/internal/models"
	"github.com/AanchalGupta13/Cost-Estimation/internal/version"
	"github.com/AanchalGupta13/Cost-Estimation/pkg/aws"
	"github.com/AanchalGupta13/Cost-Estimation/pkg/estimator"
	"github.com/AanchalGupta13/Cost-Estimation/pkg/formatter"
	"github.com/AanchalGupta13/Cost-Estimation/pkg/pricing"
	"github.com/AanchalGupta13/Cost-Estimation/pkg/utils"
)

// Defaults used when neither flags nor environment provide a value.
const (
	DefaultBucket       = "price-inventory"
	DefaultInventoryKey = "physical_servers_inventory1.xlsx"
	DefaultReportKey    = "matched_ec2_db_instances.csv"
)

var (
	region       string
	bucket       string
	inventoryKey string
	reportKey    string
	dryRun       bool
	showVersion  bool
)

// discardSink drops the report instead of uploading it (--dry-run).
type discardSink struct{}

func (discardSink) Emit(_ context.Context, _ []models.PricedInstance) error {
	return nil
}

// envOrDefault returns the environment value for key, or fallback when unset.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "costest",
		Short: "Estimate EC2 hosting cost for an on-prem server inventory",
		Long: `costest matches each server in an inventory spreadsheet to the
smallest EC2 instance type that satisfies its CPU and RAM requirements,
prices compute, storage and database per month, and uploads a CSV
report back to S3.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				info := version.Get()
				fmt.Printf("costest version %s (built: %s, commit: %s, %s)\n",
					info.Version, info.BuildDate, info.GitCommit, info.GoVersion)
				return nil
			}

			if !utils.IsValidRegion(region) {
				return fmt.Errorf("invalid region %q", region)
			}

			return runEstimation(cmd.Context())
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&region, "region", "r", utils.GetDefaultRegion(), "AWS region to price against")
	rootCmd.Flags().StringVarP(&bucket, "bucket", "b", envOrDefault("S3_BUCKET_NAME", DefaultBucket), "S3 bucket holding the inventory and report")
	rootCmd.Flags().StringVarP(&inventoryKey, "key", "k", envOrDefault("S3_FILE_KEY", DefaultInventoryKey), "S3 key of the inventory workbook (.xlsx)")
	rootCmd.Flags().StringVarP(&reportKey, "output", "o", DefaultReportKey, "S3 key for the CSV report")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Skip the report upload, only print the table")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// runEstimation wires the collaborators together and runs the pipeline once.
func runEstimation(ctx context.Context) error {
	catalog, err := aws.NewEC2Client(region)
	if err != nil {
		return fmt.Errorf("error initializing EC2 client: %w", err)
	}

	inventory, err := aws.NewS3Client(region, bucket, inventoryKey, reportKey)
	if err != nil {
		return fmt.Errorf("error initializing S3 client: %w", err)
	}

	prices, err := pricing.NewClient(ctx, region)
	if err != nil {
		return fmt.Errorf("error initializing pricing client: %w", err)
	}

	var sink estimator.ReportSink = inventory
	if dryRun {
		sink = discardSink{}
	}

	fmt.Printf("Starting cost estimation for s3://%s/%s ...\n", bucket, inventoryKey)
	runStartTime := time.Now()

	s := spinner.New(spinner.CharSets[9], 200*time.Millisecond)
	s.Suffix = " Matching servers to instance types ..."
	s.Start()

	result, err := estimator.New(catalog, inventory, prices, sink).Run(ctx)

	runDuration := time.Since(runStartTime)

	if err != nil {
		s.Stop()
		return err
	}

	s.FinalMSG = fmt.Sprintf("✓ [%d servers priced] Estimation completed in %.2f seconds\n",
		len(result.Records), runDuration.Seconds())
	s.Stop()

	formatter.PrintReportTable(result.Records, runStartTime, runDuration)
	formatter.PrintRunSummary(result.Stats)
	formatter.PrintPricingAPIStats(prices.APIStats())

	if !dryRun {
		fmt.Printf("\nReport uploaded to s3://%s/%s\n", bucket, reportKey)
	}

	return nil
}
