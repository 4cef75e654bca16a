package aws

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/xuri/excelize/v2"

	"github.com/AanchalGupta13/Cost-Estimation/internal/models"
)

// reportColumns is the header of the emitted CSV report.
var reportColumns = []string{
	"Server Name", "IP Address", "CPU", "RAM", "InstanceType",
	"Storage", "Database", "Monthly Cost", "Monthly Storage Cost",
	"Monthly Database Cost", "Total Pricing",
}

// priceNotAvailable is written to the Monthly Cost column when no
// hourly quote was obtainable for an instance type.
const priceNotAvailable = "Price Not Available"

// S3Client reads the server inventory workbook from S3 and writes the
// finished report back as CSV.
type S3Client struct {
	client       *s3.Client
	bucket       string
	inventoryKey string
	reportKey    string
}

// NewS3Client creates a new S3Client for one bucket
func NewS3Client(region, bucket, inventoryKey, reportKey string) (*S3Client, error) {
	// Use LoadDefaultConfig with explicit options
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
		config.WithRetryMode(aws.RetryModeStandard),
		config.WithEC2IMDSClientEnableState(imds.ClientEnabled),
	)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true // Use path-style addressing which is more reliable
	})

	return &S3Client{
		client:       client,
		bucket:       bucket,
		inventoryKey: inventoryKey,
		reportKey:    reportKey,
	}, nil
}

// Requirements fetches the inventory workbook and returns one raw
// requirement per data row of the first sheet.
func (c *S3Client) Requirements(ctx context.Context) ([]models.RawRequirement, error) {
	obj, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(c.inventoryKey),
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching s3://%s/%s: %w", c.bucket, c.inventoryKey, err)
	}
	defer obj.Body.Close()

	workbook, err := excelize.OpenReader(obj.Body)
	if err != nil {
		return nil, fmt.Errorf("error opening inventory workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("inventory workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheets[0], err)
	}

	return requirementsFromRows(rows)
}

// requirementsFromRows maps sheet rows to raw requirements using the
// header row for column positions. Rows shorter than the header are
// padded with empty cells; fully empty rows are skipped.
func requirementsFromRows(rows [][]string) ([]models.RawRequirement, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("inventory sheet is empty")
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.TrimSpace(name)] = i
	}

	for _, required := range []string{"Server Name", "IP Address", "CPU", "RAM", "Storage", "Database"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("inventory sheet is missing column %q", required)
		}
	}

	cell := func(row []string, name string) string {
		idx := columns[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var requirements []models.RawRequirement
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}

		req := models.RawRequirement{
			ServerName: cell(row, "Server Name"),
			IPAddress:  cell(row, "IP Address"),
			CPU:        cell(row, "CPU"),
			RAM:        cell(row, "RAM"),
			Storage:    cell(row, "Storage"),
			Database:   cell(row, "Database"),
		}
		if req == (models.RawRequirement{}) {
			continue
		}

		requirements = append(requirements, req)
	}

	return requirements, nil
}

// Emit uploads the priced records as a CSV report. An upload failure
// fails the whole run.
func (c *S3Client) Emit(ctx context.Context, records []models.PricedInstance) error {
	body, err := reportCSV(records)
	if err != nil {
		return err
	}

	_, err = c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(c.reportKey),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return fmt.Errorf("error uploading report to s3://%s/%s: %w", c.bucket, c.reportKey, err)
	}

	return nil
}

// reportCSV renders the priced records in the report column order.
func reportCSV(records []models.PricedInstance) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(reportColumns); err != nil {
		return nil, fmt.Errorf("error writing report header: %w", err)
	}

	for _, r := range records {
		monthlyCost := priceNotAvailable
		if r.HourlyPrice != nil {
			monthlyCost = formatMoney(r.MonthlyCost)
		}

		row := []string{
			r.ServerName,
			r.IPAddress,
			strconv.Itoa(r.VCPUs),
			strconv.Itoa(r.MemoryGB),
			r.InstanceType,
			r.Storage,
			r.Database,
			monthlyCost,
			formatMoney(r.MonthlyStorageCost),
			formatMoney(r.MonthlyDatabaseCost),
			formatMoney(r.TotalPricing),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("error writing report row for %s: %w", r.ServerName, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("error flushing report: %w", err)
	}

	return buf.Bytes(), nil
}

// formatMoney renders a cost with the two decimal places every figure carries.
func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
