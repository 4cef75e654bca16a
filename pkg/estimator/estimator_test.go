package estimator

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/AanchalGupta13/Cost-Estimation/internal/models"
)

type fakeCatalog struct {
	types []models.InstanceType
	err   error
}

func (f fakeCatalog) InstanceTypes(_ context.Context) ([]models.InstanceType, error) {
	return f.types, f.err
}

type fakeRequirements struct {
	rows []models.RawRequirement
	err  error
}

func (f fakeRequirements) Requirements(_ context.Context) ([]models.RawRequirement, error) {
	return f.rows, f.err
}

type fakePrices struct {
	prices map[string]float64
}

func (f fakePrices) HourlyPrice(_ context.Context, instanceType string) (*float64, string) {
	if p, ok := f.prices[instanceType]; ok {
		return &p, "API"
	}
	return nil, "N/A"
}

type captureSink struct {
	records []models.PricedInstance
	err     error
}

func (s *captureSink) Emit(_ context.Context, records []models.PricedInstance) error {
	s.records = records
	return s.err
}

func testCatalog() []models.InstanceType {
	return []models.InstanceType{
		{Name: "t2.small", VCPUs: 1, MemoryGB: 2},
		{Name: "t3.medium", VCPUs: 2, MemoryGB: 4},
		{Name: "m5.large", VCPUs: 2, MemoryGB: 8},
	}
}

func TestRunEndToEnd(t *testing.T) {
	rows := []models.RawRequirement{
		{ServerName: "web-01", IPAddress: "10.0.0.4", CPU: "2 Cores", RAM: "4GB", Storage: "100GB SSD", Database: "None"},
	}
	sink := &captureSink{}

	est := New(
		fakeCatalog{types: testCatalog()},
		fakeRequirements{rows: rows},
		fakePrices{prices: map[string]float64{"t3.medium": 0.05}},
		sink,
	)

	result, err := est.Run(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(result.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(result.Records))
	}

	got := result.Records[0]
	if got.InstanceType != "t3.medium" {
		t.Errorf("expected t3.medium, got %s", got.InstanceType)
	}
	if got.VCPUs != 2 || got.MemoryGB != 4 {
		t.Errorf("expected matched capacity 2 vCPU / 4 GB, got %d/%d", got.VCPUs, got.MemoryGB)
	}
	if !approxEqual(got.MonthlyCost, 36.00) {
		t.Errorf("expected compute cost 36.00, got %v", got.MonthlyCost)
	}
	if !approxEqual(got.MonthlyStorageCost, 8.00) {
		t.Errorf("expected storage cost 8.00, got %v", got.MonthlyStorageCost)
	}
	if !approxEqual(got.MonthlyDatabaseCost, 0.00) {
		t.Errorf("expected database cost 0.00, got %v", got.MonthlyDatabaseCost)
	}
	if !approxEqual(got.TotalPricing, 44.00) {
		t.Errorf("expected total 44.00, got %v", got.TotalPricing)
	}

	if len(sink.records) != 1 {
		t.Fatalf("expected the sink to receive 1 record, got %d", len(sink.records))
	}
}

func TestRunCountsLossyStages(t *testing.T) {
	rows := []models.RawRequirement{
		{ServerName: "ok", CPU: "2 Cores", RAM: "4GB", Database: "None"},
		{ServerName: "unparseable", CPU: "two cores", RAM: "4GB"},
		{ServerName: "too-big", CPU: "64 Cores", RAM: "4GB"},
		{ServerName: "unpriced", CPU: "2 Cores", RAM: "8GB", Database: "None"},
	}
	sink := &captureSink{}

	est := New(
		fakeCatalog{types: testCatalog()},
		fakeRequirements{rows: rows},
		fakePrices{prices: map[string]float64{"t3.medium": 0.05}},
		sink,
	)

	result, err := est.Run(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := Stats{
		Requirements:     4,
		Parsed:           3,
		Dropped:          1,
		Matched:          2,
		Unmatched:        1,
		Priced:           1,
		PriceUnavailable: 1,
	}
	if result.Stats != want {
		t.Fatalf("unexpected stats: got %+v, want %+v", result.Stats, want)
	}

	// Unpriced records still make it into the report with an explicit
	// unavailable marker.
	if len(result.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(result.Records))
	}
	last := result.Records[1]
	if last.ServerName != "unpriced" || last.HourlyPrice != nil || last.PricingSource != "N/A" {
		t.Fatalf("expected unpriced record with N/A source, got %+v", last)
	}
}

func TestRunFailsOnCatalogError(t *testing.T) {
	est := New(
		fakeCatalog{err: errors.New("throttled")},
		fakeRequirements{rows: []models.RawRequirement{{CPU: "2 Cores", RAM: "4GB"}}},
		fakePrices{},
		&captureSink{},
	)

	if _, err := est.Run(context.Background()); err == nil {
		t.Fatal("expected catalog fetch failure to abort the run")
	}
}

func TestRunFailsOnRequirementsError(t *testing.T) {
	est := New(
		fakeCatalog{types: testCatalog()},
		fakeRequirements{err: errors.New("access denied")},
		fakePrices{},
		&captureSink{},
	)

	if _, err := est.Run(context.Background()); err == nil {
		t.Fatal("expected requirements fetch failure to abort the run")
	}
}

func TestRunFailsOnEmptyRequirements(t *testing.T) {
	est := New(
		fakeCatalog{types: testCatalog()},
		fakeRequirements{},
		fakePrices{},
		&captureSink{},
	)

	// An empty inventory means the upstream fetch failed, not that
	// there are zero servers.
	if _, err := est.Run(context.Background()); err == nil {
		t.Fatal("expected empty requirement list to abort the run")
	}
}

func TestRunFailsOnEmitError(t *testing.T) {
	rows := []models.RawRequirement{
		{ServerName: "web-01", CPU: "2 Cores", RAM: "4GB", Database: "None"},
	}

	est := New(
		fakeCatalog{types: testCatalog()},
		fakeRequirements{rows: rows},
		fakePrices{},
		&captureSink{err: errors.New("upload failed")},
	)

	if _, err := est.Run(context.Background()); err == nil {
		t.Fatal("expected report emission failure to abort the run")
	}
}

func TestRunIsIdempotent(t *testing.T) {
	rows := []models.RawRequirement{
		{ServerName: "web-01", CPU: "2 Cores", RAM: "4GB", Storage: "100GB SSD + 1TB HDD", Database: "MySQL"},
		{ServerName: "db-01", CPU: "2 Cores", RAM: "8GB", Storage: "2TB NVMe", Database: "Oracle Database"},
	}
	prices := fakePrices{prices: map[string]float64{"t3.medium": 0.05, "m5.large": 0.10}}

	run := func() *Result {
		est := New(fakeCatalog{types: testCatalog()}, fakeRequirements{rows: rows}, prices, &captureSink{})
		result, err := est.Run(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		return result
	}

	first := run()
	second := run()

	if !reflect.DeepEqual(first.Records, second.Records) {
		t.Fatalf("expected identical records across runs:\nfirst:  %+v\nsecond: %+v", first.Records, second.Records)
	}
	if first.Stats != second.Stats {
		t.Fatalf("expected identical stats across runs: %+v vs %+v", first.Stats, second.Stats)
	}
}
