package estimator

import (
	"context"
	"fmt"

	"github.com/AanchalGupta13/Cost-Estimation/internal/models"
)

// CatalogSource supplies the instance types a requirement can be
// matched against. Implementations must return memory in whole
// gigabytes and should return a stably ordered list so repeated runs
// produce identical reports.
type CatalogSource interface {
	InstanceTypes(ctx context.Context) ([]models.InstanceType, error)
}

// RequirementSource supplies the raw server inventory.
type RequirementSource interface {
	Requirements(ctx context.Context) ([]models.RawRequirement, error)
}

// PriceSource quotes the hourly on-demand price for an instance type.
// A nil price means no quote was obtainable, which is distinct from a
// price of zero. The returned string names the pricing source
// ("API", "Cache", or "N/A").
type PriceSource interface {
	HourlyPrice(ctx context.Context, instanceType string) (*float64, string)
}

// ReportSink receives the finished report. A sink error fails the run.
type ReportSink interface {
	Emit(ctx context.Context, records []models.PricedInstance) error
}

// Stats counts what happened to each inventory record during a run.
// Dropped and unmatched records are not errors, but the counts are
// surfaced so losses stay visible.
type Stats struct {
	Requirements     int // rows fetched from the inventory
	Parsed           int
	Dropped          int // CPU/RAM text did not parse
	Matched          int
	Unmatched        int // no instance type large enough
	Priced           int
	PriceUnavailable int // matched but no hourly quote
}

// Result is the outcome of one estimation run.
type Result struct {
	Records []models.PricedInstance
	Stats   Stats
}

// Estimator wires the pipeline's collaborators together. Construct one
// per invocation; it holds no state between runs.
type Estimator struct {
	catalog      CatalogSource
	requirements RequirementSource
	prices       PriceSource
	report       ReportSink
}

// New returns an Estimator over the given collaborators.
func New(catalog CatalogSource, requirements RequirementSource, prices PriceSource, report ReportSink) *Estimator {
	return &Estimator{
		catalog:      catalog,
		requirements: requirements,
		prices:       prices,
		report:       report,
	}
}

// Run executes the full pipeline: fetch catalog and inventory, match
// every parseable requirement to the smallest sufficient instance
// type, price each match, and emit the report. Collaborator failures
// (including an empty inventory, which signals a failed upstream
// fetch) abort the run; unparseable or unmatched records are counted
// and skipped.
func (e *Estimator) Run(ctx context.Context) (*Result, error) {
	catalog, err := e.catalog.InstanceTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching instance type catalog: %w", err)
	}

	raws, err := e.requirements.Requirements(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching requirements: %w", err)
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("no requirements fetched: empty inventory")
	}

	result := &Result{Stats: Stats{Requirements: len(raws)}}

	for _, raw := range raws {
		req, ok := ParseRequirement(raw)
		if !ok {
			result.Stats.Dropped++
			continue
		}
		result.Stats.Parsed++

		best, ok := BestMatch(req, catalog)
		if !ok {
			result.Stats.Unmatched++
			continue
		}
		result.Stats.Matched++

		matched := models.MatchedInstance{
			ServerName:   req.ServerName,
			IPAddress:    req.IPAddress,
			InstanceType: best.Name,
			VCPUs:        best.VCPUs,
			MemoryGB:     best.MemoryGB,
			Storage:      req.Storage,
			Database:     req.Database,
		}

		hourly, source := e.prices.HourlyPrice(ctx, best.Name)
		if hourly == nil {
			result.Stats.PriceUnavailable++
		} else {
			result.Stats.Priced++
		}

		result.Records = append(result.Records, Price(matched, hourly, source))
	}

	if err := e.report.Emit(ctx, result.Records); err != nil {
		return nil, fmt.Errorf("error emitting report: %w", err)
	}

	return result, nil
}
