package formatter

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/AanchalGupta13/Cost-Estimation/internal/models"
	"github.com/AanchalGupta13/Cost-Estimation/pkg/estimator"
)

// PrintReportTable prints a formatted table of priced instances
func PrintReportTable(records []models.PricedInstance, scanTime time.Time, scanDuration time.Duration) {
	if len(records) == 0 {
		fmt.Println("No servers matched an instance type.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

	// Print run timestamp first
	fmt.Fprintf(w, "Run time: %s (completed in %.2f seconds)\n",
		scanTime.Format("2006-01-02 15:04:05"),
		scanDuration.Seconds())

	// Print header
	fmt.Fprintln(w, "SERVER\tIP ADDRESS\tTYPE\tVCPU\tMEM(GB)\tSTORAGE\tDATABASE\tCOMPUTE/MO\tSTORAGE/MO\tDB/MO\tTOTAL/MO\tPRICING")

	// Print each record
	for _, r := range records {
		computeCost := "N/A"
		if r.HourlyPrice != nil {
			computeCost = money(r.MonthlyCost)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			serverName(r.ServerName),
			r.IPAddress,
			r.InstanceType,
			r.VCPUs,
			r.MemoryGB,
			r.Storage,
			r.Database,
			computeCost,
			money(r.MonthlyStorageCost),
			money(r.MonthlyDatabaseCost),
			money(r.TotalPricing),
			GetPricingMarker(r.PricingSource),
		)
	}

	// Print totals without separator
	printTotals(w, records)

	w.Flush()
}

// serverName returns a formatted server name or <unnamed> if empty
func serverName(name string) string {
	if name == "" {
		return "<unnamed>"
	}
	return name
}

// money formats a cost with thousands separators and two decimals
func money(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// printTotals prints the summary information at the bottom of the table
func printTotals(w *tabwriter.Writer, records []models.PricedInstance) {
	var totalCompute, totalStorage, totalDatabase, totalAll float64

	for _, r := range records {
		totalCompute += r.MonthlyCost
		totalStorage += r.MonthlyStorageCost
		totalDatabase += r.MonthlyDatabaseCost
		totalAll += r.TotalPricing
	}

	fmt.Fprintf(w, "Total:\t\t\t\t\t\t\t%s\t%s\t%s\t%s\t%d servers\n",
		money(totalCompute),
		money(totalStorage),
		money(totalDatabase),
		money(totalAll),
		len(records),
	)
}

// PrintRunSummary displays what happened to each inventory record
func PrintRunSummary(stats estimator.Stats) {
	fmt.Println("\n## Estimation Run Summary")

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

	fmt.Fprintln(w, "STAGE\tCOUNT")
	fmt.Fprintf(w, "Inventory rows\t%d\n", stats.Requirements)
	fmt.Fprintf(w, "Parsed\t%d\n", stats.Parsed)
	fmt.Fprintf(w, "Dropped (unparseable CPU/RAM)\t%d\n", stats.Dropped)
	fmt.Fprintf(w, "Matched\t%d\n", stats.Matched)
	fmt.Fprintf(w, "Unmatched (no sufficient type)\t%d\n", stats.Unmatched)
	fmt.Fprintf(w, "Priced\t%d\n", stats.Priced)
	fmt.Fprintf(w, "Price unavailable\t%d\n", stats.PriceUnavailable)

	w.Flush()
}

// GetPricingMarker returns a suitable marker for the pricing source
func GetPricingMarker(source string) string {
	switch source {
	case "API":
		return "API"
	case "Cache":
		return "CACHE"
	case "N/A":
		return "N/A"
	default:
		return "-"
	}
}
