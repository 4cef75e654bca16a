package estimator

import (
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/AanchalGupta13/Cost-Estimation/internal/models"
)

// Hours billed per month: 24 hours x 30 days.
const hoursPerMonth = 24 * 30

// Flat USD per GB-month rates by storage medium.
var storageCostPerGB = map[string]float64{
	"SSD":  0.08,
	"HDD":  0.045,
	"NVME": 0.10,
}

// Flat USD per GB-month rates by database kind. Anything else,
// including the sentinel "None", costs nothing.
var databaseCostPerGB = map[string]float64{
	"MySQL":                0.10,
	"PostgreSQL":           0.10,
	"Microsoft SQL Server": 0.20,
	"Oracle Database":      0.30,
	"Redis":                0.15,
}

var (
	storageSizePattern = regexp.MustCompile(`(?i)(\d+)(TB|GB)`)
	storageTypePattern = regexp.MustCompile(`(?i)(SSD|HDD|NVMe)`)
)

// StorageMonthlyCost computes the monthly cost of a storage descriptor
// such as "500GB SSD + 1TB HDD". Components that don't carry both a
// size and a recognized medium are logged and skipped.
func StorageMonthlyCost(storage string) float64 {
	total := 0.0

	for _, component := range strings.Split(storage, "+") {
		component = strings.TrimSpace(component)

		sizeMatch := storageSizePattern.FindStringSubmatch(component)
		typeMatch := storageTypePattern.FindStringSubmatch(component)
		if sizeMatch == nil || typeMatch == nil {
			if component != "" {
				log.Printf("Skipping invalid storage entry: %q", component)
			}
			continue
		}

		sizeGB := toGigabytes(sizeMatch[1], sizeMatch[2])
		if rate, ok := storageCostPerGB[strings.ToUpper(typeMatch[1])]; ok {
			total += float64(sizeGB) * rate
		}
	}

	return round2(total)
}

// DatabaseMonthlyCost computes the monthly cost of the database running
// on a server. The size comes from the first size match anywhere in the
// storage descriptor, even when the descriptor has several components —
// this mirrors the storage sheet's convention that the database lives
// on the first volume.
func DatabaseMonthlyCost(database, storage string) float64 {
	rate, ok := databaseCostPerGB[database]
	if !ok {
		return 0.0
	}

	sizeMatch := storageSizePattern.FindStringSubmatch(storage)
	if sizeMatch == nil {
		return 0.0
	}

	sizeGB := toGigabytes(sizeMatch[1], sizeMatch[2])
	return round2(float64(sizeGB) * rate)
}

// Price combines a matched instance with its hourly quote into a full
// monthly cost breakdown. A nil hourly price marks compute cost as
// unavailable ("N/A" source, cost 0) instead of pricing it at zero.
func Price(matched models.MatchedInstance, hourly *float64, source string) models.PricedInstance {
	priced := models.PricedInstance{
		MatchedInstance: matched,
		HourlyPrice:     hourly,
		PricingSource:   source,
	}

	if hourly != nil {
		priced.MonthlyCost = round2(*hourly * hoursPerMonth)
	} else {
		priced.PricingSource = "N/A"
	}

	priced.MonthlyStorageCost = StorageMonthlyCost(matched.Storage)
	priced.MonthlyDatabaseCost = DatabaseMonthlyCost(matched.Database, matched.Storage)
	priced.TotalPricing = round2(priced.MonthlyCost + priced.MonthlyStorageCost + priced.MonthlyDatabaseCost)

	return priced
}

// toGigabytes converts a matched size and unit to whole gigabytes (1 TB = 1024 GB).
func toGigabytes(size, unit string) int {
	v, _ := strconv.Atoi(size)
	if strings.EqualFold(unit, "TB") {
		return v * 1024
	}
	return v
}

// round2 rounds to two decimal places, the precision of every cost figure.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
