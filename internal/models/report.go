package models

// MatchedInstance pairs a normalized requirement with the instance type
// selected for it.
type MatchedInstance struct {
	ServerName   string
	IPAddress    string
	InstanceType string
	VCPUs        int // capacity of the selected type, not the requested cores
	MemoryGB     int
	Storage      string
	Database     string
}

// PricedInstance is a MatchedInstance with its monthly cost breakdown.
type PricedInstance struct {
	MatchedInstance

	HourlyPrice         *float64 // nil when no quote was obtainable
	MonthlyCost         float64  // compute; 0 when HourlyPrice is nil
	MonthlyStorageCost  float64
	MonthlyDatabaseCost float64
	TotalPricing        float64
	PricingSource       string // "API", "Cache", or "N/A"
}
