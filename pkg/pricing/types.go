package pricing

// PricingSource represents the source of a price quote
type PricingSource string

const (
	// PricingSourceAPI indicates the quote came from the AWS Pricing API
	PricingSourceAPI PricingSource = "API"

	// PricingSourceCache indicates the quote came from the in-memory cache
	PricingSourceCache PricingSource = "Cache"

	// PricingSourceNA indicates no quote is available
	PricingSourceNA PricingSource = "N/A"
)
