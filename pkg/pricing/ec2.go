package pricing

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/pricing/types"

	"github.com/AanchalGupta13/Cost-Estimation/pkg/utils"
)

// HourlyPrice returns the on-demand hourly price for an EC2 instance
// type in the client's region, or nil when no quote is obtainable.
// nil is distinct from a zero price: there are no fallback prices. The
// second return value names the pricing source ("API", "Cache", "N/A").
func (c *Client) HourlyPrice(ctx context.Context, instanceType string) (*float64, string) {
	cacheKey := fmt.Sprintf("%s:%s", c.region, instanceType)

	c.cacheLock.RLock()
	if price, exists := c.cache[cacheKey]; exists {
		c.cacheLock.RUnlock()
		c.updateStats("cache")
		return &price, string(PricingSourceCache)
	}
	c.cacheLock.RUnlock()

	price, err := c.getEC2PriceFromAPI(ctx, instanceType)
	if err != nil {
		log.Printf("Error getting price from API: %v for %s in %s.", err, instanceType, c.region)
		c.updateStats("failure")
		return nil, string(PricingSourceNA)
	}

	c.updateStats("success")

	c.cacheLock.Lock()
	c.cache[cacheKey] = price
	c.cacheLock.Unlock()

	return &price, string(PricingSourceAPI)
}

// getEC2PriceFromAPI retrieves EC2 on-demand pricing from the AWS Pricing API
func (c *Client) getEC2PriceFromAPI(ctx context.Context, instanceType string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Filters for Linux on-demand instances with shared tenancy
	filters := []types.Filter{
		{
			Type:  types.FilterTypeTermMatch,
			Field: aws.String("instanceType"),
			Value: aws.String(instanceType),
		},
		{
			Type:  types.FilterTypeTermMatch,
			Field: aws.String("location"),
			Value: aws.String(utils.GetRegionDescriptiveName(c.region)),
		},
		{
			Type:  types.FilterTypeTermMatch,
			Field: aws.String("operatingSystem"),
			Value: aws.String("Linux"),
		},
		{
			Type:  types.FilterTypeTermMatch,
			Field: aws.String("tenancy"),
			Value: aws.String("Shared"),
		},
		{
			Type:  types.FilterTypeTermMatch,
			Field: aws.String("preInstalledSw"),
			Value: aws.String("NA"),
		},
		{
			Type:  types.FilterTypeTermMatch,
			Field: aws.String("capacitystatus"),
			Value: aws.String("Used"),
		},
	}

	priceJSON, err := c.getPriceFromAPI(ctx, "AmazonEC2", filters, instanceType)
	if err != nil {
		return 0, err
	}

	return ExtractOnDemandPrice(priceJSON)
}
