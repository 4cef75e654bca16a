package pricing

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/pricing"
	"github.com/aws/aws-sdk-go-v2/service/pricing/types"
)

// Client quotes on-demand prices for one target region, caching quotes
// per instance type. Construct one per invocation and pass it into the
// pipeline; it is safe for concurrent use.
type Client struct {
	api    *pricing.Client
	region string // region whose prices are quoted, not where the API lives

	cache     map[string]float64 // "region:instanceType" -> hourly USD
	cacheLock sync.RWMutex

	stats     map[string]map[string]int // region -> {success, failure, cache}
	statsLock sync.RWMutex
}

// NewClient creates a pricing client quoting prices for region.
// The AWS Pricing API itself is only served from us-east-1 and
// ap-south-1, so the underlying client is always pinned to us-east-1.
func NewClient(ctx context.Context, region string) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-1"))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config for pricing API: %w", err)
	}

	return &Client{
		api:    pricing.NewFromConfig(cfg),
		region: region,
		cache:  make(map[string]float64),
		stats:  make(map[string]map[string]int),
	}, nil
}

// getPriceFromAPI fetches the first price list entry matching the
// filters. The entry is the raw JSON document the Pricing API returns.
func (c *Client) getPriceFromAPI(ctx context.Context, serviceCode string, filters []types.Filter, resourceType string) (string, error) {
	input := &pricing.GetProductsInput{
		ServiceCode: aws.String(serviceCode),
		Filters:     filters,
		MaxResults:  aws.Int32(1),
	}

	resp, err := c.api.GetProducts(ctx, input)
	if err != nil {
		return "", fmt.Errorf("error calling AWS Pricing API: %w", err)
	}

	if len(resp.PriceList) == 0 {
		return "", fmt.Errorf("no pricing found for %s in region %s", resourceType, c.region)
	}

	return resp.PriceList[0], nil
}
