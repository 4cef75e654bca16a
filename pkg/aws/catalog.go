package aws

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/AanchalGupta13/Cost-Estimation/internal/models"
	"github.com/AanchalGupta13/Cost-Estimation/pkg/utils"
)

// EC2Client struct for the instance type catalog client
type EC2Client struct {
	client *ec2.Client
	region string
}

// NewEC2Client creates a new EC2Client
func NewEC2Client(region string) (*EC2Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := ec2.NewFromConfig(cfg)
	return &EC2Client{
		client: client,
		region: region,
	}, nil
}

// InstanceTypes returns the catalog of instance types offered in the
// region. Memory is reported in whole gigabytes, truncated from MiB.
// The catalog is sorted by type name so matching is reproducible
// across runs.
func (c *EC2Client) InstanceTypes(ctx context.Context) ([]models.InstanceType, error) {
	var catalog []models.InstanceType

	paginator := ec2.NewDescribeInstanceTypesPaginator(c.client, &ec2.DescribeInstanceTypesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error querying EC2 instance types: %w", err)
		}

		for _, it := range page.InstanceTypes {
			if it.VCpuInfo == nil || it.MemoryInfo == nil {
				continue
			}

			catalog = append(catalog, models.InstanceType{
				Name:     string(it.InstanceType),
				VCPUs:    int(utils.SafeInt32(it.VCpuInfo.DefaultVCpus)),
				MemoryGB: int(utils.SafeInt64(it.MemoryInfo.SizeInMiB) / 1024),
			})
		}
	}

	sort.Slice(catalog, func(i, j int) bool {
		return catalog[i].Name < catalog[j].Name
	})

	return catalog, nil
}
