package awscloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// CountInstancesOfTypes returns the number of live instances in the region
// whose instance type is in the given set.
func (c *Cloud) CountInstancesOfTypes(ctx context.Context, instanceTypes []string) (int, error) {
	if len(instanceTypes) == 0 {
		return 0, nil
	}
	count := 0
	var nextToken *string
	for {
		out, err := c.EC2.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
			Filters: []ec2types.Filter{
				{Name: aws.String("instance-type"), Values: instanceTypes},
				{Name: aws.String("instance-state-name"), Values: []string{"pending", "running"}},
			},
			NextToken: nextToken,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to count instances: %w", err)
		}
		for _, res := range out.Reservations {
			count += len(res.Instances)
		}
		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return count, nil
}

// StandardVolumeGB returns the total size in GB of all general purpose
// volumes in the region, regardless of who created them.
func (c *Cloud) StandardVolumeGB(ctx context.Context, volumeTypes []string) (int64, error) {
	var total int64
	var nextToken *string
	for {
		out, err := c.EC2.DescribeVolumes(ctx, &ec2.DescribeVolumesInput{
			Filters: []ec2types.Filter{
				{Name: aws.String("volume-type"), Values: volumeTypes},
			},
			NextToken: nextToken,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to sum volume sizes: %w", err)
		}
		for _, vol := range out.Volumes {
			total += int64(aws.ToInt32(vol.Size))
		}
		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return total, nil
}

// ReservedAddresses returns the public IPs of all Elastic IP allocations in
// the region.
func (c *Cloud) ReservedAddresses(ctx context.Context) ([]string, error) {
	out, err := c.EC2.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to describe addresses: %w", err)
	}
	addresses := make([]string, 0, len(out.Addresses))
	for _, addr := range out.Addresses {
		addresses = append(addresses, aws.ToString(addr.PublicIp))
	}
	return addresses, nil
}

// HasBudget reports whether the account has at least one budget configured.
func (c *Cloud) HasBudget(ctx context.Context) (bool, error) {
	out, err := c.Budgets.DescribeBudgets(ctx, &budgets.DescribeBudgetsInput{
		AccountId:  aws.String(c.AccountID),
		MaxResults: aws.Int32(1),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to list budgets: %w", err)
	}
	return len(out.Budgets) > 0, nil
}
