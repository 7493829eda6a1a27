package awscloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// nameTags builds the tag set applied to every EC2-family resource relayctl
// creates. The Name tag doubles as the lookup key for existence checks.
func nameTags(name, environment string) []ec2types.Tag {
	return []ec2types.Tag{
		{Key: aws.String("Name"), Value: aws.String(name)},
		{Key: aws.String("relayctl:environment"), Value: aws.String(environment)},
		{Key: aws.String("ManagedBy"), Value: aws.String("relayctl")},
	}
}

func nameFilter(name string) ec2types.Filter {
	return ec2types.Filter{Name: aws.String("tag:Name"), Values: []string{name}}
}

// NetworkExists reports whether a VPC tagged with the given name exists in a
// usable state.
func (c *Cloud) NetworkExists(ctx context.Context, name string) (bool, map[string]string, error) {
	out, err := c.EC2.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{
		Filters: []ec2types.Filter{
			nameFilter(name),
			{Name: aws.String("state"), Values: []string{"pending", "available"}},
		},
	})
	if err != nil {
		return false, nil, fmt.Errorf("failed to describe VPCs: %w", err)
	}
	if len(out.Vpcs) == 0 {
		return false, nil, nil
	}
	vpc := out.Vpcs[0]
	return true, map[string]string{
		"id":   aws.ToString(vpc.VpcId),
		"cidr": aws.ToString(vpc.CidrBlock),
	}, nil
}

// CreateNetwork creates a VPC with the given name tag and CIDR block.
func (c *Cloud) CreateNetwork(ctx context.Context, name, cidr, environment string) (map[string]string, error) {
	out, err := c.EC2.CreateVpc(ctx, &ec2.CreateVpcInput{
		CidrBlock: aws.String(cidr),
		TagSpecifications: []ec2types.TagSpecification{{
			ResourceType: ec2types.ResourceTypeVpc,
			Tags:         nameTags(name, environment),
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create VPC %s: %w", name, err)
	}
	return map[string]string{
		"id":   aws.ToString(out.Vpc.VpcId),
		"cidr": cidr,
	}, nil
}

// DeleteNetwork deletes the VPC tagged with the given name. Returns false
// when no such VPC exists.
func (c *Cloud) DeleteNetwork(ctx context.Context, name string) (bool, error) {
	exists, attrs, err := c.NetworkExists(ctx, name)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if _, err := c.EC2.DeleteVpc(ctx, &ec2.DeleteVpcInput{VpcId: aws.String(attrs["id"])}); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete VPC %s: %w", name, err)
	}
	return true, nil
}

// SubnetExists reports whether a subnet tagged with the given name exists.
func (c *Cloud) SubnetExists(ctx context.Context, name string) (bool, map[string]string, error) {
	out, err := c.EC2.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{
		Filters: []ec2types.Filter{nameFilter(name)},
	})
	if err != nil {
		return false, nil, fmt.Errorf("failed to describe subnets: %w", err)
	}
	if len(out.Subnets) == 0 {
		return false, nil, nil
	}
	subnet := out.Subnets[0]
	return true, map[string]string{
		"id":   aws.ToString(subnet.SubnetId),
		"cidr": aws.ToString(subnet.CidrBlock),
		"zone": aws.ToString(subnet.AvailabilityZone),
	}, nil
}

// CreateSubnet creates a subnet inside the named VPC.
func (c *Cloud) CreateSubnet(ctx context.Context, name, vpcID, cidr, zone, environment string) (map[string]string, error) {
	out, err := c.EC2.CreateSubnet(ctx, &ec2.CreateSubnetInput{
		VpcId:            aws.String(vpcID),
		CidrBlock:        aws.String(cidr),
		AvailabilityZone: aws.String(zone),
		TagSpecifications: []ec2types.TagSpecification{{
			ResourceType: ec2types.ResourceTypeSubnet,
			Tags:         nameTags(name, environment),
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create subnet %s: %w", name, err)
	}
	return map[string]string{
		"id":   aws.ToString(out.Subnet.SubnetId),
		"cidr": cidr,
		"zone": zone,
	}, nil
}

// DeleteSubnet deletes the subnet tagged with the given name.
func (c *Cloud) DeleteSubnet(ctx context.Context, name string) (bool, error) {
	exists, attrs, err := c.SubnetExists(ctx, name)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if _, err := c.EC2.DeleteSubnet(ctx, &ec2.DeleteSubnetInput{SubnetId: aws.String(attrs["id"])}); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete subnet %s: %w", name, err)
	}
	return true, nil
}

// FirewallRuleExists reports whether a security group with the given group
// name exists.
func (c *Cloud) FirewallRuleExists(ctx context.Context, name string) (bool, map[string]string, error) {
	out, err := c.EC2.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("group-name"), Values: []string{name}},
		},
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil, nil
		}
		return false, nil, fmt.Errorf("failed to describe security groups: %w", err)
	}
	if len(out.SecurityGroups) == 0 {
		return false, nil, nil
	}
	return true, map[string]string{"id": aws.ToString(out.SecurityGroups[0].GroupId)}, nil
}

// CreateFirewallRule creates a security group in the given VPC admitting
// inbound TCP on the service port and SSH from within the VPC CIDR.
func (c *Cloud) CreateFirewallRule(ctx context.Context, name, vpcID, vpcCIDR string, servicePort int32, environment string) (map[string]string, error) {
	created, err := c.EC2.CreateSecurityGroup(ctx, &ec2.CreateSecurityGroupInput{
		GroupName:   aws.String(name),
		Description: aws.String("relay service ingress managed by relayctl"),
		VpcId:       aws.String(vpcID),
		TagSpecifications: []ec2types.TagSpecification{{
			ResourceType: ec2types.ResourceTypeSecurityGroup,
			Tags:         nameTags(name, environment),
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create security group %s: %w", name, err)
	}

	groupID := aws.ToString(created.GroupId)
	_, err = c.EC2.AuthorizeSecurityGroupIngress(ctx, &ec2.AuthorizeSecurityGroupIngressInput{
		GroupId: aws.String(groupID),
		IpPermissions: []ec2types.IpPermission{
			{
				IpProtocol: aws.String("tcp"),
				FromPort:   aws.Int32(servicePort),
				ToPort:     aws.Int32(servicePort),
				IpRanges:   []ec2types.IpRange{{CidrIp: aws.String("0.0.0.0/0")}},
			},
			{
				IpProtocol: aws.String("tcp"),
				FromPort:   aws.Int32(22),
				ToPort:     aws.Int32(22),
				IpRanges:   []ec2types.IpRange{{CidrIp: aws.String(vpcCIDR)}},
			},
		},
	})
	if err != nil && !isAlreadyExists(err) {
		return nil, fmt.Errorf("failed to authorize ingress on %s: %w", name, err)
	}
	return map[string]string{"id": groupID}, nil
}

// DeleteFirewallRule deletes the security group with the given group name.
func (c *Cloud) DeleteFirewallRule(ctx context.Context, name string) (bool, error) {
	exists, attrs, err := c.FirewallRuleExists(ctx, name)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if _, err := c.EC2.DeleteSecurityGroup(ctx, &ec2.DeleteSecurityGroupInput{GroupId: aws.String(attrs["id"])}); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete security group %s: %w", name, err)
	}
	return true, nil
}
