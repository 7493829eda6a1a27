package awscloud

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

const (
	dataDeviceName = "/dev/xvdf"

	instanceRunningTimeout    = 5 * time.Minute
	instanceTerminatedTimeout = 5 * time.Minute

	// Public Amazon Linux 2023 AMI parameter, used when no image is
	// pinned in the configuration.
	defaultImageParameter = "/aws/service/ami-amazon-linux-latest/al2023-ami-kernel-default-x86_64"
)

// DiskExists reports whether an EBS volume tagged with the given name exists
// in a non-deleted state.
func (c *Cloud) DiskExists(ctx context.Context, name string) (bool, map[string]string, error) {
	out, err := c.EC2.DescribeVolumes(ctx, &ec2.DescribeVolumesInput{
		Filters: []ec2types.Filter{
			nameFilter(name),
			{Name: aws.String("status"), Values: []string{"creating", "available", "in-use"}},
		},
	})
	if err != nil {
		return false, nil, fmt.Errorf("failed to describe volumes: %w", err)
	}
	if len(out.Volumes) == 0 {
		return false, nil, nil
	}
	vol := out.Volumes[0]
	return true, map[string]string{
		"id":     aws.ToString(vol.VolumeId),
		"sizeGB": fmt.Sprintf("%d", aws.ToInt32(vol.Size)),
		"zone":   aws.ToString(vol.AvailabilityZone),
	}, nil
}

// CreateDisk creates the relay data volume in the given availability zone.
func (c *Cloud) CreateDisk(ctx context.Context, name, zone string, sizeGB int32, environment string) (map[string]string, error) {
	out, err := c.EC2.CreateVolume(ctx, &ec2.CreateVolumeInput{
		AvailabilityZone: aws.String(zone),
		Size:             aws.Int32(sizeGB),
		VolumeType:       ec2types.VolumeTypeGp3,
		TagSpecifications: []ec2types.TagSpecification{{
			ResourceType: ec2types.ResourceTypeVolume,
			Tags:         nameTags(name, environment),
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create volume %s: %w", name, err)
	}
	return map[string]string{
		"id":     aws.ToString(out.VolumeId),
		"sizeGB": fmt.Sprintf("%d", sizeGB),
		"zone":   zone,
	}, nil
}

// DeleteDisk deletes the volume tagged with the given name.
func (c *Cloud) DeleteDisk(ctx context.Context, name string) (bool, error) {
	exists, attrs, err := c.DiskExists(ctx, name)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if _, err := c.EC2.DeleteVolume(ctx, &ec2.DeleteVolumeInput{VolumeId: aws.String(attrs["id"])}); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete volume %s: %w", name, err)
	}
	return true, nil
}

// InstanceExists reports whether an instance tagged with the given name
// exists in a live state. Terminated instances do not count.
func (c *Cloud) InstanceExists(ctx context.Context, name string) (bool, map[string]string, error) {
	out, err := c.EC2.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		Filters: []ec2types.Filter{
			nameFilter(name),
			{Name: aws.String("instance-state-name"), Values: []string{"pending", "running", "stopping", "stopped"}},
		},
	})
	if err != nil {
		return false, nil, fmt.Errorf("failed to describe instances: %w", err)
	}
	for _, res := range out.Reservations {
		for _, inst := range res.Instances {
			return true, instanceAttributes(inst), nil
		}
	}
	return false, nil, nil
}

func instanceAttributes(inst ec2types.Instance) map[string]string {
	attrs := map[string]string{
		"id":         aws.ToString(inst.InstanceId),
		"type":       string(inst.InstanceType),
		"internalIP": aws.ToString(inst.PrivateIpAddress),
		"externalIP": aws.ToString(inst.PublicIpAddress),
	}
	if inst.Placement != nil {
		attrs["zone"] = aws.ToString(inst.Placement.AvailabilityZone)
	}
	return attrs
}

// InstanceSpec carries the inputs for CreateInstance.
type InstanceSpec struct {
	Name            string
	ImageID         string
	InstanceType    string
	SubnetID        string
	SecurityGroupID string
	ProfileName     string
	DiskName        string
	Environment     string
}

// CreateInstance launches the relay instance, waits until it is running,
// attaches the data volume, and returns its identity and addresses.
func (c *Cloud) CreateInstance(ctx context.Context, spec InstanceSpec) (map[string]string, error) {
	imageID := spec.ImageID
	if imageID == "" {
		resolved, err := c.resolveDefaultImage(ctx)
		if err != nil {
			return nil, err
		}
		imageID = resolved
	}

	out, err := c.EC2.RunInstances(ctx, &ec2.RunInstancesInput{
		ImageId:      aws.String(imageID),
		InstanceType: ec2types.InstanceType(spec.InstanceType),
		MinCount:     aws.Int32(1),
		MaxCount:     aws.Int32(1),
		IamInstanceProfile: &ec2types.IamInstanceProfileSpecification{
			Name: aws.String(spec.ProfileName),
		},
		NetworkInterfaces: []ec2types.InstanceNetworkInterfaceSpecification{{
			DeviceIndex:              aws.Int32(0),
			SubnetId:                 aws.String(spec.SubnetID),
			Groups:                   []string{spec.SecurityGroupID},
			AssociatePublicIpAddress: aws.Bool(true),
		}},
		TagSpecifications: []ec2types.TagSpecification{{
			ResourceType: ec2types.ResourceTypeInstance,
			Tags:         nameTags(spec.Name, spec.Environment),
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to launch instance %s: %w", spec.Name, err)
	}
	instanceID := aws.ToString(out.Instances[0].InstanceId)

	waiter := ec2.NewInstanceRunningWaiter(c.EC2)
	if err := waiter.Wait(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	}, instanceRunningTimeout); err != nil {
		return nil, fmt.Errorf("instance %s did not reach running state: %w", instanceID, err)
	}

	if spec.DiskName != "" {
		diskExists, diskAttrs, err := c.DiskExists(ctx, spec.DiskName)
		if err != nil {
			return nil, err
		}
		if diskExists && diskAttrs["id"] != "" {
			if _, err := c.EC2.AttachVolume(ctx, &ec2.AttachVolumeInput{
				Device:     aws.String(dataDeviceName),
				InstanceId: aws.String(instanceID),
				VolumeId:   aws.String(diskAttrs["id"]),
			}); err != nil && !isAlreadyExists(err) {
				return nil, fmt.Errorf("failed to attach volume %s: %w", spec.DiskName, err)
			}
		}
	}

	// Re-describe to pick up the assigned addresses.
	described, err := c.EC2.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe instance %s: %w", instanceID, err)
	}
	return instanceAttributes(described.Reservations[0].Instances[0]), nil
}

func (c *Cloud) resolveDefaultImage(ctx context.Context) (string, error) {
	out, err := c.SSM.GetParameter(ctx, &ssm.GetParameterInput{
		Name: aws.String(defaultImageParameter),
	})
	if err != nil {
		return "", fmt.Errorf("failed to resolve default image: %w", err)
	}
	return aws.ToString(out.Parameter.Value), nil
}

// DeleteInstance terminates the instance tagged with the given name and
// waits for termination so dependent resources can be released.
func (c *Cloud) DeleteInstance(ctx context.Context, name string) (bool, error) {
	exists, attrs, err := c.InstanceExists(ctx, name)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	instanceID := attrs["id"]
	if _, err := c.EC2.TerminateInstances(ctx, &ec2.TerminateInstancesInput{
		InstanceIds: []string{instanceID},
	}); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to terminate instance %s: %w", name, err)
	}

	waiter := ec2.NewInstanceTerminatedWaiter(c.EC2)
	if err := waiter.Wait(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	}, instanceTerminatedTimeout); err != nil {
		return false, fmt.Errorf("instance %s did not terminate: %w", instanceID, err)
	}
	return true, nil
}
