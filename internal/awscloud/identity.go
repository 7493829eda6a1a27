package awscloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
)

const (
	inlinePolicyName = "relayctl-runtime"
	ssmCorePolicyARN = "arn:aws:iam::aws:policy/AmazonSSMManagedInstanceCore"

	ec2TrustPolicy = `{
  "Version": "2012-10-17",
  "Statement": [{
    "Effect": "Allow",
    "Principal": {"Service": "ec2.amazonaws.com"},
    "Action": "sts:AssumeRole"
  }]
}`
)

// runtimePolicy grants the relay instance read access to its own credential
// and write access to its log group. The secret and log group ARNs are
// scoped per environment.
func runtimePolicy(secretARN, logGroupARN string) string {
	return fmt.Sprintf(`{
  "Version": "2012-10-17",
  "Statement": [
    {"Effect": "Allow", "Action": "secretsmanager:GetSecretValue", "Resource": %q},
    {"Effect": "Allow", "Action": ["logs:CreateLogStream", "logs:PutLogEvents"], "Resource": %q}
  ]
}`, secretARN, logGroupARN+":*")
}

// ServiceAccountExists reports whether the IAM role with the given name
// exists. The attributes carry the role ARN.
func (c *Cloud) ServiceAccountExists(ctx context.Context, name string) (bool, map[string]string, error) {
	out, err := c.IAM.GetRole(ctx, &iam.GetRoleInput{RoleName: aws.String(name)})
	if err != nil {
		if isNotFound(err) {
			return false, nil, nil
		}
		return false, nil, fmt.Errorf("failed to get role %s: %w", name, err)
	}
	return true, map[string]string{"arn": aws.ToString(out.Role.Arn)}, nil
}

// CreateServiceAccount creates the relay runtime role together with its
// instance profile. The role trusts EC2 and carries the managed policy the
// remote command channel requires.
func (c *Cloud) CreateServiceAccount(ctx context.Context, roleName, profileName, environment string) (map[string]string, error) {
	created, err := c.IAM.CreateRole(ctx, &iam.CreateRoleInput{
		RoleName:                 aws.String(roleName),
		AssumeRolePolicyDocument: aws.String(ec2TrustPolicy),
		Tags: []iamtypes.Tag{
			{Key: aws.String("relayctl:environment"), Value: aws.String(environment)},
			{Key: aws.String("ManagedBy"), Value: aws.String("relayctl")},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create role %s: %w", roleName, err)
	}

	_, err = c.IAM.AttachRolePolicy(ctx, &iam.AttachRolePolicyInput{
		RoleName:  aws.String(roleName),
		PolicyArn: aws.String(ssmCorePolicyARN),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to attach SSM policy to %s: %w", roleName, err)
	}

	if _, err := c.IAM.CreateInstanceProfile(ctx, &iam.CreateInstanceProfileInput{
		InstanceProfileName: aws.String(profileName),
	}); err != nil && !isAlreadyExists(err) {
		return nil, fmt.Errorf("failed to create instance profile %s: %w", profileName, err)
	}

	if _, err := c.IAM.AddRoleToInstanceProfile(ctx, &iam.AddRoleToInstanceProfileInput{
		InstanceProfileName: aws.String(profileName),
		RoleName:            aws.String(roleName),
	}); err != nil && !isAlreadyExists(err) {
		return nil, fmt.Errorf("failed to add role to instance profile %s: %w", profileName, err)
	}

	return map[string]string{"arn": aws.ToString(created.Role.Arn)}, nil
}

// AttachRuntimePolicy writes the inline policy scoping the role to its own
// secret and log group. Called once the secret ARN is known.
func (c *Cloud) AttachRuntimePolicy(ctx context.Context, roleName, secretARN, logGroupARN string) error {
	_, err := c.IAM.PutRolePolicy(ctx, &iam.PutRolePolicyInput{
		RoleName:       aws.String(roleName),
		PolicyName:     aws.String(inlinePolicyName),
		PolicyDocument: aws.String(runtimePolicy(secretARN, logGroupARN)),
	})
	if err != nil {
		return fmt.Errorf("failed to put runtime policy on %s: %w", roleName, err)
	}
	return nil
}

// DeleteServiceAccount tears down the instance profile and role. Returns
// false when the role is already absent.
func (c *Cloud) DeleteServiceAccount(ctx context.Context, roleName, profileName string) (bool, error) {
	exists, _, err := c.ServiceAccountExists(ctx, roleName)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	if _, err := c.IAM.RemoveRoleFromInstanceProfile(ctx, &iam.RemoveRoleFromInstanceProfileInput{
		InstanceProfileName: aws.String(profileName),
		RoleName:            aws.String(roleName),
	}); err != nil && !isNotFound(err) {
		return false, fmt.Errorf("failed to remove role from instance profile %s: %w", profileName, err)
	}

	if _, err := c.IAM.DeleteInstanceProfile(ctx, &iam.DeleteInstanceProfileInput{
		InstanceProfileName: aws.String(profileName),
	}); err != nil && !isNotFound(err) {
		return false, fmt.Errorf("failed to delete instance profile %s: %w", profileName, err)
	}

	if _, err := c.IAM.DetachRolePolicy(ctx, &iam.DetachRolePolicyInput{
		RoleName:  aws.String(roleName),
		PolicyArn: aws.String(ssmCorePolicyARN),
	}); err != nil && !isNotFound(err) {
		return false, fmt.Errorf("failed to detach SSM policy from %s: %w", roleName, err)
	}

	if _, err := c.IAM.DeleteRolePolicy(ctx, &iam.DeleteRolePolicyInput{
		RoleName:   aws.String(roleName),
		PolicyName: aws.String(inlinePolicyName),
	}); err != nil && !isNotFound(err) {
		return false, fmt.Errorf("failed to delete runtime policy on %s: %w", roleName, err)
	}

	if _, err := c.IAM.DeleteRole(ctx, &iam.DeleteRoleInput{RoleName: aws.String(roleName)}); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete role %s: %w", roleName, err)
	}
	return true, nil
}
