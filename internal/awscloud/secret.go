package awscloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	smtypes "github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
)

// SecretExists reports whether the named secret exists and is not scheduled
// for deletion.
func (c *Cloud) SecretExists(ctx context.Context, name string) (bool, map[string]string, error) {
	out, err := c.Secrets.DescribeSecret(ctx, &secretsmanager.DescribeSecretInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil, nil
		}
		return false, nil, fmt.Errorf("failed to describe secret %s: %w", name, err)
	}
	if out.DeletedDate != nil {
		return false, nil, nil
	}
	return true, map[string]string{"arn": aws.ToString(out.ARN)}, nil
}

// CreateSecret creates an empty secret container. The credential material is
// written separately by StoreCredential.
func (c *Cloud) CreateSecret(ctx context.Context, name, environment string) (map[string]string, error) {
	out, err := c.Secrets.CreateSecret(ctx, &secretsmanager.CreateSecretInput{
		Name:        aws.String(name),
		Description: aws.String("relay service credential managed by relayctl"),
		Tags: []smtypes.Tag{
			{Key: aws.String("relayctl:environment"), Value: aws.String(environment)},
			{Key: aws.String("ManagedBy"), Value: aws.String("relayctl")},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create secret %s: %w", name, err)
	}
	return map[string]string{"arn": aws.ToString(out.ARN)}, nil
}

// StoreCredential writes a new version of the credential material.
func (c *Cloud) StoreCredential(ctx context.Context, name, value string) error {
	_, err := c.Secrets.PutSecretValue(ctx, &secretsmanager.PutSecretValueInput{
		SecretId:     aws.String(name),
		SecretString: aws.String(value),
	})
	if err != nil {
		return fmt.Errorf("failed to store credential in %s: %w", name, err)
	}
	return nil
}

// ReadCredential returns the latest credential material. A secret container
// that holds no version yet reports absent rather than an error.
func (c *Cloud) ReadCredential(ctx context.Context, name string) (string, bool, error) {
	out, err := c.Secrets.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read credential from %s: %w", name, err)
	}
	return aws.ToString(out.SecretString), true, nil
}

// GrantSecretAccess attaches a resource policy admitting the given role ARN
// to read the secret.
func (c *Cloud) GrantSecretAccess(ctx context.Context, name, roleARN string) error {
	policy := fmt.Sprintf(`{
  "Version": "2012-10-17",
  "Statement": [{
    "Effect": "Allow",
    "Principal": {"AWS": %q},
    "Action": "secretsmanager:GetSecretValue",
    "Resource": "*"
  }]
}`, roleARN)
	_, err := c.Secrets.PutResourcePolicy(ctx, &secretsmanager.PutResourcePolicyInput{
		SecretId:       aws.String(name),
		ResourcePolicy: aws.String(policy),
	})
	if err != nil {
		return fmt.Errorf("failed to grant access to secret %s: %w", name, err)
	}
	return nil
}

// DeleteSecret removes the secret immediately, skipping the recovery window
// so a subsequent deploy can reuse the name.
func (c *Cloud) DeleteSecret(ctx context.Context, name string) (bool, error) {
	exists, _, err := c.SecretExists(ctx, name)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if _, err := c.Secrets.DeleteSecret(ctx, &secretsmanager.DeleteSecretInput{
		SecretId:                   aws.String(name),
		ForceDeleteWithoutRecovery: aws.Bool(true),
	}); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete secret %s: %w", name, err)
	}
	return true, nil
}
