package awscloud

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

const commandTimeout = 10 * time.Minute

var commandPollInterval = 5 * time.Second

// RunCommands executes a shell script on the instance over the SSM command
// channel and blocks until it finishes. A non-zero exit or a timeout is
// returned as an error carrying the remote stderr.
func (c *Cloud) RunCommands(ctx context.Context, instanceID string, commands []string) error {
	sent, err := c.SSM.SendCommand(ctx, &ssm.SendCommandInput{
		InstanceIds:  []string{instanceID},
		DocumentName: aws.String("AWS-RunShellScript"),
		Comment:      aws.String("relayctl service rollout"),
		Parameters: map[string][]string{
			"commands": commands,
		},
		TimeoutSeconds: aws.Int32(int32(commandTimeout.Seconds())),
	})
	if err != nil {
		return fmt.Errorf("failed to send command to %s: %w", instanceID, err)
	}
	commandID := aws.ToString(sent.Command.CommandId)

	deadline := time.Now().Add(commandTimeout)
	ticker := time.NewTicker(commandPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("command %s on %s did not finish within %s", commandID, instanceID, commandTimeout)
		}

		inv, err := c.SSM.GetCommandInvocation(ctx, &ssm.GetCommandInvocationInput{
			CommandId:  aws.String(commandID),
			InstanceId: aws.String(instanceID),
		})
		if err != nil {
			// The invocation record lags SendCommand by a few seconds.
			if isNotFound(err) {
				continue
			}
			return fmt.Errorf("failed to poll command %s: %w", commandID, err)
		}

		switch inv.Status {
		case ssmtypes.CommandInvocationStatusPending, ssmtypes.CommandInvocationStatusInProgress, ssmtypes.CommandInvocationStatusDelayed:
			continue
		case ssmtypes.CommandInvocationStatusSuccess:
			return nil
		default:
			stderr := strings.TrimSpace(aws.ToString(inv.StandardErrorContent))
			if stderr == "" {
				stderr = "no remote error output"
			}
			return fmt.Errorf("command %s on %s finished %s: %s", commandID, instanceID, inv.Status, stderr)
		}
	}
}
