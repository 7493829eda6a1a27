package awscloud

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	logstypes "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
)

const (
	metricNamespace = "Relay"
	errorMetricName = "ServerErrors"

	// Matches 5xx status codes in the relay access log.
	errorFilterPattern = `[ip, identity, user, timestamp, request, status=5*, size]`
)

// AlertPolicyExists reports whether the named alarm exists.
func (c *Cloud) AlertPolicyExists(ctx context.Context, name string) (bool, map[string]string, error) {
	out, err := c.CloudWatch.DescribeAlarms(ctx, &cloudwatch.DescribeAlarmsInput{
		AlarmNames: []string{name},
	})
	if err != nil {
		return false, nil, fmt.Errorf("failed to describe alarms: %w", err)
	}
	if len(out.MetricAlarms) == 0 {
		return false, nil, nil
	}
	return true, map[string]string{"arn": aws.ToString(out.MetricAlarms[0].AlarmArn)}, nil
}

// CreateAlertPolicy creates an alarm that fires when the relay reports any
// server error within a five minute window.
func (c *Cloud) CreateAlertPolicy(ctx context.Context, name string) (map[string]string, error) {
	_, err := c.CloudWatch.PutMetricAlarm(ctx, &cloudwatch.PutMetricAlarmInput{
		AlarmName:          aws.String(name),
		AlarmDescription:   aws.String("relay service 5xx responses, managed by relayctl"),
		Namespace:          aws.String(metricNamespace),
		MetricName:         aws.String(errorMetricName),
		Statistic:          cwtypes.StatisticSum,
		Period:             aws.Int32(300),
		EvaluationPeriods:  aws.Int32(1),
		Threshold:          aws.Float64(1),
		ComparisonOperator: cwtypes.ComparisonOperatorGreaterThanOrEqualToThreshold,
		TreatMissingData:   aws.String("notBreaching"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create alarm %s: %w", name, err)
	}
	return map[string]string{"name": name}, nil
}

// DeleteAlertPolicy removes the named alarm.
func (c *Cloud) DeleteAlertPolicy(ctx context.Context, name string) (bool, error) {
	exists, _, err := c.AlertPolicyExists(ctx, name)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if _, err := c.CloudWatch.DeleteAlarms(ctx, &cloudwatch.DeleteAlarmsInput{
		AlarmNames: []string{name},
	}); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete alarm %s: %w", name, err)
	}
	return true, nil
}

// DashboardExists reports whether the named dashboard exists.
func (c *Cloud) DashboardExists(ctx context.Context, name string) (bool, map[string]string, error) {
	out, err := c.CloudWatch.GetDashboard(ctx, &cloudwatch.GetDashboardInput{
		DashboardName: aws.String(name),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil, nil
		}
		return false, nil, fmt.Errorf("failed to get dashboard %s: %w", name, err)
	}
	return true, map[string]string{"arn": aws.ToString(out.DashboardArn)}, nil
}

// CreateDashboard creates the relay overview dashboard showing the error
// metric next to instance CPU.
func (c *Cloud) CreateDashboard(ctx context.Context, name, instanceID string) (map[string]string, error) {
	body, err := dashboardBody(c.Region, instanceID)
	if err != nil {
		return nil, err
	}
	out, err := c.CloudWatch.PutDashboard(ctx, &cloudwatch.PutDashboardInput{
		DashboardName: aws.String(name),
		DashboardBody: aws.String(body),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to put dashboard %s: %w", name, err)
	}
	if len(out.DashboardValidationMessages) > 0 {
		return nil, fmt.Errorf("dashboard %s rejected: %s",
			name, aws.ToString(out.DashboardValidationMessages[0].Message))
	}
	return map[string]string{"name": name}, nil
}

func dashboardBody(region, instanceID string) (string, error) {
	body := map[string]any{
		"widgets": []map[string]any{
			{
				"type": "metric", "x": 0, "y": 0, "width": 12, "height": 6,
				"properties": map[string]any{
					"title":   "Server errors",
					"region":  region,
					"stat":    "Sum",
					"metrics": [][]any{{metricNamespace, errorMetricName}},
				},
			},
			{
				"type": "metric", "x": 12, "y": 0, "width": 12, "height": 6,
				"properties": map[string]any{
					"title":   "Instance CPU",
					"region":  region,
					"stat":    "Average",
					"metrics": [][]any{{"AWS/EC2", "CPUUtilization", "InstanceId", instanceID}},
				},
			},
		},
	}
	encoded, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode dashboard body: %w", err)
	}
	return string(encoded), nil
}

// DeleteDashboard removes the named dashboard.
func (c *Cloud) DeleteDashboard(ctx context.Context, name string) (bool, error) {
	exists, _, err := c.DashboardExists(ctx, name)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if _, err := c.CloudWatch.DeleteDashboards(ctx, &cloudwatch.DeleteDashboardsInput{
		DashboardNames: []string{name},
	}); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete dashboard %s: %w", name, err)
	}
	return true, nil
}

// LogMetricExists reports whether the log group and its error metric filter
// both exist.
func (c *Cloud) LogMetricExists(ctx context.Context, logGroup, filterName string) (bool, map[string]string, error) {
	groups, err := c.Logs.DescribeLogGroups(ctx, &cloudwatchlogs.DescribeLogGroupsInput{
		LogGroupNamePrefix: aws.String(logGroup),
	})
	if err != nil {
		return false, nil, fmt.Errorf("failed to describe log groups: %w", err)
	}
	found := false
	for _, g := range groups.LogGroups {
		if aws.ToString(g.LogGroupName) == logGroup {
			found = true
			break
		}
	}
	if !found {
		return false, nil, nil
	}

	filters, err := c.Logs.DescribeMetricFilters(ctx, &cloudwatchlogs.DescribeMetricFiltersInput{
		LogGroupName:     aws.String(logGroup),
		FilterNamePrefix: aws.String(filterName),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil, nil
		}
		return false, nil, fmt.Errorf("failed to describe metric filters: %w", err)
	}
	if len(filters.MetricFilters) == 0 {
		return false, nil, nil
	}
	return true, map[string]string{"logGroup": logGroup}, nil
}

// CreateLogMetric creates the relay log group and the metric filter that
// counts server errors into the alarm's metric.
func (c *Cloud) CreateLogMetric(ctx context.Context, logGroup, filterName string) (map[string]string, error) {
	if _, err := c.Logs.CreateLogGroup(ctx, &cloudwatchlogs.CreateLogGroupInput{
		LogGroupName: aws.String(logGroup),
		Tags:         map[string]string{"ManagedBy": "relayctl"},
	}); err != nil && !isAlreadyExists(err) {
		return nil, fmt.Errorf("failed to create log group %s: %w", logGroup, err)
	}

	if _, err := c.Logs.PutMetricFilter(ctx, &cloudwatchlogs.PutMetricFilterInput{
		LogGroupName:  aws.String(logGroup),
		FilterName:    aws.String(filterName),
		FilterPattern: aws.String(errorFilterPattern),
		MetricTransformations: []logstypes.MetricTransformation{{
			MetricName:      aws.String(errorMetricName),
			MetricNamespace: aws.String(metricNamespace),
			MetricValue:     aws.String("1"),
		}},
	}); err != nil {
		return nil, fmt.Errorf("failed to put metric filter %s: %w", filterName, err)
	}
	return map[string]string{"logGroup": logGroup}, nil
}

// DeleteLogMetric removes the metric filter and then the log group.
func (c *Cloud) DeleteLogMetric(ctx context.Context, logGroup, filterName string) (bool, error) {
	exists, _, err := c.LogMetricExists(ctx, logGroup, filterName)
	if err != nil {
		return false, err
	}

	if exists {
		if _, err := c.Logs.DeleteMetricFilter(ctx, &cloudwatchlogs.DeleteMetricFilterInput{
			LogGroupName: aws.String(logGroup),
			FilterName:   aws.String(filterName),
		}); err != nil && !isNotFound(err) {
			return false, fmt.Errorf("failed to delete metric filter %s: %w", filterName, err)
		}
	}

	if _, err := c.Logs.DeleteLogGroup(ctx, &cloudwatchlogs.DeleteLogGroupInput{
		LogGroupName: aws.String(logGroup),
	}); err != nil {
		if isNotFound(err) {
			return exists, nil
		}
		return false, fmt.Errorf("failed to delete log group %s: %w", logGroup, err)
	}
	return true, nil
}
