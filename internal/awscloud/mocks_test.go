package awscloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/budgets"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

var errUnexpectedCall = fmt.Errorf("unexpected call")

type mockEC2 struct {
	describeVpcsFunc                  func(ctx context.Context, params *ec2.DescribeVpcsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error)
	createVpcFunc                     func(ctx context.Context, params *ec2.CreateVpcInput, optFns ...func(*ec2.Options)) (*ec2.CreateVpcOutput, error)
	deleteVpcFunc                     func(ctx context.Context, params *ec2.DeleteVpcInput, optFns ...func(*ec2.Options)) (*ec2.DeleteVpcOutput, error)
	describeSubnetsFunc               func(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error)
	createSubnetFunc                  func(ctx context.Context, params *ec2.CreateSubnetInput, optFns ...func(*ec2.Options)) (*ec2.CreateSubnetOutput, error)
	deleteSubnetFunc                  func(ctx context.Context, params *ec2.DeleteSubnetInput, optFns ...func(*ec2.Options)) (*ec2.DeleteSubnetOutput, error)
	describeSecurityGroupsFunc        func(ctx context.Context, params *ec2.DescribeSecurityGroupsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error)
	createSecurityGroupFunc           func(ctx context.Context, params *ec2.CreateSecurityGroupInput, optFns ...func(*ec2.Options)) (*ec2.CreateSecurityGroupOutput, error)
	authorizeSecurityGroupIngressFunc func(ctx context.Context, params *ec2.AuthorizeSecurityGroupIngressInput, optFns ...func(*ec2.Options)) (*ec2.AuthorizeSecurityGroupIngressOutput, error)
	deleteSecurityGroupFunc           func(ctx context.Context, params *ec2.DeleteSecurityGroupInput, optFns ...func(*ec2.Options)) (*ec2.DeleteSecurityGroupOutput, error)
	describeVolumesFunc               func(ctx context.Context, params *ec2.DescribeVolumesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVolumesOutput, error)
	createVolumeFunc                  func(ctx context.Context, params *ec2.CreateVolumeInput, optFns ...func(*ec2.Options)) (*ec2.CreateVolumeOutput, error)
	deleteVolumeFunc                  func(ctx context.Context, params *ec2.DeleteVolumeInput, optFns ...func(*ec2.Options)) (*ec2.DeleteVolumeOutput, error)
	attachVolumeFunc                  func(ctx context.Context, params *ec2.AttachVolumeInput, optFns ...func(*ec2.Options)) (*ec2.AttachVolumeOutput, error)
	describeInstancesFunc             func(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	runInstancesFunc                  func(ctx context.Context, params *ec2.RunInstancesInput, optFns ...func(*ec2.Options)) (*ec2.RunInstancesOutput, error)
	terminateInstancesFunc            func(ctx context.Context, params *ec2.TerminateInstancesInput, optFns ...func(*ec2.Options)) (*ec2.TerminateInstancesOutput, error)
	describeAddressesFunc             func(ctx context.Context, params *ec2.DescribeAddressesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeAddressesOutput, error)
}

func (m *mockEC2) DescribeVpcs(ctx context.Context, params *ec2.DescribeVpcsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error) {
	if m.describeVpcsFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.describeVpcsFunc(ctx, params, optFns...)
}

func (m *mockEC2) CreateVpc(ctx context.Context, params *ec2.CreateVpcInput, optFns ...func(*ec2.Options)) (*ec2.CreateVpcOutput, error) {
	if m.createVpcFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.createVpcFunc(ctx, params, optFns...)
}

func (m *mockEC2) DeleteVpc(ctx context.Context, params *ec2.DeleteVpcInput, optFns ...func(*ec2.Options)) (*ec2.DeleteVpcOutput, error) {
	if m.deleteVpcFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.deleteVpcFunc(ctx, params, optFns...)
}

func (m *mockEC2) DescribeSubnets(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error) {
	if m.describeSubnetsFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.describeSubnetsFunc(ctx, params, optFns...)
}

func (m *mockEC2) CreateSubnet(ctx context.Context, params *ec2.CreateSubnetInput, optFns ...func(*ec2.Options)) (*ec2.CreateSubnetOutput, error) {
	if m.createSubnetFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.createSubnetFunc(ctx, params, optFns...)
}

func (m *mockEC2) DeleteSubnet(ctx context.Context, params *ec2.DeleteSubnetInput, optFns ...func(*ec2.Options)) (*ec2.DeleteSubnetOutput, error) {
	if m.deleteSubnetFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.deleteSubnetFunc(ctx, params, optFns...)
}

func (m *mockEC2) DescribeSecurityGroups(ctx context.Context, params *ec2.DescribeSecurityGroupsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error) {
	if m.describeSecurityGroupsFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.describeSecurityGroupsFunc(ctx, params, optFns...)
}

func (m *mockEC2) CreateSecurityGroup(ctx context.Context, params *ec2.CreateSecurityGroupInput, optFns ...func(*ec2.Options)) (*ec2.CreateSecurityGroupOutput, error) {
	if m.createSecurityGroupFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.createSecurityGroupFunc(ctx, params, optFns...)
}

func (m *mockEC2) AuthorizeSecurityGroupIngress(ctx context.Context, params *ec2.AuthorizeSecurityGroupIngressInput, optFns ...func(*ec2.Options)) (*ec2.AuthorizeSecurityGroupIngressOutput, error) {
	if m.authorizeSecurityGroupIngressFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.authorizeSecurityGroupIngressFunc(ctx, params, optFns...)
}

func (m *mockEC2) DeleteSecurityGroup(ctx context.Context, params *ec2.DeleteSecurityGroupInput, optFns ...func(*ec2.Options)) (*ec2.DeleteSecurityGroupOutput, error) {
	if m.deleteSecurityGroupFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.deleteSecurityGroupFunc(ctx, params, optFns...)
}

func (m *mockEC2) DescribeVolumes(ctx context.Context, params *ec2.DescribeVolumesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVolumesOutput, error) {
	if m.describeVolumesFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.describeVolumesFunc(ctx, params, optFns...)
}

func (m *mockEC2) CreateVolume(ctx context.Context, params *ec2.CreateVolumeInput, optFns ...func(*ec2.Options)) (*ec2.CreateVolumeOutput, error) {
	if m.createVolumeFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.createVolumeFunc(ctx, params, optFns...)
}

func (m *mockEC2) DeleteVolume(ctx context.Context, params *ec2.DeleteVolumeInput, optFns ...func(*ec2.Options)) (*ec2.DeleteVolumeOutput, error) {
	if m.deleteVolumeFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.deleteVolumeFunc(ctx, params, optFns...)
}

func (m *mockEC2) AttachVolume(ctx context.Context, params *ec2.AttachVolumeInput, optFns ...func(*ec2.Options)) (*ec2.AttachVolumeOutput, error) {
	if m.attachVolumeFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.attachVolumeFunc(ctx, params, optFns...)
}

func (m *mockEC2) DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	if m.describeInstancesFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.describeInstancesFunc(ctx, params, optFns...)
}

func (m *mockEC2) RunInstances(ctx context.Context, params *ec2.RunInstancesInput, optFns ...func(*ec2.Options)) (*ec2.RunInstancesOutput, error) {
	if m.runInstancesFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.runInstancesFunc(ctx, params, optFns...)
}

func (m *mockEC2) TerminateInstances(ctx context.Context, params *ec2.TerminateInstancesInput, optFns ...func(*ec2.Options)) (*ec2.TerminateInstancesOutput, error) {
	if m.terminateInstancesFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.terminateInstancesFunc(ctx, params, optFns...)
}

func (m *mockEC2) DescribeAddresses(ctx context.Context, params *ec2.DescribeAddressesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeAddressesOutput, error) {
	if m.describeAddressesFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.describeAddressesFunc(ctx, params, optFns...)
}

type mockIAM struct {
	getRoleFunc                       func(ctx context.Context, params *iam.GetRoleInput, optFns ...func(*iam.Options)) (*iam.GetRoleOutput, error)
	createRoleFunc                    func(ctx context.Context, params *iam.CreateRoleInput, optFns ...func(*iam.Options)) (*iam.CreateRoleOutput, error)
	deleteRoleFunc                    func(ctx context.Context, params *iam.DeleteRoleInput, optFns ...func(*iam.Options)) (*iam.DeleteRoleOutput, error)
	putRolePolicyFunc                 func(ctx context.Context, params *iam.PutRolePolicyInput, optFns ...func(*iam.Options)) (*iam.PutRolePolicyOutput, error)
	deleteRolePolicyFunc              func(ctx context.Context, params *iam.DeleteRolePolicyInput, optFns ...func(*iam.Options)) (*iam.DeleteRolePolicyOutput, error)
	attachRolePolicyFunc              func(ctx context.Context, params *iam.AttachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.AttachRolePolicyOutput, error)
	detachRolePolicyFunc              func(ctx context.Context, params *iam.DetachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.DetachRolePolicyOutput, error)
	createInstanceProfileFunc         func(ctx context.Context, params *iam.CreateInstanceProfileInput, optFns ...func(*iam.Options)) (*iam.CreateInstanceProfileOutput, error)
	deleteInstanceProfileFunc         func(ctx context.Context, params *iam.DeleteInstanceProfileInput, optFns ...func(*iam.Options)) (*iam.DeleteInstanceProfileOutput, error)
	addRoleToInstanceProfileFunc      func(ctx context.Context, params *iam.AddRoleToInstanceProfileInput, optFns ...func(*iam.Options)) (*iam.AddRoleToInstanceProfileOutput, error)
	removeRoleFromInstanceProfileFunc func(ctx context.Context, params *iam.RemoveRoleFromInstanceProfileInput, optFns ...func(*iam.Options)) (*iam.RemoveRoleFromInstanceProfileOutput, error)
}

func (m *mockIAM) GetRole(ctx context.Context, params *iam.GetRoleInput, optFns ...func(*iam.Options)) (*iam.GetRoleOutput, error) {
	if m.getRoleFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.getRoleFunc(ctx, params, optFns...)
}

func (m *mockIAM) CreateRole(ctx context.Context, params *iam.CreateRoleInput, optFns ...func(*iam.Options)) (*iam.CreateRoleOutput, error) {
	if m.createRoleFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.createRoleFunc(ctx, params, optFns...)
}

func (m *mockIAM) DeleteRole(ctx context.Context, params *iam.DeleteRoleInput, optFns ...func(*iam.Options)) (*iam.DeleteRoleOutput, error) {
	if m.deleteRoleFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.deleteRoleFunc(ctx, params, optFns...)
}

func (m *mockIAM) PutRolePolicy(ctx context.Context, params *iam.PutRolePolicyInput, optFns ...func(*iam.Options)) (*iam.PutRolePolicyOutput, error) {
	if m.putRolePolicyFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.putRolePolicyFunc(ctx, params, optFns...)
}

func (m *mockIAM) DeleteRolePolicy(ctx context.Context, params *iam.DeleteRolePolicyInput, optFns ...func(*iam.Options)) (*iam.DeleteRolePolicyOutput, error) {
	if m.deleteRolePolicyFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.deleteRolePolicyFunc(ctx, params, optFns...)
}

func (m *mockIAM) AttachRolePolicy(ctx context.Context, params *iam.AttachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.AttachRolePolicyOutput, error) {
	if m.attachRolePolicyFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.attachRolePolicyFunc(ctx, params, optFns...)
}

func (m *mockIAM) DetachRolePolicy(ctx context.Context, params *iam.DetachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.DetachRolePolicyOutput, error) {
	if m.detachRolePolicyFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.detachRolePolicyFunc(ctx, params, optFns...)
}

func (m *mockIAM) CreateInstanceProfile(ctx context.Context, params *iam.CreateInstanceProfileInput, optFns ...func(*iam.Options)) (*iam.CreateInstanceProfileOutput, error) {
	if m.createInstanceProfileFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.createInstanceProfileFunc(ctx, params, optFns...)
}

func (m *mockIAM) DeleteInstanceProfile(ctx context.Context, params *iam.DeleteInstanceProfileInput, optFns ...func(*iam.Options)) (*iam.DeleteInstanceProfileOutput, error) {
	if m.deleteInstanceProfileFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.deleteInstanceProfileFunc(ctx, params, optFns...)
}

func (m *mockIAM) AddRoleToInstanceProfile(ctx context.Context, params *iam.AddRoleToInstanceProfileInput, optFns ...func(*iam.Options)) (*iam.AddRoleToInstanceProfileOutput, error) {
	if m.addRoleToInstanceProfileFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.addRoleToInstanceProfileFunc(ctx, params, optFns...)
}

func (m *mockIAM) RemoveRoleFromInstanceProfile(ctx context.Context, params *iam.RemoveRoleFromInstanceProfileInput, optFns ...func(*iam.Options)) (*iam.RemoveRoleFromInstanceProfileOutput, error) {
	if m.removeRoleFromInstanceProfileFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.removeRoleFromInstanceProfileFunc(ctx, params, optFns...)
}

type mockSecrets struct {
	describeSecretFunc    func(ctx context.Context, params *secretsmanager.DescribeSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.DescribeSecretOutput, error)
	createSecretFunc      func(ctx context.Context, params *secretsmanager.CreateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.CreateSecretOutput, error)
	putSecretValueFunc    func(ctx context.Context, params *secretsmanager.PutSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.PutSecretValueOutput, error)
	getSecretValueFunc    func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
	putResourcePolicyFunc func(ctx context.Context, params *secretsmanager.PutResourcePolicyInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.PutResourcePolicyOutput, error)
	deleteSecretFunc      func(ctx context.Context, params *secretsmanager.DeleteSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.DeleteSecretOutput, error)
}

func (m *mockSecrets) DescribeSecret(ctx context.Context, params *secretsmanager.DescribeSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.DescribeSecretOutput, error) {
	if m.describeSecretFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.describeSecretFunc(ctx, params, optFns...)
}

func (m *mockSecrets) CreateSecret(ctx context.Context, params *secretsmanager.CreateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.CreateSecretOutput, error) {
	if m.createSecretFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.createSecretFunc(ctx, params, optFns...)
}

func (m *mockSecrets) PutSecretValue(ctx context.Context, params *secretsmanager.PutSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.PutSecretValueOutput, error) {
	if m.putSecretValueFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.putSecretValueFunc(ctx, params, optFns...)
}

func (m *mockSecrets) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	if m.getSecretValueFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.getSecretValueFunc(ctx, params, optFns...)
}

func (m *mockSecrets) PutResourcePolicy(ctx context.Context, params *secretsmanager.PutResourcePolicyInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.PutResourcePolicyOutput, error) {
	if m.putResourcePolicyFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.putResourcePolicyFunc(ctx, params, optFns...)
}

func (m *mockSecrets) DeleteSecret(ctx context.Context, params *secretsmanager.DeleteSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.DeleteSecretOutput, error) {
	if m.deleteSecretFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.deleteSecretFunc(ctx, params, optFns...)
}

type mockCloudWatch struct {
	describeAlarmsFunc   func(ctx context.Context, params *cloudwatch.DescribeAlarmsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.DescribeAlarmsOutput, error)
	putMetricAlarmFunc   func(ctx context.Context, params *cloudwatch.PutMetricAlarmInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricAlarmOutput, error)
	deleteAlarmsFunc     func(ctx context.Context, params *cloudwatch.DeleteAlarmsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.DeleteAlarmsOutput, error)
	getDashboardFunc     func(ctx context.Context, params *cloudwatch.GetDashboardInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.GetDashboardOutput, error)
	putDashboardFunc     func(ctx context.Context, params *cloudwatch.PutDashboardInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutDashboardOutput, error)
	deleteDashboardsFunc func(ctx context.Context, params *cloudwatch.DeleteDashboardsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.DeleteDashboardsOutput, error)
}

func (m *mockCloudWatch) DescribeAlarms(ctx context.Context, params *cloudwatch.DescribeAlarmsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.DescribeAlarmsOutput, error) {
	if m.describeAlarmsFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.describeAlarmsFunc(ctx, params, optFns...)
}

func (m *mockCloudWatch) PutMetricAlarm(ctx context.Context, params *cloudwatch.PutMetricAlarmInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricAlarmOutput, error) {
	if m.putMetricAlarmFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.putMetricAlarmFunc(ctx, params, optFns...)
}

func (m *mockCloudWatch) DeleteAlarms(ctx context.Context, params *cloudwatch.DeleteAlarmsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.DeleteAlarmsOutput, error) {
	if m.deleteAlarmsFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.deleteAlarmsFunc(ctx, params, optFns...)
}

func (m *mockCloudWatch) GetDashboard(ctx context.Context, params *cloudwatch.GetDashboardInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.GetDashboardOutput, error) {
	if m.getDashboardFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.getDashboardFunc(ctx, params, optFns...)
}

func (m *mockCloudWatch) PutDashboard(ctx context.Context, params *cloudwatch.PutDashboardInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutDashboardOutput, error) {
	if m.putDashboardFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.putDashboardFunc(ctx, params, optFns...)
}

func (m *mockCloudWatch) DeleteDashboards(ctx context.Context, params *cloudwatch.DeleteDashboardsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.DeleteDashboardsOutput, error) {
	if m.deleteDashboardsFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.deleteDashboardsFunc(ctx, params, optFns...)
}

type mockLogs struct {
	describeLogGroupsFunc     func(ctx context.Context, params *cloudwatchlogs.DescribeLogGroupsInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DescribeLogGroupsOutput, error)
	createLogGroupFunc        func(ctx context.Context, params *cloudwatchlogs.CreateLogGroupInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.CreateLogGroupOutput, error)
	deleteLogGroupFunc        func(ctx context.Context, params *cloudwatchlogs.DeleteLogGroupInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DeleteLogGroupOutput, error)
	describeMetricFiltersFunc func(ctx context.Context, params *cloudwatchlogs.DescribeMetricFiltersInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DescribeMetricFiltersOutput, error)
	putMetricFilterFunc       func(ctx context.Context, params *cloudwatchlogs.PutMetricFilterInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.PutMetricFilterOutput, error)
	deleteMetricFilterFunc    func(ctx context.Context, params *cloudwatchlogs.DeleteMetricFilterInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DeleteMetricFilterOutput, error)
}

func (m *mockLogs) DescribeLogGroups(ctx context.Context, params *cloudwatchlogs.DescribeLogGroupsInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DescribeLogGroupsOutput, error) {
	if m.describeLogGroupsFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.describeLogGroupsFunc(ctx, params, optFns...)
}

func (m *mockLogs) CreateLogGroup(ctx context.Context, params *cloudwatchlogs.CreateLogGroupInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.CreateLogGroupOutput, error) {
	if m.createLogGroupFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.createLogGroupFunc(ctx, params, optFns...)
}

func (m *mockLogs) DeleteLogGroup(ctx context.Context, params *cloudwatchlogs.DeleteLogGroupInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DeleteLogGroupOutput, error) {
	if m.deleteLogGroupFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.deleteLogGroupFunc(ctx, params, optFns...)
}

func (m *mockLogs) DescribeMetricFilters(ctx context.Context, params *cloudwatchlogs.DescribeMetricFiltersInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DescribeMetricFiltersOutput, error) {
	if m.describeMetricFiltersFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.describeMetricFiltersFunc(ctx, params, optFns...)
}

func (m *mockLogs) PutMetricFilter(ctx context.Context, params *cloudwatchlogs.PutMetricFilterInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.PutMetricFilterOutput, error) {
	if m.putMetricFilterFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.putMetricFilterFunc(ctx, params, optFns...)
}

func (m *mockLogs) DeleteMetricFilter(ctx context.Context, params *cloudwatchlogs.DeleteMetricFilterInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DeleteMetricFilterOutput, error) {
	if m.deleteMetricFilterFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.deleteMetricFilterFunc(ctx, params, optFns...)
}

type mockBudgets struct {
	describeBudgetFunc  func(ctx context.Context, params *budgets.DescribeBudgetInput, optFns ...func(*budgets.Options)) (*budgets.DescribeBudgetOutput, error)
	describeBudgetsFunc func(ctx context.Context, params *budgets.DescribeBudgetsInput, optFns ...func(*budgets.Options)) (*budgets.DescribeBudgetsOutput, error)
	createBudgetFunc    func(ctx context.Context, params *budgets.CreateBudgetInput, optFns ...func(*budgets.Options)) (*budgets.CreateBudgetOutput, error)
	deleteBudgetFunc    func(ctx context.Context, params *budgets.DeleteBudgetInput, optFns ...func(*budgets.Options)) (*budgets.DeleteBudgetOutput, error)
}

func (m *mockBudgets) DescribeBudget(ctx context.Context, params *budgets.DescribeBudgetInput, optFns ...func(*budgets.Options)) (*budgets.DescribeBudgetOutput, error) {
	if m.describeBudgetFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.describeBudgetFunc(ctx, params, optFns...)
}

func (m *mockBudgets) DescribeBudgets(ctx context.Context, params *budgets.DescribeBudgetsInput, optFns ...func(*budgets.Options)) (*budgets.DescribeBudgetsOutput, error) {
	if m.describeBudgetsFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.describeBudgetsFunc(ctx, params, optFns...)
}

func (m *mockBudgets) CreateBudget(ctx context.Context, params *budgets.CreateBudgetInput, optFns ...func(*budgets.Options)) (*budgets.CreateBudgetOutput, error) {
	if m.createBudgetFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.createBudgetFunc(ctx, params, optFns...)
}

func (m *mockBudgets) DeleteBudget(ctx context.Context, params *budgets.DeleteBudgetInput, optFns ...func(*budgets.Options)) (*budgets.DeleteBudgetOutput, error) {
	if m.deleteBudgetFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.deleteBudgetFunc(ctx, params, optFns...)
}

type mockSSM struct {
	sendCommandFunc          func(ctx context.Context, params *ssm.SendCommandInput, optFns ...func(*ssm.Options)) (*ssm.SendCommandOutput, error)
	getCommandInvocationFunc func(ctx context.Context, params *ssm.GetCommandInvocationInput, optFns ...func(*ssm.Options)) (*ssm.GetCommandInvocationOutput, error)
	getParameterFunc         func(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

func (m *mockSSM) SendCommand(ctx context.Context, params *ssm.SendCommandInput, optFns ...func(*ssm.Options)) (*ssm.SendCommandOutput, error) {
	if m.sendCommandFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.sendCommandFunc(ctx, params, optFns...)
}

func (m *mockSSM) GetCommandInvocation(ctx context.Context, params *ssm.GetCommandInvocationInput, optFns ...func(*ssm.Options)) (*ssm.GetCommandInvocationOutput, error) {
	if m.getCommandInvocationFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.getCommandInvocationFunc(ctx, params, optFns...)
}

func (m *mockSSM) GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	if m.getParameterFunc == nil {
		return nil, errUnexpectedCall
	}
	return m.getParameterFunc(ctx, params, optFns...)
}
