package awscloud

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
	budgetstypes "github.com/aws/aws-sdk-go-v2/service/budgets/types"
)

// BudgetExists reports whether the named monthly budget exists.
func (c *Cloud) BudgetExists(ctx context.Context, name string) (bool, map[string]string, error) {
	out, err := c.Budgets.DescribeBudget(ctx, &budgets.DescribeBudgetInput{
		AccountId:  aws.String(c.AccountID),
		BudgetName: aws.String(name),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil, nil
		}
		return false, nil, fmt.Errorf("failed to describe budget %s: %w", name, err)
	}
	attrs := map[string]string{"name": name}
	if out.Budget != nil && out.Budget.BudgetLimit != nil {
		attrs["limitUSD"] = aws.ToString(out.Budget.BudgetLimit.Amount)
	}
	return true, attrs, nil
}

// CreateBudget creates a monthly cost budget capped at the configured
// amount.
func (c *Cloud) CreateBudget(ctx context.Context, name string, monthlyUSD float64) (map[string]string, error) {
	amount := strconv.FormatFloat(monthlyUSD, 'f', 2, 64)
	_, err := c.Budgets.CreateBudget(ctx, &budgets.CreateBudgetInput{
		AccountId: aws.String(c.AccountID),
		Budget: &budgetstypes.Budget{
			BudgetName: aws.String(name),
			BudgetType: budgetstypes.BudgetTypeCost,
			TimeUnit:   budgetstypes.TimeUnitMonthly,
			BudgetLimit: &budgetstypes.Spend{
				Amount: aws.String(amount),
				Unit:   aws.String("USD"),
			},
		},
	})
	if err != nil {
		if isAlreadyExists(err) {
			return map[string]string{"name": name, "limitUSD": amount}, nil
		}
		return nil, fmt.Errorf("failed to create budget %s: %w", name, err)
	}
	return map[string]string{"name": name, "limitUSD": amount}, nil
}

// DeleteBudget removes the named budget.
func (c *Cloud) DeleteBudget(ctx context.Context, name string) (bool, error) {
	exists, _, err := c.BudgetExists(ctx, name)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if _, err := c.Budgets.DeleteBudget(ctx, &budgets.DeleteBudgetInput{
		AccountId:  aws.String(c.AccountID),
		BudgetName: aws.String(name),
	}); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete budget %s: %w", name, err)
	}
	return true, nil
}
