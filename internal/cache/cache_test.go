package cache

import (
	"context"
	"math"
	"testing"

	"GrowthCalc/internal/model"
)

func TestKey_DistinguishesInputs(t *testing.T) {
	base := model.ProjectionInput{InitialBalance: 1000, MonthlyContribution: 100, AnnualRate: 0.085, TotalMonths: 120}
	if Key(base) != Key(base) {
		t.Fatal("expected stable key")
	}
	variants := []model.ProjectionInput{
		{InitialBalance: math.Nextafter(1000, 2000), MonthlyContribution: 100, AnnualRate: 0.085, TotalMonths: 120},
		{InitialBalance: 1000, MonthlyContribution: 101, AnnualRate: 0.085, TotalMonths: 120},
		{InitialBalance: 1000, MonthlyContribution: 100, AnnualRate: 0.086, TotalMonths: 120},
		{InitialBalance: 1000, MonthlyContribution: 100, AnnualRate: 0.085, TotalMonths: 121},
	}
	for _, v := range variants {
		if Key(v) == Key(base) {
			t.Errorf("expected different key for %+v", v)
		}
	}
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	if _, ok := c.Get(ctx, "missing"); ok {
		t.Error("expected miss")
	}
	if err := c.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, ok := c.Get(ctx, "k"); !ok || v != "v" {
		t.Errorf("expected hit v, got %q %v", v, ok)
	}
}
