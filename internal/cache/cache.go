package cache

import (
	"context"
	"fmt"
	"math"

	"GrowthCalc/internal/model"
)

// Cache stores serialized projection results keyed by input.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}

// Key builds a deterministic cache key from the exact bit patterns of the
// input, so inputs that differ only in the last ulp never collide.
func Key(in model.ProjectionInput) string {
	return fmt.Sprintf("projection:%x:%x:%x:%d",
		math.Float64bits(in.InitialBalance),
		math.Float64bits(in.MonthlyContribution),
		math.Float64bits(in.AnnualRate),
		in.TotalMonths)
}
