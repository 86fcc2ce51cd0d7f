package service

import (
	"context"
	"encoding/json"
	"log"

	"GrowthCalc/internal/cache"
	"GrowthCalc/internal/calculator"
	"GrowthCalc/internal/model"
	"GrowthCalc/internal/recorder"
)

// ProjectionService runs the projection engine behind a result cache and
// records every projection to history.
type ProjectionService struct {
	cache    cache.Cache
	recorder recorder.Recorder
}

// NewProjectionService creates a new ProjectionService.
func NewProjectionService(c cache.Cache, rec recorder.Recorder) *ProjectionService {
	return &ProjectionService{cache: c, recorder: rec}
}

// Project returns the projection for in. Engine validation errors are
// returned unchanged; cache and history failures are only logged.
func (s *ProjectionService) Project(ctx context.Context, in model.ProjectionInput, source recorder.Source) (model.ProjectionResult, error) {
	key := cache.Key(in)

	result, hit := s.lookup(ctx, key)
	if !hit {
		var err error
		result, err = calculator.Project(in)
		if err != nil {
			return model.ProjectionResult{}, err
		}
		s.store(ctx, key, result)
	}

	if err := s.recorder.RecordProjection(&recorder.ProjectionRecord{
		Source: source,
		Input:  in,
		Result: result,
	}); err != nil {
		log.Printf("[ERROR] record projection: %v", err)
	}
	return result, nil
}

func (s *ProjectionService) lookup(ctx context.Context, key string) (model.ProjectionResult, bool) {
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return model.ProjectionResult{}, false
	}
	var result model.ProjectionResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		log.Printf("[WARN] discarding corrupt cache entry %s: %v", key, err)
		return model.ProjectionResult{}, false
	}
	return result, true
}

func (s *ProjectionService) store(ctx context.Context, key string, result model.ProjectionResult) {
	data, err := json.Marshal(result)
	if err != nil {
		// Overflowed projections (±Inf) have no JSON form.
		log.Printf("[WARN] not caching projection %s: %v", key, err)
		return
	}
	if err := s.cache.Set(ctx, key, string(data)); err != nil {
		log.Printf("[WARN] cache projection: %v", err)
	}
}
