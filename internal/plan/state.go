package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"GrowthCalc/internal/model"
)

// LoadState reads the saved plan from a JSON file. ok is false if the file doesn't exist.
func LoadState(filePath string) (p *model.Plan, ok bool, err error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.Plan{}, false, nil
		}
		return nil, false, err
	}
	var state model.Plan
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, false, fmt.Errorf("decode plan %s: %w", filePath, err)
	}
	return &state, true, nil
}

// SaveState writes the plan to a JSON file, creating the parent directory.
func SaveState(filePath string, state *model.Plan) error {
	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create plan dir: %w", err)
		}
	}
	return os.WriteFile(filePath, data, 0644)
}
