package plan

import (
	"fmt"
	"log"
	"math"
	"sync"

	"golang.org/x/text/language"

	"GrowthCalc/internal/calculator"
	"GrowthCalc/internal/i18n"
	"GrowthCalc/internal/model"
)

// DefaultMaxYears bounds the horizon accepted from the calculator form.
const DefaultMaxYears = 100

// Store holds the saved calculator plan with concurrency safety.
type Store struct {
	mu       sync.Mutex
	state    *model.Plan
	filePath string
	maxYears int
}

// NewStore creates a Store, loading state from disk or seeding it from defaults.
// maxYears caps the horizon of every plan it accepts; values <= 0 select
// DefaultMaxYears.
func NewStore(filePath string, defaults model.Plan, maxYears int) (*Store, error) {
	if maxYears <= 0 {
		maxYears = DefaultMaxYears
	}

	state, ok, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}
	if !ok {
		*state = defaults
		log.Printf("[INFO] no saved plan at %s, using defaults", filePath)
	}
	if state.Locale == "" {
		state.Locale = i18n.Code(i18n.Default())
	}
	if err := Validate(*state, maxYears); err != nil {
		return nil, fmt.Errorf("saved plan: %w", err)
	}

	s := &Store{state: state, filePath: filePath, maxYears: maxYears}
	if err := s.save(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns a copy of the current plan.
func (s *Store) Get() model.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.state
}

// Replace validates and stores p. An empty locale keeps the current one.
func (s *Store) Replace(p model.Plan) (model.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Locale == "" {
		p.Locale = s.state.Locale
	}
	if err := Validate(p, s.maxYears); err != nil {
		return model.Plan{}, err
	}
	prev := *s.state
	*s.state = p
	if err := s.save(); err != nil {
		*s.state = prev
		return model.Plan{}, fmt.Errorf("save plan: %w", err)
	}
	return *s.state, nil
}

// SetLocale switches the plan's language preference.
func (s *Store) SetLocale(code string) (language.Tag, error) {
	tag, ok := i18n.Lookup(code)
	if !ok {
		return language.Tag{}, fmt.Errorf("unsupported locale %q", code)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Locale = i18n.Code(tag)
	if err := s.save(); err != nil {
		log.Printf("[ERROR] failed to save plan after locale change: %v", err)
	}
	return tag, nil
}

// Check validates form values against the store's limits without saving them.
func (s *Store) Check(p model.Plan) error {
	return Validate(p, s.maxYears)
}

func (s *Store) save() error {
	return SaveState(s.filePath, s.state)
}

// Validate applies the calculator form ranges: non-negative amounts,
// a percent rate within [0, 100] and between 0 and maxYears years.
// maxYears is itself capped at calculator.MaxYears.
func Validate(p model.Plan, maxYears int) error {
	maxYears = min(maxYears, calculator.MaxYears)
	if math.IsNaN(p.InitialInvestment) || math.IsInf(p.InitialInvestment, 0) || p.InitialInvestment < 0 {
		return &calculator.InvalidInputError{Field: "initialInvestment", Reason: "must be a finite amount >= 0"}
	}
	if math.IsNaN(p.MonthlyInvestment) || math.IsInf(p.MonthlyInvestment, 0) || p.MonthlyInvestment < 0 {
		return &calculator.InvalidInputError{Field: "monthlyInvestment", Reason: "must be a finite amount >= 0"}
	}
	if math.IsNaN(p.ReturnRate) || p.ReturnRate < 0 || p.ReturnRate > 100 {
		return &calculator.InvalidInputError{Field: "returnRate", Reason: "must be between 0 and 100"}
	}
	if p.Years < 0 || p.Years > maxYears {
		return &calculator.InvalidInputError{Field: "years", Reason: fmt.Sprintf("must be between 0 and %d", maxYears)}
	}
	if p.Locale != "" {
		if _, ok := i18n.Lookup(p.Locale); !ok {
			return &calculator.InvalidInputError{Field: "locale", Reason: "is not supported"}
		}
	}
	return nil
}

// Input converts form values into a projection input.
func Input(p model.Plan) (model.ProjectionInput, error) {
	months, err := calculator.YearsToMonths(p.Years)
	if err != nil {
		return model.ProjectionInput{}, err
	}
	return model.ProjectionInput{
		InitialBalance:      p.InitialInvestment,
		MonthlyContribution: p.MonthlyInvestment,
		AnnualRate:          calculator.PercentToRate(p.ReturnRate),
		TotalMonths:         months,
	}, nil
}

// Tag returns the plan's language tag, or the default if unset.
func Tag(p model.Plan) language.Tag {
	if tag, ok := i18n.Lookup(p.Locale); ok {
		return tag
	}
	return i18n.Default()
}
