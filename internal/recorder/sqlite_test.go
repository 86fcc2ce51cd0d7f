package recorder

import (
	"path/filepath"
	"testing"

	"GrowthCalc/internal/calculator"
	"GrowthCalc/internal/model"
)

func TestSQLiteRecorder_RoundTrip(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "db", "history.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer r.Close()

	in := model.ProjectionInput{InitialBalance: 1000, MonthlyContribution: 1000, AnnualRate: 0.085, TotalMonths: 24}
	res, err := calculator.Project(in)
	if err != nil {
		t.Fatalf("project: %v", err)
	}

	first := &ProjectionRecord{Source: SourceAPI, Input: in, Result: res}
	if err := r.RecordProjection(first); err != nil {
		t.Fatalf("record: %v", err)
	}
	if first.ID == 0 || first.CreatedAt.IsZero() {
		t.Errorf("expected ID and CreatedAt to be filled, got %+v", first)
	}
	second := &ProjectionRecord{Source: SourceSchedule, Input: model.ProjectionInput{TotalMonths: 0}}
	if err := r.RecordProjection(second); err != nil {
		t.Fatalf("record: %v", err)
	}

	recent, err := r.RecentProjections(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recent))
	}
	if recent[0].Source != SourceSchedule {
		t.Errorf("expected newest first, got %s", recent[0].Source)
	}
	got := recent[1]
	if got.Input != in {
		t.Errorf("expected input %+v, got %+v", in, got.Input)
	}
	if got.Result.TotalValue != res.TotalValue || got.Result.TotalContributions != res.TotalContributions {
		t.Errorf("expected totals %v/%v, got %v/%v", res.TotalValue, res.TotalContributions,
			got.Result.TotalValue, got.Result.TotalContributions)
	}

	var years int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM projection_years WHERE projection_id = ?`, first.ID).Scan(&years); err != nil {
		t.Fatalf("count years: %v", err)
	}
	if years != 2 {
		t.Errorf("expected 2 yearly rows, got %d", years)
	}

	limited, err := r.RecentProjections(1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected limit to apply, got %d", len(limited))
	}
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	if err := r.RecordProjection(&ProjectionRecord{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	recs, err := r.RecentProjections(5)
	if err != nil || len(recs) != 0 {
		t.Errorf("expected empty history, got %v, %v", recs, err)
	}
}
