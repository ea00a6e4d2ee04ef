package check

import (
	"testing"

	"github.com/aalvaropc/querylab/internal/domain"
	"github.com/aalvaropc/querylab/internal/infra/memstore"
)

func TestEvaluate_BuiltinDatasetPasses(t *testing.T) {
	results := Evaluate(memstore.New())
	if len(results) != 6 {
		t.Fatalf("expected 6 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("%s failed: %s", r.Name, r.Message)
		}
		if r.Message == "" {
			t.Errorf("%s: expected message", r.Name)
		}
	}
}

func TestEvaluate_EmptyDatasetPasses(t *testing.T) {
	store, err := memstore.FromDataset(domain.Dataset{}, "empty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range Evaluate(store) {
		if !r.Passed {
			t.Errorf("%s failed on empty data: %s", r.Name, r.Message)
		}
	}
}

func TestFilterConjunction_Message(t *testing.T) {
	r := FilterConjunction(memstore.New())
	if !r.Passed {
		t.Fatalf("expected pass: %s", r.Message)
	}
	if r.Message != "chained and conjunctive filters both select [1 3 4]" {
		t.Fatalf("unexpected message %q", r.Message)
	}
}

func TestGroupStablePartition_Message(t *testing.T) {
	r := GroupStablePartition(memstore.New())
	if r.Message != "6 groups flatten to a stable partition" {
		t.Fatalf("unexpected message %q", r.Message)
	}
}
