package inspect

import (
	"strings"
	"testing"

	"github.com/aalvaropc/querylab/internal/domain"
	"github.com/aalvaropc/querylab/internal/infra/memstore"
)

func TestEval_Values(t *testing.T) {
	ds := memstore.New().Snapshot()

	cases := []struct {
		expr string
		want string
	}{
		{"$.mpaaRatings[0].code", `"G"`},
		{"$.people[1].firstName", `"Ann"`},
		{"$.people[9].age", "null"},
		{"$.people[3].hairColorId", "null"},
		{"$.hairColors[?(@.id == 2)].name", "[\n  \"Brown\"\n]"},
	}
	for _, c := range cases {
		t.Run(c.expr, func(t *testing.T) {
			v, err := Eval(ds, c.expr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, err := Format(v)
			if err != nil {
				t.Fatalf("format: %v", err)
			}
			if got != c.want {
				t.Fatalf("expected %s, got %s", c.want, got)
			}
		})
	}
}

func TestEval_Wildcard(t *testing.T) {
	v, err := Eval(memstore.New().Snapshot(), "$.people[*].lastName")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr, ok := v.([]any)
	if !ok || len(arr) != 10 {
		t.Fatalf("expected 10 last names, got %#v", v)
	}
}

func TestEval_EmptyResultIsNotFound(t *testing.T) {
	_, err := Eval(memstore.New().Snapshot(), "$.hairColors[?(@.id == 42)].name")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestEval_Errors(t *testing.T) {
	ds := memstore.New().Snapshot()

	if _, err := Eval(ds, "   "); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config for empty expr, got %v", err)
	}

	_, err := Eval(ds, "$.people[")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config for bad expr, got %v", err)
	}
	if !strings.Contains(err.Error(), "$.people[") {
		t.Fatalf("expected expression in error, got %v", err)
	}
}
