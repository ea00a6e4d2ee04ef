// Package inspect evaluates JSONPath expressions against a JSON snapshot of a dataset.
package inspect

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/querylab/internal/domain"
)

// Eval marshals ds to JSON and returns the value selected by expr.
// Field names are those of the JSON tags on the domain types (people[*].firstName, ...).
func Eval(ds domain.Dataset, expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, &domain.OpError{
			Op:   "inspect.eval",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("empty jsonpath expression: %w", domain.ErrInvalidConfig),
		}
	}

	doc, err := toDocument(ds)
	if err != nil {
		return nil, &domain.OpError{Op: "inspect.marshal", Kind: domain.KindExecution, Err: err}
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "inspect.eval",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("jsonpath %q: %w", expr, err),
		}
	}
	if isEmptyMatch(val) {
		return nil, &domain.OpError{
			Op:   "inspect.eval",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("jsonpath %q: no value found: %w", expr, domain.ErrNotFound),
		}
	}
	return val, nil
}

// Format renders a result as indented JSON.
func Format(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func toDocument(ds domain.Dataset) (any, error) {
	b, err := json.Marshal(ds)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, errors.Join(errors.New("decode snapshot"), err)
	}
	return doc, nil
}

// isEmptyMatch reports a filter or wildcard that selected nothing. A null
// leaf is a value: it is an unknown field, not a missing path.
func isEmptyMatch(v any) bool {
	arr, ok := v.([]any)
	return ok && len(arr) == 0
}
