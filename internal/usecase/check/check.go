// Package check verifies the algebraic properties of the query operations
// against whatever dataset a store holds.
package check

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/aalvaropc/querylab/internal/domain"
	"github.com/aalvaropc/querylab/internal/ports"
	"github.com/aalvaropc/querylab/internal/query"
)

// Evaluate runs every property check against the store. Results are in a fixed order.
func Evaluate(store ports.ObjectStore) []domain.CheckResult {
	return []domain.CheckResult{
		SortIdempotent(store),
		FilterConjunction(store),
		GroupStablePartition(store),
		AverageOfAbsent(store),
		CountMatchesSnapshot(store),
		MaxOfEmpty(store),
	}
}

func pass(name, msg string) domain.CheckResult {
	return domain.CheckResult{Name: name, Passed: true, Message: msg}
}

func fail(name, msg string) domain.CheckResult {
	return domain.CheckResult{Name: name, Passed: false, Message: msg}
}

func idsOf(people []domain.Person) []int {
	out := make([]int, len(people))
	for i, p := range people {
		out[i] = p.ID
	}
	return out
}

func formatIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func SortIdempotent(store ports.ObjectStore) domain.CheckResult {
	const name = "sort.idempotent"

	key := query.Optional(func(p domain.Person) *int { return p.Age })
	last := query.Asc(func(p domain.Person) string { return p.LastName })

	once := query.OrderBy(store.People(), key).ThenBy(last).ToSlice()
	twice := query.OrderBy(query.From(once), key).ThenBy(last).ToSlice()

	if !slices.Equal(idsOf(once), idsOf(twice)) {
		return fail(name, fmt.Sprintf("re-sorting changed order: %s -> %s", formatIDs(idsOf(once)), formatIDs(idsOf(twice))))
	}
	return pass(name, fmt.Sprintf("%d people keep their order when sorted twice", len(once)))
}

func FilterConjunction(store ports.ObjectStore) domain.CheckResult {
	const name = "where.conjunction"

	prefix := func(p domain.Person) bool { return query.HasPrefixFold(p.FirstName, "s") }
	senior := func(p domain.Person) bool { return p.Age != nil && *p.Age > 55 }

	chained := query.ToSlice(query.Where(query.Where(store.People(), prefix), senior))
	single := query.ToSlice(query.Where(store.People(), query.And(prefix, senior)))

	if !slices.Equal(idsOf(chained), idsOf(single)) {
		return fail(name, fmt.Sprintf("chained %s != conjunctive %s", formatIDs(idsOf(chained)), formatIDs(idsOf(single))))
	}
	return pass(name, fmt.Sprintf("chained and conjunctive filters both select %s", formatIDs(idsOf(single))))
}

func GroupStablePartition(store ports.ObjectStore) domain.CheckResult {
	const name = "group.stable_partition"

	key := func(p domain.Person) query.Opt[int] { return query.PtrKey(p.HairColorID) }
	groups := query.GroupBy(store.People(), key)
	flat := query.ToSlice(query.Flatten(groups))

	rank := map[query.Opt[int]]int{}
	for i, g := range groups {
		rank[g.Key] = i
	}
	want := query.OrderBy(store.People(), query.Asc(func(p domain.Person) int { return rank[key(p)] })).ToSlice()

	if !slices.Equal(idsOf(flat), idsOf(want)) {
		return fail(name, fmt.Sprintf("flattened groups %s differ from stable partition %s", formatIDs(idsOf(flat)), formatIDs(idsOf(want))))
	}
	return pass(name, fmt.Sprintf("%d groups flatten to a stable partition", len(groups)))
}

func AverageOfAbsent(store ports.ObjectStore) domain.CheckResult {
	const name = "average.absent"

	unknown := query.Where(store.People(), func(p domain.Person) bool { return p.Height == nil })
	if v, ok := query.Average(unknown, func(p domain.Person) *float64 { return p.Height }); ok {
		return fail(name, fmt.Sprintf("expected no data, got %v", v))
	}
	return pass(name, "average over absent heights reports no data")
}

func CountMatchesSnapshot(store ports.ObjectStore) domain.CheckResult {
	const name = "count.people"

	got := query.Count(store.People())
	want := len(store.Snapshot().People)
	if got != want {
		return fail(name, fmt.Sprintf("expected %d, got %d", want, got))
	}
	return pass(name, fmt.Sprintf("count %d", got))
}

func MaxOfEmpty(store ports.ObjectStore) domain.CheckResult {
	const name = "max.empty"

	none := query.Where(store.People(), func(domain.Person) bool { return false })
	_, err := query.MaxFunc(none, func(p domain.Person) time.Time { return p.DateOfBirth }, time.Time.Compare)
	if !domain.IsKind(err, domain.KindEmptySequence) {
		return fail(name, fmt.Sprintf("expected empty sequence error, got %v", err))
	}
	return pass(name, "max over no people fails with empty sequence")
}
