package lab

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/aalvaropc/querylab/internal/domain"
	"github.com/aalvaropc/querylab/internal/ports"
	"github.com/aalvaropc/querylab/internal/query"
)

const (
	namePrefix = "s"
	seniorAge  = 55
	maxHeight  = 64.0
)

var (
	age    = func(p domain.Person) *int { return p.Age }
	height = func(p domain.Person) *float64 { return p.Height }
)

func byLastName() query.Comparer[domain.Person] {
	return query.Collated(func(p domain.Person) string { return p.LastName }, language.English)
}

func byFirstName() query.Comparer[domain.Person] {
	return query.Collated(func(p domain.Person) string { return p.FirstName }, language.English)
}

func hasNamePrefix(p domain.Person) bool { return query.HasPrefixFold(p.FirstName, namePrefix) }

func isSenior(p domain.Person) bool { return p.Age != nil && *p.Age > seniorAge }

func personLines(people []domain.Person) []string {
	return query.ToSlice(query.Select(query.From(people), domain.Person.String))
}

func stepPeople(s ports.ObjectStore) ([]string, error) {
	return personLines(query.ToSlice(s.People())), nil
}

func stepWherePrefix(s ports.ObjectStore) ([]string, error) {
	return personLines(query.ToSlice(query.Where(s.People(), hasNamePrefix))), nil
}

func stepWhereChained(s ports.ObjectStore) ([]string, error) {
	seq := query.Where(query.Where(s.People(), hasNamePrefix), isSenior)
	return personLines(query.ToSlice(seq)), nil
}

func stepWhereSingle(s ports.ObjectStore) ([]string, error) {
	seq := query.Where(s.People(), func(p domain.Person) bool {
		return hasNamePrefix(p) && p.Age != nil && *p.Age > seniorAge
	})
	return personLines(query.ToSlice(seq)), nil
}

func stepWhereHeight(s ports.ObjectStore) ([]string, error) {
	seq := query.Where(s.People(), func(p domain.Person) bool {
		return p.Height == nil || *p.Height <= maxHeight
	})
	return personLines(query.ToSlice(seq)), nil
}

func stepSortAge(s ports.ObjectStore) ([]string, error) {
	return personLines(query.OrderBy(s.People(), query.Optional(age)).ToSlice()), nil
}

func stepSortAgeName(s ports.ObjectStore) ([]string, error) {
	sorted := query.OrderBy(s.People(), query.Optional(age)).
		ThenBy(byLastName()).
		ThenBy(byFirstName()).
		ToSlice()
	return personLines(sorted), nil
}

func stepSortHeight(s ports.ObjectStore) ([]string, error) {
	sorted := query.OrderBy(s.People(), query.HasValue(height)).
		ThenByDescending(query.Optional(height)).
		ThenBy(byLastName()).
		All()

	lines := []string{}
	for p := range sorted {
		lines = append(lines, p.FirstLastName()+" - Height: "+domain.FormatFloat(p.Height))
	}
	return lines, nil
}

func stepSelectCodes(s ports.ObjectStore) ([]string, error) {
	return query.ToSlice(query.Select(s.MpaaRatings(), func(r domain.MpaaRating) string { return r.Code })), nil
}

func stepSelectListItem(s ports.ObjectStore) ([]string, error) {
	items := query.Select(s.People(), func(p domain.Person) domain.PersonListItem {
		return domain.PersonListItem{ID: p.ID, FirstName: p.FirstName, LastName: p.LastName}
	})
	return query.ToSlice(query.Select(items, domain.PersonListItem.String)), nil
}

func stepSelectAnon(s ports.ObjectStore) ([]string, error) {
	type idName struct {
		ID        int
		FirstName string
		LastName  string
	}
	rows := query.Select(s.People(), func(p domain.Person) idName {
		return idName{ID: p.ID, FirstName: p.FirstName, LastName: p.LastName}
	})
	return query.ToSlice(query.Select(rows, func(r idName) string { return fmt.Sprintf("%+v", r) })), nil
}

func stepSelectBirthdates(s ports.ObjectStore) ([]string, error) {
	type birthdate struct {
		LastFirstName string
		DateOfBirth   string
	}
	rows := query.Select(s.People(), func(p domain.Person) birthdate {
		return birthdate{LastFirstName: p.LastFirstName(), DateOfBirth: p.DateOfBirth.Format(domain.DateLayout)}
	})
	return query.ToSlice(query.Select(rows, func(r birthdate) string { return fmt.Sprintf("%+v", r) })), nil
}

func stepCombo(s ports.ObjectStore) ([]string, error) {
	type nameHeight struct {
		FirstName string
		LastName  string
		Height    float64
	}
	withHeight := query.Where(s.People(), func(p domain.Person) bool { return p.Height != nil })
	sorted := query.OrderBy(withHeight, byFirstName()).ThenBy(byLastName()).All()
	rows := query.Select(sorted, func(p domain.Person) nameHeight {
		return nameHeight{FirstName: p.FirstName, LastName: p.LastName, Height: *p.Height}
	})

	lines := []string{}
	for r := range rows {
		lines = append(lines, fmt.Sprintf("%s %s : %s", r.FirstName, r.LastName, domain.FormatFloat(&r.Height)))
	}
	return lines, nil
}

func nameContains(sub string) func(domain.Person) bool {
	return func(p domain.Person) bool {
		return strings.Contains(strings.ToUpper(p.FirstLastName()), sub)
	}
}

func stepElement(s ports.ObjectStore) ([]string, error) {
	firstS, err := query.First(s.People(), nameContains("S"))
	if err != nil {
		return nil, err
	}
	lines := []string{"First S name: " + firstS.Display()}

	zzz := domain.NoneText
	if p, ok := query.FirstOrDefault(s.People(), nameContains("ZZZ")); ok {
		zzz = p.Display()
	}
	lines = append(lines, "First ZZZ name: "+zzz)

	if p, err := query.First(s.People(), nameContains("ZZZ")); err != nil {
		lines = append(lines, "First ZZZ name (strict): error: "+err.Error())
	} else {
		lines = append(lines, "First ZZZ name (strict): "+p.Display())
	}
	return lines, nil
}

func stepGroup(s ports.ObjectStore) ([]string, error) {
	groups := query.GroupBy(s.People(), func(p domain.Person) query.Opt[int] { return query.PtrKey(p.HairColorID) })

	lines := []string{}
	for _, g := range groups {
		name := domain.NoneText
		if hc, err := s.HairColor(g.Key.Ptr()); err == nil {
			name = hc.Name
		}
		lines = append(lines, fmt.Sprintf("Hair Color: %s\t(%d)", name, g.Len()))
		for _, p := range g.Items {
			lines = append(lines, "\t"+p.String())
		}
	}
	return lines, nil
}

func stepAggregate(s ports.ObjectStore) ([]string, error) {
	latest, err := query.MaxFunc(s.People(), func(p domain.Person) time.Time { return p.DateOfBirth }, time.Time.Compare)
	if err != nil {
		return nil, err
	}

	avg := "no data"
	if v, ok := query.Average(s.People(), height); ok {
		avg = fmt.Sprintf("%.2f", v)
	}

	return []string{
		"Latest Birthdate: " + latest.Format(domain.DateLayout),
		"Avg Height: " + avg,
		fmt.Sprintf("Count: %d", query.Count(s.People())),
	}, nil
}
