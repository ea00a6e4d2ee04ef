package memstore

import (
	"time"

	"github.com/aalvaropc/querylab/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// builtinDataset is the fixed data the lab ships with. Hair color 9 has no
// entry on purpose so the lookup fallback shows up in the grouping step.
func builtinDataset() domain.Dataset {
	i, f := domain.IntPtr, domain.FloatPtr

	return domain.Dataset{
		People: []domain.Person{
			{ID: 1, FirstName: "Sam", LastName: "Smith", Age: i(60), Height: f(70), DateOfBirth: date(1964, time.February, 11), HairColorID: i(2)},
			{ID: 2, FirstName: "Ann", LastName: "Jones", Age: i(30), Height: f(62), DateOfBirth: date(1994, time.August, 20), HairColorID: i(1)},
			{ID: 3, FirstName: "Stu", LastName: "Vance", Age: i(70), DateOfBirth: date(1954, time.May, 5), HairColorID: i(3)},
			{ID: 4, FirstName: "sally", LastName: "Rivera", Age: i(57), Height: f(64), DateOfBirth: date(1967, time.September, 30)},
			{ID: 5, FirstName: "Mark", LastName: "Chen", Height: f(71.5), DateOfBirth: date(1985, time.December, 1), HairColorID: i(2)},
			{ID: 6, FirstName: "Beth", LastName: "Adams", Age: i(42), DateOfBirth: date(1982, time.March, 14), HairColorID: i(4)},
			{ID: 7, FirstName: "Steve", LastName: "Adams", Age: i(42), Height: f(69), DateOfBirth: date(1982, time.January, 7), HairColorID: i(2)},
			{ID: 8, FirstName: "Olga", LastName: "Petrova", Age: i(35), Height: f(61), DateOfBirth: date(1989, time.June, 18), HairColorID: i(1)},
			{ID: 9, FirstName: "Sue", LastName: "Kim", Age: i(25), DateOfBirth: date(1999, time.November, 23), HairColorID: i(9)},
			{ID: 10, FirstName: "Tom", LastName: "Baker", DateOfBirth: date(1990, time.April, 2)},
		},
		HairColors: []domain.HairColor{
			{ID: 1, Name: "Black"},
			{ID: 2, Name: "Brown"},
			{ID: 3, Name: "Gray"},
			{ID: 4, Name: "Blonde"},
			{ID: 5, Name: "Red"},
		},
		MpaaRatings: []domain.MpaaRating{
			{Code: "G", Description: "General Audiences"},
			{Code: "PG", Description: "Parental Guidance Suggested"},
			{Code: "PG-13", Description: "Parents Strongly Cautioned"},
			{Code: "R", Description: "Restricted"},
			{Code: "NC-17", Description: "Adults Only"},
		},
	}
}
