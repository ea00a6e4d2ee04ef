package domain

import (
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the calendar date format used for birth dates in data files and output.
const DateLayout = "2006-01-02"

// Person is an immutable record in the People collection.
// Pointer fields are optional: nil means unknown, never zero.
type Person struct {
	ID          int       `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Age         *int      `json:"age"`
	Height      *float64  `json:"height"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	HairColorID *int      `json:"hairColorId"`
}

// Clone returns a copy that shares no optional values with p.
func (p Person) Clone() Person {
	if p.Age != nil {
		p.Age = IntPtr(*p.Age)
	}
	if p.Height != nil {
		p.Height = FloatPtr(*p.Height)
	}
	if p.HairColorID != nil {
		p.HairColorID = IntPtr(*p.HairColorID)
	}
	return p
}

// FirstLastName returns "First Last".
func (p Person) FirstLastName() string {
	return p.FirstName + " " + p.LastName
}

// LastFirstName returns "Last, First".
func (p Person) LastFirstName() string {
	return p.LastName + ", " + p.FirstName
}

// Display is the short form used when a single person is printed.
func (p Person) Display() string {
	return fmt.Sprintf("%s (%d)", p.FirstLastName(), p.ID)
}

func (p Person) String() string {
	return fmt.Sprintf("%d: %s, Age: %s, Height: %s, Born: %s",
		p.ID, p.FirstLastName(), FormatInt(p.Age), FormatFloat(p.Height),
		p.DateOfBirth.Format(DateLayout))
}

// HairColor is an entry of the hair color reference table.
type HairColor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MpaaRating is an entry of the film rating reference table.
type MpaaRating struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// PersonListItem is the flat projection of a Person used by list views.
type PersonListItem struct {
	ID        int
	FirstName string
	LastName  string
}

func (p PersonListItem) String() string {
	return strconv.Itoa(p.ID) + ": " + p.FirstName + " " + p.LastName
}

// Dataset is the full content of an object store.
type Dataset struct {
	People      []Person     `json:"people"`
	HairColors  []HairColor  `json:"hairColors"`
	MpaaRatings []MpaaRating `json:"mpaaRatings"`
}

// Placeholders used when an optional value or a reference lookup has no result.
const (
	NullText = "(null)"
	NoneText = "(None)"
)

// FormatInt renders an optional int, using NullText when absent.
func FormatInt(v *int) string {
	if v == nil {
		return NullText
	}
	return strconv.Itoa(*v)
}

// FormatFloat renders an optional float with the shortest exact form, using NullText when absent.
func FormatFloat(v *float64) string {
	if v == nil {
		return NullText
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// IntPtr and FloatPtr are helpers for building records with optional fields.
func IntPtr(v int) *int { return &v }

func FloatPtr(v float64) *float64 { return &v }
