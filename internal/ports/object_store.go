package ports

import (
	"iter"

	"github.com/aalvaropc/querylab/internal/domain"
)

// ObjectStore exposes the read-only collections a lab runs against.
type ObjectStore interface {
	People() iter.Seq[domain.Person]
	HairColors() iter.Seq[domain.HairColor]
	MpaaRatings() iter.Seq[domain.MpaaRating]

	// HairColor resolves a hair color reference. It fails with KindInvalidKey
	// when id is nil or has no entry.
	HairColor(id *int) (domain.HairColor, error)

	// Snapshot returns a copy of every collection.
	Snapshot() domain.Dataset
}
