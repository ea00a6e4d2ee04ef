package yamldata

import (
	"fmt"
	"strings"
	"time"

	"github.com/aalvaropc/querylab/internal/domain"
)

func mapDataset(path string, yd yamlDataset) (domain.Dataset, error) {
	ds := domain.Dataset{
		People:      make([]domain.Person, 0, len(yd.People)),
		HairColors:  make([]domain.HairColor, 0, len(yd.HairColors)),
		MpaaRatings: make([]domain.MpaaRating, 0, len(yd.MpaaRatings)),
	}

	for i, p := range yd.People {
		prefix := fmt.Sprintf("people[%d]", i)
		if p.ID == nil {
			return domain.Dataset{}, invalidField(path, prefix+".id", "id is required")
		}
		if strings.TrimSpace(p.FirstName) == "" {
			return domain.Dataset{}, invalidField(path, prefix+".first_name", "first name is required")
		}

		var dob time.Time
		if s := strings.TrimSpace(p.DateOfBirth); s != "" {
			t, err := time.Parse(domain.DateLayout, s)
			if err != nil {
				return domain.Dataset{}, invalidField(path, prefix+".date_of_birth", fmt.Sprintf("expected YYYY-MM-DD, got %q", s))
			}
			dob = t
		}

		ds.People = append(ds.People, domain.Person{
			ID:          *p.ID,
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Age:         p.Age,
			Height:      p.Height,
			DateOfBirth: dob,
			HairColorID: p.HairColorID,
		})
	}

	for i, h := range yd.HairColors {
		prefix := fmt.Sprintf("hair_colors[%d]", i)
		if h.ID == nil {
			return domain.Dataset{}, invalidField(path, prefix+".id", "id is required")
		}
		if strings.TrimSpace(h.Name) == "" {
			return domain.Dataset{}, invalidField(path, prefix+".name", "name is required")
		}
		ds.HairColors = append(ds.HairColors, domain.HairColor{ID: *h.ID, Name: h.Name})
	}

	for i, r := range yd.MpaaRatings {
		if strings.TrimSpace(r.Code) == "" {
			return domain.Dataset{}, invalidField(path, fmt.Sprintf("mpaa_ratings[%d].code", i), "code is required")
		}
		ds.MpaaRatings = append(ds.MpaaRatings, domain.MpaaRating{Code: r.Code, Description: r.Description})
	}

	return ds, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamldata.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
