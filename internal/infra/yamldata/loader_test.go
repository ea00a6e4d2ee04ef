package yamldata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/querylab/internal/domain"
)

const sampleYAML = `people:
  - id: 1
    first_name: Sam
    last_name: Smith
    age: 60
    height: 70.5
    date_of_birth: 1964-02-11
    hair_color_id: 2
  - id: 2
    first_name: Ann
    last_name: Jones
hair_colors:
  - id: 2
    name: Brown
mpaa_ratings:
  - code: PG
    description: Parental Guidance Suggested
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadDataset(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "people.yaml", sampleYAML)

	ds, err := NewLoader(tmp).LoadDataset("people.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.People) != 2 || len(ds.HairColors) != 1 || len(ds.MpaaRatings) != 1 {
		t.Fatalf("unexpected sizes: %+v", ds)
	}

	sam := ds.People[0]
	if sam.Age == nil || *sam.Age != 60 {
		t.Fatalf("expected age 60")
	}
	if sam.Height == nil || *sam.Height != 70.5 {
		t.Fatalf("expected height 70.5")
	}
	if sam.DateOfBirth.Format(domain.DateLayout) != "1964-02-11" {
		t.Fatalf("unexpected dob %v", sam.DateOfBirth)
	}
	if sam.HairColorID == nil || *sam.HairColorID != 2 {
		t.Fatalf("expected hair color 2")
	}

	ann := ds.People[1]
	if ann.Age != nil || ann.Height != nil || ann.HairColorID != nil {
		t.Fatalf("missing optional keys must stay unknown, got %+v", ann)
	}
}

func TestLoadDataset_AbsolutePathIgnoresRoot(t *testing.T) {
	tmp := t.TempDir()
	p := writeFile(t, tmp, "abs.yaml", sampleYAML)

	if _, err := NewLoader("/does/not/exist").LoadDataset(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadDataset_Errors(t *testing.T) {
	tmp := t.TempDir()

	cases := []struct {
		name    string
		content string
		kind    domain.ErrorKind
		field   string
	}{
		{
			name:    "bad yaml",
			content: "people: [\n",
			kind:    domain.KindInvalidConfig,
		},
		{
			name:    "missing id",
			content: "people:\n  - first_name: Sam\n",
			kind:    domain.KindInvalidConfig,
			field:   "people[0].id",
		},
		{
			name:    "bad date",
			content: "people:\n  - id: 1\n    first_name: Sam\n    date_of_birth: 02/11/1964\n",
			kind:    domain.KindInvalidConfig,
			field:   "people[0].date_of_birth",
		},
		{
			name:    "hair color without name",
			content: "hair_colors:\n  - id: 1\n",
			kind:    domain.KindInvalidConfig,
			field:   "hair_colors[0].name",
		},
		{
			name:    "rating without code",
			content: "mpaa_ratings:\n  - description: x\n",
			kind:    domain.KindInvalidConfig,
			field:   "mpaa_ratings[0].code",
		},
	}

	for i, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := writeFile(t, tmp, fmt.Sprintf("case%d.yaml", i), c.content)

			_, err := NewLoader("").LoadDataset(p)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !domain.IsKind(err, c.kind) {
				t.Fatalf("expected kind %s, got %v", c.kind, err)
			}
			if !strings.Contains(err.Error(), p) {
				t.Fatalf("expected path in error, got %v", err)
			}
			if c.field != "" && !strings.Contains(err.Error(), c.field) {
				t.Fatalf("expected field %s in error, got %v", c.field, err)
			}
		})
	}
}

func TestLoadDataset_MissingFile(t *testing.T) {
	_, err := NewLoader(t.TempDir()).LoadDataset("nope.yaml")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
