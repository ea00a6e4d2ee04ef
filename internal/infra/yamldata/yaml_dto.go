package yamldata

type yamlDataset struct {
	People      []yamlPerson     `yaml:"people"`
	HairColors  []yamlHairColor  `yaml:"hair_colors"`
	MpaaRatings []yamlMpaaRating `yaml:"mpaa_ratings"`
}

type yamlPerson struct {
	ID          *int     `yaml:"id"`
	FirstName   string   `yaml:"first_name"`
	LastName    string   `yaml:"last_name"`
	Age         *int     `yaml:"age"`
	Height      *float64 `yaml:"height"`
	DateOfBirth string   `yaml:"date_of_birth"`
	HairColorID *int     `yaml:"hair_color_id"`
}

type yamlHairColor struct {
	ID   *int   `yaml:"id"`
	Name string `yaml:"name"`
}

type yamlMpaaRating struct {
	Code        string `yaml:"code"`
	Description string `yaml:"description"`
}
