package enums

import "fmt"

// Gender scopes a product to the audience it is cut for.
type Gender string

const (
	GenderWomen  Gender = "women"
	GenderMen    Gender = "men"
	GenderUnisex Gender = "unisex"
)

var validGenders = []Gender{
	GenderWomen,
	GenderMen,
	GenderUnisex,
}

// String implements fmt.Stringer.
func (g Gender) String() string {
	return string(g)
}

// IsValid reports whether the value is a known Gender.
func (g Gender) IsValid() bool {
	for _, candidate := range validGenders {
		if candidate == g {
			return true
		}
	}
	return false
}

// ParseGender converts raw input into a Gender.
func ParseGender(value string) (Gender, error) {
	for _, candidate := range validGenders {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid gender %q", value)
}
