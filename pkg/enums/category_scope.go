package enums

import "fmt"

// CategoryScope marks which audience a category is merchandised to.
type CategoryScope string

const (
	CategoryScopeWomen CategoryScope = "women"
	CategoryScopeMen   CategoryScope = "men"
	CategoryScopeBoth  CategoryScope = "both"
)

var validCategoryScopes = []CategoryScope{
	CategoryScopeWomen,
	CategoryScopeMen,
	CategoryScopeBoth,
}

// String implements fmt.Stringer.
func (c CategoryScope) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CategoryScope.
func (c CategoryScope) IsValid() bool {
	for _, candidate := range validCategoryScopes {
		if candidate == c {
			return true
		}
	}
	return false
}

// Includes reports whether a category scoped to c covers the gender.
func (c CategoryScope) Includes(g Gender) bool {
	switch c {
	case CategoryScopeBoth:
		return true
	case CategoryScopeWomen:
		return g == GenderWomen || g == GenderUnisex
	case CategoryScopeMen:
		return g == GenderMen || g == GenderUnisex
	}
	return false
}

// ParseCategoryScope converts raw input into a CategoryScope.
func ParseCategoryScope(value string) (CategoryScope, error) {
	for _, candidate := range validCategoryScopes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category scope %q", value)
}
