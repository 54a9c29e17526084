package records

import "strings"

// Enumerations fixed by the domain. Membership checks are case-insensitive
// on input; stored values keep their original casing.

// genders is the allowed gender value set.
var genders = map[string]struct{}{
	"M":      {},
	"F":      {},
	"MALE":   {},
	"FEMALE": {},
	"OTHER":  {},
}

// relationships is the allowed relationship-to-account-holder set.
var relationships = map[string]struct{}{
	"SELF":     {},
	"SPOUSE":   {},
	"CHILD":    {},
	"PARENT":   {},
	"MOTHER":   {},
	"FATHER":   {},
	"SON":      {},
	"DAUGHTER": {},
	"HUSBAND":  {},
	"WIFE":     {},
}

// IsValidGender reports whether the value is a member of the gender set.
func IsValidGender(value string) bool {
	_, ok := genders[strings.ToUpper(strings.TrimSpace(value))]
	return ok
}

// IsValidRelationship reports whether the value is a member of the
// relationship set.
func IsValidRelationship(value string) bool {
	_, ok := relationships[strings.ToUpper(strings.TrimSpace(value))]
	return ok
}
