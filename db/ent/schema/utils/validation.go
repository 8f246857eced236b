package utils

import "fmt"

// EnumValidator builds a field validator that accepts only the given
// storage labels. Coercion happens before persistence; anything that
// reaches the database with an unknown label is a programming error.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("label %q is not a member of the enum", s)
	}
}
