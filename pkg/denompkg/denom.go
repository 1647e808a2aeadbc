// Package denompkg validates coin denominations.
package denompkg

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Tag is the binding tag registered for denom validation.
const Tag = "denom"

// Native denoms (uosmo), IBC hashes (ibc/27394FB0...) and factory denoms (factory/osmo1.../ulp).
var denomRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9/:._-]{2,127}$`)

// IsValid reports whether s is a well formed denom.
func IsValid(s string) bool {
	return denomRe.MatchString(s)
}

// ValidDenom is a validator.Func to be registered with the gin binding engine.
var ValidDenom validator.Func = func(fl validator.FieldLevel) bool {
	if denom, ok := fl.Field().Interface().(string); ok {
		return IsValid(denom)
	}

	return false
}
