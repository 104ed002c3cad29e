//go:build property

package sanitize

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestSanitizerProperties validates the idempotence guarantee across
// arbitrary inputs, including adversarial fragments the unit tests only
// sample.
func TestSanitizerProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("String is idempotent", prop.ForAll(
		func(input string) bool {
			once := String(input)
			return String(once) == once
		},
		gen.AnyString(),
	))

	properties.Property("HTML is idempotent", prop.ForAll(
		func(input string) bool {
			once := HTML(input)
			return HTML(once) == once
		},
		gen.AnyString(),
	))

	properties.Property("URL round-trip is stable", prop.ForAll(
		func(host, path string) bool {
			raw := "https://" + host + ".example/" + path
			first, ok := URL(raw)
			if !ok {
				return true
			}
			second, ok := URL(first)
			return ok && second == first
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("Number never yields a value for non-numeric text", prop.ForAll(
		func(input string) bool {
			_, ok := Number("x" + input + "x")
			return !ok
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
