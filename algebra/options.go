package algebra

import "fmt"

// Option configures a call to Analyze.
type Option func(*options) error

type options struct {
	validatePrime bool
	parallelism   int
}

func defaultOptions() options {
	return options{validatePrime: true, parallelism: 1}
}

// WithPrimeValidation toggles the primality check on p. When disabled a composite
// characteristic only produces a warning; the result is then not a field-theoretic
// statement.
func WithPrimeValidation(on bool) Option {
	return func(o *options) error {
		o.validatePrime = on
		return nil
	}
}

// WithParallelism bounds the number of sub-algebras analyzed concurrently.
func WithParallelism(n int) Option {
	return func(o *options) error {
		if n < 1 {
			return fmt.Errorf("algebra: parallelism must be >= 1, got %d", n)
		}
		o.parallelism = n
		return nil
	}
}
