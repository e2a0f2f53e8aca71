package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errEmptyParam = errors.New("no group parameters given")

// InputFormatError reports a parameter list that is not a comma separated list
// of integers.
type InputFormatError struct {
	Input string
	Token string
	Err   error
}

func (e *InputFormatError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("cannot parse group parameters %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("cannot parse group parameters %q: token %q: %v", e.Input, e.Token, e.Err)
}

func (e *InputFormatError) Unwrap() error { return e.Err }

// ParseParam parses "5, 5, 32" into its integers. Range checks are left to
// algebra.Analyze.
func ParseParam(s string) ([]int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, &InputFormatError{Input: s, Err: errEmptyParam}
	}
	fields := strings.Split(s, ",")
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		tok := strings.TrimSpace(f)
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, &InputFormatError{Input: s, Token: tok, Err: err}
		}
		out = append(out, n)
	}
	return out, nil
}
