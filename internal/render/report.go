package render

import (
	"encoding/json"
	"io"
	"strings"

	"qacode/algebra"
)

// Report is the serializable view of an analyzed algebra.
type Report struct {
	Algebra        string         `json:"algebra"`
	Fingerprint    string         `json:"fingerprint"`
	P              uint64         `json:"p"`
	T              uint64         `json:"t"`
	Param          []uint64       `json:"param"`
	RadicalParam   []uint64       `json:"radical_param"`
	LocalizedParam []uint64       `json:"localized_param"`
	Dim            string         `json:"dim"`
	Complexity     string         `json:"complexity"`
	Semisimple     bool           `json:"semisimple"`
	Local          bool           `json:"local"`
	Components     []ComponentRow `json:"components,omitempty"`
	DimensionSum   string         `json:"dimension_sum"`
	Verified       bool           `json:"verified"`
	VerifyError    string         `json:"verify_error,omitempty"`
	Witnesses      []WitnessRow   `json:"witnesses,omitempty"`
}

// ComponentRow is one line of the decomposition table.
type ComponentRow struct {
	Type        string `json:"type"`
	Fingerprint string `json:"fingerprint"`
	Count       string `json:"count"`
	Degree      uint64 `json:"degree"`
	Dim         string `json:"dim"`
}

// WitnessRow names the defining polynomial of a residue field.
type WitnessRow struct {
	Type    string `json:"type"`
	Modulus string `json:"modulus"`
}

// CleanName renders a component of top. When top is semisimple and strip is set the
// trivial group part "[1]" is dropped, leaving only the field.
func CleanName(top, comp *algebra.GroupAlgebra, strip bool) string {
	s := comp.String()
	if strip && top.IsSemisimple {
		return strings.TrimSuffix(s, "[1]")
	}
	return s
}

// NewReport builds the report of g.
func NewReport(g *algebra.GroupAlgebra, strip bool) Report {
	r := Report{
		Algebra:        g.String(),
		Fingerprint:    g.Key().Fingerprint(),
		P:              g.P,
		T:              g.T,
		Param:          g.Param,
		RadicalParam:   g.RadicalParam,
		LocalizedParam: g.LocalizedParam,
		Dim:            g.Dim.String(),
		Complexity:     g.Complexity.String(),
		Semisimple:     g.IsSemisimple,
		Local:          g.IsLocal,
		DimensionSum:   g.DimensionSum().String(),
		Verified:       true,
	}
	if err := g.Verify(); err != nil {
		r.Verified = false
		r.VerifyError = err.Error()
	}
	for _, c := range g.Components {
		r.Components = append(r.Components, ComponentRow{
			Type:        CleanName(g, c.Algebra, strip),
			Fingerprint: c.Algebra.Key().Fingerprint(),
			Count:       c.Count.String(),
			Degree:      c.Degree,
			Dim:         c.Dim().String(),
		})
	}
	return r
}

// AddWitnesses attaches residue field moduli to r.
func (r *Report) AddWitnesses(top *algebra.GroupAlgebra, ws []algebra.Witness, strip bool) {
	for _, w := range ws {
		r.Witnesses = append(r.Witnesses, WitnessRow{
			Type:    CleanName(top, w.Algebra, strip),
			Modulus: w.Field.String(),
		})
	}
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
