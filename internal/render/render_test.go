package render

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qacode/algebra"
	"qacode/prof"
)

func analyze(t *testing.T, p, tt int64, param ...int64) *algebra.GroupAlgebra {
	t.Helper()
	g, err := algebra.Analyze(context.Background(), p, tt, param)
	require.NoError(t, err)
	return g
}

func TestCleanName(t *testing.T) {
	ss := analyze(t, 2, 1, 3)
	require.True(t, ss.IsSemisimple)
	assert.Equal(t, "GF(2^2)", CleanName(ss, ss.Components[1].Algebra, true))
	assert.Equal(t, "GF(2^2)[1]", CleanName(ss, ss.Components[1].Algebra, false))

	ns := analyze(t, 2, 1, 5, 5, 32)
	assert.Equal(t, "GF(2^4)[32]", CleanName(ns, ns.Components[0].Algebra, true))
}

func TestReportJSON(t *testing.T) {
	g := analyze(t, 2, 1, 5, 5, 32)
	r := NewReport(g, true)
	assert.True(t, r.Verified)
	assert.Equal(t, "800", r.DimensionSum)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, r))

	var back Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, "GF(2^1)[5, 5, 32]", back.Algebra)
	assert.Equal(t, "7", back.Complexity)
	require.Len(t, back.Components, 2)
	assert.Equal(t, ComponentRow{
		Type:        "GF(2^4)[32]",
		Fingerprint: g.Components[0].Algebra.Key().Fingerprint(),
		Count:       "6",
		Degree:      4,
		Dim:         "128",
	}, back.Components[0])
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, NewReport(analyze(t, 2, 1, 5, 5, 32), true)))
	out := buf.String()
	assert.Contains(t, out, "GF(2^4)[32]")
	assert.Contains(t, out, "Jacobson radical is non-trivial")
	assert.Contains(t, out, "D = 800")

	buf.Reset()
	require.NoError(t, WriteTable(&buf, NewReport(analyze(t, 2, 2, 8), true)))
	assert.Contains(t, buf.String(), "local and cannot be decomposed")
}

func TestWriteTableWithWitnesses(t *testing.T) {
	g := analyze(t, 2, 1, 7)
	ws, err := algebra.Witnesses(context.Background(), g, 16)
	require.NoError(t, err)
	r := NewReport(g, true)
	r.AddWitnesses(g, ws, true)
	require.Len(t, r.Witnesses, 2)

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, r))
	assert.Contains(t, buf.String(), "Residue fields")
	assert.Contains(t, buf.String(), "x^3")
}

func TestWriteChart(t *testing.T) {
	var buf bytes.Buffer
	size := ChartSize{Width: "800px", Height: "400px"}
	require.NoError(t, WriteChart(&buf, NewReport(analyze(t, 3, 1, 8), true), size))
	assert.Contains(t, buf.String(), "GF(3^2)")

	err := WriteChart(&buf, NewReport(analyze(t, 3, 1, 9), true), size)
	assert.Error(t, err)
}

func TestWriteTimings(t *testing.T) {
	totals := []prof.Total{
		{Label: "cyclotomicPairs", Calls: 1, Dur: 3 * time.Millisecond},
		{Label: "analyze", Calls: 3, Dur: 1500 * time.Microsecond},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteTimings(&buf, totals))
	out := buf.String()
	assert.Contains(t, out, "Timings")
	assert.Contains(t, out, "Stage")
	assert.Contains(t, out, "cyclotomicPairs")
	assert.Contains(t, out, "3ms")
	assert.Contains(t, out, "1.5ms")
	assert.Contains(t, out, "│", "rendered with table borders")
}
