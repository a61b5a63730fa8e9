package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/tender/internal/core/table"
	"github.com/colonyops/tender/pkg/tuitest"
)

func sampleComparison(items int) table.Comparison {
	c := table.Comparison{Header: []string{""}}
	vendor := []string{"Vendor"}
	bid := []string{"Bid"}
	for i := range items {
		name := string(rune('A' + i))
		c.Header = append(c.Header, "Vendor "+name)
		vendor = append(vendor, "Vendor "+name)
		bid = append(bid, "$"+strings.Repeat("9", i+1))
	}
	c.Rows = [][]string{vendor, bid}
	return c
}

func TestCompareModal_Empty(t *testing.T) {
	out := tuitest.StripANSI(newCompareModal(table.Comparison{}).View(120))

	assert.Contains(t, out, "No rows selected for comparison")
	assert.NotContains(t, out, "export")
}

func TestCompareModal_Matrix(t *testing.T) {
	out := tuitest.StripANSI(newCompareModal(sampleComparison(3)).View(200))

	assert.Contains(t, out, "Field")
	assert.Contains(t, out, "Vendor C")
	assert.Contains(t, out, "$999")
	assert.Contains(t, out, "3 items • 2 fields")
	assert.NotContains(t, out, "showing")
}

func TestCompareModal_ScrollsWideMatrix(t *testing.T) {
	m := newCompareModal(sampleComparison(6))

	out := tuitest.StripANSI(m.View(80))
	assert.Contains(t, out, "Vendor A")
	assert.NotContains(t, out, "Vendor F")
	assert.Contains(t, out, "showing 1-")

	for range 10 {
		m.ScrollRight()
	}
	assert.Equal(t, 5, m.offset)
	out = tuitest.StripANSI(m.View(80))
	assert.Contains(t, out, "Vendor F")

	m.ScrollLeft()
	assert.Equal(t, 4, m.offset)
}
