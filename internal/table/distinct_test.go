package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistinct_KeepsFirstOccurrences(t *testing.T) {
	tab := New("K", "V").
		MustAddRow("a", "1").
		MustAddRow("b", "2").
		MustAddRow("a", "1").
		MustAddRow("c", "3").
		MustAddRow("b", "2")

	got := tab.Distinct()
	assert.Equal(t, [][]string{{"a", "1"}, {"b", "2"}, {"c", "3"}}, got.Rows())
	assert.Equal(t, 5, tab.RowCount())
}

func TestDistinct_Idempotent(t *testing.T) {
	tab := New("K").MustAddRow("x").MustAddRow("x").MustAddRow("y")

	once := tab.Distinct()
	twice := once.Distinct()
	assert.Equal(t, once.Rows(), twice.Rows())
	assert.Equal(t, once.Attributes(), twice.Attributes())
}
