package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectColumns_IdentitySelection(t *testing.T) {
	tab := citiesFixture()
	same := tab.SelectColumns("Name", "Country", "Population")
	assert.Equal(t, tab.Attributes(), same.Attributes())
	assert.Equal(t, tab.Rows(), same.Rows())
}

func TestSelectColumns_OrderDedupAndUnknown(t *testing.T) {
	tab := citiesFixture()
	got := tab.SelectColumns("Population", "Mayor", "Name", "Population")
	assert.Equal(t, []string{"Population", "Name"}, got.Attributes())
	assert.Equal(t, []string{"8900000", "London"}, got.Row(0))
	assert.Equal(t, tab.RowCount(), got.RowCount())
}

func TestSelectColumns_NothingSurvives(t *testing.T) {
	tab := citiesFixture()

	got := tab.SelectColumns("Mayor", "Anthem")
	assert.Equal(t, 0, got.ColumnCount())
	assert.Equal(t, 0, got.RowCount())
	assert.Equal(t, "(no columns)", got.String())

	got = tab.SelectColumns()
	assert.Equal(t, 0, got.ColumnCount())
	assert.Equal(t, 0, got.RowCount())
}
