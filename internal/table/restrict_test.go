package table

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectRows_CountryFilter(t *testing.T) {
	tab := citiesFixture()
	uk, err := tab.SelectRows(func(get Lookup) (bool, error) {
		c, err := get("Country")
		if err != nil {
			return false, err
		}
		return c == "UK", nil
	})
	require.NoError(t, err)

	assert.Equal(t, tab.Attributes(), uk.Attributes())
	require.Equal(t, 2, uk.RowCount())
	assert.Equal(t, []string{"London", "UK", "8900000"}, uk.Row(0))
	assert.Equal(t, []string{"Leicester", "UK", "500000"}, uk.Row(1))
}

func TestSelectRows_UnknownAttribute(t *testing.T) {
	_, err := citiesFixture().SelectRows(func(get Lookup) (bool, error) {
		_, err := get("Mayor")
		return false, err
	})
	require.ErrorIs(t, err, ErrUnknownAttribute)
	assert.Contains(t, err.Error(), `"Mayor"`)
}

func TestSelectRows_PredicateErrorSurfaces(t *testing.T) {
	boom := errors.New("boom")
	_, err := citiesFixture().SelectRows(func(Lookup) (bool, error) {
		return false, boom
	})
	require.ErrorIs(t, err, boom)
}

// Cells are text; a predicate that wants numbers converts them itself.
func TestSelectRows_NumericGuard(t *testing.T) {
	big, err := citiesFixture().SelectRows(func(get Lookup) (bool, error) {
		cell, err := get("Population")
		if err != nil {
			return false, err
		}
		n, err := strconv.Atoi(cell)
		if err != nil {
			return false, err
		}
		return n > 1000000, nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, big.RowCount())
	assert.Equal(t, "London", big.Row(0)[0])
	assert.Equal(t, "Hamburg", big.Row(1)[0])
}

func TestSelectRows_KeepsNone(t *testing.T) {
	none, err := citiesFixture().SelectRows(func(Lookup) (bool, error) {
		return false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, none.RowCount())
	assert.Equal(t, 3, none.ColumnCount())
}
