package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin_MatchesOnKeyEquality(t *testing.T) {
	t1 := New("K", "V").MustAddRow("a", "1").MustAddRow("b", "2")
	t2 := New("K", "W").MustAddRow("a", "x").MustAddRow("c", "y")

	got, err := t1.Join(t2, "K", "K")
	require.NoError(t, err)

	assert.Equal(t, []string{"L.K", "L.V", "R.K", "R.W"}, got.Attributes())
	require.Equal(t, 1, got.RowCount())
	assert.Equal(t, []string{"a", "1", "a", "x"}, got.Row(0))
}

func TestJoin_PrefixesEvenWithoutCollision(t *testing.T) {
	t1 := New("A").MustAddRow("x")
	t2 := New("B").MustAddRow("x")

	got, err := t1.Join(t2, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"L.A", "R.B"}, got.Attributes())
	assert.Equal(t, []string{"x", "x"}, got.Row(0))
}

func TestJoin_UnknownKeys(t *testing.T) {
	t1 := New("A")
	t2 := New("B")

	_, err := t1.Join(t2, "missing", "B")
	require.ErrorIs(t, err, ErrUnknownAttribute)

	_, err = t1.Join(t2, "A", "missing")
	require.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestJoin_MultipleMatchesMultiply(t *testing.T) {
	left := New("K", "V").MustAddRow("a", "1")
	right := New("K", "W").MustAddRow("a", "x").MustAddRow("a", "y")

	got, err := left.Join(right, "K", "K")
	require.NoError(t, err)
	require.Equal(t, 2, got.RowCount())
	assert.Equal(t, []string{"a", "1", "a", "x"}, got.Row(0))
	assert.Equal(t, []string{"a", "1", "a", "y"}, got.Row(1))
}

func TestJoin_NoMatchesKeepsShape(t *testing.T) {
	left := New("K", "V").MustAddRow("a", "1")
	right := New("K", "W").MustAddRow("z", "w")

	got, err := left.Join(right, "K", "K")
	require.NoError(t, err)
	assert.Equal(t, 0, got.RowCount())
	assert.Equal(t, 4, got.ColumnCount())
}
