package tabbar

import (
	"testing"

	"tabpager/internal/tabs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBar(t *testing.T, labels ...string) *Model {
	t.Helper()
	m, err := New(labels)
	require.NoError(t, err)
	return m
}

func TestNewRejectsEmptyLabels(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, tabs.ErrEmptyPages)
}

func TestSelectTabMovesIndicatorAndEmits(t *testing.T) {
	m := newBar(t, "A", "B", "C")

	var selected []int
	m.OnSelect(func(i int) { selected = append(selected, i) })

	require.NoError(t, m.SelectTab(2))
	assert.Equal(t, 2, m.Active())
	assert.Equal(t, 2.0, m.Indicator().Offset())
	assert.Equal(t, []int{2}, selected)
}

func TestSelectTabOutOfRange(t *testing.T) {
	m := newBar(t, "A", "B", "C")

	var selected []int
	m.OnSelect(func(i int) { selected = append(selected, i) })

	for _, i := range []int{-1, 3} {
		err := m.SelectTab(i)
		assert.ErrorIs(t, err, tabs.ErrIndexOutOfRange)
	}
	assert.Empty(t, selected)
	assert.Equal(t, 0, m.Active())
}

func TestSetActiveDoesNotEmitSelect(t *testing.T) {
	m := newBar(t, "A", "B", "C")

	selects := 0
	m.OnSelect(func(int) { selects++ })
	var changes [][2]int
	m.OnActiveChange(func(prev, next int) { changes = append(changes, [2]int{prev, next}) })

	require.NoError(t, m.SetActive(1))
	require.NoError(t, m.SetActive(1))

	assert.Equal(t, 0, selects)
	assert.Equal(t, [][2]int{{0, 1}}, changes)
	assert.True(t, m.IsActive(1))
	assert.Error(t, m.SetActive(7))
}

func TestSetIndicatorOffsetLeavesActiveAlone(t *testing.T) {
	m := newBar(t, "A", "B")
	m.SetIndicatorOffset(0.75)

	assert.Equal(t, 0.75, m.Indicator().Offset())
	assert.Equal(t, 0, m.Active())
}

func TestSetLabelsResizes(t *testing.T) {
	m := newBar(t, "A", "B", "C", "D")
	require.NoError(t, m.SelectTab(3))

	layouts := 0
	m.OnLayout(func() { layouts++ })
	var changes [][2]int
	m.OnActiveChange(func(prev, next int) { changes = append(changes, [2]int{prev, next}) })

	require.NoError(t, m.SetLabels([]string{"X", "Y"}))
	assert.Equal(t, 1, layouts)
	assert.Equal(t, 2, m.Count())
	assert.Equal(t, 0.5, m.Indicator().Width())
	assert.Equal(t, 1, m.Active())
	assert.Equal(t, 1.0, m.Indicator().Offset())
	assert.Equal(t, [][2]int{{3, 1}}, changes)

	assert.ErrorIs(t, m.SetLabels(nil), tabs.ErrEmptyPages)
	assert.Equal(t, []string{"X", "Y"}, m.Labels())
}

func TestNextPrevWrap(t *testing.T) {
	m := newBar(t, "A", "B", "C")

	require.NoError(t, m.PrevTab())
	assert.Equal(t, 2, m.Active())
	require.NoError(t, m.NextTab())
	assert.Equal(t, 0, m.Active())
	require.NoError(t, m.NextTab())
	assert.Equal(t, 1, m.Active())
}

func TestLabel(t *testing.T) {
	m := newBar(t, "A", "B")
	assert.Equal(t, "B", m.Label(1))
	assert.Equal(t, "", m.Label(2))
}
