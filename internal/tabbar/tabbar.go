// Package tabbar models a segmented tab bar: an ordered set of labels, the
// active tab and the indicator underneath it.
package tabbar

import (
	"tabpager/internal/indicator"
	"tabpager/internal/tabs"
)

// Model represents the tab bar state. Listeners registered on a Model only
// ever hear about that Model, so several bars can live side by side.
type Model struct {
	labels    []string
	activeTab int
	ind       indicator.State

	onSelect []func(index int)
	onActive []func(prev, next int)
	onLayout []func()
}

// New creates a tab bar for labels with the first tab active.
func New(labels []string) (*Model, error) {
	ind, err := indicator.New(len(labels))
	if err != nil {
		return nil, err
	}
	return &Model{
		labels: append([]string(nil), labels...),
		ind:    ind,
	}, nil
}

// SetLabels replaces every label and resizes the indicator to 1/N. The active
// tab is kept when it still exists, otherwise it moves to the last tab.
func (m *Model) SetLabels(labels []string) error {
	if len(labels) == 0 {
		return tabs.ErrEmptyPages
	}
	m.labels = append([]string(nil), labels...)
	if err := m.ind.Resize(len(labels)); err != nil {
		return err
	}

	prev := m.activeTab
	if m.activeTab >= len(labels) {
		m.activeTab = len(labels) - 1
	}
	m.ind.SetOffset(float64(m.activeTab))

	if prev != m.activeTab {
		m.notifyActive(prev)
	}
	for _, fn := range m.onLayout {
		fn()
	}
	return nil
}

// SelectTab makes index the active tab, moves the indicator there at once and
// emits TabSelected to every OnSelect listener.
func (m *Model) SelectTab(index int) error {
	if err := tabs.CheckIndex("select tab", index, len(m.labels)); err != nil {
		return err
	}
	m.ind.SetOffset(float64(index))
	m.setActive(index)
	for _, fn := range m.onSelect {
		fn(index)
	}
	return nil
}

// SetActive changes the active tab without emitting TabSelected.
func (m *Model) SetActive(index int) error {
	if err := tabs.CheckIndex("set active tab", index, len(m.labels)); err != nil {
		return err
	}
	m.setActive(index)
	return nil
}

func (m *Model) setActive(index int) {
	if index == m.activeTab {
		return
	}
	prev := m.activeTab
	m.activeTab = index
	m.notifyActive(prev)
}

func (m *Model) notifyActive(prev int) {
	for _, fn := range m.onActive {
		fn(prev, m.activeTab)
	}
}

// SetIndicatorOffset moves the indicator without touching the active tab.
func (m *Model) SetIndicatorOffset(f float64) {
	m.ind.SetOffset(f)
}

// NextTab selects the next tab (wrapping around).
func (m *Model) NextTab() error {
	return m.SelectTab((m.activeTab + 1) % len(m.labels))
}

// PrevTab selects the previous tab (wrapping around).
func (m *Model) PrevTab() error {
	return m.SelectTab((m.activeTab - 1 + len(m.labels)) % len(m.labels))
}

// OnSelect registers fn to receive TabSelected events.
func (m *Model) OnSelect(fn func(index int)) {
	m.onSelect = append(m.onSelect, fn)
}

// OnActiveChange registers fn to run whenever the active tab changes, whatever
// the cause. Renderers use it to restyle labels.
func (m *Model) OnActiveChange(fn func(prev, next int)) {
	m.onActive = append(m.onActive, fn)
}

// OnLayout registers fn to run after SetLabels.
func (m *Model) OnLayout(fn func()) {
	m.onLayout = append(m.onLayout, fn)
}

// Active returns the index of the active tab.
func (m *Model) Active() int {
	return m.activeTab
}

// IsActive reports whether index is the active tab.
func (m *Model) IsActive(index int) bool {
	return index == m.activeTab
}

// Indicator returns a copy of the indicator state.
func (m *Model) Indicator() indicator.State {
	return m.ind
}

// Labels returns a copy of the labels.
func (m *Model) Labels() []string {
	return append([]string(nil), m.labels...)
}

// Label returns the label at index, or "" when index is out of range.
func (m *Model) Label(index int) string {
	if index < 0 || index >= len(m.labels) {
		return ""
	}
	return m.labels[index]
}

// Count returns the number of tabs.
func (m *Model) Count() int {
	return len(m.labels)
}
