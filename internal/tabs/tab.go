// Package tabs holds the shared tab entity and the errors reported by the
// tab bar, pager and sync controller.
package tabs

// Tab pairs a label with the content shown on its page. Labels and pages are
// always built from the same []Tab so their counts cannot drift apart.
type Tab[T any] struct {
	Label   string
	Content T
}

// New builds a Tab.
func New[T any](label string, content T) Tab[T] {
	return Tab[T]{Label: label, Content: content}
}

// Labels returns the labels of ts in order.
func Labels[T any](ts []Tab[T]) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Label
	}
	return out
}

// Contents returns the contents of ts in order.
func Contents[T any](ts []Tab[T]) []T {
	out := make([]T, len(ts))
	for i, t := range ts {
		out[i] = t.Content
	}
	return out
}
