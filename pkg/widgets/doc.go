// Package widgets provides the built-in widget set: text and controls,
// and the layout containers that position them.
//
// Widgets are constructed once from a config struct, composed into a tree
// with Adopt at construction time, and rebuilt into display nodes every
// render cycle. Construction is where configuration is validated:
// constructors fail fast on nonsense values instead of deferring the
// error to the first frame.
//
// Layout is single-pass and parent-driven. A container resolves each
// child's origin from its own origin, padding and spacing, writes it with
// SetPosition, and only then builds the child, so a child always builds
// at its final position. A child with an unset extent advances the layout
// cursor by zero plus spacing.
package widgets
