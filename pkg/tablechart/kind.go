package tablechart

import (
	"fmt"
	"strings"
)

// Kind is the chart kind a column is drawn as.
type Kind string

const (
	// KindLine draws [x, y] pairs as a line.
	KindLine Kind = "line"
	// KindBar draws horizontal bars on the category axis.
	KindBar Kind = "bar"
	// KindColumn draws vertical columns on the category axis.
	KindColumn Kind = "column"
	// KindLineWithColumn draws a line sharing the category axis with column series.
	KindLineWithColumn Kind = "line_w_col"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindLine, KindBar, KindColumn, KindLineWithColumn:
		return true
	}
	return false
}

func (k Kind) categorical() bool {
	return k == KindBar || k == KindColumn
}

// KindSpec is either one kind for every column or one kind per column.
type KindSpec struct {
	// Single applies to every column when PerColumn is nil.
	Single Kind
	// PerColumn lists one kind per column, in column order.
	PerColumn []Kind
}

// SingleKind returns a spec applying k to every column.
func SingleKind(k Kind) KindSpec {
	return KindSpec{Single: k}
}

// KindList returns a per-column spec.
func KindList(kinds ...Kind) KindSpec {
	return KindSpec{PerColumn: append([]Kind{}, kinds...)}
}

// IsList reports whether the spec holds a per-column list.
func (ks KindSpec) IsList() bool {
	return ks.PerColumn != nil
}

func (ks KindSpec) String() string {
	if !ks.IsList() {
		return string(ks.Single)
	}
	parts := make([]string, len(ks.PerColumn))
	for i, k := range ks.PerColumn {
		parts[i] = string(k)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// ParseKindSpec parses "line" as a single kind and "line,column" as a list.
// An empty string yields the default single line kind.
func ParseKindSpec(s string) (KindSpec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SingleKind(KindLine), nil
	}
	if !strings.Contains(s, ",") {
		k := Kind(s)
		if !k.Valid() {
			return KindSpec{}, fmt.Errorf("%w: %q", ErrUnknownKind, s)
		}
		return SingleKind(k), nil
	}
	return ParseKindList(strings.Split(s, ","))
}

// ParseKindList converts names to a per-column spec.
func ParseKindList(names []string) (KindSpec, error) {
	kinds := make([]Kind, len(names))
	for i, name := range names {
		k := Kind(strings.TrimSpace(name))
		if !k.Valid() {
			return KindSpec{}, fmt.Errorf("%w: %q at position %d", ErrUnknownKind, name, i)
		}
		kinds[i] = k
	}
	return KindSpec{PerColumn: kinds}, nil
}

// ResolvedKinds is the outcome of the kind pre-pass.
type ResolvedKinds struct {
	// Kinds holds one kind per column.
	Kinds []Kind
	// Categorical reports whether the table index becomes the shared category axis.
	Categorical bool
}

// ResolveKinds expands spec into one kind per column before any series is built.
// In a list that contains bar or column entries, every line entry becomes
// line_w_col so it shares the category axis.
func ResolveKinds(spec KindSpec, numColumns int) (ResolvedKinds, error) {
	if !spec.IsList() {
		k := spec.Single
		if k == "" {
			k = KindLine
		}
		if !k.Valid() {
			return ResolvedKinds{}, fmt.Errorf("%w: %q", ErrUnknownKind, k)
		}
		kinds := make([]Kind, numColumns)
		for i := range kinds {
			kinds[i] = k
		}
		return ResolvedKinds{Kinds: kinds, Categorical: k != KindLine}, nil
	}

	if len(spec.PerColumn) != numColumns {
		return ResolvedKinds{}, fmt.Errorf("%w: kind list has %d entries for %d columns",
			ErrLengthMismatch, len(spec.PerColumn), numColumns)
	}

	hasColumns := false
	for i, k := range spec.PerColumn {
		if !k.Valid() {
			return ResolvedKinds{}, fmt.Errorf("%w: %q at position %d", ErrUnknownKind, k, i)
		}
		if k.categorical() {
			hasColumns = true
		}
	}

	kinds := make([]Kind, numColumns)
	for i, k := range spec.PerColumn {
		if hasColumns && k == KindLine {
			k = KindLineWithColumn
		}
		kinds[i] = k
	}
	return ResolvedKinds{Kinds: kinds, Categorical: true}, nil
}
