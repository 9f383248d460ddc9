package bptree

import "fmt"

// Kind classifies the error conditions a Tree can raise. Unlike a plain
// sentinel error per condition, Kind lets callers branch on the taxonomy
// with errors.As without a growing list of package-level vars.
type Kind int

const (
	// KindDuplicateKey is returned by Add when the key already exists.
	KindDuplicateKey Kind = iota
	// KindKeyNotFound is returned by Get on an absent key.
	KindKeyNotFound
	// KindOutOfRange is returned by EntryAt and view indexers for an index
	// outside [0, Count).
	KindOutOfRange
	// KindBadArgument is returned by New for a nil comparator. A nil slice
	// passed to WithEntries is not an error; it adds no entries.
	KindBadArgument
	// KindCollectionModified is returned by an Iterator whose tree mutated
	// since the iterator was created.
	KindCollectionModified
	// KindReadOnly is returned by mutators on a KeyView or ValueView.
	KindReadOnly
	// KindStructuralInvariant is returned by Validate when a stored total
	// disagrees with the recomputed one.
	KindStructuralInvariant
)

func (k Kind) String() string {
	switch k {
	case KindDuplicateKey:
		return "DuplicateKey"
	case KindKeyNotFound:
		return "KeyNotFound"
	case KindOutOfRange:
		return "OutOfRange"
	case KindBadArgument:
		return "BadArgument"
	case KindCollectionModified:
		return "CollectionModified"
	case KindReadOnly:
		return "ReadOnly"
	case KindStructuralInvariant:
		return "StructuralInvariant"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by every failing Tree, KeyView, or
// ValueView operation. Kind identifies which failure condition applies;
// Message carries the detail.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("bptree: %s: %s", e.Kind, e.Message)
}

// Is lets errors.Is(err, &Error{Kind: KindKeyNotFound}) match on Kind alone.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
