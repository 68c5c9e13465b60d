package result

// variant is the discriminant of Result.
type variant uint8

const (
	// variantEmpty is the state of a zero or moved-from Result.
	variantEmpty variant = iota
	variantOk
	variantErr
)

func (v variant) String() string {
	switch v {
	case variantOk:
		return "ok"
	case variantErr:
		return "err"
	default:
		return "empty"
	}
}

// storage holds the payload slots of a Result.
//
// Only the slot named by the owning Result's variant is live; the other one is
// always the zero value and is never read. storage never releases payloads,
// because it does not know which slot is live.
type storage[V, E any] struct {
	ok  V
	err E
}

func storageOk[V, E any](v V) storage[V, E] {
	return storage[V, E]{ok: v}
}

func storageErr[V, E any](e E) storage[V, E] {
	return storage[V, E]{err: e}
}

// storageEmpty returns storage with neither slot live.
func storageEmpty[V, E any]() storage[V, E] {
	return storage[V, E]{}
}

// clear drops the references to both slots.
func (s *storage[V, E]) clear() {
	*s = storageEmpty[V, E]()
}
