package outcome

// ToResult wraps a plain value in a Success-tagged ResultOf. A nil value
// (nil pointer, map, slice, func, chan or interface) yields Fail with
// ErrNilValue.
func ToResult[T any](v T) ResultOf[T] {
	if IsNil(v) {
		return Fail[T](ErrNilValue)
	}
	return Success(v)
}

// ToMaybe wraps a plain value in a Success-tagged Maybe. A nil value yields
// None rather than a failure: absence, not breakage.
func ToMaybe[T any](v T) Maybe[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Some(v)
}
