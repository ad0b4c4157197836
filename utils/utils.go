package utils

// ArrayContains searches for the first element matching the predicate and
// returns its index.
func ArrayContains[T any](set []T, match func(elem T) bool) (int, bool) {
	for idx, elem := range set {
		if match(elem) {
			return idx, true
		}
	}

	return -1, false
}

func ExistInArray[T ~string | int | int8 | int16 | int32 | int64 | float32 | float64](set []T, value T) bool {
	_, found := ArrayContains(set, func(elem T) bool {
		return elem == value
	})

	return found
}

// Map applies transform to every element of set, preserving order.
func Map[T, V any](set []T, transform func(elem T) V) []V {
	result := make([]V, len(set))
	for idx, elem := range set {
		result[idx] = transform(elem)
	}

	return result
}
