package rtree

// insertAt inserts values into a slice at idx, shifting the tail.
func insertAt[T any](src []T, idx int, values ...T) []T {
	assert(idx >= 0 && idx <= len(src), "insertAt index out of range")
	if len(values) == 0 {
		return src
	}
	n := len(values)
	src = append(src, values...) // grow
	copy(src[idx+n:], src[idx:len(src)-n])
	copy(src[idx:], values)
	return src
}

// removeAt removes the element at idx, keeping the order of the rest.
func removeAt[T any](src []T, idx int) []T {
	assert(idx >= 0 && idx < len(src), "removeAt index out of range")
	copy(src[idx:], src[idx+1:])
	var zero T
	src[len(src)-1] = zero
	return src[:len(src)-1]
}

// pick collects the elements of src at the given indices, in index order.
func pick[T any](src []T, indices []int) []T {
	out := make([]T, 0, len(indices))
	for _, i := range indices {
		out = append(out, src[i])
	}
	return out
}
