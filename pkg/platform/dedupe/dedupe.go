// Package dedupe removes repeated elements from slices while keeping order.
package dedupe

// ByKey returns values with every element whose key was already seen
// removed. The first occurrence wins and order is preserved.
//
// Example:
//
//	ByKey([]string{"12", "000000012", "7"}, canonicalID)
//	// Returns: []string{"12", "7"}
func ByKey[T any, K comparable](values []T, key func(T) K) []T {
	if len(values) == 0 {
		return values
	}

	seen := make(map[K]struct{}, len(values))
	result := make([]T, 0, len(values))

	for _, v := range values {
		k := key(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, v)
	}

	return result
}
