package core

// FilterKeys narrows the resource keys selected for export. An empty
// filter keeps everything.
func FilterKeys(original []string, filter []string) (filtered []string) {
	if len(filter) == 0 {
		return original
	}
	for _, key := range original {
		if contains(filter, key) {
			filtered = append(filtered, key)
		}
	}
	return filtered
}

func contains(haystack []string, needle string) bool {
	for _, straw := range haystack {
		if straw == needle {
			return true
		}
	}
	return false
}
