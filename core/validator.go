package core

import (
	"fmt"

	"github.com/guildroster/porter/contracts"
)

// ValidateBundle checks every entry against the closed set of resource
// types and the array-shaped data requirement. All violations are
// collected so the caller can report everything wrong in one pass.
func ValidateBundle(bundle contracts.ExportBundle) contracts.ValidationResult {
	var errors []string
	for _, key := range sortedKeys(bundle) {
		envelope := bundle[key]
		if !contracts.KnownResourceType(envelope.ID) {
			errors = append(errors, "Unknown data type: "+envelope.ID)
		}
		if key != envelope.ID {
			errors = append(errors, fmt.Sprintf("Key %s does not match envelope id %s", key, envelope.ID))
		}
		if !envelope.DataIsArray() {
			errors = append(errors, "Data for "+envelope.ID+" is not an array")
		}
	}
	return contracts.ValidationResult{Valid: len(errors) == 0, Errors: errors}
}
