package contracts

// ParseResult is the outcome of unpackaging an uploaded artifact. A result
// with no errors carries a usable bundle; warnings record entries that were
// skipped along the way.
type ParseResult struct {
	Bundle   ExportBundle
	Warnings []string
	Errors   []string
}

func (this ParseResult) OK() bool {
	return len(this.Errors) == 0
}

// ValidationResult reports every structural violation found in a bundle.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// ImportReport is the backend's per-resource, per-record error listing.
type ImportReport struct {
	Errors map[string][]string `json:"errors"`
}

func (this ImportReport) ErrorCount() (count int) {
	for _, errors := range this.Errors {
		count += len(errors)
	}
	return count
}
