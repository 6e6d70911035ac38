package contracts

// ExportConfig is the fully-resolved configuration for one export run:
// the CLI flags plus the export plan loaded from JSON.
type ExportConfig struct {
	MaxRetry int
	JSONPath string
	Plan     ExportPlan
}

// ExportPlan is the JSON-file (or stdin) half of the export configuration.
type ExportPlan struct {
	APIAddress     *URL     `json:"api_address"`
	Format         string   `json:"format"`
	OutputFilename string   `json:"output_filename"`
	Only           []string `json:"only"`
}
