package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Invalid arguments (DV001-DV009)
	// ============================================

	"DV001": {
		Category:   CategoryInvalidArgument,
		Message:    "Invalid component id",
		Suggestion: "Ids must be non-empty and use only letters, digits, '_' and '-'.",
	},
	"DV002": {
		Category:   CategoryInvalidArgument,
		Message:    "Invalid header level",
		Suggestion: "Header levels range from 1 to 6.",
	},
	"DV003": {
		Category:   CategoryInvalidArgument,
		Message:    "Invalid header color",
		Suggestion: "Use one of: gray, blue, green, red, yellow, purple.",
	},
	"DV004": {
		Category: CategoryInvalidArgument,
		Message:  "Invalid table option",
	},
	"DV005": {
		Category:   CategoryInvalidArgument,
		Message:    "Invalid document node",
		Suggestion: "Each body entry must have exactly one kind key, e.g. 'header:' or 'row:'.",
	},
	"DV006": {
		Category:   CategoryInvalidArgument,
		Message:    "Unsupported data format",
		Suggestion: "Table data files must be .json, .yaml, .yml, .msgpack or .mp.",
	},
	"DV007": {
		Category: CategoryInvalidArgument,
		Message:  "JSON view data cannot be encoded as JSON",
	},
	"DV008": {
		Category: CategoryInvalidArgument,
		Message:  "Malformed data file",
	},
	"DV009": {
		Category:   CategoryInvalidArgument,
		Message:    "Malformed document",
		Suggestion: "Documents are YAML mappings with an optional title and a body list.",
	},

	// ============================================
	// Missing resources (DV010-DV019)
	// ============================================

	"DV010": {
		Category: CategoryResourceMissing,
		Message:  "Document not found",
	},
	"DV011": {
		Category: CategoryResourceMissing,
		Message:  "Data file not found",
	},
	"DV012": {
		Category: CategoryResourceMissing,
		Message:  "Image not found",
	},
	"DV013": {
		Category: CategoryResourceMissing,
		Message:  "Unsupported image type",
	},

	// ============================================
	// Build state (DV020-DV039)
	// ============================================

	"DV020": {
		Category: CategoryConsistency,
		Message:  "Scope exit mismatch",
	},
	"DV021": {
		Category: CategoryDuplicateID,
		Message:  "Duplicate component id",
	},
	"DV030": {
		Category: CategoryNotImplemented,
		Message:  "Component does not implement rendering",
	},

	// ============================================
	// Configuration and CLI (DV100+)
	// ============================================

	"DV100": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration",
		Suggestion: "Check dataviewer.json against the documented fields.",
	},
	"DV101": {
		Category: CategoryConfig,
		Message:  "Configuration file could not be read",
	},
	"DV102": {
		Category:   CategoryCLI,
		Message:    "Unsupported output target",
		Suggestion: "Use a file path or s3://bucket/key.",
	},
	"DV103": {
		Category: CategoryCLI,
		Message:  "Publish failed",
	},
	"DV104": {
		Category: CategoryCLI,
		Message:  "CSS build failed",
	},
	"DV105": {
		Category: CategoryCLI,
		Message:  "Preview server failed",
	},
	"DV106": {
		Category: CategoryCLI,
		Message:  "Render failed",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
