package driven

// Extractor converts a raw file of a declared type into plain text.
type Extractor interface {
	// Extract reads the file at path and returns its plain-text content
	Extract(path string) (string, error)

	// SupportedTypes returns the file extensions this extractor handles
	// (lowercase, dot-prefixed, e.g. ".txt")
	SupportedTypes() []string
}

// ExtractorRegistry resolves an extractor for a file extension.
type ExtractorRegistry interface {
	// Register registers an extractor
	Register(e Extractor)

	// Get returns the extractor for an extension, or nil when none matches
	Get(ext string) Extractor

	// List returns all registered extensions
	List() []string
}
