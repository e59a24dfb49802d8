package chatsnap

// Extractor scrapes conversation turns and code artifacts from rendered
// share-page HTML.
type Extractor interface {
	// Extract walks message containers and code blocks in document
	// order and returns the retained turns and artifacts. Zero turns or
	// zero artifacts is a valid result, not an error: the share page's
	// markup may have drifted, and the pipeline degrades silently.
	Extract(html string) ([]Turn, []Artifact, error)
}
