package domain

// SearchFilters narrows a similarity search beyond the mandatory tenant tag.
type SearchFilters struct {
	Filename string `json:"filename,omitempty"`
}

// RetrievedChunk is one similarity-search hit. Results arrive ordered by
// ascending distance (descending similarity) as returned by the store.
type RetrievedChunk struct {
	ID       string        `json:"id"`
	Text     string        `json:"text"`
	Metadata ChunkMetadata `json:"metadata"`
	ChunkID  int           `json:"chunk_id"`

	// Distance is nil when the backend does not report one.
	Distance *float64 `json:"distance"`
}

// RelevanceScore converts distance to a similarity score (1 - distance).
// A missing distance propagates as nil, never as zero.
func (r RetrievedChunk) RelevanceScore() *float64 {
	if r.Distance == nil {
		return nil
	}
	score := 1 - *r.Distance
	return &score
}
