package domain

import "testing"

func TestRelevanceScore(t *testing.T) {
	distance := 0.25
	chunk := RetrievedChunk{Distance: &distance}

	score := chunk.RelevanceScore()
	if score == nil || *score != 0.75 {
		t.Errorf("RelevanceScore() = %v, want 0.75", score)
	}
}

func TestRelevanceScoreNilDistance(t *testing.T) {
	chunk := RetrievedChunk{}
	if score := chunk.RelevanceScore(); score != nil {
		t.Errorf("RelevanceScore() = %v, want nil for missing distance", *score)
	}
}
