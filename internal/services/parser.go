package services

import (
	"encoding/json"
	"log"
	"strings"

	"resumatch/resume-matcher/internal/models"
)

// MatchResultParser interprets the model's raw completion text as a
// MatchResult. Decoding never fails from the caller's point of view: a
// malformed completion degrades to the safe zero-result so one model hiccup
// cannot fail a user-facing request.
type MatchResultParser interface {
	Parse(raw string) *models.MatchResult
}

type matchResultParser struct{}

func NewMatchResultParser() MatchResultParser {
	return &matchResultParser{}
}

// matchResultWire tolerates the key aliases seen across model completions:
// score/match_score, matching/matching_skills, missing/missing_skills.
// Scores are decoded as floats because models occasionally emit 82.0.
type matchResultWire struct {
	Score             *float64                  `json:"score"`
	MatchScore        *float64                  `json:"match_score"`
	Matching          []string                  `json:"matching"`
	MatchingSkills    []string                  `json:"matching_skills"`
	Missing           []string                  `json:"missing"`
	MissingSkills     []string                  `json:"missing_skills"`
	ATSSuggestions    []string                  `json:"ats_suggestions"`
	LearningResources []models.LearningResource `json:"learning_resources"`
}

// Parse implements MatchResultParser.
func (p *matchResultParser) Parse(raw string) *models.MatchResult {
	clean := extractJSON(raw)

	var wire matchResultWire
	if err := json.Unmarshal([]byte(clean), &wire); err != nil {
		log.Printf("⚠️ Malformed model output, falling back to zero result: %v (completion: %s)", err, truncate(raw, 200))
		return models.ZeroMatchResult()
	}

	score := 0.0
	switch {
	case wire.Score != nil:
		score = *wire.Score
	case wire.MatchScore != nil:
		score = *wire.MatchScore
	}

	result := &models.MatchResult{
		Score:             clampScore(score),
		MatchingSkills:    coalesceSlice(wire.MatchingSkills, wire.Matching),
		MissingSkills:     coalesceSlice(wire.MissingSkills, wire.Missing),
		ATSSuggestions:    coalesceSlice(wire.ATSSuggestions, nil),
		LearningResources: wire.LearningResources,
	}

	if result.LearningResources == nil {
		result.LearningResources = []models.LearningResource{}
	}
	for i := range result.LearningResources {
		if result.LearningResources[i].Resources == nil {
			result.LearningResources[i].Resources = []string{}
		}
	}

	return result
}

func clampScore(score float64) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score)
}

func coalesceSlice(primary, fallback []string) []string {
	if len(primary) > 0 {
		return primary
	}
	if len(fallback) > 0 {
		return fallback
	}
	return []string{}
}

// extractJSON strips markdown code fences and cuts the text down to the
// outermost JSON object, since models often wrap their answer in prose.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return strings.TrimSpace(text)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
