package models

import "encoding/json"

// MatchResult is the structured output of the ATS match flow. Every slice is
// always non-nil so the JSON response never contains null arrays.
type MatchResult struct {
	Score             int                `json:"score"`
	MatchingSkills    []string           `json:"matching_skills"`
	MissingSkills     []string           `json:"missing_skills"`
	ATSSuggestions    []string           `json:"ats_suggestions"`
	LearningResources []LearningResource `json:"learning_resources"`
}

// LearningResource pairs a missing skill with one or more resource URLs.
type LearningResource struct {
	Skill     string   `json:"skill"`
	Resources []string `json:"resources"`
}

// UnmarshalJSON accepts both the canonical shape and the shapes the model
// tends to emit: a single "resource" string, a "resource" list, or "resources".
func (lr *LearningResource) UnmarshalJSON(data []byte) error {
	var raw struct {
		Skill     string          `json:"skill"`
		Resource  json.RawMessage `json:"resource"`
		Resources json.RawMessage `json:"resources"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	lr.Skill = raw.Skill
	lr.Resources = []string{}

	for _, msg := range []json.RawMessage{raw.Resource, raw.Resources} {
		if len(msg) == 0 {
			continue
		}
		var one string
		if err := json.Unmarshal(msg, &one); err == nil {
			if one != "" {
				lr.Resources = append(lr.Resources, one)
			}
			continue
		}
		var many []string
		if err := json.Unmarshal(msg, &many); err == nil {
			lr.Resources = append(lr.Resources, many...)
		}
	}

	return nil
}

// ZeroMatchResult is the safe fallback returned when the model's output
// cannot be interpreted: score 0 and empty, non-nil sequences.
func ZeroMatchResult() *MatchResult {
	return &MatchResult{
		Score:             0,
		MatchingSkills:    []string{},
		MissingSkills:     []string{},
		ATSSuggestions:    []string{},
		LearningResources: []LearningResource{},
	}
}
