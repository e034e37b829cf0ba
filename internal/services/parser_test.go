package services_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumatch/resume-matcher/internal/models"
	"resumatch/resume-matcher/internal/services"
)

func TestParseCanonicalResult(t *testing.T) {
	parser := services.NewMatchResultParser()

	result := parser.Parse(`{
		"score": 75,
		"matching_skills": ["Go", "Docker"],
		"missing_skills": ["Kubernetes"],
		"ats_suggestions": ["Add quantifiable achievements"],
		"learning_resources": [{"skill": "Kubernetes", "resources": ["https://kubernetes.io/docs/tutorials/"]}]
	}`)

	assert.Equal(t, 75, result.Score)
	assert.Equal(t, []string{"Go", "Docker"}, result.MatchingSkills)
	assert.Equal(t, []string{"Kubernetes"}, result.MissingSkills)
	assert.Equal(t, []string{"Add quantifiable achievements"}, result.ATSSuggestions)
	require.Len(t, result.LearningResources, 1)
	assert.Equal(t, "Kubernetes", result.LearningResources[0].Skill)
	assert.Equal(t, []string{"https://kubernetes.io/docs/tutorials/"}, result.LearningResources[0].Resources)
}

func TestParseAliasKeys(t *testing.T) {
	parser := services.NewMatchResultParser()

	result := parser.Parse(`{"score":82,"missing":["gRPC"],"matching":["Go","Kubernetes"]}`)

	assert.Equal(t, 82, result.Score)
	assert.Equal(t, []string{"Go", "Kubernetes"}, result.MatchingSkills)
	assert.Equal(t, []string{"gRPC"}, result.MissingSkills)
	assert.Equal(t, []string{}, result.ATSSuggestions)
	assert.Equal(t, []models.LearningResource{}, result.LearningResources)
}

func TestParseMatchScoreAlias(t *testing.T) {
	parser := services.NewMatchResultParser()

	result := parser.Parse(`{"match_score": 64, "matching_skills": ["SQL"]}`)

	assert.Equal(t, 64, result.Score)
	assert.Equal(t, []string{"SQL"}, result.MatchingSkills)
}

func TestParseClampsScore(t *testing.T) {
	parser := services.NewMatchResultParser()

	assert.Equal(t, 100, parser.Parse(`{"score": 140}`).Score)
	assert.Equal(t, 0, parser.Parse(`{"score": -3}`).Score)
	assert.Equal(t, 82, parser.Parse(`{"score": 82.6}`).Score)
}

func TestParseMarkdownFencedOutput(t *testing.T) {
	parser := services.NewMatchResultParser()

	result := parser.Parse("```json\n{\"score\": 55, \"matching_skills\": [\"Go\"]}\n```")

	assert.Equal(t, 55, result.Score)
	assert.Equal(t, []string{"Go"}, result.MatchingSkills)
}

func TestParseJSONEmbeddedInProse(t *testing.T) {
	parser := services.NewMatchResultParser()

	result := parser.Parse(`Sure! Here is the analysis you asked for:
{"score": 40, "missing_skills": ["Rust"]}
Let me know if you need anything else.`)

	assert.Equal(t, 40, result.Score)
	assert.Equal(t, []string{"Rust"}, result.MissingSkills)
}

func TestParseNonJSONFallsBackToZeroResult(t *testing.T) {
	parser := services.NewMatchResultParser()

	result := parser.Parse("I cannot comply with that request.")

	assert.Equal(t, models.ZeroMatchResult(), result)
}

func TestParseResultNeverContainsNullSequences(t *testing.T) {
	parser := services.NewMatchResultParser()

	result := parser.Parse(`{"score": 10}`)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "null")

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"matching_skills", "missing_skills", "ats_suggestions", "learning_resources"} {
		assert.Contains(t, decoded, key)
	}
}

func TestParseLearningResourceSingleString(t *testing.T) {
	parser := services.NewMatchResultParser()

	result := parser.Parse(`{
		"score": 30,
		"learning_resources": [
			{"skill": "Docker", "resource": "https://www.youtube.com/watch?v=fqMOX6JJhGo"},
			{"skill": "AWS", "resource": ["https://aws.amazon.com/training/", "https://www.youtube.com/watch?v=ulprqHHWlng"]}
		]
	}`)

	require.Len(t, result.LearningResources, 2)
	assert.Equal(t, []string{"https://www.youtube.com/watch?v=fqMOX6JJhGo"}, result.LearningResources[0].Resources)
	assert.Equal(t, []string{
		"https://aws.amazon.com/training/",
		"https://www.youtube.com/watch?v=ulprqHHWlng",
	}, result.LearningResources[1].Resources)
}

func TestParseIsDeterministic(t *testing.T) {
	parser := services.NewMatchResultParser()
	raw := `{"score":82,"missing":["gRPC"],"matching":["Go","Kubernetes"]}`

	first := parser.Parse(raw)
	second := parser.Parse(raw)

	assert.Equal(t, first, second)
}
