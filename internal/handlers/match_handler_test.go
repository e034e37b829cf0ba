package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumatch/resume-matcher/internal/handlers"
	"resumatch/resume-matcher/internal/models"
	"resumatch/resume-matcher/internal/services"
)

// stubMatcher implements services.MatcherService with canned responses.
type stubMatcher struct {
	matchResult *models.MatchResult
	letter      string
	resume      string
	err         error
}

func (s *stubMatcher) Match(ctx context.Context, resumeText, jobDescription string) (*models.MatchResult, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobDescription) == "" {
		return nil, services.ErrInvalidInput
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.matchResult, nil
}

func (s *stubMatcher) CoverLetter(ctx context.Context, resumeText, jobDescription string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.letter, nil
}

func (s *stubMatcher) ResumeFromProfile(ctx context.Context, profile *models.GithubProfile) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.resume, nil
}

func newTestApp(matcher services.MatcherService) *fiber.App {
	app := fiber.New()
	app.Post("/api/v1/match", handlers.NewMatchHandler(matcher).HandleMatch)
	app.Post("/api/v1/generate-cover-letter", handlers.NewCoverLetterHandler(matcher).HandleGenerate)
	app.Post("/api/v1/generate-resume", handlers.NewResumeHandler(matcher).HandleGenerate)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestHandleMatch(t *testing.T) {
	matcher := &stubMatcher{matchResult: &models.MatchResult{
		Score:             82,
		MatchingSkills:    []string{"Go", "Kubernetes"},
		MissingSkills:     []string{"gRPC"},
		ATSSuggestions:    []string{},
		LearningResources: []models.LearningResource{},
	}}
	app := newTestApp(matcher)

	status, body := postJSON(t, app, "/api/v1/match",
		`{"resume_text":"Senior engineer skilled in Go, Kubernetes, gRPC.","job_description":"Looking for a Go engineer with Kubernetes experience."}`)

	assert.Equal(t, fiber.StatusOK, status)

	var result models.MatchResult
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, 82, result.Score)
	assert.Equal(t, []string{"Go", "Kubernetes"}, result.MatchingSkills)
	assert.Equal(t, []string{"gRPC"}, result.MissingSkills)
}

func TestHandleMatchEmptyJobDescription(t *testing.T) {
	app := newTestApp(&stubMatcher{})

	status, body := postJSON(t, app, "/api/v1/match", `{"resume_text":"some resume","job_description":""}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(body), "error")
}

func TestHandleMatchInvalidPayload(t *testing.T) {
	app := newTestApp(&stubMatcher{})

	status, _ := postJSON(t, app, "/api/v1/match", `{not json`)

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestHandleMatchModelUnavailable(t *testing.T) {
	app := newTestApp(&stubMatcher{err: services.ErrModelUnavailable})

	status, body := postJSON(t, app, "/api/v1/match", `{"resume_text":"r","job_description":"j"}`)

	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Contains(t, string(body), "model backend unavailable")
}

func TestHandleCoverLetter(t *testing.T) {
	app := newTestApp(&stubMatcher{letter: "Dear Hiring Manager, ..."})

	status, body := postJSON(t, app, "/api/v1/generate-cover-letter", `{"resume_text":"r","job_description":"j"}`)

	assert.Equal(t, fiber.StatusOK, status)

	var resp models.CoverLetterResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "Dear Hiring Manager, ...", resp.CoverLetter)
}

func TestHandleGenerateResume(t *testing.T) {
	app := newTestApp(&stubMatcher{resume: "## Jane Doe"})

	status, body := postJSON(t, app, "/api/v1/generate-resume", `{"githubData":{"name":"Jane Doe","public_repos":12}}`)

	assert.Equal(t, fiber.StatusOK, status)

	var resp models.GenerateResumeResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "## Jane Doe", resp.ResumeContent)
}
