package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"resumatch/resume-matcher/internal/models"
)

// MatcherService sequences the three generative flows: ATS match scoring,
// cover letter generation and resume synthesis from a GitHub profile. It
// holds no per-request state; the shared model client is injected so tests
// can substitute a stub.
type MatcherService interface {
	Match(ctx context.Context, resumeText, jobDescription string) (*models.MatchResult, error)
	CoverLetter(ctx context.Context, resumeText, jobDescription string) (string, error)
	ResumeFromProfile(ctx context.Context, profile *models.GithubProfile) (string, error)
}

type matcherService struct {
	llm           LLMService
	parser        MatchResultParser
	promptBuilder *PromptBuilder
	cache         MatchCache
	temperature   float32
	maxAttempts   int
}

// NewMatcherService builds the orchestrator. cache may be nil, in which case
// every match request goes to the model.
func NewMatcherService(llm LLMService, parser MatchResultParser, cache MatchCache, temperature float32, maxAttempts int) MatcherService {
	return &matcherService{
		llm:           llm,
		parser:        parser,
		promptBuilder: NewPromptBuilder(),
		cache:         cache,
		temperature:   temperature,
		maxAttempts:   maxAttempts,
	}
}

// Match implements MatcherService. Empty inputs are rejected before any
// downstream component runs, so no model call is wasted on them.
func (m *matcherService) Match(ctx context.Context, resumeText, jobDescription string) (*models.MatchResult, error) {
	if err := requireTexts(resumeText, jobDescription); err != nil {
		return nil, err
	}

	if m.cache != nil {
		if cached, ok := m.cache.Get(ctx, resumeText, jobDescription); ok {
			return cached, nil
		}
	}

	prompt, err := m.promptBuilder.BuildMatchPrompt(resumeText, jobDescription)
	if err != nil {
		return nil, err
	}

	completion, err := m.llm.GenerateTextWithRetry(ctx, prompt, m.temperature, m.maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("match flow: %w", err)
	}

	result := m.parser.Parse(completion)

	if m.cache != nil {
		m.cache.Set(ctx, resumeText, jobDescription, result)
	}

	return result, nil
}

// CoverLetter implements MatcherService. The completion is prose and is
// returned verbatim, without parsing or reformatting.
func (m *matcherService) CoverLetter(ctx context.Context, resumeText, jobDescription string) (string, error) {
	if err := requireTexts(resumeText, jobDescription); err != nil {
		return "", err
	}

	prompt, err := m.promptBuilder.BuildCoverLetterPrompt(resumeText, jobDescription)
	if err != nil {
		return "", err
	}

	completion, err := m.llm.GenerateTextWithRetry(ctx, prompt, m.temperature, m.maxAttempts)
	if err != nil {
		return "", fmt.Errorf("cover letter flow: %w", err)
	}

	return completion, nil
}

// ResumeFromProfile implements MatcherService. The profile is serialized to
// JSON for the prompt; the generated Markdown comes back verbatim.
func (m *matcherService) ResumeFromProfile(ctx context.Context, profile *models.GithubProfile) (string, error) {
	if profile == nil {
		return "", fmt.Errorf("%w: github profile is required", ErrInvalidInput)
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("failed to serialize github profile: %w", err)
	}

	prompt, err := m.promptBuilder.BuildResumePrompt(string(data))
	if err != nil {
		return "", err
	}

	log.Printf("📝 Resume prompt built for %q (%d bytes)", profile.Name, len(prompt))

	completion, err := m.llm.GenerateTextWithRetry(ctx, prompt, m.temperature, m.maxAttempts)
	if err != nil {
		return "", fmt.Errorf("resume flow: %w", err)
	}

	return completion, nil
}

func requireTexts(resumeText, jobDescription string) error {
	if strings.TrimSpace(resumeText) == "" {
		return fmt.Errorf("%w: resume text is required", ErrInvalidInput)
	}
	if strings.TrimSpace(jobDescription) == "" {
		return fmt.Errorf("%w: job description is required", ErrInvalidInput)
	}
	return nil
}
