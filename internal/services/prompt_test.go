package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resumatch/resume-matcher/internal/services"
)

func TestTemplateRender(t *testing.T) {
	tmpl := services.NewTemplate("greeting", "Hello {name}, welcome to {place}. Again: {name}.")

	out, err := tmpl.Render(map[string]string{
		"name":  "Ada",
		"place": "the team",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Hello Ada, welcome to the team. Again: Ada.", out)
}

func TestTemplateRenderMissingVariable(t *testing.T) {
	tmpl := services.NewTemplate("greeting", "Hello {name} from {place}")

	_, err := tmpl.Render(map[string]string{"name": "Ada"})
	assert.ErrorIs(t, err, services.ErrMissingVariable)
	assert.Contains(t, err.Error(), "place")
}

func TestTemplateRenderLiteralSubstitution(t *testing.T) {
	// No escaping: values are substituted verbatim, template syntax included.
	tmpl := services.NewTemplate("echo", "Value: {v}")

	out, err := tmpl.Render(map[string]string{"v": `{"score": 10}`})
	assert.NoError(t, err)
	assert.Equal(t, `Value: {"score": 10}`, out)
}

func TestPromptBuilderMatchPrompt(t *testing.T) {
	pb := services.NewPromptBuilder()

	prompt, err := pb.BuildMatchPrompt("my resume", "my jd")
	assert.NoError(t, err)
	assert.Contains(t, prompt, "my resume")
	assert.Contains(t, prompt, "my jd")
	assert.Contains(t, prompt, "ATS Scanner")
	assert.Contains(t, prompt, "learning_resources")
	assert.NotContains(t, prompt, "{resume}")
	assert.NotContains(t, prompt, "{jd}")
}

func TestPromptBuilderCoverLetterPrompt(t *testing.T) {
	pb := services.NewPromptBuilder()

	prompt, err := pb.BuildCoverLetterPrompt("resume body", "jd body")
	assert.NoError(t, err)
	assert.Contains(t, prompt, "resume body")
	assert.Contains(t, prompt, "jd body")
	assert.Contains(t, prompt, "cover letter")
}

func TestPromptBuilderResumePrompt(t *testing.T) {
	pb := services.NewPromptBuilder()

	prompt, err := pb.BuildResumePrompt(`{"name":"Ada"}`)
	assert.NoError(t, err)
	assert.Contains(t, prompt, `{"name":"Ada"}`)
	assert.Contains(t, prompt, "Markdown")
}
