package services

import (
	"fmt"
	"regexp"
	"strings"
)

const coverLetterTemplate = `You are an expert career consultant.
Using the following Resume: "{resume}"
and this Job Description: "{jd}",
write a professional cover letter.
Highlight relevant skills from the resume that match the JD.
Keep it concise and professional.`

const matchTemplate = `Act as an ATS Scanner.

Resume: {resume}

Job Description: {jd}

Task:
1. Give a match score from 0 to 100 based on keyword overlap.
2. List matching skills as an array.
3. List missing critical skills from the JD as an array.
4. Provide ATS improvement suggestions as an array.
5. Recommend learning resources for missing skills as an array of objects with skill and full URL resource (e.g., https://www.youtube.com/...).

Output ONLY valid JSON with keys: score (number), matching_skills (array), missing_skills (array), ats_suggestions (array), learning_resources (array of objects with skill and resources).`

const githubResumeTemplate = `You are a professional Resume Writer.
Convert this GitHub profile JSON into a professional resume.
GitHub Data: {data}

Output Format: Markdown (clean, using ## for section headers and bullet lists for projects).
Do not include code fences. Just pure Markdown.`

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// Template is a fixed instruction string with named placeholders such as
// {resume} or {jd}. Rendering is literal substring substitution; callers are
// responsible for values that do not contain template syntax.
type Template struct {
	name string
	text string
}

func NewTemplate(name, text string) *Template {
	return &Template{name: name, text: text}
}

func (t *Template) Name() string {
	return t.name
}

// Render substitutes every placeholder with its value from vars. A
// placeholder without a value fails with ErrMissingVariable before any
// substitution output is returned.
func (t *Template) Render(vars map[string]string) (string, error) {
	out := t.text
	for _, match := range placeholderPattern.FindAllStringSubmatch(t.text, -1) {
		value, ok := vars[match[1]]
		if !ok {
			return "", fmt.Errorf("%w: %q in template %s", ErrMissingVariable, match[1], t.name)
		}
		out = strings.ReplaceAll(out, match[0], value)
	}
	return out, nil
}

type PromptBuilder struct {
	coverLetter *Template
	match       *Template
	resume      *Template
}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		coverLetter: NewTemplate("cover_letter", coverLetterTemplate),
		match:       NewTemplate("ats_match", matchTemplate),
		resume:      NewTemplate("github_resume", githubResumeTemplate),
	}
}

func (pb *PromptBuilder) BuildCoverLetterPrompt(resumeText, jobDescription string) (string, error) {
	return pb.coverLetter.Render(map[string]string{
		"resume": resumeText,
		"jd":     jobDescription,
	})
}

func (pb *PromptBuilder) BuildMatchPrompt(resumeText, jobDescription string) (string, error) {
	return pb.match.Render(map[string]string{
		"resume": resumeText,
		"jd":     jobDescription,
	})
}

func (pb *PromptBuilder) BuildResumePrompt(githubData string) (string, error) {
	return pb.resume.Render(map[string]string{
		"data": githubData,
	})
}
