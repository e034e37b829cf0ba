package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"resumatch/resume-matcher/internal/models"
)

// GithubService fetches a user's public profile and most recently pushed
// repositories from the GitHub REST API.
type GithubService interface {
	FetchProfile(ctx context.Context, username string) (*models.GithubProfile, error)
}

type githubService struct {
	apiBase    string
	token      string
	httpClient *http.Client
}

func NewGithubService(apiBase, token string) GithubService {
	return &githubService{
		apiBase: apiBase,
		token:   token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type githubUserResponse struct {
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	PublicRepos int    `json:"public_repos"`
}

type githubRepoResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stargazers_count"`
	HTMLURL     string `json:"html_url"`
}

// FetchProfile implements GithubService.
func (g *githubService) FetchProfile(ctx context.Context, username string) (*models.GithubProfile, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	var user githubUserResponse
	status, err := g.getJSON(ctx, fmt.Sprintf("%s/users/%s", g.apiBase, username), &user)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalFetch, err)
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, username)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: github returned status %d for user %s", ErrExternalFetch, status, username)
	}

	var repos []githubRepoResponse
	status, err = g.getJSON(ctx, fmt.Sprintf("%s/users/%s/repos?sort=pushed&per_page=5", g.apiBase, username), &repos)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalFetch, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: github returned status %d for repos of %s", ErrExternalFetch, status, username)
	}

	profile := &models.GithubProfile{
		Name:        user.Name,
		Bio:         user.Bio,
		Location:    user.Location,
		PublicRepos: user.PublicRepos,
		TopProjects: make([]models.GithubProject, 0, len(repos)),
	}

	for _, repo := range repos {
		profile.TopProjects = append(profile.TopProjects, models.GithubProject{
			Name:        repo.Name,
			Description: repo.Description,
			Language:    repo.Language,
			Stars:       repo.Stars,
			URL:         repo.HTMLURL,
		})
	}

	return profile, nil
}

func (g *githubService) getJSON(ctx context.Context, url string, target interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}

	return resp.StatusCode, nil
}
