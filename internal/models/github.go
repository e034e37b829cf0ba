package models

// GithubProfile is the structured profile returned by the GitHub fetcher.
// Immutable once fetched; the resume flow only serializes it into a prompt.
type GithubProfile struct {
	Name        string          `json:"name"`
	Bio         string          `json:"bio"`
	Location    string          `json:"location"`
	PublicRepos int             `json:"public_repos"`
	TopProjects []GithubProject `json:"top_projects"`
}

type GithubProject struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
	URL         string `json:"url"`
}
