package models

type MatchRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

type ParseResponse struct {
	Text string `json:"text"`
}

type CoverLetterResponse struct {
	CoverLetter string `json:"coverLetter"`
}

type GenerateResumeRequest struct {
	GithubData GithubProfile `json:"githubData"`
}

type GenerateResumeResponse struct {
	ResumeContent string `json:"resumeContent"`
}

type DownloadPDFRequest struct {
	ResumeContent string `json:"resumeContent"`
}
