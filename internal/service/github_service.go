package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"devconnect/internal/cache"
	"devconnect/internal/models"
	"devconnect/internal/observability"
)

var githubUsernameRe = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,38})$`)

// GithubService looks up a user's five most recently created public
// repositories from the GitHub API.
type GithubService struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewGithubService(baseURL, token string) *GithubService {
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}
	return &GithubService{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetRepos returns up to five repositories for the username. Any
// upstream failure, non-200 response, or empty result is reported as
// a missing GitHub profile rather than leaked to the client.
func (s *GithubService) GetRepos(ctx context.Context, username string) ([]models.GithubRepo, error) {
	if !githubUsernameRe.MatchString(username) {
		return nil, models.NewNotFoundError("No Github profile found")
	}

	var repos []models.GithubRepo
	if found, err := cache.GetJSON(ctx, cache.GithubReposKey(username), &repos); err == nil && found {
		observability.GithubLookups.WithLabelValues("cache_hit").Inc()
		return repos, nil
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc", s.baseURL, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		observability.GithubLookups.WithLabelValues("error").Inc()
		return nil, models.NewNotFoundError("No Github profile found")
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		observability.GithubLookups.WithLabelValues("error").Inc()
		return nil, models.NewNotFoundError("No Github profile found")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		observability.GithubLookups.WithLabelValues("not_found").Inc()
		return nil, models.NewNotFoundError("No Github profile found")
	}

	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		observability.GithubLookups.WithLabelValues("error").Inc()
		return nil, models.NewNotFoundError("No Github profile found")
	}
	if len(repos) == 0 {
		observability.GithubLookups.WithLabelValues("not_found").Inc()
		return nil, models.NewNotFoundError("No Github profile found")
	}

	observability.GithubLookups.WithLabelValues("ok").Inc()
	_ = cache.SetJSON(ctx, cache.GithubReposKey(username), repos, cache.GithubReposTTL)
	return repos, nil
}
