package repos

import (
	"context"
	"fmt"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubProvider implements Provider against the GitHub API
type GitHubProvider struct {
	client *github.Client
	user   string
}

// NewGitHubProvider creates a provider authenticated with a personal access
// token.
func NewGitHubProvider(user, token string) *GitHubProvider {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)

	return &GitHubProvider{
		client: github.NewClient(tc),
		user:   user,
	}
}

// Create registers a new repository for the authenticated user
func (p *GitHubProvider) Create(ctx context.Context, repo *Repo) (*Repo, error) {
	created, _, err := p.client.Repositories.Create(ctx, "", &github.Repository{
		Name:        github.String(repo.Name),
		Private:     github.Bool(repo.Private),
		Description: github.String(repo.Description),
		HasIssues:   github.Bool(repo.HasIssues),
		HasWiki:     github.Bool(repo.HasWiki),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create repository %s: %w", repo.Name, err)
	}

	return &Repo{
		Name:        created.GetName(),
		Host:        HostGitHub,
		User:        created.GetOwner().GetLogin(),
		Type:        "git",
		Private:     created.GetPrivate(),
		Description: created.GetDescription(),
		HasIssues:   created.GetHasIssues(),
		HasWiki:     created.GetHasWiki(),
	}, nil
}

// List enumerates the authenticated user's repositories, following
// pagination to the end.
func (p *GitHubProvider) List(ctx context.Context) ([]*Repo, error) {
	opts := &github.RepositoryListOptions{
		Type:        "owner",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var repos []*Repo
	for {
		page, resp, err := p.client.Repositories.List(ctx, "", opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories: %w", err)
		}

		for _, r := range page {
			repos = append(repos, &Repo{
				Name:    r.GetName(),
				Host:    HostGitHub,
				User:    r.GetOwner().GetLogin(),
				Type:    "git",
				Private: r.GetPrivate(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return repos, nil
}
