package repos

import (
	"context"
	"fmt"
)

// Provider creates and enumerates repositories on a hosting service
type Provider interface {
	// Create registers a new repository for the authenticated user
	Create(ctx context.Context, repo *Repo) (*Repo, error)

	// List enumerates the authenticated user's repositories
	List(ctx context.Context) ([]*Repo, error)
}

// MockProvider implements Provider for testing
type MockProvider struct {
	Repos []*Repo

	// CreateErr and ListErr force the corresponding call to fail
	CreateErr error
	ListErr   error

	Created []*Repo
}

// NewMockProvider creates an empty mock provider
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Create records the repo and appends it to the provider's listing
func (m *MockProvider) Create(ctx context.Context, repo *Repo) (*Repo, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}

	for _, existing := range m.Repos {
		if existing.Name == repo.Name && existing.User == repo.User {
			return nil, fmt.Errorf("repository already exists: %s", repo)
		}
	}

	m.Created = append(m.Created, repo)
	m.Repos = append(m.Repos, repo)
	return repo, nil
}

// List returns the configured repos
func (m *MockProvider) List(ctx context.Context) ([]*Repo, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return append([]*Repo(nil), m.Repos...), nil
}
