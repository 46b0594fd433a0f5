// Package settings materializes the process environment into one explicit
// struct at startup. Domain code receives it by reference instead of
// reading ambient environment variables.
package settings

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings carries path roots, developer identity, and provider credentials
type Settings struct {
	// ProjectHome is where active projects are stored
	ProjectHome string

	// ProjectArchive is where archived projects are stored
	ProjectArchive string

	// ProjectsOnHold is where inactive projects are stored
	ProjectsOnHold string

	// RepoMetaPath is where repo.ini metadata files are kept by checkout
	RepoMetaPath string

	// DeveloperCode is a short abbreviation of the developer or company
	// name, used as the fallback business code.
	DeveloperCode string

	// DeveloperName is the developer or company name, used as the
	// fallback business name.
	DeveloperName string

	// DefaultSCM is the preferred provider host for repo operations
	DefaultSCM string

	GitHubUser        string
	GitHubPassword    string
	BitbucketUser     string
	BitbucketPassword string
}

// FromEnv builds Settings from the process environment, applying the same
// defaults the tool has always used.
func FromEnv() *Settings {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	bind := func(key, envVar, fallback string) {
		v.SetDefault(key, fallback)
		_ = v.BindEnv(key, envVar)
	}

	bind("project_home", "PROJECT_HOME", filepath.Join(home, "Work"))
	projectHome := v.GetString("project_home")

	bind("project_archive", "PROJECT_ARCHIVE", filepath.Join(projectHome, ".archive"))
	bind("projects_on_hold", "PROJECTS_ON_HOLD", filepath.Join(projectHome, ".hold"))
	bind("repo_meta_path", "REPO_META_PATH", filepath.Join(projectHome, ".repos"))
	bind("developer_code", "DEVELOPER_CODE", "UNK")
	bind("developer_name", "DEVELOPER_NAME", "Unidentified")
	bind("default_scm", "DEFAULT_SCM", "github")
	bind("github_user", "GITHUB_USER", "")
	bind("github_password", "GITHUB_PASSWORD", "")
	bind("bitbucket_user", "BITBUCKET_USER", "")
	bind("bitbucket_password", "BITBUCKET_PASSWORD", "")

	return &Settings{
		ProjectHome:       projectHome,
		ProjectArchive:    v.GetString("project_archive"),
		ProjectsOnHold:    v.GetString("projects_on_hold"),
		RepoMetaPath:      v.GetString("repo_meta_path"),
		DeveloperCode:     v.GetString("developer_code"),
		DeveloperName:     v.GetString("developer_name"),
		DefaultSCM:        v.GetString("default_scm"),
		GitHubUser:        v.GetString("github_user"),
		GitHubPassword:    v.GetString("github_password"),
		BitbucketUser:     v.GetString("bitbucket_user"),
		BitbucketPassword: v.GetString("bitbucket_password"),
	}
}

// GitHubEnabled reports whether GitHub credentials are configured
func (s *Settings) GitHubEnabled() bool {
	return s.GitHubUser != "" && s.GitHubPassword != ""
}

// BitbucketEnabled reports whether Bitbucket credentials are configured
func (s *Settings) BitbucketEnabled() bool {
	return s.BitbucketUser != "" && s.BitbucketPassword != ""
}
