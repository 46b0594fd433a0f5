package models

import "strings"

// OrganizationType identifies the role an organization plays in a project.
type OrganizationType string

const (
	// OrganizationBusiness creates and manages projects, on behalf of
	// itself or a client.
	OrganizationBusiness OrganizationType = "business"

	// OrganizationClient is the benefactor of a project.
	OrganizationClient OrganizationType = "client"

	// OrganizationAuthor is the author of documentation.
	OrganizationAuthor OrganizationType = "author"

	// OrganizationPublisher publishes documentation.
	OrganizationPublisher OrganizationType = "publisher"
)

// Organization represents the people involved in a project.
type Organization struct {
	Name    string
	Code    string
	Contact string
	Type    OrganizationType
}

// NewOrganization creates an organization. When code is empty it is derived
// from the name by capitalizing the first letter of each word, e.g.
// "Devel May Care" -> "DMC".
func NewOrganization(orgType OrganizationType, name, code string) *Organization {
	if code == "" {
		code = DefaultOrganizationCode(name)
	}

	return &Organization{
		Name: name,
		Code: code,
		Type: orgType,
	}
}

// DefaultOrganizationCode derives an organization code from its name
func DefaultOrganizationCode(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		first := []rune(word)[0]
		b.WriteString(strings.ToUpper(string(first)))
	}
	return b.String()
}

func (o *Organization) String() string {
	return o.Name
}
