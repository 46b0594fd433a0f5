package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewOrganization_DerivesCodeFromName(t *testing.T) {
	org := NewOrganization(OrganizationBusiness, "Devel May Care", "")
	require.Equal(t, "DMC", org.Code)
	require.Equal(t, OrganizationBusiness, org.Type)
}

func TestNewOrganization_KeepsExplicitCode(t *testing.T) {
	org := NewOrganization(OrganizationClient, "Acme Corporation", "ACME")
	require.Equal(t, "ACME", org.Code)
}

func TestDefaultOrganizationCode_SingleWord(t *testing.T) {
	require.Equal(t, "A", DefaultOrganizationCode("acme"))
}

func TestDefaultOrganizationCode_EmptyName(t *testing.T) {
	require.Equal(t, "", DefaultOrganizationCode(""))
}
