package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTags_SplitsTrimsAndSorts(t *testing.T) {
	tags := ParseTags("django, CRM ,  billing")
	require.Equal(t, Tags{"CRM", "billing", "django"}, tags)
}

func TestParseTags_DropsEmptyAndDuplicateEntries(t *testing.T) {
	tags := ParseTags("django,,django, ")
	require.Equal(t, Tags{"django"}, tags)
}

func TestParseTags_EmptyInput(t *testing.T) {
	require.Empty(t, ParseTags(""))
}

func TestTags_Contains(t *testing.T) {
	tags := ParseTags("billing,django")
	require.True(t, tags.Contains("django"))
	require.False(t, tags.Contains("crm"))
}

func TestTags_String(t *testing.T) {
	require.Equal(t, "billing,django", ParseTags("django,billing").String())
}
