package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tech-pulse/models"
)

func TestCategorySearchTerms(t *testing.T) {
	assert.Contains(t, models.CategoryCloud.SearchTerms(), "serverless")
	assert.Equal(t, models.CategoryAll.SearchTerms(), models.Category("quantum").SearchTerms())
	assert.Equal(t, models.CategoryAI.SearchTerms(), models.Category(" AI ").SearchTerms())
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, models.CategoryAll, models.NormalizeCategory(""))
	assert.Equal(t, models.CategoryDevOps, models.NormalizeCategory("DevOps"))
	assert.True(t, models.NormalizeCategory("ALL").IsWildcard())
	assert.False(t, models.CategoryAI.IsWildcard())
	assert.True(t, models.Category("Cloud").Valid())
	assert.False(t, models.Category("sports").Valid())
}
