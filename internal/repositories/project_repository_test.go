package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarvMa/arpas-backend/internal/models"
	"github.com/MarvMa/arpas-backend/internal/repositories"
)

func TestProjectRepository_CreateAssignsID(t *testing.T) {
	resetTables(t)
	repo := repositories.NewProjectRepository(testPool)

	project := &models.Project{Name: "first", Description: strPtr("one")}
	require.NoError(t, repo.Create(project))
	assert.Equal(t, int64(1), project.ID)

	second := &models.Project{Name: "second"}
	require.NoError(t, repo.Create(second))
	assert.Equal(t, int64(2), second.ID)
}

func TestProjectRepository_GetByID(t *testing.T) {
	resetTables(t)
	repo := repositories.NewProjectRepository(testPool)

	project := &models.Project{Name: "site", Description: strPtr("main site")}
	require.NoError(t, repo.Create(project))

	found, err := repo.GetByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, project, found)

	missing, err := repo.GetByID(99)
	require.NoError(t, err)
	assert.Nil(t, missing, "missing row reports nil, not an error")
}

func TestProjectRepository_NullDescription(t *testing.T) {
	resetTables(t)
	repo := repositories.NewProjectRepository(testPool)

	project := &models.Project{Name: "bare"}
	require.NoError(t, repo.Create(project))

	found, err := repo.GetByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Nil(t, found.Description)
}

func TestProjectRepository_UpdateAndDelete(t *testing.T) {
	resetTables(t)
	repo := repositories.NewProjectRepository(testPool)

	project := &models.Project{Name: "old", Description: strPtr("desc")}
	require.NoError(t, repo.Create(project))

	project.Name = "new"
	project.Description = nil
	require.NoError(t, repo.Update(project))

	found, err := repo.GetByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "new", found.Name)
	assert.Nil(t, found.Description)

	require.NoError(t, repo.Delete(project.ID))

	found, err = repo.GetByID(project.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestProjectRepository_GetAll(t *testing.T) {
	resetTables(t)
	repo := repositories.NewProjectRepository(testPool)

	projects, err := repo.GetAll()
	require.NoError(t, err)
	assert.NotNil(t, projects, "empty result must still marshal as []")
	assert.Empty(t, projects)

	require.NoError(t, repo.Create(&models.Project{Name: "a"}))
	require.NoError(t, repo.Create(&models.Project{Name: "b"}))

	projects, err = repo.GetAll()
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "a", projects[0].Name)
	assert.Equal(t, "b", projects[1].Name)
}
