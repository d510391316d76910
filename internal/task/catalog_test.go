package task

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_ProjectLifecycle(t *testing.T) {
	gdb := testDB(t)
	svc := &CatalogService{DB: gdb}
	ctx := context.Background()
	uid := uuid.New()

	p, err := svc.CreateProject(ctx, uid, SaveCatalogInput{Name: "Trabajo", Color: "#dc2626", Icon: "Briefcase"})
	require.NoError(t, err)

	p, err = svc.UpdateProject(ctx, uid, p.ID, SaveCatalogInput{Name: "Oficina", Color: "#dc2626", Icon: "Briefcase"})
	require.NoError(t, err)
	assert.Equal(t, "Oficina", p.Name)

	_, err = svc.UpdateProject(ctx, uuid.New(), p.ID, SaveCatalogInput{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := svc.ListProjects(ctx, uid)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteProject(ctx, uid, p.ID))
	list, err = svc.ListProjects(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCatalog_CategoryLifecycle(t *testing.T) {
	gdb := testDB(t)
	svc := &CatalogService{DB: gdb}
	ctx := context.Background()
	uid := uuid.New()

	_, err := svc.CreateCategory(ctx, uid, SaveCatalogInput{Name: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)

	c, err := svc.CreateCategory(ctx, uid, SaveCatalogInput{Name: "Salud", Color: "#65a30d", Icon: "Heart"})
	require.NoError(t, err)

	// other users never see it
	other, err := svc.ListCategories(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)

	mine, err := svc.ListCategories(ctx, uid)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Salud", mine[0].Name)

	require.NoError(t, svc.DeleteCategory(ctx, uid, c.ID))
	assert.ErrorIs(t, svc.DeleteCategory(ctx, uid, c.ID), ErrNotFound)
}
