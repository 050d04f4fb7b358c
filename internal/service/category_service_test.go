package service

import (
	"testing"

	"go-stockpilot/internal/apperr"
	"go-stockpilot/internal/model"
	"go-stockpilot/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCategoryWithProductsIsBlocked(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepo(db))

	category, err := svc.Create(&model.CategoryRequest{Name: "Electronics"})
	require.NoError(t, err)

	product := seedProduct(t, db, 10, 5)
	require.NoError(t, db.Model(product).Update("category_id", category.ID).Error)

	err = svc.Delete(category.ID)
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "CATEGORY_HAS_PRODUCTS", appErr.Code)

	// Still there.
	_, err = svc.Get(category.ID)
	require.NoError(t, err)
}

func TestDeleteCategoryBlockedBySoftDeletedProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepo(db))

	category, err := svc.Create(&model.CategoryRequest{Name: "Legacy"})
	require.NoError(t, err)

	product := seedProduct(t, db, 10, 5)
	require.NoError(t, db.Model(product).Updates(map[string]interface{}{
		"category_id": category.ID,
		"is_active":   false,
	}).Error)

	// Soft-deleted products keep their category reference, so they keep
	// blocking deletion.
	err = svc.Delete(category.ID)
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "CATEGORY_HAS_PRODUCTS", appErr.Code)

	_, err = svc.Get(category.ID)
	require.NoError(t, err)
}

func TestCategoryTree(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepo(db))

	parent, err := svc.Create(&model.CategoryRequest{Name: "Hardware"})
	require.NoError(t, err)

	parentID := parent.ID
	child, err := svc.Create(&model.CategoryRequest{Name: "Fasteners", ParentID: &parentID})
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, parent.ID, *child.ParentID)

	got, err := svc.Get(parent.ID)
	require.NoError(t, err)
	require.Len(t, got.Children, 1)
	assert.Equal(t, "Fasteners", got.Children[0].Name)
}

func TestCategoryListCountsAllReferencingProducts(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepo(db))

	category, err := svc.Create(&model.CategoryRequest{Name: "Tools"})
	require.NoError(t, err)

	active := seedProduct(t, db, 10, 5)
	require.NoError(t, db.Model(active).Update("category_id", category.ID).Error)
	inactive := seedProduct(t, db, 10, 5)
	require.NoError(t, db.Model(inactive).Updates(map[string]interface{}{
		"category_id": category.ID,
		"is_active":   false,
	}).Error)

	// The count mirrors the delete guard: soft-deleted products included.
	categories, _, err := svc.List(repository.ListQuery{})
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, int64(2), categories[0].ProductCount)
}
