package cartcontroller

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/VasifPeerji/sweet-shop-management-system/apperr"
	"github.com/VasifPeerji/sweet-shop-management-system/database"
	"github.com/VasifPeerji/sweet-shop-management-system/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createSweet(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Sweet {
	t.Helper()
	sweet := models.Sweet{
		ID:       uuid.NewString(),
		Name:     name,
		Category: "Indian Sweets",
		Price:    price,
		Stock:    stock,
		Weight:   "250g",
	}
	require.NoError(t, db.Create(&sweet).Error)
	return sweet
}

func TestGetOrCreateCartIdempotent(t *testing.T) {
	db := setupDB(t)

	first, err := GetOrCreateCart(db, "user-1")
	require.NoError(t, err)
	second, err := GetOrCreateCart(db, "user-1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", "user-1").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddItemRecomputesTotal(t *testing.T) {
	db := setupDB(t)
	gulab := createSweet(t, db, "Gulab Jamun", 25, 50)
	kaju := createSweet(t, db, "Kaju Katli", 45, 30)

	cart, err := AddItem(db, "user-1", gulab.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, float64(50), cart.Total)

	cart, err = AddItem(db, "user-1", kaju.ID, 1)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, float64(95), cart.Total)
}

func TestAddItemQuantitiesAdd(t *testing.T) {
	db := setupDB(t)
	gulab := createSweet(t, db, "Gulab Jamun", 25, 50)

	_, err := AddItem(db, "user-1", gulab.ID, 2)
	require.NoError(t, err)
	cart, err := AddItem(db, "user-1", gulab.ID, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, float64(125), cart.Total)
}

func TestAddItemSnapshotsPrice(t *testing.T) {
	db := setupDB(t)
	gulab := createSweet(t, db, "Gulab Jamun", 25, 50)

	cart, err := AddItem(db, "user-1", gulab.ID, 1)
	require.NoError(t, err)

	// a later catalog price change must not touch the cart snapshot
	require.NoError(t, db.Model(&models.Sweet{}).Where("id = ?", gulab.ID).Update("price", 99).Error)

	cart, err = GetOrCreateCart(db, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, float64(25), cart.Items[0].Price)
	assert.Equal(t, float64(25), cart.Total)
}

func TestAddItemInsufficientStock(t *testing.T) {
	db := setupDB(t)
	gulab := createSweet(t, db, "Gulab Jamun", 25, 5)

	_, err := GetOrCreateCart(db, "user-1")
	require.NoError(t, err)

	_, err = AddItem(db, "user-1", gulab.ID, 6)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInsufficientStock))

	cart, err := GetOrCreateCart(db, "user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, float64(0), cart.Total)
}

func TestAddItemUnknownSweet(t *testing.T) {
	db := setupDB(t)

	_, err := AddItem(db, "user-1", "no-such-id", 1)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestAddItemNonPositiveQuantity(t *testing.T) {
	db := setupDB(t)
	gulab := createSweet(t, db, "Gulab Jamun", 25, 5)

	_, err := AddItem(db, "user-1", gulab.ID, 0)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestSetItemQuantityReplaces(t *testing.T) {
	db := setupDB(t)
	gulab := createSweet(t, db, "Gulab Jamun", 25, 50)

	_, err := AddItem(db, "user-1", gulab.ID, 2)
	require.NoError(t, err)

	cart, err := SetItemQuantity(db, "user-1", gulab.ID, 4)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.Equal(t, float64(100), cart.Total)
}

func TestSetItemQuantityZeroRemoves(t *testing.T) {
	db := setupDB(t)
	gulab := createSweet(t, db, "Gulab Jamun", 25, 50)

	_, err := AddItem(db, "user-1", gulab.ID, 2)
	require.NoError(t, err)

	cart, err := SetItemQuantity(db, "user-1", gulab.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, float64(0), cart.Total)
}

func TestSetItemQuantityRevalidatesStock(t *testing.T) {
	db := setupDB(t)
	gulab := createSweet(t, db, "Gulab Jamun", 25, 5)

	_, err := AddItem(db, "user-1", gulab.ID, 2)
	require.NoError(t, err)

	_, err = SetItemQuantity(db, "user-1", gulab.ID, 6)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInsufficientStock))

	cart, err := GetOrCreateCart(db, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestSetItemQuantityMissing(t *testing.T) {
	db := setupDB(t)
	gulab := createSweet(t, db, "Gulab Jamun", 25, 50)

	// no cart at all
	_, err := SetItemQuantity(db, "user-1", gulab.ID, 1)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	// cart exists, item does not
	_, err = GetOrCreateCart(db, "user-1")
	require.NoError(t, err)
	_, err = SetItemQuantity(db, "user-1", gulab.ID, 1)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestRemoveItem(t *testing.T) {
	db := setupDB(t)
	gulab := createSweet(t, db, "Gulab Jamun", 25, 50)
	kaju := createSweet(t, db, "Kaju Katli", 45, 30)

	_, err := AddItem(db, "user-1", gulab.ID, 1)
	require.NoError(t, err)
	_, err = AddItem(db, "user-1", kaju.ID, 1)
	require.NoError(t, err)

	cart, err := RemoveItem(db, "user-1", gulab.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, float64(45), cart.Total)

	// removing an absent item is not an error
	cart, err = RemoveItem(db, "user-1", gulab.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestRemoveItemMissingCart(t *testing.T) {
	db := setupDB(t)

	_, err := RemoveItem(db, "user-1", "anything")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestClearNeverFails(t *testing.T) {
	db := setupDB(t)

	// no cart yet
	require.NoError(t, Clear(db, "user-1"))

	gulab := createSweet(t, db, "Gulab Jamun", 25, 50)
	_, err := AddItem(db, "user-1", gulab.ID, 2)
	require.NoError(t, err)

	require.NoError(t, Clear(db, "user-1"))

	cart, err := GetOrCreateCart(db, "user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, float64(0), cart.Total)

	// clearing an already-empty cart stays fine
	require.NoError(t, Clear(db, "user-1"))
}
