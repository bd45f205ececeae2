package wishlistcontroller

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

func createSweet(t *testing.T, db *gorm.DB, name string, price float64) models.Sweet {
	t.Helper()
	sweet := models.Sweet{
		ID:       uuid.NewString(),
		Name:     name,
		Category: "Chocolates",
		Price:    price,
		Stock:    10,
	}
	require.NoError(t, db.Create(&sweet).Error)
	return sweet
}

func TestGetOrCreateWishlistIdempotent(t *testing.T) {
	db := setupDB(t)

	first, err := GetOrCreateWishlist(db, "user-1")
	require.NoError(t, err)
	second, err := GetOrCreateWishlist(db, "user-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Wishlist{}).Where("user_id = ?", "user-1").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddItem(t *testing.T) {
	db := setupDB(t)
	truffle := createSweet(t, db, "Dark Truffle", 60)

	wishlist, err := AddItem(db, "user-1", truffle.ID)
	require.NoError(t, err)
	require.Len(t, wishlist.Items, 1)
	assert.Equal(t, "Dark Truffle", wishlist.Items[0].Name)
	assert.Equal(t, float64(60), wishlist.Items[0].Price)
}

func TestAddItemDuplicate(t *testing.T) {
	db := setupDB(t)
	truffle := createSweet(t, db, "Dark Truffle", 60)

	_, err := AddItem(db, "user-1", truffle.ID)
	require.NoError(t, err)

	_, err = AddItem(db, "user-1", truffle.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindDuplicate))

	wishlist, err := GetOrCreateWishlist(db, "user-1")
	require.NoError(t, err)
	assert.Len(t, wishlist.Items, 1)
}

func TestAddItemUnknownSweet(t *testing.T) {
	db := setupDB(t)

	_, err := AddItem(db, "user-1", "no-such-id")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestRemoveItemIdempotent(t *testing.T) {
	db := setupDB(t)
	truffle := createSweet(t, db, "Dark Truffle", 60)

	_, err := AddItem(db, "user-1", truffle.ID)
	require.NoError(t, err)

	wishlist, err := RemoveItem(db, "user-1", truffle.ID)
	require.NoError(t, err)
	assert.Empty(t, wishlist.Items)

	// removing again is not an error
	wishlist, err = RemoveItem(db, "user-1", truffle.ID)
	require.NoError(t, err)
	assert.Empty(t, wishlist.Items)
}

func TestClear(t *testing.T) {
	db := setupDB(t)
	truffle := createSweet(t, db, "Dark Truffle", 60)
	gummy := createSweet(t, db, "Sour Gummy", 10)

	_, err := AddItem(db, "user-1", truffle.ID)
	require.NoError(t, err)
	_, err = AddItem(db, "user-1", gummy.ID)
	require.NoError(t, err)

	require.NoError(t, Clear(db, "user-1"))

	wishlist, err := GetOrCreateWishlist(db, "user-1")
	require.NoError(t, err)
	assert.Empty(t, wishlist.Items)

	// clearing a user with no wishlist is fine
	require.NoError(t, Clear(db, "user-2"))
}
