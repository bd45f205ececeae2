package wishlistcontroller

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/VasifPeerji/sweet-shop-management-system/apperr"
	"github.com/VasifPeerji/sweet-shop-management-system/models"
)

// GetOrCreateWishlist mirrors the cart's lazy one-per-user upsert.
func GetOrCreateWishlist(db *gorm.DB, userID string) (*models.Wishlist, error) {
	wishlist := models.Wishlist{ID: uuid.NewString(), UserID: userID}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&wishlist).Error; err != nil {
		return nil, err
	}
	return loadWishlist(db, userID)
}

func loadWishlist(db *gorm.DB, userID string) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := db.Preload("Items").Where("user_id = ?", userID).First(&wishlist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("wishlist not found")
	}
	if err != nil {
		return nil, err
	}
	return &wishlist, nil
}

// AddItem saves a sweet to the wishlist. Unlike the cart, items have set
// semantics: re-adding a present sweet is a Duplicate error and the
// wishlist is left unchanged.
func AddItem(db *gorm.DB, userID, sweetID string) (*models.Wishlist, error) {
	var out *models.Wishlist
	err := db.Transaction(func(tx *gorm.DB) error {
		var sweet models.Sweet
		if err := tx.First(&sweet, "id = ?", sweetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("sweet not found")
			}
			return err
		}

		wishlist, err := GetOrCreateWishlist(tx, userID)
		if err != nil {
			return err
		}

		var existing models.WishlistItem
		err = tx.Where("wishlist_id = ? AND sweet_id = ?", wishlist.ID, sweetID).
			First(&existing).Error
		if err == nil {
			return apperr.Duplicate("item already in wishlist")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		item := models.WishlistItem{
			WishlistID: wishlist.ID,
			SweetID:    sweet.ID,
			Name:       sweet.Name,
			Image:      sweet.Image,
			Price:      sweet.Price,
			AddedAt:    time.Now(),
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		wishlist.Items = append(wishlist.Items, item)
		out = wishlist
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveItem drops a sweet from the wishlist; removing an absent sweet is a
// no-op.
func RemoveItem(db *gorm.DB, userID, sweetID string) (*models.Wishlist, error) {
	wishlist, err := loadWishlist(db, userID)
	if err != nil {
		return nil, err
	}
	if err := db.Where("wishlist_id = ? AND sweet_id = ?", wishlist.ID, sweetID).
		Delete(&models.WishlistItem{}).Error; err != nil {
		return nil, err
	}
	return loadWishlist(db, userID)
}

// Clear empties the wishlist; a missing wishlist is not an error.
func Clear(db *gorm.DB, userID string) error {
	var wishlist models.Wishlist
	err := db.Where("user_id = ?", userID).First(&wishlist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return db.Where("wishlist_id = ?", wishlist.ID).Delete(&models.WishlistItem{}).Error
}
