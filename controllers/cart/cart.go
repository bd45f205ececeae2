package cartcontroller

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/VasifPeerji/sweet-shop-management-system/apperr"
	"github.com/VasifPeerji/sweet-shop-management-system/models"
)

// cartTotal recomputes the total from the full item list. Totals are never
// maintained incrementally.
func cartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// GetOrCreateCart returns the user's cart, creating an empty one on first
// access. The insert is an upsert keyed on user_id, so two concurrent first
// accesses cannot produce two carts.
func GetOrCreateCart(db *gorm.DB, userID string) (*models.Cart, error) {
	cart := models.Cart{ID: uuid.NewString(), UserID: userID}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&cart).Error; err != nil {
		return nil, err
	}
	return loadCart(db, userID)
}

func loadCart(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("cart not found")
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// saveTotal recomputes and persists the total from the cart's current items.
func saveTotal(tx *gorm.DB, cart *models.Cart) error {
	var items []models.CartItem
	if err := tx.Where("cart_id = ?", cart.ID).Order("id asc").Find(&items).Error; err != nil {
		return err
	}
	cart.Items = items
	cart.Total = cartTotal(items)
	return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).
		Updates(map[string]interface{}{"total": cart.Total, "updated_at": time.Now()}).Error
}

// AddItem puts quantity units of a sweet into the user's cart. Quantities
// for an already-present sweet add up. Stock is checked against the
// catalog's current value at call time; nothing is reserved.
func AddItem(db *gorm.DB, userID, sweetID string, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, apperr.Validation("quantity must be positive")
	}

	var out *models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		var sweet models.Sweet
		if err := tx.First(&sweet, "id = ?", sweetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("sweet not found")
			}
			return err
		}
		if sweet.Stock < quantity {
			return apperr.InsufficientStock("not enough stock available")
		}

		cart, err := GetOrCreateCart(tx, userID)
		if err != nil {
			return err
		}

		var item models.CartItem
		err = tx.Where("cart_id = ? AND sweet_id = ?", cart.ID, sweetID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				CartID:   cart.ID,
				SweetID:  sweet.ID,
				Quantity: quantity,
				Price:    sweet.Price, // add-time snapshot
				Name:     sweet.Name,
				Image:    sweet.Image,
				Weight:   sweet.Weight,
				AddedAt:  time.Now(),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		case err == nil:
			item.Quantity += quantity
			if err := tx.Model(&item).Update("quantity", item.Quantity).Error; err != nil {
				return err
			}
		default:
			return err
		}

		if err := saveTotal(tx, cart); err != nil {
			return err
		}
		out = cart
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SetItemQuantity replaces an item's quantity; non-positive removes it.
func SetItemQuantity(db *gorm.DB, userID, sweetID string, quantity int) (*models.Cart, error) {
	var out *models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := loadCart(tx, userID)
		if err != nil {
			return err
		}

		var item models.CartItem
		if err := tx.Where("cart_id = ? AND sweet_id = ?", cart.ID, sweetID).
			First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("item not found in cart")
			}
			return err
		}

		if quantity <= 0 {
			if err := tx.Delete(&item).Error; err != nil {
				return err
			}
		} else {
			var sweet models.Sweet
			err := tx.First(&sweet, "id = ?", sweetID).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err == nil && sweet.Stock < quantity {
				return apperr.InsufficientStock("not enough stock available")
			}
			if err := tx.Model(&item).Update("quantity", quantity).Error; err != nil {
				return err
			}
		}

		if err := saveTotal(tx, cart); err != nil {
			return err
		}
		out = cart
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveItem deletes a sweet from the cart. Removing an absent item is a
// no-op; a missing cart is NotFound.
func RemoveItem(db *gorm.DB, userID, sweetID string) (*models.Cart, error) {
	var out *models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := loadCart(tx, userID)
		if err != nil {
			return err
		}
		if err := tx.Where("cart_id = ? AND sweet_id = ?", cart.ID, sweetID).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := saveTotal(tx, cart); err != nil {
			return err
		}
		out = cart
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Clear empties the cart. It never fails on a missing cart.
func Clear(db *gorm.DB, userID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).
			Updates(map[string]interface{}{"total": 0, "updated_at": time.Now()}).Error
	})
}
