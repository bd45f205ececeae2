package ordercontroller

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VasifPeerji/sweet-shop-management-system/apperr"
	sweetcontroller "github.com/VasifPeerji/sweet-shop-management-system/controllers/sweet"
	"github.com/VasifPeerji/sweet-shop-management-system/logger"
	"github.com/VasifPeerji/sweet-shop-management-system/models"
)

type PlaceOrderRequest struct {
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Notes   string `json:"notes"`
}

// PlaceOrder converts the user's cart into an immutable order. Everything
// happens in one transaction: the order row is created first, then each
// item's stock is debited with a conditional decrement, then the cart is
// emptied. A failed decrement aborts the whole transaction, so two checkouts
// racing for the last unit cannot both succeed.
func PlaceOrder(db *gorm.DB, userID string, req PlaceOrderRequest) (*models.Order, error) {
	var out *models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.EmptyCart("cart is empty")
		}
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return apperr.EmptyCart("cart is empty")
		}

		// Snapshot cart items at cart-time prices; later catalog changes
		// never reach placed orders.
		orderItems := make([]models.OrderItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			orderItems = append(orderItems, models.OrderItem{
				SweetID:  item.SweetID,
				Name:     item.Name,
				Quantity: item.Quantity,
				Price:    item.Price,
				Image:    item.Image,
			})
		}

		order := models.Order{
			ID:      uuid.NewString(),
			UserID:  userID,
			Items:   orderItems,
			Total:   cart.Total,
			Status:  models.OrderStatusPending,
			Address: req.Address,
			Phone:   req.Phone,
			Notes:   req.Notes,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Debit stock after the order row exists; the conditional update is
		// the stock>=quantity re-validation the cart's stale check needs.
		for _, item := range cart.Items {
			if err := sweetcontroller.AdjustStock(tx, item.SweetID, -item.Quantity); err != nil {
				if apperr.IsKind(err, apperr.KindNotFound) {
					return apperr.NotFound("sweet %s not found", item.Name)
				}
				if apperr.IsKind(err, apperr.KindInsufficientStock) {
					return apperr.InsufficientStock("not enough stock for %s", item.Name)
				}
				return err
			}
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Cart{}).Where("id = ?", cart.ID).
			Updates(map[string]interface{}{"total": 0, "updated_at": time.Now()}).Error; err != nil {
			return err
		}

		out = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CancelOrder cancels the caller's own order and restores stock. The
// restore is compensation, not rollback: a sweet deleted since placement is
// skipped with a warning and the cancellation still succeeds.
func CancelOrder(db *gorm.DB, log *logger.Logger, orderID, userID string) (*models.Order, error) {
	var out *models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		err := tx.Preload("Items").
			Where("id = ? AND user_id = ?", orderID, userID).
			First(&order).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("order not found")
		}
		if err != nil {
			return err
		}

		if order.Status.IsTerminal() {
			return apperr.InvalidState("order cannot be cancelled")
		}

		if err := tx.Model(&order).
			Updates(map[string]interface{}{"status": models.OrderStatusCancelled, "updated_at": time.Now()}).Error; err != nil {
			return err
		}

		for _, item := range order.Items {
			result := tx.Model(&models.Sweet{}).
				Where("id = ?", item.SweetID).
				Update("stock", gorm.Expr("stock + ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				log.Warn("stock restore skipped, sweet no longer exists",
					"order_id", order.ID, "sweet_id", item.SweetID, "quantity", item.Quantity)
			}
		}

		order.Status = models.OrderStatusCancelled
		out = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateOrderStatus overwrites the status unconditionally. Any non-empty
// status string is accepted; there is no transition legality check at this
// layer, so an admin may set delivered straight from pending or reopen a
// cancelled order.
func UpdateOrderStatus(db *gorm.DB, orderID, status string) error {
	if status == "" {
		return apperr.Validation("status is required")
	}
	result := db.Model(&models.Order{}).Where("id = ?", orderID).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("order not found")
	}
	return nil
}

// UserOrders lists the user's orders, newest first.
func UserOrders(db *gorm.DB, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(100).
		Find(&orders).Error
	return orders, err
}

// UserOrder fetches one of the user's own orders.
func UserOrder(db *gorm.DB, orderID, userID string) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("order not found")
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}
