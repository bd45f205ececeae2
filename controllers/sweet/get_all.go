package sweetcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VasifPeerji/sweet-shop-management-system/models"
)

const maxPageSize = 100

// ListFilter is the composable catalog query: every zero field is skipped.
type ListFilter struct {
	Category  string
	Search    string // case-insensitive substring over name OR description
	Featured  *bool
	MinPrice  *float64
	MaxPrice  *float64
	SortBy    string // name, price, rating, created_at
	SortOrder string // asc, desc
	Skip      int
	Limit     int
}

var sortColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"rating":     "rating",
	"created_at": "created_at",
}

// ListSweets runs the filter against the catalog.
func ListSweets(db *gorm.DB, f ListFilter) ([]models.Sweet, error) {
	query := db.Model(&models.Sweet{})

	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if f.Featured != nil {
		query = query.Where("featured = ?", *f.Featured)
	}
	if f.MinPrice != nil {
		query = query.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		query = query.Where("price <= ?", *f.MaxPrice)
	}

	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = "name"
	}
	direction := "asc"
	if strings.ToLower(f.SortOrder) == "desc" {
		direction = "desc"
	}

	limit := f.Limit
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	skip := f.Skip
	if skip < 0 {
		skip = 0
	}

	var sweets []models.Sweet
	err := query.Order(column + " " + direction).Offset(skip).Limit(limit).Find(&sweets).Error
	return sweets, err
}

// GET /api/sweets
func GetSweets(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := ListFilter{
			Category:  c.Query("category"),
			Search:    c.Query("search"),
			SortBy:    c.DefaultQuery("sort_by", "name"),
			SortOrder: c.DefaultQuery("sort_order", "asc"),
		}

		if v := c.Query("featured"); v != "" {
			featured, err := strconv.ParseBool(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid featured"})
				return
			}
			f.Featured = &featured
		}
		if v := c.Query("min_price"); v != "" {
			mp, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_price"})
				return
			}
			f.MinPrice = &mp
		}
		if v := c.Query("max_price"); v != "" {
			mp, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_price"})
				return
			}
			f.MaxPrice = &mp
		}
		if v := c.Query("skip"); v != "" {
			skip, err := strconv.Atoi(v)
			if err != nil || skip < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skip"})
				return
			}
			f.Skip = skip
		}
		if v := c.Query("limit"); v != "" {
			limit, err := strconv.Atoi(v)
			if err != nil || limit < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
				return
			}
			f.Limit = limit
		}

		sweets, err := ListSweets(db, f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch sweets"})
			return
		}
		c.JSON(http.StatusOK, sweets)
	}
}
