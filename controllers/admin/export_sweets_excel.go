package admincontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/VasifPeerji/sweet-shop-management-system/models"
)

// GET /api/admin/sweets/export-excel
func ExportSweetsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sweets []models.Sweet
		if err := db.Order("name asc").Find(&sweets).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch sweets"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Sweets")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Category", "Price", "OriginalPrice", "Stock",
			"Weight", "Featured", "Rating", "Reviews", "Ingredients", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, s := range sweets {
			row := sheet.AddRow()
			row.AddCell().SetValue(s.ID)
			row.AddCell().SetValue(s.Name)
			row.AddCell().SetValue(s.Category)
			row.AddCell().SetValue(s.Price)
			if s.OriginalPrice != nil {
				row.AddCell().SetValue(*s.OriginalPrice)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(s.Stock)
			row.AddCell().SetValue(s.Weight)
			row.AddCell().SetValue(s.Featured)
			row.AddCell().SetValue(s.Rating)
			row.AddCell().SetValue(s.Reviews)
			row.AddCell().SetValue(strings.Join(s.Ingredients, ", "))
			row.AddCell().SetValue(s.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=sweets.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write excel file"})
			return
		}
	}
}
