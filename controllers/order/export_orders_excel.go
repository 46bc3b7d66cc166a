package orderControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/thejos/taco-cloud-v2/models"
)

// GET /orders/export (admin)
//
// Downloads every placed order as an Excel sheet, one row per order.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.TacoOrder
		if err := db.
			Preload("Tacos.Ingredients").
			Order("placed_at desc").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build Excel file"})
			return
		}

		header := sheet.AddRow()
		for _, title := range []string{"ID", "Order Ref", "Placed At", "Delivery Name", "Street", "City", "State", "Zip", "Tacos"} {
			header.AddCell().SetString(title)
		}

		for _, order := range orders {
			var tacoNames []string
			for _, taco := range order.Tacos {
				tacoNames = append(tacoNames, taco.Name)
			}

			row := sheet.AddRow()
			row.AddCell().SetString(strconv.FormatUint(uint64(order.ID), 10))
			row.AddCell().SetString(order.OrderRef)
			row.AddCell().SetString(order.PlacedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetString(order.DeliveryName)
			row.AddCell().SetString(order.DeliveryStreet)
			row.AddCell().SetString(order.DeliveryCity)
			row.AddCell().SetString(order.DeliveryState)
			row.AddCell().SetString(order.DeliveryZip)
			row.AddCell().SetString(strings.Join(tacoNames, ", "))
		}

		c.Header("Content-Disposition", `attachment; filename="orders.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
