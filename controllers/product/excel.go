package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/rainielmontanez/FSSPOS/catalog"
	"github.com/rainielmontanez/FSSPOS/models"
)

// ImportProductsFromExcel replaces the catalog with the uploaded sheet.
// Expected columns: ID, Name, Category, Price, Stock, Barcode, ImageURL.
// Ids are reassigned on import; rows without a parsable name/price are skipped.
// POST /admin/products/import
func ImportProductsFromExcel(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		var products []models.Product
		importedCount, skippedCount := 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			name := get(1)
			category := get(2)
			price, err1 := strconv.ParseFloat(get(3), 64)
			stock, _ := strconv.ParseFloat(get(4), 64)
			barcode := get(5)
			imageURL := get(6)

			if name == "" || err1 != nil || price < 0 {
				skippedCount++
				continue
			}

			products = append(products, models.Product{
				Name:     name,
				Category: category,
				Price:    price,
				Stock:    int(stock),
				Barcode:  barcode,
				ImageURL: imageURL,
			})
			importedCount++
		}

		if err := cat.Replace(products); err != nil {
			if errors.Is(err, catalog.ErrDuplicateBarcode) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Duplicate barcode in import"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save imported products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":        "Import completed",
			"imported_count": importedCount,
			"skipped_count":  skippedCount,
		})
	}
}
