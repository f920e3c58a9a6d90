package middleware

import (
	"errors"
	"log"
	"net/http"

	"trailer-rental-api/config"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ResourceExists confirms a row with the :id path parameter exists in
// the given table before deeper processing runs.
func ResourceExists(table string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		row := map[string]interface{}{}
		err := config.DB.Table(table).Where("id = ?", id).Take(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Not Found",
				"message": "Resource: " + id + " not found.",
			})
			c.Abort()
			return
		} else if err != nil {
			log.Printf("resource lookup failed for %s/%s: %v", table, id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred."})
			c.Abort()
			return
		}
		// The fetched row is intentionally not attached to the context;
		// forwarding it caused unexpected side effects when patching, so
		// handlers re-fetch what they need.
		c.Next()
	}
}
