package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONErrorWithData reports a failure while still returning the structured
// payload, so clients can read its code and retry hint.
func JSONErrorWithData(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, gin.H{"success": false, "error": message, "data": data})
}
