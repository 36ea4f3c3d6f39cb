package utils

import "github.com/gin-gonic/gin"

// RespondError writes the uniform client-facing error body. Internal detail
// never travels in it; callers pass a message that is safe to show.
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// RespondCreated echoes the identifier of a freshly inserted record.
func RespondCreated(c *gin.Context, id interface{}) {
	c.JSON(201, gin.H{"id": id})
}
