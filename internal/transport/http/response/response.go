package response

import "github.com/gin-gonic/gin"

// Message is the envelope every non-entity reply uses: a human-readable
// message plus optional extra fields.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
