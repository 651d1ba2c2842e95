package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"workforce/internal/service"
)

// Response helpers for the {success, message, data} envelope.

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondMessage(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
	})
}

// respondError maps a service error to its transport status. Anything outside
// the known taxonomy is a server fault: logged, and answered with a generic
// message.
func respondError(c *gin.Context, err error) {
	var conflict *service.ConflictError
	if errors.As(err, &conflict) {
		body := gin.H{
			"success": false,
			"message": conflict.Message,
		}
		if len(conflict.Duplicates) > 0 {
			body["duplicates"] = conflict.Duplicates
		}
		c.JSON(http.StatusBadRequest, body)
		return
	}
	if errors.Is(err, service.ErrValidation) {
		respondBadRequest(c, err.Error())
		return
	}
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Server error",
	})
}
