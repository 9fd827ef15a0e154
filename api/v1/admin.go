package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebeam/services"
)

var (
	statsService  = services.NewStatsService()
	outboxService = services.NewOutboxService()
)

// GetPlatformOverview returns entity counts across all tenants
func GetPlatformOverview(c *gin.Context) {
	stats, err := statsService.PlatformOverview()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to get platform overview: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": stats})
}

// GetReceivables returns invoice money totals across the platform
func GetReceivables(c *gin.Context) {
	stats, err := statsService.Receivables()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to get receivables: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": stats})
}

// GetOutboxStats returns job backlog by status and kind
func GetOutboxStats(c *gin.Context) {
	stats, err := statsService.OutboxStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to get outbox stats: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": stats})
}

// RequeueOutboxJob resets a stuck outbox job to pending
func RequeueOutboxJob(c *gin.Context) {
	job, err := outboxService.Requeue(c.Param("jobId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Failed to requeue job: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": job})
}
