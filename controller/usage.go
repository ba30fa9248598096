package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/OnurLexa/DreamGen/dao/sqlite"
)

// GetUserUsageHistory returns the newest usage rows of one user.
// GET /api/v1/usages/:user_id?limit=20
func GetUserUsageHistory(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		ResponseError(c, CodeInvalidParams)
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		ResponseError(c, CodeInvalidParams)
		return
	}

	records, err := sqlite.ListUsageByUser(userID, limit)
	if err != nil {
		zap.L().Error("list usage failed", zap.String("user_id", userID), zap.Error(err))
		ResponseError(c, CodeServerBusy)
		return
	}

	ResponseSuccess(c, records)
}
