// controllers/goal_controller.go
package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Goals *services.GoalService
}

func NewGoalController(svc *services.GoalService) *GoalController {
	return &GoalController{Goals: svc}
}

func parseDateParam(c *gin.Context) (time.Time, bool) {
	date := time.Now()
	if v := c.Query("date"); v != "" {
		d, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return time.Time{}, false
		}
		date = d
	}
	return date, true
}

func (h *GoalController) GetDailyGoals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	goals, err := h.Goals.ResolveDailyGoals(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{
		"date":  date.Format("2006-01-02"),
		"goals": goals,
	})
}

func (h *GoalController) GetHydrationGoal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	goal, err := h.Goals.DynamicHydrationGoal(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{
		"date":          date.Format("2006-01-02"),
		"water_goal_ml": goal,
	})
}
