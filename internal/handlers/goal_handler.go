package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finbot/internal/errors"
	"finbot/internal/models"
	"finbot/internal/pagination"
	"finbot/internal/services"
)

// GoalHandler handles savings-goal requests
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoalRequest represents the payload for creating a goal. Amounts are in cents.
type CreateGoalRequest struct {
	Title        string     `json:"title" binding:"required,max=100"`
	TargetAmount int64      `json:"target_amount" binding:"required,gt=0"`
	Deadline     *time.Time `json:"deadline"`
}

// UpdateGoalRequest represents the payload for updating a goal
type UpdateGoalRequest struct {
	Title        string     `json:"title" binding:"max=100"`
	TargetAmount *int64     `json:"target_amount" binding:"omitempty,gt=0"`
	Deadline     *time.Time `json:"deadline"`
}

// UpdateGoalProgressRequest represents the payload for updating saved progress
type UpdateGoalProgressRequest struct {
	CurrentAmount *int64 `json:"current_amount" binding:"required,gte=0"`
}

// CreateGoal handles the creation of a new goal
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.CreateGoal(userID, req.Title, req.TargetAmount, req.Deadline)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// GetUserGoals handles the paginated listing of goals, optionally by status
func (h *GoalHandler) GetUserGoals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var status *models.GoalStatus
	if raw := c.Query("status"); raw != "" {
		s := models.GoalStatus(raw)
		switch s {
		case models.GoalStatusActive, models.GoalStatusCompleted:
			status = &s
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid status"))
			return
		}
	}

	goals, err := h.goalService.GetUserGoals(userID, page, status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

// GetGoal handles the retrieval of a single goal
func (h *GoalHandler) GetGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.goalService.GetGoalByID(userID, goalID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal, "progress": goal.Progress()})
}

// UpdateGoal handles updating a goal's title, target or deadline
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.UpdateGoal(userID, goalID, req.Title, req.TargetAmount, req.Deadline)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// UpdateGoalProgress handles updating the saved amount on a goal
func (h *GoalHandler) UpdateGoalProgress(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateGoalProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.UpdateGoalProgress(userID, goalID, *req.CurrentAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal, "progress": goal.Progress()})
}

// DeleteGoal handles deleting a goal
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.DeleteGoal(userID, goalID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
}

// GetGoalStats returns overall goal progress for the user
func (h *GoalHandler) GetGoalStats(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.goalService.GetGoalStats(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
