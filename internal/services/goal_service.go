package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "finbot/internal/errors"
	"finbot/internal/models"
	"finbot/internal/pagination"
)

// goalService handles savings-goal business logic.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// CreateGoal creates a new savings goal for a user
func (s *goalService) CreateGoal(userID uint, title string, targetAmount int64, deadline *time.Time) (*models.Goal, error) {
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal title is required")
	}
	if targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}

	goal := &models.Goal{
		UserID:       userID,
		Title:        title,
		TargetAmount: targetAmount,
		Deadline:     deadline,
		Status:       models.GoalStatusActive,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// GetUserGoals retrieves a paginated list of the user's goals, optionally filtered by status.
func (s *goalService) GetUserGoals(userID uint, page pagination.PageRequest, status *models.GoalStatus) (*pagination.PageResponse[models.Goal], error) {
	page.Defaults()

	base := s.db.Model(&models.Goal{}).Where("user_id = ?", userID)
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.Goal
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(goals, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// Goals retrieves all of a user's goals, optionally filtered by status.
func (s *goalService) Goals(userID uint, status *models.GoalStatus) ([]models.Goal, error) {
	q := s.db.Where("user_id = ?", userID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var goals []models.Goal
	if err := q.Order("created_at DESC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

// GetGoalByID retrieves a goal by ID for a specific user
func (s *goalService) GetGoalByID(userID, goalID uint) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// UpdateGoal updates a goal's title, target amount or deadline.
// Lowering the target below the saved amount completes the goal;
// raising it above reopens a completed one.
func (s *goalService) UpdateGoal(userID, goalID uint, title string, targetAmount *int64, deadline *time.Time) (*models.Goal, error) {
	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	if title != "" {
		goal.Title = title
	}
	if targetAmount != nil {
		if *targetAmount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
		}
		goal.TargetAmount = *targetAmount
	}
	if deadline != nil {
		goal.Deadline = deadline
	}
	reevaluateStatus(goal)

	if err := s.db.Save(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// UpdateGoalProgress sets the saved amount on a goal and re-evaluates its status
func (s *goalService) UpdateGoalProgress(userID, goalID uint, currentAmount int64) (*models.Goal, error) {
	if currentAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current amount cannot be negative")
	}

	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.CurrentAmount = currentAmount
	reevaluateStatus(goal)

	if err := s.db.Save(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// reevaluateStatus derives the status from the amounts, in both directions:
// reaching the target completes the goal, dropping back below reopens it.
func reevaluateStatus(goal *models.Goal) {
	if goal.CurrentAmount >= goal.TargetAmount {
		goal.Status = models.GoalStatusCompleted
	} else {
		goal.Status = models.GoalStatusActive
	}
}

// DeleteGoal soft-deletes a goal
func (s *goalService) DeleteGoal(userID, goalID uint) error {
	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return nil
}

// GetGoalStats aggregates overall goal progress for a user.
func (s *goalService) GetGoalStats(userID uint) (*GoalStats, error) {
	stats := &GoalStats{}

	err := s.db.Model(&models.Goal{}).
		Where("user_id = ?", userID).
		Select("COUNT(*) AS total_goals, " +
			"COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed_goals, " +
			"COALESCE(SUM(target_amount), 0) AS total_target, " +
			"COALESCE(SUM(current_amount), 0) AS total_saved").
		Scan(stats).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return stats, nil
}
