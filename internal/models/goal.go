package models

import "time"

// GoalStatus represents the lifecycle state of a financial goal
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
)

// Goal represents a savings goal. Status is re-evaluated whenever
// CurrentAmount changes: a goal completes when current >= target and
// reopens if progress later drops below the target.
type Goal struct {
	Base
	UserID        uint       `gorm:"not null;index" json:"user_id"`
	Title         string     `gorm:"not null" json:"title"`
	TargetAmount  int64      `gorm:"type:bigint;not null" json:"target_amount"`
	CurrentAmount int64      `gorm:"type:bigint;default:0" json:"current_amount"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	Status        GoalStatus `gorm:"not null;default:active" json:"status"`
}

// Progress returns completion as a fraction in [0, 1].
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	p := float64(g.CurrentAmount) / float64(g.TargetAmount)
	if p > 1 {
		return 1
	}
	return p
}
