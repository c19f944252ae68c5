package services

import (
	"testing"
	"time"

	"finbot/internal/models"
	"finbot/internal/testutil"
)

func TestCreateGoal(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		user := testutil.CreateTestUser(t, db)
		deadline := time.Now().AddDate(1, 0, 0)

		goal, err := svc.CreateGoal(user.ID, "Reserva de emergência", 1000000, &deadline)
		testutil.AssertNoError(t, err)

		if goal.ID == 0 {
			t.Fatal("expected non-zero goal ID")
		}
		if goal.Status != models.GoalStatusActive {
			t.Errorf("expected active status, got %s", goal.Status)
		}
		if goal.CurrentAmount != 0 {
			t.Errorf("expected zero current amount, got %d", goal.CurrentAmount)
		}
	})

	t.Run("empty_title", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		_, err := svc.CreateGoal(1, "", 1000000, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("non_positive_target", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		_, err := svc.CreateGoal(1, "Viagem", 0, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateGoalProgress(t *testing.T) {
	t.Run("reaching_target_completes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID, 500000)

		updated, err := svc.UpdateGoalProgress(user.ID, goal.ID, 500000)
		testutil.AssertNoError(t, err)

		if updated.Status != models.GoalStatusCompleted {
			t.Errorf("expected completed status, got %s", updated.Status)
		}
	})

	t.Run("dropping_below_target_reopens", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID, 500000)

		_, err := svc.UpdateGoalProgress(user.ID, goal.ID, 600000)
		testutil.AssertNoError(t, err)

		updated, err := svc.UpdateGoalProgress(user.ID, goal.ID, 100000)
		testutil.AssertNoError(t, err)

		if updated.Status != models.GoalStatusActive {
			t.Errorf("expected active status after withdrawal, got %s", updated.Status)
		}
	})

	t.Run("negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID, 500000)

		_, err := svc.UpdateGoalProgress(user.ID, goal.ID, -1)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateGoalProgress(user.ID, 99999, 1000)
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})
}

func TestUpdateGoal(t *testing.T) {
	t.Run("lowering_target_completes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID, 500000)

		_, err := svc.UpdateGoalProgress(user.ID, goal.ID, 300000)
		testutil.AssertNoError(t, err)

		newTarget := int64(250000)
		updated, err := svc.UpdateGoal(user.ID, goal.ID, "", &newTarget, nil)
		testutil.AssertNoError(t, err)

		if updated.Status != models.GoalStatusCompleted {
			t.Errorf("expected completed status after target drop, got %s", updated.Status)
		}
	})

	t.Run("raising_target_reopens", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID, 100000)

		_, err := svc.UpdateGoalProgress(user.ID, goal.ID, 100000)
		testutil.AssertNoError(t, err)

		newTarget := int64(200000)
		updated, err := svc.UpdateGoal(user.ID, goal.ID, "", &newTarget, nil)
		testutil.AssertNoError(t, err)

		if updated.Status != models.GoalStatusActive {
			t.Errorf("expected active status after target raise, got %s", updated.Status)
		}
	})
}

func TestGoals(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewGoalService(db)

	user := testutil.CreateTestUser(t, db)
	active := testutil.CreateTestGoal(t, db, user.ID, 500000)
	done := testutil.CreateTestGoal(t, db, user.ID, 100000)

	_, err := svc.UpdateGoalProgress(user.ID, done.ID, 100000)
	testutil.AssertNoError(t, err)

	t.Run("all", func(t *testing.T) {
		goals, err := svc.Goals(user.ID, nil)
		testutil.AssertNoError(t, err)
		if len(goals) != 2 {
			t.Fatalf("expected 2 goals, got %d", len(goals))
		}
	})

	t.Run("active_only", func(t *testing.T) {
		status := models.GoalStatusActive
		goals, err := svc.Goals(user.ID, &status)
		testutil.AssertNoError(t, err)
		if len(goals) != 1 {
			t.Fatalf("expected 1 active goal, got %d", len(goals))
		}
		if goals[0].ID != active.ID {
			t.Errorf("expected goal %d, got %d", active.ID, goals[0].ID)
		}
	})

	t.Run("completed_only", func(t *testing.T) {
		status := models.GoalStatusCompleted
		goals, err := svc.Goals(user.ID, &status)
		testutil.AssertNoError(t, err)
		if len(goals) != 1 {
			t.Fatalf("expected 1 completed goal, got %d", len(goals))
		}
	})
}

func TestGetGoalStats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewGoalService(db)

	user := testutil.CreateTestUser(t, db)
	testutil.CreateTestGoal(t, db, user.ID, 500000)
	done := testutil.CreateTestGoal(t, db, user.ID, 100000)

	_, err := svc.UpdateGoalProgress(user.ID, done.ID, 100000)
	testutil.AssertNoError(t, err)

	stats, err := svc.GetGoalStats(user.ID)
	testutil.AssertNoError(t, err)

	if stats.TotalGoals != 2 {
		t.Errorf("expected 2 total goals, got %d", stats.TotalGoals)
	}
	if stats.CompletedGoals != 1 {
		t.Errorf("expected 1 completed goal, got %d", stats.CompletedGoals)
	}
	if stats.TotalTarget != 600000 {
		t.Errorf("expected total target 600000, got %d", stats.TotalTarget)
	}
	if stats.TotalSaved != 100000 {
		t.Errorf("expected total saved 100000, got %d", stats.TotalSaved)
	}
}
