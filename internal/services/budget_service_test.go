package services

import (
	"testing"

	"pennywise/internal/models"
	"pennywise/internal/testutil"
)

func TestCreateBudget(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		budget, err := svc.CreateBudget(user.ID, cat.ID, "2024-03", 100000)
		testutil.AssertNoError(t, err)

		if budget.ID == "" {
			t.Fatal("expected non-empty budget ID")
		}
		if budget.Month != "2024-03" || budget.LimitAmount != 100000 {
			t.Errorf("unexpected budget: %+v", budget)
		}
		if budget.Category.ID != cat.ID {
			t.Errorf("expected category %s preloaded, got %s", cat.ID, budget.Category.ID)
		}
	})

	t.Run("invalid_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		_, err := svc.CreateBudget(user.ID, cat.ID, "2024-3", 100000)
		testutil.AssertAppError(t, err, "INVALID_MONTH_FORMAT")
	})

	t.Run("non_positive_limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		_, err := svc.CreateBudget(user.ID, cat.ID, "2024-03", 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateBudget(user.ID, cat.ID, "2024-03", -500)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("category_must_belong_to_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		otherCat := testutil.CreateTestCategory(t, db, other.ID, models.CategoryTypeExpense)

		_, err := svc.CreateBudget(user.ID, otherCat.ID, "2024-03", 100000)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("duplicate_category_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		_, err := svc.CreateBudget(user.ID, cat.ID, "2024-03", 100000)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateBudget(user.ID, cat.ID, "2024-03", 50000)
		testutil.AssertAppError(t, err, "DUPLICATE_BUDGET")

		// A different month for the same category is fine.
		_, err = svc.CreateBudget(user.ID, cat.ID, "2024-04", 50000)
		testutil.AssertNoError(t, err)
	})
}

func TestGetBudgetsWithStatus(t *testing.T) {
	t.Run("joins_spend", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		groceries := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		transport := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		testutil.CreateTestBudget(t, db, user.ID, groceries.ID, "2024-03", 100000)
		testutil.CreateTestBudget(t, db, user.ID, transport.ID, "2024-03", 20000)

		testutil.CreateTestTransaction(t, db, user.ID, groceries.ID, models.TransactionTypeExpense, 70000, marchDay(5))
		testutil.CreateTestTransaction(t, db, user.ID, groceries.ID, models.TransactionTypeExpense, 50000, marchDay(20))
		testutil.CreateTestTransaction(t, db, user.ID, transport.ID, models.TransactionTypeExpense, 16000, marchDay(8))

		statuses, err := svc.GetBudgetsWithStatus(user.ID, "2024-03")
		testutil.AssertNoError(t, err)

		if len(statuses) != 2 {
			t.Fatalf("expected 2 statuses, got %d", len(statuses))
		}

		// Creation order: groceries first.
		g := statuses[0]
		if g.Budget.CategoryID != groceries.ID {
			t.Fatalf("expected groceries first, got %s", g.Budget.CategoryID)
		}
		if g.Spent != 120000 || g.Percentage != 100 || !g.Exceeded {
			t.Errorf("groceries: expected 120000/100/exceeded, got %+v", g)
		}

		tr := statuses[1]
		if tr.Spent != 16000 || tr.Percentage != 80 || tr.Exceeded {
			t.Errorf("transport: expected 16000/80/not exceeded, got %+v", tr)
		}
	})

	t.Run("income_does_not_count_as_spend", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		testutil.CreateTestBudget(t, db, user.ID, cat.ID, "2024-03", 10000)
		testutil.CreateTestTransaction(t, db, user.ID, cat.ID, models.TransactionTypeIncome, 99999, marchDay(5))

		statuses, err := svc.GetBudgetsWithStatus(user.ID, "2024-03")
		testutil.AssertNoError(t, err)

		if statuses[0].Spent != 0 {
			t.Errorf("expected spent 0, got %d", statuses[0].Spent)
		}
	})

	t.Run("scoped_to_month_and_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		otherCat := testutil.CreateTestCategory(t, db, other.ID, models.CategoryTypeExpense)

		testutil.CreateTestBudget(t, db, user.ID, cat.ID, "2024-02", 10000)
		testutil.CreateTestBudget(t, db, other.ID, otherCat.ID, "2024-03", 10000)

		statuses, err := svc.GetBudgetsWithStatus(user.ID, "2024-03")
		testutil.AssertNoError(t, err)

		if len(statuses) != 0 {
			t.Errorf("expected no statuses, got %d", len(statuses))
		}
	})

	t.Run("invalid_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		_, err := svc.GetBudgetsWithStatus("some-user", "")
		testutil.AssertAppError(t, err, "INVALID_MONTH_FORMAT")
	})
}

func TestUpdateBudget(t *testing.T) {
	t.Run("changes_limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		budget := testutil.CreateTestBudget(t, db, user.ID, cat.ID, "2024-03", 10000)

		updated, err := svc.UpdateBudget(user.ID, budget.ID, 25000)
		testutil.AssertNoError(t, err)

		if updated.LimitAmount != 25000 {
			t.Errorf("expected limit 25000, got %d", updated.LimitAmount)
		}
	})

	t.Run("non_positive_limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		budget := testutil.CreateTestBudget(t, db, user.ID, cat.ID, "2024-03", 10000)

		_, err := svc.UpdateBudget(user.ID, budget.ID, 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("not_found_for_other_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		budget := testutil.CreateTestBudget(t, db, user.ID, cat.ID, "2024-03", 10000)

		_, err := svc.UpdateBudget(other.ID, budget.ID, 25000)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}

func TestDeleteBudget(t *testing.T) {
	t.Run("soft_deletes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		budget := testutil.CreateTestBudget(t, db, user.ID, cat.ID, "2024-03", 10000)

		testutil.AssertNoError(t, svc.DeleteBudget(user.ID, budget.ID))

		_, err := svc.GetBudgetByID(user.ID, budget.ID)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")

		statuses, err := svc.GetBudgetsWithStatus(user.ID, "2024-03")
		testutil.AssertNoError(t, err)
		if len(statuses) != 0 {
			t.Errorf("expected no statuses after delete, got %d", len(statuses))
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.DeleteBudget(user.ID, "3a3c0cbe-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}
