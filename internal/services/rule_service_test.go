package services

import (
	"testing"

	"masroof/internal/testutil"
)

func TestCreateRule(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRuleService(db)

		limit := 500.0
		rule, err := svc.CreateRule("Al Nahdi, Nahdi", "Expense", "Health", "Pharmacy", &limit)
		testutil.AssertNoError(t, err)

		if rule.ID == 0 {
			t.Fatal("expected non-zero rule ID")
		}
		if rule.MerchantKeywords != "Al Nahdi, Nahdi" {
			t.Errorf("expected keywords preserved verbatim, got %q", rule.MerchantKeywords)
		}
		if rule.CategoryLimit == nil || *rule.CategoryLimit != 500.0 {
			t.Errorf("expected limit 500.0, got %v", rule.CategoryLimit)
		}
	})

	t.Run("without_limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRuleService(db)

		rule, err := svc.CreateRule("Jarir", "Expense", "Shopping", "Books", nil)
		testutil.AssertNoError(t, err)

		if rule.CategoryLimit != nil {
			t.Errorf("expected nil limit, got %v", rule.CategoryLimit)
		}
	})

	t.Run("empty_keywords", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRuleService(db)

		_, err := svc.CreateRule("   ", "Expense", "Health", "Pharmacy", nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("missing_category_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRuleService(db)

		_, err := svc.CreateRule("Jarir", "Expense", "", "Books", nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("duplicate_keywords", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRuleService(db)

		_, err := svc.CreateRule("STC", "Expense", "Utilities", "Telecom", nil)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateRule("STC", "Expense", "Utilities", "Internet", nil)
		testutil.AssertAppError(t, err, "DUPLICATE_RULE")
	})
}

func TestListRules(t *testing.T) {
	t.Run("id_ascending_order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRuleService(db)

		first := testutil.CreateTestRule(t, db, "Panda", "Groceries", nil)
		second := testutil.CreateTestRule(t, db, "Danube", "Groceries", nil)
		third := testutil.CreateTestRule(t, db, "Tamimi", "Groceries", nil)

		rules, err := svc.ListRules()
		testutil.AssertNoError(t, err)

		if len(rules) != 3 {
			t.Fatalf("expected 3 rules, got %d", len(rules))
		}
		if rules[0].ID != first.ID || rules[1].ID != second.ID || rules[2].ID != third.ID {
			t.Errorf("expected insertion order %d,%d,%d, got %d,%d,%d",
				first.ID, second.ID, third.ID, rules[0].ID, rules[1].ID, rules[2].ID)
		}
	})

	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRuleService(db)

		rules, err := svc.ListRules()
		testutil.AssertNoError(t, err)

		if len(rules) != 0 {
			t.Errorf("expected no rules, got %d", len(rules))
		}
	})
}

func TestGetRuleByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRuleService(db)

		created := testutil.CreateTestRule(t, db, "Herfy", "Food", nil)

		rule, err := svc.GetRuleByID(created.ID)
		testutil.AssertNoError(t, err)

		if rule.MerchantKeywords != "Herfy" {
			t.Errorf("expected keywords Herfy, got %q", rule.MerchantKeywords)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRuleService(db)

		_, err := svc.GetRuleByID(9999)
		testutil.AssertAppError(t, err, "RULE_NOT_FOUND")
	})
}

func TestUpdateRule(t *testing.T) {
	t.Run("replaces_all_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRuleService(db)

		created := testutil.CreateTestRule(t, db, "Extra", "Shopping", nil)

		limit := 1200.0
		updated, err := svc.UpdateRule(created.ID, "Extra, eXtra Stores", "Expense", "Electronics", "Appliances", &limit)
		testutil.AssertNoError(t, err)

		if updated.MerchantKeywords != "Extra, eXtra Stores" {
			t.Errorf("expected updated keywords, got %q", updated.MerchantKeywords)
		}
		if updated.MainCategory != "Electronics" {
			t.Errorf("expected main category Electronics, got %q", updated.MainCategory)
		}
		if updated.CategoryLimit == nil || *updated.CategoryLimit != 1200.0 {
			t.Errorf("expected limit 1200.0, got %v", updated.CategoryLimit)
		}
	})

	t.Run("clears_limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRuleService(db)

		limit := 300.0
		created := testutil.CreateTestRule(t, db, "Careem", "Transport", &limit)

		updated, err := svc.UpdateRule(created.ID, "Careem", "Expense", "Transport", "Rides", nil)
		testutil.AssertNoError(t, err)

		if updated.CategoryLimit != nil {
			t.Errorf("expected limit cleared, got %v", updated.CategoryLimit)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRuleService(db)

		_, err := svc.UpdateRule(9999, "Ghost", "Expense", "Misc", "Misc", nil)
		testutil.AssertAppError(t, err, "RULE_NOT_FOUND")
	})

	t.Run("empty_keywords", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRuleService(db)

		created := testutil.CreateTestRule(t, db, "Noon", "Shopping", nil)

		_, err := svc.UpdateRule(created.ID, "", "Expense", "Shopping", "Online", nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestDeleteRule(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRuleService(db)

		created := testutil.CreateTestRule(t, db, "Lulu", "Groceries", nil)

		testutil.AssertNoError(t, svc.DeleteRule(created.ID))

		_, err := svc.GetRuleByID(created.ID)
		testutil.AssertAppError(t, err, "RULE_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRuleService(db)

		err := svc.DeleteRule(9999)
		testutil.AssertAppError(t, err, "RULE_NOT_FOUND")
	})
}

func TestCategories(t *testing.T) {
	t.Run("distinct_sorted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRuleService(db)

		testutil.CreateTestRule(t, db, "Panda", "Groceries", nil)
		testutil.CreateTestRule(t, db, "Danube", "Groceries", nil)
		testutil.CreateTestRule(t, db, "Al Nahdi", "Health", nil)

		categories, err := svc.Categories()
		testutil.AssertNoError(t, err)

		if len(categories) != 2 {
			t.Fatalf("expected 2 categories, got %d: %v", len(categories), categories)
		}
		if categories[0] != "Groceries" || categories[1] != "Health" {
			t.Errorf("expected [Groceries Health], got %v", categories)
		}
	})
}

func TestCategoryLimit(t *testing.T) {
	t.Run("returns_first_rule_limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRuleService(db)

		first := 500.0
		second := 900.0
		testutil.CreateTestRule(t, db, "Al Nahdi", "Health", &first)
		testutil.CreateTestRule(t, db, "Al Dawaa", "Health", &second)

		limit, err := svc.CategoryLimit("Health")
		testutil.AssertNoError(t, err)

		if limit.CategoryLimit != 500.0 {
			t.Errorf("expected first rule's limit 500.0, got %f", limit.CategoryLimit)
		}
	})

	t.Run("no_rule_for_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRuleService(db)

		_, err := svc.CategoryLimit("Unknown")
		testutil.AssertAppError(t, err, "NO_CATEGORY_LIMIT")
	})

	t.Run("rule_without_limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRuleService(db)

		testutil.CreateTestRule(t, db, "Uber", "Transport", nil)

		_, err := svc.CategoryLimit("Transport")
		testutil.AssertAppError(t, err, "NO_CATEGORY_LIMIT")
	})
}
