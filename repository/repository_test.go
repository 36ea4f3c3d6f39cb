package repository_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/quisin/pos-backend/database"
	"github.com/quisin/pos-backend/faults"
	"github.com/quisin/pos-backend/models"
	"github.com/quisin/pos-backend/repository"
)

// setupTestDB opens a named in-memory sqlite database. cache=shared keeps
// the same database visible across gorm's pooled connections; the name keeps
// tests isolated from each other.
func setupTestDB(t *testing.T, name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

func TestMenuItemCreateAssignsSequentialIDs(t *testing.T) {
	db := setupTestDB(t, "menu_repo_ids")
	repo := repository.NewMenuItemRepository(db)

	first, err := repo.Create(models.MenuItem{
		Name: "Soup", Price: 5.5, Currency: "USD", Category: "starter", MealType: "lunch",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(1), first)

	second, err := repo.Create(models.MenuItem{
		Name: "Salad", Price: 4, Currency: "USD", Category: "starter", MealType: "lunch",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(2), second)
}

func TestMenuItemCreateValidation(t *testing.T) {
	db := setupTestDB(t, "menu_repo_validation")
	repo := repository.NewMenuItemRepository(db)

	cases := []models.MenuItem{
		{Price: 5, Currency: "USD", Category: "starter", MealType: "lunch"},          // no name
		{Name: "Soup", Price: -1, Currency: "USD", Category: "s", MealType: "lunch"}, // negative price
		{Name: "Soup", Price: 5, Category: "starter", MealType: "lunch"},             // no currency
		{Name: "Soup", Price: 5, Currency: "USD", MealType: "lunch"},                 // no category
		{Name: "Soup", Price: 5, Currency: "USD", Category: "starter"},               // no mealType
	}

	for _, item := range cases {
		_, err := repo.Create(item)
		assert.Error(t, err)
		assert.True(t, faults.IsKind(err, faults.Validation))
	}

	// nothing was written
	items, err := repo.List()
	assert.NoError(t, err)
	assert.Len(t, items, 0)
}

func TestMenuItemListDecodesRows(t *testing.T) {
	db := setupTestDB(t, "menu_repo_list")
	repo := repository.NewMenuItemRepository(db)

	_, err := repo.Create(models.MenuItem{
		Name:        "Soup",
		Price:       5.5,
		Currency:    "USD",
		Category:    "starter",
		MealType:    "lunch",
		Ingredients: []string{"tomato"},
		IsVegan:     true,
	})
	assert.NoError(t, err)

	items, err := repo.List()
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, uint(1), items[0].ID)
	assert.Equal(t, 5.5, items[0].Price)
	assert.Equal(t, []string{"tomato"}, items[0].Ingredients)
	assert.True(t, bool(items[0].IsVegan))
	assert.False(t, bool(items[0].IsVegetarian))
}

func TestMenuItemAvailableFalseSurvivesStorage(t *testing.T) {
	db := setupTestDB(t, "menu_repo_available")
	repo := repository.NewMenuItemRepository(db)

	// explicit false must be written as 0, not swallowed by a column default
	_, err := repo.Create(models.MenuItem{
		Name: "Stew", Price: 7, Currency: "USD", Category: "main", MealType: "dinner",
		Available: false,
	})
	assert.NoError(t, err)

	// omitted in the payload encodes as 0 as well
	_, err = repo.Create(models.MenuItem{
		Name: "Pie", Price: 3, Currency: "USD", Category: "dessert", MealType: "dinner",
	})
	assert.NoError(t, err)

	_, err = repo.Create(models.MenuItem{
		Name: "Tea", Price: 2, Currency: "USD", Category: "drink", MealType: "dinner",
		Available: true,
	})
	assert.NoError(t, err)

	items, err := repo.List()
	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.False(t, bool(items[0].Available))
	assert.False(t, bool(items[1].Available))
	assert.True(t, bool(items[2].Available))
}

func validStaff(id string) models.Staff {
	return models.Staff{
		ID:       id,
		Name:     "Jane",
		Email:    "jane@example.com",
		Shift:    models.Shift{Start: "09:00", End: "17:00", Days: []string{"Monday"}},
		Username: "jane",
		Password: "secret",
	}
}

func TestStaffDuplicateIDConflict(t *testing.T) {
	db := setupTestDB(t, "staff_repo_conflict")
	repo := repository.NewStaffRepository(db)

	id, err := repo.Create(validStaff("staff-1"))
	assert.NoError(t, err)
	assert.Equal(t, "staff-1", id)

	_, err = repo.Create(validStaff("staff-1"))
	assert.Error(t, err)
	assert.True(t, faults.IsKind(err, faults.Conflict))

	// first record unaffected, exactly one row with that id
	staff, err := repo.List()
	assert.NoError(t, err)
	assert.Len(t, staff, 1)
	assert.Equal(t, "staff-1", staff[0].ID)
}

func TestStaffStatusDefaultsActive(t *testing.T) {
	db := setupTestDB(t, "staff_repo_status")
	repo := repository.NewStaffRepository(db)

	_, err := repo.Create(validStaff("staff-1"))
	assert.NoError(t, err)

	staff, err := repo.List()
	assert.NoError(t, err)
	assert.Equal(t, "active", staff[0].Status)
	assert.Equal(t, []string{"Monday"}, staff[0].Shift.Days)
}

func TestStaffFindActiveByCredentials(t *testing.T) {
	db := setupTestDB(t, "staff_repo_credentials")
	repo := repository.NewStaffRepository(db)

	active := validStaff("staff-1")
	_, err := repo.Create(active)
	assert.NoError(t, err)

	inactive := validStaff("staff-2")
	inactive.Username = "bob"
	inactive.Status = "inactive"
	_, err = repo.Create(inactive)
	assert.NoError(t, err)

	found, err := repo.FindActiveByCredentials("jane", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "staff-1", found.ID)

	_, err = repo.FindActiveByCredentials("jane", "wrong")
	assert.True(t, faults.IsKind(err, faults.Unauthorized))

	// matching credentials but status inactive must not authenticate
	_, err = repo.FindActiveByCredentials("bob", "secret")
	assert.True(t, faults.IsKind(err, faults.Unauthorized))
}

func TestTableCreateAndList(t *testing.T) {
	db := setupTestDB(t, "table_repo")
	repo := repository.NewTableRepository(db)

	id, err := repo.Create(models.Table{ID: "table-1", Number: "A1", Seats: 4, Location: strPtr("patio")})
	assert.NoError(t, err)
	assert.Equal(t, "table-1", id)

	_, err = repo.Create(models.Table{ID: "table-1", Number: "A2", Seats: 2})
	assert.True(t, faults.IsKind(err, faults.Conflict))

	_, err = repo.Create(models.Table{ID: "table-2", Number: "B1", Seats: 0})
	assert.True(t, faults.IsKind(err, faults.Validation))

	tables, err := repo.List()
	assert.NoError(t, err)
	assert.Len(t, tables, 1)
	assert.Equal(t, "available", tables[0].Status)
	assert.Equal(t, 4, tables[0].Seats)
}

func validOrder(id string) models.Order {
	return models.Order{
		ID:         id,
		TableID:    "table-1",
		Items:      []json.RawMessage{json.RawMessage(`{"menuItemId":1,"quantity":2}`)},
		Status:     "pending",
		Total:      11,
		Tax:        1,
		Subtotal:   10,
		WaiterID:   "staff-1",
		WaiterName: "Jane",
	}
}

func TestOrderCreateAndList(t *testing.T) {
	db := setupTestDB(t, "order_repo")
	repo := repository.NewOrderRepository(db)

	id, err := repo.Create(validOrder("order-1"))
	assert.NoError(t, err)
	assert.Equal(t, "order-1", id)

	orders, err := repo.List()
	assert.NoError(t, err)
	assert.Len(t, orders, 1)

	got := orders[0]
	assert.Equal(t, []json.RawMessage{json.RawMessage(`{"menuItemId":1,"quantity":2}`)}, got.Items)
	assert.Equal(t, got.Total, got.Subtotal+got.Tax)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestOrderValidationAndConflict(t *testing.T) {
	db := setupTestDB(t, "order_repo_faults")
	repo := repository.NewOrderRepository(db)

	missingItems := validOrder("order-1")
	missingItems.Items = nil
	_, err := repo.Create(missingItems)
	assert.True(t, faults.IsKind(err, faults.Validation))

	negative := validOrder("order-1")
	negative.Tax = -1
	_, err = repo.Create(negative)
	assert.True(t, faults.IsKind(err, faults.Validation))

	_, err = repo.Create(validOrder("order-1"))
	assert.NoError(t, err)
	_, err = repo.Create(validOrder("order-1"))
	assert.True(t, faults.IsKind(err, faults.Conflict))
}
