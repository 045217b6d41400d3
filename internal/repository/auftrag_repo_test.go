package repository_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gastrogrid/internal/bootstrap"
	"gastrogrid/internal/models"
	"gastrogrid/internal/repository"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, bootstrap.Migrate(db))
	return db
}

func TestAuftragRepository_FindByEvent_OpenFirst(t *testing.T) {
	db := testDB(t)
	events := repository.NewEventRepository(db)
	jobs := repository.NewAuftragRepository(db)

	event := &models.Event{Title: "Buffet"}
	require.NoError(t, events.Create(event))
	other := &models.Event{Title: "Anderes"}
	require.NoError(t, events.Create(other))

	done := &models.Auftrag{EventID: event.ID, EmployeeName: "A", StatusRaw: string(models.StatusCompleted), IsCompleted: true}
	open := &models.Auftrag{EventID: event.ID, EmployeeName: "B", StatusRaw: string(models.StatusPending)}
	foreign := &models.Auftrag{EventID: other.ID, EmployeeName: "C", StatusRaw: string(models.StatusPending)}
	require.NoError(t, jobs.Create(done))
	require.NoError(t, jobs.Create(open))
	require.NoError(t, jobs.Create(foreign))

	got, err := jobs.FindByEvent(event.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].EmployeeName, "open jobs sort first")
	assert.Equal(t, "A", got[1].EmployeeName)

	count, err := jobs.CountOpenByEvent(event.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestEventRepository_DeleteLeavesJobs(t *testing.T) {
	db := testDB(t)
	events := repository.NewEventRepository(db)
	jobs := repository.NewAuftragRepository(db)

	event := &models.Event{Title: "Kantinentag"}
	require.NoError(t, events.Create(event))
	job := &models.Auftrag{EventID: event.ID, EmployeeName: "A", StatusRaw: string(models.StatusPending)}
	require.NoError(t, jobs.Create(job))

	require.NoError(t, events.Delete(event))

	_, err := events.FindByID(event.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The job row survives its event.
	stored, err := jobs.FindByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, event.ID, stored.EventID)
}

func TestEventRepository_FindAllSearch(t *testing.T) {
	db := testDB(t)
	events := repository.NewEventRepository(db)

	require.NoError(t, events.Create(&models.Event{Title: "Sommerfest", EventNumber: "2026-07"}))
	require.NoError(t, events.Create(&models.Event{Title: "Kantinentag", Location: "Nord"}))

	got, err := events.FindAll("Sommer")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Sommerfest", got[0].Title)

	all, err := events.FindAll("")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProductRepository_BulkInsertWithIngredients(t *testing.T) {
	db := testDB(t)
	products := repository.NewProductRepository(db)

	rows := []models.Product{
		{
			ID:   "P-1",
			Name: "Spätzle",
			Ingredients: []models.Ingredient{
				{ProductID: "P-1", Name: "Mehl", Amount: "10", Unit: "kg"},
				{ProductID: "P-1", Name: "Eier", Amount: "80", Unit: "Stk."},
			},
		},
		{ID: "P-2", Name: "Bulgur"},
	}
	require.NoError(t, products.BulkInsert(rows))

	count, err := products.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	got, err := products.FindByID("P-1")
	require.NoError(t, err)
	assert.Len(t, got.Ingredients, 2)

	resolved, err := products.FindByIDs([]string{"P-2", "missing"})
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "Bulgur", resolved[0].Name)
}

func TestLexikonRepository_FindByCodes(t *testing.T) {
	db := testDB(t)
	lexikon := repository.NewLexikonRepository(db)

	require.NoError(t, lexikon.BulkInsert([]models.LexikonEntry{
		{Code: "MEP", Name: "Mise en Place", Category: "Fachbuch"},
		{Code: "GN", Name: "Gastronorm", Category: "Behälter"},
	}))

	got, err := lexikon.FindByCodes([]string{"GN", "HACCP"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Gastronorm", got[0].Name)

	entry, err := lexikon.FindByCode("MEP")
	require.NoError(t, err)
	assert.Equal(t, "Mise en Place", entry.Name)
}
