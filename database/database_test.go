package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/task-management-api/config"
	"github.com/task-management-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(config.Database{
		Driver: "sqlite",
		URL:    filepath.Join(t.TempDir(), "tasks.db") + "?_foreign_keys=on",
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestUniqueViolation(t *testing.T) {
	db := openTestDB(t)

	first := models.User{Username: "alice", Email: "alice@example.com", Password: "hash"}
	require.NoError(t, db.Create(&first).Error)

	dupEmail := models.User{Username: "alice2", Email: "alice@example.com", Password: "hash"}
	err := db.Create(&dupEmail).Error
	require.Error(t, err)

	column, ok := UniqueViolation(err)
	assert.True(t, ok)
	assert.Equal(t, "email", column)
	assert.False(t, ForeignKeyViolation(err))

	dupUsername := models.User{Username: "alice", Email: "other@example.com", Password: "hash"}
	column, ok = UniqueViolation(db.Create(&dupUsername).Error)
	assert.True(t, ok)
	assert.Equal(t, "username", column)
}

func TestForeignKeyViolation(t *testing.T) {
	db := openTestDB(t)

	project := models.Project{Name: "Orphan", Status: models.ProjectStatusActive, UserID: 999}
	err := db.Omit(clause.Associations).Create(&project).Error
	require.Error(t, err)
	assert.True(t, ForeignKeyViolation(err))

	_, unique := UniqueViolation(err)
	assert.False(t, unique)
}

func TestColumnFromConstraint(t *testing.T) {
	assert.Equal(t, "email", columnFromConstraint("idx_users_email"))
	assert.Equal(t, "username", columnFromConstraint("idx_users_username"))
	assert.Equal(t, "users", columnFromConstraint("users"))
}

func TestSeed(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Seed(db))

	var users, projects, tasks int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Project{}).Count(&projects)
	db.Model(&models.Task{}).Count(&tasks)
	assert.Equal(t, int64(3), users)
	assert.Equal(t, int64(3), projects)
	assert.Equal(t, int64(5), tasks)

	assert.Error(t, Seed(db), "seeding twice must be refused")
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(config.Database{Driver: "mysql", URL: "root@/tasks"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestOpenEnforcesSQLiteForeignKeys(t *testing.T) {
	db, err := Open(config.Database{Driver: "sqlite", URL: filepath.Join(t.TempDir(), "plain.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)

	require.NoError(t, Migrate(db))
	task := models.Task{Title: "Orphan", Status: models.TaskStatusTodo, Priority: models.TaskPriorityLow, ProjectID: 999}
	assert.True(t, ForeignKeyViolation(db.Omit(clause.Associations).Create(&task).Error))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "tasks.db?_foreign_keys=on", sqliteDSN("tasks.db"))
	assert.Equal(t, "tasks.db?cache=shared&_foreign_keys=on", sqliteDSN("tasks.db?cache=shared"))
	assert.Equal(t, "tasks.db?_foreign_keys=off", sqliteDSN("tasks.db?_foreign_keys=off"))
	assert.Equal(t, "tasks.db?_fk=1", sqliteDSN("tasks.db?_fk=1"))
}
