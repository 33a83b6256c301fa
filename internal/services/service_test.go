package services

import (
	"fmt"
	"strings"
	"testing"

	"stackoverfaux/internal/db"
	"stackoverfaux/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func seedUser(t *testing.T, gdb *gorm.DB, id, name string) models.User {
	t.Helper()
	user := models.User{ID: id, Name: name, Email: fmt.Sprintf("%s@example.com", id)}
	require.NoError(t, gdb.Create(&user).Error)
	return user
}
