package model

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pennywise/backend/internal/domain/entity"
)

func TestAll_AutoMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(All()...))

	for _, table := range []string{"expenses", "bills", "goals"} {
		assert.True(t, db.Migrator().HasColumn(table, "tags"), table)
	}

	user := entity.NewUser("tagger", "tagger@example.com", "hash", "Tag", "Ger")
	require.NoError(t, db.Create(UserModelFromEntity(user)).Error)

	expense := entity.NewExpense(user.ID, "Lunch", decimal.NewFromInt(12), entity.ExpenseCategoryFood, time.Now())
	expense.Tags = []string{"work", "team lunch"}
	require.NoError(t, db.Omit("User").Create(ExpenseModelFromEntity(expense)).Error)

	var stored ExpenseModel
	require.NoError(t, db.First(&stored, "id = ?", expense.ID).Error)
	assert.Equal(t, []string{"work", "team lunch"}, stored.ToEntity().Tags)
}

func TestTagList_DataType(t *testing.T) {
	assert.Equal(t, "text", TagList{}.GormDataType())
	assert.Equal(t, []string{}, tagsToEntity(nil))
	assert.Equal(t, TagList{}, tagsFromEntity(nil))
}
