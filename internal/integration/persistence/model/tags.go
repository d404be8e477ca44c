package model

import (
	"database/sql/driver"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// TagList is a text[] column on PostgreSQL. Other dialects store the same
// array literal ("{a,b}") in a text column.
type TagList pq.StringArray

// Value implements driver.Valuer.
func (t TagList) Value() (driver.Value, error) {
	return pq.StringArray(t).Value()
}

// Scan implements sql.Scanner.
func (t *TagList) Scan(src any) error {
	return (*pq.StringArray)(t).Scan(src)
}

// GormDataType keeps the schema parser from treating the slice as a relation.
func (TagList) GormDataType() string {
	return "text"
}

// GormDBDataType picks the column type per dialect.
func (TagList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

func tagsToEntity(tags TagList) []string {
	if tags == nil {
		return []string{}
	}
	return []string(tags)
}

func tagsFromEntity(tags []string) TagList {
	if tags == nil {
		return TagList{}
	}
	return TagList(tags)
}
