// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
)

// orderBy resolves an API sort key against a whitelist of columns. Unknown keys
// use fallback. Ties are broken by id so pages are stable.
func orderBy(sort adapter.ListSort, columns map[string]string, fallback string) func(*gorm.DB) *gorm.DB {
	column, ok := columns[sort.Field]
	if !ok {
		column = columns[fallback]
	}
	desc := sort.Order == adapter.SortDesc

	return func(db *gorm.DB) *gorm.DB {
		return db.
			Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc})
	}
}

func paginate(p adapter.Pagination) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.Limit)
	}
}

func ownedBy(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern declared with
// ESCAPE '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// withAnyTag keeps rows carrying at least one of tags. PostgreSQL uses array
// overlap; other dialects match the quoted element inside the stored array
// literal ({"a","b"}).
func withAnyTag(tags []string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(tags) == 0 {
			return db
		}
		if db.Dialector.Name() == "postgres" {
			return db.Where("tags && ?", pq.Array(tags))
		}

		conditions := make([]string, 0, len(tags))
		args := make([]any, 0, len(tags))
		for _, tag := range tags {
			conditions = append(conditions, `(',' || TRIM(tags, '{}') || ',') LIKE ? ESCAPE '\'`)
			args = append(args, `%,"`+escapeLike(tag)+`",%`)
		}
		return db.Where("("+strings.Join(conditions, " OR ")+")", args...)
	}
}

// periodKey returns the SQL expression labelling the UTC date column with its
// bucket: 2006-01-02 for days, 2006-01 for months, 2006 for years. Week labels
// are year-week with Sunday-based numbers (00-53, days before the first Sunday
// fall in week 00).
func periodKey(dialect string, period entity.SummaryPeriod) string {
	if dialect == "postgres" {
		const utc = "(date AT TIME ZONE 'UTC')"
		switch period {
		case entity.SummaryPeriodDay:
			return "to_char(" + utc + ", 'YYYY-MM-DD')"
		case entity.SummaryPeriodWeek:
			return "to_char(" + utc + ", 'YYYY') || '-' || lpad(CAST(CAST(FLOOR((EXTRACT(DOY FROM " + utc +
				") + 6 - EXTRACT(DOW FROM " + utc + ")) / 7) AS integer) AS text), 2, '0')"
		case entity.SummaryPeriodYear:
			return "to_char(" + utc + ", 'YYYY')"
		default:
			return "to_char(" + utc + ", 'YYYY-MM')"
		}
	}

	switch period {
	case entity.SummaryPeriodDay:
		return "strftime('%Y-%m-%d', date)"
	case entity.SummaryPeriodWeek:
		return "strftime('%Y', date) || '-' || printf('%02d', (CAST(strftime('%j', date) AS INTEGER) + 6 - CAST(strftime('%w', date) AS INTEGER)) / 7)"
	case entity.SummaryPeriodYear:
		return "strftime('%Y', date)"
	default:
		return "strftime('%Y-%m', date)"
	}
}

// updateOwned writes every column of value except identity and associations,
// scoped to the owner. It returns the number of rows touched.
func updateOwned(db *gorm.DB, value any, id, userID uuid.UUID) (int64, error) {
	result := db.Model(value).
		Where("id = ? AND user_id = ?", id, userID).
		Select("*").
		Omit("id", "user_id", "created_at", clause.Associations).
		Updates(value)
	return result.RowsAffected, result.Error
}

// money normalises aggregate output to cents.
func money(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
