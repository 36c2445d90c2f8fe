package repository

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Filter helpers. Empty and nil values mean "no filter", never "match
// empty"; numeric-string values are validated before being used so a stray
// non-numeric query param cannot poison the SQL.

// FilterEq matches a column exactly; blank value is a no-op.
func FilterEq(column, value string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if strings.TrimSpace(value) == "" {
			return db
		}
		return db.Where(column+" = ?", value)
	}
}

// FilterNumericEq matches a numeric column; non-numeric or blank values are
// a no-op.
func FilterNumericEq(column, value string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		value = strings.TrimSpace(value)
		if value == "" {
			return db
		}
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return db
		}
		return db.Where(column+" = ?", n)
	}
}

// FilterLike matches a column by substring, case-insensitive.
func FilterLike(column, value string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		value = strings.TrimSpace(value)
		if value == "" {
			return db
		}
		return db.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(value)+"%")
	}
}

// FilterName matches either localized name column for one filter value.
// The two columns are OR-combined; the whole scope still ANDs with the
// rest of the chain.
func FilterName(columnEn, columnAr, value string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		value = strings.TrimSpace(value)
		if value == "" {
			return db
		}
		pattern := "%" + strings.ToLower(value) + "%"
		return db.Where(
			"LOWER("+columnEn+") LIKE ? OR LOWER("+columnAr+") LIKE ?",
			pattern, pattern,
		)
	}
}

// FilterBool matches a boolean column when the pointer is set.
func FilterBool(column string, value *bool) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if value == nil {
			return db
		}
		return db.Where(column+" = ?", *value)
	}
}

// FilterActive keeps only active rows.
func FilterActive() Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true)
	}
}

// WithTrashed includes soft-deleted rows in the result.
func WithTrashed() Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Unscoped()
	}
}

// Preload eager-loads a relation on the listing query.
func Preload(relation string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload(relation)
	}
}
