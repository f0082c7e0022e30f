package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/justsurfingit/staffing-crm/internal/dtos"
)

// applyFilter adds a case-insensitive substring match of f.Query across
// columns and an exact match of f.Status against statusColumn.
func applyFilter(q *gorm.DB, f dtos.ListFilter, statusColumn string, columns ...string) *gorm.DB {
	if term := strings.TrimSpace(f.Query); term != "" && len(columns) > 0 {
		like := "%" + strings.ToLower(term) + "%"

		conds := make([]string, len(columns))
		args := make([]any, len(columns))
		for i, c := range columns {
			conds[i] = "LOWER(" + c + ") LIKE ?"
			args[i] = like
		}
		q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
	}

	if f.Status != "" {
		q = q.Where(statusColumn+" = ?", f.Status)
	}

	return q.Order("created_at DESC")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
