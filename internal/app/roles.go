package app

import (
	"strings"

	"reviewlens/internal/domain"
)

// defaultRoleCandidates maps each logical role to the column-name
// fragments it is matched against, in priority order.
var defaultRoleCandidates = map[string][]string{
	"rating":  {"rating", "star", "score"},
	"content": {"content", "review", "text"},
	"date":    {"date", "time", "publish"},
	"variant": {"variant", "sku", "style", "color", "size", "model"},
}

// DetectColumns suggests a column for each logical role by
// case-insensitive substring match against the candidate fragments.
// Rating, content and date fall back to the first column when nothing
// matches; variant stays unmapped since it is optional. Detection is
// best-effort only — callers may override any role per request.
func DetectColumns(columns []string, roles map[string][]string) domain.ColumnMapping {
	if len(columns) == 0 {
		return domain.ColumnMapping{}
	}
	if roles == nil {
		roles = defaultRoleCandidates
	}

	match := func(role string) string {
		for _, frag := range roles[role] {
			frag = strings.ToLower(frag)
			for _, col := range columns {
				if strings.Contains(strings.ToLower(col), frag) {
					return col
				}
			}
		}
		return ""
	}
	orFirst := func(col string) string {
		if col == "" {
			return columns[0]
		}
		return col
	}

	return domain.ColumnMapping{
		Rating:  orFirst(match("rating")),
		Content: orFirst(match("content")),
		Date:    orFirst(match("date")),
		Variant: match("variant"),
	}
}
