// Package schema derives database identifiers from Go-side names for callers
// that build statement descriptors from model types.
package schema

import (
	"strings"
	"unicode"

	pluralizer "github.com/gertd/go-pluralize"

	"github.com/Konsultn-Engineering/sqlgen/ast"
)

// pluralizeClient is a singleton for consistent pluralization behavior.
var pluralizeClient = pluralizer.NewClient()

// NamingStrategy converts Go struct and field names into table and column
// names. Implementations must return consistent results for the same input.
type NamingStrategy interface {
	TableName(structName string) string
	ColumnName(fieldName string) string
}

type snakeStrategy struct {
	pluralTables bool
}

// DefaultNamingStrategy returns snake_case columns with pluralized
// snake_case tables: BlogPost -> blog_posts, CreatedAt -> created_at.
func DefaultNamingStrategy() NamingStrategy {
	return &snakeStrategy{pluralTables: true}
}

// SingularNamingStrategy keeps table names singular.
func SingularNamingStrategy() NamingStrategy {
	return &snakeStrategy{}
}

func (s *snakeStrategy) TableName(structName string) string {
	name := toSnakeCase(structName)
	if s.pluralTables {
		return pluralizeClient.Plural(name)
	}
	return name
}

func (s *snakeStrategy) ColumnName(fieldName string) string {
	return toSnakeCase(fieldName)
}

// TableFor builds a table reference from a Go struct name using strategy.
func TableFor(strategy NamingStrategy, structName string) ast.Table {
	return ast.Table{Name: strategy.TableName(structName)}
}

// toSnakeCase converts any naming convention to snake_case, handling
// acronym runs (HTTPServer -> http_server) and digits (OAuth2 -> o_auth2).
func toSnakeCase(name string) string {
	if name == "" {
		return ""
	}
	if strings.Contains(name, "_") && !hasUpperCase(name) {
		return strings.ToLower(name)
	}

	runes := []rune(name)
	var result strings.Builder
	result.Grow(len(name) + 8)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				result.WriteByte('_')
			} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				result.WriteByte('_')
			}
		}
		result.WriteRune(unicode.ToLower(r))
	}
	return result.String()
}

func hasUpperCase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
