package sqlbuilder

import (
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Dialect selects the placeholder format and driver name.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite3"
)

// Builder produces squirrel statements with the placeholder format of its dialect.
type Builder struct {
	sb squirrel.StatementBuilderType
}

// New returns a builder for the dialect.
func New(dialect Dialect) (Builder, error) {
	switch dialect {
	case Postgres:
		return Builder{sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}, nil
	case SQLite:
		return Builder{sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)}, nil
	default:
		return Builder{}, fmt.Errorf("sqlbuilder: unsupported dialect %q", dialect)
	}
}

func (b Builder) Select(columns ...string) squirrel.SelectBuilder {
	return b.sb.Select(columns...)
}

func (b Builder) Insert(table string) squirrel.InsertBuilder {
	return b.sb.Insert(table)
}

func (b Builder) Delete(table string) squirrel.DeleteBuilder {
	return b.sb.Delete(table)
}
