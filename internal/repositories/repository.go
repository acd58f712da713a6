package repositories

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// ER_ROW_IS_REFERENCED_2: the row is still referenced by a foreign key.
const mysqlErrRowIsReferenced = 1451

// isForeignKeyConflict reports whether err is MySQL refusing a delete
// because dependent rows still point at the target.
func isForeignKeyConflict(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlErrRowIsReferenced
}

// whereClause joins conditions into a WHERE fragment, or returns "" when
// there are none.
func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

func offsetFor(page, pageSize int) int {
	return (page - 1) * pageSize
}

func likePattern(s string) string {
	return "%" + s + "%"
}
