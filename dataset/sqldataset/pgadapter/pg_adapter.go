/*
Package pgadapter provides an implementation of the Adapter interface in the
sqldataset package that works over a PostgreSQL database.
*/
package pgadapter

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
	"github.com/pmarti/arbonet/dataset/sqldataset"
)

/*
MaxInstanceInsertionsPerStatement is the maximum number of instances that
are allowed to be added with a single insert command with the AddInstances
method of the adapter. Trying to add more will result in making more
insertion commands.
*/
const MaxInstanceInsertionsPerStatement = 10

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns an Adapter that
works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqldataset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	return &adapter{db}, nil
}

func (a *adapter) ColumnName(name string) (string, error) {
	if name == "id" {
		return "", fmt.Errorf(`'%s' is reserved and cannot be used as attribute name`, name)
	}
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`attribute name '%s' contains invalid character '"'`, name)
	}
	return strings.ToLower(name), nil
}

func (a *adapter) CreateInstanceTable(ctx context.Context, attributeColumns []string, classColumn string) error {
	var createStmtBuf bytes.Buffer
	createStmtBuf.WriteString("CREATE TABLE IF NOT EXISTS instances(")
	for _, c := range attributeColumns {
		createStmtBuf.WriteString(fmt.Sprintf(`"%s" INTEGER NOT NULL, `, c))
	}
	createStmtBuf.WriteString(fmt.Sprintf(`"%s" INTEGER NOT NULL, `, classColumn))
	createStmtBuf.WriteString(`"id" SERIAL PRIMARY KEY)`)
	_, err := a.db.ExecContext(ctx, createStmtBuf.String())
	if err != nil {
		return fmt.Errorf("running instances creation statement: %v", err)
	}
	return nil
}

func (a *adapter) AddInstances(rawInstances []map[string]int, attributeColumns []string, classColumn string) (int, error) {
	added := 0
	columns := append(append([]string{}, attributeColumns...), classColumn)
	for len(rawInstances) > 0 {
		batch := rawInstances
		if len(batch) > MaxInstanceInsertionsPerStatement {
			batch = batch[:MaxInstanceInsertionsPerStatement]
		}
		rawInstances = rawInstances[len(batch):]
		stmt, args := insertStatement(batch, columns)
		_, err := a.db.Exec(stmt, args...)
		if err != nil {
			return added, fmt.Errorf("inserting instances: %v", err)
		}
		added += len(batch)
	}
	return added, nil
}

func (a *adapter) IterateOnInstances(attributeColumns []string, classColumn string, lambda func(int, map[string]int) (bool, error)) error {
	columns := append(append([]string{}, attributeColumns...), classColumn)
	var selectStmtBuf bytes.Buffer
	selectStmtBuf.WriteString("SELECT ")
	for i, c := range columns {
		if i > 0 {
			selectStmtBuf.WriteString(", ")
		}
		selectStmtBuf.WriteString(fmt.Sprintf(`"%s"`, c))
	}
	selectStmtBuf.WriteString(` FROM instances ORDER BY "id"`)
	rows, err := a.db.Query(selectStmtBuf.String())
	if err != nil {
		return fmt.Errorf("querying instances: %v", err)
	}
	defer rows.Close()
	values := make([]int, len(columns))
	scanTargets := make([]interface{}, len(columns))
	for i := range values {
		scanTargets[i] = &values[i]
	}
	for n := 0; rows.Next(); n++ {
		err = rows.Scan(scanTargets...)
		if err != nil {
			return fmt.Errorf("scanning instance row: %v", err)
		}
		raw := make(map[string]int)
		for i, c := range columns {
			raw[c] = values[i]
		}
		ok, err := lambda(n, raw)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return rows.Err()
}

func (a *adapter) CountInstances() (int, error) {
	var count int
	err := a.db.QueryRow("SELECT COUNT(*) FROM instances").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting instances: %v", err)
	}
	return count, nil
}

func (a *adapter) MaxValue(column string) (int, error) {
	var max sql.NullInt64
	err := a.db.QueryRow(fmt.Sprintf(`SELECT MAX("%s") FROM instances`, column)).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("querying maximum value of column %s: %v", column, err)
	}
	if !max.Valid {
		return -1, nil
	}
	return int(max.Int64), nil
}

func insertStatement(batch []map[string]int, columns []string) (string, []interface{}) {
	var insertStmtBuf bytes.Buffer
	insertStmtBuf.WriteString("INSERT INTO instances(")
	for i, c := range columns {
		if i > 0 {
			insertStmtBuf.WriteString(", ")
		}
		insertStmtBuf.WriteString(fmt.Sprintf(`"%s"`, c))
	}
	insertStmtBuf.WriteString(") VALUES ")
	var args []interface{}
	placeholder := 1
	for i, raw := range batch {
		if i > 0 {
			insertStmtBuf.WriteString(", ")
		}
		insertStmtBuf.WriteString("(")
		for j, c := range columns {
			if j > 0 {
				insertStmtBuf.WriteString(", ")
			}
			insertStmtBuf.WriteString(fmt.Sprintf("$%d", placeholder))
			placeholder++
			args = append(args, raw[c])
		}
		insertStmtBuf.WriteString(")")
	}
	return insertStmtBuf.String(), args
}
