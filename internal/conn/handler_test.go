package conn_test

import (
	"net/http"
	"testing"

	"github.com/tobsdb/primdb/internal/builder"
	. "github.com/tobsdb/primdb/internal/conn"
	"github.com/tobsdb/primdb/internal/storage"
	"gotest.tools/assert"
)

func newTestSession(confirm bool) *Session {
	return NewSession(storage.NewMemStore(), ConfirmFunc(func(string) bool { return confirm }))
}

func exec(t *testing.T, s *Session, line string) Response {
	res, _ := s.Exec(line)
	return res
}

func newPopulatedSession(t *testing.T, confirm bool) *Session {
	s := newTestSession(confirm)
	res := exec(t, s, "create_table users name:str age:int")
	assert.Equal(t, res.Status, http.StatusCreated, res.Message)
	exec(t, s, `insert into users values ("Alice", 30)`)
	exec(t, s, `insert into users values ("Bob", 25)`)
	return s
}

func TestCreateTableReqHandler(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		s := newTestSession(true)
		res := exec(t, s, "create_table users name:str age:int")

		assert.Equal(t, res.Status, http.StatusCreated, res.Message)
		assert.Equal(t, res.Message, `Table "users" created with columns: ID:int, name:str, age:int`)
	})

	t.Run("duplicate", func(t *testing.T) {
		s := newTestSession(true)
		exec(t, s, "create_table users name:str")
		res := exec(t, s, "create_table users age:int")

		assert.Equal(t, res.Status, http.StatusConflict)
		assert.Equal(t, res.Message, `Table "users" already exists`)

		res = exec(t, s, "info users")
		assert.Equal(t, res.Message, "Table: users\nColumns: ID:int, name:str\nRows: 0")
	})

	t.Run("bad column", func(t *testing.T) {
		s := newTestSession(true)
		res := exec(t, s, "create_table users name")
		assert.Equal(t, res.Status, http.StatusBadRequest)
		assert.Equal(t, res.Message, "Invalid column format 'name'. Use name:type")
	})
}

func TestInsertReqHandler(t *testing.T) {
	t.Run("assigns ids", func(t *testing.T) {
		s := newTestSession(true)
		exec(t, s, "create_table users name:str age:int")

		res := exec(t, s, `insert into users values ("Alice", 30)`)
		assert.Equal(t, res.Status, http.StatusCreated, res.Message)
		assert.Equal(t, res.Message, `Record 1 inserted into "users".`)
		assert.DeepEqual(t, res.Data, builder.Row{"ID": 1, "name": "Alice", "age": 30})

		res = exec(t, s, `insert into users values ('Bob', 25)`)
		assert.Equal(t, res.Message, `Record 2 inserted into "users".`)
	})

	t.Run("ids are not reused after delete of a lower id", func(t *testing.T) {
		s := newPopulatedSession(t, true)
		exec(t, s, "delete from users where ID = 1")

		res := exec(t, s, `insert into users values ("Carol", 41)`)
		assert.Equal(t, res.Message, `Record 3 inserted into "users".`)
	})

	t.Run("unknown table", func(t *testing.T) {
		s := newTestSession(true)
		res := exec(t, s, `insert into users values ("Alice", 30)`)
		assert.Equal(t, res.Status, http.StatusNotFound)
	})

	t.Run("bad value", func(t *testing.T) {
		s := newPopulatedSession(t, true)
		res := exec(t, s, `insert into users values ("Carol", old)`)
		assert.Equal(t, res.Status, http.StatusBadRequest)
		assert.Equal(t, res.Message, "Cannot convert 'old' to int")

		res = exec(t, s, "info users")
		assert.Equal(t, res.Data.(*TableInfo).Rows, 2)
	})
}

func TestSelectReqHandler(t *testing.T) {
	s := newPopulatedSession(t, true)

	t.Run("all rows", func(t *testing.T) {
		res := exec(t, s, "select from users")
		rs := res.Data.(*ResultSet)
		assert.DeepEqual(t, rs.Columns, []string{"ID", "name", "age"})
		assert.DeepEqual(t, builder.RowIds(rs.Rows), []int{1, 2})
	})

	t.Run("where", func(t *testing.T) {
		res := exec(t, s, "select from users where name = 'Alice'")
		rs := res.Data.(*ResultSet)
		assert.DeepEqual(t, rs.Rows, []builder.Row{{"ID": 1, "name": "Alice", "age": 30}})
	})

	t.Run("no match", func(t *testing.T) {
		res := exec(t, s, "select from users where age = 99")
		assert.Equal(t, res.Message, "No records matched.")
	})

	t.Run("sees writes", func(t *testing.T) {
		exec(t, s, "select from users")
		exec(t, s, `insert into users values ("Carol", 41)`)
		res := exec(t, s, "select from users")
		assert.Equal(t, len(res.Data.(*ResultSet).Rows), 3)
	})
}

func TestUpdateReqHandler(t *testing.T) {
	t.Run("update", func(t *testing.T) {
		s := newPopulatedSession(t, true)
		res := exec(t, s, "update users set age = 31 where name = Alice")

		assert.Equal(t, res.Status, http.StatusOK, res.Message)
		assert.Equal(t, res.Message, `Record(s) with ID=1 in "users" updated.`)

		res = exec(t, s, "select from users where ID = 1")
		assert.Equal(t, res.Data.(*ResultSet).Rows[0].Get("age"), 31)
	})

	t.Run("no match", func(t *testing.T) {
		s := newPopulatedSession(t, true)
		res := exec(t, s, "update users set age = 31 where name = Nobody")
		assert.Equal(t, res.Message, "No records matched.")
	})

	t.Run("missing where", func(t *testing.T) {
		s := newPopulatedSession(t, true)
		res := exec(t, s, "update users set age = 31")
		assert.Equal(t, res.Status, http.StatusBadRequest)
		assert.Equal(t, res.Message, "update requires a where clause")
	})

	t.Run("unknown column", func(t *testing.T) {
		s := newPopulatedSession(t, true)
		res := exec(t, s, "update users set email = 'x' where ID = 1")
		assert.Equal(t, res.Status, http.StatusNotFound)
	})
}

func TestDeleteReqHandler(t *testing.T) {
	t.Run("delete", func(t *testing.T) {
		s := newPopulatedSession(t, true)
		res := exec(t, s, "delete from users where age = 30")

		assert.Equal(t, res.Message, `Record(s) with ID=1 deleted from "users".`)
		res = exec(t, s, "select from users")
		assert.DeepEqual(t, builder.RowIds(res.Data.(*ResultSet).Rows), []int{2})
	})

	t.Run("cancelled", func(t *testing.T) {
		s := newPopulatedSession(t, false)
		exec(t, s, "select from users")
		cached := s.Engine.Cache().Len()

		res := exec(t, s, "delete from users where age = 30")
		assert.Equal(t, res.Message, "Operation cancelled.")
		assert.Equal(t, s.Engine.Cache().Len(), cached)

		res = exec(t, s, "info users")
		assert.Equal(t, res.Data.(*TableInfo).Rows, 2)
	})

	t.Run("asks with the action", func(t *testing.T) {
		asked := []string{}
		s := NewSession(storage.NewMemStore(), ConfirmFunc(func(action string) bool {
			asked = append(asked, action)
			return true
		}))
		exec(t, s, "create_table users name:str")
		exec(t, s, "insert into users values (a)")
		exec(t, s, "delete from users where name = a")
		exec(t, s, "drop_table users")

		assert.DeepEqual(t, asked, []string{
			`delete 1 record(s) from "users"`,
			`drop table "users"`,
		})
	})

	t.Run("missing where", func(t *testing.T) {
		s := newPopulatedSession(t, true)
		res := exec(t, s, "delete from users")
		assert.Equal(t, res.Message, "delete requires a where clause")
	})
}

func TestDropTableReqHandler(t *testing.T) {
	t.Run("drop removes rows", func(t *testing.T) {
		s := newPopulatedSession(t, true)
		res := exec(t, s, "drop_table users")
		assert.Equal(t, res.Message, `Table "users" dropped.`)

		exec(t, s, "create_table users name:str age:int")
		res = exec(t, s, "select from users")
		assert.Equal(t, len(res.Data.(*ResultSet).Rows), 0)
	})

	t.Run("cancelled", func(t *testing.T) {
		s := newPopulatedSession(t, false)
		res := exec(t, s, "drop_table users")
		assert.Equal(t, res.Message, "Operation cancelled.")

		res = exec(t, s, "list_tables")
		assert.DeepEqual(t, res.Data, []string{"users"})
	})

	t.Run("not found", func(t *testing.T) {
		s := newTestSession(true)
		res := exec(t, s, "drop_table users")
		assert.Equal(t, res.Status, http.StatusNotFound)
		assert.Equal(t, res.Message, `Table "users" does not exist`)
	})
}

func TestExec(t *testing.T) {
	s := newTestSession(true)

	res, exit := s.Exec("frobnicate")
	assert.Assert(t, !exit)
	assert.Assert(t, res.IsError())

	res, _ = s.Exec("list_tables")
	assert.Equal(t, res.Message, "No tables.")

	res, _ = s.Exec("help")
	assert.Equal(t, res.Message, HELP_TEXT)

	_, exit = s.Exec("exit")
	assert.Assert(t, exit)
}
