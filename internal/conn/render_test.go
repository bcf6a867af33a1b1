package conn_test

import (
	"bufio"
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/tobsdb/primdb/internal/builder"
	. "github.com/tobsdb/primdb/internal/conn"
	"github.com/tobsdb/primdb/internal/storage"
	"gotest.tools/assert"
)

func TestFormatTable(t *testing.T) {
	out := FormatTable(&ResultSet{
		Columns: []string{"ID", "name", "age"},
		Rows:    []builder.Row{{"ID": 1, "name": "Alice", "age": 30}},
	})

	assert.Equal(t, out, ""+
		"+----+-------+-----+\n"+
		"| ID | name  | age |\n"+
		"+----+-------+-----+\n"+
		"| 1  | Alice | 30  |\n"+
		"+----+-------+-----+\n")
}

func TestTableRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := TableRenderer{}

	assert.NilError(t, r.Render(&buf, Response{Message: "boom", Status: http.StatusBadRequest}))
	assert.Equal(t, buf.String(), "Error: boom\n")

	buf.Reset()
	assert.NilError(t, r.Render(&buf, Response{Data: []string{"a", "b"}, Status: http.StatusOK}))
	assert.Equal(t, buf.String(), "- a\n- b\n")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	assert.NilError(t, JSONRenderer{}.Render(&buf, Response{Message: "ok", Status: http.StatusOK}))
	assert.Equal(t, buf.String(), `{"message":"ok","status":200}`+"\n")
}

func TestPromptConfirmer(t *testing.T) {
	var out bytes.Buffer
	c := &PromptConfirmer{In: bufio.NewReader(strings.NewReader("y\nno\n")), Out: &out}

	assert.Assert(t, c.Confirm("drop table \"users\""))
	assert.Equal(t, out.String(), "Are you sure you want to perform \"drop table \"users\"\"? [y/n]: ")
	assert.Assert(t, !c.Confirm("again"))
	assert.Assert(t, !c.Confirm("eof"))
}

func TestRun(t *testing.T) {
	s := NewSession(storage.NewMemStore(), nil)
	in := bufio.NewReader(strings.NewReader(
		"create_table t a:int\n\ninsert into t values (1)\nselect from t\nexit\nlist_tables\n"))
	var out bytes.Buffer

	assert.NilError(t, s.Run(context.Background(), in, &out, TableRenderer{}, false))

	text := out.String()
	assert.Assert(t, strings.Contains(text, `Table "t" created with columns: ID:int, a:int`), text)
	assert.Assert(t, strings.Contains(text, `Record 1 inserted into "t".`), text)
	assert.Assert(t, strings.Contains(text, "| ID | a |"), text)
	assert.Assert(t, strings.Contains(text, "Goodbye!"), text)
	assert.Assert(t, !strings.Contains(text, "- t"), text)
}

func TestRunWithoutTrailingNewline(t *testing.T) {
	s := NewSession(storage.NewMemStore(), nil)
	var out bytes.Buffer

	err := s.Run(context.Background(), bufio.NewReader(strings.NewReader("list_tables")), &out, TableRenderer{}, true)
	assert.NilError(t, err)
	assert.Equal(t, out.String(), PROMPT+"No tables.\n\n")
}
