package conn

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/tobsdb/primdb/internal/builder"
	"github.com/tobsdb/primdb/internal/parser"
	"github.com/tobsdb/primdb/internal/query"
	"github.com/tobsdb/primdb/internal/types"
	"github.com/tobsdb/primdb/pkg"
)

const (
	MSG_CANCELLED  = "Operation cancelled."
	MSG_NO_MATCHES = "No records matched."
)

type Response struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func NewErrorResponse(err error) Response {
	return Response{Message: err.Error(), Status: errorStatus(err)}
}

func NewResponse(status int, message string, data any) Response {
	return Response{Data: data, Message: message, Status: status}
}

func (r Response) IsError() bool { return r.Status >= http.StatusBadRequest }

func errorStatus(err error) int {
	var tdb_err *types.TdbError
	if !errors.As(err, &tdb_err) {
		return http.StatusInternalServerError
	}
	switch tdb_err.Kind() {
	case types.ErrorKindAlreadyExists:
		return http.StatusConflict
	case types.ErrorKindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// ResultSet is a select result with its columns in schema order.
type ResultSet struct {
	Columns []string      `json:"columns"`
	Rows    []builder.Row `json:"rows"`
}

type TableInfo struct {
	Name    string           `json:"name"`
	Columns []*builder.Field `json:"columns"`
	Rows    int              `json:"rows"`
}

func loadTable(s *Session, name string) (*builder.Catalog, *builder.Table, error) {
	catalog, err := s.Store.LoadCatalog()
	if err != nil {
		return nil, nil, err
	}
	table, err := catalog.Table(name)
	if err != nil {
		return nil, nil, err
	}
	return catalog, table, nil
}

func loadRows(s *Session, name string) (*builder.Table, []builder.Row, error) {
	_, table, err := loadTable(s, name)
	if err != nil {
		return nil, nil, err
	}
	rows, err := s.Store.LoadRows(name)
	if err != nil {
		return nil, nil, err
	}
	return table, rows, nil
}

func formatIds(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}

func CreateTableReqHandler(s *Session, req *parser.CreateTable) Response {
	catalog, err := s.Store.LoadCatalog()
	if err != nil {
		return NewErrorResponse(err)
	}

	specs := make([]string, len(req.Columns))
	for i, col := range req.Columns {
		specs[i] = col.Raw()
	}

	table, err := s.Engine.CreateTable(catalog, req.Table, specs)
	if err != nil {
		return NewErrorResponse(err)
	}
	if err := s.Store.SaveCatalog(catalog); err != nil {
		return NewErrorResponse(err)
	}

	return NewResponse(
		http.StatusCreated,
		fmt.Sprintf("Table \"%s\" created with columns: %s", table.Name, table.Summary()),
		table,
	)
}

func DropTableReqHandler(s *Session, req *parser.TableRef) Response {
	catalog, _, err := loadTable(s, req.Table)
	if err != nil {
		return NewErrorResponse(err)
	}

	if !s.Confirmer.Confirm(fmt.Sprintf("drop table \"%s\"", req.Table)) {
		return NewResponse(http.StatusOK, MSG_CANCELLED, nil)
	}

	if err := s.Engine.DropTable(catalog, req.Table); err != nil {
		return NewErrorResponse(err)
	}
	if err := s.Store.SaveCatalog(catalog); err != nil {
		return NewErrorResponse(err)
	}
	if err := s.Store.DeleteRows(req.Table); err != nil {
		return NewErrorResponse(err)
	}

	return NewResponse(http.StatusOK, fmt.Sprintf("Table \"%s\" dropped.", req.Table), nil)
}

func ListTablesReqHandler(s *Session) Response {
	catalog, err := s.Store.LoadCatalog()
	if err != nil {
		return NewErrorResponse(err)
	}

	names := slices.Collect(s.Engine.ListTables(catalog))
	if len(names) == 0 {
		return NewResponse(http.StatusOK, "No tables.", names)
	}
	return NewResponse(http.StatusOK, "", names)
}

func InfoReqHandler(s *Session, req *parser.TableRef) Response {
	table, rows, err := loadRows(s, req.Table)
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewResponse(
		http.StatusOK,
		fmt.Sprintf("Table: %s\nColumns: %s\nRows: %d", table.Name, table.Summary(), len(rows)),
		&TableInfo{Name: table.Name, Columns: table.Fields, Rows: len(rows)},
	)
}

func InsertReqHandler(s *Session, req *parser.Insert) Response {
	table, rows, err := loadRows(s, req.Table)
	if err != nil {
		return NewErrorResponse(err)
	}

	values := make([]string, len(req.Values))
	for i, v := range req.Values {
		values[i] = v.Raw()
	}

	row, err := s.Engine.Insert(table, values)
	if err != nil {
		return NewErrorResponse(err)
	}
	id := query.NextID(rows)
	builder.SetPrimaryKey(row, id)
	rows = append(rows, row)

	if err := s.Store.SaveRows(table.Name, rows); err != nil {
		return NewErrorResponse(err)
	}

	return NewResponse(
		http.StatusCreated,
		fmt.Sprintf("Record %d inserted into \"%s\".", id, table.Name),
		row,
	)
}

func SelectReqHandler(s *Session, req *parser.Select) Response {
	table, rows, err := loadRows(s, req.Table)
	if err != nil {
		return NewErrorResponse(err)
	}

	found := s.Engine.Select(table.Name, rows, req.Where.Where())
	message := ""
	if len(found) == 0 {
		message = MSG_NO_MATCHES
	}
	return NewResponse(http.StatusOK, message, &ResultSet{Columns: table.ColumnNames(), Rows: found})
}

func UpdateReqHandler(s *Session, req *parser.Update) Response {
	table, rows, err := loadRows(s, req.Table)
	if err != nil {
		return NewErrorResponse(err)
	}

	raw := map[string]string{}
	for _, a := range req.Set {
		raw[a.Column] = a.Value.Raw()
	}
	set, err := query.BuildSetClause(table, raw)
	if err != nil {
		return NewErrorResponse(err)
	}

	rows, ids, err := s.Engine.Update(rows, set, req.Where.Where())
	if err != nil {
		return NewErrorResponse(err)
	}
	if len(ids) == 0 {
		return NewResponse(http.StatusOK, MSG_NO_MATCHES, ids)
	}

	if err := s.Store.SaveRows(table.Name, rows); err != nil {
		return NewErrorResponse(err)
	}

	return NewResponse(
		http.StatusOK,
		fmt.Sprintf("Record(s) with ID=%s in \"%s\" updated.", formatIds(ids), table.Name),
		ids,
	)
}

func DeleteReqHandler(s *Session, req *parser.Delete) Response {
	table, rows, err := loadRows(s, req.Table)
	if err != nil {
		return NewErrorResponse(err)
	}

	where := query.QueryArg(req.Where.Where())
	if err := query.RequireWhere("delete", where); err != nil {
		return NewErrorResponse(err)
	}

	matched := pkg.Filter(rows, func(row builder.Row) bool { return query.Matches(row, where) })
	if len(matched) == 0 {
		return NewResponse(http.StatusOK, MSG_NO_MATCHES, []int{})
	}

	action := fmt.Sprintf("delete %d record(s) from \"%s\"", len(matched), table.Name)
	if !s.Confirmer.Confirm(action) {
		return NewResponse(http.StatusOK, MSG_CANCELLED, nil)
	}

	rows, ids, err := s.Engine.Delete(rows, where)
	if err != nil {
		return NewErrorResponse(err)
	}
	if err := s.Store.SaveRows(table.Name, rows); err != nil {
		return NewErrorResponse(err)
	}

	return NewResponse(
		http.StatusOK,
		fmt.Sprintf("Record(s) with ID=%s deleted from \"%s\".", formatIds(ids), table.Name),
		ids,
	)
}
