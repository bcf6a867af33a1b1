package conn

import (
	"net/http"
	"time"

	"github.com/tobsdb/primdb/internal/parser"
)

type RequestAction string

const (
	// table actions
	RequestActionCreateTable RequestAction = "create_table"
	RequestActionDropTable   RequestAction = "drop_table"
	RequestActionListTables  RequestAction = "list_tables"
	RequestActionInfo        RequestAction = "info"

	// rows actions
	RequestActionInsert RequestAction = "insert"
	RequestActionSelect RequestAction = "select"
	RequestActionUpdate RequestAction = "update"
	RequestActionDelete RequestAction = "delete"

	RequestActionHelp RequestAction = "help"
	RequestActionExit RequestAction = "exit"
)

func (action RequestAction) IsReadOnly() bool {
	switch action {
	case RequestActionListTables, RequestActionInfo, RequestActionSelect, RequestActionHelp, RequestActionExit:
		return true
	}
	return false
}

// NeedsConfirmation marks the actions that ask before changing anything.
func (action RequestAction) NeedsConfirmation() bool {
	return action == RequestActionDropTable || action == RequestActionDelete
}

func ActionOf(cmd *parser.Command) RequestAction {
	switch {
	case cmd.CreateTable != nil:
		return RequestActionCreateTable
	case cmd.DropTable != nil:
		return RequestActionDropTable
	case cmd.ListTables:
		return RequestActionListTables
	case cmd.Info != nil:
		return RequestActionInfo
	case cmd.Insert != nil:
		return RequestActionInsert
	case cmd.Select != nil:
		return RequestActionSelect
	case cmd.Update != nil:
		return RequestActionUpdate
	case cmd.Delete != nil:
		return RequestActionDelete
	case cmd.Help:
		return RequestActionHelp
	default:
		return RequestActionExit
	}
}

// ActionHandler dispatches cmd and logs how long it took.
// Every error comes back as a Response; nothing here ends the session.
func ActionHandler(s *Session, cmd *parser.Command) (res Response) {
	action := ActionOf(cmd)
	start := time.Now()
	defer func() {
		attrs := []any{"action", action, "status", res.Status, "duration", time.Since(start)}
		if res.Status >= http.StatusBadRequest {
			s.log.Warn(res.Message, attrs...)
		} else {
			s.log.Debug("action finished", attrs...)
		}
	}()

	switch action {
	case RequestActionCreateTable:
		return CreateTableReqHandler(s, cmd.CreateTable)
	case RequestActionDropTable:
		return DropTableReqHandler(s, cmd.DropTable)
	case RequestActionListTables:
		return ListTablesReqHandler(s)
	case RequestActionInfo:
		return InfoReqHandler(s, cmd.Info)
	case RequestActionInsert:
		return InsertReqHandler(s, cmd.Insert)
	case RequestActionSelect:
		return SelectReqHandler(s, cmd.Select)
	case RequestActionUpdate:
		return UpdateReqHandler(s, cmd.Update)
	case RequestActionDelete:
		return DeleteReqHandler(s, cmd.Delete)
	case RequestActionHelp:
		return NewResponse(http.StatusOK, HELP_TEXT, nil)
	default:
		return NewResponse(http.StatusOK, "Goodbye!", nil)
	}
}

const HELP_TEXT = `Commands:
  create_table <table> <column:type> ...   create a table (types: int, str, bool)
  drop_table <table>                       drop a table and its rows
  list_tables                              list all tables
  info <table>                             show columns and row count
  insert into <table> values (<v1>, ...)   insert a record
  select from <table> [where <col> = <v>]  show records
  update <table> set <col> = <v>[, ...] where <col> = <v>
                                           update matching records
  delete from <table> where <col> = <v>    delete matching records
  help                                     show this help
  exit                                     leave`
