package conn

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/tobsdb/primdb/internal/query"
	"github.com/tobsdb/primdb/internal/storage"
)

// Session runs commands one at a time against a store. The query cache is the
// only state it keeps between commands; catalog and rows are reloaded each time.
type Session struct {
	Id        uuid.UUID
	Engine    *query.Engine
	Store     storage.Store
	Confirmer Confirmer

	log *slog.Logger
}

func NewSession(store storage.Store, confirmer Confirmer) *Session {
	if confirmer == nil {
		confirmer = AlwaysConfirm{}
	}
	id := uuid.New()
	return &Session{
		Id:        id,
		Engine:    query.NewEngine(query.NewCache()),
		Store:     store,
		Confirmer: confirmer,
		log:       slog.With("session", id.String()),
	}
}

func (s *Session) Log() *slog.Logger { return s.log }
