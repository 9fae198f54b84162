package todoer

import (
	"errors"

	"github.com/hunterjackson/todoer-sub000/application/service"
)

// ErrNoDatabase indicates no database was configured.
// Use WithSQLite or WithPostgres when creating the client.
var ErrNoDatabase = errors.New("todoer: no database configured")

// ErrClientClosed indicates the client has been closed.
var ErrClientClosed = service.ErrClientClosed
