// Package inmemdb keeps the session state in process memory.
package inmemdb

import (
	"sync"

	"github.com/trezcool/edumind/core/session"
)

type (
	DB struct {
		session *sessionTable
	}

	sessionTable struct {
		mutex sync.RWMutex
		table map[string]*session.Session
	}
)

func Open() *DB {
	return &DB{
		session: &sessionTable{table: make(map[string]*session.Session)},
	}
}
