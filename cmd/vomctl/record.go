package main

import (
	"fmt"

	"github.com/kvouter/vom/vatstore"
	"github.com/kvouter/vom/vom"
)

// Record is the one representative kind vomctl knows about: a bag of
// string properties addressed by name. Real hosts declare many kinds
// with typed accessors (see the vom package documentation); a CLI has no static schema
// to compile against, so it stays generic.
type Record struct {
	h *vom.Handle
}

func (r *Record) get(prop string) (string, error) {
	var v string
	if err := r.h.Get(prop, &v); err != nil {
		return "", err
	}
	return v, nil
}

func (r *Record) set(prop, value string) error {
	return r.h.Set(prop, value)
}

// session bundles everything a subcommand needs: an open vatstore, a VOM
// over it, and the one Record kind vomctl registers. Every subcommand
// must call flushAndClose before returning, or whatever it minted or
// wrote never reaches disk — the in-process cache is the only place
// that state lives until flushed.
type session struct {
	store  *vatstore.SQLiteStore
	v      *vom.VOM
	record *vom.Kind[*Record]
}

func openSession(dsn string) (*session, error) {
	store, err := vatstore.OpenSQLiteStore(dsn)
	if err != nil {
		return nil, fmt.Errorf("open vatstore %q: %w", dsn, err)
	}
	v := vom.New(vom.Options{CacheSize: 64, Store: store})
	record := vom.MakeKind(v.Registry(), func(h *vom.Handle) *Record { return &Record{h: h} })
	return &session{store: store, v: v, record: record}, nil
}

func (s *session) flushAndClose() error {
	flushErr := s.v.FlushCache()
	closeErr := s.store.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}
