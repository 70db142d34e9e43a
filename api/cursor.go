package api

import (
	"bytes"

	"github.com/btrengine/storage/btr"
	"github.com/btrengine/storage/mtr"
	"github.com/btrengine/storage/trx"
)

// LockMode mirrors cursor lock modes.
type LockMode int

const (
	LockIX LockMode = iota + 1
	LockIS
)

// CursorMode controls cursor movement.
type CursorMode int

const (
	CursorGE CursorMode = iota
	CursorG
)

// MatchMode mirrors ib_match_t.
type MatchMode int

const (
	IB_EXACT_MATCH MatchMode = iota
	IB_CLOSEST_MATCH
	IB_EXACT_PREFIX
)

// Cursor provides simple table iteration directly over a btr.Tree, the way
// ib_crsr_t wraps a persistent cursor without owning the index it walks.
type Cursor struct {
	Tree      *btr.Tree
	treeCur   *btr.Cursor
	pcur      *btr.Pcur
	lastKey   []byte
	Trx       *trx.Trx
	MatchMode MatchMode
}

// CursorOpen opens a cursor directly on a tree, the trimmed stand-in for
// ib_cursor_open_table now that table/schema lookup lives outside this
// package's scope.
func CursorOpen(tree *btr.Tree, txn *trx.Trx, out **Cursor) ErrCode {
	if out == nil {
		return DB_ERROR
	}
	if tree == nil {
		return DB_TABLE_NOT_FOUND
	}
	*out = &Cursor{Tree: tree, Trx: txn, pcur: btr.NewPcur(tree), MatchMode: IB_CLOSEST_MATCH}
	return DB_SUCCESS
}

// CursorClose closes a cursor.
func CursorClose(crsr *Cursor) ErrCode {
	if crsr != nil && crsr.pcur != nil {
		crsr.pcur.Free()
	}
	return DB_SUCCESS
}

// CursorLock is a no-op for the in-memory cursor.
func CursorLock(_ *Cursor, _ LockMode) ErrCode {
	return DB_SUCCESS
}

// CursorAttachTrx binds a transaction to a cursor.
func CursorAttachTrx(crsr *Cursor, txn *trx.Trx) ErrCode {
	if crsr == nil {
		return DB_ERROR
	}
	crsr.Trx = txn
	if crsr.pcur != nil {
		crsr.pcur.TrxIfKnown = txn
	}
	return DB_SUCCESS
}

// CursorReset resets cursor position.
func CursorReset(crsr *Cursor) ErrCode {
	if crsr == nil {
		return DB_ERROR
	}
	if crsr.pcur != nil {
		crsr.pcur.Init()
	}
	crsr.treeCur = nil
	crsr.lastKey = nil
	return DB_SUCCESS
}

// CursorInsert inserts a key/value pair via the cursor's persistent cursor.
func CursorInsert(crsr *Cursor, key, value []byte) ErrCode {
	if crsr == nil || crsr.Tree == nil {
		return DB_ERROR
	}
	pcur := ensurePcur(crsr)
	if pcur == nil || pcur.Cur == nil {
		return DB_ERROR
	}
	if pcur.Cur.Search(key, btr.SearchEqual) {
		return DB_DUPLICATE_KEY
	}
	pcur.Cur.Insert(key, value)
	return DB_SUCCESS
}

// CursorFirst positions the cursor at the first row.
func CursorFirst(crsr *Cursor) ErrCode {
	if crsr == nil || crsr.Tree == nil {
		return DB_ERROR
	}
	pcur := ensurePcur(crsr)
	if pcur == nil {
		return DB_ERROR
	}
	first := mtr.New()
	found := pcur.OpenAtIndexSide(true, btr.BtrSearchLeaf, first)
	mtr.Commit(first)
	if !found {
		return DB_RECORD_NOT_FOUND
	}
	crsr.treeCur = pcur.Cur.Cursor
	if crsr.treeCur == nil || !crsr.treeCur.Valid() {
		return DB_RECORD_NOT_FOUND
	}
	crsr.lastKey = crsr.treeCur.Key()
	return DB_SUCCESS
}

// CursorNext advances the cursor.
func CursorNext(crsr *Cursor) ErrCode {
	if crsr == nil || crsr.Tree == nil {
		return DB_ERROR
	}
	pcur := ensurePcur(crsr)
	if pcur == nil || pcur.Cur == nil {
		return DB_ERROR
	}
	if pcur.Cur.Valid() {
		crsr.lastKey = pcur.Cur.Key()
		if !pcur.Cur.Next() {
			crsr.treeCur = nil
			return DB_END_OF_INDEX
		}
		crsr.treeCur = pcur.Cur.Cursor
		crsr.lastKey = pcur.Cur.Key()
		return DB_SUCCESS
	}
	if len(crsr.lastKey) == 0 {
		return DB_END_OF_INDEX
	}
	scan := mtr.New()
	found := pcur.OpenOnUserRec(crsr.Tree, crsr.lastKey, btr.SearchGE, btr.BtrSearchLeaf, scan)
	mtr.Commit(scan)
	if !found {
		return DB_END_OF_INDEX
	}
	if pcur.Cur.Valid() && bytes.Equal(pcur.Cur.Key(), crsr.lastKey) {
		if !pcur.Cur.Next() {
			crsr.treeCur = nil
			return DB_END_OF_INDEX
		}
	}
	if !pcur.Cur.Valid() {
		return DB_END_OF_INDEX
	}
	crsr.treeCur = pcur.Cur.Cursor
	crsr.lastKey = pcur.Cur.Key()
	return DB_SUCCESS
}

// CursorReadCurrent returns the key and value the cursor currently sits on.
func CursorReadCurrent(crsr *Cursor) ([]byte, []byte, ErrCode) {
	if crsr == nil || crsr.Tree == nil {
		return nil, nil, DB_ERROR
	}
	if crsr.treeCur == nil || !crsr.treeCur.Valid() {
		return nil, nil, DB_RECORD_NOT_FOUND
	}
	return crsr.treeCur.Key(), crsr.treeCur.Value(), DB_SUCCESS
}

// CursorMoveTo positions the cursor at the first key satisfying mode
// relative to key, honoring the cursor's match mode for exact/prefix lookups.
func CursorMoveTo(crsr *Cursor, key []byte, mode CursorMode, ret *int) ErrCode {
	if crsr == nil || crsr.Tree == nil || len(key) == 0 {
		return DB_ERROR
	}
	pcur := ensurePcur(crsr)
	if pcur == nil || pcur.Cur == nil {
		return DB_ERROR
	}
	searchMode := btr.SearchGE
	if mode == CursorG {
		searchMode = btr.SearchG
	}
	if !pcur.Cur.Search(key, searchMode) {
		return DB_RECORD_NOT_FOUND
	}
	if crsr.MatchMode == IB_EXACT_MATCH && !bytes.Equal(pcur.Cur.Key(), key) {
		return DB_RECORD_NOT_FOUND
	}
	if crsr.MatchMode == IB_EXACT_PREFIX && !bytes.HasPrefix(pcur.Cur.Key(), key) {
		return DB_RECORD_NOT_FOUND
	}
	crsr.treeCur = pcur.Cur.Cursor
	crsr.lastKey = pcur.Cur.Key()
	if ret != nil {
		switch {
		case bytes.Equal(pcur.Cur.Key(), key):
			*ret = 0
		default:
			*ret = -1
		}
	}
	return DB_SUCCESS
}

func ensurePcur(crsr *Cursor) *btr.Pcur {
	if crsr == nil || crsr.Tree == nil {
		return nil
	}
	if crsr.pcur == nil {
		crsr.pcur = btr.NewPcur(crsr.Tree)
	} else if crsr.pcur.Cur == nil {
		crsr.pcur.Cur = btr.NewCur(crsr.Tree)
	}
	return crsr.pcur
}
