package mtr

import (
	"github.com/btrengine/storage/dyn"
	"github.com/btrengine/storage/log"
)

// Start initializes a mini-transaction in the provided buffer.
func Start(m *Mtr) *Mtr {
	if m == nil {
		return nil
	}
	if m.Log != nil {
		m.Log.Free()
	}
	m.Log = dyn.New()
	m.LogMode = LogAll
	m.Modifications = false
	m.NLogRecs = 0
	m.State = StateActive
	m.Memo = m.Memo[:0]
	return m
}

// Commit finalizes the mini-transaction, releasing every latch remembered
// in the memo stack in LIFO order (the order mtr_memo_pop_all walks it in
// the original source) before clearing buffers.
func Commit(m *Mtr) {
	if m == nil {
		return
	}
	m.State = StateCommitting
	mtrWriteLog(m)
	releaseMemo(m, 0)
	if m.Log != nil {
		m.Log.Free()
		m.Log = nil
	}
	m.Memo = nil
	m.Modifications = false
	m.NLogRecs = 0
	m.State = StateCommitted
}

// MemoRelease releases a single memo slot ahead of commit, the way
// btr_pcur_release_leaf drops a leaf latch mid-mini-transaction. It removes
// the slot from the memo stack so Commit does not try to release it again.
func MemoRelease(m *Mtr, object any, typ MemoType) {
	if m == nil {
		return
	}
	for i, slot := range m.Memo {
		if slot.Object != object || slot.Type != typ {
			continue
		}
		if r, ok := slot.Object.(Releasable); ok {
			r.ReleaseMemo(slot.Type)
		}
		m.Memo = append(m.Memo[:i], m.Memo[i+1:]...)
		return
	}
}

// releaseMemo walks the memo stack from the top down to (but not including)
// savepoint, releasing every releasable slot it finds.
func releaseMemo(m *Mtr, savepoint int) {
	if m == nil {
		return
	}
	for i := len(m.Memo) - 1; i >= savepoint; i-- {
		slot := m.Memo[i]
		if r, ok := slot.Object.(Releasable); ok {
			r.ReleaseMemo(slot.Type)
		}
	}
}

func mtrWriteLog(m *Mtr) {
	if m == nil || m.Log == nil {
		return
	}
	if m.LogMode == LogNone || !m.Modifications || m.NLogRecs == 0 {
		return
	}
	if m.NLogRecs > 1 {
		MlogCatenateUlint(m, MlogMultiRecEnd, Mlog1Byte)
	} else if block := m.Log.FirstBlock(); block != nil && block.Used() > 0 {
		block.Data()[0] |= MlogSingleRecFlag
	}
	dataSize := m.Log.DataSize()
	if dataSize == 0 {
		return
	}
	log.ReserveAndOpen(dataSize)
	if m.LogMode == LogAll || m.LogMode == LogShortInserts {
		for block := m.Log.FirstBlock(); block != nil; block = m.Log.NextBlock(block) {
			data := block.Data()
			used := block.Used()
			if used > len(data) {
				used = len(data)
			}
			if used > 0 {
				log.WriteLow(data[:used])
			}
		}
	}
	end := log.Close()
	if m.LogMode == LogAll {
		log.FlushUpTo(end)
	}
}

// GetLogMode returns the current logging mode.
func GetLogMode(m *Mtr) LogMode {
	if m == nil {
		return LogNone
	}
	return m.LogMode
}

// SetLogMode changes the logging mode and returns the previous value.
func SetLogMode(m *Mtr, mode LogMode) LogMode {
	if m == nil {
		return LogNone
	}
	old := m.LogMode
	if mode == LogShortInserts && old == LogNone {
		return old
	}
	m.LogMode = mode
	return old
}

// MemoPush records an object in the memo stack.
func MemoPush(m *Mtr, object any, typ MemoType) {
	if m == nil || object == nil {
		return
	}
	m.Memo = append(m.Memo, MemoSlot{Object: object, Type: typ})
}

// SetSavepoint returns the current memo stack size.
func SetSavepoint(m *Mtr) int {
	if m == nil {
		return 0
	}
	return len(m.Memo)
}

// RollbackToSavepoint discards memo entries after the savepoint.
func RollbackToSavepoint(m *Mtr, savepoint int) {
	if m == nil {
		return
	}
	if savepoint < 0 {
		savepoint = 0
	}
	if savepoint > len(m.Memo) {
		return
	}
	releaseMemo(m, savepoint)
	m.Memo = m.Memo[:savepoint]
}

// MemoContains reports whether the memo stack contains an object/type pair.
func MemoContains(m *Mtr, object any, typ MemoType) bool {
	if m == nil {
		return false
	}
	for _, slot := range m.Memo {
		if slot.Object == object && slot.Type == typ {
			return true
		}
	}
	return false
}
