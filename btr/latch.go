package btr

import "github.com/btrengine/storage/mtr"

// ReleaseMemo implements mtr.Releasable so a node pushed onto a
// mini-transaction's memo stack is unlatched automatically on commit or
// rollback-to-savepoint.
func (n *node) ReleaseMemo(typ mtr.MemoType) {
	if n == nil {
		return
	}
	switch typ {
	case mtr.MemoPageXFix, mtr.MemoModify:
		n.latch.Unlock()
	case mtr.MemoPageSFix:
		n.latch.RUnlock()
	}
}

// latchSFix S-latches a node and records it on the mini-transaction's memo
// stack, mirroring buf_page_get with RW_S_LATCH followed by mtr_memo_push.
func latchSFix(m *mtr.Mtr, n *node) {
	if n == nil {
		return
	}
	n.latch.RLock()
	mtr.MemoPush(m, n, mtr.MemoPageSFix)
}

// latchXFix X-latches a node and records it on the memo stack.
func latchXFix(m *mtr.Mtr, n *node) {
	if n == nil {
		return
	}
	n.latch.Lock()
	mtr.MemoPush(m, n, mtr.MemoPageXFix)
}

// releaseLeaf drops a single node's latch ahead of mtr commit, the
// primitive ReleaseLeaf builds on.
func releaseLeaf(m *mtr.Mtr, n *node, typ mtr.MemoType) {
	if n == nil {
		return
	}
	mtr.MemoRelease(m, n, typ)
}
