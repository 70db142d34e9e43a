package btr

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/btrengine/storage/mtr"
	"github.com/btrengine/storage/trx"
)

// Persistent cursor relative positions.
const (
	PcurOn                = 1
	PcurBefore            = 2
	PcurAfter             = 3
	PcurBeforeFirstInTree = 4
	PcurAfterLastInTree   = 5
)

// Persistent cursor state flags.
const (
	PcurIsPositioned  = 1997660512
	PcurWasPositioned = 1187549791
	PcurNotPositioned = 1328997689
	PcurOldStored     = 908467085
	PcurOldNotStored  = 122766467
)

// pcurLog is the diagnostic sink for contract violations the persistent
// cursor detects in its own invariants - the Go analogue of ut_error after
// trx_print in the original source.
var pcurLog = logrus.New()

// Pcur is a cursor that keeps its bearings across mini-transactions. It
// wraps a Cur with the bookkeeping needed to find its way back to (or near)
// the same record once the page it was on has possibly been modified,
// split, merged, or rebalanced by someone else.
type Pcur struct {
	Cur       *Cur
	LatchMode LatchMode
	PosState  int
	RelPos    int
	OldStored int

	// OldRecPrefix is the ordering-prefix copy of the record the cursor sat
	// on when StorePosition ran. OldNFields counts how many fields of that
	// prefix are significant; it is always 1 once OldStored is true, since
	// the cursor's keys are opaque []byte rather than multi-field tuples.
	OldRecPrefix []byte
	OldNFields   int

	// BlockWhenStored is the frame the cursor sat on when StorePosition
	// ran. It is a weak reference: nothing besides RestorePosition's clock
	// check may dereference it, because the frame may have been merged
	// away and reused by the time restore runs.
	BlockWhenStored *node
	ModifyClock     uint64

	SearchMode SearchMode
	TrxIfKnown *trx.Trx
}

// NewPcur allocates and initializes a persistent cursor.
func NewPcur(tree *Tree) *Pcur {
	p := &Pcur{
		Cur:       NewCur(tree),
		RelPos:    PcurOn,
		PosState:  PcurNotPositioned,
		OldStored: PcurOldNotStored,
		LatchMode: BtrNoLatches,
	}
	return p
}

// Init resets a persistent cursor.
func (p *Pcur) Init() {
	if p == nil {
		return
	}
	if p.Cur != nil {
		p.Cur.Invalidate()
	}
	p.OldRecPrefix = nil
	p.OldNFields = 0
	p.BlockWhenStored = nil
	p.ModifyClock = 0
	p.RelPos = PcurOn
	p.PosState = PcurNotPositioned
	p.OldStored = PcurOldNotStored
	p.LatchMode = BtrNoLatches
}

// Free releases resources held by the cursor. Any latch still on the memo
// stack is the caller's responsibility - Free does not itself touch a
// mini-transaction, matching btr_pcur_close which only frees memory.
func (p *Pcur) Free() {
	if p == nil {
		return
	}
	p.Cur = nil
	p.OldRecPrefix = nil
	p.OldNFields = 0
	p.BlockWhenStored = nil
	p.ModifyClock = 0
	p.RelPos = PcurOn
	p.PosState = PcurNotPositioned
	p.OldStored = PcurOldNotStored
	p.LatchMode = BtrNoLatches
}

// fatal logs a contract violation and panics, the same two-step
// ut_print_buf-then-ut_error sequence the original source uses for
// assertion failures it cannot recover from.
func (p *Pcur) fatal(msg string) {
	incident := uuid.New().String()
	fields := logrus.Fields{"incident": incident, "rel_pos": p.RelPos, "pos_state": p.PosState}
	if p.TrxIfKnown != nil {
		fields["trx_id"] = p.TrxIfKnown.ID
	}
	pcurLog.WithFields(fields).Error(msg)
	panic(fmt.Sprintf("btr pcur: %s (incident %s)", msg, incident))
}

// Open positions the cursor using the given search mode and latches the
// landing leaf under latchMode, recording the latch on m's memo stack. It
// is the base every higher-level open builds on, mirroring
// btr_pcur_open_func.
func (p *Pcur) Open(tree *Tree, key []byte, mode SearchMode, latchMode LatchMode, m *mtr.Mtr) bool {
	if p == nil {
		return false
	}
	if p.Cur == nil || p.Cur.Tree != tree {
		p.Cur = NewCur(tree)
	}
	if p.Cur.Tree == nil {
		return false
	}
	p.SearchMode = mode
	p.LatchMode = latchMode

	var found bool
	switch latchMode {
	case BtrSearchPrev, BtrModifyPrev:
		found = p.Cur.SearchPrevAware(key, mode)
	default:
		found = p.Cur.Search(key, mode)
	}
	p.Cur.LatchLeaves(m, latchMode)
	p.PosState = PcurIsPositioned
	p.RelPos = PcurOn
	p.OldStored = PcurOldNotStored
	return found
}

// OpenOnUserRec positions the cursor on the first user record satisfying
// mode, advancing past the tree boundary when the landing position is not
// itself a user record - mirroring btr_pcur_open_on_user_rec_func crossing
// into move_to_next_user_rec for the G/GE modes, and asserting for L/LE
// which the original never supports here.
func (p *Pcur) OpenOnUserRec(tree *Tree, key []byte, mode SearchMode, latchMode LatchMode, m *mtr.Mtr) bool {
	if p == nil {
		return false
	}
	found := p.Open(tree, key, mode, latchMode, m)
	if p.Cur.IsOnUserRec() {
		return found
	}
	switch mode {
	case SearchGE, SearchG:
		if p.MoveToNextUserRec(m) {
			return p.Cur.Valid() && p.Cur.Tree.compare(p.Cur.Key(), key) == 0
		}
		p.RelPos = PcurAfterLastInTree
		return false
	case SearchLE, SearchL:
		p.fatal("open_on_user_rec: L/LE landing off a user record is unimplemented")
		return false
	default:
		return found
	}
}

// OpenAtIndexSide positions the cursor at the leftmost or rightmost record
// and latches the landing leaf under the cursor's current latch mode,
// recording the latch on m's memo stack.
func (p *Pcur) OpenAtIndexSide(left bool, latchMode LatchMode, m *mtr.Mtr) bool {
	if p == nil || p.Cur == nil {
		return false
	}
	p.LatchMode = latchMode
	found := p.Cur.OpenAtIndexSide(left)
	p.Cur.LatchLeaves(m, latchMode)
	p.PosState = PcurIsPositioned
	if found {
		p.RelPos = PcurOn
		return true
	}
	if left {
		p.RelPos = PcurBeforeFirstInTree
	} else {
		p.RelPos = PcurAfterLastInTree
	}
	return false
}

// OpenAtRandom positions the cursor at a pseudo-random record.
func (p *Pcur) OpenAtRandom() bool {
	if p == nil || p.Cur == nil {
		return false
	}
	found := p.Cur.OpenAtRandom()
	p.PosState = PcurIsPositioned
	if found {
		p.RelPos = PcurOn
		return true
	}
	p.RelPos = PcurAfterLastInTree
	return false
}

// MoveToNextUserRec advances to the next user record, crossing a page
// boundary via MoveToNextPage if needed.
func (p *Pcur) MoveToNextUserRec(m *mtr.Mtr) bool {
	if p == nil || p.Cur == nil {
		return false
	}
	for {
		if !p.Cur.Valid() {
			if !p.MoveToNextPage(m) {
				return false
			}
			continue
		}
		if p.Cur.Cursor != nil {
			cur := *p.Cur.Cursor
			if !cur.Next() {
				if !p.MoveToNextPage(m) {
					return false
				}
				continue
			}
			p.Cur.Cursor = &cur
		}
		if p.Cur.IsOnUserRec() {
			p.RelPos = PcurOn
			p.OldStored = PcurOldNotStored
			return true
		}
	}
}

// MoveToPrevUserRec is the mirror of MoveToNextUserRec, walking backward.
func (p *Pcur) MoveToPrevUserRec(m *mtr.Mtr) bool {
	if p == nil || p.Cur == nil {
		return false
	}
	for {
		if !p.Cur.Valid() {
			if !p.MoveBackwardFromPage(m) {
				return false
			}
			continue
		}
		if p.Cur.Cursor != nil {
			cur := *p.Cur.Cursor
			if !cur.Prev() {
				if !p.MoveBackwardFromPage(m) {
					return false
				}
				continue
			}
			p.Cur.Cursor = &cur
		}
		if p.Cur.IsOnUserRec() {
			p.RelPos = PcurOn
			p.OldStored = PcurOldNotStored
			return true
		}
	}
}

// MoveToNextPage moves the cursor to the first record on the next leaf,
// releasing the old leaf's latch first (the old leaf is no longer needed
// once the cursor has left it) and latching the new one.
func (p *Pcur) MoveToNextPage(m *mtr.Mtr) bool {
	if p == nil || p.Cur == nil || !p.Cur.Valid() {
		return false
	}
	start := p.Cur.Cursor.node
	next := start.next
	releaseLeaf(m, start, memoTypeFor(p.LatchMode))
	if next == nil || len(next.keys) == 0 {
		p.Cur.Cursor = nil
		p.RelPos = PcurAfterLastInTree
		p.PosState = PcurWasPositioned
		return false
	}
	p.Cur.Cursor = &Cursor{node: next, index: 0}
	p.Cur.LatchLeaves(m, p.LatchMode)
	p.RelPos = PcurOn
	p.PosState = PcurIsPositioned
	p.OldStored = PcurOldNotStored
	return true
}

// MoveBackwardFromPage implements the store-commit-restore protocol the
// original source uses to walk backward across a page boundary without
// ever latching a left sibling while already holding its right neighbor
// (which would invert the tree's left-to-right latch order): store the
// current position, commit the mini-transaction (dropping every latch),
// start a fresh one, and reopen the cursor under a previous-aware latch
// mode so the left sibling comes pre-latched in LeftBlock.
func (p *Pcur) MoveBackwardFromPage(m *mtr.Mtr) bool {
	if p == nil || p.Cur == nil || !p.Cur.Valid() {
		return false
	}

	key := cloneBytes(p.Cur.Key())
	origLatch := p.LatchMode
	var prevLatch LatchMode
	switch origLatch {
	case BtrSearchLeaf:
		prevLatch = BtrSearchPrev
	default:
		prevLatch = BtrModifyPrev
	}

	p.StorePosition(m)
	mtr.Commit(m)
	mtr.Start(m)

	p.Cur.SearchPrevAware(key, SearchGE)
	p.Cur.LatchLeaves(m, prevLatch)
	left := p.Cur.LeftBlock

	if left == nil || len(left.keys) == 0 {
		p.LatchMode = origLatch
		p.RelPos = PcurBeforeFirstInTree
		p.PosState = PcurWasPositioned
		return false
	}
	p.Cur.Cursor = &Cursor{node: left, index: len(left.keys) - 1}
	// Restore the caller's original latch mode - prevLatch only existed to
	// pre-latch the left sibling via the previous-aware search above, the
	// way btr_pcur_move_backward_from_page sets cursor->latch_mode back to
	// latch_mode once it has crossed the page boundary.
	p.LatchMode = origLatch
	p.RelPos = PcurOn
	p.PosState = PcurIsPositioned
	p.OldStored = PcurOldNotStored
	return true
}

// ReleaseLeaf drops the latch on the cursor's current leaf ahead of
// mini-transaction commit, the way a long scan calls btr_pcur_store_position
// followed by btr_pcur_release_leaf to avoid pinning a page across many
// mini-transactions.
func (p *Pcur) ReleaseLeaf(m *mtr.Mtr) {
	if p == nil || p.Cur == nil || p.Cur.Cursor == nil {
		return
	}
	releaseLeaf(m, p.Cur.Cursor.node, memoTypeFor(p.LatchMode))
	p.LatchMode = BtrNoLatches
}

func memoTypeFor(mode LatchMode) mtr.MemoType {
	switch mode {
	case BtrModifyLeaf, BtrModifyPrev, BtrModifyTree, BtrContModifyTree:
		return mtr.MemoPageXFix
	default:
		return mtr.MemoPageSFix
	}
}

// StorePosition records the current cursor position so it can be found
// again after the mini-transaction holding its latch commits. An empty
// tree stores as "before first" (or keeps "after last" if already set),
// matching btr_pcur_store_position's handling of an infimum-only page. A
// cursor that sits on no record of a non-empty tree keeps its current
// rel_pos and stores an empty prefix. On a leaf boundary record with a
// sibling past it, rel_pos resolves to AFTER/BEFORE rather than ON, the
// way the original resolves a cursor sitting on a page's supremum or
// infimum. It leaves pos_state at IS_POSITIONED - committing the
// mini-transaction that owns the latch is what conceptually moves the
// cursor to WAS_POSITIONED, not the act of storing itself.
func (p *Pcur) StorePosition(m *mtr.Mtr) {
	if p == nil {
		return
	}
	if p.PosState != PcurIsPositioned {
		p.fatal("store_position: called on a cursor that is not positioned")
	}
	if p.Cur == nil || !p.Cur.Valid() {
		p.OldRecPrefix = nil
		p.OldNFields = 0
		p.BlockWhenStored = nil
		if p.Cur != nil && p.Cur.Tree != nil && p.Cur.Tree.Size() == 0 {
			if p.RelPos != PcurAfterLastInTree {
				p.RelPos = PcurBeforeFirstInTree
			}
		}
		p.OldStored = PcurOldStored
		return
	}

	// The caller must already hold at least an S latch on the current leaf
	// (from Open/Search's LatchLeaves), so reading modifyClock here needs
	// no latch of its own.
	n := p.Cur.Cursor.node
	idx := p.Cur.Cursor.index

	// This tree's leaves hold only real records - there is no separate
	// infimum/supremum slot to land on. The last record of a leaf that has
	// a right sibling, and the first record of a leaf that has a left
	// sibling, are this model's stand-in for those sentinels: landing there
	// is exactly where the original leaves old_rec after stepping off the
	// matching sentinel (page_rec_get_prev/get_next).
	switch {
	case idx == len(n.keys)-1 && n.next != nil:
		p.RelPos = PcurAfter
	case idx == 0 && n.prev != nil:
		p.RelPos = PcurBefore
	default:
		p.RelPos = PcurOn
	}

	p.OldRecPrefix = cloneBytes(p.Cur.Cursor.Key())
	p.OldNFields = 1
	p.BlockWhenStored = n
	p.ModifyClock = n.modifyClock
	p.OldStored = PcurOldStored
}

// CopyStoredPosition copies stored state from another cursor, independently
// owning its own ordering-prefix buffer the way
// btr_pcur_copy_stored_position deep-copies old_rec_buf.
func (p *Pcur) CopyStoredPosition(src *Pcur) {
	if p == nil || src == nil {
		return
	}
	p.OldRecPrefix = cloneBytes(src.OldRecPrefix)
	p.OldNFields = src.OldNFields
	p.BlockWhenStored = src.BlockWhenStored
	p.ModifyClock = src.ModifyClock
	p.RelPos = src.RelPos
	p.PosState = src.PosState
	p.OldStored = src.OldStored
	p.LatchMode = src.LatchMode
}

// RestorePosition restores the stored position under a new mini-transaction.
// It first tries the optimistic path - re-latching BlockWhenStored directly
// and comparing its modify clock against the value recorded at store time -
// and only falls back to a full tree search when that frame was touched (or
// freed) since then. The return value matches btr_pcur_restore_position_func:
// true only on an exact landing, on either path.
func (p *Pcur) RestorePosition(m *mtr.Mtr) bool {
	if p == nil || p.Cur == nil || p.Cur.Tree == nil {
		return false
	}
	if p.OldStored != PcurOldStored {
		p.fatal("restore_position: called without a prior store_position")
	}

	// Empty-tree sentinel shortcut: open at whichever side the sentinel
	// names instead of re-searching for a prefix that was never recorded.
	// store_position also leaves an empty OldRecPrefix, under a non-sentinel
	// rel_pos, when the cursor sat on no record of a non-empty tree; that
	// case takes the paths below and re-searches with an empty key.
	if p.RelPos == PcurBeforeFirstInTree || p.RelPos == PcurAfterLastInTree {
		p.OpenAtIndexSide(p.RelPos == PcurBeforeFirstInTree, p.LatchMode, m)
		p.BlockWhenStored = p.Cur.GetBlock()
		if p.BlockWhenStored != nil {
			p.ModifyClock = p.BlockWhenStored.modifyClock
		}
		p.PosState = PcurIsPositioned
		return false
	}

	canTryOptimistic := p.LatchMode == BtrSearchLeaf || p.LatchMode == BtrModifyLeaf
	if p.RelPos == PcurOn && canTryOptimistic && p.tryOptimisticRestore(m) {
		p.PosState = PcurIsPositioned
		return true
	}

	return p.pessimisticRestore(m)
}

// tryOptimisticRestore implements the single-word validity oracle: if the
// stored frame is still live and its modify clock matches what was
// recorded, the cursor can resume directly on it without a fresh search.
func (p *Pcur) tryOptimisticRestore(m *mtr.Mtr) bool {
	n := p.BlockWhenStored
	if n == nil {
		return false
	}
	n.latch.RLock()
	freed := n.freed
	clock := n.modifyClock
	n.latch.RUnlock()
	if freed || clock != p.ModifyClock {
		return false
	}

	switch p.LatchMode {
	case BtrModifyLeaf, BtrModifyPrev, BtrModifyTree, BtrContModifyTree:
		latchXFix(m, n)
	default:
		latchSFix(m, n)
	}
	idx := p.Cur.Tree.keyIndex(n.keys, p.OldRecPrefix)
	if idx >= len(n.keys) || p.Cur.Tree.compare(n.keys[idx], p.OldRecPrefix) != 0 {
		releaseLeaf(m, n, memoTypeFor(p.LatchMode))
		return false
	}
	p.Cur.Cursor = &Cursor{node: n, index: idx}
	return true
}

// pessimisticRestore re-searches the tree from scratch for the stored key,
// the fallback path the original takes when the frame's modify clock moved
// or the frame was freed entirely. The search mode is chosen by the
// stored rel_pos (ON -> LE, AFTER -> G, BEFORE -> L) so that a concurrent
// delete of the exact stored record still lands the cursor on the correct
// side of where it used to be.
func (p *Pcur) pessimisticRestore(m *mtr.Mtr) bool {
	searchMode := p.SearchMode
	var mode SearchMode
	switch p.RelPos {
	case PcurAfter:
		mode = SearchG
	case PcurBefore:
		mode = SearchL
	default:
		mode = SearchLE
	}

	p.Cur.Search(p.OldRecPrefix, mode)
	p.Cur.LatchLeaves(m, p.LatchMode)
	p.SearchMode = searchMode

	exact := p.RelPos == PcurOn && p.Cur.Valid() && p.Cur.Tree.compare(p.Cur.Key(), p.OldRecPrefix) == 0
	// The re-search above is itself an open under latch_mode: restore
	// returns to IS_POSITIONED whether or not it landed exactly, which also
	// satisfies store_position's precondition below.
	p.PosState = PcurIsPositioned
	if exact {
		// LatchLeaves above already holds the leaf's latch, so reading its
		// clock here needs no lock of its own.
		p.BlockWhenStored = p.Cur.GetBlock()
		if p.BlockWhenStored != nil {
			p.ModifyClock = p.BlockWhenStored.modifyClock
		}
		return true
	}
	p.StorePosition(m)
	return false
}
