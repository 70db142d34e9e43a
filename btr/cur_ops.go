package btr

import "github.com/btrengine/storage/ut"

// Cursor-related constants from btr0cur.c/h.
const (
	BtrCurPageReorganizeLimit = ut.UNIV_PAGE_SIZE / 32
	BtrCurPageCompressLimit   = ut.UNIV_PAGE_SIZE / 2

	BtrBlobHdrPartLen    = 0
	BtrBlobHdrNextPageNo = 4
	BtrBlobHdrSize       = 8

	BtrPathArraySlots = 250

	BtrCurRetryDeleteNTimes = 100
	BtrCurRetrySleepTime    = 50000

	BtrExternFieldRefSize  = 20
	BtrExternSpaceID       = 0
	BtrExternPageNo        = 4
	BtrExternOffset        = 8
	BtrExternLen           = 12
	BtrExternOwnerFlag     = 128
	BtrExternInheritedFlag = 64
)

// FieldRefZero mirrors the zeroed BLOB field reference.
var FieldRefZero [BtrExternFieldRefSize]byte

// CurMethod captures the search method used by the cursor.
type CurMethod int

const (
	CurHash CurMethod = iota + 1
	CurHashFail
	CurBinary
	CurInsertToIbuf
)

// SearchMode controls how the cursor positions relative to the key, mirroring
// the five page_cur_mode_t values the persistent cursor can be opened with.
type SearchMode int

const (
	SearchL SearchMode = iota
	SearchLE
	SearchEqual
	SearchGE
	SearchG
)

// PathSlot stores search path info for range estimates.
type PathSlot struct {
	NthRec ut.Ulint
	NRecs  ut.Ulint
}

// Cur mirrors the btr_cur_t structure in a simplified form.
type Cur struct {
	Tree       *Tree
	Cursor     *Cursor
	Flag       CurMethod
	TreeHeight ut.Ulint
	UpMatch    ut.Ulint
	UpBytes    ut.Ulint
	LowMatch   ut.Ulint
	LowBytes   ut.Ulint
	NFields    ut.Ulint
	NBytes     ut.Ulint
	Fold       ut.Ulint
	Path       []PathSlot

	// LeftBlock holds the left sibling of the landing leaf when Search runs
	// under a previous-aware mode (BtrSearchPrev/BtrModifyPrev). It mirrors
	// btr_cur_t.left_block, populated as a side effect of the search so a
	// caller walking backward across a page boundary never has to latch
	// right-to-left out of order.
	LeftBlock *node
}

// CurNNonSea counts cursor searches executed without adaptive hash.
var CurNNonSea ut.Ulint

// CurNSea counts cursor searches satisfied via adaptive hash.
var CurNSea ut.Ulint

// CurNNonSeaOld stores the previous non-adaptive hash counter.
var CurNNonSeaOld ut.Ulint

// CurNSeaOld stores the previous adaptive hash counter.
var CurNSeaOld ut.Ulint

// CurVarInit resets the cursor counters.
func CurVarInit() {
	CurNNonSea = 0
	CurNSea = 0
	CurNNonSeaOld = 0
	CurNSeaOld = 0
}

// NewCur allocates a tree cursor.
func NewCur(tree *Tree) *Cur {
	return &Cur{Tree: tree}
}

// Invalidate clears the cursor position.
func (c *Cur) Invalidate() {
	if c == nil {
		return
	}
	c.Cursor = nil
	c.Flag = 0
}

// Valid reports whether the cursor points at a record.
func (c *Cur) Valid() bool {
	return c != nil && c.Cursor != nil && c.Cursor.Valid()
}

// Key returns the current key.
func (c *Cur) Key() []byte {
	if !c.Valid() {
		return nil
	}
	return c.Cursor.Key()
}

// Value returns the current value.
func (c *Cur) Value() []byte {
	if !c.Valid() {
		return nil
	}
	return c.Cursor.Value()
}

// Next advances to the next record.
func (c *Cur) Next() bool {
	if c == nil || c.Cursor == nil {
		return false
	}
	return c.Cursor.Next()
}

// Prev moves to the previous record.
func (c *Cur) Prev() bool {
	if c == nil || c.Cursor == nil {
		return false
	}
	return c.Cursor.Prev()
}

// Search positions the cursor around the key using the provided mode.
func (c *Cur) Search(key []byte, mode SearchMode) bool {
	if c == nil || c.Tree == nil {
		return false
	}
	CurNNonSea++
	c.Flag = CurBinary
	c.LeftBlock = nil

	var cur *Cursor
	switch mode {
	case SearchL:
		cur = c.Tree.Seek(key)
		if cur == nil {
			cur = c.Tree.Last()
		} else if c.Tree.compare(cur.node.keys[cur.index], key) >= 0 {
			if !cur.Prev() {
				cur = nil
			}
		}
	case SearchLE:
		cur = c.Tree.Seek(key)
		if cur == nil {
			cur = c.Tree.Last()
		} else if c.Tree.compare(cur.node.keys[cur.index], key) > 0 {
			if !cur.Prev() {
				cur = nil
			}
		}
	case SearchEqual:
		cur = c.Tree.Seek(key)
		if cur != nil && c.Tree.compare(cur.node.keys[cur.index], key) != 0 {
			cur = nil
		}
	case SearchG:
		cur = c.Tree.Seek(key)
		if cur != nil && c.Tree.compare(cur.node.keys[cur.index], key) == 0 {
			if !cur.Next() {
				cur = nil
			}
		}
	default: // SearchGE
		cur = c.Tree.Seek(key)
	}

	c.Cursor = cur
	return c.Valid()
}

// SearchPrevAware behaves like Search but additionally latches and records
// the left sibling of the landing leaf in LeftBlock, the contract
// BtrSearchPrev/BtrModifyPrev callers rely on to walk backward across a
// page boundary without inverting latch order.
func (c *Cur) SearchPrevAware(key []byte, mode SearchMode) bool {
	found := c.Search(key, mode)
	if c.Cursor != nil && c.Cursor.node != nil {
		c.LeftBlock = c.Cursor.node.prev
	}
	return found
}

// IsOnUserRec reports whether the cursor sits on an ordinary record (neither
// invalid nor a tree-boundary sentinel).
func (c *Cur) IsOnUserRec() bool {
	return c.Valid()
}

// IsBeforeFirstOnPage reports whether the cursor's index lies before the
// first slot of its leaf or, for a cursor with no leaf, whether the tree is
// empty. Cursor.Prev drops the leaf when it steps off the leftmost record,
// so a cursor that fell off the left edge of a non-empty tree reports false.
func (c *Cur) IsBeforeFirstOnPage() bool {
	if c == nil || c.Cursor == nil || c.Cursor.node == nil {
		return c != nil && c.Tree != nil && c.Tree.root == nil
	}
	return c.Cursor.index < 0
}

// IsAfterLastOnPage reports whether the cursor's index lies past the last
// slot of its leaf. Cursor.Next drops the leaf when it steps off the
// rightmost record, so a cursor that fell off the right edge reports false.
func (c *Cur) IsAfterLastOnPage() bool {
	if c == nil || c.Cursor == nil || c.Cursor.node == nil {
		return false
	}
	return c.Cursor.index >= len(c.Cursor.node.keys)
}

// GetBlock returns the frame backing the cursor's current record, or nil.
func (c *Cur) GetBlock() *node {
	if c == nil || c.Cursor == nil {
		return nil
	}
	return c.Cursor.node
}

// OpenAtIndexSide positions the cursor at the leftmost or rightmost record.
func (c *Cur) OpenAtIndexSide(left bool) bool {
	if c == nil || c.Tree == nil {
		return false
	}
	if left {
		c.Cursor = c.Tree.First()
	} else {
		c.Cursor = c.Tree.Last()
	}
	c.Flag = CurBinary
	return c.Valid()
}

// OpenAtRandom positions the cursor at a deterministic pseudo-random record.
func (c *Cur) OpenAtRandom() bool {
	if c == nil || c.Tree == nil || c.Tree.size == 0 {
		return false
	}
	if c.Tree.size%2 == 0 {
		return c.OpenAtIndexSide(true)
	}
	return c.OpenAtIndexSide(false)
}

// Insert inserts a record and positions the cursor at it.
func (c *Cur) Insert(key, value []byte) bool {
	if c == nil || c.Tree == nil {
		return false
	}
	replaced := c.Tree.Insert(key, value)
	c.Cursor = c.Tree.Seek(key)
	c.Flag = CurBinary
	return replaced
}

// Update replaces the value at the current cursor position.
func (c *Cur) Update(value []byte) bool {
	if !c.Valid() {
		return false
	}
	key := c.Cursor.node.keys[c.Cursor.index]
	c.Tree.Insert(key, value)
	c.Cursor = c.Tree.Seek(key)
	return true
}

// Delete removes the current record and advances to the next record.
func (c *Cur) Delete() bool {
	if !c.Valid() {
		return false
	}
	key := cloneBytes(c.Cursor.node.keys[c.Cursor.index])
	nextKey := []byte(nil)
	next := *c.Cursor
	if next.Next() {
		nextKey = cloneBytes(next.node.keys[next.index])
	}
	if !c.Tree.Delete(key) {
		return false
	}
	if nextKey != nil {
		c.Cursor = c.Tree.Seek(nextKey)
	} else {
		c.Cursor = nil
	}
	return true
}
