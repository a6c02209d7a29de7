package btree

import "fmt"

// pushResult is the outcome of one pushDown level: either the item was
// absorbed below, or item/right must be placed in the parent.
type pushResult struct {
	promote bool
	item    Item
	right   NodeRef
}

func absorbed() pushResult {
	return pushResult{right: NilRef}
}

func promote(item Item, right NodeRef) pushResult {
	return pushResult{promote: true, item: item, right: right}
}

// pushDown finds where item belongs in the subtree rooted at ref, inserts
// it on the way back up and reports whether a split overflowed into the
// caller's node.
func (t *table) pushDown(item Item, ref NodeRef) (pushResult, error) {
	if ref.IsNil() {
		// nothing here yet, the parent takes the item
		return promote(item, NilRef), nil
	}

	if err := t.readTreeNode(ref); err != nil {
		return pushResult{}, err
	}
	found, location := t.cur.search(item.Key)
	if found {
		return pushResult{}, fmt.Errorf("key %q: %w", item.Key.String(), ErrDuplicateKey)
	}

	res, err := t.pushDown(item, t.cur.Children[location+1])
	if err != nil || !res.promote {
		return res, err
	}

	// the recursion reused the working buffer, load this node again
	if err := t.readTreeNode(ref); err != nil {
		return pushResult{}, err
	}

	if t.cur.Count < MaxKeys {
		if err := t.cur.addItem(res.item, res.right, location+1); err != nil {
			return pushResult{}, fmt.Errorf("insert into node %d: %w", ref, err)
		}
		if err := t.writeNode(ref, &t.cur); err != nil {
			return pushResult{}, err
		}
		return absorbed(), nil
	}

	up, right, err := t.split(res.item, res.right, ref, location)
	if err != nil {
		return pushResult{}, err
	}
	return promote(up, right), nil
}

// insert adds item to the tree, growing a new root if the old one split.
func (t *table) insert(item Item) error {
	res, err := t.pushDown(item, t.stats.Root)
	if err != nil {
		return err
	}

	if res.promote {
		root := newNode()
		root.Count = 1
		root.Keys[0] = res.item
		root.Children[0] = t.stats.Root
		root.Children[1] = res.right
		ref, err := t.appendNode(&root)
		if err != nil {
			return err
		}
		t.cur = root
		t.stats.Root = ref
	}

	t.stats.Items++
	return nil
}
