package btree

import "fmt"

// splitNode splits a full node around its median while placing pending
// (with pendingRight as its right child) at insert position location+1.
//
// left is modified in place and keeps the lower half. The returned right
// node holds the upper half and promoted is the item that moves up to the
// parent, with right as its right child. Afterwards left has MinKeys keys
// and right has MaxKeys-MinKeys keys.
func splitNode(left *Node, pending Item, pendingRight NodeRef, location int) (right Node, promoted Item, err error) {
	if left.Count != MaxKeys {
		return right, promoted, fmt.Errorf("split of node with %d keys, want %d", left.Count, MaxKeys)
	}

	median := MinKeys
	if location >= MinKeys {
		median = MinKeys + 1
	}

	// move the upper half to the new node
	right = newNode()
	for j := median; j < MaxKeys; j++ {
		right.Keys[j-median] = left.Keys[j]
		right.Children[j-median+1] = left.Children[j+1]
	}
	right.Count = MaxKeys - median
	left.truncate(median)

	if location < MinKeys {
		err = left.addItem(pending, pendingRight, location+1)
	} else {
		err = right.addItem(pending, pendingRight, location-median+1)
	}
	if err != nil {
		return right, promoted, err
	}

	promoted = left.Keys[left.Count-1]
	right.Children[0] = left.Children[left.Count]
	left.truncate(left.Count - 1)

	return right, promoted, nil
}

// split loads the full node at ref, splits it, writes the lower half back
// in place and appends the upper half as a new node.
func (t *table) split(pending Item, pendingRight NodeRef, ref NodeRef, location int) (Item, NodeRef, error) {
	if err := t.readNode(ref); err != nil {
		return Item{}, NilRef, err
	}

	right, promoted, err := splitNode(&t.cur, pending, pendingRight, location)
	if err != nil {
		return Item{}, NilRef, fmt.Errorf("split node %d: %w", ref, err)
	}

	if err := t.writeNode(ref, &t.cur); err != nil {
		return Item{}, NilRef, err
	}
	newRight, err := t.appendNode(&right)
	if err != nil {
		return Item{}, NilRef, err
	}

	return promoted, newRight, nil
}
