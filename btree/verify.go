package btree

import "fmt"

type verifier struct {
	t         *table
	seen      map[NodeRef]bool
	items     int64
	leafDepth int
}

// verify walks the whole tree and checks the B-tree invariants against the
// header: key order inside and across nodes, node capacity, equal leaf
// depth, and the item and node counts.
func (t *table) verify() error {
	if t.stats.Root.IsNil() {
		if t.stats.Items != 0 || t.stats.Nodes != 0 {
			return fmt.Errorf("%w: empty tree with %d items and %d nodes", ErrCorruptNode, t.stats.Items, t.stats.Nodes)
		}
		return nil
	}

	v := &verifier{t: t, seen: make(map[NodeRef]bool), leafDepth: -1}
	if err := v.walk(t.stats.Root, nil, nil, 0); err != nil {
		return err
	}
	if v.items != t.stats.Items {
		return fmt.Errorf("%w: header counts %d items, tree holds %d", ErrCorruptNode, t.stats.Items, v.items)
	}
	if n := int64(len(v.seen)); n != t.stats.Nodes {
		return fmt.Errorf("%w: header counts %d nodes, tree holds %d", ErrCorruptNode, t.stats.Nodes, n)
	}
	return nil
}

// walk checks the subtree at ref, whose keys must lie strictly between lo
// and hi (nil means unbounded).
func (v *verifier) walk(ref NodeRef, lo, hi *Key, depth int) error {
	if v.seen[ref] {
		return fmt.Errorf("%w: node %d reachable twice", ErrCorruptNode, ref)
	}
	v.seen[ref] = true

	if err := v.t.readTreeNode(ref); err != nil {
		return err
	}
	node := v.t.cur // the buffer is reused below

	for i := 0; i < node.Count; i++ {
		k := node.Keys[i].Key
		if i > 0 && node.Keys[i-1].Key.Compare(k) >= 0 {
			return fmt.Errorf("%w: node %d keys %q, %q out of order", ErrCorruptNode, ref, node.Keys[i-1].Key, k)
		}
		if lo != nil && k.Compare(*lo) <= 0 {
			return fmt.Errorf("%w: node %d key %q not above %q", ErrCorruptNode, ref, k, *lo)
		}
		if hi != nil && k.Compare(*hi) >= 0 {
			return fmt.Errorf("%w: node %d key %q not below %q", ErrCorruptNode, ref, k, *hi)
		}
	}
	v.items += int64(node.Count)

	if ref != v.t.stats.Root && node.Count < MinKeys {
		return fmt.Errorf("%w: node %d has %d keys, fewer than %d", ErrCorruptNode, ref, node.Count, MinKeys)
	}

	leaf := node.Children[0].IsNil()
	for i := 0; i <= node.Count; i++ {
		if node.Children[i].IsNil() != leaf {
			return fmt.Errorf("%w: node %d mixes leaf and branch children", ErrCorruptNode, ref)
		}
	}

	if leaf {
		if v.leafDepth < 0 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return fmt.Errorf("%w: leaf %d at depth %d, others at %d", ErrCorruptNode, ref, depth, v.leafDepth)
		}
		return nil
	}

	for i := 0; i <= node.Count; i++ {
		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &node.Keys[i-1].Key
		}
		if i < node.Count {
			childHi = &node.Keys[i].Key
		}
		if err := v.walk(node.Children[i], childLo, childHi, depth+1); err != nil {
			return err
		}
	}
	return nil
}
