package btree

import "fmt"

// addItem puts item at index location and right as the child just to its
// right, shifting the keys and children from location onwards one slot right.
// The node must have room for one more key.
func (n *Node) addItem(item Item, right NodeRef, location int) error {
	if n.Count >= MaxKeys {
		return fmt.Errorf("add at %d: %w", location, ErrNodeFull)
	}
	if location < 0 || location > n.Count {
		return fmt.Errorf("add location %d out of range [0, %d]", location, n.Count)
	}

	for j := n.Count; j > location; j-- {
		n.Keys[j] = n.Keys[j-1]
		n.Children[j+1] = n.Children[j]
	}

	n.Keys[location] = item
	n.Children[location+1] = right
	n.Count++
	return nil
}

// truncate drops everything from key index count onwards, keeping
// Children[count] as the rightmost child.
func (n *Node) truncate(count int) {
	for j := count; j < MaxKeys; j++ {
		n.Keys[j] = Item{}
		n.Children[j+1] = NilRef
	}
	n.Count = count
}
