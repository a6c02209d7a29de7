package btree

// search looks for target in the node.
//
// If found, location is the index of the match. Otherwise target belongs
// between Keys[location] and Keys[location+1], with -1 meaning before every
// key, so the subtree to descend into is Children[location+1].
//
// The scan runs right to left. A node without keys reports (false, -1).
func (n *Node) search(target Key) (found bool, location int) {
	if n.Count == 0 {
		return false, -1
	}
	if target.Compare(n.Keys[0].Key) < 0 {
		return false, -1
	}

	location = n.Count - 1
	for target.Compare(n.Keys[location].Key) < 0 && location > 0 {
		location--
	}
	return target.Compare(n.Keys[location].Key) == 0, location
}
