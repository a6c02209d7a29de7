package btree

import "fmt"

// retrieve walks from the root towards key. A missing key is not an error.
func (t *table) retrieve(key Key) (Item, bool, error) {
	ref := t.stats.Root

	// a well formed tree is never deeper than its node count
	for steps := int64(0); !ref.IsNil(); steps++ {
		if steps > t.stats.Nodes {
			return Item{}, false, fmt.Errorf("%w: descent from root %d does not terminate", ErrCorruptNode, t.stats.Root)
		}
		if err := t.readTreeNode(ref); err != nil {
			return Item{}, false, err
		}
		found, location := t.cur.search(key)
		if found {
			return t.cur.Keys[location], true, nil
		}
		ref = t.cur.Children[location+1]
	}

	return Item{}, false, nil
}
