package splaycache

// splay restructures the tree rooted at root so that the node whose key
// equals key becomes the new root, or — if no such node exists — the
// in-order predecessor or successor nearest to key becomes the new root. It
// preserves BST order, acyclicity, and the node set; it never adds or
// removes nodes. splay(nil, ...) is a no-op.
//
// This is the top-down splay of Sleator & Tarjan, re-expressed with two
// local spine heads (lRoot/lTail for the "proven less" tree, rRoot/rTail for
// the "proven greater" tree) instead of a shared scratch node: each walks
// its own half of the search path and is spliced onto the found node's
// children at the end.
func splay[K, V any](root *node[K, V], key K, less Less[K]) *node[K, V] {
	if root == nil {
		return nil
	}

	var lRoot, lTail *node[K, V] // keys proven < key, built along its rightmost spine
	var rRoot, rTail *node[K, V] // keys proven > key, built along its leftmost spine

	t := root
	for {
		switch compare3(key, t.key, less) {
		case lt:
			tl := t.left
			if tl == nil {
				goto assemble
			}
			if compare3(key, tl.key, less) == lt && tl.left != nil {
				// zig-zig: two steps left, rotate right at t.
				t.left = tl.right
				tl.right = t
				t = tl
			}
			// t (possibly rotated) is proven greater than key: link into R.
			if rRoot == nil {
				rRoot = t
			} else {
				rTail.left = t
			}
			rTail = t
			t = t.left
		case gt:
			tr := t.right
			if tr == nil {
				goto assemble
			}
			if compare3(key, tr.key, less) == gt && tr.right != nil {
				// zig-zig: two steps right, rotate left at t.
				t.right = tr.left
				tr.left = t
				t = tr
			}
			// t (possibly rotated) is proven less than key: link into L.
			if lRoot == nil {
				lRoot = t
			} else {
				lTail.right = t
			}
			lTail = t
			t = t.right
		case eq:
			goto assemble
		}
	}

assemble:
	if lRoot != nil {
		lTail.right = t.left
		t.left = lRoot
	}
	if rRoot != nil {
		rTail.left = t.right
		t.right = rRoot
	}
	return t
}

// splayMax splays the largest key in the tree rooted at root to the root,
// without needing to know the key's value — it simply always walks right.
// Used by delete to expose a right-empty root on a subtree whose maximum
// must be promoted. splayMax(nil) is a no-op.
func splayMax[K, V any](root *node[K, V]) *node[K, V] {
	if root == nil {
		return nil
	}

	var lRoot, lTail *node[K, V]

	t := root
	for t.right != nil {
		tr := t.right
		if tr.right != nil {
			// zig-zig: two steps right, rotate left at t.
			t.right = tr.left
			tr.left = t
			t = tr
		}
		if lRoot == nil {
			lRoot = t
		} else {
			lTail.right = t
		}
		lTail = t
		t = t.right
	}

	if lRoot != nil {
		lTail.right = t.left
		t.left = lRoot
	}
	return t
}
