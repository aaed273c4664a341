package product

type node struct {
	key   int
	value string
	left  *node
	right *node
}

// Tree is an unbalanced binary search tree of products ordered by key.
// It is not safe for concurrent use; callers serialise access.
type Tree struct {
	root *node
	size int
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// Len reports the number of stored products.
func (t *Tree) Len() int {
	return t.size
}

// Insert attaches key as a new leaf. The tree is left untouched when the key
// is already present.
func (t *Tree) Insert(key int, value string) error {
	n := &node{key: key, value: value}
	if t.root == nil {
		t.root = n
		t.size++
		return nil
	}
	cur := t.root
	for {
		switch {
		case key < cur.key:
			if cur.left == nil {
				cur.left = n
				t.size++
				return nil
			}
			cur = cur.left
		case key > cur.key:
			if cur.right == nil {
				cur.right = n
				t.size++
				return nil
			}
			cur = cur.right
		default:
			return ErrDuplicateKey
		}
	}
}

func (t *Tree) find(key int) *node {
	cur := t.root
	for cur != nil {
		switch {
		case key < cur.key:
			cur = cur.left
		case key > cur.key:
			cur = cur.right
		default:
			return cur
		}
	}
	return nil
}

// Search returns the value stored under key.
func (t *Tree) Search(key int) (string, bool) {
	n := t.find(key)
	if n == nil {
		return "", false
	}
	return n.value, true
}

// Update replaces the value stored under key in place.
func (t *Tree) Update(key int, value string) bool {
	n := t.find(key)
	if n == nil {
		return false
	}
	n.value = value
	return true
}

// Delete removes key from the tree and reports whether it was present.
//
// A node with two children keeps its position: it takes the key and value of
// its in-order successor, and the successor is unlinked from the right
// subtree instead.
func (t *Tree) Delete(key int) bool {
	var parent *node
	cur := t.root
	for cur != nil && cur.key != key {
		parent = cur
		if key < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	if cur == nil {
		return false
	}

	if cur.left != nil && cur.right != nil {
		succParent := cur
		succ := cur.right
		for succ.left != nil {
			succParent = succ
			succ = succ.left
		}
		cur.key = succ.key
		cur.value = succ.value
		// succ has no left child, so it is replaced by its right subtree.
		if succParent == cur {
			succParent.right = succ.right
		} else {
			succParent.left = succ.right
		}
		t.size--
		return true
	}

	child := cur.left
	if child == nil {
		child = cur.right
	}
	switch {
	case parent == nil:
		t.root = child
	case parent.left == cur:
		parent.left = child
	default:
		parent.right = child
	}
	t.size--
	return true
}

// List returns every product in ascending key order.
func (t *Tree) List() []Product {
	out := make([]Product, 0, t.size)
	stack := make([]*node, 0, 16)
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, Product{Key: cur.key, Value: cur.value})
		cur = cur.right
	}
	return out
}
