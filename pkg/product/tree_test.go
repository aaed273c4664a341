package product

import (
	"math/rand"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

func keys(ps []Product) []int {
	out := make([]int, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Key)
	}
	return out
}

// checkOrder walks the tree and fails if any subtree breaks the key ordering.
func checkOrder(t *testing.T, n *node, lo, hi int) int {
	t.Helper()
	if n == nil {
		return 0
	}
	require.Greater(t, n.key, lo)
	require.Less(t, n.key, hi)
	return 1 + checkOrder(t, n.left, lo, n.key) + checkOrder(t, n.right, n.key, hi)
}

func build(t *testing.T, ks ...int) *Tree {
	t.Helper()
	tr := NewTree()
	for _, k := range ks {
		require.NoError(t, tr.Insert(k, gofakeit.ProductName()))
	}
	return tr
}

func TestTree_ListAscending(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		perm := r.Perm(200)
		tr := NewTree()
		for _, k := range perm {
			require.NoError(t, tr.Insert(k+1, gofakeit.ProductName()))
		}
		got := keys(tr.List())
		require.Len(t, got, 200)
		for i := 1; i < len(got); i++ {
			require.Less(t, got[i-1], got[i])
		}
		require.Equal(t, 200, checkOrder(t, tr.root, 0, 1<<30))
	}
}

func TestTree_SequentialKeys(t *testing.T) {
	tr := NewTree()
	const n = 5000
	for k := 1; k <= n; k++ {
		require.NoError(t, tr.Insert(k, "v"))
	}
	require.Equal(t, n, tr.Len())
	v, ok := tr.Search(n)
	require.True(t, ok)
	require.Equal(t, "v", v)
	require.True(t, tr.Delete(1))
	require.Len(t, tr.List(), n-1)
}

func TestTree_InsertDuplicate(t *testing.T) {
	tr := NewTree()
	require.NoError(t, tr.Insert(5, "five"))
	require.NoError(t, tr.Insert(3, "three"))

	err := tr.Insert(5, "other")
	require.ErrorIs(t, err, ErrDuplicateKey)
	require.Equal(t, 2, tr.Len())
	require.Equal(t, []Product{{3, "three"}, {5, "five"}}, tr.List())
}

func TestTree_SearchAndUpdate(t *testing.T) {
	tr := NewTree()
	require.NoError(t, tr.Insert(2, "B"))
	require.NoError(t, tr.Insert(1, "A"))

	v, ok := tr.Search(1)
	require.True(t, ok)
	require.Equal(t, "A", v)

	require.True(t, tr.Update(1, "A2"))
	v, _ = tr.Search(1)
	require.Equal(t, "A2", v)

	require.False(t, tr.Update(9, "x"))
	_, ok = tr.Search(9)
	require.False(t, ok)

	_, ok = NewTree().Search(1)
	require.False(t, ok)
}

func TestTree_Delete(t *testing.T) {
	cases := []struct {
		name   string
		insert []int
		del    int
		want   []int
		root   int
	}{
		{name: "leaf", insert: []int{5, 3, 8}, del: 3, want: []int{5, 8}, root: 5},
		{name: "one child", insert: []int{5, 3, 2}, del: 3, want: []int{2, 5}, root: 5},
		{name: "root with one child", insert: []int{5, 8, 9}, del: 5, want: []int{8, 9}, root: 8},
		{name: "two children, successor is right child", insert: []int{5, 3, 8, 9}, del: 5, want: []int{3, 8, 9}, root: 8},
		{name: "two children, deep successor", insert: []int{5, 3, 10, 7, 6, 8}, del: 5, want: []int{3, 6, 7, 8, 10}, root: 6},
		{name: "only node", insert: []int{1}, del: 1, want: []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := build(t, tc.insert...)
			require.True(t, tr.Delete(tc.del))
			require.Equal(t, tc.want, keys(tr.List()))
			require.Equal(t, len(tc.insert)-1, tr.Len())
			require.Equal(t, tr.Len(), checkOrder(t, tr.root, -1<<30, 1<<30))
			if len(tc.want) > 0 {
				require.Equal(t, tc.root, tr.root.key)
			} else {
				require.Nil(t, tr.root)
			}
			_, ok := tr.Search(tc.del)
			require.False(t, ok)
		})
	}
}

func TestTree_DeleteTwoChildrenMovesSuccessorValue(t *testing.T) {
	tr := NewTree()
	require.NoError(t, tr.Insert(5, "five"))
	require.NoError(t, tr.Insert(3, "three"))
	require.NoError(t, tr.Insert(10, "ten"))
	require.NoError(t, tr.Insert(7, "seven"))

	require.True(t, tr.Delete(5))
	require.Equal(t, 7, tr.root.key)
	require.Equal(t, "seven", tr.root.value)
	require.Equal(t, []Product{{3, "three"}, {7, "seven"}, {10, "ten"}}, tr.List())
}

func TestTree_DeleteAbsent(t *testing.T) {
	tr := build(t, 2, 1, 3)
	require.False(t, tr.Delete(4))
	require.False(t, NewTree().Delete(1))
	require.Equal(t, 3, tr.Len())
}

func TestTree_DeleteRandom(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	perm := r.Perm(300)
	tr := NewTree()
	for _, k := range perm {
		require.NoError(t, tr.Insert(k, "v"))
	}
	remaining := 300
	for _, k := range r.Perm(300)[:150] {
		require.True(t, tr.Delete(k))
		remaining--
		require.Equal(t, remaining, tr.Len())
	}
	got := keys(tr.List())
	require.Len(t, got, remaining)
	require.Equal(t, remaining, checkOrder(t, tr.root, -1, 1<<30))
}
