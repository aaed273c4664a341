// Package memory implements the in-memory order list.
package memory

import "shopflow/pkg/order"

type node struct {
	id   int
	data order.Order
	next *node
}

// List is a singly-linked list of orders kept in insertion order.
// It does no locking; the owner serialises access.
type List struct {
	head   *node
	length int
}

// New creates an empty list.
func New() *List {
	return &List{}
}

// Len returns the number of orders in the list.
func (l *List) Len() int {
	return l.length
}

// Add appends an order after the current tail. Ids are not checked for
// uniqueness here.
func (l *List) Add(id int, data order.Order) {
	n := &node{id: id, data: data.Clone()}
	l.length++
	if l.head == nil {
		l.head = n
		return
	}
	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = n
}

// Find retrieves an order by id.
func (l *List) Find(id int) (order.Order, bool) {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.id == id {
			return cur.data.Clone(), true
		}
	}
	return order.Order{}, false
}

// Update replaces the record stored under id.
func (l *List) Update(id int, data order.Order) bool {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.id == id {
			cur.data = data.Clone()
			return true
		}
	}
	return false
}

// Delete unlinks the order with the given id. Unknown ids are ignored.
func (l *List) Delete(id int) bool {
	if l.head == nil {
		return false
	}
	if l.head.id == id {
		l.head = l.head.next
		l.length--
		return true
	}
	for cur := l.head; cur.next != nil; cur = cur.next {
		if cur.next.id == id {
			cur.next = cur.next.next
			l.length--
			return true
		}
	}
	return false
}

// List returns all orders from head to tail.
func (l *List) List() []order.Order {
	out := make([]order.Order, 0, l.length)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.data.Clone())
	}
	return out
}
