package upload

import "sync"

// List holds the items of one form. It is only ever appended to, updated
// by identity, or pruned by identity, so concurrent uploads never clobber
// each other through positional indexes.
type List struct {
	mu      sync.Mutex
	order   []Identity
	items   map[Identity]*Item
	nextGen uint64
}

func NewList() *List {
	return &List{items: make(map[Identity]*Item)}
}

// ref pins an update to the entry that existed when the upload started.
// A remove-then-re-add of the same file gets a new generation, so late
// updates from the first upload are dropped.
type ref struct {
	id  Identity
	gen uint64
}

// Add appends an idle item for f. It reports false if an item with the
// same identity is already listed.
func (l *List) Add(f File) bool {
	_, ok := l.add(f)
	return ok
}

func (l *List) add(f File) (ref, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := f.Identity()
	if it, exists := l.items[id]; exists {
		return ref{id: id, gen: it.gen}, false
	}
	l.nextGen++
	it := newItem(f)
	it.gen = l.nextGen
	l.items[id] = &it
	l.order = append(l.order, id)
	return ref{id: id, gen: it.gen}, true
}

func (l *List) Contains(id Identity) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.items[id]
	return ok
}

func (l *List) Get(id Identity) (Item, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	it, ok := l.items[id]
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// Items returns a snapshot in insertion order.
func (l *List) Items() []Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Item, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, *l.items[id])
	}
	return out
}

func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.order)
}

// Remove drops the item. It does not touch the backend.
func (l *List) Remove(id Identity) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.items[id]; !ok {
		return false
	}
	delete(l.items, id)
	for i, o := range l.order {
		if o == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return true
}

// AttachmentIDs returns the ids of successfully uploaded items, in order.
func (l *List) AttachmentIDs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	ids := []string{}
	for _, id := range l.order {
		if it := l.items[id]; it.Status == StatusSuccess && it.AttachmentID != "" {
			ids = append(ids, it.AttachmentID)
		}
	}
	return ids
}

// update applies fn to the referenced entry. Missing or replaced entries
// are a silent no-op.
func (l *List) update(r ref, fn func(*Item) bool) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	it, ok := l.items[r.id]
	if !ok || it.gen != r.gen {
		return false
	}
	return fn(it)
}
