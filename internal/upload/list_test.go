package upload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAddDedupesByNameAndSize(t *testing.T) {
	l := NewList()
	a := BytesFile("a.txt", "text/plain", []byte("abc"))
	sameName := BytesFile("a.txt", "text/plain", []byte("abcd"))

	assert.True(t, l.Add(a))
	assert.False(t, l.Add(BytesFile("a.txt", "text/plain", []byte("xyz"))))
	assert.True(t, l.Add(sameName), "different size is a different file")
	assert.Equal(t, 2, l.Len())

	it, ok := l.Get(a.Identity())
	require.True(t, ok)
	assert.Equal(t, StatusIdle, it.Status)
	assert.Equal(t, 0, it.Progress)
}

func TestListRemoveKeepsOrder(t *testing.T) {
	l := NewList()
	names := []string{"one.pdf", "two.pdf", "three.pdf"}
	for _, n := range names {
		l.Add(BytesFile(n, "application/pdf", []byte(n)))
	}

	assert.True(t, l.Remove(Identity{Name: "two.pdf", Size: 7}))
	assert.False(t, l.Remove(Identity{Name: "two.pdf", Size: 7}))

	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "one.pdf", items[0].File.Name)
	assert.Equal(t, "three.pdf", items[1].File.Name)
}

func TestListUpdateIgnoresMissingAndReplaced(t *testing.T) {
	l := NewList()
	f := BytesFile("a.txt", "text/plain", []byte("a"))
	r, _ := l.add(f)

	assert.True(t, l.update(r, (*Item).begin))
	l.Remove(f.Identity())
	assert.False(t, l.update(r, func(it *Item) bool { return it.advance(50) }))

	l.Add(f)
	assert.False(t, l.update(r, func(it *Item) bool { return it.advance(50) }))
	it, _ := l.Get(f.Identity())
	assert.Equal(t, StatusIdle, it.Status)
}

func TestListAttachmentIDs(t *testing.T) {
	l := NewList()
	ok := BytesFile("ok.pdf", "application/pdf", []byte("1"))
	bad := BytesFile("bad.pdf", "application/pdf", []byte("22"))
	idle := BytesFile("idle.pdf", "application/pdf", []byte("333"))

	rOK, _ := l.add(ok)
	rBad, _ := l.add(bad)
	l.Add(idle)

	l.update(rOK, (*Item).begin)
	l.update(rOK, func(it *Item) bool { return it.succeed("att-1") })
	l.update(rBad, (*Item).begin)
	l.update(rBad, func(it *Item) bool { return it.fail(assert.AnError) })

	assert.Equal(t, []string{"att-1"}, l.AttachmentIDs())
	assert.Equal(t, []string{}, NewList().AttachmentIDs())
}

func TestItemTransitions(t *testing.T) {
	it := newItem(BytesFile("x", "text/plain", []byte("x")))

	assert.False(t, it.advance(10), "idle items do not take progress")
	assert.False(t, it.succeed("id"))
	assert.True(t, it.begin())
	assert.False(t, it.begin())
	assert.True(t, it.advance(60))
	assert.False(t, it.advance(60))
	assert.True(t, it.advance(150))
	assert.Equal(t, 100, it.Progress)
	assert.True(t, it.succeed("att"))

	assert.False(t, it.fail(assert.AnError), "terminal items are immutable")
	assert.Equal(t, StatusSuccess, it.Status)
	assert.Equal(t, "att", it.AttachmentID)
	assert.True(t, it.Status.Terminal())
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text content\n"), 0o644))

	f, err := OpenFile(path)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", f.Name)
	assert.Equal(t, int64(19), f.Size)
	assert.Contains(t, f.MimeType, "text/plain")

	rc, err := f.Open()
	require.NoError(t, err)
	rc.Close()

	_, err = OpenFile(dir)
	assert.Error(t, err)
	_, err = OpenFile(filepath.Join(dir, "missing.pdf"))
	assert.Error(t, err)
}

func TestFileWithoutContent(t *testing.T) {
	_, err := File{Name: "empty"}.Open()
	assert.Error(t, err)
}
