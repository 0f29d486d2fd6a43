package workspace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dshills/softwrap/internal/engine/buffer"
)

// BufferID identifies a buffer in an Arena.
type BufferID string

// NewBufferID returns a fresh random id.
func NewBufferID() BufferID {
	return BufferID(uuid.NewString())
}

// Document is a buffer entry in the arena.
type Document struct {
	ID   BufferID
	Name string

	// Path is the absolute file path, empty for scratch and static buffers.
	Path string

	View buffer.View
}

// Text returns the document's editable buffer, if it has one.
func (d *Document) Text() (*buffer.TextBuffer, bool) {
	tb, ok := d.View.(*buffer.TextBuffer)
	return tb, ok
}

// Arena indexes the buffers of a session.
type Arena struct {
	docs    map[BufferID]*Document
	order   []BufferID
	counter int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{docs: make(map[BufferID]*Document)}
}

// NewBuffer adds an empty text buffer. An empty name gets a generated one.
func (a *Arena) NewBuffer(name string) *Document {
	return a.Insert(name, buffer.NewTextBuffer())
}

// Insert adds an existing view under a new id.
func (a *Arena) Insert(name string, view buffer.View) *Document {
	if name == "" {
		a.counter++
		name = fmt.Sprintf("Untitled-%d", a.counter)
	}
	doc := &Document{ID: NewBufferID(), Name: name, View: view}
	a.docs[doc.ID] = doc
	a.order = append(a.order, doc.ID)
	return doc
}

// OpenReader reads a text buffer from r.
func (a *Arena) OpenReader(name string, r io.Reader) (*Document, error) {
	tb, err := buffer.NewTextBufferFromReader(r)
	if err != nil {
		return nil, &OpError{Op: "open", Target: name, Err: err}
	}
	return a.Insert(name, tb), nil
}

// Open reads the file at path into a text buffer. A file that is already
// open returns the existing document.
func (a *Arena) Open(path string) (*Document, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, &OpError{Op: "open", Target: path, Err: err}
	}
	for _, id := range a.order {
		if doc := a.docs[id]; doc.Path == absPath {
			return doc, nil
		}
	}

	f, err := os.Open(absPath)
	if err != nil {
		return nil, &OpError{Op: "open", Target: path, Err: err}
	}
	defer f.Close()

	doc, err := a.OpenReader(filepath.Base(absPath), f)
	if err != nil {
		return nil, err
	}
	doc.Path = absPath
	return doc, nil
}

// Get returns the document with id.
func (a *Arena) Get(id BufferID) (*Document, error) {
	doc, ok := a.docs[id]
	if !ok {
		return nil, &OpError{Op: "get", Target: string(id), Err: ErrBufferNotFound}
	}
	return doc, nil
}

// Close removes the document with id.
func (a *Arena) Close(id BufferID) error {
	if _, ok := a.docs[id]; !ok {
		return &OpError{Op: "close", Target: string(id), Err: ErrBufferNotFound}
	}
	delete(a.docs, id)
	for i, oid := range a.order {
		if oid == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return nil
}

// IDs returns the buffer ids in insertion order.
func (a *Arena) IDs() []BufferID {
	return append([]BufferID(nil), a.order...)
}

// Len returns the number of buffers.
func (a *Arena) Len() int {
	return len(a.order)
}
