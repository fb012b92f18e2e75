package menu

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDuplicateKey is returned when a child key is already used by a sibling.
var ErrDuplicateKey = errors.New("duplicate menu key")

// Node is an item in the menu tree, which may contain child nodes.
type Node struct {
	// Key is the unique identifier of the node within the scope of its parent.
	Key string

	// Label is shown when no display name is set in Extras.
	Label string

	// URI is the link target of the node.
	URI Link

	// Extras carries display and flag metadata.
	Extras Extras

	children []*Node
	index    map[string]int
}

// Item holds the optional attributes of a new child node.
type Item struct {
	Label  string
	URI    Link
	Extras Extras
}

// Extras is the per-node metadata. Empty strings and nil pointers are absent.
type Extras struct {
	Name         string
	Icon         string
	Type         string
	Active       *bool
	SingularName string
	Slug         string
	SingularSlug string
	LinkNew      Link
	ContentType  string
	Singleton    *bool

	// Submenu holds latest-record previews; only set on content type sections.
	// nil is absent, an empty slice is present and empty.
	Submenu []RecordSummary
}

// NewRoot creates an empty root node.
func NewRoot() *Node {
	return &Node{Key: "root", Label: "root"}
}

// AddChild appends a child node under key. The label defaults to the key.
func (n *Node) AddChild(key string, item Item) (*Node, error) {
	if _, ok := n.index[key]; ok {
		return nil, fmt.Errorf("%w: %q under %q", ErrDuplicateKey, key, n.Key)
	}

	label := item.Label
	if label == "" {
		label = key
	}

	child := &Node{
		Key:    key,
		Label:  label,
		URI:    item.URI,
		Extras: item.Extras,
	}

	if n.index == nil {
		n.index = make(map[string]int)
	}
	n.index[key] = len(n.children)
	n.children = append(n.children, child)

	return child, nil
}

// Child returns the child with key, or nil.
func (n *Node) Child(key string) *Node {
	i, ok := n.index[key]
	if !ok {
		return nil
	}
	return n.children[i]
}

// Children returns the child nodes in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// HasChildren reports whether the node has any children.
func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

// DisplayName returns the name extra, falling back to the label.
func (n *Node) DisplayName() string {
	if n.Extras.Name != "" {
		return n.Extras.Name
	}
	return n.Label
}

type linkState uint8

const (
	linkNone linkState = iota
	linkPending
	linkResolved
)

// Link is a link target. The zero value is "no link"; Pending marks an
// entry whose target is not built yet.
type Link struct {
	url   string
	state linkState
}

// URL returns a resolved link. An empty url is "no link".
func URL(url string) Link {
	if url == "" {
		return Link{}
	}
	return Link{url: url, state: linkResolved}
}

// Pending returns the link of an entry that has no target yet.
func Pending() Link {
	return Link{state: linkPending}
}

// IsZero reports whether there is no link at all.
func (l Link) IsZero() bool {
	return l.state == linkNone
}

// IsPending reports whether the link is a placeholder.
func (l Link) IsPending() bool {
	return l.state == linkPending
}

// String returns the URL, or "" for pending and absent links.
func (l Link) String() string {
	return l.url
}

// MarshalJSON encodes no link as null, a pending link as "" and a resolved link as its URL.
func (l Link) MarshalJSON() ([]byte, error) {
	if l.state == linkNone {
		return []byte("null"), nil
	}
	return json.Marshal(l.url)
}
