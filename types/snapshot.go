package types

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/zeebo/blake3"
)

// Snapshot is the rendering-agnostic extraction of simulator state at a point in time.
// Data never aliases simulator storage.
type Snapshot struct {
	Family     Family
	Variant    Variant
	Data       any
	IsCircular bool
}

// Key returns the key under which Data is published.
func (s Snapshot) Key() string {
	return s.Family.Key()
}

// MarshalJSON encodes snapshot as {"<family key>": data, "isCircular": true}.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		s.Key(): s.Data,
	}
	if s.IsCircular {
		m["isCircular"] = true
	}
	b, err := json.Marshal(m)
	return b, errors.WithStack(err)
}

// Fingerprint returns the digest of the encoded snapshot.
func (s Snapshot) Fingerprint() (Hash, error) {
	b, err := s.MarshalJSON()
	if err != nil {
		return Hash{}, err
	}
	return blake3.Sum256(b), nil
}

// HashLength is the number of bytes taken by snapshot fingerprint.
const HashLength = 32

// Hash represents snapshot fingerprint.
type Hash [HashLength]byte

// Sequence is the flat ordered content of array-backed structures.
type Sequence []Value

// Grid is the content of multi-dimensional array. Missing cells are nil.
type Grid [][]Value

// ChainNode is a node of linked structure. Links are indices into Chain.Nodes or NoLink.
type ChainNode struct {
	Value Value `json:"value"`
	Next  int   `json:"next"`
	Prev  int   `json:"prev"`
}

// Chain is the normalized form of linked structure. Nodes are ordered from head.
// Prev is populated for doubly linked lists only.
type Chain struct {
	Nodes []ChainNode `json:"nodes"`
	Head  int         `json:"head"`
	Tail  int         `json:"tail"`
}

// Values returns values of the chain in node order.
func (c Chain) Values() []Value {
	values := make([]Value, 0, len(c.Nodes))
	for _, n := range c.Nodes {
		values = append(values, n.Value)
	}
	return values
}

// PriorityItem is an element of priority queue.
type PriorityItem struct {
	Value    Value   `json:"value"`
	Priority float64 `json:"priority"`
}

// PriorityItems is the content of priority queue ordered by descending priority.
type PriorityItems []PriorityItem

// TreeNode is a node of tree snapshot.
type TreeNode struct {
	Value Value     `json:"value"`
	Left  *TreeNode `json:"left"`
	Right *TreeNode `json:"right"`
}

// Edge is an outgoing edge of graph vertex.
type Edge struct {
	ID     Value    `json:"id"`
	Weight *float64 `json:"weight,omitempty"`
}

// Vertex is a graph vertex with its adjacency list.
type Vertex struct {
	ID        Value  `json:"id"`
	Neighbors []Edge `json:"neighbors"`
}

// Vertices is the content of graph in insertion order.
type Vertices []Vertex

// Entry is a key-value pair stored in hash table.
type Entry struct {
	Key   Value `json:"key"`
	Value Value `json:"value"`
}

// Buckets is the content of separate-chaining hash table.
type Buckets [][]Entry

// Slot is an occupied slot of open-addressing hash table.
type Slot struct {
	Index int   `json:"index"`
	Key   Value `json:"key"`
	Value Value `json:"value"`
}

// Slots is the content of open-addressing hash table, ordered by slot index.
type Slots []Slot
