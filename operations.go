package sandbox

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/outofforest/sandbox/array"
	"github.com/outofforest/sandbox/graph"
	"github.com/outofforest/sandbox/hashtable"
	"github.com/outofforest/sandbox/heap"
	"github.com/outofforest/sandbox/list"
	"github.com/outofforest/sandbox/queue"
	"github.com/outofforest/sandbox/stack"
	"github.com/outofforest/sandbox/tree"
	"github.com/outofforest/sandbox/types"
)

type operation struct {
	MinArgs int
	MaxArgs int
	Fn      func(args arguments) (types.Value, error)
}

func (o operation) arity() string {
	if o.MinArgs == o.MaxArgs {
		return fmt.Sprintf("%d argument(s)", o.MinArgs)
	}
	return fmt.Sprintf("%d to %d arguments", o.MinArgs, o.MaxArgs)
}

type binding struct {
	Simulator  any
	Operations map[string]operation
	Extract    func() types.Snapshot
}

var binders = map[types.Family]func(config Config) (binding, error){
	types.FamilyArray:      bindArray,
	types.FamilyLinkedList: bindList,
	types.FamilyStack:      bindStack,
	types.FamilyQueue:      bindQueue,
	types.FamilyTree:       bindTree,
	types.FamilyHeap:       bindHeap,
	types.FamilyGraph:      bindGraph,
	types.FamilyHashTable:  bindHashTable,
}

type arguments []types.Value

// Get returns argument or nil if it was not passed.
func (a arguments) Get(i int) types.Value {
	if i >= len(a) {
		return nil
	}
	return a[i]
}

func (a arguments) Int(i int) (int, error) {
	v, ok := types.AsInt(a.Get(i))
	if !ok {
		return 0, errors.Wrapf(ErrInvalidArgument, "argument %d must be an integer, got %v", i+1, a.Get(i))
	}
	return int(v), nil
}

// OptionalFloat returns number passed as argument or false if argument is missing or nil.
func (a arguments) OptionalFloat(i int) (float64, bool, error) {
	v := a.Get(i)
	if v == nil {
		return 0, false, nil
	}
	f, ok := types.AsFloat(v)
	if !ok {
		return 0, false, errors.Wrapf(ErrInvalidArgument, "argument %d must be a number, got %v", i+1, v)
	}
	return f, true, nil
}

func produced(value types.Value, ok bool) (types.Value, error) {
	if !ok {
		return nil, nil
	}
	return value, nil
}

func bindArray(config Config) (binding, error) {
	a, err := array.New(array.Config{Variant: config.Variant})
	if err != nil {
		return binding{}, err
	}
	return binding{
		Simulator: a,
		Extract:   a.Snapshot,
		Operations: map[string]operation{
			"push": {MinArgs: 1, MaxArgs: 1, Fn: func(args arguments) (types.Value, error) {
				a.Push(args.Get(0))
				return nil, nil
			}},
			"pop": {Fn: func(args arguments) (types.Value, error) {
				return produced(a.Pop())
			}},
			"set": {MinArgs: 3, MaxArgs: 3, Fn: func(args arguments) (types.Value, error) {
				row, err := args.Int(0)
				if err != nil {
					return nil, err
				}
				col, err := args.Int(1)
				if err != nil {
					return nil, err
				}
				a.Set(row, col, args.Get(2))
				return nil, nil
			}},
		},
	}, nil
}

func bindList(config Config) (binding, error) {
	l, err := list.New(list.Config{Variant: config.Variant})
	if err != nil {
		return binding{}, err
	}
	return binding{
		Simulator: l,
		Extract:   l.Snapshot,
		Operations: map[string]operation{
			"append": {MinArgs: 1, MaxArgs: 1, Fn: func(args arguments) (types.Value, error) {
				l.Append(args.Get(0))
				return nil, nil
			}},
		},
	}, nil
}

func bindStack(config Config) (binding, error) {
	s, err := stack.New(stack.Config{Variant: config.Variant})
	if err != nil {
		return binding{}, err
	}
	return binding{
		Simulator: s,
		Extract:   s.Snapshot,
		Operations: map[string]operation{
			"push": {MinArgs: 1, MaxArgs: 1, Fn: func(args arguments) (types.Value, error) {
				s.Push(args.Get(0))
				return nil, nil
			}},
			"pop": {Fn: func(args arguments) (types.Value, error) {
				return produced(s.Pop())
			}},
		},
	}, nil
}

func bindQueue(config Config) (binding, error) {
	q, err := queue.New(queue.Config{Variant: config.Variant})
	if err != nil {
		return binding{}, err
	}
	return binding{
		Simulator: q,
		Extract:   q.Snapshot,
		Operations: map[string]operation{
			"enqueue": {MinArgs: 1, MaxArgs: 2, Fn: func(args arguments) (types.Value, error) {
				priority, _, err := args.OptionalFloat(1)
				if err != nil {
					return nil, err
				}
				q.Enqueue(args.Get(0), priority)
				return nil, nil
			}},
			"dequeue": {Fn: func(args arguments) (types.Value, error) {
				return produced(q.Dequeue())
			}},
			"pushFront": {MinArgs: 1, MaxArgs: 1, Fn: func(args arguments) (types.Value, error) {
				q.PushFront(args.Get(0))
				return nil, nil
			}},
			"popFront": {Fn: func(args arguments) (types.Value, error) {
				return produced(q.PopFront())
			}},
			"pushBack": {MinArgs: 1, MaxArgs: 1, Fn: func(args arguments) (types.Value, error) {
				q.PushBack(args.Get(0))
				return nil, nil
			}},
			"popBack": {Fn: func(args arguments) (types.Value, error) {
				return produced(q.PopBack())
			}},
		},
	}, nil
}

func bindTree(config Config) (binding, error) {
	t, err := tree.New(tree.Config{
		Variant: config.Variant,
		Rand:    config.Rand,
	})
	if err != nil {
		return binding{}, err
	}
	return binding{
		Simulator: t,
		Extract:   t.Snapshot,
		Operations: map[string]operation{
			"insert": {MinArgs: 1, MaxArgs: 1, Fn: func(args arguments) (types.Value, error) {
				t.Insert(args.Get(0))
				return nil, nil
			}},
		},
	}, nil
}

func bindHeap(config Config) (binding, error) {
	h, err := heap.New(heap.Config{Variant: config.Variant})
	if err != nil {
		return binding{}, err
	}
	return binding{
		Simulator: h,
		Extract:   h.Snapshot,
		Operations: map[string]operation{
			"pushToHeap": {MinArgs: 1, MaxArgs: 1, Fn: func(args arguments) (types.Value, error) {
				h.PushToHeap(args.Get(0))
				return nil, nil
			}},
			"popFromHeap": {Fn: func(args arguments) (types.Value, error) {
				return produced(h.PopFromHeap())
			}},
			"insert": {MinArgs: 1, MaxArgs: 1, Fn: func(args arguments) (types.Value, error) {
				h.Insert(args.Get(0))
				return nil, nil
			}},
			"extractMin": {Fn: func(args arguments) (types.Value, error) {
				return produced(h.ExtractMin())
			}},
		},
	}, nil
}

func bindGraph(config Config) (binding, error) {
	g, err := graph.New(graph.Config{Variant: config.Variant})
	if err != nil {
		return binding{}, err
	}
	return binding{
		Simulator: g,
		Extract:   g.Snapshot,
		Operations: map[string]operation{
			"addVertex": {MinArgs: 1, MaxArgs: 1, Fn: func(args arguments) (types.Value, error) {
				g.AddVertex(args.Get(0))
				return nil, nil
			}},
			"addEdge": {MinArgs: 2, MaxArgs: 3, Fn: func(args arguments) (types.Value, error) {
				weight, hasWeight, err := args.OptionalFloat(2)
				if err != nil {
					return nil, err
				}
				if hasWeight {
					g.AddEdge(args.Get(0), args.Get(1), weight)
				} else {
					g.AddEdge(args.Get(0), args.Get(1))
				}
				return nil, nil
			}},
		},
	}, nil
}

func bindHashTable(config Config) (binding, error) {
	ht, err := hashtable.New(hashtable.Config{Variant: config.Variant})
	if err != nil {
		return binding{}, err
	}
	return binding{
		Simulator: ht,
		Extract:   ht.Snapshot,
		Operations: map[string]operation{
			"put": {MinArgs: 2, MaxArgs: 2, Fn: func(args arguments) (types.Value, error) {
				_, err := ht.Put(args.Get(0), args.Get(1))
				return nil, err
			}},
			"get": {MinArgs: 1, MaxArgs: 1, Fn: func(args arguments) (types.Value, error) {
				return produced(ht.Get(args.Get(0)))
			}},
		},
	}, nil
}
