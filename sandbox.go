package sandbox

import (
	"encoding/json"
	"math/rand/v2"
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/outofforest/sandbox/registry"
	"github.com/outofforest/sandbox/types"
)

var (
	// ErrUnsupportedFamily is returned when sandbox is requested for unknown family.
	ErrUnsupportedFamily = registry.ErrUnsupportedFamily

	// ErrUnsupportedVariant is returned when variant does not belong to the family.
	ErrUnsupportedVariant = errors.New("unsupported variant")

	// ErrUnknownOperation is returned when operation is not exposed by the family.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrInvalidArgument is returned when operation is called with wrong number or type of arguments.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Config stores sandbox configuration.
type Config struct {
	Family types.Family

	// Variant selects the variant. If empty, the default variant of the family is used.
	Variant types.Variant

	// Rand is the source of randomness used by binary tree. If nil, randomly seeded source is used.
	Rand *rand.Rand
}

// Result is the outcome of an operation.
type Result struct {
	// Value is the value produced by the operation (popped, extracted or read), nil if there is none.
	Value types.Value

	// State is the snapshot taken right after the operation.
	State types.Snapshot
}

// Variable is a row of variable table.
type Variable struct {
	Name  string
	Value string
}

// New creates sandbox for the family and variant.
func New(config Config) (*Sandbox, error) {
	if _, err := registry.ParseFamily(string(config.Family)); err != nil {
		return nil, err
	}
	if config.Variant == "" {
		variant, err := registry.DefaultVariant(config.Family)
		if err != nil {
			return nil, err
		}
		config.Variant = variant
	}
	if !registry.Supports(config.Family, config.Variant) {
		return nil, errors.Wrapf(ErrUnsupportedVariant, "variant %q of family %q", config.Variant, config.Family)
	}

	b, err := binders[config.Family](config)
	if err != nil {
		return nil, err
	}

	return &Sandbox{
		config:  config,
		binding: b,
	}, nil
}

// Sandbox is the live simulator bound to one family and variant.
type Sandbox struct {
	config  Config
	binding binding
}

// Family returns the family of the sandbox.
func (sb *Sandbox) Family() types.Family {
	return sb.config.Family
}

// Variant returns the variant of the sandbox.
func (sb *Sandbox) Variant() types.Variant {
	return sb.config.Variant
}

// Object returns the name scripts use to refer to the structure.
func (sb *Sandbox) Object() string {
	return sb.config.Family.Key()
}

// Operations returns sorted names of the operations exposed by the sandbox.
func (sb *Sandbox) Operations() []string {
	ops := lo.Keys(sb.binding.Operations)
	sort.Strings(ops)
	return ops
}

// Simulator returns the underlying simulator, e.g. *heap.Heap.
func (sb *Sandbox) Simulator() any {
	return sb.binding.Simulator
}

// Call invokes operation. Operations the variant does not support leave the state unchanged.
func (sb *Sandbox) Call(op string, args ...types.Value) (Result, error) {
	o, exists := sb.binding.Operations[op]
	if !exists {
		return Result{}, errors.Wrapf(ErrUnknownOperation, "%s.%s", sb.Object(), op)
	}
	if len(args) < o.MinArgs || len(args) > o.MaxArgs {
		return Result{}, errors.Wrapf(ErrInvalidArgument, "%s.%s expects %s, got %d",
			sb.Object(), op, o.arity(), len(args))
	}

	normalized := make(arguments, 0, len(args))
	for i, arg := range args {
		arg = types.Normalize(arg)
		switch arg.(type) {
		case nil, bool, int64, float64, string:
		default:
			return Result{}, errors.Wrapf(ErrInvalidArgument, "%s.%s: argument %d has unsupported type %T",
				sb.Object(), op, i+1, arg)
		}
		normalized = append(normalized, arg)
	}

	value, err := o.Fn(normalized)
	if err != nil {
		return Result{State: sb.Snapshot()}, errors.Wrapf(err, "%s.%s", sb.Object(), op)
	}
	return Result{
		Value: value,
		State: sb.Snapshot(),
	}, nil
}

// Snapshot returns the snapshot of current state.
func (sb *Sandbox) Snapshot() types.Snapshot {
	return sb.binding.Extract()
}

// Variables returns the variable table of the current state: one row per published key with
// JSON-encoded value.
func (sb *Sandbox) Variables() ([]Variable, error) {
	s := sb.Snapshot()
	data, err := json.Marshal(s.Data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	variables := []Variable{
		{
			Name:  s.Key(),
			Value: string(data),
		},
	}
	if s.IsCircular {
		variables = append(variables, Variable{
			Name:  "isCircular",
			Value: "true",
		})
	}
	return variables, nil
}

// Extract returns snapshot of any sandbox.
func Extract(sb *Sandbox) types.Snapshot {
	return sb.Snapshot()
}
