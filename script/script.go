package script

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/logger"
	"github.com/outofforest/sandbox"
	"github.com/outofforest/sandbox/types"
)

// ErrUnknownObject is returned when statement refers to an object other than the sandbox structure.
var ErrUnknownObject = errors.New("unknown object")

// Step is the outcome of a single executed statement.
type Step struct {
	Line   int
	Call   string
	Result sandbox.Result
}

// Report is the outcome of script execution.
type Report struct {
	// Steps contains results of executed statements, in execution order.
	Steps []Step

	// Snapshot is the state of the sandbox after the last executed statement.
	Snapshot types.Snapshot

	// Variables is the variable table of the final state.
	Variables []sandbox.Variable
}

// Run parses the script and executes it against the sandbox. Execution stops on the first fault, which
// is reported as a single error prefixed with the line number. Mutations applied before the fault are
// kept. Report is filled even if error is returned.
func Run(ctx context.Context, sb *sandbox.Sandbox, text string) (Report, error) {
	program, err := Parse(text)
	if err != nil {
		return report(sb, nil, err)
	}
	return Execute(ctx, sb, program)
}

// Execute executes parsed program against the sandbox.
func Execute(ctx context.Context, sb *sandbox.Sandbox, program Program) (Report, error) {
	log := logger.Get(ctx)

	steps := make([]Step, 0, len(program.Calls))
	for _, call := range program.Calls {
		if err := ctx.Err(); err != nil {
			return report(sb, steps, errors.Wrapf(err, "line %d", call.Line))
		}
		if call.Object != sb.Object() {
			return report(sb, steps, errors.Wrapf(ErrUnknownObject, "line %d: %q, expected %q", call.Line,
				call.Object, sb.Object()))
		}

		result, err := sb.Call(call.Method, call.Args...)
		if err != nil {
			return report(sb, steps, errors.Wrapf(err, "line %d", call.Line))
		}

		log.Debug("Statement executed",
			zap.Int("line", call.Line),
			zap.Stringer("call", call),
			zap.Any("value", result.Value))

		steps = append(steps, Step{
			Line:   call.Line,
			Call:   call.String(),
			Result: result,
		})
	}

	r, err := report(sb, steps, nil)
	if err != nil {
		return r, err
	}

	log.Info("Script executed",
		zap.String("family", string(sb.Family())),
		zap.String("variant", string(sb.Variant())),
		zap.Int("statements", len(steps)))

	return r, nil
}

func report(sb *sandbox.Sandbox, steps []Step, runErr error) (Report, error) {
	r := Report{
		Steps:    steps,
		Snapshot: sb.Snapshot(),
	}

	variables, err := sb.Variables()
	if err != nil {
		return r, err
	}
	r.Variables = variables

	return r, runErr
}
