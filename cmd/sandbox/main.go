package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/outofforest/sandbox"
	"github.com/outofforest/sandbox/registry"
	"github.com/outofforest/sandbox/script"
	"github.com/outofforest/sandbox/types"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

type config struct {
	Family  string
	Variant string
	Format  string
	List    bool
	Example bool
	Scripts []string
}

func main() {
	log := logger.New(logger.DefaultConfig)
	ctx, cancel := signal.NotifyContext(logger.WithLogger(context.Background(), log), os.Interrupt,
		syscall.SIGTERM)
	defer cancel()

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Error("Invalid arguments", zap.Error(err))
		os.Exit(2)
	}

	if err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		log.Error("Sandbox failed", zap.Error(err))
		os.Exit(1)
	}
}

func parseFlags(args []string) (config, error) {
	var cfg config

	flags := pflag.NewFlagSet("sandbox", pflag.ContinueOnError)
	flags.StringVarP(&cfg.Family, "family", "f", string(types.FamilyArray), "data structure family")
	flags.StringVarP(&cfg.Variant, "variant", "v", "", "variant of the family, default one is used if empty")
	flags.StringVar(&cfg.Format, "format", formatTable, "output format: table or json")
	flags.BoolVar(&cfg.List, "list", false, "print supported families and variants")
	flags.BoolVar(&cfg.Example, "example", false, "run the example script of the variant instead of script files")
	if err := flags.Parse(args); err != nil {
		return config{}, errors.WithStack(err)
	}

	switch cfg.Format {
	case formatTable, formatJSON:
	default:
		return config{}, errors.Errorf("unknown format %q", cfg.Format)
	}

	cfg.Scripts = flags.Args()
	if cfg.Example && len(cfg.Scripts) > 0 {
		return config{}, errors.New("--example does not accept script files")
	}
	if !cfg.Example && len(cfg.Scripts) == 0 {
		cfg.Scripts = []string{"-"}
	}
	return cfg, nil
}

type source struct {
	Name string
	Text string
}

type outcome struct {
	Source source
	Report script.Report
	Err    error
}

func run(ctx context.Context, cfg config, stdin io.Reader, stdout io.Writer) error {
	if cfg.List {
		return printRegistry(stdout)
	}

	family, err := registry.ParseFamily(cfg.Family)
	if err != nil {
		return err
	}
	sbConfig := sandbox.Config{
		Family:  family,
		Variant: types.Variant(cfg.Variant),
	}
	sb, err := sandbox.New(sbConfig)
	if err != nil {
		return err
	}

	var sources []source
	if cfg.Example {
		text, err := registry.DefaultScript(sb.Family(), sb.Variant())
		if err != nil {
			return err
		}
		sources = []source{{Name: "example", Text: text}}
	} else {
		sources, err = readSources(cfg.Scripts, stdin)
		if err != nil {
			return err
		}
	}

	outcomes := make([]outcome, len(sources))
	err = parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		for i, src := range sources {
			spawn(fmt.Sprintf("script-%02d", i), parallel.Continue, func(ctx context.Context) error {
				sb, err := sandbox.New(sbConfig)
				if err != nil {
					return err
				}
				report, err := script.Run(ctx, sb, src.Text)
				if err != nil {
					logger.Get(ctx).Warn("Script failed", zap.String("script", src.Name), zap.Error(err))
				}
				outcomes[i] = outcome{
					Source: src,
					Report: report,
					Err:    err,
				}
				return nil
			})
		}
		return nil
	})
	if err != nil {
		return err
	}

	if cfg.Format == formatJSON {
		err = printJSON(stdout, outcomes)
	} else {
		err = printTables(stdout, outcomes)
	}
	if err != nil {
		return err
	}

	if failed := lo.CountBy(outcomes, func(o outcome) bool { return o.Err != nil }); failed > 0 {
		return errors.Errorf("%d of %d script(s) failed", failed, len(outcomes))
	}
	return nil
}

func readSources(names []string, stdin io.Reader) ([]source, error) {
	sources := make([]source, 0, len(names))
	stdinRead := false
	for _, name := range names {
		var text []byte
		var err error
		if name == "-" {
			if stdinRead {
				return nil, errors.New("standard input may be used only once")
			}
			stdinRead = true
			name = "stdin"
			text, err = io.ReadAll(stdin)
		} else {
			text, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading script %q failed", name)
		}
		sources = append(sources, source{
			Name: name,
			Text: string(text),
		})
	}
	return sources, nil
}

func printRegistry(stdout io.Writer) error {
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FAMILY\tOBJECT\tVARIANTS")
	for _, family := range registry.Families() {
		defaultVariant, err := registry.DefaultVariant(family)
		if err != nil {
			return err
		}
		variants := lo.Map(registry.Variants(family), func(v types.Variant, _ int) string {
			if v == defaultVariant {
				return string(v) + "*"
			}
			return string(v)
		})
		fmt.Fprintf(w, "%s\t%s\t%s\n", family, family.Key(), strings.Join(variants, ", "))
	}
	return errors.WithStack(w.Flush())
}

func printTables(stdout io.Writer, outcomes []outcome) error {
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for i, o := range outcomes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s (%s/%s) ==\n", o.Source.Name, o.Report.Snapshot.Family, o.Report.Snapshot.Variant)

		fmt.Fprintln(w, "LINE\tCALL\tRESULT")
		for _, step := range o.Report.Steps {
			fmt.Fprintf(w, "%d\t%s\t%s\n", step.Line, step.Call, script.FormatValue(step.Result.Value))
		}

		fmt.Fprintln(w, "\nVARIABLE\tVALUE")
		for _, v := range o.Report.Variables {
			fmt.Fprintf(w, "%s\t%s\n", v.Name, v.Value)
		}

		if o.Err != nil {
			fmt.Fprintf(w, "\nerror: %s\n", o.Err)
		}
	}
	return errors.WithStack(w.Flush())
}

type jsonStep struct {
	Line  int         `json:"line"`
	Call  string      `json:"call"`
	Value types.Value `json:"value"`
}

type jsonVariable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type jsonOutcome struct {
	Script    string         `json:"script"`
	Family    types.Family   `json:"family"`
	Variant   types.Variant  `json:"variant"`
	Steps     []jsonStep     `json:"steps"`
	Snapshot  types.Snapshot `json:"snapshot"`
	Variables []jsonVariable `json:"variables"`
	Error     string         `json:"error,omitempty"`
}

func printJSON(stdout io.Writer, outcomes []outcome) error {
	out := lo.Map(outcomes, func(o outcome, _ int) jsonOutcome {
		jo := jsonOutcome{
			Script:  o.Source.Name,
			Family:  o.Report.Snapshot.Family,
			Variant: o.Report.Snapshot.Variant,
			Steps: lo.Map(o.Report.Steps, func(s script.Step, _ int) jsonStep {
				return jsonStep{
					Line:  s.Line,
					Call:  s.Call,
					Value: s.Result.Value,
				}
			}),
			Snapshot: o.Report.Snapshot,
			Variables: lo.Map(o.Report.Variables, func(v sandbox.Variable, _ int) jsonVariable {
				return jsonVariable{
					Name:  v.Name,
					Value: v.Value,
				}
			}),
		}
		if o.Err != nil {
			jo.Error = o.Err.Error()
		}
		return jo
	})

	e := json.NewEncoder(stdout)
	e.SetIndent("", "  ")
	return errors.WithStack(e.Encode(out))
}
