// Package jsonio implements the external glue named in the system
// overview: JSON input parsing (with cycle/missing-dependency validation)
// and JSON output formatting for the emitted hoist list.
package jsonio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/grouptopo/grouptopo/depgraph"
	"github.com/grouptopo/grouptopo/dirtree"
	"github.com/grouptopo/grouptopo/hoistplan"
	"github.com/grouptopo/grouptopo/target"
)

// ErrInvalidJSON indicates the input could not be decoded as the expected
// array-of-objects shape, or a declared name was empty.
var ErrInvalidJSON = errors.New("jsonio: invalid input JSON")

// ErrDepgraphCycle indicates the dependency graph described by the input is
// not acyclic.
var ErrDepgraphCycle = errors.New("jsonio: dependency graph has a cycle")

// ErrDependencyDoesNotExist indicates some ddeps entry names a target that
// no object in the input provides.
var ErrDependencyDoesNotExist = errors.New("jsonio: dependency does not exist")

// importedTarget mirrors the wire schema: provides, ddeps, ideal_path.
type importedTarget struct {
	Provides  string   `json:"provides"`
	DDeps     []string `json:"ddeps"`
	IdealPath []string `json:"ideal_path"`
}

// ParseError wraps one of the sentinel errors above with the offending
// target names, checkable with errors.Is/errors.As.
type ParseError struct {
	Err  error
	From string // meaningful for ErrDependencyDoesNotExist
	To   string // meaningful for ErrDependencyDoesNotExist
}

func (e *ParseError) Error() string {
	switch {
	case errors.Is(e.Err, ErrDependencyDoesNotExist):
		return fmt.Sprintf("jsonio: dependency %q -> %q does not exist", e.From, e.To)
	default:
		return e.Err.Error()
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse decodes r as the JSON array input schema and builds the dependency
// graph and directory tree. It validates that ddeps only reference known
// provides and that the resulting graph is acyclic, per the external
// interfaces' semantic requirements.
func Parse(r io.Reader) (*depgraph.Graph, *dirtree.Tree, error) {
	var raw []importedTarget
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, nil, &ParseError{Err: fmt.Errorf("%w: %v", ErrInvalidJSON, err)}
	}

	g := depgraph.New()
	tree := dirtree.New()

	for _, it := range raw {
		name, err := target.NewTargetName(it.Provides)
		if err != nil {
			return nil, nil, &ParseError{Err: fmt.Errorf("%w: %v", ErrInvalidJSON, err)}
		}
		path, err := toPath(it.IdealPath)
		if err != nil {
			return nil, nil, &ParseError{Err: fmt.Errorf("%w: %v", ErrInvalidJSON, err)}
		}
		if err := g.AddNode(name, path); err != nil {
			return nil, nil, &ParseError{Err: fmt.Errorf("%w: %v", ErrInvalidJSON, err)}
		}
		tree.Insert(name, path)
	}

	for _, it := range raw {
		from, _ := target.NewTargetName(it.Provides)
		for _, dep := range it.DDeps {
			to, err := target.NewTargetName(dep)
			if err != nil {
				return nil, nil, &ParseError{Err: fmt.Errorf("%w: %v", ErrInvalidJSON, err)}
			}
			if !g.HasNode(to) {
				return nil, nil, &ParseError{Err: ErrDependencyDoesNotExist, From: string(from), To: string(to)}
			}
			if err := g.AddEdge(from, to); err != nil {
				return nil, nil, &ParseError{Err: fmt.Errorf("%w: %v", ErrInvalidJSON, err)}
			}
		}
	}

	if has, _ := g.DetectCycle(); has {
		return nil, nil, &ParseError{Err: ErrDepgraphCycle}
	}

	return g, tree, nil
}

func toPath(segs []string) (target.Path, error) {
	p := make(target.Path, len(segs))
	for i, s := range segs {
		d, err := target.NewDirName(s)
		if err != nil {
			return nil, err
		}
		p[i] = d
	}

	return p, nil
}

// outputHoist mirrors the wire output schema: target, actual_path.
type outputHoist struct {
	Target     string   `json:"target"`
	ActualPath []string `json:"actual_path"`
}

// Write pretty-prints hoists as the JSON array output schema to w.
func Write(w io.Writer, hoists []hoistplan.Hoist) error {
	out := make([]outputHoist, len(hoists))
	for i, h := range hoists {
		segs := make([]string, len(h.ChosenPath))
		for j, d := range h.ChosenPath {
			segs[j] = d.String()
		}
		out[i] = outputHoist{Target: h.Target.String(), ActualPath: segs}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
