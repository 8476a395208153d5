// SPDX-License-Identifier: MIT

// Package repl evaluates matrix commands against a table of named variables.
//
// Command forms:
//
//	a = {(1 2),(3 4)}     assign a literal
//	b = inv(a)            assign the matrix result of an expression
//	a + b, a - b, a * b   matrix arithmetic (2 * a scales)
//	op(a)                 unary operation, see Help
//	stack(a, b)           vertical concatenation
//	a                     print a variable
//	vars, help
package repl

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvalgebra/config"
	"github.com/katalvlaran/lvalgebra/literal"
	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/katalvlaran/lvalgebra/scalar"
)

// Mat is the matrix type every session variable holds.
type Mat = matrix.Dense[scalar.Real]

var (
	identRe  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	callRe   = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*\((.*)\)$`)
	binaryRe = regexp.MustCompile(`^(-?[0-9.]+(?:[eE][-+]?[0-9]+)?|[A-Za-z_][A-Za-z0-9_]*)\s*([-+*])\s*([A-Za-z_][A-Za-z0-9_]*)$`)
)

// value is the outcome of an expression: a matrix, or rendered text.
type value struct {
	m    *Mat
	text string
}

func (v value) String() string {
	if v.m != nil {
		return strings.TrimRight(v.m.String(), "\n")
	}

	return v.text
}

// Session holds variables and the numeric policy used to evaluate commands.
type Session struct {
	cfg    *config.Config
	opts   []matrix.Option
	vars   map[string]*Mat
	styles Styles
}

// NewSession validates cfg and returns an empty session. A nil cfg selects
// config.DefaultConfig.
func NewSession(cfg *config.Config) (*Session, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	styles := PlainStyles()
	if cfg.Color {
		styles = DefaultStyles()
	}

	return &Session{
		cfg:    cfg,
		opts:   cfg.MatrixOptions(),
		vars:   make(map[string]*Mat),
		styles: styles,
	}, nil
}

// SetStyles replaces the output decoration.
func (s *Session) SetStyles(st Styles) { s.styles = st }

// Set binds name to m.
func (s *Session) Set(name string, m *Mat) error {
	if !identRe.MatchString(name) {
		return fmt.Errorf("%w: invalid variable name %q", ErrSyntax, name)
	}
	if m == nil {
		return fmt.Errorf("%w: %q", matrix.ErrNilMatrix, name)
	}
	s.vars[name] = m

	return nil
}

// Get returns the matrix bound to name.
func (s *Session) Get(name string) (*Mat, error) {
	m, ok := s.vars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}

	return m, nil
}

// Vars returns the bound variable names in sorted order.
func (s *Session) Vars() []string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Eval runs one command line and returns its rendered result.
func (s *Session) Eval(line string) (string, error) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return "", fmt.Errorf("%w: empty command", ErrSyntax)
	case "help":
		return Help(), nil
	case "vars":
		return s.listVars(), nil
	}

	if name, rhs, ok := strings.Cut(line, "="); ok {
		return s.assign(strings.TrimSpace(name), strings.TrimSpace(rhs))
	}

	v, err := s.eval(line)
	if err != nil {
		return "", err
	}

	return v.String(), nil
}

func (s *Session) assign(name, rhs string) (string, error) {
	if !identRe.MatchString(name) {
		return "", fmt.Errorf("%w: invalid variable name %q", ErrSyntax, name)
	}

	var m *Mat
	if strings.HasPrefix(rhs, "{") {
		parsed, err := literal.Parse(rhs, s.cfg.Precision, s.opts...)
		if err != nil {
			return "", err
		}
		m = parsed
	} else {
		v, err := s.eval(rhs)
		if err != nil {
			return "", err
		}
		if v.m == nil {
			return "", fmt.Errorf("%w: %q", ErrNotMatrix, rhs)
		}
		m = v.m
	}
	s.vars[name] = m

	return fmt.Sprintf("Variable '%s' successfully added to memory", name), nil
}

func (s *Session) eval(expr string) (value, error) {
	if identRe.MatchString(expr) {
		m, err := s.Get(expr)
		if err != nil {
			return value{}, err
		}

		return value{m: m}, nil
	}
	if g := callRe.FindStringSubmatch(expr); g != nil {
		return s.call(g[1], g[2])
	}
	if g := binaryRe.FindStringSubmatch(expr); g != nil {
		return s.binary(g[1], g[2], g[3])
	}

	return value{}, fmt.Errorf("%w: %q", ErrSyntax, expr)
}

func (s *Session) binary(left, op, right string) (value, error) {
	b, err := s.Get(right)
	if err != nil {
		return value{}, err
	}

	if !identRe.MatchString(left) {
		if op != "*" {
			return value{}, fmt.Errorf("%w: a scalar only combines with '*'", ErrSyntax)
		}
		k, err := scalar.ParseReal(left, s.cfg.Precision)
		if err != nil {
			return value{}, err
		}
		m, err := matrix.Scale(b, k)

		return value{m: m}, err
	}

	a, err := s.Get(left)
	if err != nil {
		return value{}, err
	}
	var m *Mat
	switch op {
	case "+":
		m, err = matrix.Add(a, b)
	case "-":
		m, err = matrix.Sub(a, b)
	default:
		m, err = matrix.Mul(a, b)
	}

	return value{m: m}, err
}

func (s *Session) call(op, args string) (value, error) {
	names := splitArgs(args)
	if op == "stack" {
		if len(names) != 2 {
			return value{}, fmt.Errorf("%w: stack takes two arguments", ErrSyntax)
		}
		top, err := s.Get(names[0])
		if err != nil {
			return value{}, err
		}
		bottom, err := s.Get(names[1])
		if err != nil {
			return value{}, err
		}
		m, err := matrix.Stack(top, bottom)

		return value{m: m}, err
	}

	fn, ok := unaryOps[op]
	if !ok {
		return value{}, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	if len(names) != 1 {
		return value{}, fmt.Errorf("%w: %s takes one argument", ErrSyntax, op)
	}
	m, err := s.Get(names[0])
	if err != nil {
		return value{}, err
	}

	return fn(s, m)
}

func splitArgs(args string) []string {
	var out []string
	for _, a := range strings.Split(args, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}

	return out
}

func (s *Session) listVars() string {
	names := s.Vars()
	if len(names) == 0 {
		return "no variables"
	}
	lines := make([]string, len(names))
	for i, name := range names {
		r, c := s.vars[name].Size()
		lines[i] = fmt.Sprintf("%s: %dx%d", name, r, c)
	}

	return strings.Join(lines, "\n")
}

func itoa(n int) value { return value{text: strconv.Itoa(n)} }
