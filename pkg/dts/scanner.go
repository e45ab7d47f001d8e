package dts

import (
	"iter"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/skyos/hwinv/pkg/log"
)

// CloseMarker is the statement that closes the currently open node.
const CloseMarker = "};"

var (
	// A header starts its statement, optionally behind a label.
	headerRe     = regexp.MustCompile(`^(?:[\w-]+:\s*)?(\w+)@([0-9a-fA-F]+)\s*\{`)
	compatibleRe = regexp.MustCompile(`^compatible\s*=\s*"([^"]+)"`)
	regRe        = regexp.MustCompile(`^reg\s*=\s*<([^>]+)>`)
	interruptsRe = regexp.MustCompile(`^interrupts\s*=\s*<([^>]+)>`)
)

// Node is a device node captured between its header and its close marker.
type Node struct {
	Name        string
	UnitAddress uint64

	// Line is the 1-based source line of the node header.
	Line int

	// Compatible is the first string of the compatible property.
	Compatible    string
	HasCompatible bool

	// RegCells holds the raw tokens of the reg property, nil if absent.
	RegCells []string

	// InterruptCells holds the raw tokens of the interrupts property, nil if absent.
	InterruptCells []string
}

// HasReg reports whether the node carried a reg property.
func (n Node) HasReg() bool {
	return n.RegCells != nil
}

// HasInterrupts reports whether the node carried an interrupts property.
func (n Node) HasInterrupts() bool {
	return n.InterruptCells != nil
}

type scanState uint8

const (
	stateIdle scanState = iota
	stateNodeOpen
)

// accumulator is the scanner state threaded through each step.
type accumulator struct {
	state scanState
	node  Node
}

// Scanner turns device-tree source text into a sequence of Nodes.
// A Scanner holds no per-scan state and may be reused.
type Scanner struct {
	trace log.Logger
}

// NewScanner creates a Scanner that reports its decisions to trace.
// A nil trace disables tracing.
func NewScanner(trace log.Logger) *Scanner {
	if trace == nil {
		trace = log.NoopLogger{}
	}
	return &Scanner{trace: trace}
}

// Scan collects all nodes of text using a scanner without tracing.
func Scan(text string) []Node {
	return NewScanner(nil).Scan(text)
}

// Scan collects all nodes of text.
func (s *Scanner) Scan(text string) []Node {
	return slices.Collect(s.Nodes(text))
}

// Nodes returns the nodes of text in the order they close. Only nodes that
// captured a reg or interrupts property are yielded.
//
// Opening a node while another one is open discards the outer node and any
// properties it captured so far. Nesting is not tracked.
//
// The sequence is lazy and can be ranged over any number of times.
func (s *Scanner) Nodes(text string) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		acc := accumulator{state: stateIdle}
		lineNo := 0
		for line := range strings.Lines(text) {
			lineNo++
			for _, stmt := range splitStatements(line) {
				var node Node
				var done bool
				acc, node, done = s.step(acc, stmt, lineNo)
				if done && !yield(node) {
					return
				}
			}
		}
	}
}

// step consumes one statement. It returns the next accumulator and, when the
// statement closed a node worth keeping, that node.
func (s *Scanner) step(acc accumulator, stmt string, lineNo int) (accumulator, Node, bool) {
	if name, addr, ok := matchHeader(stmt); ok {
		if acc.state == stateNodeOpen {
			s.trace.Log(log.Event{
				Kind:    log.KindNodeDiscarded,
				Line:    lineNo,
				Node:    acc.node.Name,
				Address: acc.node.UnitAddress,
				Message: "replaced by " + name,
			})
		}
		s.trace.Log(log.Event{Kind: log.KindNodeOpened, Line: lineNo, Node: name, Address: addr})
		return accumulator{
			state: stateNodeOpen,
			node:  Node{Name: name, UnitAddress: addr, Line: lineNo},
		}, Node{}, false
	}

	if acc.state != stateNodeOpen {
		return acc, Node{}, false
	}

	if stmt == CloseMarker {
		node := acc.node
		event := log.Event{Line: lineNo, Node: node.Name, Address: node.UnitAddress}
		if !node.HasReg() && !node.HasInterrupts() {
			event.Kind = log.KindNodeDropped
			s.trace.Log(event)
			return accumulator{state: stateIdle}, Node{}, false
		}
		event.Kind = log.KindNodeClosed
		s.trace.Log(event)
		return accumulator{state: stateIdle}, node, true
	}

	acc.node = applyProperty(acc.node, stmt)
	return acc, Node{}, false
}

func matchHeader(stmt string) (string, uint64, bool) {
	m := headerRe.FindStringSubmatch(stmt)
	if m == nil {
		return "", 0, false
	}
	addr, err := strconv.ParseUint(m[2], 16, 64)
	if err != nil {
		return "", 0, false
	}
	return m[1], addr, true
}

// applyProperty returns node updated with the property in stmt, if any.
func applyProperty(node Node, stmt string) Node {
	if m := compatibleRe.FindStringSubmatch(stmt); m != nil {
		// dtc joins string lists with a literal \0; keep the first entry.
		first, _, _ := strings.Cut(m[1], `\0`)
		node.Compatible = first
		node.HasCompatible = true
		return node
	}
	if m := regRe.FindStringSubmatch(stmt); m != nil {
		node.RegCells = strings.Fields(m[1])
		return node
	}
	if m := interruptsRe.FindStringSubmatch(stmt); m != nil {
		node.InterruptCells = strings.Fields(m[1])
	}
	return node
}

// splitStatements splits a source line after every '{' and ';' outside
// double quotes and returns the trimmed, non-empty pieces.
func splitStatements(line string) []string {
	var stmts []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			stmts = append(stmts, s)
		}
	}

	inQuote := false
	start := 0
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c == '\\' && inQuote:
			i++
		case c == '"':
			inQuote = !inQuote
		case (c == '{' || c == ';') && !inQuote:
			add(line[start : i+1])
			start = i + 1
		}
	}
	if start < len(line) {
		add(line[start:])
	}
	return stmts
}
