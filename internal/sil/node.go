// Package sil implements the SIL→Brainfuck compiler: a structured
// intermediate language of assignments, arithmetic, conditionals, loops,
// and syscalls, lowered to Brainfuck text that runs correctly against
// internal/bf's tape machine in extended mode. Scratch temporaries are
// allocated from a bump arena rather than a pair of fixed cells, so the
// compiler remains correct under arbitrary nesting of control flow and
// binary expressions.
package sil

// Node is a SIL tree node. It has no exported methods; the unexported
// marker restricts implementations to this package's closed set of
// concrete types.
type Node interface {
	silNode()
}

// Number is a 32-bit signed integer literal.
type Number int32

func (Number) silNode() {}

// String is a byte-sequence literal given as a UTF-8 string; it compiles
// identically to the equivalent Bytes literal.
type String string

func (String) silNode() {}

// Bytes is a byte-sequence literal.
type Bytes []byte

func (Bytes) silNode() {}

// Variable references a named cell.
type Variable struct {
	Name string
}

func (Variable) silNode() {}

// Assign computes Expr and stores the result in the cell named Name,
// allocating a new cell on first use.
type Assign struct {
	Name string
	Expr Node
}

func (Assign) silNode() {}

// Add is binary addition; the cell width wraps on overflow.
type Add struct {
	L, R Node
}

func (Add) silNode() {}

// Sub is binary subtraction, saturating at zero (see evalSub in
// compiler.go).
type Sub struct {
	L, R Node
}

func (Sub) silNode() {}

// If executes Body once iff Cond evaluates to a nonzero value.
type If struct {
	Cond Node
	Body []Node
}

func (If) silNode() {}

// While executes Body repeatedly while Cond evaluates to a nonzero value,
// re-evaluating Cond between iterations.
type While struct {
	Cond Node
	Body []Node
}

func (While) silNode() {}

// Syscall invokes the host gateway with the evaluated Num and up to six
// Args.
type Syscall struct {
	Num  Node
	Args []Node
}

func (Syscall) silNode() {}

// Block is sequential composition of statements.
type Block struct {
	Stmts []Node
}

func (Block) silNode() {}
