package transpile

import "lugha/internal/source"

// BlockKind tags an open block on the block stack.
type BlockKind uint8

const (
	BlockFunction BlockKind = iota + 1
	BlockWhile
	BlockIf
	BlockElse
)

func (k BlockKind) String() string {
	switch k {
	case BlockFunction:
		return "function"
	case BlockWhile:
		return "while"
	case BlockIf:
		return "if"
	case BlockElse:
		return "else"
	default:
		return "block"
	}
}

type block struct {
	kind BlockKind
	open source.Span // keyword that opened the block
}

type blockStack []block

func (s *blockStack) push(k BlockKind, open source.Span) {
	*s = append(*s, block{kind: k, open: open})
}

func (s *blockStack) pop() (block, bool) {
	n := len(*s)
	if n == 0 {
		return block{}, false
	}
	b := (*s)[n-1]
	*s = (*s)[:n-1]
	return b, true
}

func (s blockStack) top() (block, bool) {
	if len(s) == 0 {
		return block{}, false
	}
	return s[len(s)-1], true
}

// retag changes the kind of the innermost block, keeping its opening span.
func (s blockStack) retag(k BlockKind) {
	if len(s) > 0 {
		s[len(s)-1].kind = k
	}
}
