package surface

// Node is an untyped syntax-tree node: either a bare decimal literal, a
// depth-indexed variable (/N), or a named operator applied to zero or more
// parenthesized operand nodes.
type Node struct {
	IsNumber bool
	Number   uint64

	IsVar    bool
	VarIndex uint32

	Op   string
	Kids []*Node
}
