package ast

type UnaryOperator int

const (
	Negate UnaryOperator = iota + 1
	Identity
)

func (op UnaryOperator) String() string {
	switch op {
	case Negate:
		return "-"
	case Identity:
		return "+"
	}
	return "?"
}

type BinaryOperator int

const (
	Add BinaryOperator = iota + 1
	Sub
	Mul
	Div
	Pow
)

func (op BinaryOperator) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	}
	return "?"
}
