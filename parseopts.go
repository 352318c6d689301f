package calc

import "strconv"

// DefaultCapacity is the default bound on the number of tokens in a compiled
// expression and on the depth of the operator and value stacks.
const DefaultCapacity = 512

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type capopt int

// parsectx holds general data for parsing.
type parsectx struct {
	// cap bounds the output and both stacks.
	cap int
}

// Capacity sets the maximum number of tokens in a compiled expression, which
// also bounds the operator stack during parsing and the value stack during
// evaluation. Panics if n is not positive.
func Capacity(n int) ParseOption {
	if n <= 0 {
		panic("calc: invalid capacity " + strconv.Itoa(n))
	}
	return capopt(n)
}

func (o capopt) parseOption(p parsectx) parsectx {
	p.cap = int(o)
	return p
}

func newParsectx(opts []ParseOption) parsectx {
	p := parsectx{cap: DefaultCapacity}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	return p
}
