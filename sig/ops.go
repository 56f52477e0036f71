package sig

// BinOp combines two Inputs sample by sample.
type BinOp struct {
	node
	a, b Input
	fn   func(a, b float64) float64
}

func newBinOp(clk *Clock, a, b Input, fn func(a, b float64) float64) *BinOp {
	return &BinOp{node: newNode(clk), a: a, b: b, fn: fn}
}

func (o *BinOp) Tick() float64 {
	if v, done := o.begin(); done {
		return v
	}
	return o.commit(o.fn(o.a.Tick(), o.b.Tick()))
}

func Add(clk *Clock, a, b Input) *BinOp {
	return newBinOp(clk, a, b, func(x, y float64) float64 { return x + y })
}

func Sub(clk *Clock, a, b Input) *BinOp {
	return newBinOp(clk, a, b, func(x, y float64) float64 { return x - y })
}

func Mul(clk *Clock, a, b Input) *BinOp {
	return newBinOp(clk, a, b, func(x, y float64) float64 { return x * y })
}

// Div yields a/b, or 0 when the divisor is 0 rather than an infinite sample.
func Div(clk *Clock, a, b Input) *BinOp {
	return newBinOp(clk, a, b, func(x, y float64) float64 {
		if y == 0 {
			return 0
		}
		return x / y
	})
}

// Lt yields a 0/1 mask: 1 while a < b.
func Lt(clk *Clock, a, b Input) *BinOp {
	return newBinOp(clk, a, b, func(x, y float64) float64 {
		if x < y {
			return 1
		}
		return 0
	})
}

// Ge yields a 0/1 mask: 1 while a >= b.
func Ge(clk *Clock, a, b Input) *BinOp {
	return newBinOp(clk, a, b, func(x, y float64) float64 {
		if x >= y {
			return 1
		}
		return 0
	})
}

// Min yields the smaller of the two inputs.
func Min(clk *Clock, a, b Input) *BinOp {
	return newBinOp(clk, a, b, func(x, y float64) float64 {
		if x < y {
			return x
		}
		return y
	})
}

// UnOp transforms a single Input sample by sample.
type UnOp struct {
	node
	in Input
	fn func(x float64) float64
}

func newUnOp(clk *Clock, in Input, fn func(x float64) float64) *UnOp {
	return &UnOp{node: newNode(clk), in: in, fn: fn}
}

func (o *UnOp) Tick() float64 {
	if v, done := o.begin(); done {
		return v
	}
	return o.commit(o.fn(o.in.Tick()))
}

// Clamp limits the input into [lo, hi].
func Clamp(clk *Clock, in Input, lo, hi float64) *UnOp {
	return newUnOp(clk, in, func(x float64) float64 {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}
		return x
	})
}
