package main

// jwLadder maps a single ladder operator on mode j to
//
//	1/2 (X_j -+ iY_j) Z_{j-1} ... Z_0
//
// with the minus sign for creation
func jwLadder(l LadderOp) *QubitOperator {
	zs := make(PauliString, 0, l.Mode+1)
	for k := 0; k < l.Mode; k++ {
		zs = append(zs, PauliFactor{k, PauliZ})
	}
	x := append(zs[:len(zs):len(zs)], PauliFactor{l.Mode, PauliX})
	y := append(zs[:len(zs):len(zs)], PauliFactor{l.Mode, PauliY})
	yc := complex(0, 0.5)
	if l.Raise {
		yc = -yc
	}
	op := NewQubitOperator()
	op.add(x, 0.5, false)
	op.add(y, yc, false)
	return op
}

// JordanWigner encodes f on qubits, one qubit per fermionic mode.
// Terms whose coefficients cancel below EqTolerance are dropped.
func JordanWigner(f *FermionOperator) *QubitOperator {
	out := NewQubitOperator()
	cache := make(map[LadderOp]*QubitOperator)
	for _, t := range f.Terms() {
		prod := NewQubitOperator()
		prod.add(nil, t.Coeff, false)
		for _, l := range t.Ops {
			q, ok := cache[l]
			if !ok {
				q = jwLadder(l)
				cache[l] = q
			}
			prod = prod.Mul(q)
		}
		out.AddOperator(prod)
	}
	return out
}
