package field

// SignChanges counts sign alternations between consecutive nonzero coefficients,
// the Descartes bound on the number of positive real roots.
func SignChanges[T any](o Ordered[T], p *Polynomial[T]) int {
	changes := 0
	last := 0

	for _, c := range p.inner {
		s := o.Sign(c)
		if s == 0 {
			continue
		}

		if last != 0 && s != last {
			changes++
		}

		last = s
	}

	return changes
}
