// pkg/passgen/batch.go

package passgen

// N runs fn n times and collects the outputs in order. The entropy stream is
// never reset or replayed between calls, so outputs are independent. The
// first failure aborts the batch; no partial result is returned.
func N(n int, fn func() (string, error)) ([]string, error) {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		s, err := fn()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
