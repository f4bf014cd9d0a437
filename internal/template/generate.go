package template

// generate computes every aperiodic (unbordered) m-bit template by brute
// force: a value has a border of length L (1 <= L < m) when its top L bits
// equal its bottom L bits; a template with no border at all is kept. This
// is the same definition the build-time asset generator used to produce
// the embedded template{2..16}.raw files, extended here to cover lengths
// (17..21) whose real catalogues are too large to ship as literal assets
// in this build (see template.go's package doc).
func generate(m int) []Template {
	var out []Template
	limit := uint32(1) << uint(m)
	for v := uint32(0); v < limit; v++ {
		if unbordered(v, m) {
			out = append(out, Template{Value: v, Len: m})
		}
	}
	return out
}

func unbordered(v uint32, m int) bool {
	for l := 1; l < m; l++ {
		prefix := v >> uint(m-l)
		suffix := v & ((uint32(1) << uint(l)) - 1)
		if prefix == suffix {
			return false
		}
	}
	return true
}
