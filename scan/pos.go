package scan

import "sort"

// posDoc maps byte offsets to 1-based line/column pairs. The newline
// table is built once over the whole document, so positions stay
// correct through error resynchronization.
type posDoc struct {
	nl []int
}

func newPosDoc(d []byte) *posDoc {
	p := &posDoc{}
	for i, c := range d {
		if c == '\n' {
			p.nl = append(p.nl, i)
		}
	}
	return p
}

func (p *posDoc) lineCol(off int) (line, col uint) {
	di := sort.Search(len(p.nl), func(i int) bool {
		return p.nl[i] >= off
	})
	if di == 0 {
		return 1, uint(off) + 1
	}
	return uint(di) + 1, uint(off - p.nl[di-1])
}
