package life

import (
	"math"

	"life-bg/pkg/core"

	"gonum.org/v1/gonum/dsp/fourier"
)

// FFT counts neighbours for a whole grid at once with a 2D circular
// convolution: a real FFT along each row, a complex FFT along each column,
// a pointwise product with the transformed Moore kernel, then the inverse.
// Circular convolution wraps exactly like the torus, so results match Direct.
//
// An FFT keeps per-size buffers and is not safe for concurrent use.
type FFT struct {
	plan *fftPlan
}

// NewFFT returns an FFT stepper. Plans are built lazily per grid size.
func NewFFT() *FFT { return &FFT{} }

type fftPlan struct {
	cols, rows int
	halfC      int
	norm       float64

	realFFT  *fourier.FFT
	cmplxFFT *fourier.CmplxFFT

	kernel []complex128 // rows × halfC
	freq   []complex128 // rows × halfC
	col    []complex128
	row    []float64
}

// Next implements Stepper.
func (f *FFT) Next(g core.Grid) core.Grid {
	next := core.NewGrid(g.Cols, g.Rows)
	if g.Empty() {
		return next
	}
	p := f.planFor(g.Cols, g.Rows)
	counts := p.neighborCounts(g)
	cur, out := g.Cells(), next.Cells()
	for i := range out {
		out[i] = Rule(cur[i], counts[i])
	}
	return next
}

// NeighborCounts returns the live-neighbour count of every cell, row-major.
func (f *FFT) NeighborCounts(g core.Grid) []int {
	if g.Empty() {
		return nil
	}
	return f.planFor(g.Cols, g.Rows).neighborCounts(g)
}

func (f *FFT) planFor(cols, rows int) *fftPlan {
	if f.plan != nil && f.plan.cols == cols && f.plan.rows == rows {
		return f.plan
	}
	f.plan = newFFTPlan(cols, rows)
	return f.plan
}

func newFFTPlan(cols, rows int) *fftPlan {
	halfC := cols/2 + 1
	p := &fftPlan{
		cols:     cols,
		rows:     rows,
		halfC:    halfC,
		norm:     1 / float64(cols*rows),
		realFFT:  fourier.NewFFT(cols),
		cmplxFFT: fourier.NewCmplxFFT(rows),
		kernel:   make([]complex128, rows*halfC),
		freq:     make([]complex128, rows*halfC),
		col:      make([]complex128, rows),
		row:      make([]float64, cols),
	}

	// Offsets that land on the same cell (grids narrower than 3) accumulate,
	// matching the direct modulo walk.
	spatial := make([]float64, cols*rows)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			fx := ((dx % cols) + cols) % cols
			fy := ((dy % rows) + rows) % rows
			spatial[fy*cols+fx]++
		}
	}
	for y := 0; y < rows; y++ {
		p.realFFT.Coefficients(p.kernel[y*halfC:(y+1)*halfC], spatial[y*cols:(y+1)*cols])
	}
	p.columns(p.kernel, p.cmplxFFT.Coefficients)
	return p
}

func (p *fftPlan) columns(buf []complex128, transform func(dst, src []complex128) []complex128) {
	for x := 0; x < p.halfC; x++ {
		for y := 0; y < p.rows; y++ {
			p.col[y] = buf[y*p.halfC+x]
		}
		transform(p.col, p.col)
		for y := 0; y < p.rows; y++ {
			buf[y*p.halfC+x] = p.col[y]
		}
	}
}

func (p *fftPlan) neighborCounts(g core.Grid) []int {
	cells := g.Cells()
	for y := 0; y < p.rows; y++ {
		for x := 0; x < p.cols; x++ {
			p.row[x] = 0
			if cells[y*p.cols+x] {
				p.row[x] = 1
			}
		}
		p.realFFT.Coefficients(p.freq[y*p.halfC:(y+1)*p.halfC], p.row)
	}
	p.columns(p.freq, p.cmplxFFT.Coefficients)

	for i := range p.freq {
		p.freq[i] *= p.kernel[i]
	}

	p.columns(p.freq, p.cmplxFFT.Sequence)
	counts := make([]int, p.cols*p.rows)
	for y := 0; y < p.rows; y++ {
		p.realFFT.Sequence(p.row, p.freq[y*p.halfC:(y+1)*p.halfC])
		for x := 0; x < p.cols; x++ {
			counts[y*p.cols+x] = int(math.Round(p.row[x] * p.norm))
		}
	}
	return counts
}
