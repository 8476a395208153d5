// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"github.com/katalvlaran/lvalgebra/literal"
	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/katalvlaran/lvalgebra/poly"
	"github.com/katalvlaran/lvalgebra/scalar"
)

var errPlotRange = errors.New("plot range must satisfy from < to and width >= 2")

func writeEigenTable(w io.Writer, pairs []matrix.Eigenpair) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EIGENVALUE\tDIM\tBASIS")
	for _, p := range pairs {
		fmt.Fprintf(tw, "%v\t%d\t", p.Value, len(p.Vectors))
		for i, v := range p.Vectors {
			if i > 0 {
				fmt.Fprint(tw, " ")
			}
			fmt.Fprint(tw, literal.Format(v))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

// formatValues renders values rounded to eight places, e.g. "[1 + 0i, 2 + 0i]".
func formatValues(vs []scalar.Complex) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.Round(8).String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// sampleMagnitude evaluates |p(x)| at n evenly spaced points of [from, to].
func sampleMagnitude(p poly.Poly[scalar.Complex], from, to float64, n int) ([]float64, error) {
	if !(from < to) || n < 2 {
		return nil, errPlotRange
	}
	step := (to - from) / float64(n-1)
	data := make([]float64, n)
	for i := range data {
		x := scalar.NewComplex(from+float64(i)*step, 0)
		data[i] = p.Eval(x).Magnitude()
	}

	return data, nil
}

func plotMagnitude(p poly.Poly[scalar.Complex], from, to float64, width int) (string, error) {
	data, err := sampleMagnitude(p, from, to, width)
	if err != nil {
		return "", err
	}
	caption := fmt.Sprintf("|p(x)| for x in [%g, %g]", from, to)

	return asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(width),
		asciigraph.Caption(caption)), nil
}
