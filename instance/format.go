// SPDX-License-Identifier: MIT
package instance

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/knapsack/problem"
)

// FormatKnapsack renders k as an instance line.
func FormatKnapsack(k *problem.Knapsack) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(k.ID()))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(k.Size()))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(k.Capacity()))
	for _, it := range k.Items() {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(int(it.Weight)))
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(int(it.Price)))
	}
	return sb.String()
}

// Write emits one instance line per knapsack.
func Write(w io.Writer, ks []*problem.Knapsack) error {
	bw := bufio.NewWriter(w)
	for _, k := range ks {
		if _, err := bw.WriteString(FormatKnapsack(k) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteSolutions emits one solution line per solution.
func WriteSolutions(w io.Writer, sols []problem.Solution) error {
	bw := bufio.NewWriter(w)
	for _, s := range sols {
		if _, err := bw.WriteString(s.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
