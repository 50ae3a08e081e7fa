// SPDX-License-Identifier: MIT
package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/knapsack/problem"
)

// maxLineBytes bounds a single line; 10k items of two 5-digit fields fit.
const maxLineBytes = 1 << 20

// ParseKnapsack parses one instance line.
func ParseKnapsack(line string) (*problem.Knapsack, error) {
	f := strings.Fields(line)
	if len(f) < 3 {
		return nil, fmt.Errorf("%d fields: %w", len(f), ErrMalformedLine)
	}

	id, err := parseInt(f[0], 16, "id")
	if err != nil {
		return nil, err
	}
	n, err := parseInt(f[1], 32, "item count")
	if err != nil {
		return nil, err
	}
	capacity, err := parseInt(f[2], 16, "capacity")
	if err != nil {
		return nil, err
	}
	if n < 0 || len(f)-3 != 2*n {
		return nil, fmt.Errorf("declared %d items, found %d fields: %w", n, len(f)-3, ErrItemCountMismatch)
	}

	items := make([]problem.Item, n)
	for i := range items {
		w, err := parseUint16(f[3+2*i], "weight")
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		p, err := parseUint16(f[4+2*i], "price")
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items[i] = problem.Item{Weight: w, Price: p}
	}

	k, err := problem.New(id, capacity, items)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", err, ErrOutOfRange)
	}
	return k, nil
}

// Load reads up to limit knapsacks from r (limit ≤ 0 reads all).
func Load(r io.Reader, limit int) ([]*problem.Knapsack, error) {
	var out []*problem.Knapsack
	err := scanLines(r, func(no int, line string) (bool, error) {
		k, err := ParseKnapsack(line)
		if err != nil {
			return false, fmt.Errorf("line %d: %w", no, err)
		}
		out = append(out, k)
		return limit <= 0 || len(out) < limit, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LoadFile is Load over the file at path.
func LoadFile(path string, limit int) ([]*problem.Knapsack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ks, err := Load(f, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ks, nil
}

// scanLines calls fn for every non-blank line with its 1-based number until
// fn returns false or an error.
func scanLines(r io.Reader, fn func(no int, line string) (bool, error)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for no := 1; sc.Scan(); no++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		more, err := fn(no, line)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
	return sc.Err()
}

func parseInt(s string, bitSize int, field string) (int, error) {
	v, err := strconv.ParseInt(s, 10, bitSize)
	if err != nil {
		return 0, numError(field, s, err)
	}
	return int(v), nil
}

func parseUint16(s, field string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, numError(field, s, err)
	}
	return uint16(v), nil
}

func numError(field, s string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%s %q: %w", field, s, ErrOutOfRange)
	}
	return fmt.Errorf("%s %q: %w", field, s, ErrMalformedLine)
}
