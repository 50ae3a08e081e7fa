// SPDX-License-Identifier: MIT
package instance

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/knapsack/problem"
)

// ParseReference parses one solution line.
func ParseReference(line string) (Reference, error) {
	f := strings.Fields(line)
	if len(f) < 3 {
		return Reference{}, fmt.Errorf("%d fields: %w", len(f), ErrMalformedLine)
	}
	id, err := parseInt(f[0], 16, "id")
	if err != nil {
		return Reference{}, err
	}
	n, err := parseInt(f[1], 32, "item count")
	if err != nil {
		return Reference{}, err
	}
	price, err := parseInt(f[2], 32, "price")
	if err != nil {
		return Reference{}, err
	}
	if n < 0 || len(f)-3 != n {
		return Reference{}, fmt.Errorf("declared %d items, found %d bits: %w", n, len(f)-3, ErrItemCountMismatch)
	}

	sel := problem.NewSelection(n)
	for i, b := range f[3:] {
		switch b {
		case "1":
			sel.Set(i)
		case "0":
		default:
			return Reference{}, fmt.Errorf("bit %d %q: %w", i, b, ErrMalformedLine)
		}
	}
	return Reference{ID: id, Size: n, Price: price, Selection: sel}, nil
}

// LoadReferences reads every solution line of r in file order.
func LoadReferences(r io.Reader) ([]Reference, error) {
	var out []Reference
	err := scanLines(r, func(no int, line string) (bool, error) {
		ref, err := ParseReference(line)
		if err != nil {
			return false, fmt.Errorf("line %d: %w", no, err)
		}
		out = append(out, ref)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LoadReferencesFile is LoadReferences over the file at path.
func LoadReferencesFile(path string) ([]Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	refs, err := LoadReferences(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return refs, nil
}

// PricesByID indexes reference prices by instance id. Later lines win.
func PricesByID(refs []Reference) map[int]int {
	out := make(map[int]int, len(refs))
	for _, r := range refs {
		out[r.ID] = r.Price
	}
	return out
}

// RelativeError returns (optimal − found) / optimal, or 0 when optimal is 0.
func RelativeError(optimal, found int) float64 {
	if optimal == 0 {
		return 0
	}
	return float64(optimal-found) / float64(optimal)
}
