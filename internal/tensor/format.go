package tensor

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Fprint writes a rank-2 tensor to w, one row per line with values separated
// by a single space. Tensors of any other rank produce ErrInvalidPrintRank
// and nothing is written.
func (t *Tensor) Fprint(w io.Writer) error {
	if t.Rank() != 2 {
		return fmt.Errorf("%w: got rank %d", ErrInvalidPrintRank, t.Rank())
	}

	rows, cols := t.shape[0], t.shape[1]
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j != 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(t.data[i*cols+j], 'g', -1, 64))
		}
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("print tensor: %w", err)
	}
	return nil
}

// Print writes the tensor to standard output. It does nothing for tensors
// whose rank is not 2, and write errors are discarded; use Fprint to see them.
func (t *Tensor) Print() {
	_ = t.Fprint(os.Stdout)
}
