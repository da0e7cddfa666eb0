// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/capsel/internal/errors"
	"github.com/thoreinstein/capsel/internal/logging"
	"github.com/thoreinstein/capsel/pkg/platform"
)

// Sentinel errors for kind selection.
var (
	ErrNoChoices          = errors.New("nothing to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// FindFunc presents kinds and returns the chosen indexes.
type FindFunc func(kinds []platform.Kind) ([]int, error)

// Selector handles interactive kind selection prompts.
type Selector struct {
	reader io.Reader
	writer io.Writer
	find   FindFunc
}

// NewSelector creates a Selector using stdin and stdout. When both are
// terminals it uses a fuzzy finder; otherwise it falls back to a numbered
// list.
func NewSelector() *Selector {
	s := NewSelectorWithIO(os.Stdin, os.Stdout)
	if logging.IsTTY(os.Stdin) && logging.IsTTY(os.Stdout) {
		s.find = fuzzyFind
	}
	return s
}

// NewSelectorWithIO creates a numbered-list Selector with custom reader and
// writer for testing.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: r,
		writer: w,
	}
}

// WithFinder replaces the numbered list with find.
func (s *Selector) WithFinder(find FindFunc) *Selector {
	s.find = find
	return s
}

// SelectKinds prompts the user to choose one or more kinds. A single kind
// is returned without prompting. An empty answer selects every kind.
func (s *Selector) SelectKinds(kinds []platform.Kind) ([]platform.Kind, error) {
	if len(kinds) == 0 {
		return nil, ErrNoChoices
	}
	if len(kinds) == 1 {
		return kinds, nil
	}

	var (
		idx []int
		err error
	)
	if s.find != nil {
		idx, err = s.find(kinds)
	} else {
		idx, err = s.numbered(kinds)
	}
	if err != nil {
		return nil, err
	}
	if len(idx) == 0 {
		return kinds, nil
	}

	out := make([]platform.Kind, 0, len(idx))
	for _, i := range idx {
		if !slices.Contains(out, kinds[i]) {
			out = append(out, kinds[i])
		}
	}
	return out, nil
}

func (s *Selector) numbered(kinds []platform.Kind) ([]int, error) {
	fmt.Fprintln(s.writer, "Capability kinds:")
	for i, k := range kinds {
		fmt.Fprintf(s.writer, "  [%d] %s\n", i+1, k)
	}
	fmt.Fprintf(s.writer, "Select (comma-separated) [all]: ")

	reader := bufio.NewReader(s.reader)
	input, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrSelectionCancelled
		}
		return nil, errors.Wrap(err, "reading selection")
	}

	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	idx := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidSelection, "%q is not a number", f)
		}
		if n < 1 || n > len(kinds) {
			return nil, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", n, len(kinds))
		}
		idx = append(idx, n-1)
	}
	return idx, nil
}

func fuzzyFind(kinds []platform.Kind) ([]int, error) {
	idx, err := fuzzyfinder.FindMulti(
		kinds,
		func(i int) string {
			return string(kinds[i])
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return preview(kinds[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, ErrSelectionCancelled
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}
	return idx, nil
}

// preview lists the variants of kind, best first.
func preview(kind platform.Kind) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n\n", kind)
	for _, v := range platform.Variants(kind) {
		fmt.Fprintf(&sb, "  %-12s api %d+ (%s)\n", v.Name, v.MinTier.Threshold(), v.MinTier)
	}
	return sb.String()
}

// SelectKindsDefault is a convenience function that uses stdin/stdout.
func SelectKindsDefault(kinds []platform.Kind) ([]platform.Kind, error) {
	return NewSelector().SelectKinds(kinds)
}
