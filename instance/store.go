// SPDX-License-Identifier: MIT

package instance

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/axisep/separator"
)

// Store names and opens numbered instance and solution files. InputDir
// holds instances, OutputDir receives solutions; empty means the working
// directory.
type Store struct {
	InputDir       string
	OutputDir      string
	InstancePrefix string
	SolutionPrefix string
}

// NewStore returns a Store over dir with the default prefixes.
func NewStore(inputDir, outputDir string) Store {
	return Store{
		InputDir:       inputDir,
		OutputDir:      outputDir,
		InstancePrefix: DefaultInstancePrefix,
		SolutionPrefix: DefaultSolutionPrefix,
	}
}

// InstancePath returns the path of instance n, e.g. dir/instance07.
func (s Store) InstancePath(n int) string {
	return filepath.Join(s.InputDir, fmt.Sprintf("%s%02d", s.InstancePrefix, n))
}

// SolutionPath returns the path of the solution to instance n.
func (s Store) SolutionPath(n int) string {
	return filepath.Join(s.OutputDir, fmt.Sprintf("%s%02d", s.SolutionPrefix, n))
}

// ParseNumber extracts the instance number from a file name such as
// "instance07". It reports false for names that are not instance files.
func (s Store) ParseNumber(name string) (int, bool) {
	base := filepath.Base(name)
	rest, ok := strings.CutPrefix(base, s.InstancePrefix)
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}

// Load reads instance n. A missing file yields ErrNotFound.
func (s Store) Load(n int) ([]separator.Point, error) {
	path := s.InstancePath(n)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}

		return nil, err
	}
	defer f.Close()

	points, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return points, nil
}

// Save writes the solution to instance n, creating OutputDir if needed.
func (s Store) Save(n int, lines []separator.Line) error {
	if s.OutputDir != "" {
		if err := os.MkdirAll(s.OutputDir, 0o755); err != nil {
			return fmt.Errorf("instance: create output dir: %w", err)
		}
	}
	f, err := os.Create(s.SolutionPath(n))
	if err != nil {
		return err
	}
	if err = WriteSolution(f, lines); err != nil {
		f.Close()

		return fmt.Errorf("%s: %w", s.SolutionPath(n), err)
	}

	return f.Close()
}

// LoadSolution reads the solution previously saved for instance n.
func (s Store) LoadSolution(n int) ([]separator.Line, error) {
	path := s.SolutionPath(n)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}

		return nil, err
	}
	defer f.Close()

	lines, err := ReadSolution(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return lines, nil
}
