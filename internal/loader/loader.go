// Package loader reads process batches from files and readers.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// LoadFile opens path and decodes it as a YAML batch for .yaml/.yml files,
// or as a whitespace separated text batch otherwise.
func LoadFile(path string) (core.Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.Batch{}, fmt.Errorf("%w: opening %s: %v", core.ErrIOFailure, path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.Warnf("closing %s: %v", path, err)
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAMLBatch(f)
	default:
		return LoadBatch(f)
	}
}

const maxPrealloc = 1024

// LoadBatch decodes the text batch format: a process count N followed by N
// "arrival burst" integer pairs, all whitespace separated. Anything after the
// N-th pair is ignored. Ids are assigned 1-based in the order read.
func LoadBatch(r io.Reader) (core.Batch, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("%w: reading %s: %v", core.ErrIOFailure, what, err)
			}
			return 0, fmt.Errorf("%w: missing %s", core.ErrInvalidInput, what)
		}
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q is not an integer", core.ErrInvalidInput, what, scanner.Text())
		}
		return v, nil
	}

	count, err := next("process count")
	if err != nil {
		return core.Batch{}, err
	}
	if count < 0 {
		return core.Batch{}, fmt.Errorf("%w: negative process count %d", core.ErrInvalidInput, count)
	}

	// count is untrusted until the pairs are read
	records := make([]core.Record, 0, min(count, maxPrealloc))
	for i := 1; i <= count; i++ {
		arrival, err := next(fmt.Sprintf("arrival time of process %d", i))
		if err != nil {
			return core.Batch{}, err
		}
		burst, err := next(fmt.Sprintf("burst time of process %d", i))
		if err != nil {
			return core.Batch{}, err
		}
		records = append(records, core.Record{ArrivalTime: arrival, BurstTime: burst})
	}

	logrus.Debugf("loaded %d processes", len(records))
	return core.NewBatch(count, records)
}
