package weightcache

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/golang/snappy"

	"github.com/katalvlaran/mcode/mcode"
)

var (
	// ErrCacheMiss is returned by LoadFile when no cache file exists.
	ErrCacheMiss = errors.New("weightcache: cache miss")

	// ErrMalformedLine reports a line that is not "id<TAB>weight".
	ErrMalformedLine = errors.New("weightcache: malformed line")
)

// nanToken encodes non-finite weights.
const nanToken = "NaN"

// compressedExt selects snappy framing in SaveFile and LoadFile.
const compressedExt = ".sz"

// Save writes w to dst in identifier order.
func Save(dst io.Writer, w mcode.Weights) error {
	bw := bufio.NewWriter(dst)
	for _, id := range slices.Sorted(maps.Keys(w)) {
		v := w[id]
		s := nanToken
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			s = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", id, s); err != nil {
			return fmt.Errorf("weightcache: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("weightcache: flush: %w", err)
	}
	return nil
}

// Load reads weights written by Save. Blank lines are ignored.
func Load(src io.Reader) (mcode.Weights, error) {
	w := make(mcode.Weights)
	sc := bufio.NewScanner(src)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			continue
		}
		id, raw, ok := strings.Cut(text, "\t")
		if !ok || id == "" {
			return nil, fmt.Errorf("%w: line %d", ErrMalformedLine, line)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, line, raw)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		w[id] = v
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("weightcache: read: %w", err)
	}
	return w, nil
}

// SaveFile writes w to path, creating or truncating it.
func SaveFile(path string, w mcode.Weights) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("weightcache: create: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("weightcache: close: %w", cerr)
		}
	}()

	if !strings.HasSuffix(path, compressedExt) {
		return Save(f, w)
	}
	sw := snappy.NewBufferedWriter(f)
	if err := Save(sw, w); err != nil {
		return err
	}
	if err := sw.Close(); err != nil {
		return fmt.Errorf("weightcache: compress: %w", err)
	}
	return nil
}

// LoadFile reads weights from path. A missing file yields ErrCacheMiss.
func LoadFile(path string) (mcode.Weights, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrCacheMiss, path)
	}
	if err != nil {
		return nil, fmt.Errorf("weightcache: open: %w", err)
	}
	defer f.Close()

	if strings.HasSuffix(path, compressedExt) {
		return Load(snappy.NewReader(f))
	}
	return Load(f)
}
