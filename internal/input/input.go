// Package input opens firmware images for conversion.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/blacktop/lzss"
	"github.com/golang/glog"

	"github.com/yath/hex2array/internal/ihex"
)

// LZSSSuffix marks inputs that are LZSS-compressed Intel HEX text.
const LZSSSuffix = ".lzss"

// Open opens path for reading. Files named *.lzss are read in full and
// inflated; the returned reader then serves the inflated text. The caller
// must Close the result.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ihex.Wrap(ihex.KindNotFound, err)
		}
		return nil, ihex.Wrap(ihex.KindRead, err)
	}

	if !strings.HasSuffix(path, LZSSSuffix) {
		return f, nil
	}

	defer f.Close()
	cdata, err := io.ReadAll(f)
	if err != nil {
		return nil, ihex.Wrap(ihex.KindRead, fmt.Errorf("can't read %v: %w", path, err))
	}
	data := lzss.Decompress(cdata)
	glog.V(1).Infof("inflated %d bytes from %v to %d", len(cdata), path, len(data))

	return io.NopCloser(bytes.NewReader(data)), nil
}
