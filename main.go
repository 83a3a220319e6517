// hex2array converts the data records of an Intel HEX firmware image into a
// C array literal suitable for embedding with PROGMEM.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"

	"github.com/yath/hex2array/internal/carray"
	"github.com/yath/hex2array/internal/convert"
	"github.com/yath/hex2array/internal/ihex"
	"github.com/yath/hex2array/internal/input"
)

const (
	exitOK        = 0
	exitFailure   = 1
	exitUsage     = 2
	exitNotFound  = 3
	exitRead      = 4
	exitMalformed = 5
)

func exitCode(err error) int {
	k, ok := ihex.KindOf(err)
	if !ok {
		return exitFailure
	}
	switch k {
	case ihex.KindNotFound:
		return exitNotFound
	case ihex.KindRead:
		return exitRead
	case ihex.KindMalformed:
		return exitMalformed
	}
	return exitFailure
}

func convertFile(stdout io.Writer, path string) error {
	f, err := input.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	st, err := convert.Run(stdout, f, carray.PROGMEM)
	if err != nil {
		return err
	}

	glog.Infof("Wrote %d bytes from %d data records of %v", st.Bytes, st.Records, path)
	return nil
}

// run returns the process exit code. Failures are reported on stdout, after
// any output already produced.
func run(args []string, stdout io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintf(stdout, "Usage: %s <hex_file_path>\n", filepath.Base(os.Args[0]))
		return exitUsage
	}

	if err := convertFile(stdout, args[0]); err != nil {
		glog.Errorf("can't convert %v: %v", args[0], err)
		fmt.Fprintf(stdout, "An error occurred: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}

func main() {
	// stdout carries the array, keep diagnostics off it.
	if err := flag.Set("logtostderr", "true"); err != nil {
		glog.Exitf("can't log to stderr: %v", err)
	}
	flag.Parse()

	code := run(flag.Args(), os.Stdout)
	glog.Flush()
	os.Exit(code)
}
