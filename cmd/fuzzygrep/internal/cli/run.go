package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/asticode/go-astilog"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/fuzzygrep/fuzzygrep/fuzzy"
)

// initialScanBufSize and maxScanBufSize size bufio.Scanner's growable buffer
// so unusually long catalog lines (long file paths, SQL, log lines) don't
// trip bufio.ErrTooLong, the same sizing concern the teacher's reader.go
// handles with its own NUL/newline-delimited feed loop.
const (
	initialScanBufSize = 64 * 1024
	maxScanBufSize     = 1 << 20
)

// Run executes the filter: read lines from in, score each against
// opts.Query, and print the ones passing the min-score gate to out,
// preserving input order. It ignores SIGPIPE on unix via ignoreSigpipe so a
// downstream `head` doesn't turn an expected short read into a crash.
//
// Output is block-buffered through a bufio.Writer whenever out is a
// non-terminal *os.File (a pipe or redirected file), and flushed once
// scoring is done; writes straight to out when it's a terminal, so an
// interactive session still sees matches as they're produced rather than
// only at the end.
func Run(opts *Options, in io.Reader, out io.Writer) error {
	if opts.Help {
		fmt.Fprint(out, Usage)
		return nil
	}

	ignoreSigpipe()

	cfg := fuzzy.DefaultMatchConfig()
	cfg.MinScore = opts.MinScore
	cfg.EditDistance.MaxEditDistance = opts.MaxEdit
	if opts.SmithWaterman {
		cfg.Algorithm = fuzzy.AlgorithmSmithWaterman
	}
	cfg = fuzzy.NewMatchConfig(cfg)
	query := fuzzy.Prepare(opts.Query, cfg)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, initialScanBufSize), maxScanBufSize)

	w, flush := bufferedWriter(out)

	buf := fuzzy.NewScoringBuffer()
	var total, matched int
	for scanner.Scan() {
		total++
		line := scanner.Text()
		m, ok := fuzzy.Score(line, query, buf)
		if !ok {
			continue
		}
		matched++
		fmt.Fprintf(w, "%.4f\t%s\t%s\n", m.Score, m.Kind, line)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading stdin failed")
	}
	if err := flush(); err != nil {
		return errors.Wrap(err, "flushing output failed")
	}

	astilog.Debugf("fuzzygrep: %d/%d lines matched", matched, total)
	return nil
}

// bufferedWriter decides whether to block-buffer out: a non-terminal
// *os.File (redirected to a file or piped into another process) is wrapped
// in a bufio.Writer so fuzzygrep isn't paying a syscall per matched line;
// a terminal is written to directly so matches appear as they're found.
// The returned flush must be called before Run returns.
func bufferedWriter(out io.Writer) (io.Writer, func() error) {
	f, ok := out.(*os.File)
	if !ok || isatty.IsTerminal(f.Fd()) {
		return out, func() error { return nil }
	}
	bw := bufio.NewWriter(f)
	return bw, bw.Flush
}
