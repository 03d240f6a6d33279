// Package cli implements the fuzzygrep command-line driver: argument
// parsing, stdin scanning, and result formatting around the fuzzy package.
package cli

import (
	"strconv"

	"github.com/pkg/errors"
)

const Usage = `fuzzygrep filters lines read from stdin against a query, printing the
ones that pass a minimum fuzzy-match score in the order they were read.

Usage: fuzzygrep [options] QUERY

  -sw              Use the Smith-Waterman alignment engine instead of the
                    default bounded edit-distance engine
  -score FLOAT      Minimum score required to print a line (default: 0.85)
  -k N              Max edit distance for the edit-distance engine (default: 2)
  -h, -help         Show this message
`

// Options holds the parsed command-line configuration.
type Options struct {
	Query         string
	SmithWaterman bool
	MinScore      float64
	MaxEdit       int
	Help          bool
}

// DefaultOptions returns fuzzygrep's defaults: edit-distance engine,
// min_score 0.85, max_edit_distance 2.
func DefaultOptions() *Options {
	return &Options{MinScore: 0.85, MaxEdit: 2}
}

// ParseArgs hand-parses argv (excluding argv[0]), following the same
// next-string/switch shape as the teacher's own option parser, scaled down
// to the handful of flags this driver needs.
func ParseArgs(args []string) (*Options, error) {
	opts := DefaultOptions()

	nextString := func(i *int, message string) (string, error) {
		if *i+1 >= len(args) {
			return "", errors.New(message)
		}
		*i++
		return args[*i], nil
	}

	var queryGiven bool
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "-help", "--help":
			opts.Help = true
			return opts, nil
		case "-sw", "--sw":
			opts.SmithWaterman = true
		case "-score", "--score":
			str, err := nextString(&i, "-score requires a value")
			if err != nil {
				return nil, err
			}
			v, err := atof(str)
			if err != nil {
				return nil, err
			}
			if v < 0 || v > 1 {
				return nil, errors.Errorf("-score must be in [0,1], got %v", v)
			}
			opts.MinScore = v
		case "-k", "--k":
			str, err := nextString(&i, "-k requires a value")
			if err != nil {
				return nil, err
			}
			v, err := atoi(str)
			if err != nil {
				return nil, err
			}
			if v < 0 {
				return nil, errors.Errorf("-k must be >= 0, got %d", v)
			}
			opts.MaxEdit = v
		default:
			if queryGiven {
				return nil, errors.Errorf("unexpected extra argument: %q", arg)
			}
			opts.Query = arg
			queryGiven = true
		}
	}
	if !queryGiven && !opts.Help {
		return nil, errors.New("missing QUERY argument")
	}
	return opts, nil
}

func atoi(str string) (int, error) {
	n, err := strconv.Atoi(str)
	if err != nil {
		return 0, errors.Errorf("not a valid integer: %q", str)
	}
	return n, nil
}

func atof(str string) (float64, error) {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, errors.Errorf("not a valid number: %q", str)
	}
	return f, nil
}
