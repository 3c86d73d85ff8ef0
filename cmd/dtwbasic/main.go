// Command dtwbasic computes the DTW distance (and optionally the alignment
// path) between two series stored as CSV files, one sample per row and one
// component per column.
package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/dtwbasic/dtw"
	"github.com/katalvlaran/dtwbasic/internal/log"
)

// config holds the parsed command line.
type config struct {
	xFile, yFile string
	opts         dtw.Options
	znorm        bool
	format       string
}

// output mirrors the host-side result record: distance, the two index
// sequences as emitted (end to start, 1-based) and the path length.
type output struct {
	Distance float64 `json:"distance" msgpack:"distance"`
	Index1   []int   `json:"index1,omitempty" msgpack:"index1,omitempty"`
	Index2   []int   `json:"index2,omitempty" msgpack:"index2,omitempty"`
	Path     int     `json:"path,omitempty" msgpack:"path,omitempty"`
}

func main() {
	defaults := dtw.DefaultOptions()

	xFile := flag.String("x", "", "CSV file with series X (required)")
	yFile := flag.String("y", "", "CSV file with series Y (required)")
	window := flag.Int("window", defaults.Window, "Band half-width, -1 for none")
	norm := flag.Float64("norm", defaults.Norm, "Exponent p of the Lp local distance")
	step := flag.Float64("step", defaults.Step, "Weight of diagonal steps")
	backtrack := flag.Bool("backtrack", false, "Also recover the alignment path")
	twoRows := flag.Bool("two-rows", false, "Keep only two grid rows (distance only)")
	znorm := flag.Bool("znorm", false, "Z-normalize every component before aligning")
	format := flag.String("format", "text", "Output format: text, json or msgpack")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	flag.Parse()

	if err := log.Init(*debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if *xFile == "" || *yFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -x and -y flags are required")
		flag.Usage()
		os.Exit(1)
	}

	cfg := config{
		xFile:  *xFile,
		yFile:  *yFile,
		znorm:  *znorm,
		format: *format,
		opts: dtw.Options{
			Window:     *window,
			Norm:       *norm,
			Step:       *step,
			Backtrack:  *backtrack,
			MemoryMode: dtw.FullMatrix,
		},
	}
	if *twoRows {
		cfg.opts.MemoryMode = dtw.TwoRows
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Errorw("dtw failed", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

// run loads both series, computes the result and writes it to w.
func run(cfg config, w io.Writer) error {
	x, err := loadSeries(cfg.xFile)
	if err != nil {
		return fmt.Errorf("loading %s: %w", cfg.xFile, err)
	}
	y, err := loadSeries(cfg.yFile)
	if err != nil {
		return fmt.Errorf("loading %s: %w", cfg.yFile, err)
	}
	log.Debugw("loaded series",
		"x_len", x.Len(), "y_len", y.Len(), "dim", x.Dim(),
		"window", cfg.opts.Window, "norm", cfg.opts.Norm, "step", cfg.opts.Step,
		"backtrack", cfg.opts.Backtrack, "memory_mode", cfg.opts.MemoryMode.String())

	if cfg.znorm {
		x, y = x.ZNormalize(), y.ZNormalize()
	}

	var ws *dtw.Workspace
	if cfg.opts.MemoryMode == dtw.TwoRows {
		ws = dtw.NewRollingWorkspace(y.Len())
	} else {
		ws = dtw.NewWorkspace(x.Len(), y.Len())
	}
	res, err := dtw.Compute(x, y, cfg.opts, ws)
	if errors.Is(err, dtw.ErrUnreachable) {
		log.Warnw("window too narrow for series lengths", "window", cfg.opts.Window)
	}
	if err != nil {
		return err
	}
	log.Infow("dtw computed", "distance", res.Distance, "path_len", res.PathLen)

	return writeResult(w, cfg.format, res)
}

// loadSeries reads a numeric CSV file without header.
func loadSeries(filename string) (dtw.Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return dtw.Series{}, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return dtw.Series{}, err
	}

	rows := make([][]float64, len(records))
	for i, record := range records {
		rows[i] = make([]float64, len(record))
		for k, val := range record {
			f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
			if err != nil {
				return dtw.Series{}, fmt.Errorf("row %d, col %d: %v", i, k, err)
			}
			rows[i][k] = f
		}
	}

	return dtw.FromRows(rows)
}

// writeResult encodes res in the requested format.
func writeResult(w io.Writer, format string, res *dtw.Result) error {
	out := output{Distance: res.Distance, Path: res.PathLen}
	if res.PathLen > 0 {
		out.Index1 = res.Index1[:res.PathLen]
		out.Index2 = res.Index2[:res.PathLen]
	}

	switch format {
	case "text":
		if _, err := fmt.Fprintf(w, "distance: %g\n", out.Distance); err != nil {
			return err
		}
		if out.Path == 0 {
			return nil
		}
		pairs := make([]string, 0, out.Path)
		for _, c := range res.Path() {
			pairs = append(pairs, fmt.Sprintf("(%d,%d)", c.I, c.J))
		}
		_, err := fmt.Fprintf(w, "path (%d): %s\n", out.Path, strings.Join(pairs, " "))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "msgpack":
		return msgpack.NewEncoder(w).Encode(out)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
