// Command isodate parses, formats and compares ISODate strings.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ngrash/go-isodate/internal/logging"
	"github.com/ngrash/go-isodate/isodate"
)

// cli struct represents all command-line commands, fields and flags.
var cli struct {
	Debug    bool   `help:"Enable debug mode."`
	LogLevel string `default:"info" enum:"debug,info,warn,error" help:"Log level: '${enum}'."`

	Parse struct {
		Dates     []string `name:"date" arg:"" help:"Date strings to parse."`
		ExtJSON   bool     `name:"ext-json" help:"Print each date as an Extended JSON document."`
		Canonical bool     `help:"Use canonical instead of relaxed Extended JSON."`
	} `cmd:"" help:"Parse dates and print their canonical form and epoch milliseconds."`

	Format struct {
		Millis []int64 `name:"millis" arg:"" help:"Milliseconds since the Unix epoch. Negative values must follow all flags."`
	} `cmd:"" help:"Format epoch milliseconds."`

	Diff struct {
		A string `arg:"" help:"First date."`
		B string `arg:"" help:"Second date."`
	} `cmd:"" help:"Compare two dates field by field after normalization."`
}

func newParser() (*kong.Kong, error) {
	return kong.New(&cli, kong.DefaultEnvars("ISODATE"))
}

// escapeNegative inserts "--" before the run of numbers that contains the first
// negative one, so that kong reads them as positional arguments, not short flags.
func escapeNegative(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if len(arg) < 2 || arg[0] != '-' || !isInt(arg) {
			continue
		}

		for i > 0 && isInt(args[i-1]) {
			i--
		}

		res := make([]string, 0, len(args)+1)
		res = append(res, args[:i]...)
		res = append(res, "--")
		return append(res, args[i:]...)
	}
	return args
}

func isInt(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

func main() {
	parser, err := newParser()
	if err != nil {
		panic(err)
	}

	kongCtx, err := parser.Parse(escapeNegative(os.Args[1:]))
	parser.FatalIfErrorf(err)

	level, err := zapcore.ParseLevel(cli.LogLevel)
	if err != nil {
		kongCtx.FatalIfErrorf(err)
	}
	if cli.Debug {
		level = zapcore.DebugLevel
	}
	logging.Setup(level)
	logger := zap.S()

	cmd := kongCtx.Command()
	logger.Debugf("Command: %q", cmd)

	switch cmd {
	case "parse <date>":
		err = parseDates(os.Stdout, cli.Parse.Dates, cli.Parse.ExtJSON, cli.Parse.Canonical, logger)
	case "format <millis>":
		err = formatMillis(os.Stdout, cli.Format.Millis)
	case "diff <a> <b>":
		err = diffDates(os.Stdout, cli.Diff.A, cli.Diff.B)
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		logger.Fatal(err)
	}
}

// parseDates writes one line per date. It stops at the first invalid date.
func parseDates(w io.Writer, dates []string, extJSON, canonical bool, logger *zap.SugaredLogger) error {
	for _, s := range dates {
		t, err := isodate.Parse(s)
		if err != nil {
			return err
		}
		logger.Debugw("Parsed", "input", s, "fields", t.Fields())

		if extJSON {
			b, err := bson.MarshalExtJSON(bson.D{{Key: "date", Value: t}}, canonical, false)
			if err != nil {
				return fmt.Errorf("marshal %q: %w", s, err)
			}
			fmt.Fprintln(w, string(b))
			continue
		}

		fmt.Fprintf(w, "%s\t%d\n", t, int64(t))
	}
	return nil
}

func formatMillis(w io.Writer, millis []int64) error {
	for _, ms := range millis {
		t := isodate.Instant(ms)
		if !t.Valid() {
			return fmt.Errorf("%d: %w", ms, isodate.ErrDateOutOfRange)
		}
		fmt.Fprintln(w, isodate.Format(t))
	}
	return nil
}

func diffDates(w io.Writer, a, b string) error {
	at, err := isodate.Parse(a)
	if err != nil {
		return err
	}
	bt, err := isodate.Parse(b)
	if err != nil {
		return err
	}

	if diff := cmp.Diff(at.Fields(), bt.Fields()); diff != "" {
		fmt.Fprintln(w, "dates are different: -A +B")
		fmt.Fprintln(w, diff)
	} else {
		fmt.Fprintln(w, "dates are identical")
	}
	return nil
}
