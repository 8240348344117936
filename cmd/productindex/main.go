// Command productindex prints the coordinates of a flat index into the
// Cartesian product of sequences with the given lengths.
//
//  $ productindex 5 2 3
//  1 2
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calebcase/product/index"
)

// Error is the class of argument errors.
var Error = errs.Class("productindex")

// errUsage is returned when the arguments could not be understood. Usage has
// already been printed.
var errUsage = errors.New("usage")

func main() {
	err := run(os.Stdout, os.Stderr, os.Args[1:])
	if err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(stdout, stderr io.Writer, args []string) (err error) {
	fs := flag.NewFlagSet("productindex", flag.ContinueOnError)
	fs.SetOutput(stderr)

	useBig := fs.Bool("big", false, "use arbitrary precision integers")
	verbose := fs.Bool("v", false, "log inputs and result to stderr")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: productindex [-big] [-v] <index> [length...]")
		fs.PrintDefaults()
	}

	err = fs.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}

		return errUsage
	}

	if fs.NArg() < 1 {
		fs.Usage()

		return errUsage
	}

	log := newLogger(*verbose, stderr)
	defer func() { _ = log.Sync() }()

	var coords []string
	if *useBig {
		coords, err = decodeBig(log, fs.Arg(0), fs.Args()[1:])
	} else {
		coords, err = decode(log, fs.Arg(0), fs.Args()[1:])
	}
	if err != nil {
		log.Debug("decode failed", zap.Error(err))

		return err
	}

	_, err = fmt.Fprintln(stdout, strings.Join(coords, " "))

	return Error.Wrap(err)
}

func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)

	return zap.New(core)
}

func parseUint(name, s string) (v uint64, err error) {
	v, err = strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, Error.New("invalid %s %q: %v", name, s, err)
	}

	return v, nil
}

func decode(log *zap.Logger, indexArg string, lengthArgs []string) (coords []string, err error) {
	idx, err := parseUint("index", indexArg)
	if err != nil {
		return nil, err
	}

	lengths := make([]uint64, len(lengthArgs))
	for i, s := range lengthArgs {
		lengths[i], err = parseUint("length", s)
		if err != nil {
			return nil, err
		}
	}

	log.Debug("decoding",
		zap.Uint64("index", idx),
		zap.Uint64s("lengths", lengths))

	cs, err := index.DecodeN(idx, lengths)
	if err != nil {
		return nil, err
	}

	log.Debug("decoded", zap.Uint64s("coords", cs))

	coords = make([]string, len(cs))
	for i, c := range cs {
		coords[i] = strconv.FormatUint(c, 10)
	}

	return coords, nil
}

func parseBig(name, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, Error.New("invalid %s %q", name, s)
	}

	return v, nil
}

func decodeBig(log *zap.Logger, indexArg string, lengthArgs []string) (coords []string, err error) {
	idx, err := parseBig("index", indexArg)
	if err != nil {
		return nil, err
	}

	lengths := make([]*big.Int, len(lengthArgs))
	for i, s := range lengthArgs {
		lengths[i], err = parseBig("length", s)
		if err != nil {
			return nil, err
		}
	}

	log.Debug("decoding",
		zap.Stringer("index", idx),
		zap.Strings("lengths", lengthArgs))

	cs, err := index.DecodeBig(idx, lengths)
	if err != nil {
		return nil, err
	}

	coords = make([]string, len(cs))
	for i, c := range cs {
		coords[i] = c.String()
	}

	log.Debug("decoded", zap.Strings("coords", coords))

	return coords, nil
}
