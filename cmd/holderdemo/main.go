// cmd/holderdemo/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sghaida/valueholder/app"
	"github.com/sghaida/valueholder/config"
	"github.com/sghaida/valueholder/di"
	"github.com/sghaida/valueholder/holder"
)

// int32Flag parses a base-10 operand and rejects values outside the int32 range.
type int32Flag int32

func (f *int32Flag) String() string { return strconv.FormatInt(int64(*f), 10) }

func (f *int32Flag) Set(v string) error {
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return err
	}
	*f = int32Flag(n)
	return nil
}

// newRegistry provides the optional holder deps. Tests replace it.
var newRegistry = func(sink holder.Sink) di.Registry {
	return di.NewMapRegistry().Provide(app.KeySink, sink)
}

// run executes the demo and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
//
// Diagnostics follow the config's mode; stdout and stderr are the streams
// used for "stdout" and "stderr". Exit codes: 0 ok, 2 usage or config error,
// 1 wiring error.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("holderdemo", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.String("config", "", "optional YAML config file")
	a, b := int32Flag(2), int32Flag(3)
	flags.Var(&a, "a", "first combine operand (int32)")
	flags.Var(&b, "b", "second combine operand (int32)")
	discardDemo := flags.Bool("discard-demo", false, "also run CreateAndDiscard once")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() > 0 {
		_, _ = fmt.Fprintln(stderr, "usage: holderdemo [-config file.yaml] [-a N] [-b N] [-discard-demo]")
		return 2
	}

	cfg, err := config.Load(strings.TrimSpace(*configPath))
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	sink := app.SinkFor(cfg, stdout, stderr)

	svc, err := app.NewSession(cfg, newRegistry(sink), stdout)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	session := svc.Val

	session.Combine(int32(a), int32(b))
	session.Combine(-1, 1)
	session.Report()

	if *discardDemo {
		holder.CreateAndDiscard(sink)
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
