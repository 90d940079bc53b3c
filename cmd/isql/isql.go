package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/schemalex/sqlscript"
	"github.com/schemalex/sqlscript/exec"
	"github.com/schemalex/sqlscript/internal/errors"
	"go.uber.org/zap"
)

type options struct {
	File    string   `short:"f" long:"file" value-name:"script"`
	Help    bool     `short:"h" long:"help"`
	Version bool     `short:"v" long:"version"`
	DSN     string   `long:"dsn" value-name:"dsn"`
	Only    []string `long:"only" value-name:"kind"`
	Diff    bool     `long:"diff"`
	Debug   bool     `long:"debug"`
}

var rule = strings.Repeat("=", 60)

func main() {
	log.SetFlags(0)
	if err := _main(os.Args[1:], os.Stdout); err != nil {
		log.Printf("error: %s", err)
		os.Exit(1)
	}
}

func usage(dst io.Writer) {
	fmt.Fprintf(dst, `isql version %s

isql -f script [options...]
isql -h
isql -v

-f, --file script  Execute the statements in the given SQL script
-h, --help         Print out this help and exit
-v, --version      Print out the version and exit
--dsn dsn          Execute the statements against this MySQL database,
                   in one transaction, instead of printing them
--only kind        Only execute statements of this kind. May be repeated.
                   (Create, Insert, Select, Update, Delete, Alter, Drop, Other)
--diff             Print what comment stripping removes from the script,
                   and exit without executing anything
--debug            Log debug information to stderr

"script" may be a file path, or a URI.
Special URI schemes "mysql" and "local-git" are supported on top of
"file". If the special path "-" is used, it is treated as stdin.

Examples:
  isql -f scripts/sql/init.sql
  isql -f init.sql --only create --only insert
  isql -f init.sql --dsn "user:password@tcp(host:port)/dbname"
  isql -f "local-git:///path/to/repo?file=init.sql&commitish=HEAD" --diff

`, sqlscript.Version)
}

func _main(args []string, stdout io.Writer) error {
	var opts options
	parser := flags.NewParser(&opts, flags.PassDoubleDash)
	rest, err := parser.ParseArgs(args)
	if err != nil || len(rest) > 0 {
		usage(stdout)
		return nil
	}

	switch {
	case opts.Help:
		usage(stdout)
		return nil
	case opts.Version:
		fmt.Fprintf(stdout,
			"isql version %s, built with go %s for %s/%s\n",
			sqlscript.Version,
			runtime.Version(),
			runtime.GOOS,
			runtime.GOARCH,
		)
		return nil
	case opts.File == "":
		usage(stdout)
		return nil
	}

	logger := zap.NewNop()
	if opts.Debug {
		cfg := zap.NewDevelopmentConfig()
		cfg.DisableCaller = true
		l, err := cfg.Build()
		if err != nil {
			return errors.Wrap(err, `failed to create logger`)
		}
		logger = l
		defer logger.Sync()
	}

	runOptions := []exec.Option{exec.WithLogger(logger)}
	if len(opts.Only) > 0 {
		kinds := make([]sqlscript.Kind, 0, len(opts.Only))
		for _, s := range opts.Only {
			k, err := sqlscript.ParseKind(s)
			if err != nil {
				return errors.Wrap(err, `invalid --only`)
			}
			kinds = append(kinds, k)
		}
		runOptions = append(runOptions, exec.WithKinds(kinds...))
	}

	src, err := sqlscript.NewScriptSource(opts.File)
	if err != nil {
		return errors.Wrapf(err, `failed to create script source for "%s"`, opts.File)
	}

	// The whole script is read before anything is segmented or executed.
	var script bytes.Buffer
	if err := src.WriteScript(&script); err != nil {
		return errors.Wrap(err, `failed to read script`)
	}

	if opts.Diff {
		return sqlscript.WriteStripDiff(stdout, opts.File, script.Bytes())
	}

	fmt.Fprintf(stdout, "executing script: %s\n%s\n", opts.File, rule)

	stmts := sqlscript.New(sqlscript.WithLogger(logger)).Segment(script.Bytes())
	if len(stmts) == 0 {
		fmt.Fprintln(stdout, "no statements found")
		return nil
	}
	fmt.Fprintf(stdout, "found %d statements\n\n", len(stmts))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var report *exec.Report
	if opts.DSN != "" {
		report, err = exec.Deploy(ctx, sqlscript.NewMySQLSource(opts.DSN), stdout, stmts, runOptions...)
	} else {
		report, err = exec.Run(ctx, stdout, stmts, exec.NewPrinter(stdout), runOptions...)
	}
	if err != nil {
		return errors.Wrap(err, `failed to execute script`)
	}

	fmt.Fprintln(stdout, rule)
	if _, err := report.WriteTo(stdout); err != nil {
		return errors.Wrap(err, `failed to write summary`)
	}
	return nil
}
