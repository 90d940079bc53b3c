package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"

	flags "github.com/jessevdk/go-flags"
	"github.com/schemalex/sqlscript"
	"github.com/schemalex/sqlscript/internal/errors"
	"github.com/schemalex/sqlscript/lint"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type options struct {
	Version bool   `short:"v" long:"version"`
	Output  string `short:"o" long:"output" value-name:"file"`
	Indent  int    `short:"i" long:"indent" value-name:"number" default:"-1"`
	Debug   bool   `long:"debug"`
}

func main() {
	log.SetFlags(0)
	if err := _main(os.Args[1:], os.Stdout, afero.NewOsFs()); err != nil {
		log.Printf("error: %s", err)
		os.Exit(1)
	}
}

func usage(dst io.Writer) {
	fmt.Fprintf(dst, `sqllint version %s

sqllint -v
sqllint [options...] script

-v            Print out the version and exit
-o file       Output the result to the specified file (default: stdout)
-i number     Number of spaces to indent continuation lines with
              (default: keep the original indentation)
--debug       Log debug information to stderr

"script" may be a file path, or a URI.
Special URI schemes "mysql" and "local-git" are supported on top of
"file". If the special path "-" is used, it is treated as stdin.

Examples:

* Lint a local file
  sqllint /path/to/init.sql

* Lint a file in local git repository
  sqllint "local-git:///path/to/repo?file=init.sql&commitish=HEAD"

* Lint a script from stdin, indenting with 2 spaces
  .... | sqllint -i 2 -

`, sqlscript.Version)
}

func _main(args []string, stdout io.Writer, fs afero.Fs) error {
	var opts options
	rest, err := flags.ParseArgs(&opts, args)
	if err != nil {
		return errors.Wrap(err, `failed to parse arguments`)
	}

	if opts.Version {
		fmt.Fprintf(stdout,
			"sqllint version %s, built with go %s for %s/%s\n",
			sqlscript.Version,
			runtime.Version(),
			runtime.GOOS,
			runtime.GOARCH,
		)
		return nil
	}

	if len(rest) != 1 {
		usage(stdout)
		return errors.New("wrong number of arguments")
	}

	dst := stdout
	if len(opts.Output) > 0 {
		f, err := fs.OpenFile(opts.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return errors.Wrapf(err, `failed to open file %s for writing`, opts.Output)
		}
		defer f.Close()
		dst = f
	}

	var src sqlscript.ScriptSource
	if _, err := fs.Stat(rest[0]); err == nil {
		src = sqlscript.NewLocalFileSourceFs(fs, rest[0])
	} else {
		src, err = sqlscript.NewScriptSource(rest[0])
		if err != nil {
			return errors.Wrapf(err, `failed to create script source for "%s"`, rest[0])
		}
	}

	var lintOptions []lint.Option
	if opts.Debug {
		cfg := zap.NewDevelopmentConfig()
		cfg.DisableCaller = true
		logger, err := cfg.Build()
		if err != nil {
			return errors.Wrap(err, `failed to create logger`)
		}
		defer logger.Sync()
		lintOptions = append(lintOptions, lint.WithLogger(logger))
	}
	if opts.Indent >= 0 {
		lintOptions = append(lintOptions, lint.WithIndent(" ", opts.Indent))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := lint.New().Run(ctx, src, dst, lintOptions...); err != nil {
		return errors.Wrap(err, `failed to lint script`)
	}
	return nil
}
