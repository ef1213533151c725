package main

import (
	"fmt"
	"log"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
)

type options struct {
	batch       bool
	quiet       bool
	interactive bool
	expr        string
	file        string
}

func parseArgs(args []string) (options, error) {
	var o options
	opts, _, err := getopt.Getopts(args, "bqie:f:")
	if err != nil {
		return o, err
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'b':
			o.batch = true
		case 'q':
			o.quiet = true
		case 'i':
			o.interactive = true
		case 'e':
			o.expr = opt.Value
		case 'f':
			o.file = opt.Value
		}
	}
	return o, nil
}

func main() {
	opts, err := parseArgs(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintf(os.Stderr, "usage: %s [-bqi] [-f file] [-e expr]\n", os.Args[0])
		os.Exit(2)
	}

	r := newREPL(os.Stdout, os.Stderr, opts.batch)

	// Files and expressions share one environment, files first.
	interactive := opts.interactive || (opts.expr == "" && opts.file == "")
	if interactive && !opts.quiet {
		r.banner()
	}
	if opts.file != "" {
		if err := r.loadFile(opts.file); err != nil {
			log.Fatalf("load %s: %s.", opts.file, err)
		}
	}
	if opts.expr != "" && !r.evalLine(opts.expr) && !interactive {
		os.Exit(1)
	}
	if interactive {
		r.run()
	}
}
