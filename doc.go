// File: argconf/doc.go

// Package argconf resolves the effective configuration of a command-line
// program from two sources: the invocation arguments themselves and an
// optional rc-style file referenced by an environment variable. Command-line
// values always win over file values.
//
// The rc file holds one argument token per line; blank lines and lines
// starting with '#' are ignored. File tokens are inserted between the program
// name and the invocation tokens before matching, so the matcher's
// last-occurrence-wins rule yields the override behavior without any explicit
// precedence logic.
//
// Quick Start:
//
//	desc := argconf.Description{
//	    Name:    "mytool",
//	    Version: "0.1",
//	    About:   "does the thing",
//	    Options: []argconf.Option{
//	        {Name: "listen", TakesArgument: true, Default: "localhost:9000", Help: "listen address"},
//	        {Name: "verbose", Help: "enable debug output"},
//	    },
//	}
//
//	resolved, err := argconf.Resolve(desc, os.Args, "MYTOOL_CONFIG_PATH")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	listen, _ := resolved.String("listen")
//	verbose, _ := resolved.Bool("verbose")
//
// Every option resolves to exactly one of three states: absent, present as a
// flag, or one-or-more values. The reserved --no-config flag disables file
// loading for a single run.
//
// Resolution is a single synchronous pass intended to run once at process
// startup; the returned Resolved value is read-only afterward.
package argconf
