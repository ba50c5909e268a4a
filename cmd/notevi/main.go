// Command notevi is a minimal terminal reference host for the
// interpreter: it opens one file in a full-screen modal editor.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/vikey/internal/config"
	"github.com/dshills/vikey/internal/interp"
	"github.com/dshills/vikey/internal/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	host, err := term.New(opts.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer host.Shutdown()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		host.RequestQuit()
	}()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}

	ip := interp.New(host, cfg)
	if err := host.Run(ip); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// options holds notevi's command-line flags.
type options struct {
	File       string
	ConfigPath string
}

func parseFlags() options {
	var opts options
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-config", "-c":
			if i+1 < len(args) {
				i++
				opts.ConfigPath = args[i]
			}
		case "-h", "-help", "--help":
			usage()
			os.Exit(0)
		default:
			if opts.File == "" {
				opts.File = args[i]
			}
		}
	}

	if opts.File == "" {
		fmt.Fprintln(os.Stderr, "Error: notevi requires a file argument")
		usage()
		os.Exit(1)
	}

	return opts
}

func usage() {
	fmt.Fprintf(os.Stderr, "notevi - modal terminal note editor\n\n")
	fmt.Fprintf(os.Stderr, "Usage: notevi [options] file\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	fmt.Fprintf(os.Stderr, "  -config, -c path   Path to a JSON settings file\n")
	fmt.Fprintf(os.Stderr, "  -help, -h          Show this message\n")
}
