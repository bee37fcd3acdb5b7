// Command urinorm parses URIs, prints their normalized form and optionally
// resolves their hosts through DNS.
//
// Usage:
//
//	urinorm [flags] [uri ...]
//
// With no arguments URIs are read from stdin, one per line.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ghettovoice/gouri/dns"
	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/log"
	"github.com/ghettovoice/gouri/internal/util"
	"github.com/ghettovoice/gouri/uri"
)

func main() {
	var (
		resolve bool
		verbose bool
		quiet   bool
		ns      string
		timeout time.Duration
	)
	flag.BoolVar(&resolve, "resolve", false, "resolve the URI host to IP addresses")
	flag.BoolVar(&verbose, "v", false, "developer logging")
	flag.BoolVar(&quiet, "q", false, "disable logging")
	flag.StringVar(&ns, "ns", "", "DNS server address, defaults to the system resolver")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "DNS query timeout")
	flag.Parse()

	logger := log.Def
	switch {
	case quiet:
		logger = log.Noop
	case verbose:
		logger = log.Dev
	}

	resolver := &dns.Resolver{NameServer: ns, Timeout: timeout}
	logger.Debug("resolver configured", slog.Any("config", log.FmtValue(resolver, false)))

	var failed bool
	for _, raw := range inputs(flag.Args()) {
		if err := run(logger, resolver, raw, resolve, timeout); err != nil {
			if errorutil.IsGrammarErr(err) {
				fmt.Fprintf(os.Stderr, "urinorm: %s: not a valid URI: %s\n", raw, err)
			} else {
				fmt.Fprintf(os.Stderr, "urinorm: %s: %s\n", raw, err)
			}
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func inputs(args []string) []string {
	if len(args) > 0 {
		return args
	}
	var out []string
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		if ln := util.TrimSP(sc.Text()); ln != "" {
			out = append(out, ln)
		}
	}
	return out
}

func run(logger *slog.Logger, resolver *dns.Resolver, raw string, resolve bool, timeout time.Duration) error {
	u, err := uri.Parse(raw)
	if err != nil {
		return err
	}
	logger.Debug("parsed", slog.Any("input", log.StringValue(raw)), slog.Any("uri", u), slog.Bool("valid", u.IsValid()))
	fmt.Println(u)

	if !resolve || u.Host.IsZero() {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ips, err := resolver.LookupHost(ctx, u.Host)
	if err != nil {
		return err
	}
	for _, ip := range ips {
		fmt.Printf("\t%s\n", ip)
	}
	return nil
}
