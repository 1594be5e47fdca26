// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command pulsenet reads a module network netlist, then prints the product of
// low and high pulse counts over a number of presses and the number of presses
// needed for a target module to receive a low pulse.
//
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/db47h/pulsenet"
	"github.com/db47h/pulsenet/internal/config"
	"github.com/db47h/pulsenet/internal/netlist"
	"github.com/db47h/pulsenet/internal/report"
	"github.com/db47h/pulsenet/internal/tui"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

const version = "0.3.0"

func checkUpdate(explicit bool) {
	res, err := latest.Check(&latest.GithubTag{Owner: "db47h", Repository: "pulsenet"}, version)
	if err != nil {
		if explicit {
			log.Print("update check failed: ", err)
		}
		return
	}
	if res.Outdated {
		fmt.Printf("pulsenet %s is available (you have %s)\n", res.Current, version)
	} else if explicit {
		fmt.Printf("pulsenet %s is up to date\n", version)
	}
}

func readNetwork(c *config.Config) (*pulsenet.Network, error) {
	var r io.Reader = os.Stdin
	name := "stdin"
	if !c.Stdin() {
		name = c.Input
		f, err := os.Open(c.Input)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		defer f.Close()
		r = f
	}
	specs, err := netlist.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	n, err := pulsenet.Build(specs)
	return n, errors.Wrap(err, "build network")
}

// run computes both results on separate copies of n.
//
func run(n *pulsenet.Network, c *config.Config) *report.Report {
	r := &report.Report{
		Modules: n.Len(),
		Sinks:   len(n.Sinks()),
		Presses: c.Presses,
	}
	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(2)
	go func(n *pulsenet.Network) {
		defer wg.Done()
		n.Reset()
		r.Lows, r.Highs = n.PressN(c.Presses)
	}(n.Clone())
	go func(n *pulsenet.Network) {
		defer wg.Done()
		r.Analysis, r.Err = n.Analyze(c.Target, c.MaxPresses)
		if r.Err != nil {
			r.Analysis = nil
		}
	}(n.Clone())
	wg.Wait()
	r.Elapsed = time.Since(start)
	return r
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("pulsenet: ")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pulsenet [options] [-i file]\n\n")
		fmt.Fprintf(os.Stderr, "pulsenet simulates a pulse module network described by a netlist.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}
	config.AddFlags(pflag.CommandLine)
	cfgFile := pflag.StringP("config", "c", "", "read settings from a YAML `file`")
	tuiFlag := pflag.Bool("tui", false, "step through presses interactively")
	verbose := pflag.BoolP("verbose", "v", false, "log network and analysis details")
	versionFlag := pflag.BoolP("version", "V", false, "print version information")
	updateFlag := pflag.BoolP("update", "u", false, "check for a newer release")
	helpFlag := pflag.BoolP("help", "h", false, "show this help message")
	pflag.Parse()

	switch {
	case *helpFlag:
		pflag.Usage()
		return
	case *versionFlag:
		fmt.Println("pulsenet", version)
		return
	case *updateFlag:
		checkUpdate(true)
		return
	}
	if pflag.NArg() > 0 {
		pflag.Usage()
		os.Exit(2)
	}

	c, err := config.Load(*cfgFile, pflag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}
	n, err := readNetwork(&c)
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		log.Printf("%d modules, %d sinks", n.Len(), len(n.Sinks()))
		for _, f := range n.Feeders(c.Target) {
			log.Printf("%s is fed by %s %s with inputs %v", c.Target, f.Kind(), f.Name(), f.Inputs())
		}
	}

	if *tuiFlag {
		if err = tui.Run(n, c.Target); err != nil {
			log.Fatal(err)
		}
		return
	}

	r := run(n, &c)
	if *verbose {
		if r.Err != nil {
			log.Printf("%+v", r.Err)
		} else {
			log.Printf("%s reached after %d presses, periods %v", c.Target, r.Analysis.Presses, r.Analysis.Periods)
		}
	}
	if err = r.Render(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
