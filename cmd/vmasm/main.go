// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"

	"github.com/ezrec/vmasm/keyword"
	"github.com/ezrec/vmasm/parser"
)

func main() {
	var keywords string
	var dump bool
	var verbose bool

	flag.StringVar(&keywords, "k", "", ".star keyword file to add to the instruction set")
	flag.BoolVar(&dump, "d", false, "Dump the intermediate representation")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: %v [-k keywords.star] [-d] [-v] source.asm", os.Args[0])
	}
	source := flag.Arg(0)

	table := keyword.Default()
	if len(keywords) != 0 {
		inf, err := os.Open(keywords)
		if err != nil {
			log.Fatalf("%v: %v", keywords, err)
		}
		defer inf.Close()

		extra, err := keyword.Load(keywords, inf)
		if err != nil {
			log.Fatalf("%v: %v", keywords, err)
		}
		table, err = table.Extend(extra...)
		if err != nil {
			log.Fatalf("%v: %v", keywords, err)
		}
	}

	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	defer inf.Close()

	p := &parser.Parser{Verbose: verbose, Keywords: table}
	rep, err := p.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	if dump {
		for _, ls := range rep.Statements() {
			pp.Println(ls)
		}
	}

	for _, msg := range p.Reporter.All() {
		fmt.Fprintf(os.Stderr, "%v:%v\n", source, msg)
	}

	if p.Reporter.Len() != 0 {
		os.Exit(1)
	}
}
