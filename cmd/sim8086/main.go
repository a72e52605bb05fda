// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/sim8086/cpu"
	"github.com/ezrec/sim8086/monitor"
	"github.com/ezrec/sim8086/translate"
)

func main() {
	var input string
	var output string
	var verbose bool
	var hardware bool
	var lang string

	flag.StringVar(&input, "i", "-", "Monitor script input")
	flag.StringVar(&output, "o", "-", "Monitor output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&hardware, "hw", false, "Reset to the power-on CS:IP of FFFF:0000")
	flag.StringVar(&lang, "lang", "", "Message language (BCP 47), default from locale")

	flag.Parse()

	err := translate.SetLanguage(lang)
	if err != nil {
		log.Fatalf("%v: -lang %v: %v", os.Args[0], lang, err)
	}

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	mon := monitor.NewMonitor()
	mon.Verbose = verbose
	if hardware {
		mon.Regs.ResetState = cpu.HardwareReset()
	}
	mon.Store.Reset()

	if output == "-" {
		mon.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		mon.Output = ouf
	}

	inf := os.Stdin
	if input != "-" {
		inf, err = os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
	}

	err = mon.Run(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
}
