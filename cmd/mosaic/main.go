// Command mosaic reassembles a tile file and prints the corner product and
// the roughness of the stitched image.
//
//	mosaic -input tiles.txt [-stamp stamp.txt] [-mirror] [-v]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tilemosaic/mosaic"
	"github.com/katalvlaran/tilemosaic/scan"
)

var log = logrus.New()

func main() {
	var (
		input   = flag.String("input", "", "tile file (default stdin)")
		stamp   = flag.String("stamp", "", "stamp art file (default sea monster)")
		mirror  = flag.Bool("mirror", false, "also search the mirrored image")
		verbose = flag.Bool("v", false, "log pipeline stages")
	)
	flag.Parse()

	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	st := scan.SeaMonster
	if *stamp != "" {
		s, err := readStamp(*stamp)
		if err != nil {
			log.WithError(err).Fatal("reading stamp")
		}
		st = s
	}

	in := os.Stdin
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			log.WithError(err).Fatal("opening input")
		}
		defer f.Close()
		in = f
	}

	rep, err := mosaic.SolveReader(in, st,
		mosaic.WithLogger(log),
		mosaic.WithMirrorSearch(*mirror),
	)
	if err != nil {
		log.WithError(err).Fatal("solving mosaic")
	}
	fmt.Println(rep.CornerProduct)
	fmt.Println(rep.Roughness)
}

func readStamp(path string) (*scan.Stamp, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return scan.ParseStamp(lines...)
}
