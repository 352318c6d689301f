package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/zephyrtronium/calc"
)

func main() {
	log.SetFlags(0)
	var (
		inname, cfgname string
		cfg             = defaultConfig()
	)
	flag.StringVar(&inname, "in", "", "input file with one expression per line (default stdin if no args given)")
	flag.StringVar(&cfgname, "config", "", "YAML config file; flags override its settings")
	flag.BoolVar(&cfg.Degrees, "deg", cfg.Degrees, "take trigonometric arguments in degrees")
	flag.BoolVar(&cfg.Symbolic, "sym", cfg.Symbolic, "print exact forms of trigonometric functions in degree mode")
	flag.IntVar(&cfg.Places, "places", cfg.Places, "decimal places to print, or negative for 12 significant digits")
	flag.IntVar(&cfg.Capacity, "cap", cfg.Capacity, "maximum number of tokens in an expression")
	flag.BoolVar(&cfg.Echo, "echo", cfg.Echo, "print postfix forms")
	flag.Parse()

	if cfgname != "" {
		fc, err := loadConfig(cfgname, defaultConfig())
		if err != nil {
			log.Fatal(err)
		}
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "deg":
				fc.Degrees = cfg.Degrees
			case "sym":
				fc.Symbolic = cfg.Symbolic
			case "places":
				fc.Places = cfg.Places
			case "cap":
				fc.Capacity = cfg.Capacity
			case "echo":
				fc.Echo = cfg.Echo
			}
		})
		cfg = fc
	}
	if cfg.Capacity <= 0 {
		log.Fatalf("capacity (%d) must be positive", cfg.Capacity)
	}

	srcs := flag.Args()
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		lines, err := readLines(f)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
		srcs = append(lines, srcs...)
	}

	s := session{cfg: cfg}
	for _, src := range srcs {
		fmt.Println(s.line(src))
	}
}

// session evaluates lines of input with fixed settings.
type session struct {
	cfg config
}

// line evaluates one expression and formats its result or error.
func (s *session) line(src string) string {
	var b strings.Builder
	opts := []calc.ParseOption{calc.Capacity(s.cfg.Capacity)}
	if s.cfg.Echo {
		a, err := calc.ParseString(src, opts...)
		if err != nil {
			return calc.Describe(err)
		}
		b.WriteString(a.String())
		b.WriteString(" : ")
	}
	var (
		r   calc.Result
		err error
	)
	if s.cfg.Symbolic {
		r, err = calc.Calculate(src, s.cfg.Degrees, opts...)
	} else {
		r.Value, err = calc.Evaluate(src, s.cfg.Degrees, opts...)
	}
	if err != nil {
		b.WriteString(calc.Describe(err))
		return b.String()
	}
	if r.Exact {
		b.WriteString(r.Symbolic)
		b.WriteString(" = ")
	}
	b.WriteString(format(r.Value, s.cfg.Places))
	return b.String()
}

// format formats a result for display.
func format(v float64, places int) string {
	if places < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', 12, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(int32(places))
}

// readLines reads the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return lines, nil
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}
