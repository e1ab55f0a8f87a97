// Command eqprover parses a theorem in the prover's surface syntax,
// compiles the reference Peano arithmetic axioms (or the axioms of the file
// given with --axioms, instead of them), and searches for a sequence of
// rewrites reducing the theorem to a truth value.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/marrowlake/eqprover/internal/surface"
	"github.com/marrowlake/eqprover/pkg/logic"
	"github.com/marrowlake/eqprover/pkg/peano"
	"github.com/marrowlake/eqprover/pkg/search"
)

type cli struct {
	Theorem  string `arg:"" help:"Theorem in the prover's surface syntax, e.g. \"EQ (S(0)) (S(0))\"."`
	Budget   int    `help:"Node budget for the proof search." default:"5000"`
	LogLevel string `help:"Logging verbosity (panic, fatal, error, warn, info, debug, trace)." default:"info"`
	Axioms   string `help:"Path to a file of \"name: formula\" axiom lines; defaults to the built-in Peano axiom set." type:"path"`
}

// loadAxioms reads "name: formula" lines from path, one axiom per line,
// blank lines and lines starting with # ignored, compiling each through the
// same path as the built-in set.
func loadAxioms(path string) ([]peano.Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening axiom file")
	}
	defer f.Close()

	var rules []peano.Rule
	scanner := bufio.NewScanner(f)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, text, ok := strings.Cut(line, ":")
		if !ok {
			return nil, errors.Errorf("%s:%d: expected \"name: formula\"", path, lineNum)
		}
		compiled, err := peano.CompileAxiom(strings.TrimSpace(name), strings.TrimSpace(text))
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", path, lineNum)
		}
		rules = append(rules, compiled...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading axiom file")
	}
	return rules, nil
}

func main() {
	var c cli
	kong.Parse(&c, kong.Description("An automated equational theorem prover for Peano arithmetic."))

	log := logrus.New()
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if err := run(c, log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c cli, log *logrus.Logger) error {
	node, err := surface.Parse(c.Theorem)
	if err != nil {
		return errors.Wrap(err, "parsing theorem")
	}

	theorem, err := peano.BuildLogic(node)
	if err != nil {
		return errors.Wrap(err, "building theorem")
	}

	var rules []peano.Rule
	if c.Axioms != "" {
		rules, err = loadAxioms(c.Axioms)
	} else {
		rules, err = peano.Axioms()
	}
	if err != nil {
		return errors.Wrap(err, "compiling axioms")
	}
	log.WithField("count", len(rules)).Info("loaded axioms")

	dom := peano.LogicDomain
	cost := search.NewReferenceCost[*logic.Expr[*peano.Expr]](dom.Size)
	goal := logic.ClassicalGoalChecker[*peano.Expr]

	start := time.Now()
	result, err := search.Run(context.Background(), dom, theorem, rules, cost, goal, c.Budget)
	elapsed := time.Since(start)
	if err != nil {
		return errors.Wrap(err, "searching for proof")
	}

	fmt.Printf("theorem: %s\n", c.Theorem)
	fmt.Printf("axioms loaded: %d\n", len(rules))
	for i, step := range result.History {
		fmt.Printf("%d. %s -> %s [%s]\n", i+1, peano.Render(step.Before), peano.Render(step.After), step.RuleName)
		log.WithFields(logrus.Fields{"step": i + 1, "rule": step.RuleName}).Debug("rewrite")
	}
	fmt.Println(result.Outcome.String())
	log.WithFields(logrus.Fields{
		"nodes_explored": result.NodesExplored,
		"frontier_peak":  result.FrontierPeak,
		"elapsed":        elapsed,
	}).Info("search finished")

	return nil
}
