package peano

import (
	"github.com/pkg/errors"

	"github.com/marrowlake/eqprover/internal/surface"
	"github.com/marrowlake/eqprover/pkg/axiom"
	"github.com/marrowlake/eqprover/pkg/logic"
)

// LogicDomain is the logical layer instantiated over Peano arithmetic,
// shared by every caller in this package and by the CLI.
var LogicDomain = logic.NewLogicDomain[*Expr, Pattern](Peano{})

// Rule is the rewrite rule type this domain's compiled axioms produce.
type Rule = axiom.Rule[*Expr, Pattern]

// axiomSource pairs an axiom's name with its surface-syntax text, per §4.8.
type axiomSource struct {
	name string
	text string
}

var axiomSources = []axiomSource{
	{"reflexivity", "FORALL (EQ (/0) (/0))"},
	{"symmetry", "FORALL (FORALL (IMPLIES (EQ (/1) (/0)) (EQ (/0) (/1))))"},
	{"additive-identity", "FORALL (FORALL (IMPLIES (EQ (PLUS (/1) (0)) (/0)) (EQ (/1) (/0))))"},
	{"additive-successor", "FORALL (FORALL (FORALL (IMPLIES (EQ (PLUS (/2) (S(/1))) (/0)) (EQ (S(PLUS (/2) (/1))) (/0)))))"},
	{"successor-injectivity", "FORALL (FORALL (IMPLIES (EQ (S(/1)) (S(/0))) (EQ (/1) (/0))))"},
	{"successor-never-self", "FORALL (NOT (EQ (/0) (S(/0))))"},
}

// Axioms parses and compiles the six reference Peano axioms (§4.8) into
// rewrite rules, exercising the parser, the builder and the axiom compiler
// every time this package is used — there is no separate hand-built rule
// table to fall out of sync with the surface syntax.
func Axioms() ([]Rule, error) {
	var rules []Rule
	for _, src := range axiomSources {
		compiled, err := CompileAxiom(src.name, src.text)
		if err != nil {
			return nil, err
		}
		rules = append(rules, compiled...)
	}
	return rules, nil
}

// CompileAxiom parses and compiles a single `name: formula` axiom source
// through the same parser/builder/compiler path Axioms uses, so a
// user-supplied axiom file is held to the same rules as the built-in set.
func CompileAxiom(name, text string) ([]Rule, error) {
	node, err := surface.Parse(text)
	if err != nil {
		return nil, errors.Wrapf(err, "axiom %q", name)
	}
	expr, err := BuildLogic(node)
	if err != nil {
		return nil, errors.Wrapf(err, "axiom %q", name)
	}
	return axiom.Compile(LogicDomain, name, expr, VarsIn)
}
