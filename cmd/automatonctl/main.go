// Command automatonctl is a non-interactive demonstration CLI over
// automatonkit's core pipeline. It is not the drawing surface spec section
// 1 excludes from scope: it never renders a graph or opens a window — but
// it does offer the same three entry points
// original_source/ConversorAutomatas.py's AutomatonTypeSelector did
// (regex, hand-authored ε-NFA, hand-authored NFA) via --mode, minus the
// Tkinter dialog: the "drawn" automaton is read from a states/edges/start
// YAML file (automaton.ParseYAML) instead of a canvas.
package main

import (
	"fmt"
	"os"

	"github.com/projectdiscovery/gologger"
	flag "github.com/spf13/pflag"

	"github.com/coregx/automatonkit/automaton"
	"github.com/coregx/automatonkit/config"
	"github.com/coregx/automatonkit/fsm"
	"github.com/coregx/automatonkit/regexfe"
)

// stage selects which point in the pipeline to export, plus the final DFA
// this toolkit adds on top of ConversorAutomatas.py's three views.
type stage string

const (
	stagePostfix stage = "postfix"
	stageENFA    stage = "enfa"
	stageNFA     stage = "nfa"
	stageDFA     stage = "dfa"
)

// mode selects the pipeline's entry point, mirroring
// ConversorAutomatas.py:13-48's AutomatonTypeSelector: build from a regex,
// or start from a hand-authored automaton description file already at the
// ε-NFA or NFA stage.
type mode string

const (
	modeRegex mode = "regex"
	modeENFA  mode = "enfa"
	modeNFA   mode = "nfa"
)

func main() {
	var (
		regex      = flag.StringP("regex", "r", "", "infix regex to compile (required for --mode=regex)")
		input      = flag.StringP("input", "i", "", "hand-authored automaton YAML file (required for --mode=enfa or --mode=nfa)")
		out        = flag.StringP("output", "o", "", "export file to write (YAML); defaults to stdout")
		configPath = flag.StringP("config", "c", "", "path to a TOML configuration file")
		modeFlag   = flag.StringP("mode", "m", string(modeRegex), "pipeline entry point: regex, enfa, nfa")
		stageFlag  = flag.StringP("stage", "s", string(stageDFA), "pipeline stage to export: postfix, enfa, nfa, dfa")
	)
	flag.Parse()

	md := mode(*modeFlag)
	switch md {
	case modeRegex:
		if *regex == "" {
			gologger.Fatal().Msgf("--regex is required for --mode=regex")
		}
	case modeENFA, modeNFA:
		if *input == "" {
			gologger.Fatal().Msgf("--input is required for --mode=%s", md)
		}
	default:
		gologger.Fatal().Msgf("unknown --mode %q: want regex, enfa, or nfa", md)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		gologger.Fatal().Msgf("%v", err)
	}
	if md == modeRegex {
		if err := cfg.CheckLength(*regex); err != nil {
			gologger.Fatal().Msgf("%v", err)
		}
	}

	if err := run(cfg, md, *regex, *input, stage(*stageFlag), *out); err != nil {
		gologger.Fatal().Msgf("%v", err)
	}
}

func run(cfg config.Config, md mode, regex, input string, st stage, out string) error {
	var epsNFA *automaton.Automaton

	switch md {
	case modeRegex:
		postfix, err := regexfe.CompileToPostfixConfig(regex, cfg.RegexFEConfig())
		if err != nil {
			return fmt.Errorf("validating %q: %w", regex, err)
		}
		gologger.Info().Msgf("postfix: %s", postfix)
		if st == stagePostfix {
			return writeOut(out, []byte(postfix+"\n"))
		}
		epsNFA, err = fsm.BuildFromPostfix(postfix)
		if err != nil {
			return fmt.Errorf("building epsilon-NFA: %w", err)
		}
	case modeENFA:
		if st == stagePostfix {
			return fmt.Errorf("--stage=postfix has no meaning for --mode=enfa: there is no regex to render as postfix")
		}
		m, err := readAutomaton(input)
		if err != nil {
			return err
		}
		epsNFA = m
	case modeNFA:
		if st == stagePostfix || st == stageENFA {
			return fmt.Errorf("--stage=%s has no meaning for --mode=nfa: the input is already past that stage", st)
		}
		nfa, err := readAutomaton(input)
		if err != nil {
			return err
		}
		return finishFromNFA(cfg, nfa, st, out)
	}

	if st == stageENFA {
		return writeExport(out, epsNFA)
	}

	nfa, err := fsm.RemoveEpsilons(epsNFA)
	if err != nil {
		return fmt.Errorf("removing epsilon transitions: %w", err)
	}
	return finishFromNFA(cfg, nfa, st, out)
}

// finishFromNFA runs the remaining stages (NFA export or subset
// construction to DFA) once an ε-free NFA is in hand, whether it arrived
// via the regex/ε-NFA pipeline or was read directly from a --mode=nfa file.
func finishFromNFA(cfg config.Config, nfa *automaton.Automaton, st stage, out string) error {
	if st == stageNFA {
		return writeExport(out, nfa)
	}

	dfa, err := automaton.SubsetConstructLimit(nfa, cfg.MaxDFAStates)
	if err != nil {
		return fmt.Errorf("subset construction: %w", err)
	}
	gologger.Info().Msgf("DFA has %d states", dfa.Len())
	return writeExport(out, dfa)
}

// readAutomaton loads a hand-authored automaton description file — the
// --mode=enfa/--mode=nfa counterpart to ConversorAutomatas.py's canvas-drawn
// automaton input, written down as YAML instead of drawn.
func readAutomaton(path string) (*automaton.Automaton, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	m, err := automaton.ParseYAML(body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	gologger.Info().Msgf("loaded %d states from %s", m.Len(), path)
	return m, nil
}

func writeExport(out string, m *automaton.Automaton) error {
	body, err := m.ToExport().YAML()
	if err != nil {
		return fmt.Errorf("marshaling export: %w", err)
	}
	return writeOut(out, body)
}

func writeOut(path string, body []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(body)
		return err
	}
	return os.WriteFile(path, body, 0o644)
}
