// Package terminal implements the portfolio's command-echo terminal: a
// transcript of input and output lines and a small fixed command set.
package terminal

import (
	"fmt"
	"strings"
)

// Prompt is shown in front of input lines by hosts. It is not stored in the
// transcript.
const Prompt = "visitor@portfolio:~$ "

const echoPrefix = "echo "

// LineKind tags a transcript line.
type LineKind int

const (
	LineInput LineKind = iota
	LineOutput
)

func (k LineKind) String() string {
	if k == LineInput {
		return "input"
	}
	return "output"
}

// Line is one transcript entry.
type Line struct {
	Kind LineKind
	Text string
}

// EffectKind says how a submitted command changed the transcript.
type EffectKind int

const (
	// EffectAppend recorded the input line followed by an output line.
	EffectAppend EffectKind = iota
	// EffectReset emptied the transcript.
	EffectReset
	// EffectAppendSilently recorded only the input line.
	EffectAppendSilently
)

func (k EffectKind) String() string {
	switch k {
	case EffectReset:
		return "reset"
	case EffectAppendSilently:
		return "append-silently"
	default:
		return "append"
	}
}

// Effect is the result of Submit. Text is the output line for EffectAppend.
type Effect struct {
	Kind EffectKind
	Text string
}

// Texts holds the fixed strings the interpreter answers with.
type Texts struct {
	Welcome string
	Help    string
	About   string
	Skills  string
}

// DefaultTexts returns the stock portfolio strings.
func DefaultTexts() Texts {
	return Texts{
		Welcome: `Welcome to the terminal. Type "help" to see available commands.`,
		Help:    "Available commands: about, skills, clear, echo [text]",
		About:   "Software Engineer currently focused on building and optimizing AI architectures.",
		Skills: "Languages/Frameworks: React, Node.js, Express.js, JavaScript \n" +
			"Concepts: Neural Networks (LSTM, PPO), Multi-threading, GPU Optimization",
	}
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithTexts replaces the default strings. Empty fields keep their defaults.
func WithTexts(t Texts) Option {
	return func(in *Interpreter) {
		if t.Welcome != "" {
			in.texts.Welcome = t.Welcome
		}
		if t.Help != "" {
			in.texts.Help = t.Help
		}
		if t.About != "" {
			in.texts.About = t.About
		}
		if t.Skills != "" {
			in.texts.Skills = t.Skills
		}
	}
}

// Interpreter owns one terminal session. It is not safe for concurrent use.
type Interpreter struct {
	texts      Texts
	transcript []Line
}

// New returns an interpreter whose transcript holds the welcome line.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{texts: DefaultTexts()}
	for _, opt := range opts {
		opt(in)
	}
	in.transcript = []Line{{Kind: LineOutput, Text: in.texts.Welcome}}
	return in
}

// Submit runs one line of user input against the transcript.
func (in *Interpreter) Submit(raw string) Effect {
	trimmed := strings.TrimSpace(raw)
	effect := in.evaluate(raw, trimmed)

	switch effect.Kind {
	case EffectReset:
		in.transcript = []Line{}
	case EffectAppendSilently:
		in.transcript = append(in.transcript, Line{Kind: LineInput, Text: raw})
	default:
		in.transcript = append(in.transcript,
			Line{Kind: LineInput, Text: raw},
			Line{Kind: LineOutput, Text: effect.Text},
		)
	}
	return effect
}

func (in *Interpreter) evaluate(raw, trimmed string) Effect {
	command := strings.ToLower(trimmed)
	switch command {
	case "help":
		return Effect{Kind: EffectAppend, Text: in.texts.Help}
	case "about":
		return Effect{Kind: EffectAppend, Text: in.texts.About}
	case "skills":
		return Effect{Kind: EffectAppend, Text: in.texts.Skills}
	case "clear":
		return Effect{Kind: EffectReset}
	case "":
		return Effect{Kind: EffectAppendSilently}
	}

	if strings.HasPrefix(command, echoPrefix) {
		return Effect{Kind: EffectAppend, Text: trimmed[len(echoPrefix):]}
	}
	return Effect{
		Kind: EffectAppend,
		Text: fmt.Sprintf(`Command not found: %s. Type "help" for a list of commands.`, raw),
	}
}

// Transcript returns a copy of the lines recorded so far.
func (in *Interpreter) Transcript() []Line {
	out := make([]Line, len(in.transcript))
	copy(out, in.transcript)
	return out
}

func (in *Interpreter) Texts() Texts {
	return in.texts
}
