package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the interactive assist session. It owns a facilitator chat
// that routes the user's questions to the registered experts.
type Agent struct {
	out         io.Writer
	in          *bufio.Scanner
	facilitator *Expert
	experts     []*Expert
	seed        []string
}

// New creates an Agent writing to out and reading user input from in.
// The experts become tools of the facilitator.
func New(out io.Writer, in io.Reader, experts ...*Expert) *Agent {
	return &Agent{
		out:         out,
		in:          bufio.NewScanner(in),
		experts:     experts,
		facilitator: newFacilitator(experts...),
	}
}

func (a *Agent) start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.experts {
		if err := e.Start(ctx, client); err != nil {
			return fmt.Errorf("could not start expert %s: %w", e.Name, err)
		}
	}
	return a.facilitator.Start(ctx, client)
}

// next returns the user's next question: seed prompts first, then stdin.
// ok is false when the session is over.
func (a *Agent) next() (input string, ok bool) {
	for len(a.seed) > 0 {
		input, a.seed = strings.TrimSpace(a.seed[0]), a.seed[1:]
		if input != "" {
			fmt.Fprintln(a.out, input)
			return input, true
		}
		fmt.Fprint(a.out, "assist> ")
	}
	if !a.in.Scan() {
		return "", false // Ctrl+D
	}
	return strings.TrimSpace(a.in.Text()), true
}

// Run drives the REPL until 'bye' or end of input. The optional prompts are
// asked first, as if the user had typed them.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.facilitator.chat == nil {
		if err := a.start(ctx, client); err != nil {
			return err
		}
	}
	a.seed = append(a.seed, prompts...)

	fmt.Fprintln(a.out, "Welcome to bpl financial assist. Type 'bye' to exit.")
	for {
		fmt.Fprint(a.out, "assist> ")
		input, ok := a.next()
		if !ok || input == "bye" {
			return a.in.Err()
		}
		if input == "" {
			continue
		}

		content, err := a.facilitator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, content.Parts[0].Text)
	}
}
