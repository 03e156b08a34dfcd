package agent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/quantrail/bondplan"
	"github.com/quantrail/bondplan/docs"
	"github.com/quantrail/bondplan/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user keeps a plan of fixed-income assets (bonds, bills, deposits) and planned cash
			outflows. He is here primarily to understand his plan: what matures when, whether his
			allocation fits his risk profile, and what the recommendations mean.

			Devise a plan of questions to ask each expert and come up with the best response to the
			user's request. The Planner has already read the user's plan file, ask him before
			assuming anything about the user's holdings.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher builds the expert that grounds answers in current market
// information through Google Search.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert market researcher,
		very well aware of fixed-income products, issuers and central-bank policy,
		and of the latest news about rates and markets.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in fixed-income markets. You can search and find about anything
			related to bonds, issuers, yields, central banks and markets. You leverage Google
			Search to ground your assertions in a solid truth.
				`}}},
		},
	}
}

// NewPlanner builds the expert in charge of reading the user's plan file.
func NewPlanner(storeFile string) *Expert {
	lib := []Function{summaryFunc(storeFile), recommendationsFunc(storeFile), timelineFunc(storeFile)}

	return &Expert{
		Name: "Planner",
		Description: `This is the Planner. He is in charge of reading the user's fixed-income plan.
		He can summarize the holdings, project the cash-flow timeline and compute the
		current recommendations.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a fixed-income planner in charge of the user's plan.
				You know how to use the Tools to extract relevant information about the user's
				assets, planned outflows and recommendations. You are part of a team of experts,
				yours is everything recorded in the user's plan. They might ask you questions in
				approximative language, figure out what they meant.

				Use the available tools to get information about the user's plan:
				  - portfolio summary
				  - recommendations
				  - cash-flow timeline
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// dateSchema documents the flexible date argument shared by the plan tools.
var dateSchema = &genai.Schema{
	Type: genai.TypeString,
	Description: `The date on which to compute the report. Today is the default.
	Otherwise it uses a flexible date format based on YYYY-MM-DD:

	` + must(docs.GetTopic("dates")),
}

func summaryFunc(storeFile string) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary reports the user's holdings per currency, the weighted average
			yield and remaining term, and the allocation against the risk profile's targets.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"date": dateSchema},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted summary of the user's plan.",
			},
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return respond(id, "Summary", args, storeFile, func(on bondplan.Date, s *bondplan.Store) string {
				var user bondplan.User
				if s.Profile != nil {
					user = *s.Profile
				}
				return renderer.SummaryMarkdown(bondplan.NewSummary(on, user, s.Assets, s.Events))
			})
		},
	}
}

func recommendationsFunc(storeFile string) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Recommendations",
			Description: `Recommendations runs the rollover, diversification, laddering, liquidity
			and yield analyses on the user's plan and reports the findings.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"date": dateSchema},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted list of recommendations grouped by category.",
			},
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return respond(id, "Recommendations", args, storeFile, func(on bondplan.Date, s *bondplan.Store) string {
				recs := bondplan.GenerateRecommendations(on, s.Profile, s.Assets, s.Events)
				return renderer.RecommendationsMarkdown(on, recs)
			})
		},
	}
}

func timelineFunc(storeFile string) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Timeline",
			Description: `Timeline projects maturing face value against planned outflows for the
			next 24 months, in the user's currency.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"date": dateSchema},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted monthly cash-flow table.",
			},
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return respond(id, "Timeline", args, storeFile, func(on bondplan.Date, s *bondplan.Store) string {
				var user bondplan.User
				if s.Profile != nil {
					user = *s.Profile
				}
				months := bondplan.NewTimeline(on, user, s.Assets, s.Events, 24)
				return renderer.TimelineMarkdown(user.Currency, months)
			})
		},
	}
}

// respond wraps the common shape of a plan tool: parse the date argument,
// load the store and render a markdown report.
func respond(id, name string, args map[string]any, storeFile string, render func(bondplan.Date, *bondplan.Store) string) *genai.FunctionResponse {
	on, err := parseDate(args)
	if err != nil {
		return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"error": err.Error()}}
	}
	s, err := decodeStore(storeFile)
	if err != nil {
		return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"error": err.Error()}}
	}
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"output": render(on, s)}}
}

// decodeStore reads the plan from the given file. A missing file is an empty
// plan.
func decodeStore(storeFile string) (*bondplan.Store, error) {
	f, err := os.Open(storeFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return bondplan.NewStore(), nil
		}
		return nil, fmt.Errorf("could not open plan file %q: %w", storeFile, err)
	}
	defer f.Close()

	s, err := bondplan.DecodeStore(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode plan file %q: %w", storeFile, err)
	}
	return s, nil
}

func parseDate(args map[string]any) (bondplan.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return bondplan.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return bondplan.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}

	date, err := bondplan.ParseDate(sdate)
	if err != nil {
		return bondplan.Today(), fmt.Errorf("argument 'date' must be a valid date got %q. Below is the doc about the date format\n\n%s", sdate, must(docs.GetTopic("dates")))
	}

	return date, nil
}
