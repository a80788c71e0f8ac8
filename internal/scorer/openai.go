package scorer

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/pmorel/cfp-radar/internal/cfp"
)

// DefaultModel is the chat model used when none is configured
const DefaultModel = openai.GPT4o

const systemPrompt = "You are an expert at evaluating how relevant a " +
	"conference is for a scientific paper."

// The evaluation prompt embeds the abstract and the conference's display
// fields. The description is deliberately left out.
const promptFormat = `Here is the abstract of our work:
%s

And here are the conference details:
- Title: %s
- Acronym: %s
- When: %s
- Where: %s
- Submission deadline: %s

Rate the relevance of this conference for our work on a scale from 0 to 10.
Provide only a JSON object with the keys "score" (an integer between 0 and
10) and "justification" (a short text explaining your rating).`

// OpenAIScorer scores conferences with an OpenAI chat model configured for
// JSON output
type OpenAIScorer struct {
	client *openai.Client
	model  string
}

// NewOpenAIScorer creates a scorer talking to the OpenAI API with the given
// key. An empty model selects DefaultModel.
func NewOpenAIScorer(apiKey, model string) *OpenAIScorer {
	return NewOpenAIScorerWithConfig(openai.DefaultConfig(apiKey), model)
}

// NewOpenAIScorerWithConfig creates a scorer from an explicit client config.
// Tests use this to point the client at a local fake endpoint.
func NewOpenAIScorerWithConfig(config openai.ClientConfig, model string) *OpenAIScorer {
	if model == "" {
		model = DefaultModel
	}
	return &OpenAIScorer{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// Score sends one evaluation request for conf and parses the structured
// verdict out of the model's reply
func (s *OpenAIScorer) Score(ctx context.Context, abstract string, conf cfp.ConferenceCFP) (Verdict, error) {
	prompt := BuildPrompt(abstract, conf)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return Verdict{}, fmt.Errorf("requesting evaluation: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Verdict{}, fmt.Errorf("evaluation response contains no choices")
	}

	var verdict Verdict
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &verdict); err != nil {
		return Verdict{}, fmt.Errorf("parsing evaluation response: %w", err)
	}
	if err := verdict.Validate(); err != nil {
		return Verdict{}, fmt.Errorf("invalid evaluation response: %w", err)
	}

	return verdict, nil
}

// BuildPrompt renders the fixed evaluation prompt for a conference
func BuildPrompt(abstract string, conf cfp.ConferenceCFP) string {
	return fmt.Sprintf(promptFormat,
		abstract, conf.Title, conf.Acronym, conf.When, conf.Where, conf.Deadline)
}
