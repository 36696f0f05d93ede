// Package vision reads VINs off plate photos with a vision-capable
// chat-completions model.
package vision

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"
	log "github.com/sirupsen/logrus"

	"github.com/openvin/vin-decoder/internal/config"
)

const extractionPrompt = `Look at this VIN plate image and extract the 17-character Vehicle Identification Number (VIN).

The VIN is a sequence of exactly 17 characters (numbers and capital letters, but NOT the letters I, O, or Q).

Respond with ONLY the 17-character VIN, nothing else. No explanation, no formatting, just the VIN.

Example format: 1HGBH41JXMN109186`

type Extractor struct {
	logger    *log.Logger
	client    openai.Client
	modelName string
	maxTokens int
}

func NewExtractor(logger *log.Logger, client openai.Client, cfg config.OpenAIConfig) *Extractor {
	return &Extractor{
		logger:    logger,
		client:    client,
		modelName: cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
}

// Extract sends one image and the fixed instruction to the model and
// returns the trimmed, uppercased first text of the response. The result
// is not validated here; malformed output is caught by the VIN validator.
func (e *Extractor) Extract(ctx context.Context, data, mediaType string) (string, error) {
	params := e.buildParams(data, mediaType)

	resp, err := e.client.Chat.Completions.New(ctx, *params)
	if err != nil {
		return "", fmt.Errorf("vision API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("vision API returned no choices")
	}

	out := strings.ToUpper(strings.TrimSpace(resp.Choices[0].Message.Content))
	e.logger.Debugf("vision model output: %q", out)
	return out, nil
}

func (e *Extractor) buildParams(data, mediaType string) *openai.ChatCompletionNewParams {
	imageURL := fmt.Sprintf("data:%s;base64,%s", mediaType, data)

	return &openai.ChatCompletionNewParams{
		Model:               shared.ChatModel(e.modelName),
		MaxCompletionTokens: openai.Int(int64(e.maxTokens)),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: imageURL,
				}),
				openai.TextContentPart(extractionPrompt),
			}),
		},
	}
}
