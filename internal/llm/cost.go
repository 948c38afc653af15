package llm

// modelPricing holds per-model pricing in USD per 1M tokens.
type modelPricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// priceTable maps model identifiers to their on-demand Groq pricing.
var priceTable = map[string]modelPricing{
	"moonshotai/kimi-k2-instruct-0905":              {InputPerMillion: 1.00, OutputPerMillion: 3.00},
	"meta-llama/llama-4-maverick-17b-128e-instruct": {InputPerMillion: 0.20, OutputPerMillion: 0.60},
	"qwen/qwen3-32b":                                {InputPerMillion: 0.29, OutputPerMillion: 0.59},
	"openai/gpt-oss-120b":                           {InputPerMillion: 0.15, OutputPerMillion: 0.75},
}

// EstimateCost returns the estimated cost in USD for the given model and token counts.
// Returns 0 if the model is not found in the price table.
func EstimateCost(model string, inputTokens, outputTokens int) float64 {
	pricing, ok := priceTable[model]
	if !ok {
		return 0
	}

	inputCost := float64(inputTokens) / 1_000_000.0 * pricing.InputPerMillion
	outputCost := float64(outputTokens) / 1_000_000.0 * pricing.OutputPerMillion
	return inputCost + outputCost
}

// Price returns the input and output price in USD per 1M tokens for model.
func Price(model string) (input, output float64, ok bool) {
	pricing, ok := priceTable[model]
	return pricing.InputPerMillion, pricing.OutputPerMillion, ok
}

// EstimateTokens provides a rough token count estimation for the given text.
// Uses the approximation of 1 token per 4 characters.
func EstimateTokens(text string) int {
	n := len(text) / 4
	if n == 0 && len(text) > 0 {
		return 1
	}
	return n
}
