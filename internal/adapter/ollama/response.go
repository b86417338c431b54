package ollama

// versionResponse is the body of GET /api/version.
type versionResponse struct {
	Version string `json:"version"`
}

// tagsResponse is the body of GET /api/tags.
type tagsResponse struct {
	Models []modelTag `json:"models"`
}

// modelTag describes one installed model. Only the name is used.
type modelTag struct {
	Name string `json:"name"`
}

// generateRequest is the body of POST /api/generate.
// Stream is always false: the whole completion arrives in one response.
type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

// generateOptions carries the sampling parameters.
type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
	TopP        float64 `json:"top_p"`
}

// generateResponse is the body of a successful non-streaming generation.
type generateResponse struct {
	Response string `json:"response"`
}
