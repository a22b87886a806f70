package webhook

// PostResponse is the body returned to LINE for every handled webhook call.
type PostResponse struct {
	// Content is always "post ok".
	Content string `json:"content"`
}

var postOK = PostResponse{Content: "post ok"}
