package api

// envelope is the uniform response shape: every endpoint answers with
// {data, message, success} and list endpoints add a pagination block.
type envelope struct {
	Data       any         `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
	Pagination *pagination `json:"pagination,omitempty"`
}

type pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

func ok(data any, message string) envelope {
	return envelope{Data: data, Message: message, Success: true}
}

func okPaged(data any, message string, p pagination) envelope {
	return envelope{Data: data, Message: message, Success: true, Pagination: &p}
}

func fail(message string) envelope {
	return envelope{Message: message, Success: false}
}
