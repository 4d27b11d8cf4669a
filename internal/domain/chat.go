package domain

// Role tags a chat turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a chat transcript.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
