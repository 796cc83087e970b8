package entity

// NoticeKind tells presentation how to render a notice.
type NoticeKind string

const (
	NoticeInfo     NoticeKind = "info"     // Informational, dismissible.
	NoticeBlocking NoticeKind = "blocking" // Stops the current action until re-authentication.
	NoticeError    NoticeKind = "error"    // Non-blocking failure, the form stays editable.
)

// Notice is a user-visible message produced by the session and password workflows.
type Notice struct {
	Kind        NoticeKind `json:"kind"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Steps       []string   `json:"steps,omitempty"`
	RequiresAck bool       `json:"requiresAck"`
}
