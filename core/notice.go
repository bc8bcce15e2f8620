package core

// Notice is the toast shown once an operation completes.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
