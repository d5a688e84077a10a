package template

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=styles.go -destination=mock_styles_test.go -package=template

// StyleProvider resolves style token names into terminal escape sequences.
// Implementations return an empty string for names they do not support;
// unknown styles never fail a render.
type StyleProvider interface {
	// Control resolves !(name) tokens such as "bold" or "reset".
	Control(name string) string
	// Background resolves #(name) tokens.
	Background(name string) string
	// Foreground resolves $(name) tokens.
	Foreground(name string) string
}

// plainStyles is used when a nil provider is passed to Render.
type plainStyles struct{}

func (plainStyles) Control(string) string    { return "" }
func (plainStyles) Background(string) string { return "" }
func (plainStyles) Foreground(string) string { return "" }
