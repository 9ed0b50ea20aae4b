package domain

// Issue is a newsletter edition published to every confirmed subscriber.
type Issue struct {
	Title    string
	HTMLBody string
	TextBody string
}
