package ports

import "context"

// Prompter is the interactive confirmation collaborator, owned by the CLI
// layer. The core only consumes the answers.
//
//go:generate go run go.uber.org/mock/mockgen -source=collaborators.go -destination=mocks/mock_collaborators.go -package=mocks
type Prompter interface {
	// ConfirmOverwrite asks whether an existing file at path may be replaced.
	ConfirmOverwrite(path string) bool
	// ConfirmContinue asks whether the pipeline should proceed past the
	// described condition.
	ConfirmContinue(msg string) bool
}

// Uploader transports a finished artifact. The network implementation is
// owned by an external collaborator; the pipeline only needs this surface.
type Uploader interface {
	Upload(ctx context.Context, path string) error
}

// TokenStore supplies the auth token for the upload collaborator, if one
// has been stored.
type TokenStore interface {
	Token() (string, bool)
}
