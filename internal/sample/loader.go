package sample

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	pkgsample "github.com/goliatone/go-modelgen/pkg/sample"
)

// Loader implements pkgsample.Loader by delegating to file or fs.FS
// strategies. Construction helpers live in the top-level modelgen package.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ pkgsample.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgsample.LoaderOptions) pkgsample.Loader {
	return &Loader{fs: options.FileSystem}
}

// Load fetches the raw payload from the provided source and parses it into a
// sample Document.
func (l *Loader) Load(ctx context.Context, src pkgsample.Source) (pkgsample.Document, error) {
	if src == nil {
		return pkgsample.Document{}, errors.New("sample loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return pkgsample.Document{}, err
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgsample.SourceKindFile:
		data, err = os.ReadFile(src.Location())
	case pkgsample.SourceKindFS:
		data, err = l.readFS(src.Location())
	default:
		err = fmt.Errorf("sample loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return pkgsample.Document{}, err
	}

	return pkgsample.ParseDocument(src, data)
}

func (l *Loader) readFS(name string) ([]byte, error) {
	if l.fs == nil {
		return nil, errors.New("sample loader: filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("sample loader: fs path is required")
	}
	return fs.ReadFile(l.fs, name)
}
