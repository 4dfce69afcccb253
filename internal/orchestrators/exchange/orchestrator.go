// Package exchange implements export and import of loadouts through the
// clipboard in the PRAYERLOADOUT text format
package exchange

//go:generate mockgen -destination=mock/mock_service.go -package=exchangemock github.com/KirkDiggler/prayer-loadouts/internal/orchestrators/exchange Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/prayer-loadouts/internal/clients/clipboard"
	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
	"github.com/KirkDiggler/prayer-loadouts/internal/repositories/loadouts"
)

// Service defines the interface for loadout exchange
type Service interface {
	// Export writes a loadout to the clipboard
	// Returns errors.NotFound if the loadout is unknown or has no data
	// Returns errors.InvalidArgument if its name cannot be imported back
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)

	// Import reads a loadout from the clipboard and stores it, replacing any
	// loadout of the same name
	// Returns errors.InvalidArgument if the clipboard does not hold a loadout
	Import(ctx context.Context, input *ImportInput) (*ImportOutput, error)
}

// ExportInput defines the input for exporting a loadout
type ExportInput struct {
	Name string
}

// ExportOutput defines the output for exporting a loadout
type ExportOutput struct {
	Text  string
	Books int
}

// ImportInput defines the input for importing a loadout
type ImportInput struct {
	// Name overrides the name in the blob when non-blank
	Name string
}

// ImportOutput defines the output for importing a loadout
type ImportOutput struct {
	Name         string
	OriginalName string
	Books        int
	Replaced     bool
}

// Config holds the dependencies for the exchange orchestrator
type Config struct {
	Repository loadouts.Repository
	Clipboard  clipboard.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Clipboard == nil {
		vb.RequiredField("Clipboard")
	}

	return vb.Build()
}

type orchestrator struct {
	repo      loadouts.Repository
	clipboard clipboard.Client
}

// NewOrchestrator creates a new exchange orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:      cfg.Repository,
		clipboard: cfg.Clipboard,
	}, nil
}

func (o *orchestrator) Export(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	got, err := o.repo.Get(ctx, loadouts.GetInput{Name: input.Name})
	if err != nil {
		return nil, err
	}

	text, err := Encode(got.Loadout)
	if err != nil {
		return nil, err
	}

	if err := o.clipboard.WriteText(ctx, text); err != nil {
		return nil, errors.Wrap(err, "failed to copy loadout")
	}

	books := len(got.Loadout.BookIDs())
	slog.InfoContext(ctx, "exported loadout", "loadout", input.Name, "books", books)

	return &ExportOutput{Text: text, Books: books}, nil
}

func (o *orchestrator) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if input == nil {
		input = &ImportInput{}
	}

	text, err := o.clipboard.ReadText(ctx)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.InvalidArgument("clipboard does not hold a prayer loadout")
		}
		return nil, errors.Wrap(err, "failed to read clipboard")
	}

	decoded, err := Decode(text)
	if err != nil {
		return nil, err
	}

	name := decoded.OriginalName
	if provided := strings.TrimSpace(input.Name); provided != "" {
		name = provided
	}
	decoded.Loadout.DisplayName = name

	put, err := o.repo.Put(ctx, loadouts.PutInput{Loadout: decoded.Loadout})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to import loadout %s", name)
	}

	books := len(decoded.Loadout.BookIDs())
	slog.InfoContext(ctx, "imported loadout",
		"loadout", name,
		"original", decoded.OriginalName,
		"books", books,
		"replaced", put.Replaced)

	return &ImportOutput{
		Name:         name,
		OriginalName: decoded.OriginalName,
		Books:        books,
		Replaced:     put.Replaced,
	}, nil
}
