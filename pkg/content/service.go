package content

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mchmarny/sidebar/pkg/contenttype"
	"github.com/mchmarny/sidebar/pkg/routing"
)

// Untitled is shown for records without a title.
const Untitled = "(untitled)"

// Store is the record source used by Service.
type Store interface {
	Latest(ctx context.Context, contentType string, limit int) ([]Record, error)
}

// Service resolves record summaries against the content types and the route table.
type Service struct {
	store Store
	types *contenttype.Set
	links routing.Generator
}

// NewService creates a summary service.
func NewService(store Store, types *contenttype.Set, links routing.Generator) *Service {
	return &Service{
		store: store,
		types: types,
		links: links,
	}
}

// FindLatest returns at most limit records of ct, newest first.
// Records without an icon take the content type's single-record icon.
func (s *Service) FindLatest(ctx context.Context, ct contenttype.ContentType, limit int) ([]Record, error) {
	records, err := s.store.Latest(ctx, ct.Slug, limit)
	if err != nil {
		return nil, fmt.Errorf("find latest %s: %w", ct.Slug, err)
	}

	for i := range records {
		if records[i].Icon == "" {
			records[i].Icon = ct.IconOne
		}
	}

	return records, nil
}

// Title returns the display title of r.
func (s *Service) Title(r Record) string {
	if r.Title == "" {
		return Untitled
	}
	return r.Title
}

// Link returns the public link of r.
func (s *Service) Link(r Record) (string, error) {
	ct, err := s.types.Get(r.ContentType)
	if err != nil {
		return "", err
	}

	slugOrID := r.Slug
	if slugOrID == "" {
		slugOrID = strconv.FormatInt(r.ID, 10)
	}

	return s.links.Generate(routing.Record, routing.Params{
		"contentTypeSlug": ct.SingularSlug,
		"slugOrId":        slugOrID,
	})
}

// EditLink returns the admin edit link of r.
func (s *Service) EditLink(r Record) (string, error) {
	return s.links.Generate(routing.ContentEdit, routing.Params{
		"id": strconv.FormatInt(r.ID, 10),
	})
}
