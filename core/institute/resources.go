package institute

import (
	"context"
	"errors"

	"github.com/digitalforgex/institute/core"
)

var ErrResourceNotFound = errors.New("resource not found")

type NewResource struct {
	Title   string `json:"title" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Class   string `json:"class" validate:"required"` // a course label, or "All Classes"
	Link    string `json:"link" validate:"required,url"`
	Type    string `json:"type"`
}

func (nr NewResource) Validate() error {
	return core.Validate.Struct(nr)
}

func (svc *Service) CreateResource(ctx context.Context, nr NewResource) (Resource, error) {
	fields := map[string]interface{}{
		"title":     core.CleanString(nr.Title),
		"subject":   core.CleanString(nr.Subject),
		"class":     core.CleanString(nr.Class),
		"link":      core.CleanString(nr.Link),
		"type":      nr.Type,
		"date":      today(),
		"timestamp": nowMillis(),
	}
	id, err := svc.store.Add(ctx, ColResources, fields)
	if err != nil {
		return Resource{}, err
	}
	return ResourceFromDocument(core.Document{ID: id, Fields: fields}), nil
}

func (svc *Service) QueryResources(ctx context.Context) ([]Resource, error) {
	resources, err := svc.loadResources(ctx)
	if err != nil {
		return nil, err
	}
	sortResourcesNewestFirst(resources)
	return resources, nil
}

func (svc *Service) DeleteResource(ctx context.Context, id string) error {
	err := svc.store.Delete(ctx, ColResources, id)
	if errors.Is(err, core.ErrDocumentNotFound) {
		return ErrResourceNotFound
	}
	return err
}
