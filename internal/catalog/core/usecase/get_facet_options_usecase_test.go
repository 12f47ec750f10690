package usecase

import (
	"context"
	"errors"
	"testing"

	"sales-insights-service/internal/catalog/core/domain"
	"sales-insights-service/internal/dataset"
)

type fakeDataset struct {
	snap *dataset.Snapshot
	err  error
}

func (f *fakeDataset) Current() (*dataset.Snapshot, error) {
	return f.snap, f.err
}

func TestGetFacetOptions_ReturnsSnapshotOptions(t *testing.T) {
	snap := dataset.NewSnapshot([]domain.Product{
		{ProductID: 1, Publisher: "Beta Press", Genre: "Drama", Status: "A", Category: "Webtoon", Tags: []string{"school"}},
		{ProductID: 2, Publisher: "Acme", Genre: "Comedy", Status: "I", Category: "Novel", Tags: []string{"romance", "school"}},
	}, nil)

	uc := NewGetFacetOptionsUseCase(&fakeDataset{snap: snap})

	options, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pubs := options[domain.FacetPublisher]
	if len(pubs) != 2 || pubs[0] != "Acme" || pubs[1] != "Beta Press" {
		t.Fatalf("publishers = %v", pubs)
	}
	tags := options[domain.FacetTags]
	if len(tags) != 2 || tags[0] != "romance" || tags[1] != "school" {
		t.Fatalf("tags = %v", tags)
	}
}

func TestGetFacetOptions_NoSnapshot(t *testing.T) {
	uc := NewGetFacetOptionsUseCase(&fakeDataset{err: dataset.ErrNoSnapshot})

	if _, err := uc.Execute(context.Background()); !errors.Is(err, dataset.ErrNoSnapshot) {
		t.Fatalf("err = %v, want ErrNoSnapshot", err)
	}
}
