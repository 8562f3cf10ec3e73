package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"immoBack/internal/models"
)

type PropertyStore interface {
	ListProperties(ctx context.Context) ([]models.Property, error)
	GetPropertyByID(ctx context.Context, id int64) (models.Property, error)
	CreateProperty(ctx context.Context, p models.Property) (models.Property, error)
	UpdateProperty(ctx context.Context, p models.Property) (models.Property, error)
	DeleteProperty(ctx context.Context, id int64) error
}

type BlobStore interface {
	// Upload stores the blob under path and returns its public URL.
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
}

// UploadFile is one image file read out of the multipart form.
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

type IngestState string

const (
	IngestIdle       IngestState = "idle"
	IngestUploading  IngestState = "uploading"
	IngestPersisting IngestState = "persisting"
	IngestDone       IngestState = "done"
	IngestFailed     IngestState = "failed"
)

type PropertyService struct {
	PropertyRepo PropertyStore
	Blobs        BlobStore
	ErrorLog     *log.Logger

	mu       sync.Mutex
	inFlight bool
	state    IngestState
	progress int
}

func (s *PropertyService) GetProperties(ctx context.Context, state models.FilterState) (models.PropertyListResponse, error) {
	properties, err := s.PropertyRepo.ListProperties(ctx)
	if err != nil {
		return models.PropertyListResponse{}, err
	}

	// A data set confined to one country needs no country choice.
	if state.Country == "" {
		if countries := distinctCountries(properties); len(countries) == 1 {
			state.Country = countries[0]
		}
	}

	return models.PropertyListResponse{
		Properties: ApplyFilters(properties, state),
		Facets:     Facets(properties, state.Country),
	}, nil
}

func (s *PropertyService) GetFacets(ctx context.Context, country string) (models.FacetOptions, error) {
	properties, err := s.PropertyRepo.ListProperties(ctx)
	if err != nil {
		return models.FacetOptions{}, err
	}
	return Facets(properties, country), nil
}

func (s *PropertyService) GetPropertyByID(ctx context.Context, id int64) (models.Property, error) {
	return s.PropertyRepo.GetPropertyByID(ctx, id)
}

func (s *PropertyService) DeleteProperty(ctx context.Context, id int64) error {
	return s.PropertyRepo.DeleteProperty(ctx, id)
}

// CreateProperty runs the full ingestion flow: upload every file in order,
// tolerate per-file failures, then insert exactly one record referencing the
// collected URLs. The record is persisted even when some uploads failed; it
// is not persisted at all when validation or the insert fails.
func (s *PropertyService) CreateProperty(ctx context.Context, form models.PropertyForm, files []UploadFile) (models.Property, models.UploadReport, error) {
	if err := validateForm(form); err != nil {
		return models.Property{}, models.UploadReport{}, err
	}
	if len(files) == 0 {
		return models.Property{}, models.UploadReport{}, models.ErrNoImages
	}

	if err := s.begin(); err != nil {
		return models.Property{}, models.UploadReport{}, err
	}

	report := s.uploadAll(ctx, files)

	s.setState(IngestPersisting)
	p := propertyFromForm(form)
	p.Images = report.ImageURLs
	p.CreatedAt = time.Now()

	created, err := s.PropertyRepo.CreateProperty(ctx, p)
	if err != nil {
		s.finish(IngestFailed)
		return models.Property{}, report, fmt.Errorf("persist property: %w", err)
	}

	s.finish(IngestDone)
	return created, report, nil
}

// UpdateProperty is the edit variant: indices marked for removal are dropped
// from the existing image list, any new files are uploaded and appended, then
// the record is replaced in full. Last writer wins; there is no concurrency
// token.
func (s *PropertyService) UpdateProperty(ctx context.Context, id int64, form models.PropertyForm, newFiles []UploadFile, removeIndices []int) (models.Property, models.UploadReport, error) {
	if err := validateForm(form); err != nil {
		return models.Property{}, models.UploadReport{}, err
	}

	existing, err := s.PropertyRepo.GetPropertyByID(ctx, id)
	if err != nil {
		return models.Property{}, models.UploadReport{}, err
	}

	if err := s.begin(); err != nil {
		return models.Property{}, models.UploadReport{}, err
	}

	images := removeImageIndices(existing.Images, removeIndices)
	report := s.uploadAll(ctx, newFiles)
	images = append(images, report.ImageURLs...)

	s.setState(IngestPersisting)
	p := propertyFromForm(form)
	p.ID = existing.ID
	p.Images = images
	p.CreatedAt = existing.CreatedAt

	updated, err := s.PropertyRepo.UpdateProperty(ctx, p)
	if err != nil {
		s.finish(IngestFailed)
		if err == models.ErrPropertyNotFound {
			return models.Property{}, report, err
		}
		return models.Property{}, report, fmt.Errorf("persist property: %w", err)
	}

	s.finish(IngestDone)
	return updated, report, nil
}

// Progress reports the current ingest state and percentage of attempted
// files. The percentage counts failures as attempted, so it reaches 100 even
// when uploads were skipped.
func (s *PropertyService) Progress() (IngestState, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == "" {
		return IngestIdle, 0
	}
	return s.state, s.progress
}

// uploadAll uploads the files one at a time, in order. A failed file is
// logged, reported and skipped; the successes keep their relative order.
func (s *PropertyService) uploadAll(ctx context.Context, files []UploadFile) models.UploadReport {
	var report models.UploadReport
	total := len(files)

	for i, file := range files {
		path := fmt.Sprintf("properties/%d_%s", time.Now().UnixNano(), file.Name)
		url, err := s.Blobs.Upload(ctx, path, file.Data, file.ContentType)
		if err != nil {
			if s.ErrorLog != nil {
				s.ErrorLog.Printf("upload failed for %s: %v", file.Name, err)
			}
			report.Failed = append(report.Failed, file.Name)
		} else {
			report.ImageURLs = append(report.ImageURLs, url)
		}
		s.setProgress((i + 1) * 100 / total)
	}
	return report
}

func (s *PropertyService) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return models.ErrIngestInFlight
	}
	s.inFlight = true
	s.state = IngestUploading
	s.progress = 0
	return nil
}

func (s *PropertyService) setState(state IngestState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *PropertyService) setProgress(progress int) {
	s.mu.Lock()
	s.progress = progress
	s.mu.Unlock()
}

func (s *PropertyService) finish(state IngestState) {
	s.mu.Lock()
	s.state = state
	s.inFlight = false
	s.mu.Unlock()
}

func validateForm(form models.PropertyForm) error {
	if form.Title == "" {
		return models.ValidationError("title is required")
	}
	if form.PropertyType == "" {
		return models.ValidationError("property_type is required")
	}
	return nil
}

func propertyFromForm(form models.PropertyForm) models.Property {
	return models.Property{
		Title:           form.Title,
		Description:     form.Description,
		Price:           form.Price,
		LocationCity:    form.LocationCity,
		LocationAddress: form.LocationAddress,
		Country:         form.Country,
		PropertyType:    form.PropertyType,
		Rooms:           form.Rooms,
		GroundArea:      form.GroundArea,
		HouseArea:       form.HouseArea,
		Status:          form.Status,
	}
}

// removeImageIndices drops the listed positions, ignoring any that are out
// of range, and preserves the order of the survivors.
func removeImageIndices(images []string, indices []int) []string {
	if len(indices) == 0 {
		return images
	}
	drop := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		drop[idx] = struct{}{}
	}
	kept := make([]string, 0, len(images))
	for i, img := range images {
		if _, ok := drop[i]; ok {
			continue
		}
		kept = append(kept, img)
	}
	return kept
}
