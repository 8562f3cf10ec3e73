package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"immoBack/internal/models"
	"immoBack/internal/services"
)

type PropertyHandler struct {
	Service *services.PropertyService

	// Notify is called after a successful create/update/delete so open
	// dashboards can refresh their list.
	Notify func()
}

func (h *PropertyHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	state, err := filterStateFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Service.GetProperties(r.Context(), state)
	if err != nil {
		http.Error(w, "Failed to fetch properties", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *PropertyHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	facets, err := h.Service.GetFacets(r.Context(), r.URL.Query().Get("country"))
	if err != nil {
		http.Error(w, "Failed to fetch facets", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(facets)
}

func (h *PropertyHandler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	// An unparsable id can never name a record, so it gets the same
	// not-found answer as a missing one.
	id, err := strconv.ParseInt(r.URL.Query().Get(":id"), 10, 64)
	if err != nil {
		http.Error(w, "Property not found", http.StatusNotFound)
		return
	}

	property, err := h.Service.GetPropertyByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch property", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(property)
}

func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(32 << 20) // 32MB
	if err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	form, err := propertyFormFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	files, err := readUploadFiles(r)
	if err != nil {
		http.Error(w, "Failed to read uploaded file", http.StatusInternalServerError)
		return
	}

	created, report, err := h.Service.CreateProperty(r.Context(), form, files)
	if err != nil {
		h.ingestError(w, err)
		return
	}

	if h.Notify != nil {
		h.Notify()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(models.PropertyCreatedResponse{Property: created, Failed: report.Failed})
}

func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get(":id"), 10, 64)
	if err != nil {
		http.Error(w, "Property not found", http.StatusNotFound)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	form, err := propertyFormFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	files, err := readUploadFiles(r)
	if err != nil {
		http.Error(w, "Failed to read uploaded file", http.StatusInternalServerError)
		return
	}
	removeIndices := parseIntArray(r.FormValue("remove_images"))

	updated, report, err := h.Service.UpdateProperty(r.Context(), id, form, files, removeIndices)
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		h.ingestError(w, err)
		return
	}

	if h.Notify != nil {
		h.Notify()
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.PropertyCreatedResponse{Property: updated, Failed: report.Failed})
}

func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get(":id"), 10, 64)
	if err != nil {
		http.Error(w, "Property not found", http.StatusNotFound)
		return
	}

	if err := h.Service.DeleteProperty(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if h.Notify != nil {
		h.Notify()
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PropertyHandler) UploadProgress(w http.ResponseWriter, r *http.Request) {
	state, progress := h.Service.Progress()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"state":    state,
		"progress": progress,
	})
}

func (h *PropertyHandler) ingestError(w http.ResponseWriter, err error) {
	var verr models.ValidationError
	switch {
	case errors.As(err, &verr):
		http.Error(w, verr.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrIngestInFlight):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		// Store failures carry the underlying message to the operator.
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func readUploadFiles(r *http.Request) ([]services.UploadFile, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	var files []services.UploadFile
	for _, fileHeader := range r.MultipartForm.File["images"] {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, services.UploadFile{
			Name:        fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return files, nil
}
