package handlers

import (
	"fmt"
	"net/http"

	"bragboard/internal/feed"
	"bragboard/internal/middleware"
	"bragboard/internal/service"

	"github.com/dustin/go-humanize"
	"github.com/gorilla/mux"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// CreateShoutOut accepts a multipart form: message, repeated taggedUserIds
// fields and an optional image file.
func (h *Handlers) CreateShoutOut(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.UserID(r.Context())
	if !ok {
		WriteError(w, "authorization required", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, fmt.Sprintf("upload too large (max %s)",
				humanize.Bytes(uint64(h.Cfg.MaxUploadSize))), http.StatusBadRequest)
		} else {
			WriteError(w, "invalid multipart form", http.StatusBadRequest)
		}
		return
	}

	req := service.CreateShoutOutRequest{
		AuthorID:      authorID,
		Message:       r.FormValue("message"),
		TaggedUserIDs: r.Form["taggedUserIds"],
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if !allowedImageTypes[contentType] {
			WriteError(w, "unsupported image type, allowed: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
			return
		}

		req.ImageFile = file
		req.ImageName = header.Filename
		req.ImageSize = header.Size
	} else if err != http.ErrMissingFile {
		WriteError(w, "failed to read image", http.StatusBadRequest)
		return
	}

	shoutout, err := h.ShoutOutService.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, shoutout, http.StatusCreated)
}

// GetFeed returns the aggregated feed for the viewer. Filters: ?department=,
// ?sender= (case-insensitive substring), ?range=today|week|month|all.
func (h *Handlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.UserID(r.Context())
	if !ok {
		WriteError(w, "authorization required", http.StatusUnauthorized)
		return
	}

	dateRange := feed.DateRange(r.URL.Query().Get("range"))
	switch dateRange {
	case "", feed.RangeAll, feed.RangeToday, feed.RangeWeek, feed.RangeMonth:
	default:
		WriteError(w, "invalid range, allowed: today, week, month, all", http.StatusBadRequest)
		return
	}

	criteria := feed.Criteria{
		Department: r.URL.Query().Get("department"),
		Sender:     r.URL.Query().Get("sender"),
		Range:      dateRange,
	}

	items, err := h.ShoutOutService.Feed(r.Context(), viewerID, criteria)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, items, http.StatusOK)
}

func (h *Handlers) GetShoutOut(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.UserID(r.Context())
	if !ok {
		WriteError(w, "authorization required", http.StatusUnauthorized)
		return
	}

	shoutoutID := mux.Vars(r)["id"]

	item, err := h.ShoutOutService.Get(r.Context(), viewerID, shoutoutID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, item, http.StatusOK)
}
