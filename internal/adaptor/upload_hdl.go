package adaptor

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"travel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxUploadSize caps chat attachments at 10 MB.
const maxUploadSize = 10 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".xls":  true,
	".xlsx": true,
}

// UploadHandler stores chat attachments on local disk under uuid names so
// original filenames never reach the filesystem.
type UploadHandler struct {
	dir string
	log *zap.Logger
}

func NewUploadHandler(dir string, log *zap.Logger) *UploadHandler {
	return &UploadHandler{
		dir: dir,
		log: log.With(zap.String("handler", "upload")),
	}
}

// Upload handles POST /api/support/upload (multipart form, field "file")
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.ResponseBadRequest(w, "File too large or malformed form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "File is required", nil)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		utils.ResponseBadRequest(w, fmt.Sprintf("File type %s is not allowed", ext), nil)
		return
	}

	name := uuid.New().String() + ext
	path := filepath.Join(h.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		h.log.Error("Failed to create upload file", zap.Error(err), zap.String("path", path))
		utils.ResponseInternalError(w, "Failed to store file")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		h.log.Error("Failed to write upload file", zap.Error(err), zap.String("path", path))
		os.Remove(path)
		utils.ResponseInternalError(w, "Failed to store file")
		return
	}

	h.log.Info("File uploaded",
		zap.String("name", name),
		zap.Int64("size", header.Size))

	utils.ResponseCreated(w, "File uploaded", map[string]string{
		"url": "/uploads/" + name,
	})
}
