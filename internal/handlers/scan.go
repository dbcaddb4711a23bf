package handlers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"smart_fridge/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	maxImageBytes = 10 << 20 // 10 MB
	imageField    = "image"

	errImageMissing  = "no image in request"
	errImageTooLarge = "image too large"
	errScanParse     = "could not read the items on the image"
	errScanVision    = "failed to analyze image"
	errScanBusy      = "a scan is already in progress"
)

var errBadDataURL = errors.New("malformed data URL")

// ScanRequest carries the image as a base64 data URL
// ("data:image/jpeg;base64,...") or as bare base64.
type ScanRequest struct {
	Image string `json:"image" binding:"required"`
}

// @Summary      Scan fridge image
// @Description  Detects food items on the image and puts them in front of the inventory.
// @Description  Accepts multipart field "image", a raw image body, or JSON {"image": "data:image/...;base64,..."}.
// @Tags         scan
// @Accept       multipart/form-data,image/jpeg,image/png,json
// @Produce      json
// @Param        image  formData  file  false  "Image file"
// @Success      200    {object}  map[string]interface{}  "added, items"
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      409    {object}  map[string]string
// @Failure      413    {object}  map[string]string
// @Failure      502    {object}  map[string]string
// @Router       /api/v1/scan [post]
// @Security     BearerAuth
func (h *Handler) scanImage(c *gin.Context) {
	image, mimeType, err := readImage(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": errImageTooLarge})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errImageMissing + ": " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	added, err := h.services.Scan(ctx, image, mimeType)
	if err != nil {
		var parseErr *service.DetectionParseError
		switch {
		case errors.Is(err, service.ErrBusy):
			c.JSON(http.StatusConflict, gin.H{"error": errScanBusy})
		case errors.Is(err, service.ErrEmptyImage):
			c.JSON(http.StatusBadRequest, gin.H{"error": errImageMissing})
		case errors.As(err, &parseErr):
			h.logAndJSONError(c, http.StatusBadGateway, errScanParse, "scan_parse_failed", err, "raw", parseErr.Raw)
		case errors.Is(err, service.ErrVisionUnavailable):
			h.logAndJSONError(c, http.StatusBadGateway, errScanVision, "scan_vision_failed", err)
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, errScanVision, "scan_failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"added": added,
		"items": h.services.Inventory.List(ctx),
	})
}

// readImage pulls the image bytes and their MIME type out of the request.
func readImage(c *gin.Context) ([]byte, string, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageBytes+(1<<20))
	mediaType, _, _ := mime.ParseMediaType(c.GetHeader("Content-Type"))

	switch {
	case mediaType == "multipart/form-data":
		fh, err := c.FormFile(imageField)
		if err != nil {
			return nil, "", err
		}
		if fh.Size > maxImageBytes {
			return nil, "", &http.MaxBytesError{Limit: maxImageBytes}
		}
		f, err := fh.Open()
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, "", err
		}
		return data, sniffMime(fh.Header.Get("Content-Type"), data), nil

	case mediaType == "application/json":
		var req ScanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, "", err
		}
		return decodeDataURL(req.Image)

	default:
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return nil, "", err
		}
		return data, sniffMime(mediaType, data), nil
	}
}

// decodeDataURL accepts "data:<mime>;base64,<payload>" or bare base64.
func decodeDataURL(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)
	mimeType := ""
	if rest, ok := strings.CutPrefix(s, "data:"); ok {
		meta, payload, found := strings.Cut(rest, ",")
		if !found || !strings.HasSuffix(meta, ";base64") {
			return nil, "", errBadDataURL
		}
		mimeType = strings.TrimSuffix(meta, ";base64")
		s = payload
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", errBadDataURL, err)
	}
	if len(data) > maxImageBytes {
		return nil, "", &http.MaxBytesError{Limit: maxImageBytes}
	}
	return data, sniffMime(mimeType, data), nil
}

// sniffMime keeps a declared image type and otherwise detects it from the bytes.
func sniffMime(declared string, data []byte) string {
	if strings.HasPrefix(declared, "image/") {
		return declared
	}
	if len(data) == 0 {
		return ""
	}
	return http.DetectContentType(data)
}
