package server

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nfnt/resize"
)

// thumbnailWidth bounds the stored preview so a photo never bloats the
// order collection.
const thumbnailWidth = 320

// handlePhoto turns an uploaded shoe photo into a small base64 data
// URL the UI stores on the order as photoPreview.
func (s *Server) handlePhoto(c *gin.Context) {
	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		s.err(c, http.StatusBadRequest, "BadRequest", "field 'photo' required")
		return
	}
	defer file.Close()

	var img image.Image
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".png":
		img, err = png.Decode(file)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(file)
	default:
		s.err(c, http.StatusBadRequest, "BadRequest", "only jpg/png allowed")
		return
	}
	if err != nil {
		s.err(c, http.StatusBadRequest, "BadRequest", "cannot decode image")
		return
	}

	thumb := resize.Resize(thumbnailWidth, 0, img, resize.Lanczos3)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 80}); err != nil {
		s.err(c, http.StatusInternalServerError, "ServerError", "cannot encode thumbnail")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"photoPreview": "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
}
