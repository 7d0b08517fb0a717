package v1

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safety_incident_tracker/internal/models"
)

// formFiles возвращает файлы поля field multipart-формы; для JSON-запросов список пуст
func formFiles(c *gin.Context, field string) ([]models.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	headers := form.File[field]
	uploads := make([]models.Upload, 0, len(headers))
	for _, fh := range headers {
		uploads = append(uploads, toUpload(fh))
	}
	return uploads, nil
}

func toUpload(fh *multipart.FileHeader) models.Upload {
	return models.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
