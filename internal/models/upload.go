package models

import "io"

// Upload - файл из multipart-формы, который нужно сохранить в хранилище
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}
