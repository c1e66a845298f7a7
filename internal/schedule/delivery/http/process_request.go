package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"swim-schedule-manager/internal/schedule"
)

type parseReq struct {
	fileName string
	pdf      []byte
}

func (r parseReq) toInput() schedule.ParseInput {
	return schedule.ParseInput{
		FileName: r.fileName,
		PDF:      r.pdf,
	}
}

// processParseReq reads the uploaded file from the multipart form and
// enforces the .pdf extension check.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return req, errors.New("No file uploaded")
	}
	if !isPDFName(fileHeader.Filename) {
		return req, errors.New("Please upload a PDF file")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return req, errors.New("Could not read the uploaded file")
	}
	defer f.Close()

	pdf, err := io.ReadAll(f)
	if err != nil {
		return req, errors.New("Could not read the uploaded file")
	}

	req.fileName = fileHeader.Filename
	req.pdf = pdf
	return req, nil
}
