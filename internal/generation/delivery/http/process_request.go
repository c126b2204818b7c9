package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Form keys accepted for the nested deadline field.
var deadlineFormKeys = []string{"context.deadline", "context[deadline]"}

// errBodyTooLarge is returned when the request exceeds the upload limit.
var errBodyTooLarge = errors.New("request body too large")

// processGenerateReq binds a JSON, urlencoded or multipart request.
// Absent fields are left empty; the use case decides whether any source is usable.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)

	switch c.ContentType() {
	case binding.MIMEJSON:
		if err := c.ShouldBindJSON(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return req, nil
			}
			return req, wrapBodyErr(err)
		}
		return req, nil

	case binding.MIMEMultipartPOSTForm:
		if err := c.Request.ParseMultipartForm(h.maxUpload); err != nil {
			return req, wrapBodyErr(err)
		}
		pdf, err := readFormFile(c, "pdf")
		if err != nil {
			return req, err
		}
		req.PDF = pdf

	case binding.MIMEPOSTForm:
		if err := c.Request.ParseForm(); err != nil {
			return req, wrapBodyErr(err)
		}

	default:
		return req, nil
	}

	req.Desc = c.PostForm("desc")
	req.Sheet = c.PostForm("sheet")
	for _, key := range deadlineFormKeys {
		if v := c.PostForm(key); v != "" {
			req.Context.Deadline = v
			break
		}
	}
	return req, nil
}

// readFormFile returns the uploaded file's bytes, or nil when the field is absent.
func readFormFile(c *gin.Context, field string) ([]byte, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, wrapBodyErr(err)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded %s: %w", field, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read uploaded %s: %w", field, err)
	}
	return data, nil
}

func wrapBodyErr(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large") {
		return fmt.Errorf("%w: %v", errBodyTooLarge, err)
	}
	return fmt.Errorf("%w: %v", errMalformedBody, err)
}
