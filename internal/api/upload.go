package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/sirupsen/logrus"
)

// UploadCSV posts the file as multipart form data under the field name
// "file". The only operation that does not use the JSON envelope.
func (c *Client) UploadCSV(ctx context.Context, filename string, file io.Reader) (UploadResult, error) {
	const op = "uploadCSV"
	var out UploadResult

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return out, fmt.Errorf("%s: build form: %w", op, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return out, fmt.Errorf("%s: read file: %w", op, err)
	}
	if err := mw.Close(); err != nil {
		return out, fmt.Errorf("%s: finish form: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/expenses/upload", &buf)
	if err != nil {
		return out, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	c.log.WithFields(logrus.Fields{"op": op, "file": filename}).Debug("uploading csv")

	resp, err := c.http.Do(req)
	if err != nil {
		return out, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, &NetworkError{Op: op, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &failure)
		if failure.Error == "" {
			failure.Error = "API request failed"
		}
		return out, &APIError{Status: resp.StatusCode, Message: failure.Error}
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%s: decode response: %w", op, err)
	}
	return out, nil
}
