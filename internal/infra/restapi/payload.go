package restapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"sort"
	"strconv"
	"strings"

	"rxconsole/internal/domain/repository"

	"github.com/pkg/errors"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodePayload returns the body and content type: multipart when a file is attached, JSON otherwise.
func encodePayload(p repository.Payload) (io.Reader, string, error) {
	if !p.IsMultipart() {
		body, err := jsonBody(p.Values)
		if err != nil {
			return nil, "", err
		}

		return body, "application/json", nil
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(p.Values))
	for k := range p.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		values, err := formValues(p.Values[key])
		if err != nil {
			return nil, "", errors.Wrapf(err, "encode field %s", key)
		}
		for _, v := range values {
			if err := w.WriteField(key, v); err != nil {
				return nil, "", errors.WithStack(err)
			}
		}
	}

	a := p.Attachment
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(a.Field), quoteEscaper.Replace(a.Filename)))
	contentType := a.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}
	if _, err := part.Write(a.Data); err != nil {
		return nil, "", errors.WithStack(err)
	}
	if err := w.Close(); err != nil {
		return nil, "", errors.WithStack(err)
	}

	return &buf, w.FormDataContentType(), nil
}

// formValues flattens one payload value into multipart field values.
func formValues(v any) ([]string, error) {
	switch val := v.(type) {
	case string:
		return []string{val}, nil
	case []string:
		return val, nil
	case float64:
		return []string{strconv.FormatFloat(val, 'f', -1, 64)}, nil
	case bool:
		return []string{strconv.FormatBool(val)}, nil
	case json.RawMessage:
		return []string{string(val)}, nil
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}

		return []string{string(raw)}, nil
	}
}
