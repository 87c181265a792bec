package api

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// FieldKind tells how a payload field is encoded in a multipart body.
type FieldKind int

const (
	// FormKind fields are sent as plain form values, without a filename.
	FormKind FieldKind = iota
	// FileKind fields are sent as file parts whose filename is the field name.
	FileKind
)

// Field is a single named request value.
type Field struct {
	Kind  FieldKind
	Name  string
	Value string
}

// Payload is an ordered set of request fields, built fresh for every call.
type Payload []Field

// FormField creates a plain form field.
func FormField(name string, value interface{}) Field {
	return Field{Kind: FormKind, Name: name, Value: formatValue(value)}
}

// FileField creates a file-like multipart field.
func FileField(name string, value interface{}) Field {
	return Field{Kind: FileKind, Name: name, Value: formatValue(value)}
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case decimal.Decimal:
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// values encodes the payload as url form values. Field kinds do not matter
// for url encoding.
func (p Payload) values() url.Values {
	values := url.Values{}
	for _, f := range p {
		values.Add(f.Name, f.Value)
	}
	return values
}

// multipart encodes the payload as a multipart/form-data body and returns the
// body together with its content type.
func (p Payload) multipart() (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	for _, f := range p {
		switch f.Kind {
		case FileKind:
			part, err := w.CreateFormFile(f.Name, f.Name)
			if err != nil {
				return nil, "", fmt.Errorf("failed to create file field %q: %w", f.Name, err)
			}
			if _, err := part.Write([]byte(f.Value)); err != nil {
				return nil, "", fmt.Errorf("failed to write file field %q: %w", f.Name, err)
			}
		default:
			if err := w.WriteField(f.Name, f.Value); err != nil {
				return nil, "", fmt.Errorf("failed to write form field %q: %w", f.Name, err)
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish multipart body: %w", err)
	}
	return body, w.FormDataContentType(), nil
}
