package billing

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPDF is returned by DecodePDF for a blank payload.
var ErrEmptyPDF = errors.New("pdf payload is empty")

// DecodePDF decodes a base64 PDF produced by the checkout UI. A leading data
// URI header ("data:application/pdf;base64,") is accepted and stripped.
func DecodePDF(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if strings.HasPrefix(payload, "data:") {
		if _, rest, ok := strings.Cut(payload, ","); ok {
			payload = rest
		}
	}
	if payload == "" {
		return nil, ErrEmptyPDF
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(payload)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding pdf: %w", err)
	}
	return data, nil
}
