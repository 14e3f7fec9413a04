package api

import (
	"encoding/json"
	"fmt"
	"net/url"
)

type filePart struct {
	field    string
	filename string
	data     []byte
}

type request struct {
	pathParams map[string]string
	query      url.Values
	body       []byte
	file       *filePart
	form       map[string]string
	err        error
}

// RequestOption adds parameters to a single Execute call.
type RequestOption func(*request)

func WithPathParam(name, value string) RequestOption {
	return func(r *request) {
		if r.pathParams == nil {
			r.pathParams = map[string]string{}
		}
		r.pathParams[name] = value
	}
}

func WithQuery(values url.Values) RequestOption {
	return func(r *request) {
		if r.query == nil {
			r.query = url.Values{}
		}
		for k, vs := range values {
			for _, v := range vs {
				r.query.Add(k, v)
			}
		}
	}
}

// WithJSON encodes v as the request body.
func WithJSON(v any) RequestOption {
	return func(r *request) {
		b, err := json.Marshal(v)
		if err != nil {
			r.err = fmt.Errorf("encode request body: %w", err)
			return
		}
		r.body = b
	}
}

// WithFile sends a multipart body with a single file part. The data is kept
// in memory so the body can be rebuilt for a retry.
func WithFile(field, filename string, data []byte) RequestOption {
	return func(r *request) {
		r.file = &filePart{field: field, filename: filename, data: data}
	}
}

// WithFormField adds a text field to a multipart body.
func WithFormField(name, value string) RequestOption {
	return func(r *request) {
		if r.form == nil {
			r.form = map[string]string{}
		}
		r.form[name] = value
	}
}

func newRequest(opts []RequestOption) *request {
	r := &request{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
