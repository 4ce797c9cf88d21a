package validation

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("POST", "/gallery", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatal(err)
	}
	return req.MultipartForm.File["image"][0]
}

func TestImageAcceptsPNG(t *testing.T) {
	header := uploadHeader(t, "snow.png", pngMagic)
	if err := Image(header); err != nil {
		t.Errorf("valid png rejected: %v", err)
	}
}

func TestImageRejectsForgedExtension(t *testing.T) {
	// Plain text with an image extension must fail the magic-number check.
	header := uploadHeader(t, "sneaky.png", []byte("#!/bin/sh\nrm -rf /\n"))
	if err := Image(header); err == nil {
		t.Error("text content behind a .png name should be rejected")
	}
}

func TestImageRejectsBadExtension(t *testing.T) {
	header := uploadHeader(t, "snow.svg", pngMagic)
	if err := Image(header); err == nil {
		t.Error("disallowed extension should be rejected")
	}
}
