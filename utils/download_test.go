package utils

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUtils_ShouldDownloadTextFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("吾輩は猫である。名前はまだ無い。\n"))
	}))
	defer srv.Close()

	f, err := DownloadFile(srv.URL)
	if err != nil {
		t.Fatalf("could't download test file: %v", err)
	}
	defer os.Remove(f.Name())

	if !strings.Contains(f.Name(), "bunsetsu") {
		t.Errorf("The downloaded file should have been saved in a temporary folder")
	}
}

func TestUtils_ShouldRejectBinaryFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00})
	}))
	defer srv.Close()

	if _, err := DownloadFile(srv.URL); err == nil {
		t.Errorf("A binary resource should have been rejected")
	}
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	ok := IsValidUrl("https://github.com/esimov/bunsetsu/")
	if !ok {
		t.Errorf("A valid URL should have been provided")
	}
	if IsValidUrl("not-a-url") {
		t.Errorf("A plain string should not pass as URL")
	}
	if IsValidUrl("/absolute/path.txt") {
		t.Errorf("A path without scheme and host should not pass as URL")
	}
}

func TestUtils_ShouldDetectValidFileType(t *testing.T) {
	sample := filepath.Join("..", "testdata", "sample.txt")

	ftype, err := DetectContentType(sample)
	if err != nil {
		t.Fatalf("could not detect content type: %v", err)
	}

	if !strings.Contains(ftype, "text") {
		t.Errorf("Content type expected to be of type text, got: %v", ftype)
	}
}
