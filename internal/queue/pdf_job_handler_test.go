package queue

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/SeakMengs/PdfPress/internal/processor"
	"github.com/SeakMengs/PdfPress/internal/testutil"
	"github.com/SeakMengs/PdfPress/internal/util"
	"github.com/SeakMengs/PdfPress/pkg/pdfpress"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

// fakeStorage serves objects from local files and records uploads.
type fakeStorage struct {
	objects  map[string]string
	uploaded map[string][]string
	failUp   bool
}

func (f *fakeStorage) Download(ctx context.Context, objectName, localPath string) error {
	src, ok := f.objects[objectName]
	if !ok {
		return fmt.Errorf("object %s not found", objectName)
	}

	b, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(localPath, b, 0644)
}

func (f *fakeStorage) UploadAll(ctx context.Context, files []string, directoryPath string) ([]string, error) {
	if f.failUp {
		return nil, errors.New("bucket unavailable")
	}

	keys := []string{}
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			return keys, err
		}
		keys = append(keys, directoryPath+"/"+filepath.Base(file))
	}
	f.uploaded[directoryPath] = append(f.uploaded[directoryPath], keys...)
	return keys, nil
}

func newTestConsumerContext(t *testing.T, objects map[string]string) (*ConsumerContext, *fakeStorage) {
	t.Helper()
	storage := &fakeStorage{objects: objects, uploaded: map[string][]string{}}
	cfg := pdfpress.Config{TmpDir: t.TempDir(), ValidationMode: "relaxed"}
	return &ConsumerContext{
		Logger:    zap.NewNop().Sugar(),
		Storage:   storage,
		Processor: processor.NewProcessor(cfg, nil),
	}, storage
}

func TestHandlePdfJobSplit(t *testing.T) {
	dir := t.TempDir()
	app, storage := newTestConsumerContext(t, map[string]string{
		"uploads/book.pdf": testutil.WriteNumberedPDF(t, dir, "book.pdf", 5),
	})

	shouldRequeue, err := HandlePdfJob(context.Background(), PdfJobPayload{
		ID:        "abc",
		Operation: "split_by_pages",
		Inputs:    []string{"uploads/book.pdf"},
		NPages:    2,
	}, app)
	if err != nil {
		t.Fatalf("HandlePdfJob failed: %v", err)
	}
	if shouldRequeue {
		t.Error("expected shouldRequeue to be false")
	}

	expected := []string{"jobs/abc/book_1.pdf", "jobs/abc/book_2.pdf", "jobs/abc/book_3.pdf"}
	if diff := cmp.Diff(expected, storage.uploaded[util.GetJobDirectoryPath("abc")]); diff != "" {
		t.Errorf("uploads mismatch (-want +got):\n%s", diff)
	}
}

func TestHandlePdfJobMergeSameName(t *testing.T) {
	dir := t.TempDir()
	app, storage := newTestConsumerContext(t, map[string]string{
		"a/doc.pdf": testutil.WriteNumberedPDF(t, dir, "a.pdf", 2),
		"b/doc.pdf": testutil.WriteNumberedPDF(t, dir, "b.pdf", 3),
	})

	_, err := HandlePdfJob(context.Background(), PdfJobPayload{
		ID:        "m1",
		Operation: "merge",
		Inputs:    []string{"a/doc.pdf", "b/doc.pdf"},
		Output:    "../merged.pdf",
	}, app)
	if err != nil {
		t.Fatalf("HandlePdfJob failed: %v", err)
	}

	expected := []string{"jobs/m1/merged.pdf"}
	if diff := cmp.Diff(expected, storage.uploaded["jobs/m1"]); diff != "" {
		t.Errorf("uploads mismatch (-want +got):\n%s", diff)
	}
}

func TestHandlePdfJobErrors(t *testing.T) {
	dir := t.TempDir()
	doc := testutil.WriteNumberedPDF(t, dir, "doc.pdf", 3)

	tests := []struct {
		name          string
		payload       PdfJobPayload
		failUpload    bool
		shouldRequeue bool
	}{
		{"missing object", PdfJobPayload{ID: "1", Operation: "split", Inputs: []string{"nope.pdf"}}, false, true},
		{"page out of range", PdfJobPayload{ID: "2", Operation: "delpages", Inputs: []string{"doc.pdf"}, Pages: "9"}, false, false},
		{"delete every page", PdfJobPayload{ID: "3", Operation: "delpages", Inputs: []string{"doc.pdf"}, Pages: "1-3"}, false, false},
		{"upload failure", PdfJobPayload{ID: "4", Operation: "2in1", Inputs: []string{"doc.pdf"}}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, storage := newTestConsumerContext(t, map[string]string{"doc.pdf": doc})
			storage.failUp = tt.failUpload

			shouldRequeue, err := HandlePdfJob(context.Background(), tt.payload, app)
			if err == nil {
				t.Fatal("expected an error")
			}
			if shouldRequeue != tt.shouldRequeue {
				t.Errorf("expected shouldRequeue %v, got %v (err: %v)", tt.shouldRequeue, shouldRequeue, err)
			}
		})
	}
}
