package blob

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestMemoryStore_PutGetHead(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	info, err := s.Put(ctx, "reports/r1/profile.csv", strings.NewReader("a,b\n1,2\n"), PutOptions{ContentType: "text/csv"})
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if info.Size != 8 {
		t.Errorf("Expected size 8, got %d", info.Size)
	}

	// Create-only semantics.
	if _, err := s.Put(ctx, "reports/r1/profile.csv", strings.NewReader("x"), PutOptions{}); err == nil {
		t.Error("Expected error on duplicate key")
	}

	got, rc, err := s.Get(ctx, "reports/r1/profile.csv")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	defer rc.Close()
	if got.ContentType != "text/csv" {
		t.Errorf("Expected content type preserved, got %q", got.ContentType)
	}
	body, _ := io.ReadAll(rc)
	if string(body) != "a,b\n1,2\n" {
		t.Errorf("Unexpected body %q", body)
	}

	head, err := s.Head(ctx, "reports/r1/profile.csv")
	if err != nil {
		t.Fatalf("Head failed: %v", err)
	}
	if head.Size != info.Size {
		t.Errorf("Head size mismatch: %d vs %d", head.Size, info.Size)
	}
}

func TestMemoryStore_MissingKey(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	if _, _, err := s.Get(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound from Get, got %v", err)
	}
	if _, err := s.Head(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound from Head, got %v", err)
	}
	if existed, err := s.Delete(ctx, "ghost"); err != nil || existed {
		t.Errorf("Expected (false, nil) deleting missing key, got (%v, %v)", existed, err)
	}
}

func TestMemoryStore_ListAndDelete(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	for _, key := range []string{"documents/d1/manual.pdf", "documents/d2/checklist.pdf", "reports/r1/file.pdf"} {
		if _, err := s.Put(ctx, key, strings.NewReader("x"), PutOptions{}); err != nil {
			t.Fatalf("Put %s failed: %v", key, err)
		}
	}

	docs, err := s.List(ctx, "documents/")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("Expected 2 documents, got %d", len(docs))
	}
	if docs[0].Key > docs[1].Key {
		t.Error("Expected keys in ascending order")
	}

	existed, err := s.Delete(ctx, "documents/d1/manual.pdf")
	if err != nil || !existed {
		t.Fatalf("Delete failed: existed=%v err=%v", existed, err)
	}
	docs, _ = s.List(ctx, "documents/")
	if len(docs) != 1 {
		t.Errorf("Expected 1 document after delete, got %d", len(docs))
	}
}

func TestMemoryStore_PresignUnsupported(t *testing.T) {
	s := NewMemory()
	if _, err := s.PresignURL(context.Background(), "any", SignedURLOptions{}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Expected ErrUnsupported, got %v", err)
	}
}
