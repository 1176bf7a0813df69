package report

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/JonMunkholm/seeder/internal/core"
)

func sampleReport() core.Report {
	return core.Report{
		RunID:     "run-42",
		StartedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Duration:  1500 * time.Millisecond,
		Outcomes: []core.Outcome{
			{Kind: core.KindUser, ID: 1, Status: core.StatusSuccess, Message: "Inserted user Alice"},
			{Kind: core.KindUser, ID: 10, Status: core.StatusFailed, Message: "Missing name or email"},
			{Kind: core.KindProduct, ID: 3, Status: core.StatusError, Message: "<busy> & locked"},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}

	want := "[User ID 1] Success: Inserted user Alice\n" +
		"[User ID 10] Failed: Missing name or email\n" +
		"[Product ID 3] Error: <busy> & locked\n"
	if buf.String() != want {
		t.Errorf("WriteText() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWriteText_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, core.Report{}); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("WriteText() wrote %q for an empty report", buf.String())
	}
}

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := HTML(sampleReport()).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<title>Seed run run-42</title>",
		"<td>Inserted user Alice</td>",
		`<tr class="failed">`,
		"&lt;busy&gt; &amp; locked",
		"<tr><td>User</td><td>1</td><td>1</td><td>0</td></tr>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
	if strings.Contains(out, "<busy>") {
		t.Error("HTML contains an unescaped message")
	}
}

func TestWriteHTMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "report.html")
	if err := WriteHTMLFile(context.Background(), path, sampleReport()); err != nil {
		t.Fatalf("WriteHTMLFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("<!DOCTYPE html>")) {
		t.Errorf("report file starts with %q", data[:min(len(data), 20)])
	}
}

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func TestArchiver_Archive(t *testing.T) {
	fake := &fakePutter{}
	a, err := NewArchiver(fake, "reports", "/seeder/runs/")
	if err != nil {
		t.Fatalf("NewArchiver() error = %v", err)
	}

	key, err := a.Archive(context.Background(), sampleReport())
	if err != nil {
		t.Fatalf("Archive() error = %v", err)
	}
	if key != "seeder/runs/run-42.txt" {
		t.Errorf("key = %q, want seeder/runs/run-42.txt", key)
	}
	if *fake.input.Bucket != "reports" || *fake.input.Key != key {
		t.Errorf("PutObject bucket/key = %s/%s", *fake.input.Bucket, *fake.input.Key)
	}
	if string(fake.body) != string(Text(sampleReport())) {
		t.Errorf("archived body = %q", fake.body)
	}
}

func TestArchiver_Errors(t *testing.T) {
	if _, err := NewArchiver(&fakePutter{}, "", ""); err == nil {
		t.Error("NewArchiver accepted an empty bucket")
	}

	a, _ := NewArchiver(&fakePutter{err: errors.New("access denied")}, "reports", "")
	if a.Key("r") != "r.txt" {
		t.Errorf("Key() without prefix = %q, want r.txt", a.Key("r"))
	}
	if _, err := a.Archive(context.Background(), sampleReport()); err == nil || !strings.Contains(err.Error(), "access denied") {
		t.Errorf("Archive() error = %v, want wrapped access denied", err)
	}
}
