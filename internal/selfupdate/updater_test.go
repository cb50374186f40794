package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetFor(t *testing.T) {
	tests := []struct {
		name        string
		goos        string
		goarch      string
		wantArchive string
		wantBinary  string
		wantErr     bool
	}{
		{name: "darwin amd64", goos: "darwin", goarch: "amd64", wantArchive: "repogrill_Darwin_all.tar.gz", wantBinary: "repogrill"},
		{name: "darwin arm64", goos: "darwin", goarch: "arm64", wantArchive: "repogrill_Darwin_all.tar.gz", wantBinary: "repogrill"},
		{name: "linux amd64", goos: "linux", goarch: "amd64", wantArchive: "repogrill_Linux_x86_64.tar.gz", wantBinary: "repogrill"},
		{name: "linux arm64", goos: "linux", goarch: "arm64", wantArchive: "repogrill_Linux_arm64.tar.gz", wantBinary: "repogrill"},
		{name: "linux 386", goos: "linux", goarch: "386", wantArchive: "repogrill_Linux_i386.tar.gz", wantBinary: "repogrill"},
		{name: "windows amd64", goos: "windows", goarch: "amd64", wantArchive: "repogrill_Windows_x86_64.zip", wantBinary: "repogrill.exe"},
		{name: "windows arm64", goos: "windows", goarch: "arm64", wantArchive: "repogrill_Windows_arm64.zip", wantBinary: "repogrill.exe"},
		{name: "unsupported os", goos: "freebsd", goarch: "amd64", wantErr: true},
		{name: "unsupported arch", goos: "linux", goarch: "mips", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantArchive, got.archive)
			assert.Equal(t, tt.wantBinary, got.binary)
		})
	}
}

func TestChecksumSet(t *testing.T) {
	t.Run("parse skips malformed lines", func(t *testing.T) {
		input := "abc123  file.tar.gz\nbadline\n  \nfoo  bar  baz\nghi789  other.tar.gz\n"
		got := parseChecksumSet([]byte(input))
		assert.Equal(t, checksumSet{
			"file.tar.gz":  "abc123",
			"other.tar.gz": "ghi789",
		}, got)
	})

	t.Run("parse empty", func(t *testing.T) {
		assert.Empty(t, parseChecksumSet(nil))
	})

	data := []byte("hello world")
	h := sha256.Sum256(data)
	set := checksumSet{"asset.tar.gz": hex.EncodeToString(h[:])}

	t.Run("verify match", func(t *testing.T) {
		assert.NoError(t, set.verify("asset.tar.gz", data))
	})

	t.Run("verify mismatch", func(t *testing.T) {
		err := set.verify("asset.tar.gz", []byte("tampered"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("verify unknown asset", func(t *testing.T) {
		err := set.verify("missing.tar.gz", data)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no checksum found")
	})
}

func TestReleaseAssetExtract(t *testing.T) {
	asset := releaseAsset{archive: "repogrill_Darwin_all.tar.gz", binary: "repogrill"}
	binaryContent := []byte("#!/bin/sh\necho repogrill")

	t.Run("tar.gz", func(t *testing.T) {
		got, err := asset.extract(buildTarGz(t, "repogrill", binaryContent))
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		_, err := asset.extract(buildTarGz(t, "other-file", binaryContent))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestReplaceExecutable(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "repogrill")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	checker := NewChecker(withExecPath(func() (string, error) { return target, nil }))
	newData := []byte("new-binary-content")
	require.NoError(t, checker.replaceExecutable(newData))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	// The original file mode survives the swap.
	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestUpdate(t *testing.T) {
	hostAsset, err := assetFor(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)
	binaryContent := []byte("new-repogrill-binary")
	archive := buildTarGz(t, hostAsset.binary, binaryContent)
	archiveHash := sha256.Sum256(archive)
	archiveHex := hex.EncodeToString(archiveHash[:])
	asset := hostAsset.archive

	releaseServer := func(checksums string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/repos/devgrill/repogrill/releases/latest":
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
			case "/devgrill/repogrill/releases/download/v2.0.0/" + asset:
				_, _ = w.Write(archive)
			case "/devgrill/repogrill/releases/download/v2.0.0/checksums.txt":
				_, _ = w.Write([]byte(checksums))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
	}

	t.Run("happy path", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "repogrill")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := releaseServer(fmt.Sprintf("%s  %s\n", archiveHex, asset))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		wrong := "0000000000000000000000000000000000000000000000000000000000000000"
		server := releaseServer(fmt.Sprintf("%s  %s\n", wrong, asset))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/devgrill/repogrill/releases/latest" {
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
