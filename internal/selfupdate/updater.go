package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// UpdateInput selects what to update to. An empty TargetVersion means
// whatever the latest release is.
type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

// UpdateProgress is reported once per stage of the update.
type UpdateProgress struct {
	Stage   string
	Message string
}

// Update downloads the release for the running platform, verifies it
// against the published checksums, and swaps the current executable for
// the extracted binary. Stages: check, download, verify, extract, apply,
// done.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	if input.CurrentVersion == "(devel)" {
		return ErrDevBuild
	}

	tag := input.TargetVersion
	if tag == "" {
		progress(UpdateProgress{Stage: "check", Message: "Checking for latest version..."})
		result, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if !result.UpdateAvailable {
			return ErrAlreadyLatest
		}
		tag = result.LatestVersion
	}

	asset, err := assetFor(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	progress(UpdateProgress{Stage: "download", Message: fmt.Sprintf("Downloading %s...", tag)})
	archive, err := c.fetch(ctx, c.releaseFileURL(tag, asset.archive))
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	progress(UpdateProgress{Stage: "verify", Message: "Verifying checksum..."})
	checksumsData, err := c.fetch(ctx, c.releaseFileURL(tag, "checksums.txt"))
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	if err := parseChecksumSet(checksumsData).verify(asset.archive, archive); err != nil {
		return err
	}

	progress(UpdateProgress{Stage: "extract", Message: "Extracting binary..."})
	binary, err := asset.extract(archive)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	progress(UpdateProgress{Stage: "apply", Message: "Applying update..."})
	if err := c.replaceExecutable(binary); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	progress(UpdateProgress{Stage: "done", Message: fmt.Sprintf("Updated to %s", tag)})
	return nil
}

// releaseFileURL builds the download URL for one file of a tagged release.
func (c *Checker) releaseFileURL(tag, name string) string {
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s", c.downloadBaseURL, c.owner, c.repo, tag, name)
}

// fetch GETs a URL and returns the whole body. Any non-200 is an error.
func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// releaseAsset pairs the archive name a release publishes for a platform
// with the binary name found inside it.
type releaseAsset struct {
	archive string
	binary  string
}

// assetFor maps GOOS/GOARCH to the naming scheme of our published
// archives. Darwin ships a universal binary.
func assetFor(goos, goarch string) (releaseAsset, error) {
	arch := map[string]string{
		"amd64": "x86_64",
		"arm64": "arm64",
		"386":   "i386",
	}[goarch]

	switch goos {
	case "darwin":
		return releaseAsset{archive: "repogrill_Darwin_all.tar.gz", binary: "repogrill"}, nil
	case "linux":
		if arch == "" {
			return releaseAsset{}, fmt.Errorf("unsupported architecture: %s", goarch)
		}
		return releaseAsset{archive: fmt.Sprintf("repogrill_Linux_%s.tar.gz", arch), binary: "repogrill"}, nil
	case "windows":
		if arch == "" {
			return releaseAsset{}, fmt.Errorf("unsupported architecture: %s", goarch)
		}
		return releaseAsset{archive: fmt.Sprintf("repogrill_Windows_%s.zip", arch), binary: "repogrill.exe"}, nil
	default:
		return releaseAsset{}, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// extract pulls the binary out of the downloaded archive, picking the
// format from the archive name.
func (a releaseAsset) extract(data []byte) ([]byte, error) {
	if strings.HasSuffix(a.archive, ".zip") {
		return a.extractZip(data)
	}
	return a.extractTarGz(data)
}

func (a releaseAsset) extractTarGz(data []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == a.binary {
			return io.ReadAll(tr)
		}
	}
	return nil, fmt.Errorf("binary %q not found in archive", a.binary)
}

func (a releaseAsset) extractZip(data []byte) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range r.File {
		if filepath.Base(f.Name) == a.binary {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer func() { _ = rc.Close() }()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("binary %q not found in archive", a.binary)
}

// checksumSet maps release file names to their published sha256 hex.
type checksumSet map[string]string

// parseChecksumSet reads a checksums.txt in the "hex  name" line format,
// skipping anything that does not parse.
func parseChecksumSet(data []byte) checksumSet {
	set := make(checksumSet)
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) != 2 {
			continue
		}
		set[fields[1]] = fields[0]
	}
	return set
}

// verify checks data against the published hash for name.
func (s checksumSet) verify(name string, data []byte) error {
	want, ok := s[name]
	if !ok {
		return fmt.Errorf("no checksum found for %s in checksums.txt", name)
	}
	h := sha256.Sum256(data)
	if got := hex.EncodeToString(h[:]); got != want {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, want, got)
	}
	return nil
}

// replaceExecutable swaps the running binary for data: write to a temp
// file next to the target, re-read and hash-check what landed on disk,
// then rename over the original keeping its mode.
func (c *Checker) replaceExecutable(data []byte) error {
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	tmpDir, err := os.MkdirTemp(filepath.Dir(target), ".repogrill-update-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	tmpFile := filepath.Join(tmpDir, "repogrill-new")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	// The rename is the point of no return, so confirm the bytes on disk
	// are the bytes we verified.
	written, err := os.ReadFile(tmpFile)
	if err != nil {
		return fmt.Errorf("re-read temp file: %w", err)
	}
	if sha256.Sum256(written) != sha256.Sum256(data) {
		return fmt.Errorf("%w: temp file changed after write", ErrChecksum)
	}

	if err := os.Rename(tmpFile, target); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	if err := os.Chmod(target, info.Mode()); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	return nil
}
