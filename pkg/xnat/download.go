package xnat

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// DownloadResource fetches one output resource of an assessor as a zip
// archive and extracts it under destDir. The archive is spooled through a
// temporary file; FreeSurfer DATA resources run to gigabytes.
func (c *Client) DownloadResource(ctx context.Context, project, subject, session, assessorLabel, resource, destDir string) error {
	uri := fmt.Sprintf("/data/archive/projects/%s/subjects/%s/experiments/%s/assessors/%s/out/resources/%s/files?format=zip",
		url.PathEscape(project), url.PathEscape(subject), url.PathEscape(session),
		url.PathEscape(assessorLabel), url.PathEscape(resource))

	req, err := c.newRequest(ctx, http.MethodGet, uri)
	if err != nil {
		return err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("download from %s failed: %w", c.Host, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(uri, resp); err != nil {
		return err
	}

	tmp, err := os.CreateTemp("", "fsview-*.zip")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	_, copyErr := io.Copy(tmp, resp.Body)
	closeErr := tmp.Close()
	if copyErr != nil {
		return fmt.Errorf("failed to download archive: %w", copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to flush archive: %w", closeErr)
	}

	return extractZip(tmp.Name(), destDir)
}

// extractZip unpacks archive into destDir, refusing entries that escape it.
func extractZip(archive, destDir string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("failed to open downloaded archive: %w", err)
	}
	defer func() { _ = r.Close() }()

	for _, f := range r.File {
		target, err := entryPath(destDir, f.Name)
		if err != nil {
			return err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := extractFile(f, target); err != nil {
			return err
		}
	}
	return nil
}

// entryPath joins an archive entry name onto destDir and rejects names
// that escape it.
func entryPath(destDir, name string) (string, error) {
	target := filepath.Join(destDir, filepath.FromSlash(name))
	if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q escapes destination directory", name)
	}
	return target, nil
}

func extractFile(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to read archive entry %s: %w", f.Name, err)
	}
	defer func() { _ = rc.Close() }()

	mode := f.Mode()
	if mode == 0 {
		mode = 0o644
	}
	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return out.Close()
}
