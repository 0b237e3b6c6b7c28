// Package stage copies edited FreeSurfer subject directories into the
// upload queue consumed by the results daemon. Each assessor gets a
// directory named after its label, a resource subdirectory with the data,
// a version.txt, and a flag file telling the daemon what happened.
package stage

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/Raab70/dax/pkg/assessor"
)

// Flag files the upload daemon looks for.
const (
	ReadyFlag  = "READY_TO_UPLOAD.txt"
	FailedFlag = "JOB_FAILED.txt"
)

// VersionFile records the tool version that produced the staging.
const VersionFile = "version.txt"

// DefaultResource is the resource directory results are staged under.
const DefaultResource = "DATA"

// compressExts lists image extensions gzipped during staging.
var compressExts = map[string]bool{".nii": true, ".rec": true}

// Stager copies assessor results into the upload queue.
type Stager struct {
	ResultsDir string
	Version    string   // written to version.txt
	FS         afero.Fs // injected for testing
}

// New returns a Stager writing to resultsDir on the OS filesystem.
func New(resultsDir, version string) *Stager {
	return &Stager{ResultsDir: resultsDir, Version: version, FS: afero.NewOsFs()}
}

// Stage copies subjectDir into <results>/<label>/<resource>/, gzipping
// bare .nii and .rec images on the way, then writes version.txt and the
// ready flag. A previous staging of the same assessor is cleaned first.
// On a copy failure the failed flag is left behind instead.
func (s *Stager) Stage(label assessor.Label, subjectDir, resource string) error {
	if resource == "" {
		resource = DefaultResource
	}
	assessorDir := filepath.Join(s.ResultsDir, label.String())

	if err := s.cleanDirectory(assessorDir); err != nil {
		return err
	}

	target := filepath.Join(assessorDir, resource)
	if err := s.copyTree(subjectDir, target); err != nil {
		_ = s.touch(filepath.Join(assessorDir, FailedFlag))
		return err
	}

	if err := s.writeVersion(assessorDir); err != nil {
		return err
	}
	// The ready flag goes last: the daemon may pick the directory up the
	// moment the flag appears.
	return s.touch(filepath.Join(assessorDir, ReadyFlag))
}

// cleanDirectory ensures dir exists and is empty.
func (s *Stager) cleanDirectory(dir string) error {
	if err := s.FS.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to clean %s: %w", dir, err)
	}
	if err := s.FS.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}

func (s *Stager) copyTree(src, dest string) error {
	info, err := s.FS.Stat(src)
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", src)
	}

	return afero.Walk(s.FS, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)
		if info.IsDir() {
			return s.FS.MkdirAll(target, 0o755)
		}
		if compressExts[filepath.Ext(path)] {
			return s.copyGzip(path, target+".gz")
		}
		return s.copyFile(path, target)
	})
}

func (s *Stager) copyFile(src, dest string) error {
	in, err := s.FS.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := s.FS.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return out.Close()
}

func (s *Stager) copyGzip(src, dest string) error {
	in, err := s.FS.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := s.FS.Create(dest)
	if err != nil {
		return err
	}
	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		_ = gz.Close()
		_ = out.Close()
		return fmt.Errorf("failed to compress %s: %w", src, err)
	}
	if err := gz.Close(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func (s *Stager) writeVersion(dir string) error {
	version := s.Version
	if version == "" {
		version = "unknown"
	}
	return afero.WriteFile(s.FS, filepath.Join(dir, VersionFile), []byte(version+"\n"), 0o644)
}

func (s *Stager) touch(path string) error {
	f, err := s.FS.Create(path)
	if err != nil {
		return err
	}
	return f.Close()
}
