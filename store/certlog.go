package store

import (
	"io"
	"os"

	"github.com/arvo-stacks/rupert/boxindex"
)

// CertificateLog is the append-only log of EliminatedBox3 certificates
// (spec.md §4.J, §4.I "Ordering guarantees" (i): certificates appear in
// the order the exporter drains them).
type CertificateLog struct {
	path string
	f    *os.File
}

// OpenCertificateLog opens (creating if necessary) the certificate log at
// path for appending.
func OpenCertificateLog(path string) (*CertificateLog, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, &Error{Op: "open-certificate-log", Path: path, Err: err}
	}
	return &CertificateLog{path: path, f: f}, nil
}

// Append writes certs, in order, to the tail of the log and flushes to
// stable storage (spec.md §7 category 5: a write failure here is fatal on
// the write path).
func (l *CertificateLog) Append(certs []boxindex.EliminatedBox3) error {
	for _, c := range certs {
		if err := writeEliminatedBox3(l.f, c); err != nil {
			return &Error{Op: "append-certificates", Path: l.path, Err: err}
		}
	}
	if err := l.f.Sync(); err != nil {
		return &Error{Op: "append-certificates", Path: l.path, Err: err}
	}
	return nil
}

// Close closes the underlying file.
func (l *CertificateLog) Close() error { return l.f.Close() }

// ReadCertificateLog reads every certificate record in path, in the order
// they were appended.
func ReadCertificateLog(path string) ([]boxindex.EliminatedBox3, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &Error{Op: "read-certificate-log", Path: path, Err: err}
	}
	defer f.Close()

	var certs []boxindex.EliminatedBox3
	for {
		c, err := readEliminatedBox3(f)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &Error{Op: "read-certificate-log", Path: path, Err: err}
		}
		certs = append(certs, c)
	}
	return certs, nil
}
