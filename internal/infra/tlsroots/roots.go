package tlsroots

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
)

// ErrNoCertsFound is returned when PEM data yields no certificates.
var ErrNoCertsFound = errors.New("tlsroots: no certificates found in PEM data")

// Pool is a set of trusted root certificates.
type Pool struct {
	roots *x509.CertPool
}

// NewPool returns a pool seeded with the system roots, so adding a
// private CA does not stop public certificates from verifying. Systems
// without an accessible system store get an empty pool instead of an
// error.
func NewPool() (*Pool, error) {
	sys, err := x509.SystemCertPool()
	if err != nil {
		sys = x509.NewCertPool()
	}
	return &Pool{roots: sys}, nil
}

// NewEmptyPool returns a pool with no roots at all.
func NewEmptyPool() *Pool {
	return &Pool{roots: x509.NewCertPool()}
}

// AddCertFile adds every certificate in a PEM file to the pool.
func (p *Pool) AddCertFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("tlsroots: read %s: %w", path, err)
	}
	return p.AddCertPEM(data)
}

// AddCertPEM adds every CERTIFICATE block in pemData to the pool.
// Non-certificate blocks (keys, CSRs) are skipped.
func (p *Pool) AddCertPEM(pemData []byte) error {
	added := 0
	for {
		var block *pem.Block
		block, pemData = pem.Decode(pemData)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			continue
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return fmt.Errorf("tlsroots: parse certificate: %w", err)
		}
		p.roots.AddCert(cert)
		added++
	}

	if added == 0 {
		return ErrNoCertsFound
	}
	return nil
}

// TLSConfig returns a client TLS config that verifies servers against
// this pool.
func (p *Pool) TLSConfig() *tls.Config {
	return &tls.Config{
		RootCAs:    p.roots,
		MinVersion: tls.VersionTLS12,
	}
}
