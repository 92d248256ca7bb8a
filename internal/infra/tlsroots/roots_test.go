package tlsroots

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// caPEM generates a self-signed CA certificate, PEM-encoded, standing
// in for the private CA an operator would put in front of a server.
func caPEM(t *testing.T, commonName string) []byte {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: commonName},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("create certificate: %v", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}

func TestNewPool(t *testing.T) {
	p, err := NewPool()
	if err != nil {
		t.Fatalf("NewPool() error = %v", err)
	}
	if p.roots == nil {
		t.Fatal("NewPool() returned pool without cert pool")
	}
}

func TestAddCertPEM(t *testing.T) {
	p := NewEmptyPool()
	if err := p.AddCertPEM(caPEM(t, "gravsweep-test-ca")); err != nil {
		t.Fatalf("AddCertPEM() error = %v", err)
	}
	if got := len(p.roots.Subjects()); got != 1 {
		t.Errorf("pool holds %d roots, want 1", got)
	}
}

func TestAddCertPEM_MultipleCerts(t *testing.T) {
	combined := append(caPEM(t, "ca-one"), caPEM(t, "ca-two")...)

	p := NewEmptyPool()
	if err := p.AddCertPEM(combined); err != nil {
		t.Fatalf("AddCertPEM() error = %v", err)
	}
	if got := len(p.roots.Subjects()); got != 2 {
		t.Errorf("pool holds %d roots, want 2", got)
	}
}

func TestAddCertPEM_SkipsNonCertBlocks(t *testing.T) {
	// A bundle may carry a key alongside the certificate; only the
	// certificate lands in the pool.
	keyBlock := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: []byte("not a real key")})
	bundle := append(keyBlock, caPEM(t, "bundled-ca")...)

	p := NewEmptyPool()
	if err := p.AddCertPEM(bundle); err != nil {
		t.Fatalf("AddCertPEM() error = %v", err)
	}
	if got := len(p.roots.Subjects()); got != 1 {
		t.Errorf("pool holds %d roots, want 1", got)
	}
}

func TestAddCertPEM_NoCerts(t *testing.T) {
	p := NewEmptyPool()
	if err := p.AddCertPEM([]byte("not pem at all")); !errors.Is(err, ErrNoCertsFound) {
		t.Errorf("AddCertPEM() error = %v, want ErrNoCertsFound", err)
	}
}

func TestAddCertPEM_CorruptCert(t *testing.T) {
	corrupt := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: []byte("garbage")})

	p := NewEmptyPool()
	if err := p.AddCertPEM(corrupt); err == nil {
		t.Error("AddCertPEM() accepted corrupt certificate")
	}
}

func TestAddCertFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ca.pem")
	if err := os.WriteFile(path, caPEM(t, "file-ca"), 0o644); err != nil {
		t.Fatalf("write ca file: %v", err)
	}

	p := NewEmptyPool()
	if err := p.AddCertFile(path); err != nil {
		t.Fatalf("AddCertFile() error = %v", err)
	}
	if got := len(p.roots.Subjects()); got != 1 {
		t.Errorf("pool holds %d roots, want 1", got)
	}
}

func TestAddCertFile_NotFound(t *testing.T) {
	p := NewEmptyPool()
	if err := p.AddCertFile("/nonexistent/ca.pem"); err == nil {
		t.Error("AddCertFile() on missing file returned nil error")
	}
}

func TestTLSConfig(t *testing.T) {
	p := NewEmptyPool()
	if err := p.AddCertPEM(caPEM(t, "tls-ca")); err != nil {
		t.Fatalf("AddCertPEM() error = %v", err)
	}

	cfg := p.TLSConfig()
	if cfg.RootCAs != p.roots {
		t.Error("TLSConfig() does not use the pool as RootCAs")
	}
	if cfg.MinVersion != tls.VersionTLS12 {
		t.Errorf("MinVersion = %x, want TLS 1.2", cfg.MinVersion)
	}
}
