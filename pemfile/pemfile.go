// Package pemfile keeps the SSH host key of the console server on disk.
package pemfile

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"os"

	"github.com/zond/consoleutil"

	gossh "golang.org/x/crypto/ssh"
)

type KeyParams struct {
	KeyPath       string
	SSHPubKeyPath string
}

// Generate writes a new private key and its authorized_keys form.
func (k KeyParams) Generate() error {
	pubKey, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return consoleutil.WithStack(err)
	}
	keyBytes, err := x509.MarshalPKCS8PrivateKey(privKey)
	if err != nil {
		return consoleutil.WithStack(err)
	}
	if err := os.WriteFile(k.KeyPath, pem.EncodeToMemory(
		&pem.Block{
			Type:  "PRIVATE KEY",
			Bytes: keyBytes,
		}),
		0600,
	); err != nil {
		return consoleutil.WithStack(err)
	}

	pub, err := gossh.NewPublicKey(pubKey)
	if err != nil {
		return consoleutil.WithStack(err)
	}
	if err := os.WriteFile(k.SSHPubKeyPath, gossh.MarshalAuthorizedKey(pub), 0600); err != nil {
		return consoleutil.WithStack(err)
	}
	return nil
}

// Signer loads the private key, generating the pair first if it doesn't
// exist.
func (k KeyParams) Signer() (gossh.Signer, bool, error) {
	generated := false
	if _, err := os.Stat(k.KeyPath); os.IsNotExist(err) {
		if err := k.Generate(); err != nil {
			return nil, false, err
		}
		generated = true
	} else if err != nil {
		return nil, false, consoleutil.WithStack(err)
	}
	pemBytes, err := os.ReadFile(k.KeyPath)
	if err != nil {
		return nil, false, consoleutil.WithStack(err)
	}
	signer, err := gossh.ParsePrivateKey(pemBytes)
	if err != nil {
		return nil, false, consoleutil.WithStack(err)
	}
	return signer, generated, nil
}
