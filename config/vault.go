package config

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"
)

// scrypt parameters for vault key derivation
const (
	scryptN = 32768 // 2^15
	scryptR = 8
	scryptP = 1
	keyLen  = 32 // AES-256
	saltLen = 32
)

// ErrPassphraseEmpty is returned when sealing or opening with no passphrase
var ErrPassphraseEmpty = errors.New("passphrase cannot be empty")

// vaultFile is the on-disk layout of an encrypted credentials file. The
// AES-GCM seal authenticates Data, so tampering fails on open.
type vaultFile struct {
	Salt  []byte `json:"salt"`
	Nonce []byte `json:"nonce"`
	Data  []byte `json:"data"`
}

// SealCredentials encrypts creds under a key derived from passphrase and
// returns the serialized vault file
func SealCredentials(creds *Credentials, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrPassphraseEmpty
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}

	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := json.Marshal(creds)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize credentials")
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, errors.Wrap(err, "failed to generate nonce")
	}

	vault := vaultFile{
		Salt:  salt,
		Nonce: nonce,
		Data:  gcm.Seal(nil, nonce, plaintext, nil),
	}
	return json.Marshal(&vault)
}

// OpenCredentials decrypts a serialized vault file with passphrase
func OpenCredentials(data []byte, passphrase string) (*Credentials, error) {
	if passphrase == "" {
		return nil, ErrPassphraseEmpty
	}

	var vault vaultFile
	if err := json.Unmarshal(data, &vault); err != nil {
		return nil, errors.Wrap(err, "failed to parse vault file")
	}

	key, err := deriveKey(passphrase, vault.Salt)
	if err != nil {
		return nil, err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(vault.Nonce) != gcm.NonceSize() {
		return nil, errors.New("vault nonce has wrong length")
	}

	plaintext, err := gcm.Open(nil, vault.Nonce, vault.Data, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrypt vault")
	}

	var creds Credentials
	if err := json.Unmarshal(plaintext, &creds); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize credentials")
	}
	return &creds, nil
}

func deriveKey(passphrase string, salt []byte) ([]byte, error) {
	key, err := scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive key")
	}
	return key, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gcm")
	}
	return gcm, nil
}
