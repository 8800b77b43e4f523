package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_sealer_mock.go -package=mock

// CredentialSealer protects the remote password at rest. It knows nothing
// about storage or the network.
//
// Scheme:
//
//	salt  = random 16 bytes                      (per Seal call)
//	key   = Argon2id(secret, salt)
//	blob  = salt || nonce || AES-GCM(key, plaintext)
//	out   = base64(blob)
type CredentialSealer interface {
	// Seal encrypts plaintext and returns a base64 blob safe to persist.
	Seal(plaintext string) (string, error)

	// Open reverses Seal. It fails with [ErrSealedDataCorrupt] when the blob
	// is malformed or was sealed under a different secret.
	Open(sealed string) (string, error)
}
