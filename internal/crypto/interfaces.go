package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns account passwords into self-describing Argon2id
// hashes and checks passwords against them. The server keeps only the
// encoded hash.
type PasswordHasher interface {
	// Hash derives a new encoded hash of password with a random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches the encoded hash. A hash
	// that cannot be decoded is an error, a mismatch is not.
	Verify(password, encoded string) (bool, error)
}
