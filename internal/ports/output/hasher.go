package output

// PasswordHasher turns a plain password into a storable hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
