// Package auth handles user credentials.
//
// Passwords are stored as bcrypt hashes; the plaintext never reaches the
// database or an API response. The cost factor comes from BCRYPT_COST.
//
//	hash, err := auth.HashPassword(password, cfg.Auth.BcryptCost)
//	err = auth.CheckPassword(candidate, hash)
//
// Authentication and authorization of requests are out of scope: every
// endpoint is public.
package auth
