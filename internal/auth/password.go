package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"newsletter/pkg/serrors"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	algorithm = "argon2id"
	// maxMemory bounds the memory parameter accepted from a stored hash (KiB).
	maxMemory = 1 << 21
	// dummySecretLength is the number of random bytes behind the dummy hash.
	dummySecretLength = 32
)

// Params are the Argon2id cost parameters used when hashing new passwords.
// Verification always uses the parameters recorded in the stored hash.
type Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultParams are the parameters stored hashes have been produced with.
func DefaultParams() Params {
	return Params{
		Memory:      15000,
		Iterations:  2,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// Hasher produces PHC-formatted Argon2id hashes.
type Hasher struct {
	params Params
}

// NewHasher returns a Hasher using params for every new hash.
func NewHasher(params Params) *Hasher {
	return &Hasher{params: params}
}

// Hash derives a PHC string ($argon2id$v=19$m=..,t=..,p=..$salt$digest) for password.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("could not generate salt: %w", err)
	}

	digest := argon2.IDKey([]byte(password), salt,
		h.params.Iterations, h.params.Memory, h.params.Parallelism, h.params.KeyLength)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithm, argon2.Version,
		h.params.Memory, h.params.Iterations, h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest)), nil
}

// NewDummyHash hashes a random secret nobody knows. It is computed once at
// startup and verified against whenever a username does not exist, so both
// paths cost one Argon2id derivation with the same parameters.
func (h *Hasher) NewDummyHash() (string, error) {
	secret := make([]byte, dummySecretLength)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("could not generate dummy secret: %w", err)
	}

	return h.Hash(base64.RawStdEncoding.EncodeToString(secret))
}

type phc struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	salt        []byte
	digest      []byte
}

// ValidatePasswordHash reports whether encoded is a well-formed Argon2id PHC string.
func ValidatePasswordHash(encoded string) error {
	_, err := parsePHC(encoded)

	return err
}

func parsePHC(encoded string) (*phc, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, errors.New("hash is not in PHC format")
	}
	if parts[1] != algorithm {
		return nil, fmt.Errorf("unsupported algorithm %q", parts[1])
	}
	if parts[2] != "v="+strconv.Itoa(argon2.Version) {
		return nil, fmt.Errorf("unsupported version %q", parts[2])
	}

	out := &phc{}
	for _, kv := range strings.Split(parts[3], ",") {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("malformed parameter %q", kv)
		}
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil || n == 0 {
			return nil, fmt.Errorf("malformed parameter %q", kv)
		}
		switch k {
		case "m":
			out.memory = uint32(n)
		case "t":
			out.iterations = uint32(n)
		case "p":
			if n > 255 {
				return nil, fmt.Errorf("parallelism %d out of range", n)
			}
			out.parallelism = uint8(n)
		default:
			return nil, fmt.Errorf("unknown parameter %q", k)
		}
	}
	if out.memory == 0 || out.iterations == 0 || out.parallelism == 0 {
		return nil, errors.New("missing cost parameter")
	}
	if out.memory > maxMemory {
		return nil, fmt.Errorf("memory parameter %d too large", out.memory)
	}

	var err error
	if out.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil || len(out.salt) == 0 {
		return nil, errors.New("malformed salt")
	}
	if out.digest, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil || len(out.digest) == 0 {
		return nil, errors.New("malformed digest")
	}

	return out, nil
}

// VerifyPasswordHash checks candidate against the PHC string expected. A
// malformed hash and a mismatch both yield serrors.ErrInvalidCredentials.
// It is CPU-bound and should run on a worker.Pool.
func VerifyPasswordHash(expected string, candidate string) error {
	parsed, err := parsePHC(expected)
	if err != nil {
		return serrors.Wrap(serrors.ErrInvalidCredentials, err, "could not parse stored password hash")
	}

	digest := argon2.IDKey([]byte(candidate), parsed.salt,
		parsed.iterations, parsed.memory, parsed.parallelism, uint32(len(parsed.digest))) //nolint: gosec
	if subtle.ConstantTimeCompare(digest, parsed.digest) != 1 {
		return serrors.With(serrors.ErrInvalidCredentials, "invalid password")
	}

	return nil
}
