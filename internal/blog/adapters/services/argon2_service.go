package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/argon2"

	"blogcore/internal/blog/domain/entities"
	"blogcore/internal/blog/domain/services"
	svc "blogcore/internal/blog/ports/services"
	"blogcore/pkg/logger"
)

const (
	errMsgFailedToGenerateSalt = "failed to generate salt"
	msgMalformedHash           = "stored hash is malformed"
)

var (
	errUnexpectedFormat = errors.New("unexpected hash format")
	errParamsOutOfRange = errors.New("hash params out of range")
	errEmptyKey         = errors.New("empty key")
)

// maxMemoryKiB ограничивает стоимость проверки чужих строк хэша (1 GiB).
const maxMemoryKiB = 1 << 20

// ServiceArgon2 реализует PasswordService на Argon2id.
type ServiceArgon2 struct {
	params services.Argon2Params
}

// NewArgon2 создает сервис. Нулевые параметры заменяются значениями по умолчанию.
func NewArgon2(params services.Argon2Params) svc.PasswordService {
	def := services.DefaultArgon2Params()
	if params.Time == 0 {
		params.Time = def.Time
	}
	if params.MemoryKiB == 0 {
		params.MemoryKiB = def.MemoryKiB
	}
	if params.Parallelism == 0 {
		params.Parallelism = def.Parallelism
	}
	if params.SaltLength == 0 {
		params.SaltLength = def.SaltLength
	}
	if params.KeyLength == 0 {
		params.KeyLength = def.KeyLength
	}
	return &ServiceArgon2{params: params}
}

// Hash хэширует пароль и возвращает строку вида
// $argon2id$v=19$m=<KiB>,t=<time>,p=<threads>$<salt>$<key>.
func (s *ServiceArgon2) Hash(_ context.Context, password string) (string, error) {
	salt := make([]byte, s.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%s: %w: %w", errMsgFailedToGenerateSalt, services.ErrHashingFailed, err)
	}

	secret := []byte(password)
	defer clear(secret)

	key := argon2.IDKey(secret, salt, s.params.Time, s.params.MemoryKiB, s.params.Parallelism, s.params.KeyLength)

	return encodeHash(s.params, salt, key), nil
}

// Verify сверяет пароль с хэшем, используя параметры из самой строки.
func (s *ServiceArgon2) Verify(ctx context.Context, password, encoded string) bool {
	params, salt, key, err := decodeHash(encoded)
	if err != nil {
		logger.Log(ctx).Debug(ctx, msgMalformedHash, zap.Error(err))
		return false
	}

	secret := []byte(password)
	defer clear(secret)

	candidate := argon2.IDKey(secret, salt, params.Time, params.MemoryKiB, params.Parallelism, uint32(len(key)))
	defer clear(candidate)

	return subtle.ConstantTimeCompare(candidate, key) == 1
}

func encodeHash(p services.Argon2Params, salt, key []byte) string {
	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		entities.HashedCredentialMarker,
		argon2.Version,
		p.MemoryKiB, p.Time, p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

func decodeHash(encoded string) (services.Argon2Params, []byte, []byte, error) {
	var p services.Argon2Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return p, nil, nil, errUnexpectedFormat
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("version: %w", err)
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("%w: version %d", errUnexpectedFormat, version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.MemoryKiB, &p.Time, &p.Parallelism); err != nil {
		return p, nil, nil, fmt.Errorf("params: %w", err)
	}
	if p.Time == 0 || p.Parallelism == 0 || p.MemoryKiB == 0 || p.MemoryKiB > maxMemoryKiB {
		return p, nil, nil, errParamsOutOfRange
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("salt: %w", err)
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("key: %w", err)
	}
	if len(key) == 0 {
		return p, nil, nil, errEmptyKey
	}

	p.SaltLength = uint32(len(salt))
	p.KeyLength = uint32(len(key))

	return p, salt, key, nil
}
